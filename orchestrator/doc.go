// Package orchestrator drives the full audit: per-place pipelines
// (graph build → potential solve → Fenchel energy → aggregation) run in
// parallel, the results reduce into ΣC_Type in a fixed order, the δ and
// C_∞ collaborators are consulted, and the height inequality
// h_L(P) ≤ (1−δ)·m_D(P) + C_Global is evaluated into a certificate.
//
// Concurrency model: places are embarrassingly parallel — each worker
// owns its graph, potential and currents exclusively, writes its result
// into an index-addressed slot and shares nothing else. The reduction
// then sums slots in ascending place order, so the floating-point sum is
// bit-reproducible across runs and across worker counts.
//
// Failure isolation: a failure in one place's pipeline is caught at the
// place boundary, recorded with the place id, and excluded from ΣC_Type;
// it never aborts sibling computations. A run with any failed place
// yields a certificate marked partial with an indeterminate verdict.
package orchestrator
