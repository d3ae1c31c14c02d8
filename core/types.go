// SPDX-License-Identifier: MIT

// Package core: domain types shared by every stage of the pipeline.
// This file intentionally contains ONLY domain-facing types; the graph
// arena lives in graph.go and sentinel errors in errors.go.

package core

// ReductionType tags the special-fiber reduction type of a place.
// The set is closed and versioned: every supported tag appears in
// SupportedTypes and has entries in the local constant tables.
type ReductionType string

// Supported reduction types. TypeIn covers the multiplicative chain
// family I_n (length carried separately in Place.N / GraphParams.N);
// the remaining tags are the fixed Dynkin-shaped graphs.
const (
	TypeIn ReductionType = "In"
	TypeD4 ReductionType = "D4"
	TypeD5 ReductionType = "D5"
	TypeD6 ReductionType = "D6"
	TypeE6 ReductionType = "E6"
	TypeE7 ReductionType = "E7"
	TypeE8 ReductionType = "E8"
)

// SupportedTypes lists every reduction type the engine accepts, in a
// fixed order used by table-exhaustiveness validation.
func SupportedTypes() []ReductionType {
	return []ReductionType{TypeIn, TypeD4, TypeD5, TypeD6, TypeE6, TypeE7, TypeE8}
}

// Known reports whether t belongs to the closed supported set.
// Complexity: O(1) amortized (seven comparisons).
func (t ReductionType) Known() bool {
	switch t {
	case TypeIn, TypeD4, TypeD5, TypeD6, TypeE6, TypeE7, TypeE8:
		return true
	default:
		return false
	}
}

// Place identifies one valuation (prime or archimedean) of a scenario.
// Immutable once loaded from config; read-only input for the whole run.
type Place struct {
	// ID is the stable scenario-local identifier (reduction ordering key).
	ID string

	// Type is the reduction-type tag for this place.
	Type ReductionType

	// Prime is the residue characteristic p, or 0 for the archimedean
	// marker (which carries no reduction graph).
	Prime int64

	// I0 is the divisor-support index: the component the divisor point
	// reduces to, i.e. where current is injected.
	I0 int

	// N is the chain length for TypeIn places (I_n); ignored otherwise.
	N int

	// Conductance is the uniform edge conductance parameter (> 0).
	Conductance float64
}

// GraphParams carries the numeric parameters of a graph construction.
type GraphParams struct {
	// N is the chain length for the I_n family (n ≥ 0; n = 0 builds the
	// trivial single-vertex graph). Ignored by the fixed D/E topologies.
	N int

	// Conductance is the uniform conductance assigned to every edge of
	// the canonical topology. Must be strictly positive.
	Conductance float64
}

// SourceSpec encodes where current enters and exits the network for one
// potential solve. Strength units match the divisor normalization; a
// degenerate spec (Inject == Extract) injects no flow at all.
type SourceSpec struct {
	Inject   int     // vertex index where +Strength enters
	Extract  int     // vertex index where Strength exits (also the pinned gauge vertex)
	Strength float64 // injected current, ≥ 0
}

// Degenerate reports whether the spec injects no net flow.
func (s SourceSpec) Degenerate() bool { return s.Inject == s.Extract || s.Strength == 0 }

// PotentialAssignment holds one real potential per vertex, defined only
// up to an additive constant unless a normalization is fixed by the
// solver. Owned exclusively by the solve that produced it.
type PotentialAssignment []float64

// CurrentFlow holds one real current per edge, derived deterministically
// from a PotentialAssignment and the edge conductances; never mutated
// independently.
type CurrentFlow []float64

// LocalConstant is the per-place result C_Type,v with full provenance.
type LocalConstant struct {
	PlaceID     string        // originating place
	Type        ReductionType // reduction type used
	Prime       int64         // residue characteristic (0 = archimedean)
	KV          float64       // table constant K_v(type, p)
	Energy      float64       // Fenchel energy of the solved pair
	TameFactor  float64       // f_v^tame(type)
	CType       float64       // aggregated constant C_Type,v
	VertexCount int           // graph size, for auditing
}

// PlaceFailure records one isolated per-place pipeline failure. Failed
// places are excluded from ΣC_Type but must never be silently omitted
// from the certificate.
type PlaceFailure struct {
	PlaceID string
	Reason  string
}

// Verdict is the three-valued outcome of the bound evaluation.
type Verdict string

const (
	// BoundHolds: h_L ≤ RHS within tolerance.
	BoundHolds Verdict = "holds"
	// BoundFails: h_L > RHS beyond tolerance.
	BoundFails Verdict = "fails"
	// BoundIndeterminate: the certificate is partial or invalid, so no
	// true/false claim is made.
	BoundIndeterminate Verdict = "indeterminate"
)

// SanityReport collects the embedded certificate sanity checks.
type SanityReport struct {
	DeltaInRange  bool // δ ∈ [0,1)
	SumNonNeg     bool // ΣC_Type ≥ 0
	CInftyFinite  bool // C_∞ finite
	AllValuesReal bool // no NaN/Inf anywhere in the certificate
}

// OK reports whether every sanity check passed.
func (s SanityReport) OK() bool {
	return s.DeltaInRange && s.SumNonNeg && s.CInftyFinite && s.AllValuesReal
}

// GlobalCertificate is the single per-run result: the global constant,
// the evaluated inequality operands and the audit trail. Created once by
// the orchestrator and immutable afterwards; serialization belongs to
// the reporting collaborator.
type GlobalCertificate struct {
	RunID    string          // unique run identifier
	Scenario string          // scenario name
	Delta    float64         // spectral coercivity gain δ
	Locals   []LocalConstant // ordered by place (fixed reduction order)
	SumCType float64         // Σ C_Type,v over succeeded places
	CInfty   float64         // archimedean constant
	CGlobal  float64         // ΣC_Type + C_∞
	HL       float64         // h_L(P)
	MD       float64         // m_D(P)
	RHS      float64         // (1−δ)·m_D + C_Global
	Holds    Verdict         // bound verdict
	Partial  bool            // true iff any place failed
	Failures []PlaceFailure  // per-place failure list, never omitted
	Sanity   SanityReport    // embedded sanity-check results
}
