// Package tesa computes and audits the constants of the arithmetic
// height inequality h_L(P) ≤ (1−δ)·m_D(P) + C_Global.
//
// The engine turns a scenario — an ordered list of places (primes or an
// archimedean marker) with reduction-type metadata — into certified
// numeric constants and a pass/fail certificate:
//
//	config → places → builder (reduction graphs)
//	       → potential (discrete harmonic solve, edge currents)
//	       → local (Fenchel energy, K_v tables, C_Type,v)
//	       → orchestrator (ΣC_Type, δ, C_∞, C_Global, verdict)
//	       → report (CSV + text)
//
// Subpackages:
//
//	core/        — places, graph arena, certificates (shared data model)
//	builder/     — canonical reduction-type topologies (I_n, D_n, E6/E7/E8)
//	potential/   — weighted Laplacian solve and Kirchhoff-checked currents
//	local/       — Fenchel energy, constant tables, C_Type,v aggregation
//	spectral/    — δ collaborator contract and placeholder suppliers
//	archimedean/ — C_∞ collaborator contract and ε-control placeholder
//	orchestrator/— parallel per-place pipeline and bound evaluation
//	config/      — scenario loading (YAML/TOML + env overrides)
//	report/      — CSV export and consolidated text summary
//	cmd/tesa/    — the command-line front end
//
// It is a research instrument, not a production service: δ and C_∞ are
// auditable placeholders behind stable contracts, awaiting certified
// spectral-gap and Green-potential computations.
package tesa
