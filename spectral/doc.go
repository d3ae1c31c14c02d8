// Package spectral supplies the coercivity gain δ (Axiom 2) entering
// the (1−δ) coefficient of the height inequality.
//
// The orchestrator treats the supplier as an opaque capability: any
// implementation — the auditable placeholder here or a future certified
// spectral-gap routine — must honor the range constraint δ ∈ [0,1) and
// attach certificate metadata describing how the value was obtained.
package spectral
