// Package archimedean supplies the continuous-place constant C_∞ under
// a mean-zero metric normalization.
//
// Like the spectral layer, the supplier is a capability contract with an
// auditable placeholder implementation: the value is controlled by an
// explicit ε parameter, optionally overridden by the estimated sup-norm
// of sampled potentials, and the mean-zero normalization of the metric
// is checked numerically and recorded in the report. A future certified
// Green-potential computation replaces the placeholder behind the same
// interface.
package archimedean
