// SPDX-License-Identifier: MIT
// Package potential: functional options for Solve.
//
// Option policy (mirrors the core option pattern): options resolve into
// an immutable solveConfig before any work starts; invalid option values
// are ignored in favour of the defaults rather than panicking, because
// Solve runs inside per-place workers where a panic would not be local.

package potential

// Numeric defaults. DefaultTolerance governs both the zero-pivot guard
// and the Kirchhoff post-condition (relative).
const (
	DefaultTolerance = 1e-9
	zeroPivot        = 0.0
)

// Option configures one Solve call.
type Option func(*solveConfig)

type solveConfig struct {
	zeroMean bool    // re-centre the pinned solution to mean zero
	tol      float64 // relative tolerance for pivots and Kirchhoff
}

func newSolveConfig(opts ...Option) solveConfig {
	cfg := solveConfig{tol: DefaultTolerance}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithZeroMean switches the potential normalization from pin-vertex
// (φ[extract] = 0) to zero mean over all vertices. Energies and currents
// are unaffected; only the additive gauge of φ changes.
func WithZeroMean() Option {
	return func(c *solveConfig) { c.zeroMean = true }
}

// WithTolerance overrides the relative tolerance used by the pivot guard
// and the Kirchhoff check. Non-positive values are ignored.
func WithTolerance(tol float64) Option {
	return func(c *solveConfig) {
		if tol > 0 {
			c.tol = tol
		}
	}
}
