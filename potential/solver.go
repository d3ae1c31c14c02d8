// SPDX-License-Identifier: MIT
// Package potential: the pinned Laplacian solve and derived currents.
//
// Implementation:
//   - Stage 1: validate arena, source indices and connectivity.
//   - Stage 2: short-circuit degenerate sources (no flow ⇒ zero φ, zero J).
//   - Stage 3: assemble L, reduce by the pinned vertex, factorize A = L·U
//     (Doolittle, no pivoting) and solve by triangular substitution.
//   - Stage 4: expand to the full vertex set, apply the gauge option,
//     derive currents and check Kirchhoff.
//
// Determinism:
//   - Fixed loop orders throughout; identical inputs give bit-identical
//     outputs regardless of worker parallelism.
//
// Complexity: O(n³) time, O(n²) space; n is bounded by the topology
// catalogue, so the direct method needs no iteration cap.

package potential

import (
	"fmt"
	"math"

	"github.com/tesalab/tesa/core"
)

// Solve computes the potential assignment and derived edge currents for
// the given zero-sum source specification.
//
// The gauge vertex is src.Extract: its potential is pinned to zero
// unless WithZeroMean() is supplied. Currents follow the edge order of
// g.Edges, oriented U→V: J_e = c_e·(φ_U − φ_V).
//
// Errors: ErrBadSource, ErrDisconnected, ErrSingularSystem,
// ErrKirchhoffViolated — all per-place, none fatal for a batch.
func Solve(g *core.ReductionGraph, src core.SourceSpec, opts ...Option) (core.PotentialAssignment, core.CurrentFlow, error) {
	cfg := newSolveConfig(opts...)

	if err := g.Validate(); err != nil {
		return nil, nil, fmt.Errorf("Solve: %w", err)
	}
	n := g.NumVertices()
	if src.Inject < 0 || src.Inject >= n || src.Extract < 0 || src.Extract >= n {
		return nil, nil, fmt.Errorf("Solve: inject=%d extract=%d n=%d: %w", src.Inject, src.Extract, n, ErrBadSource)
	}
	if !g.Connected() {
		return nil, nil, fmt.Errorf("Solve: %w", ErrDisconnected)
	}

	// Degenerate source: no injected flow, constant (zero) potential.
	if src.Degenerate() {
		return make(core.PotentialAssignment, n), make(core.CurrentFlow, g.NumEdges()), nil
	}

	// Right-hand side: +Strength enters at Inject, leaves at Extract.
	q := make([]float64, n)
	q[src.Inject] += src.Strength
	q[src.Extract] -= src.Strength

	// Reduced system with the gauge vertex deleted.
	ref := src.Extract
	lap := Laplacian(g)
	a := reduced(lap, n, ref)
	m := n - 1
	b := make([]float64, 0, m)
	for i := 0; i < n; i++ {
		if i != ref {
			b = append(b, q[i])
		}
	}

	x, err := solveLU(a, b, m, cfg.tol)
	if err != nil {
		return nil, nil, fmt.Errorf("Solve: %w", err)
	}

	// Expand to the full vertex set (gauge vertex at zero).
	phi := make(core.PotentialAssignment, n)
	ri := 0
	for i := 0; i < n; i++ {
		if i == ref {
			continue
		}
		phi[i] = x[ri]
		ri++
	}

	// Optional zero-mean gauge: shift by the mean, invariants untouched.
	if cfg.zeroMean {
		var mean float64
		for _, v := range phi {
			mean += v
		}
		mean /= float64(n)
		for i := range phi {
			phi[i] -= mean
		}
	}

	// Currents are derived, never solved separately.
	flow := Currents(g, phi)

	// Post-condition: conservation at every vertex within tolerance.
	if err = CheckKirchhoff(g, src, flow, cfg.tol); err != nil {
		return nil, nil, fmt.Errorf("Solve: %w", err)
	}
	return phi, flow, nil
}

// Currents derives the per-edge currents J_e = c_e·(φ_U − φ_V) in the
// arena's edge order. Complexity: O(E).
func Currents(g *core.ReductionGraph, phi core.PotentialAssignment) core.CurrentFlow {
	flow := make(core.CurrentFlow, len(g.Edges))
	for i, e := range g.Edges {
		flow[i] = e.Conductance * (phi[e.U] - phi[e.V])
	}
	return flow
}

// solveLU solves the dense m×m system a·x = b by Doolittle factorization
// with unit diagonal on L and no pivoting, followed by forward and
// backward substitution. The reduced Laplacian is SPD, so pivots remain
// positive on valid input; a pivot within tol of zero (relative to the
// largest diagonal entry) reports ErrSingularSystem.
func solveLU(a, b []float64, m int, tol float64) ([]float64, error) {
	if m == 0 {
		return nil, nil
	}

	// Pivot scale: largest diagonal magnitude of the input matrix.
	scale := 1.0
	for i := 0; i < m; i++ {
		if d := math.Abs(a[i*m+i]); d > scale {
			scale = d
		}
	}

	// In-place Doolittle: after the loop, a holds U on/above the diagonal
	// and the L multipliers strictly below it.
	var (
		i, j, k int
		sum     float64
	)
	for i = 0; i < m; i++ {
		// Row i of U.
		for j = i; j < m; j++ {
			sum = zeroPivot
			for k = 0; k < i; k++ {
				sum += a[i*m+k] * a[k*m+j]
			}
			a[i*m+j] -= sum
		}
		pivot := a[i*m+i]
		if math.Abs(pivot) <= tol*scale {
			return nil, fmt.Errorf("pivot %d = %g: %w", i, pivot, ErrSingularSystem)
		}
		// Column i of L.
		for j = i + 1; j < m; j++ {
			sum = zeroPivot
			for k = 0; k < i; k++ {
				sum += a[j*m+k] * a[k*m+i]
			}
			a[j*m+i] = (a[j*m+i] - sum) / pivot
		}
	}

	// Forward substitution: L·y = b (unit diagonal).
	y := make([]float64, m)
	for i = 0; i < m; i++ {
		sum = zeroPivot
		for k = 0; k < i; k++ {
			sum += a[i*m+k] * y[k]
		}
		y[i] = b[i] - sum
	}

	// Backward substitution: U·x = y.
	x := make([]float64, m)
	for i = m - 1; i >= 0; i-- {
		sum = zeroPivot
		for k = i + 1; k < m; k++ {
			sum += a[i*m+k] * x[k]
		}
		x[i] = (y[i] - sum) / a[i*m+i]
	}
	return x, nil
}
