// SPDX-License-Identifier: MIT
// Package potential: weighted Laplacian assembly.
//
// Contract:
//   - Laplacian(g) returns the full n×n weighted Laplacian in row-major
//     flat storage: L[i*n+i] = Σ incident conductances, L[i*n+j] = −c(i,j).
//   - Parallel edges accumulate; the arena is read-only throughout.
//
// Complexity: O(n² + E) time, O(n²) space. Graph sizes here are fixed by
// the reduction-type topologies (n ≤ 9), so dense storage is the right
// trade against sparse bookkeeping.

package potential

import "github.com/tesalab/tesa/core"

// Laplacian assembles the weighted graph Laplacian of g in row-major
// flat form. The caller owns the returned slice.
func Laplacian(g *core.ReductionGraph) []float64 {
	n := g.NumVertices()
	lap := make([]float64, n*n)
	for _, e := range g.Edges {
		c := e.Conductance
		lap[e.U*n+e.U] += c
		lap[e.V*n+e.V] += c
		lap[e.U*n+e.V] -= c
		lap[e.V*n+e.U] -= c
	}
	return lap
}

// reduced extracts the (n-1)×(n-1) principal submatrix of lap obtained
// by deleting row and column ref (the pinned gauge vertex), in row-major
// flat form. Complexity: O(n²).
func reduced(lap []float64, n, ref int) []float64 {
	m := n - 1
	out := make([]float64, m*m)
	ri := 0
	for i := 0; i < n; i++ {
		if i == ref {
			continue
		}
		ci := 0
		for j := 0; j < n; j++ {
			if j == ref {
				continue
			}
			out[ri*m+ci] = lap[i*n+j]
			ci++
		}
		ri++
	}
	return out
}
