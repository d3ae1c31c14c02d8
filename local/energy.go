// SPDX-License-Identifier: MIT
// Package local: the discrete Fenchel-dual energy.

package local

import "github.com/tesalab/tesa/core"

const half = 0.5

// FenchelEnergy evaluates the Dirichlet/Fenchel-dual energy of a
// potential on a reduction graph:
//
//	E = ½ · Σ_edges c(u,v) · (φ_u − φ_v)²
//
// This equals the Legendre-transform pairing of the derived current flow
// against the potential, and is invariant to the potential's additive
// normalization. E ≥ 0 always; E = 0 iff φ is constant on the connected
// support (no injected flow).
//
// Complexity: O(E).
func FenchelEnergy(g *core.ReductionGraph, phi core.PotentialAssignment) float64 {
	var e float64
	for _, edge := range g.Edges {
		d := phi[edge.U] - phi[edge.V]
		e += half * edge.Conductance * d * d
	}
	return e
}
