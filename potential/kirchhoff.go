// SPDX-License-Identifier: MIT
// Package potential: the current-conservation post-condition.

package potential

import (
	"fmt"
	"math"

	"github.com/tesalab/tesa/core"
)

// CheckKirchhoff verifies that the net outflow at every vertex matches
// the injected current: +Strength at src.Inject, −Strength at
// src.Extract, zero elsewhere, all within a relative tolerance scaled by
// max(1, |Strength|).
//
// Currents must follow the arena edge order, oriented U→V.
// Complexity: O(V + E).
func CheckKirchhoff(g *core.ReductionGraph, src core.SourceSpec, flow core.CurrentFlow, tol float64) error {
	n := g.NumVertices()
	net := make([]float64, n)
	for i, e := range g.Edges {
		// J_e > 0 means current leaving U toward V.
		net[e.U] += flow[i]
		net[e.V] -= flow[i]
	}

	want := make([]float64, n)
	if !src.Degenerate() {
		want[src.Inject] += src.Strength
		want[src.Extract] -= src.Strength
	}

	limit := tol * math.Max(1.0, math.Abs(src.Strength))
	for v := 0; v < n; v++ {
		if math.Abs(net[v]-want[v]) > limit {
			return fmt.Errorf("vertex %d: net=%g want=%g: %w", v, net[v], want[v], ErrKirchhoffViolated)
		}
	}
	return nil
}
