// SPDX-License-Identifier: MIT
// Package: tesa/builder
//
// api.go - thin public entry-point for reduction-graph construction.
//
// Contract:
//   - Build(typ, params) dispatches on the closed type set, assembles the
//     canonical arena and post-validates it (structure, counts, connectivity).
//   - Pure function of its inputs; no side effects, no global state.
//   - Returns only sentinel errors wrapped with method context.
//
// Complexity: O(V + E) per call, dominated by post-validation.

package builder

import (
	"fmt"

	"github.com/tesalab/tesa/core"
)

// constructor assembles the edge list of one canonical topology and
// reports its vertex count. Implementations live in impl_*.go and must
// emit edges in a stable, documented order.
type constructor func(params core.GraphParams) (pairs [][2]int, n int, err error)

// Build constructs the canonical reduction graph for typ.
//
// Guarantees on success: the arena is connected, every edge carries the
// strictly positive params.Conductance, and vertex/edge counts match the
// type's canonical definition (a chain of length n has n+1 vertices and
// n edges).
//
// Errors:
//   - ErrUnknownType for tags outside the supported set.
//   - ErrBadParameter for n < 0 or conductance ≤ 0.
//   - ErrConstructFailed if post-validation rejects the arena.
func Build(typ core.ReductionType, params core.GraphParams) (*core.ReductionGraph, error) {
	fn, ok := catalogue[typ]
	if !ok {
		return nil, fmt.Errorf("Build(%s): %w", typ, ErrUnknownType)
	}
	if params.Conductance <= 0 {
		return nil, fmt.Errorf("Build(%s): conductance=%g: %w", typ, params.Conductance, ErrBadParameter)
	}

	pairs, n, err := fn(params)
	if err != nil {
		return nil, fmt.Errorf("Build(%s): %w", typ, err)
	}

	// Assemble the arena with uniform conductance and unit multiplicities.
	g := &core.ReductionGraph{
		Vertices: make([]core.Vertex, n),
		Edges:    make([]core.Edge, 0, len(pairs)),
	}
	for i := range g.Vertices {
		g.Vertices[i] = core.Vertex{Multiplicity: 1}
	}
	for _, p := range pairs {
		g.Edges = append(g.Edges, core.Edge{U: p[0], V: p[1], Conductance: params.Conductance})
	}

	// Post-validate: structural invariants first, then connectivity.
	if err = g.Validate(); err != nil {
		return nil, fmt.Errorf("Build(%s): %v: %w", typ, err, ErrConstructFailed)
	}
	if !g.Connected() {
		return nil, fmt.Errorf("Build(%s): arena not connected: %w", typ, ErrConstructFailed)
	}
	return g, nil
}

// catalogue maps every supported tag to its constructor. The set is
// closed; extending it requires a new impl_*.go and a table entry in
// package local (exhaustiveness is cross-checked there at init).
var catalogue = map[core.ReductionType]constructor{
	core.TypeIn: chain,
	core.TypeD4: dynkinD4,
	core.TypeD5: dynkinD5,
	core.TypeD6: dynkinD6,
	core.TypeE6: dynkinE6,
	core.TypeE7: dynkinE7,
	core.TypeE8: dynkinE8,
}
