// SPDX-License-Identifier: MIT
// Package core: the reduction-graph arena.
//
// Contract:
//   - Vertices and Edges are plain slices; edges reference vertex indices.
//   - Validate() enforces the structural invariants (non-empty arena,
//     in-range endpoints, strictly positive conductances).
//   - Connected() answers connectivity of the support via an iterative
//     BFS over an adjacency list built on the fly.
//
// Determinism:
//   - No maps in the representation; iteration order is slice order.

package core

import "fmt"

// Vertex is one component of the special fiber (or Dynkin node).
type Vertex struct {
	// Multiplicity is the component multiplicity weight (≥ 1 for the
	// canonical types; kept as data for future non-reduced fibers).
	Multiplicity int
}

// Edge is one intersection point between two components, carrying a
// conductance (inverse resistance) strictly greater than zero.
type Edge struct {
	U, V        int     // endpoint vertex indices into the arena
	Conductance float64 // > 0 on the graph's support
}

// ReductionGraph models the dual graph of a degenerate fiber. It is
// built once per place, then shared read-only; no internal locking is
// needed because the arena is never mutated after construction.
type ReductionGraph struct {
	Vertices []Vertex
	Edges    []Edge
}

// NumVertices returns the vertex count. Complexity: O(1).
func (g *ReductionGraph) NumVertices() int { return len(g.Vertices) }

// NumEdges returns the edge count. Complexity: O(1).
func (g *ReductionGraph) NumEdges() int { return len(g.Edges) }

// Validate checks the structural invariants of the arena.
// Returns ErrNoVertices, ErrBadEdgeEndpoint or ErrNonPositiveConductance
// (wrapped with positional context) on the first violation.
// Complexity: O(V + E).
func (g *ReductionGraph) Validate() error {
	n := len(g.Vertices)
	if n == 0 {
		return ErrNoVertices
	}
	for i, e := range g.Edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return fmt.Errorf("edge %d (%d–%d): %w", i, e.U, e.V, ErrBadEdgeEndpoint)
		}
		if e.Conductance <= 0 {
			return fmt.Errorf("edge %d (%d–%d, c=%g): %w", i, e.U, e.V, e.Conductance, ErrNonPositiveConductance)
		}
	}
	return nil
}

// Connected reports whether every vertex is reachable from vertex 0.
// A single-vertex graph is connected by definition; an empty graph is not.
// Complexity: O(V + E) time, O(V + E) space for the scratch adjacency.
func (g *ReductionGraph) Connected() bool {
	n := len(g.Vertices)
	if n == 0 {
		return false
	}
	if n == 1 {
		return true
	}

	// Scratch adjacency list; arena stays untouched.
	adj := make([][]int, n)
	for _, e := range g.Edges {
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}

	// Iterative BFS from vertex 0.
	seen := make([]bool, n)
	queue := make([]int, 0, n)
	seen[0] = true
	queue = append(queue, 0)
	reached := 1
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if !seen[v] {
				seen[v] = true
				reached++
				queue = append(queue, v)
			}
		}
	}
	return reached == n
}

// Degree returns the number of edges incident to vertex v (loops would
// count twice, but canonical topologies have none).
// Complexity: O(E).
func (g *ReductionGraph) Degree(v int) int {
	d := 0
	for _, e := range g.Edges {
		if e.U == v {
			d++
		}
		if e.V == v {
			d++
		}
	}
	return d
}
