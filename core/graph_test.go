// Package core contains unit tests for the reduction-graph arena:
// structural validation and connectivity semantics.
package core

import (
	"errors"
	"testing"
)

// path3 builds a 3-vertex chain arena with unit conductances.
func path3() *ReductionGraph {
	return &ReductionGraph{
		Vertices: []Vertex{{1}, {1}, {1}},
		Edges: []Edge{
			{U: 0, V: 1, Conductance: 1},
			{U: 1, V: 2, Conductance: 1},
		},
	}
}

// TestValidate verifies the structural invariants and their sentinels.
func TestValidate(t *testing.T) {
	t.Parallel()

	// 1. A well-formed chain validates.
	if err := path3().Validate(); err != nil {
		t.Fatalf("valid chain rejected: %v", err)
	}

	// 2. Empty arena.
	empty := &ReductionGraph{}
	if err := empty.Validate(); !errors.Is(err, ErrNoVertices) {
		t.Errorf("empty arena: expected ErrNoVertices, got %v", err)
	}

	// 3. Edge endpoint out of range.
	bad := path3()
	bad.Edges[1].V = 7
	if err := bad.Validate(); !errors.Is(err, ErrBadEdgeEndpoint) {
		t.Errorf("out-of-range endpoint: expected ErrBadEdgeEndpoint, got %v", err)
	}

	// 4. Conductance must be strictly positive.
	zero := path3()
	zero.Edges[0].Conductance = 0
	if err := zero.Validate(); !errors.Is(err, ErrNonPositiveConductance) {
		t.Errorf("zero conductance: expected ErrNonPositiveConductance, got %v", err)
	}
}

// TestConnected verifies connectivity over the arena representation.
func TestConnected(t *testing.T) {
	t.Parallel()

	// 1. Chain is connected.
	if !path3().Connected() {
		t.Error("chain reported disconnected")
	}

	// 2. Single vertex is connected by definition.
	single := &ReductionGraph{Vertices: []Vertex{{1}}}
	if !single.Connected() {
		t.Error("single vertex reported disconnected")
	}

	// 3. Empty graph is not connected.
	if (&ReductionGraph{}).Connected() {
		t.Error("empty graph reported connected")
	}

	// 4. Two components.
	split := &ReductionGraph{
		Vertices: []Vertex{{1}, {1}, {1}, {1}},
		Edges: []Edge{
			{U: 0, V: 1, Conductance: 1},
			{U: 2, V: 3, Conductance: 1},
		},
	}
	if split.Connected() {
		t.Error("two-component graph reported connected")
	}
}

// TestKnownTypes pins the closed type set.
func TestKnownTypes(t *testing.T) {
	t.Parallel()

	for _, typ := range SupportedTypes() {
		if !typ.Known() {
			t.Errorf("supported type %s not Known()", typ)
		}
	}
	if ReductionType("Z9").Known() {
		t.Error("unknown tag reported Known()")
	}
}

// TestSourceSpecDegenerate covers the no-flow short-circuit.
func TestSourceSpecDegenerate(t *testing.T) {
	t.Parallel()

	if !(SourceSpec{Inject: 2, Extract: 2, Strength: 1}).Degenerate() {
		t.Error("inject==extract should be degenerate")
	}
	if !(SourceSpec{Inject: 1, Extract: 0, Strength: 0}).Degenerate() {
		t.Error("zero strength should be degenerate")
	}
	if (SourceSpec{Inject: 1, Extract: 0, Strength: 1}).Degenerate() {
		t.Error("proper source reported degenerate")
	}
}
