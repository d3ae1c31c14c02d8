// SPDX-License-Identifier: MIT
// Package core: sentinel error set.
// Only package-level sentinels are exposed; callers branch with errors.Is.
// Sentinels are never wrapped with formatted strings at definition site;
// implementations attach context via fmt.Errorf("ctx: %w", ErrX).

package core

import "errors"

var (
	// ErrNoVertices indicates a reduction graph with an empty vertex arena.
	// Physically meaningful potentials need at least one component.
	ErrNoVertices = errors.New("core: graph has no vertices")

	// ErrBadEdgeEndpoint indicates an edge whose U or V index falls outside
	// the vertex arena.
	ErrBadEdgeEndpoint = errors.New("core: edge endpoint out of range")

	// ErrNonPositiveConductance indicates an edge conductance ≤ 0 on the
	// graph's support. Conductances must be strictly positive.
	ErrNonPositiveConductance = errors.New("core: conductance not strictly positive")

	// ErrNotFinite signals a NaN or ±Inf value where the numeric policy
	// requires a finite one (energies, constants, certificate fields).
	ErrNotFinite = errors.New("core: NaN or Inf encountered")
)
