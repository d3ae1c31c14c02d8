// SPDX-License-Identifier: MIT
// Package potential: sentinel error set (singular-system error class).
// All are per-place errors: callers isolate them at the place boundary
// and must not let them abort sibling computations.

package potential

import "errors"

var (
	// ErrSingularSystem indicates the Laplacian system is singular beyond
	// the expected one-dimensional kernel (vanishing pivot during the
	// reduced solve).
	ErrSingularSystem = errors.New("potential: singular system")

	// ErrDisconnected indicates the graph support is not connected, so no
	// physically meaningful potential exists.
	ErrDisconnected = errors.New("potential: graph not connected")

	// ErrBadSource indicates a source vertex index outside the arena.
	ErrBadSource = errors.New("potential: source vertex out of range")

	// ErrKirchhoffViolated indicates the derived currents failed the
	// conservation post-condition at a non-source vertex.
	ErrKirchhoffViolated = errors.New("potential: current conservation violated")
)
