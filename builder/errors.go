// SPDX-License-Identifier: MIT
// Package: tesa/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using %w.
//   • Constructors MUST NOT panic at runtime.

package builder

import "errors"

// ErrUnknownType indicates a reduction-type tag outside the closed
// supported set. This is the graph-construction error class: local to
// one place, never fatal for the batch.
// Usage: if errors.Is(err, ErrUnknownType) { /* skip the place */ }.
var ErrUnknownType = errors.New("builder: unknown reduction type")

// ErrBadParameter indicates a numeric construction parameter outside its
// domain (negative chain length, non-positive conductance).
// Usage: if errors.Is(err, ErrBadParameter) { /* reject the place */ }.
var ErrBadParameter = errors.New("builder: parameter out of domain")

// ErrConstructFailed indicates the built arena violated its own
// canonical invariants (count mismatch, disconnection). Reaching it
// means a constructor bug, but it is surfaced as an error, not a panic.
var ErrConstructFailed = errors.New("builder: construction failed")
