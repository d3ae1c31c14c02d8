// SPDX-License-Identifier: MIT

// Package builder constructs canonical reduction graphs from a closed,
// versioned set of reduction types.
//
// Design contract (strict):
//   - One orchestrator: Build(typ, params). Dispatches to the type's
//     constructor, then validates the result against the type's canonical
//     vertex/edge counts and the connectivity invariant.
//   - Constructors are pure: same (typ, params) ⇒ identical arena, byte
//     for byte. Edges are emitted in a stable, documented order.
//   - Unknown tags fail with ErrUnknownType; degenerate parameters fail
//     with ErrBadParameter. Constructors never panic.
//
// Topology catalogue:
//   - I_n  — chain of n+1 vertices, n edges (n ≥ 0; I_0 is the trivial
//     single-vertex graph with zero edges and zero energy).
//   - D4   — star: centre 0 with leaves 1..4.
//   - D5   — star 0-{1,2,3} with tail 0-4-5.
//   - D6   — star 0-{1,2,3} with tail 0-4-5-6.
//   - E6   — chain 0-1-2-3-4 with branch 2-5.
//   - E7   — chain 0-1-2-3-4-5 with branch 3-6.
//   - E8   — chain 0-1-2-3-4-5-6 with branch 2-7.
package builder
