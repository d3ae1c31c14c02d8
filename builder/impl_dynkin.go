// SPDX-License-Identifier: MIT
// Package: tesa/builder
//
// impl_dynkin.go - fixed Dynkin-shaped topologies D4/D5/D6 and E6/E7/E8.
//
// Contract:
//   - Each constructor returns a hard-coded edge list in its canonical
//     emission order; params carries only the conductance (applied by
//     Build), so these constructors cannot fail on parameters.
//   - Vertex/edge counts per type: D4 5/4, D5 6/5, D6 7/6, E6 6/5,
//     E7 7/6, E8 8/7.
//
// Determinism: literal edge lists; byte-identical arenas per call.

package builder

import "github.com/tesalab/tesa/core"

// dynkinD4 builds the 4-leaf star: 0-1, 0-2, 0-3, 0-4.
func dynkinD4(core.GraphParams) ([][2]int, int, error) {
	return [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}}, 5, nil
}

// dynkinD5 builds the star 0-{1,2,3} with tail 0-4-5.
func dynkinD5(core.GraphParams) ([][2]int, int, error) {
	return [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}, {4, 5}}, 6, nil
}

// dynkinD6 builds the star 0-{1,2,3} with tail 0-4-5-6.
func dynkinD6(core.GraphParams) ([][2]int, int, error) {
	return [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}, {4, 5}, {5, 6}}, 7, nil
}

// dynkinE6 builds the chain 0-1-2-3-4 with branch 2-5.
func dynkinE6(core.GraphParams) ([][2]int, int, error) {
	return [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {2, 5}}, 6, nil
}

// dynkinE7 builds the chain 0-1-2-3-4-5 with branch 3-6.
func dynkinE7(core.GraphParams) ([][2]int, int, error) {
	return [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {3, 6}}, 7, nil
}

// dynkinE8 builds the chain 0-1-2-3-4-5-6 with branch 2-7.
func dynkinE8(core.GraphParams) ([][2]int, int, error) {
	return [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {2, 7}}, 8, nil
}
