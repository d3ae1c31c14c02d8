// SPDX-License-Identifier: MIT
// Package: tesa/builder
//
// impl_chain.go - the multiplicative chain family I_n.
//
// Contract:
//   - n ≥ 0 (else ErrBadParameter).
//   - n = 0 maps to the trivial single-vertex graph (zero edges): the
//     documented base case, so the aggregator sees zero energy for I_0.
//   - Emits edges (i-1)–i for i = 1..n in stable increasing order.
//
// Complexity: O(n) time, O(n) space.

package builder

import (
	"fmt"

	"github.com/tesalab/tesa/core"
)

const methodChain = "Chain"

// chain builds the path topology of I_n: n+1 vertices, n edges.
func chain(params core.GraphParams) ([][2]int, int, error) {
	if params.N < 0 {
		return nil, 0, fmt.Errorf("%s: n=%d < 0: %w", methodChain, params.N, ErrBadParameter)
	}

	// I_0: trivial single-vertex graph, no edges.
	if params.N == 0 {
		return nil, 1, nil
	}

	pairs := make([][2]int, 0, params.N)
	for i := 1; i <= params.N; i++ {
		pairs = append(pairs, [2]int{i - 1, i})
	}
	return pairs, params.N + 1, nil
}
