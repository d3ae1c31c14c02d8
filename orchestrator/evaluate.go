// SPDX-License-Identifier: MIT
// Package orchestrator: evaluation of the target height inequality.

package orchestrator

import (
	"math"

	"github.com/tesalab/tesa/core"
)

// BoundTolerance is the numeric slack of the inequality comparison:
// h_L ≤ RHS is accepted within this relative tolerance, never as exact
// float equality.
const BoundTolerance = 1e-9

// EvaluateBound computes RHS = (1−δ)·m_D + C_Global and compares h_L
// against it. Non-finite operands give an indeterminate verdict.
//
// For fixed m_D > 0 and fixed C_Global the RHS is monotonically
// non-increasing in δ, so raising δ can only tighten the bound.
func EvaluateBound(hL, mD, delta, cGlobal float64) (float64, core.Verdict) {
	rhs := (1.0-delta)*mD + cGlobal
	if math.IsNaN(rhs) || math.IsInf(rhs, 0) || math.IsNaN(hL) || math.IsInf(hL, 0) {
		return rhs, core.BoundIndeterminate
	}
	slack := BoundTolerance * math.Max(1.0, math.Abs(rhs))
	if hL <= rhs+slack {
		return rhs, core.BoundHolds
	}
	return rhs, core.BoundFails
}
