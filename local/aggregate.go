// SPDX-License-Identifier: MIT
// Package local: aggregation of table constant, energy and tame factor
// into the per-place constant C_Type,v.

package local

import (
	"fmt"
	"math"

	"github.com/tesalab/tesa/core"
)

// Aggregate combines the looked-up K_v, the solved Fenchel energy and
// the tame factor into a LocalConstant for the place.
//
// Post-conditions: the result is finite (core.ErrNotFinite otherwise);
// by construction of K_v ≥ 0 and E ≥ 0, C_Type,v ≥ 0 is expected — a
// negative value is not rejected here but is flagged by the
// orchestrator's ΣC_Type sanity check.
func Aggregate(place core.Place, g *core.ReductionGraph, energy float64, tables *Tables) (core.LocalConstant, error) {
	kv, err := tables.KV(place.Type, place.Prime)
	if err != nil {
		return core.LocalConstant{}, fmt.Errorf("Aggregate(%s): %w", place.ID, err)
	}
	tame, err := tables.Tame(place.Type)
	if err != nil {
		return core.LocalConstant{}, fmt.Errorf("Aggregate(%s): %w", place.ID, err)
	}
	rule, err := tables.Rule(place.Type)
	if err != nil {
		return core.LocalConstant{}, fmt.Errorf("Aggregate(%s): %w", place.ID, err)
	}

	// Type-dependent combination; for scale-source types the tame factor
	// already acted on the injected current, so it does not re-enter here.
	cType := kv + energy
	if rule == RuleAdditive {
		cType += tame
	}

	if math.IsNaN(cType) || math.IsInf(cType, 0) {
		return core.LocalConstant{}, fmt.Errorf("Aggregate(%s): C_Type=%g: %w", place.ID, cType, core.ErrNotFinite)
	}

	return core.LocalConstant{
		PlaceID:     place.ID,
		Type:        place.Type,
		Prime:       place.Prime,
		KV:          kv,
		Energy:      energy,
		TameFactor:  tame,
		CType:       cType,
		VertexCount: g.NumVertices(),
	}, nil
}
