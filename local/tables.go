// SPDX-License-Identifier: MIT
// Package local: the K_v / f_v^tame constant tables.
//
// Contract:
//   - Tables are immutable after NewTables; lookups are pure functions.
//   - NewTables validates exhaustiveness: every supported reduction type
//     must carry a tame factor and a combination rule, else
//     ErrIncompleteTable. K_v is keyed by (type, prime); a missing pair
//     is ErrTableMiss at lookup — never a silent zero.
//
// The default numeric content mirrors the calibrated placeholder tables
// of the audit: D/E penalties per residue characteristic, chain
// penalties for the multiplicative I_n family, tame weights per type.

package local

import (
	"fmt"

	"github.com/tesalab/tesa/core"
)

// TameRule selects how f_v^tame combines with the Fenchel energy for a
// given type. See the package documentation for the per-type rules.
type TameRule int

const (
	// RuleAdditive: C_Type,v = K_v + E + f_tame.
	RuleAdditive TameRule = iota
	// RuleScaleSource: f_v = f_tame·(1+K_v)/c scales the injected
	// current before the solve; then C_Type,v = K_v + E.
	RuleScaleSource
)

// tableKey indexes K_v by (type, prime).
type tableKey struct {
	typ   core.ReductionType
	prime int64
}

// Tables bundles the K_v and f_v^tame lookups plus the per-type
// combination rule. Construct via NewTables or DefaultTables.
type Tables struct {
	kv   map[tableKey]float64
	tame map[core.ReductionType]float64
	rule map[core.ReductionType]TameRule
}

// NewTables builds a validated table set. Every type in
// core.SupportedTypes() must have a tame factor and a rule; K_v coverage
// is per (type, prime) and checked lazily at lookup.
func NewTables(kv map[tableKey]float64, tame map[core.ReductionType]float64, rule map[core.ReductionType]TameRule) (*Tables, error) {
	for _, typ := range core.SupportedTypes() {
		if _, ok := tame[typ]; !ok {
			return nil, fmt.Errorf("NewTables: tame[%s]: %w", typ, ErrIncompleteTable)
		}
		if _, ok := rule[typ]; !ok {
			return nil, fmt.Errorf("NewTables: rule[%s]: %w", typ, ErrIncompleteTable)
		}
	}
	return &Tables{kv: kv, tame: tame, rule: rule}, nil
}

// DefaultTables returns the calibrated placeholder tables. The content
// is a fixed literal, so the result is identical across calls.
func DefaultTables() *Tables {
	kv := map[tableKey]float64{
		// D/E penalties, p = 2.
		{core.TypeD4, 2}: 0.15, {core.TypeD5, 2}: 0.18, {core.TypeD6, 2}: 0.20,
		{core.TypeE6, 2}: 0.22, {core.TypeE7, 2}: 0.25, {core.TypeE8, 2}: 0.28,
		// D/E penalties, p = 3.
		{core.TypeD4, 3}: 0.10, {core.TypeD5, 3}: 0.12, {core.TypeD6, 3}: 0.14,
		{core.TypeE6, 3}: 0.16, {core.TypeE7, 3}: 0.18, {core.TypeE8, 3}: 0.20,
		// D/E penalties vanish for p ≥ 5.
		{core.TypeD4, 5}: 0, {core.TypeD5, 5}: 0, {core.TypeD6, 5}: 0,
		{core.TypeE6, 5}: 0, {core.TypeE7, 5}: 0, {core.TypeE8, 5}: 0,
		{core.TypeD4, 7}: 0, {core.TypeD5, 7}: 0, {core.TypeD6, 7}: 0,
		{core.TypeE6, 7}: 0, {core.TypeE7, 7}: 0, {core.TypeE8, 7}: 0,
		// Multiplicative chains I_n.
		{core.TypeIn, 2}: 0.5, {core.TypeIn, 3}: 0.2,
		{core.TypeIn, 5}: 0, {core.TypeIn, 7}: 0,
	}
	tame := map[core.ReductionType]float64{
		core.TypeIn: 0.00,
		core.TypeD4: 0.80, core.TypeD5: 0.85, core.TypeD6: 0.90,
		core.TypeE6: 0.95, core.TypeE7: 1.00, core.TypeE8: 1.05,
	}
	rule := map[core.ReductionType]TameRule{
		core.TypeIn: RuleAdditive,
		core.TypeD4: RuleScaleSource, core.TypeD5: RuleScaleSource, core.TypeD6: RuleScaleSource,
		core.TypeE6: RuleScaleSource, core.TypeE7: RuleScaleSource, core.TypeE8: RuleScaleSource,
	}
	t, err := NewTables(kv, tame, rule)
	if err != nil {
		// The literal above covers the closed type set; failing here is a
		// programmer error in this file, not a runtime condition.
		panic(err)
	}
	return t
}

// KV returns the table constant K_v for (typ, prime).
// Pure; ErrTableMiss on an absent pair.
func (t *Tables) KV(typ core.ReductionType, prime int64) (float64, error) {
	v, ok := t.kv[tableKey{typ, prime}]
	if !ok {
		return 0, fmt.Errorf("KV(%s, p=%d): %w", typ, prime, ErrTableMiss)
	}
	return v, nil
}

// Tame returns f_v^tame for typ. Pure; ErrTableMiss on an unknown type
// (unreachable for tables built by NewTables, kept for safety).
func (t *Tables) Tame(typ core.ReductionType) (float64, error) {
	v, ok := t.tame[typ]
	if !ok {
		return 0, fmt.Errorf("Tame(%s): %w", typ, ErrTableMiss)
	}
	return v, nil
}

// Rule returns the tame combination rule for typ.
func (t *Tables) Rule(typ core.ReductionType) (TameRule, error) {
	r, ok := t.rule[typ]
	if !ok {
		return 0, fmt.Errorf("Rule(%s): %w", typ, ErrTableMiss)
	}
	return r, nil
}

// minConductance guards the f_v division for pathological conductances.
const minConductance = 1e-9

// SourceStrength returns the current to inject for a place of the given
// type: 1 for additive types, f_v = f_tame·(1+K_v)/c for scale-source
// types (c floored at minConductance).
func (t *Tables) SourceStrength(typ core.ReductionType, kv, tame, conductance float64) (float64, error) {
	r, err := t.Rule(typ)
	if err != nil {
		return 0, err
	}
	if r == RuleAdditive {
		return 1.0, nil
	}
	c := conductance
	if c < minConductance {
		c = minConductance
	}
	return tame * (1.0 + kv) / c, nil
}
