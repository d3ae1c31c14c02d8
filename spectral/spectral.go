// SPDX-License-Identifier: MIT
// Package spectral: δ supplier contract and the placeholder strategies.
//
// Strategy precedence (mirrors the audited placeholder):
//  1. explicit lower bound from the family data;
//  2. discrete Laplacian gap estimate λ₂ / λ_scale;
//  3. positive spectral samples heuristic min/max;
//  4. fallback δ = 0.
//
// Every path clips into [0, 1−ClipEps] and records its method in the
// certificate, so a later certified routine can be swapped in without
// touching the orchestrator.

package spectral

import (
	"errors"
	"math"
)

// ErrNoFamilyData is returned when a strategy-specific supplier is asked
// to run without the data it needs.
var ErrNoFamilyData = errors.New("spectral: family data missing for strategy")

// DefaultClipEps is the safety margin keeping δ strictly below 1.
const DefaultClipEps = 1e-12

// Certificate is the audit metadata attached to every δ.
type Certificate struct {
	Method     string  // strategy that produced the value
	Raw        float64 // value before normalization
	Normalized float64 // value after clipping into [0,1)
	Genus      int     // family genus the value refers to
}

// Delta is the supplier result: a value in [0,1) plus its certificate.
type Delta struct {
	Value       float64
	Certificate Certificate
}

// FamilyData carries whichever inputs the chosen strategy consumes.
// Absent fields select the next strategy in precedence order.
type FamilyData struct {
	// DeltaLowerBound, when non-nil, is used directly (strategy 1).
	DeltaLowerBound *float64

	// Laplacian and LambdaScale enable the discrete gap estimate
	// (strategy 2): δ_raw = min(1, λ₂/LambdaScale), LambdaScale > 0.
	Laplacian   [][]float64
	LambdaScale float64

	// SpectralSamples enable the min/max heuristic (strategy 3).
	SpectralSamples []float64

	// ForceCap, when non-nil, caps the raw value before normalization.
	ForceCap *float64

	// ClipEps overrides DefaultClipEps when positive.
	ClipEps float64
}

// DeltaSupplier is the capability contract consumed by the orchestrator.
type DeltaSupplier interface {
	// ComputeDelta returns δ ∈ [0,1) with certificate metadata.
	ComputeDelta(genus int, fam FamilyData) (Delta, error)
}

// Placeholder is the default supplier implementing the full strategy
// precedence. The zero value is ready to use.
type Placeholder struct{}

var _ DeltaSupplier = Placeholder{}

// ComputeDelta walks the strategy precedence and returns the first
// applicable δ. It never returns an out-of-range value.
func (Placeholder) ComputeDelta(genus int, fam FamilyData) (Delta, error) {
	eps := fam.ClipEps
	if eps <= 0 {
		eps = DefaultClipEps
	}

	// 1. Explicit lower bound.
	if fam.DeltaLowerBound != nil {
		raw := capRaw(*fam.DeltaLowerBound, fam.ForceCap)
		return finish("explicit-lower-bound", raw, eps, genus), nil
	}

	// 2. Discrete Laplacian gap.
	if fam.Laplacian != nil && fam.LambdaScale > 0 {
		raw := 0.0
		if lam2, ok := EstimateSpectralGap(fam.Laplacian); ok {
			raw = math.Min(1.0, lam2/fam.LambdaScale)
		}
		raw = capRaw(raw, fam.ForceCap)
		return finish("discrete-laplacian-ratio", raw, eps, genus), nil
	}

	// 3. Spectral samples heuristic.
	if len(fam.SpectralSamples) > 0 {
		raw := capRaw(samplesHeuristic(fam.SpectralSamples), fam.ForceCap)
		return finish("spectral-samples-heuristic", raw, eps, genus), nil
	}

	// 4. Fallback.
	return finish("fallback-zero", 0.0, eps, genus), nil
}

// NormalizeDelta clips v into [0, 1−eps]. NaN/Inf normalize to 0.
func NormalizeDelta(v, eps float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0.0
	}
	if v < 0 {
		return 0.0
	}
	if upper := 1.0 - eps; v >= upper {
		return upper
	}
	return v
}

// EstimateSpectralGap estimates λ₂, the second-smallest eigenvalue of a
// symmetric unnormalized Laplacian, by the minimum Rayleigh quotient
// over the canonical basis projected orthogonal to the constant vector.
// Robust for the small matrices this audit handles; reports ok=false on
// empty or non-square input.
func EstimateSpectralGap(lap [][]float64) (float64, bool) {
	n := len(lap)
	if n == 0 {
		return 0, false
	}
	for _, row := range lap {
		if len(row) != n {
			return 0, false
		}
	}

	// Unit constant vector spans the λ=0 eigenspace.
	invSqrtN := 1.0 / math.Sqrt(float64(n))

	best := math.Inf(1)
	v := make([]float64, n)
	for k := 0; k < n; k++ {
		// Project e_k orthogonal to the constant direction and normalize.
		proj := invSqrtN
		norm2 := 0.0
		for i := 0; i < n; i++ {
			v[i] = -proj * invSqrtN
			if i == k {
				v[i] += 1.0
			}
			norm2 += v[i] * v[i]
		}
		if norm2 == 0 {
			continue
		}
		norm := math.Sqrt(norm2)
		for i := range v {
			v[i] /= norm
		}
		// Rayleigh quotient r = vᵀLv (v already unit).
		r := 0.0
		for i := 0; i < n; i++ {
			lv := 0.0
			for j := 0; j < n; j++ {
				lv += lap[i][j] * v[j]
			}
			r += v[i] * lv
		}
		if r < 0 {
			r = 0 // numeric noise below zero
		}
		if r < best {
			best = r
		}
	}
	if math.IsInf(best, 1) {
		return 0, false
	}
	return best, true
}

func samplesHeuristic(samples []float64) float64 {
	var pos []float64
	for _, x := range samples {
		if x > 0 {
			pos = append(pos, x)
		}
	}
	switch len(pos) {
	case 0:
		return 0.0
	case 1:
		// A single sample says nothing about the ratio; stay conservative.
		return 0.5
	default:
		smin, smax := pos[0], pos[0]
		for _, x := range pos[1:] {
			smin = math.Min(smin, x)
			smax = math.Max(smax, x)
		}
		if smax == 0 {
			return 0.0
		}
		return math.Min(1.0, smin/smax)
	}
}

func capRaw(raw float64, forceCap *float64) float64 {
	if forceCap != nil && raw > *forceCap {
		return *forceCap
	}
	return raw
}

func finish(method string, raw, eps float64, genus int) Delta {
	norm := NormalizeDelta(raw, eps)
	return Delta{
		Value: norm,
		Certificate: Certificate{
			Method:     method,
			Raw:        raw,
			Normalized: norm,
			Genus:      genus,
		},
	}
}
