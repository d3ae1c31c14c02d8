// SPDX-License-Identifier: MIT
// Package archimedean: C_∞ supplier contract and the ε-control placeholder.

package archimedean

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotFinite is returned when the configured C_∞ value is NaN or ±Inf.
var ErrNotFinite = errors.New("archimedean: C_infty not finite")

// DefaultMeanAtol is the absolute tolerance of the mean-zero check.
const DefaultMeanAtol = 1e-9

// LData describes the line bundle the constant refers to (free-form).
type LData struct {
	Bundle string
}

// MetricData encodes the mean-zero normalization constraint the
// implementation must respect, plus optional potential samples used to
// verify it numerically.
type MetricData struct {
	// MeanZero records that the normalization was imposed externally.
	MeanZero bool

	// PotentialSamples are discrete samples of the continuous potential;
	// empty means "trust MeanZero".
	PotentialSamples []float64

	// MeanAtol overrides DefaultMeanAtol when positive.
	MeanAtol float64
}

// EpsilonParams controls the placeholder value.
type EpsilonParams struct {
	// CEpsilon is used as C_∞ unless overridden below.
	CEpsilon float64

	// SupNormBound is a trusted upper bound for sup|G|, recorded in the
	// report when present.
	SupNormBound *float64

	// OverrideWithSup replaces C_∞ with the estimated sup-norm of the
	// potential samples when samples exist.
	OverrideWithSup bool
}

// MeanZeroStats are the numeric results of the normalization check.
type MeanZeroStats struct {
	Mean float64
	Std  float64
	N    int
	Atol float64
	OK   bool
}

// Report is the audit metadata attached to every C_∞.
type Report struct {
	Method       string
	MeanZero     MeanZeroStats
	SupNormBound *float64
	CEpsilonUsed float64
}

// CInfty is the supplier result: a finite value plus its report.
type CInfty struct {
	Value  float64
	Report Report
}

// Supplier is the capability contract consumed by the orchestrator.
type Supplier interface {
	// ComputeCInfty returns a finite C_∞ with report metadata.
	ComputeCInfty(l LData, metric MetricData, eps EpsilonParams) (CInfty, error)
}

// EpsilonControl is the default placeholder supplier. The zero value is
// ready to use.
type EpsilonControl struct{}

var _ Supplier = EpsilonControl{}

// ComputeCInfty returns CEpsilon (or the sample sup-norm when the
// override is requested and samples exist), with the mean-zero check
// result embedded in the report. A non-finite outcome is an error, not
// a value.
func (EpsilonControl) ComputeCInfty(_ LData, metric MetricData, eps EpsilonParams) (CInfty, error) {
	stats := CheckMeanZero(metric.PotentialSamples, atolOf(metric))

	value := eps.CEpsilon
	method := "placeholder-epsilon-control"
	if eps.OverrideWithSup {
		if sup, ok := EstimateSupNorm(metric.PotentialSamples); ok {
			value = sup
			method = "sup-norm-override"
		}
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return CInfty{}, fmt.Errorf("ComputeCInfty: value=%g: %w", value, ErrNotFinite)
	}

	return CInfty{
		Value: value,
		Report: Report{
			Method:       method,
			MeanZero:     stats,
			SupNormBound: eps.SupNormBound,
			CEpsilonUsed: eps.CEpsilon,
		},
	}, nil
}

// CheckMeanZero verifies the mean of the samples is ~0 within atol.
// With no samples the normalization is assumed correct (OK = true).
func CheckMeanZero(samples []float64, atol float64) MeanZeroStats {
	n := len(samples)
	if n == 0 {
		return MeanZeroStats{Atol: atol, OK: true}
	}
	var mean float64
	for _, x := range samples {
		mean += x
	}
	mean /= float64(n)
	var varSum float64
	for _, x := range samples {
		d := x - mean
		varSum += d * d
	}
	return MeanZeroStats{
		Mean: mean,
		Std:  math.Sqrt(varSum / float64(n)),
		N:    n,
		Atol: atol,
		OK:   math.Abs(mean) <= atol,
	}
}

// EstimateSupNorm returns max|x| over the samples; ok=false when empty.
func EstimateSupNorm(samples []float64) (float64, bool) {
	if len(samples) == 0 {
		return 0, false
	}
	sup := 0.0
	for _, x := range samples {
		if a := math.Abs(x); a > sup {
			sup = a
		}
	}
	return sup, true
}

func atolOf(m MetricData) float64 {
	if m.MeanAtol > 0 {
		return m.MeanAtol
	}
	return DefaultMeanAtol
}
