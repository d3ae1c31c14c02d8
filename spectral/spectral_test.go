// Package spectral contains unit tests for δ normalization, the gap
// estimate and the placeholder strategy precedence.
package spectral

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeDelta(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0.0, NormalizeDelta(-0.3, DefaultClipEps))
	require.Equal(t, 0.25, NormalizeDelta(0.25, DefaultClipEps))
	require.Equal(t, 1.0-DefaultClipEps, NormalizeDelta(1.7, DefaultClipEps))
	require.Equal(t, 0.0, NormalizeDelta(math.NaN(), DefaultClipEps))
	require.Equal(t, 0.0, NormalizeDelta(math.Inf(1), DefaultClipEps))
}

func TestEstimateSpectralGapPath2(t *testing.T) {
	t.Parallel()

	// Unit path on two vertices: spectrum {0, 2}; the projected
	// canonical basis hits the λ₂ eigenvector exactly.
	lap := [][]float64{{1, -1}, {-1, 1}}
	gap, ok := EstimateSpectralGap(lap)
	require.True(t, ok)
	require.InDelta(t, 2.0, gap, 1e-12)
}

func TestEstimateSpectralGapDegenerateInput(t *testing.T) {
	t.Parallel()

	_, ok := EstimateSpectralGap(nil)
	require.False(t, ok)
	_, ok = EstimateSpectralGap([][]float64{{1, -1}})
	require.False(t, ok)
}

func TestPlaceholderExplicitBound(t *testing.T) {
	t.Parallel()

	bound := 0.1
	d, err := Placeholder{}.ComputeDelta(1, FamilyData{DeltaLowerBound: &bound})
	require.NoError(t, err)
	require.Equal(t, 0.1, d.Value)
	require.Equal(t, "explicit-lower-bound", d.Certificate.Method)
	require.Equal(t, 1, d.Certificate.Genus)

	// The supplier must honor the [0,1) range even for bad bounds.
	huge := 3.0
	d, err = Placeholder{}.ComputeDelta(1, FamilyData{DeltaLowerBound: &huge})
	require.NoError(t, err)
	require.Less(t, d.Value, 1.0)
	require.GreaterOrEqual(t, d.Value, 0.0)
}

func TestPlaceholderLaplacianStrategy(t *testing.T) {
	t.Parallel()

	fam := FamilyData{
		Laplacian:   [][]float64{{1, -1}, {-1, 1}},
		LambdaScale: 4.0,
	}
	d, err := Placeholder{}.ComputeDelta(2, fam)
	require.NoError(t, err)
	require.Equal(t, "discrete-laplacian-ratio", d.Certificate.Method)
	require.InDelta(t, 0.5, d.Value, 1e-12) // λ₂/scale = 2/4
}

func TestPlaceholderSamplesAndFallback(t *testing.T) {
	t.Parallel()

	d, err := Placeholder{}.ComputeDelta(0, FamilyData{SpectralSamples: []float64{0.2, 0.8, -1}})
	require.NoError(t, err)
	require.Equal(t, "spectral-samples-heuristic", d.Certificate.Method)
	require.InDelta(t, 0.25, d.Value, 1e-12) // min/max of positive samples

	d, err = Placeholder{}.ComputeDelta(0, FamilyData{})
	require.NoError(t, err)
	require.Equal(t, "fallback-zero", d.Certificate.Method)
	require.Zero(t, d.Value)
}

func TestPlaceholderForceCap(t *testing.T) {
	t.Parallel()

	bound, capVal := 0.9, 0.3
	d, err := Placeholder{}.ComputeDelta(1, FamilyData{DeltaLowerBound: &bound, ForceCap: &capVal})
	require.NoError(t, err)
	require.Equal(t, 0.3, d.Value)
}
