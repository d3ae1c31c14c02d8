// Package orchestrator: end-to-end pipeline tests — the audited
// scenarios, summation-order invariance, batch isolation of per-place
// failures and reproducibility across worker counts.
package orchestrator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tesalab/tesa/archimedean"
	"github.com/tesalab/tesa/core"
	"github.com/tesalab/tesa/local"
	"github.com/tesalab/tesa/spectral"
)

// Fixture places:
//   - v1: I_1 at p=3, conductance 5, unit current over one edge ⇒
//     E = 1/(2·5) = 0.1, K_v = 0.2 ⇒ C = 0.3.
//   - v2: I_2 at p=2, degenerate source (i0 = 0) ⇒ E = 0, C = K_v = 0.5.
var (
	placeV1 = core.Place{ID: "v1", Type: core.TypeIn, Prime: 3, I0: 1, N: 1, Conductance: 5}
	placeV2 = core.Place{ID: "v2", Type: core.TypeIn, Prime: 2, I0: 0, N: 2, Conductance: 1}
)

func newTestOrchestrator(opts ...Option) *Orchestrator {
	return New(spectral.Placeholder{}, archimedean.EpsilonControl{}, opts...)
}

func baseRequest(places ...core.Place) Request {
	bound := 0.1
	return Request{
		Scenario: "test",
		Places:   places,
		Genus:    1,
		Family:   spectral.FamilyData{DeltaLowerBound: &bound},
		Epsilon:  archimedean.EpsilonParams{CEpsilon: 0.05},
		HL:       8,
		MD:       10,
	}
}

func TestRunScenarioEndToEnd(t *testing.T) {
	t.Parallel()

	// Scenarios B and C of the audit: ΣC_Type = 0.8, C_Global = 0.85,
	// RHS = 0.9·10 + 0.85 = 9.85 and the bound holds for h_L = 8.
	cert, err := newTestOrchestrator().Run(context.Background(), baseRequest(placeV1, placeV2))
	require.NoError(t, err)

	require.False(t, cert.Partial)
	require.Empty(t, cert.Failures)
	require.Len(t, cert.Locals, 2)
	require.Equal(t, "v1", cert.Locals[0].PlaceID)
	require.Equal(t, "v2", cert.Locals[1].PlaceID)

	require.InDelta(t, 0.3, cert.Locals[0].CType, 1e-12)
	require.Equal(t, 0.5, cert.Locals[1].CType)
	require.InDelta(t, 0.8, cert.SumCType, 1e-12)
	require.InDelta(t, 0.85, cert.CGlobal, 1e-12)
	require.InDelta(t, 9.85, cert.RHS, 1e-12)
	require.Equal(t, core.BoundHolds, cert.Holds)
	require.True(t, cert.Sanity.OK())
	require.NotEmpty(t, cert.RunID)
}

func TestRunSummationOrderInvariance(t *testing.T) {
	t.Parallel()

	// Five places, three orderings: ΣC_Type must agree within float
	// tolerance regardless of iteration order.
	p3 := core.Place{ID: "v3", Type: core.TypeD4, Prime: 2, I0: 1, N: 0, Conductance: 1}
	p4 := core.Place{ID: "v4", Type: core.TypeE6, Prime: 3, I0: 3, N: 0, Conductance: 1}
	p5 := core.Place{ID: "v5", Type: core.TypeIn, Prime: 5, I0: 2, N: 3, Conductance: 1}

	perms := [][]core.Place{
		{placeV1, placeV2, p3, p4, p5},
		{p5, p4, p3, placeV2, placeV1},
		{p3, placeV1, p5, placeV2, p4},
	}

	orch := newTestOrchestrator()
	var sums []float64
	for _, places := range perms {
		cert, err := orch.Run(context.Background(), baseRequest(places...))
		require.NoError(t, err)
		require.False(t, cert.Partial)
		sums = append(sums, cert.SumCType)
	}
	require.InDelta(t, sums[0], sums[1], 1e-12)
	require.InDelta(t, sums[0], sums[2], 1e-12)
}

func TestRunReproducibleAcrossWorkerCounts(t *testing.T) {
	t.Parallel()

	// The reduce runs in place order over index-addressed slots, so the
	// sum is bit-identical for any parallelism degree.
	places := []core.Place{placeV1, placeV2,
		{ID: "v3", Type: core.TypeE8, Prime: 2, I0: 7, N: 0, Conductance: 2},
		{ID: "v4", Type: core.TypeD6, Prime: 3, I0: 6, N: 0, Conductance: 0.5},
	}

	one, err := newTestOrchestrator(WithWorkers(1)).Run(context.Background(), baseRequest(places...))
	require.NoError(t, err)
	many, err := newTestOrchestrator(WithWorkers(8)).Run(context.Background(), baseRequest(places...))
	require.NoError(t, err)

	require.Equal(t, one.SumCType, many.SumCType)
	require.Equal(t, one.CGlobal, many.CGlobal)
}

func TestRunIsolatesUnknownType(t *testing.T) {
	t.Parallel()

	// An unknown tag fails its own place only: siblings complete, the
	// failed place is listed, ΣC_Type covers the survivors, and the
	// verdict becomes indeterminate.
	bad := core.Place{ID: "zz", Type: core.ReductionType("Z9"), Prime: 2, Conductance: 1}
	cert, err := newTestOrchestrator().Run(context.Background(), baseRequest(placeV1, bad, placeV2))
	require.NoError(t, err)

	require.True(t, cert.Partial)
	require.Len(t, cert.Failures, 1)
	require.Equal(t, "zz", cert.Failures[0].PlaceID)
	require.NotEmpty(t, cert.Failures[0].Reason)
	require.Len(t, cert.Locals, 2)
	require.InDelta(t, 0.8, cert.SumCType, 1e-12)
	require.Equal(t, core.BoundIndeterminate, cert.Holds)
}

func TestRunIsolatesTableMiss(t *testing.T) {
	t.Parallel()

	// A K_v miss (unsupported prime) is the same error class: local to
	// the place, never fatal for the batch.
	miss := core.Place{ID: "p13", Type: core.TypeIn, Prime: 13, N: 1, I0: 1, Conductance: 1}
	cert, err := newTestOrchestrator().Run(context.Background(), baseRequest(miss, placeV2))
	require.NoError(t, err)

	require.True(t, cert.Partial)
	require.Len(t, cert.Failures, 1)
	require.Equal(t, "p13", cert.Failures[0].PlaceID)
	require.Equal(t, 0.5, cert.SumCType)
}

func TestRunUsesCache(t *testing.T) {
	t.Parallel()

	cache := local.NewCache()
	orch := newTestOrchestrator(WithCache(cache))

	_, err := orch.Run(context.Background(), baseRequest(placeV1, placeV2))
	require.NoError(t, err)
	require.Equal(t, 2, cache.Len())

	// Second run hits the memoized results and must agree exactly.
	cert, err := orch.Run(context.Background(), baseRequest(placeV1, placeV2))
	require.NoError(t, err)
	require.InDelta(t, 0.8, cert.SumCType, 1e-12)
	require.Equal(t, 2, cache.Len())
}

func TestRunNilSupplier(t *testing.T) {
	t.Parallel()

	orch := New(nil, nil)
	_, err := orch.Run(context.Background(), baseRequest(placeV1))
	require.ErrorIs(t, err, ErrNilSupplier)
}

func TestRunEmptyPlaceList(t *testing.T) {
	t.Parallel()

	// Nothing local to sum: ΣC_Type = 0, certificate complete, verdict
	// decided by δ and C_∞ alone.
	cert, err := newTestOrchestrator().Run(context.Background(), baseRequest())
	require.NoError(t, err)
	require.False(t, cert.Partial)
	require.Zero(t, cert.SumCType)
	require.Equal(t, core.BoundHolds, cert.Holds)
}
