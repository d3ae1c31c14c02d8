// SPDX-License-Identifier: MIT
// Package orchestrator: the run pipeline.
//
// Contract:
//   - Run is pure with respect to its inputs except for the two external
//     collaborator calls (δ, C_∞); deterministic given deterministic
//     collaborators.
//   - Per-place errors are recorded, never propagated; fatal conditions
//     (nil suppliers, cancelled context, collaborator failure) return an
//     error with no certificate.
//   - Sanity-check failures mark the certificate, they do not raise.

package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tesalab/tesa/archimedean"
	"github.com/tesalab/tesa/builder"
	"github.com/tesalab/tesa/core"
	"github.com/tesalab/tesa/local"
	"github.com/tesalab/tesa/potential"
	"github.com/tesalab/tesa/spectral"
)

// ErrNilSupplier indicates Run was invoked without a δ or C_∞ supplier.
var ErrNilSupplier = errors.New("orchestrator: nil collaborator supplier")

// DefaultWorkers bounds per-place parallelism when no option overrides it.
const DefaultWorkers = 4

// Request bundles the inputs of one audit run.
type Request struct {
	Scenario string
	Places   []core.Place // ordered; reduction follows this order
	Genus    int
	Family   spectral.FamilyData
	Bundle   archimedean.LData
	Metric   archimedean.MetricData
	Epsilon  archimedean.EpsilonParams
	HL, MD   float64 // inequality operands h_L(P), m_D(P)
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithWorkers bounds the number of concurrent per-place workers (≥ 1).
func WithWorkers(n int) Option {
	return func(o *Orchestrator) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithLogger installs a structured logger for per-place outcomes.
func WithLogger(log *zap.Logger) Option {
	return func(o *Orchestrator) {
		if log != nil {
			o.log = log
		}
	}
}

// WithTables overrides the default constant tables.
func WithTables(t *local.Tables) Option {
	return func(o *Orchestrator) {
		if t != nil {
			o.tables = t
		}
	}
}

// WithCache installs a memoization cache for per-place results.
func WithCache(c *local.Cache) Option {
	return func(o *Orchestrator) { o.cache = c }
}

// Orchestrator owns the collaborators and tuning of the audit pipeline.
type Orchestrator struct {
	delta   spectral.DeltaSupplier
	arch    archimedean.Supplier
	tables  *local.Tables
	cache   *local.Cache
	workers int
	log     *zap.Logger
}

// New assembles an orchestrator around the two collaborator suppliers.
func New(delta spectral.DeltaSupplier, arch archimedean.Supplier, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		delta:   delta,
		arch:    arch,
		tables:  local.DefaultTables(),
		workers: DefaultWorkers,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// placeSlot is one index-addressed worker result.
type placeSlot struct {
	lc  core.LocalConstant
	err error
}

// Run executes the full pipeline and returns the certificate.
//
// The certificate is always complete about failures: every place that
// did not produce a local constant appears in Failures with its reason.
func (o *Orchestrator) Run(ctx context.Context, req Request) (*core.GlobalCertificate, error) {
	if o.delta == nil || o.arch == nil {
		return nil, fmt.Errorf("Run: %w", ErrNilSupplier)
	}

	// Parallel per-place phase: workers own their slot exclusively.
	slots := make([]placeSlot, len(req.Places))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.workers)
	for i := range req.Places {
		i := i
		place := req.Places[i]
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			lc, err := o.computeLocal(place)
			slots[i] = placeSlot{lc: lc, err: err}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	// Deterministic reduce: ascending place order, fixed float summation.
	var (
		sum      float64
		locals   = make([]core.LocalConstant, 0, len(req.Places))
		failures []core.PlaceFailure
	)
	for i, slot := range slots {
		if slot.err != nil {
			o.log.Warn("place failed",
				zap.String("place", req.Places[i].ID),
				zap.Error(slot.err))
			failures = append(failures, core.PlaceFailure{
				PlaceID: req.Places[i].ID,
				Reason:  slot.err.Error(),
			})
			continue
		}
		o.log.Debug("place computed",
			zap.String("place", slot.lc.PlaceID),
			zap.Float64("c_type", slot.lc.CType))
		locals = append(locals, slot.lc)
		sum += slot.lc.CType
	}

	// External collaborators. Their failure leaves nothing to certify.
	delta, err := o.delta.ComputeDelta(req.Genus, req.Family)
	if err != nil {
		return nil, fmt.Errorf("Run: delta supplier: %w", err)
	}
	cinf, err := o.arch.ComputeCInfty(req.Bundle, req.Metric, req.Epsilon)
	if err != nil {
		return nil, fmt.Errorf("Run: C_infty supplier: %w", err)
	}

	cGlobal := sum + cinf.Value
	partial := len(failures) > 0

	sanity := core.SanityReport{
		DeltaInRange: delta.Value >= 0 && delta.Value < 1,
		SumNonNeg:    sum >= 0,
		CInftyFinite: !math.IsNaN(cinf.Value) && !math.IsInf(cinf.Value, 0),
		AllValuesReal: allFinite(
			sum, cGlobal, req.HL, req.MD, delta.Value, cinf.Value),
	}

	rhs, verdict := EvaluateBound(req.HL, req.MD, delta.Value, cGlobal)
	if partial || !sanity.OK() {
		// A partial or unsound certificate makes no true/false claim.
		verdict = core.BoundIndeterminate
	}

	cert := &core.GlobalCertificate{
		RunID:    uuid.NewString(),
		Scenario: req.Scenario,
		Delta:    delta.Value,
		Locals:   locals,
		SumCType: sum,
		CInfty:   cinf.Value,
		CGlobal:  cGlobal,
		HL:       req.HL,
		MD:       req.MD,
		RHS:      rhs,
		Holds:    verdict,
		Partial:  partial,
		Failures: failures,
		Sanity:   sanity,
	}

	o.log.Info("run complete",
		zap.String("run_id", cert.RunID),
		zap.String("scenario", cert.Scenario),
		zap.Float64("delta", cert.Delta),
		zap.Float64("sum_c_type", cert.SumCType),
		zap.Float64("c_global", cert.CGlobal),
		zap.String("verdict", string(cert.Holds)),
		zap.Int("failures", len(cert.Failures)))
	return cert, nil
}

// computeLocal runs the whole per-place pipeline. Pure in the place's
// parameters, so results may come from and go to the cache.
func (o *Orchestrator) computeLocal(place core.Place) (core.LocalConstant, error) {
	if o.cache != nil {
		if lc, ok := o.cache.Get(place); ok {
			return lc, nil
		}
	}

	g, err := builder.Build(place.Type, core.GraphParams{N: place.N, Conductance: place.Conductance})
	if err != nil {
		return core.LocalConstant{}, err
	}

	src, err := o.sourceFor(place, g)
	if err != nil {
		return core.LocalConstant{}, err
	}

	phi, _, err := potential.Solve(g, src)
	if err != nil {
		return core.LocalConstant{}, err
	}

	energy := local.FenchelEnergy(g, phi)
	lc, err := local.Aggregate(place, g, energy, o.tables)
	if err != nil {
		return core.LocalConstant{}, err
	}

	if o.cache != nil {
		o.cache.Put(place, lc)
	}
	return lc, nil
}

// sourceFor derives the current injection from the divisor support
// index: current enters at i0 and exits at the reference component 0.
// i0 = 0 is the degenerate no-flow source. The strength follows the
// type's tame rule (scale-source types inject f_v, additive types 1).
func (o *Orchestrator) sourceFor(place core.Place, g *core.ReductionGraph) (core.SourceSpec, error) {
	kv, err := o.tables.KV(place.Type, place.Prime)
	if err != nil {
		return core.SourceSpec{}, err
	}
	tame, err := o.tables.Tame(place.Type)
	if err != nil {
		return core.SourceSpec{}, err
	}
	strength, err := o.tables.SourceStrength(place.Type, kv, tame, place.Conductance)
	if err != nil {
		return core.SourceSpec{}, err
	}
	if place.I0 < 0 || place.I0 >= g.NumVertices() {
		return core.SourceSpec{}, fmt.Errorf("place %s: i0=%d n=%d: %w",
			place.ID, place.I0, g.NumVertices(), potential.ErrBadSource)
	}
	return core.SourceSpec{Inject: place.I0, Extract: 0, Strength: strength}, nil
}

func allFinite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
