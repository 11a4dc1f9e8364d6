// Package aco - iteration runner and optimization loop.
//
// Ordering invariant: within iteration k every ant reads the trail as
// finalized at the end of iteration k−1. RunIteration therefore builds all
// tours first and applies the single trail update afterwards.
package aco

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/katalvlaran/antsys/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "antsys.aco"

// Colony owns the pheromone trail of one optimization run.
// Not safe for concurrent use.
type Colony struct {
	dist     *DistanceModel
	trail    *PheromoneTrail
	opts     Options
	starts   StartSelector
	observer Observer
	logger   *slog.Logger
	metrics  *Metrics
	tracer   trace.Tracer
	runID    string
}

// NewColony validates opts against dm and creates a fresh trail.
//
// Errors: ErrInvalidOptions (wrapped), ErrAsymmetry when
// opts.RequireSymmetric is set and dm is not symmetric.
func NewColony(dm *DistanceModel, opts Options, copts ...ColonyOption) (*Colony, error) {
	if dm == nil {
		return nil, ErrDimensionMismatch
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.RequireSymmetric {
		if _, err := validateDistMatrix(dm.d, true); err != nil {
			return nil, err
		}
	}

	trail, err := NewPheromoneTrail(dm.Size(), opts.InitialTrail)
	if err != nil {
		return nil, err
	}

	c := &Colony{
		dist:   dm,
		trail:  trail,
		opts:   opts,
		starts: NewRandomStarts(opts.Seed),
		logger: slog.New(slog.DiscardHandler),
		tracer: otel.Tracer(tracerName),
		runID:  uuid.NewString(),
	}
	for _, o := range copts {
		o(c)
	}

	return c, nil
}

// RunID returns the identifier attached to logs, spans and the Result.
func (c *Colony) RunID() string { return c.runID }

// Trail exposes the colony's trail for inspection. Callers must not mutate it
// while an iteration is running.
func (c *Colony) Trail() *PheromoneTrail { return c.trail }

// RunIteration runs one generation: select starts, build one tour per ant,
// apply exactly one global trail update, and report the iteration best.
//
// Complexity: O(ants·n² + n²).
func (c *Colony) RunIteration(ctx context.Context, index int) (res IterationResult, err error) {
	ctx, span := c.tracer.Start(ctx, "Colony.RunIteration",
		trace.WithAttributes(
			attribute.String("run.id", c.runID),
			attribute.Int("iteration", index),
			attribute.Int("ants", c.opts.AntCount),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	// Stage 1: starts.
	starts, err := c.starts.Select(c.dist.Size(), c.opts.AntCount)
	if err != nil {
		return IterationResult{}, fmt.Errorf("select starts: %w", err)
	}

	// Stage 2: construction against the frozen trail.
	tours := make([]Tour, 0, len(starts))
	best := EmptyTour()
	for _, s := range starts {
		t, cerr := ConstructTour(c.dist, c.trail, s, c.opts.Beta)
		if cerr != nil {
			return IterationResult{}, fmt.Errorf("construct tour from %d: %w", s, cerr)
		}
		tours = append(tours, t)
		c.logger.Log(ctx, logging.LevelTrace, "tour constructed",
			"run_id", c.runID,
			"iteration", index+1,
			"start", s+1,
			"length", t.Length(),
		)
		if t.Less(best) {
			best = t
		}
	}

	// Stage 3: the single global update.
	if err = c.trail.Update(c.dist, tours, c.opts.Alpha); err != nil {
		return IterationResult{}, fmt.Errorf("update trail: %w", err)
	}

	res = IterationResult{Index: index, Best: best, Tours: tours}
	span.SetAttributes(attribute.Float64("best.length", best.Length()))
	c.metrics.observeIteration(res, c.trail.Sum())
	c.logger.Debug("iteration complete",
		"run_id", c.runID,
		"iteration", index+1,
		"best_length", best.Length(),
		"best_start", best.Start()+1,
	)

	return res, nil
}

// Run executes opts.Iterations generations and returns the global best tour.
func (c *Colony) Run(ctx context.Context) (Result, error) {
	return c.RunIterations(ctx, c.opts.Iterations)
}

// RunIterations executes k generations, keeping the strictly shorter of each
// iteration best and the running global best. k == 0 yields ErrEmptyResult.
//
// The context is checked between iterations only.
func (c *Colony) RunIterations(ctx context.Context, k int) (res Result, err error) {
	ctx, span := c.tracer.Start(ctx, "Colony.Run",
		trace.WithAttributes(
			attribute.String("run.id", c.runID),
			attribute.Int("iterations", k),
			attribute.Int("locations", c.dist.Size()),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	globalBest := EmptyTour()
	bestIteration := -1
	for i := 0; i < k; i++ {
		if err = ctx.Err(); err != nil {
			return Result{}, err
		}

		it, ierr := c.RunIteration(ctx, i)
		if ierr != nil {
			return Result{}, fmt.Errorf("iteration %d: %w", i+1, ierr)
		}
		if c.observer != nil {
			c.observer(it)
		}
		if it.Best.Less(globalBest) {
			globalBest = it.Best
			bestIteration = i
			c.metrics.observeGlobalBest(globalBest)
		}
	}

	if globalBest.IsEmpty() {
		return Result{}, ErrEmptyResult
	}

	span.SetAttributes(attribute.Float64("best.length", globalBest.Length()))
	c.logger.Info("optimization finished",
		"run_id", c.runID,
		"iterations", k,
		"best_length", globalBest.Length(),
		"best_iteration", bestIteration+1,
	)

	return Result{
		RunID:         c.runID,
		Best:          globalBest,
		BestIteration: bestIteration,
		Iterations:    k,
	}, nil
}
