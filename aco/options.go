// Package aco - run options and colony wiring.
package aco

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/trace"
)

// Defaults mirror the reference instance parameters.
const (
	DefaultAntCount     = 3
	DefaultAlpha        = 0.71
	DefaultBeta         = 2.0
	DefaultIterations   = 1
	DefaultInitialTrail = 1.0
)

// Options configures a Colony.
type Options struct {
	// AntCount is the number of ants per iteration. It may exceed the number
	// of locations; starts are then recycled.
	AntCount int `validate:"gt=0"`

	// Alpha is the evaporation rate; (1 − Alpha) of each trail is retained.
	Alpha float64 `validate:"gt=0,lt=1"`

	// Beta weights proximity against trail strength in the desirability term.
	Beta float64 `validate:"gt=0"`

	// Iterations is the number of generations Run executes. Zero is accepted
	// here and reported by Run as ErrEmptyResult.
	Iterations int `validate:"gte=0"`

	// InitialTrail is the value every trail entry starts with.
	InitialTrail float64 `validate:"gt=0"`

	// Seed drives RandomStarts; 0 selects a fixed default seed.
	Seed int64

	// RequireSymmetric makes NewColony reject asymmetric distance models.
	RequireSymmetric bool
}

// optionsValidate is shared; validator.Validate caches struct metadata and is
// safe for concurrent use.
var optionsValidate = validator.New()

// DefaultOptions returns the reference parameters: 3 ants, α=0.71, β=2,
// one iteration, all-ones initial trail.
func DefaultOptions() Options {
	return Options{
		AntCount:     DefaultAntCount,
		Alpha:        DefaultAlpha,
		Beta:         DefaultBeta,
		Iterations:   DefaultIterations,
		InitialTrail: DefaultInitialTrail,
	}
}

// Validate checks field ranges. Failures wrap ErrInvalidOptions.
func (o Options) Validate() error {
	if err := optionsValidate.Struct(o); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	if math.IsInf(o.Beta, 0) || math.IsInf(o.InitialTrail, 0) {
		return fmt.Errorf("%w: beta and initial trail must be finite", ErrInvalidOptions)
	}
	return nil
}

// ColonyOption customizes a Colony at construction time.
type ColonyOption func(*Colony)

// WithStartSelector replaces the default RandomStarts policy.
func WithStartSelector(s StartSelector) ColonyOption {
	return func(c *Colony) {
		if s != nil {
			c.starts = s
		}
	}
}

// WithObserver registers a callback invoked after every iteration.
func WithObserver(o Observer) ColonyOption {
	return func(c *Colony) { c.observer = o }
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *slog.Logger) ColonyOption {
	return func(c *Colony) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics attaches Prometheus collectors. A nil *Metrics disables metrics.
func WithMetrics(m *Metrics) ColonyOption {
	return func(c *Colony) { c.metrics = m }
}

// WithTracerProvider takes spans from tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) ColonyOption {
	return func(c *Colony) {
		if tp != nil {
			c.tracer = tp.Tracer(tracerName)
		}
	}
}
