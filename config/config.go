// Package config provides run configuration loading for antsys.
// It supports compiled-in defaults, YAML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/antsys/aco"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variable names recognized by Load.
const (
	EnvAnts       = "ANTSYS_ANTS"
	EnvAlpha      = "ANTSYS_ALPHA"
	EnvBeta       = "ANTSYS_BETA"
	EnvIterations = "ANTSYS_ITERATIONS"
	EnvSeed       = "ANTSYS_SEED"
	EnvLogLevel   = "ANTSYS_LOG_LEVEL"
)

// Config contains every antsys run setting.
type Config struct {
	// DistanceMatrix is the n×n problem instance (zero diagonal).
	DistanceMatrix [][]float64 `json:"distance_matrix" yaml:"distance_matrix" validate:"required,min=2,dive,required"`

	// Labels optionally names each location in output; len must equal n.
	Labels []string `json:"labels,omitempty" yaml:"labels,omitempty" validate:"omitempty,dive,required"`

	// AntCount is the number of ants per iteration.
	AntCount int `json:"ant_count" yaml:"ant_count" validate:"gt=0"`

	// Alpha is the evaporation rate in (0,1).
	Alpha float64 `json:"alpha" yaml:"alpha" validate:"gt=0,lt=1"`

	// Beta weights proximity in the desirability term.
	Beta float64 `json:"beta" yaml:"beta" validate:"gt=0"`

	// Iterations is the number of generations to run.
	Iterations int `json:"iterations" yaml:"iterations" validate:"gte=0"`

	// InitialTrail is the starting value of every trail entry.
	InitialTrail float64 `json:"initial_trail" yaml:"initial_trail" validate:"gt=0"`

	// Seed drives start selection; 0 lets the CLI pick a time-based seed
	// and log it.
	Seed int64 `json:"seed" yaml:"seed"`

	// RequireSymmetric rejects asymmetric instances.
	RequireSymmetric bool `json:"require_symmetric" yaml:"require_symmetric"`

	// LogLevel is "info" (default), "debug" or "trace".
	LogLevel string `json:"log_level" yaml:"log_level" validate:"omitempty,oneof=info debug trace"`
}

var configValidate = validator.New()

// Default returns the reference run: the 5-location instance, 3 ants,
// α=0.71, β=2 and a single iteration.
func Default() *Config {
	return &Config{
		DistanceMatrix: [][]float64{
			{0, 5, 7, 2, 1},
			{5, 0, 8, 5, 3},
			{7, 8, 0, 10, 3},
			{2, 5, 10, 0, 4},
			{1, 3, 3, 4, 0},
		},
		AntCount:         aco.DefaultAntCount,
		Alpha:            aco.DefaultAlpha,
		Beta:             aco.DefaultBeta,
		Iterations:       aco.DefaultIterations,
		InitialTrail:     aco.DefaultInitialTrail,
		RequireSymmetric: true,
		LogLevel:         "info",
	}
}

// Load builds a configuration.
// Order: defaults -> YAML file at path (if path != "") -> environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		cfg = fileCfg
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file. Keys absent from the
// file keep their default values.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Validate checks field ranges, label count and the distance model itself.
func (c *Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if len(c.Labels) > 0 && len(c.Labels) != len(c.DistanceMatrix) {
		return fmt.Errorf("%w: %d labels for %d locations", ErrInvalidConfig, len(c.Labels), len(c.DistanceMatrix))
	}
	if _, err := c.DistanceModel(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// DistanceModel validates and returns the configured instance.
func (c *Config) DistanceModel() (*aco.DistanceModel, error) {
	return aco.DistanceModelFromRows(c.DistanceMatrix, c.RequireSymmetric)
}

// Options converts the run parameters into aco.Options.
func (c *Config) Options() aco.Options {
	return aco.Options{
		AntCount:         c.AntCount,
		Alpha:            c.Alpha,
		Beta:             c.Beta,
		Iterations:       c.Iterations,
		InitialTrail:     c.InitialTrail,
		Seed:             c.Seed,
		RequireSymmetric: c.RequireSymmetric,
	}
}

// applyEnvOverrides applies ANTSYS_* overrides. Malformed numbers are errors
// rather than silently ignored.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv(EnvAnts); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAnts, err)
		}
		cfg.AntCount = n
	}

	if v := os.Getenv(EnvAlpha); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAlpha, err)
		}
		cfg.Alpha = f
	}

	if v := os.Getenv(EnvBeta); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvBeta, err)
		}
		cfg.Beta = f
	}

	if v := os.Getenv(EnvIterations); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvIterations, err)
		}
		cfg.Iterations = n
	}

	if v := os.Getenv(EnvSeed); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = n
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	return nil
}
