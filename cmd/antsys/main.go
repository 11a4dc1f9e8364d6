// Command antsys approximates a travelling-salesman tour with the Ant System.
//
// Usage:
//
//	antsys [iterations] [flags]
//
// Without a config file the compiled-in 5-location instance is solved.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/katalvlaran/antsys/aco"
	"github.com/katalvlaran/antsys/config"
	"github.com/katalvlaran/antsys/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "antsys [iterations]",
		Short: "Ant System TSP approximation",
		Long: `antsys runs the Ant System over a distance matrix and prints the best
tour of every iteration followed by the global best.

The optional argument is the number of iterations (default 1).`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, stdout, stderr)
		},
	}

	cmd.Flags().String("config", "", "YAML config file (distance matrix and parameters)")
	cmd.Flags().Int("ants", aco.DefaultAntCount, "Ants per iteration")
	cmd.Flags().Float64("alpha", aco.DefaultAlpha, "Evaporation rate in (0,1)")
	cmd.Flags().Float64("beta", aco.DefaultBeta, "Distance weight exponent")
	cmd.Flags().Int64("seed", 0, "Start-selection seed (0 picks a time-based seed)")
	cmd.Flags().String("log-level", "info", "Log level: info, debug or trace")
	cmd.Flags().Bool("json", false, "Print the final result as JSON and log as JSON lines")
	cmd.Flags().Bool("metrics", false, "Log collected metrics after the run")

	return cmd
}

func run(cmd *cobra.Command, args []string, stdout, stderr io.Writer) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, args, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	jsonOut, _ := cmd.Flags().GetBool("json")
	logger := logging.NewLogger(cfg.LogLevel, stderr)
	if jsonOut {
		logger = logging.NewJSONLogger(cfg.LogLevel, stderr)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
		logger.Info("using time-based seed", "seed", cfg.Seed)
	}

	dm, err := cfg.DistanceModel()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	colony, err := aco.NewColony(dm, cfg.Options(),
		aco.WithLogger(logger),
		aco.WithMetrics(aco.NewMetrics(reg)),
		aco.WithObserver(func(it aco.IterationResult) {
			if jsonOut {
				return
			}
			fmt.Fprintf(stdout, "Iteration %d: %s (length %g)\n",
				it.Index+1, it.Best.Format(cfg.Labels), it.Best.Length())
		}),
	)
	if err != nil {
		return err
	}

	res, err := colony.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("run %s: %w", colony.RunID(), err)
	}
	logger.Log(cmd.Context(), logging.LevelTrace, "final trail",
		"run_id", res.RunID,
		"trail", colony.Trail().Snapshot().String(),
	)

	if jsonOut {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
	} else {
		fmt.Fprintf(stdout, "Global best after %d iteration(s):\n", res.Iterations)
		fmt.Fprintf(stdout, "%s (length %g)\n", res.Best.Format(cfg.Labels), res.Best.Length())
	}

	if withMetrics, _ := cmd.Flags().GetBool("metrics"); withMetrics {
		return logMetrics(cmd.Context(), logger, reg)
	}
	return nil
}

// applyFlags overlays explicitly set flags and the positional iteration count
// on cfg. Unset flags never override file or environment values.
func applyFlags(cmd *cobra.Command, args []string, cfg *config.Config) error {
	if len(args) == 1 {
		k, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("iterations must be an integer: %q", args[0])
		}
		if k < 0 {
			return fmt.Errorf("iterations must be non-negative: %d", k)
		}
		cfg.Iterations = k
	}

	flags := cmd.Flags()
	if flags.Changed("ants") {
		cfg.AntCount, _ = flags.GetInt("ants")
	}
	if flags.Changed("alpha") {
		cfg.Alpha, _ = flags.GetFloat64("alpha")
	}
	if flags.Changed("beta") {
		cfg.Beta, _ = flags.GetFloat64("beta")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	return nil
}

// logMetrics writes every gathered sample as one info record.
func logMetrics(ctx context.Context, logger *slog.Logger, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			attrs := []any{"name", mf.GetName()}
			switch {
			case m.GetCounter() != nil:
				attrs = append(attrs, "value", m.GetCounter().GetValue())
			case m.GetGauge() != nil:
				attrs = append(attrs, "value", m.GetGauge().GetValue())
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				attrs = append(attrs, "count", h.GetSampleCount(), "sum", h.GetSampleSum())
			}
			logger.Log(ctx, slog.LevelInfo, "metric", attrs...)
		}
	}
	return nil
}
