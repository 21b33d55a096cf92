package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netcomp/batch"
	"github.com/katalvlaran/netcomp/config"
)

type compareFlags struct {
	metrics  []string
	mode     string
	inverted float64
	regular  float64
	epsilon  float64
	reducer  string
	p        float64
	beta     float64
	k        int
}

func newCompareCmd() *cobra.Command {
	def := config.Default()
	f := compareFlags{}
	cmd := &cobra.Command{
		Use:   "compare LEFT RIGHT",
		Short: "Compare two circuits and print one line per metric",
		Long:  `Files ending in .aig or .aag are read as AIGER, anything else as a "source target [weight]" edge list.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := def
			cfg.Metrics = f.metrics
			cfg.Graph = config.GraphConfig{Mode: f.mode, InvertedWeight: f.inverted, RegularWeight: f.regular}
			cfg.DeltaCon = config.DeltaConConfig{Epsilon: f.epsilon, Reducer: f.reducer}
			cfg.Resistance = config.ResistanceConfig{P: f.p, Beta: f.beta}
			cfg.Spectral = config.SpectralConfig{K: f.k}
			cfg.Pairs = []config.PairConfig{{ID: "cli", Left: args[0], Right: args[1]}}
			if err := cfg.Validate(); err != nil {
				return err
			}

			results, err := run(cmd, cfg, 0)
			if err != nil {
				return err
			}
			var errs []error
			for _, r := range results {
				if r.Err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\terror: %v\n", r.Metric, r.Err)
					errs = append(errs, fmt.Errorf("%s: %w", r.Metric, r.Err))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.10g\n", r.Metric, r.Value)
			}

			return errors.Join(errs...)
		},
	}

	fl := cmd.Flags()
	fl.StringSliceVarP(&f.metrics, "metric", "m", def.Metrics, "metric to compute (repeatable)")
	fl.StringVar(&f.mode, "mode", def.Graph.Mode, "graph mode: undirected | directed | weighted")
	fl.Float64Var(&f.inverted, "inverted-weight", def.Graph.InvertedWeight, "weight of complemented connections")
	fl.Float64Var(&f.regular, "regular-weight", def.Graph.RegularWeight, "weight of regular connections")
	fl.Float64Var(&f.epsilon, "epsilon", def.DeltaCon.Epsilon, "DeltaCon0 ε (0 = shared default)")
	fl.StringVar(&f.reducer, "reducer", def.DeltaCon.Reducer, "DeltaCon0 reducer: sum_abs | frobenius")
	fl.Float64Var(&f.p, "p", def.Resistance.P, "resistance distance exponent")
	fl.Float64Var(&f.beta, "beta", def.Resistance.Beta, "resistance renormalization constant")
	fl.IntVar(&f.k, "k", def.Spectral.K, "spectral top-k eigenvalues (0 = all)")

	return cmd
}

// run loads the pairs of cfg and evaluates its metrics.
func run(cmd *cobra.Command, cfg *config.Config, workers int) ([]batch.Result, error) {
	metrics, err := cfg.MetricList()
	if err != nil {
		return nil, err
	}
	spec, err := cfg.GraphSpec()
	if err != nil {
		return nil, err
	}
	params, err := cfg.Params()
	if err != nil {
		return nil, err
	}

	pairs, err := batch.LoadPairs(cmd.Context(), cfg.PairSpecs(), spec, workers)
	if err != nil {
		return nil, err
	}
	runner := &batch.Runner{Workers: workers, Params: params}

	return runner.Run(cmd.Context(), pairs, metrics)
}
