package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/netcomp/batch"
	"github.com/katalvlaran/netcomp/config"
)

func newBatchCmd() *cobra.Command {
	var (
		path    string
		workers int
		output  string
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run every configured metric over every configured pair and write CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
			}
			if output != "" {
				cfg.Output = output
			}
			log.Info().Int("pairs", len(cfg.Pairs)).Strs("metrics", cfg.Metrics).Int("workers", cfg.Workers).Msg("batch: starting")

			results, err := run(cmd, cfg, cfg.Workers)
			if results == nil {
				return err
			}
			// partial results are still written when the run was interrupted.
			if werr := writeOutput(cmd.OutOrStdout(), cfg.Output, results); werr != nil {
				return werr
			}

			return err
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "", "run configuration (YAML)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent jobs (0 = GOMAXPROCS)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "CSV output file (default: config output, else stdout)")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func writeOutput(stdout io.Writer, path string, results []batch.Result) error {
	if path == "" {
		return writeCSV(stdout, results)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("batch output: %w", err)
	}
	if err := writeCSV(f, results); err != nil {
		_ = f.Close()
		return err
	}
	log.Info().Str("path", path).Int("rows", len(results)).Msg("batch: results written")

	return f.Close()
}

// writeCSV writes "pair_id,metric,value,error" rows in result order.
func writeCSV(w io.Writer, results []batch.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"pair_id", "metric", "value", "error"}); err != nil {
		return err
	}
	for _, r := range results {
		value, msg := strconv.FormatFloat(r.Value, 'g', -1, 64), ""
		if r.Err != nil {
			value, msg = "", r.Err.Error()
		}
		if err := cw.Write([]string{r.PairID, r.Metric.String(), value, msg}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
