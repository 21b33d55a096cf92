// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/netcomp/core"
)

// Pair is one graph pair to compare. ID identifies the pair in results.
type Pair struct {
	ID    string
	Left  *core.Graph
	Right *core.Graph
}

// Result is the outcome of one (pair, metric) job. Err holds a per-job
// failure; the run itself continues.
type Result struct {
	PairID   string
	Metric   Metric
	Value    float64
	Err      error
	Duration time.Duration
}

// Runner evaluates metrics over graph pairs on a bounded worker pool.
type Runner struct {
	// Workers bounds concurrent jobs; ≤ 0 selects runtime.GOMAXPROCS(0).
	Workers int
	Params  Params
}

// NewRunner returns a Runner with DefaultParams.
func NewRunner(workers int) *Runner {
	return &Runner{Workers: workers, Params: DefaultParams()}
}

// Run evaluates every metric on every pair.
//
// Implementation:
//   - Stage 1: Expand pairs × metrics into jobs, pair-major.
//   - Stage 2: Dispatch jobs through an errgroup limited to Workers.
//   - Stage 3: Each job writes its Result at its own index.
//
// Behavior highlights:
//   - Results are ordered by input (pair, then metric), never by completion.
//   - Engine errors are recorded per Result and do not stop the run.
//   - Cancelling ctx stops dispatch; Run then returns the partial results
//     together with ctx.Err(). Jobs already running finish, jobs never
//     started carry the context error.
func (r *Runner) Run(ctx context.Context, pairs []Pair, metrics []Metric) ([]Result, error) {
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]Result, 0, len(pairs)*len(metrics))
	for _, p := range pairs {
		for _, m := range metrics {
			results = append(results, Result{PairID: p.ID, Metric: m})
		}
	}
	log.Debug().Int("pairs", len(pairs)).Int("metrics", len(metrics)).Int("workers", workers).Msg("batch: run started")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range results {
		if err := gctx.Err(); err != nil {
			for j := i; j < len(results); j++ {
				results[j].Err = err
			}
			break
		}
		i := i
		pair := pairs[i/len(metrics)]
		g.Go(func() error {
			res := &results[i]
			if err := gctx.Err(); err != nil {
				res.Err = err
				return nil
			}
			start := time.Now()
			res.Value, res.Err = Compute(res.Metric, pair.Left, pair.Right, r.Params)
			res.Duration = time.Since(start)

			ev := log.Debug()
			if res.Err != nil {
				ev = log.Warn().Err(res.Err)
			}
			ev.Str("pair", res.PairID).Stringer("metric", res.Metric).
				Float64("value", res.Value).Dur("took", res.Duration).Msg("batch: job done")

			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return results, err
	}

	return results, nil
}
