// SPDX-License-Identifier: MIT
// Package: netcomp/builder
//
// impl_random_sparse.go - Erdős–Rényi G(n,p) constructor.
//
// Contract:
//   - n ≥ 1; p ∈ [0,1].
//   - Requires an RNG (WithSeed/WithRand) unless p ∈ {0,1}.
//   - Undirected: one Bernoulli trial per unordered pair i<j.
//     Directed: one trial per ordered pair i≠j.
//   - Trials run in ascending (i, j) order, so a fixed seed fixes the graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netcomp/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor for a G(n,p) random graph.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		addVertices(g, cfg, n)

		directed := g.Directed()
		hit := func() bool {
			if cfg.rng == nil {
				return p == probMax
			}

			return cfg.rng.Float64() < p
		}
		for i := 0; i < n; i++ {
			start := i + 1
			if directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j || !hit() {
					continue
				}
				if err := addEdge(methodRandomSparse, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
