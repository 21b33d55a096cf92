// SPDX-License-Identifier: MIT
// Package: netcomp/builder
//
// config.go - resolved builder configuration.

package builder

import "math/rand"

// builderConfig is immutable once resolved by newBuilderConfig.
type builderConfig struct {
	// idFn maps a constructor-local index to a vertex ID.
	idFn func(int) int64

	// rng drives RandomSparse and weightFn; nil unless WithSeed/WithRand.
	rng *rand.Rand

	// weightFn yields edge weights on weighted graphs.
	weightFn func(*rand.Rand) float64
}

// defaultConstWeight is the weight emitted on weighted graphs without WithWeightFn.
const defaultConstWeight = 1.0

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     indexID,
		weightFn: func(*rand.Rand) float64 { return defaultConstWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// indexID is the identity scheme: vertex i gets ID i.
func indexID(i int) int64 { return int64(i) }

// weightFor returns the weight to pass to core.Graph.AddEdge under the graph's
// weighting policy (unweighted graphs require 0).
func (cfg builderConfig) weightFor(weighted bool) float64 {
	if !weighted {
		return 0
	}

	return cfg.weightFn(cfg.rng)
}
