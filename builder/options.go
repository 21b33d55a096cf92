// SPDX-License-Identifier: MIT
// Package: netcomp/builder
//
// options.go - functional options resolved into builderConfig.
// Option constructors panic on meaningless values (nil functions); the
// constructors themselves only ever return errors.

package builder

import "math/rand"

// BuilderOption configures builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme maps the constructor's vertex index i to a vertex ID.
func WithIDScheme(fn func(int) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand supplies the RNG used by stochastic constructors and weight functions.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge-weight generator used on weighted graphs.
func WithWeightFn(fn func(*rand.Rand) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
