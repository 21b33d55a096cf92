// SPDX-License-Identifier: MIT
// Package: netcomp/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors return sentinel errors, never panic.
//
// AI-Hints:
//   - Compose Shifted(offset, c) constructors to lay several components side by side.
//   - Use WithSeed(...) to freeze RandomSparse.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netcomp/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Whatever sentinel the failing constructor returned.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Shifted runs c with every vertex ID offset by offset. It lets several
// constructors populate disjoint ID ranges of one graph.
func Shifted(offset int64, c Constructor) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if c == nil {
			return fmt.Errorf("Shifted: %w", ErrConstructFailed)
		}
		base := cfg.idFn
		cfg.idFn = func(i int) int64 { return base(i) + offset }

		return c(g, cfg)
	}
}
