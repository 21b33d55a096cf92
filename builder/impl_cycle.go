// SPDX-License-Identifier: MIT
// Package: netcomp/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits i -> (i+1) mod n for i=0..n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netcomp/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)

		for i := 0; i < n; i++ {
			if err := addEdge(methodCycle, g, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
