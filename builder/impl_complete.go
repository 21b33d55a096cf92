// SPDX-License-Identifier: MIT
// Package: netcomp/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (K_1 is a single vertex).
//   - Undirected: emits i -> j for i < j. Directed: both orientations.
//
// Complexity:
//   - Time: O(n^2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netcomp/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)

		directed := g.Directed()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, g, cfg, i, j); err != nil {
					return err
				}
				if directed {
					if err := addEdge(methodComplete, g, cfg, j, i); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
