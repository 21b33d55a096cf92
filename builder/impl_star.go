// SPDX-License-Identifier: MIT
// Package: netcomp/builder
//
// impl_star.go - Star(n) and Wheel(n) constructors.
//
// Contract:
//   - Index 0 is the hub; leaves are 1..n-1.
//   - Star: n ≥ 2, edges hub -> leaf.
//   - Wheel: n ≥ 4, star edges plus the rim cycle over 1..n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netcomp/core"
)

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star returns a Constructor that builds the star S_n (hub plus n-1 leaves).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		return emitStar(methodStar, g, cfg, n)
	}
}

// Wheel returns a Constructor that builds the wheel W_n (hub plus rim cycle C_{n-1}).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := emitStar(methodWheel, g, cfg, n); err != nil {
			return err
		}
		rim := n - 1
		for k := 0; k < rim; k++ {
			if err := addEdge(methodWheel, g, cfg, 1+k, 1+(k+1)%rim); err != nil {
				return err
			}
		}

		return nil
	}
}

func emitStar(method string, g *core.Graph, cfg builderConfig, n int) error {
	addVertices(g, cfg, n)
	for i := 1; i < n; i++ {
		if err := addEdge(method, g, cfg, 0, i); err != nil {
			return err
		}
	}

	return nil
}
