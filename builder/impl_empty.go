// SPDX-License-Identifier: MIT
// Package: netcomp/builder
//
// impl_empty.go - Empty(n): n isolated vertices.
//
// Contract:
//   - n ≥ 0; Empty(0) leaves the graph untouched.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netcomp/core"
)

const methodEmpty = "Empty"

// Empty returns a Constructor that adds n isolated vertices.
func Empty(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 0 {
			return fmt.Errorf("%s: n=%d < 0: %w", methodEmpty, n, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)

		return nil
	}
}
