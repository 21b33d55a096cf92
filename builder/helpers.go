// SPDX-License-Identifier: MIT
// Package: netcomp/builder
//
// helpers.go - shared emission helpers for impl_*.go.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netcomp/core"
)

// addVertices registers indices 0..n-1 through cfg.idFn in ascending order.
func addVertices(g *core.Graph, cfg builderConfig, n int) {
	for i := 0; i < n; i++ {
		g.AddVertex(cfg.idFn(i))
	}
}

// addEdge emits i→j under the graph's weighting policy.
func addEdge(method string, g *core.Graph, cfg builderConfig, i, j int) error {
	u, v := cfg.idFn(i), cfg.idFn(j)
	w := cfg.weightFor(g.Weighted())
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
