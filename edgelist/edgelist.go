// SPDX-License-Identifier: MIT

package edgelist

import (
	"fmt"

	"github.com/katalvlaran/netcomp/core"
)

// Edge is one (source, target, weight) triple. In circuit edge lists the
// weight tells whether the connection is inverted.
type Edge struct {
	Source int64
	Target int64
	Weight float64
}

// Build converts edges into a core.Graph according to the selected Mode.
//
// Implementation:
//   - Stage 1: Resolve graph options from the mode.
//   - Stage 2: Insert each edge; Directed mode reverses edges carrying the
//     inverted weight (never when it equals the regular weight); Weighted
//     mode stores the weight.
//
// Behavior highlights:
//   - Repeated edges collapse into one; in Weighted mode the last weight wins.
//   - Only vertices that appear in some edge exist in the result.
//
// Errors:
//   - ErrEmptyEdgeList: no edges.
//   - ErrUnknownMode: mode outside the closed set.
//   - core.ErrLoopNotAllowed, core.ErrBadWeight: wrapped with the edge index.
func Build(edges []Edge, opts ...Option) (*core.Graph, error) {
	o := gatherOptions(opts...)
	if len(edges) == 0 {
		return nil, fmt.Errorf("Build: %w", ErrEmptyEdgeList)
	}

	var g *core.Graph
	switch o.mode {
	case Undirected:
		g = core.NewGraph()
	case Directed:
		g = core.NewGraph(core.WithDirected(true))
	case Weighted:
		g = core.NewGraph(core.WithDirected(o.directed), core.WithWeighted())
	default:
		return nil, fmt.Errorf("Build: %v: %w", o.mode, ErrUnknownMode)
	}

	for i, e := range edges {
		from, to, w := e.Source, e.Target, 0.0
		switch o.mode {
		case Directed:
			if o.inverted != o.regular && e.Weight == o.inverted {
				from, to = to, from
			}
		case Weighted:
			w = e.Weight
		}
		if err := g.AddEdge(from, to, w); err != nil {
			return nil, fmt.Errorf("Build: edge %d (%d→%d): %w", i, e.Source, e.Target, err)
		}
	}

	return g, nil
}
