// SPDX-License-Identifier: MIT

// Package overlap implements vertex-edge overlap (VEO), a similarity that
// relies on vertex identity: two graphs are compared by the vertex IDs and
// edges they share.
//
//	VEO(G1, G2) = (|V1 ∩ V2| + |E1 ∩ E2|) / (|V1 ∪ V2| + |E1 ∪ E2|)
//
// Undirected edges compare as unordered pairs; directed edges as ordered
// pairs. Weights are ignored.
package overlap

import (
	"math"

	"github.com/katalvlaran/netcomp/core"
)

type edgeKey struct{ from, to int64 }

// Similarity returns VEO(g1, g2) in [0,1]. Two empty graphs are identical
// and score 1. A nil graph is treated as empty.
//
// Complexity: O(V + E) with hashing.
func Similarity(g1, g2 *core.Graph) float64 {
	v1, v2 := vertexSet(g1), vertexSet(g2)
	e1, e2 := edgeSet(g1), edgeSet(g2)

	vi, ei := intersect(v1, v2), intersect(e1, e2)
	union := len(v1) + len(v2) - vi + len(e1) + len(e2) - ei
	if union == 0 {
		return 1
	}

	return float64(vi+ei) / float64(union)
}

// Distance returns (1 − s)/s for s = Similarity(g1, g2), or +Inf when s = 0.
func Distance(g1, g2 *core.Graph) float64 {
	s := Similarity(g1, g2)
	if s == 0 {
		return math.Inf(1)
	}

	return (1 - s) / s
}

func vertexSet(g *core.Graph) map[int64]struct{} {
	if g == nil {
		return nil
	}
	ids := g.Vertices()
	out := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}

	return out
}

// edgeSet keys undirected edges as (min, max); core.Graph.Edges already
// reports them that way, directed edges keep their orientation.
func edgeSet(g *core.Graph) map[edgeKey]struct{} {
	if g == nil {
		return nil
	}
	edges := g.Edges()
	out := make(map[edgeKey]struct{}, len(edges))
	for _, e := range edges {
		out[edgeKey{e.From, e.To}] = struct{}{}
	}

	return out
}

func intersect[K comparable](a, b map[K]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for k := range a {
		if _, ok := b[k]; ok {
			n++
		}
	}

	return n
}
