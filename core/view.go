// File: view.go
// Role: Non-mutating graph views (copies with altered topology or mode).
// Concurrency:
//   - Read lock on source; result is a fresh graph instance.
// AI-HINT (file):
//   - Views do NOT mutate the input Graph.
//   - UndirectedView merges u→v and v→u into one edge carrying the larger |weight|.
//   - InducedSubgraph keeps only vertices in 'keep' and edges with both endpoints kept.

package core

import (
	"math"
	"slices"
)

// Clone returns a deep copy with the same mode flags.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return InducedSubgraph(g, nil)
}

// UndirectedView returns the undirected graph underlying g: every directed
// edge u→v becomes {u,v}. When both u→v and v→u exist on a weighted graph
// the weight with the larger magnitude wins. Undirected inputs are cloned.
//
// Complexity: O(V + E).
func UndirectedView(g *Graph) *Graph {
	opts := []GraphOption{WithDirected(false)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	out := NewGraph(opts...)

	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, id := range sortedIDs(g.s.Nodes()) {
		out.addVertexLocked(id)
	}
	var w float64
	for _, e := range g.edgesLocked() {
		w = e.Weight
		if !g.weighted {
			w = 0
		} else if prev, ok := out.Weight(e.From, e.To); ok && math.Abs(prev) >= math.Abs(w) {
			continue
		}
		// Loops were rejected at insertion, so AddEdge cannot fail here.
		_ = out.AddEdge(e.From, e.To, w)
	}

	return out
}

// InducedSubgraph returns a new Graph containing the vertices v with keep[v]
// and every edge whose endpoints are both kept. A nil keep set keeps all
// vertices. Mode flags are preserved.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[int64]bool) *Graph {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	out := NewGraph(opts...)

	g.mu.RLock()
	defer g.mu.RUnlock()

	kept := func(id int64) bool { return keep == nil || keep[id] }
	for _, id := range sortedIDs(g.s.Nodes()) {
		if kept(id) {
			out.addVertexLocked(id)
		}
	}
	var w float64
	for _, e := range g.edgesLocked() {
		if !kept(e.From) || !kept(e.To) {
			continue
		}
		w = e.Weight
		if !g.weighted {
			w = 0
		}
		_ = out.AddEdge(e.From, e.To, w)
	}

	return out
}

// EgoNetwork returns the subgraph induced by id and its neighbors. For
// directed graphs the neighborhood follows out-edges only.
//
// Errors:
//   - ErrVertexNotFound: if id is absent.
func EgoNetwork(g *Graph, id int64) (*Graph, error) {
	nbrs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	keep := make(map[int64]bool, len(nbrs)+1)
	keep[id] = true
	for _, v := range nbrs {
		keep[v] = true
	}

	return InducedSubgraph(g, keep), nil
}

// IDs returns the sorted keys of a vertex set.
func IDs(set map[int64]bool) []int64 {
	out := make([]int64, 0, len(set))
	for id, ok := range set {
		if ok {
			out = append(out, id)
		}
	}
	slices.Sort(out)

	return out
}
