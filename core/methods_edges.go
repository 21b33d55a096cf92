// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Policy:
//   - Self-loops are rejected (ErrLoopNotAllowed).
//   - A repeated AddEdge between the same endpoints overwrites the weight,
//     so the graph never holds parallel edges.
//   - Unweighted graphs accept only weight 0 and store unit weight internally.
package core

import (
	"cmp"
	"math"
	"slices"

	"gonum.org/v1/gonum/graph/simple"
)

// AddEdge connects from and to, creating missing endpoints.
//
// Implementation:
//   - Stage 1: Validate loop and weight policy.
//   - Stage 2: Under the write lock, register endpoints and set the edge.
//
// Errors:
//   - ErrLoopNotAllowed: from == to.
//   - ErrBadWeight: weight != 0 on an unweighted graph, or NaN/Inf weight.
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) AddEdge(from, to int64, weight float64) error {
	if from == to {
		return ErrLoopNotAllowed
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return ErrBadWeight
	}
	if !g.weighted {
		if weight != 0 {
			return ErrBadWeight
		}
		weight = unitWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	g.s.SetWeightedEdge(g.s.NewWeightedEdge(simple.Node(from), simple.Node(to), weight))

	return nil
}

// HasEdge reports whether an edge from→to exists. For undirected graphs the
// orientation is irrelevant.
func (g *Graph) HasEdge(from, to int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.s.WeightedEdge(from, to) != nil
}

// Weight returns the stored weight of from→to and whether the edge exists.
// Unweighted graphs report 1 for every existing edge.
func (g *Graph) Weight(from, to int64) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e := g.s.WeightedEdge(from, to)
	if e == nil {
		return 0, false
	}

	return e.Weight(), true
}

// Edges returns a snapshot of all edges sorted by (From, To).
//
// Complexity:
//   - Time O(E log E), Space O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgesLocked()
}

func (g *Graph) edgesLocked() []Edge {
	it := g.s.WeightedEdges()
	n := it.Len()
	if n < 0 {
		n = 0
	}
	out := make([]Edge, 0, n)
	for it.Next() {
		we := it.WeightedEdge()
		e := Edge{From: we.From().ID(), To: we.To().ID(), Weight: we.Weight()}
		if !g.directed && e.From > e.To {
			e.From, e.To = e.To, e.From
		}
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Edge) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}

		return cmp.Compare(a.To, b.To)
	})

	return out
}

// EdgeCount returns |E|. Undirected edges count once.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	it := g.s.WeightedEdges()
	for it.Next() {
		n++
	}

	return n
}
