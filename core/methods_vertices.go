// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted ascending.
//
// Concurrency:
//   - All methods take g.mu (read lock for queries, write lock for mutation).
package core

import (
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Under the write lock, probe the store for the ID.
//   - Stage 2: Register a simple.Node when absent.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddVertex(id int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)
}

// addVertexLocked assumes g.mu is held for writing.
func (g *Graph) addVertexLocked(id int64) {
	if g.s.Node(id) == nil {
		g.s.AddNode(simple.Node(id))
	}
}

// HasVertex reports whether the vertex ID exists.
func (g *Graph) HasVertex(id int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.s.Node(id) != nil
}

// Vertices returns all vertex IDs in ascending order.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) Vertices() []int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedIDs(g.s.Nodes())
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.s.Nodes().Len()
}

// Neighbors returns the IDs adjacent to id in ascending order. For directed
// graphs these are the out-neighbors.
//
// Errors:
//   - ErrVertexNotFound: if id is absent.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) Neighbors(id int64) ([]int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.s.Node(id) == nil {
		return nil, ErrVertexNotFound
	}

	return sortedIDs(g.s.From(id)), nil
}

// Degree returns the number of neighbors of id: incident edges for undirected
// graphs, outgoing edges for directed ones.
//
// Errors:
//   - ErrVertexNotFound: if id is absent.
func (g *Graph) Degree(id int64) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.s.Node(id) == nil {
		return 0, ErrVertexNotFound
	}

	return g.s.From(id).Len(), nil
}

// sortedIDs drains a gonum node iterator into an ascending ID slice.
func sortedIDs(it graph.Nodes) []int64 {
	n := it.Len()
	if n < 0 {
		n = 0
	}
	ids := make([]int64, 0, n)
	for it.Next() {
		ids = append(ids, it.Node().ID())
	}
	slices.Sort(ids)

	return ids
}
