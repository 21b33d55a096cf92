// SPDX-License-Identifier: MIT

// File: types.go
// Role: Graph, Edge, options and sentinel errors.
//
// Vertices are identified by int64 IDs, which is how circuit variables and
// edge-list endpoints arrive. Storage is delegated to gonum's simple weighted
// graphs; Graph adds locking, validation and deterministic enumeration on top.
//
// Errors:
//
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrBadWeight       - non-zero weight on an unweighted graph, or a non-finite weight.
//	ErrLoopNotAllowed  - self-loop (from == to).
//	ErrNilGraph        - nil *Graph passed to a package-level helper.

package core

import (
	"errors"
	"sync"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a weight the graph cannot store.
	ErrBadWeight = errors.New("core: bad weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNilGraph indicates a nil graph was supplied.
	ErrNilGraph = errors.New("core: graph is nil")
)

// unitWeight is stored for every edge of an unweighted graph.
const unitWeight float64 = 1

// Edge is a value snapshot of one stored edge.
//
// For undirected graphs Edges() reports From < To.
type Edge struct {
	From   int64
	To     int64
	Weight float64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are one-way (true) or mirrored (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows arbitrary finite edge weights.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// store is the subset of gonum's simple weighted graphs that Graph relies on.
// Both *simple.WeightedUndirectedGraph and *simple.WeightedDirectedGraph satisfy it.
type store interface {
	graph.Weighted
	AddNode(graph.Node)
	NewWeightedEdge(from, to graph.Node, weight float64) graph.WeightedEdge
	SetWeightedEdge(e graph.WeightedEdge)
	WeightedEdges() graph.WeightedEdges
}

// Graph is a simple graph (no loops, no parallel edges) with int64 vertex IDs.
//
// A single RWMutex guards the backing store: gonum's simple graphs are not
// safe for concurrent mutation. Reads may proceed in parallel.
type Graph struct {
	mu sync.RWMutex

	directed bool
	weighted bool

	s store
}

// NewGraph creates an empty Graph. By default the graph is undirected and
// unweighted.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	if g.directed {
		g.s = simple.NewWeightedDirectedGraph(0, 0)
	} else {
		g.s = simple.NewWeightedUndirectedGraph(0, 0)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether the graph stores caller-supplied weights.
func (g *Graph) Weighted() bool { return g.weighted }
