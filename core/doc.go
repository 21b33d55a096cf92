// Package core provides the thread-safe in-memory Graph consumed by the
// netcomp distance engines.
//
// A Graph is simple: no self-loops and no parallel edges. Vertices carry int64
// IDs so that circuit variables and edge-list endpoints map onto them without
// translation. Storage is delegated to gonum's graph/simple weighted graphs;
// connected components come from gonum's graph/topo.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)
//	    Directed graphs keep u→v and v→u as distinct edges.
//	    Undirected graphs treat {u,v} as one edge.
//
//	– WithWeighted()
//	    Permits arbitrary finite weights; otherwise AddEdge(weight≠0) → ErrBadWeight
//	    and every edge is stored with unit weight.
//
// Core Methods:
//
//	AddVertex(id int64)                      // O(1), idempotent
//	AddEdge(from, to int64, w float64) error // O(1), auto-adds endpoints, overwrites on repeat
//	HasVertex / HasEdge / Weight             // O(1)
//	Neighbors(id) ([]int64, error)           // O(d·log d), sorted
//	Degree(id) (int, error)                  // O(1)
//	Vertices() []int64                       // O(V·log V), sorted
//	Edges() []Edge                           // O(E·log E), sorted by (From, To)
//
// Views (non-mutating):
//
//	UndirectedView(g)        // drop orientation
//	InducedSubgraph(g, keep) // restrict to a vertex set
//	EgoNetwork(g, id)        // id plus its neighbors
//	ConnectedComponents(g)   // weakly connected components, deterministic order
//
// Concurrency:
//
//	A single sync.RWMutex guards the backing store. Queries may run in
//	parallel; mutations are serialized.
package core
