package core

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/topo"
)

// ConnectedComponents partitions the vertices into connected components.
// Directed graphs are treated through their undirected view (weak
// connectivity). Each component is sorted ascending and components are
// ordered by their smallest vertex ID.
//
// Complexity: O(V + E) plus sorting.
func ConnectedComponents(g *Graph) [][]int64 {
	if g.directed {
		g = UndirectedView(g)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	u, ok := g.s.(graph.Undirected)
	if !ok {
		return nil
	}
	raw := topo.ConnectedComponents(u)
	out := make([][]int64, 0, len(raw))
	for _, comp := range raw {
		ids := make([]int64, len(comp))
		for i, n := range comp {
			ids[i] = n.ID()
		}
		slices.Sort(ids)
		out = append(out, ids)
	}
	slices.SortFunc(out, func(a, b []int64) int { return cmp.Compare(a[0], b[0]) })

	return out
}

// IsConnected reports whether g has exactly one connected component. The
// empty graph is not connected.
func IsConnected(g *Graph) bool {
	return len(ConnectedComponents(g)) == 1
}
