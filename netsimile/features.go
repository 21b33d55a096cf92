// File: features.go
// Role: per-node structural features.
//
// Columns (see the Feature* constants):
//
//	0 degree
//	1 local clustering coefficient 2T/(d(d−1))
//	2 average degree of neighbors
//	3 average clustering of neighbors
//	4 edges inside the ego network
//	5 vertices adjacent to the ego network but outside it
//	6 edges leaving the ego network
//
// AI-Hints:
//   - Row i describes the i-th vertex of g.Vertices() (ascending ID).
//   - Ego quantities are computed from adjacency sets, not by materializing
//     core.EgoNetwork per vertex: the results agree, the cost does not.

package netsimile

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/netcomp/core"
)

// Feature column indices.
const (
	FeatureDegree = iota
	FeatureClustering
	FeatureNeighborDegree
	FeatureNeighborClustering
	FeatureEgoEdges
	FeatureEgoNeighbors
	FeatureEgoOutgoing

	// NumFeatures is the column count of a feature matrix.
	NumFeatures
)

// Features returns the n×NumFeatures feature matrix of g. Directed graphs
// are featurized through core.UndirectedView. An empty graph yields a nil
// matrix and no error.
//
// Complexity: O(Σ d(v)²) for clustering plus O(Σ_v Σ_{u∈ego(v)} d(u)) for
// the ego columns.
func Features(g *core.Graph) (*mat.Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("Features: %w", ErrNilGraph)
	}
	if g.Directed() {
		g = core.UndirectedView(g)
	}

	ids := g.Vertices()
	n := len(ids)
	if n == 0 {
		return nil, nil
	}
	index := make(map[int64]int, n)
	for i, id := range ids {
		index[id] = i
	}

	adj := make([][]int, n)
	adjSet := make([]map[int]struct{}, n)
	for i, id := range ids {
		nbrs, err := g.Neighbors(id)
		if err != nil {
			return nil, fmt.Errorf("Features: %w", err)
		}
		adj[i] = make([]int, len(nbrs))
		adjSet[i] = make(map[int]struct{}, len(nbrs))
		for k, v := range nbrs {
			adj[i][k] = index[v]
			adjSet[i][index[v]] = struct{}{}
		}
	}

	deg := make([]float64, n)
	tri := make([]float64, n)
	clust := make([]float64, n)
	for i := range adj {
		d := len(adj[i])
		deg[i] = float64(d)
		for x := 0; x < d; x++ {
			for y := x + 1; y < d; y++ {
				if _, ok := adjSet[adj[i][x]][adj[i][y]]; ok {
					tri[i]++
				}
			}
		}
		if d > 1 {
			clust[i] = 2 * tri[i] / (float64(d) * float64(d-1))
		}
	}

	f := mat.NewDense(n, NumFeatures, nil)
	for i := range adj {
		f.Set(i, FeatureDegree, deg[i])
		f.Set(i, FeatureClustering, clust[i])
		if d := len(adj[i]); d > 0 {
			var sd, sc float64
			for _, j := range adj[i] {
				sd += deg[j]
				sc += clust[j]
			}
			f.Set(i, FeatureNeighborDegree, sd/float64(d))
			f.Set(i, FeatureNeighborClustering, sc/float64(d))
		}

		// ego edges: the spokes plus one edge per triangle through i.
		f.Set(i, FeatureEgoEdges, deg[i]+tri[i])

		external := make(map[int]struct{})
		var outgoing int
		egoVisit := func(u int) {
			for _, w := range adj[u] {
				if w == i {
					continue
				}
				if _, in := adjSet[i][w]; in {
					continue
				}
				external[w] = struct{}{}
				outgoing++
			}
		}
		egoVisit(i)
		for _, u := range adj[i] {
			egoVisit(u)
		}
		f.Set(i, FeatureEgoNeighbors, float64(len(external)))
		f.Set(i, FeatureEgoOutgoing, float64(outgoing))
	}

	return f, nil
}
