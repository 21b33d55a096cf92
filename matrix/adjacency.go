// SPDX-License-Identifier: MIT
// Package: matrix
//
// adjacency.go - core.Graph → sparse adjacency adapter.
//
// Determinism:
//   - Row/column i corresponds to the i-th vertex of g.Vertices() (ascending ID).

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/netcomp/core"
)

// Adjacency materializes g as a CSR adjacency matrix and returns the
// index → vertex ID table.
//
// Implementation:
//   - Stage 1: Index vertices in ascending ID order.
//   - Stage 2: Emit one triplet per edge orientation: both for undirected
//     graphs (or WithSymmetrize), one for directed graphs.
//   - Stage 3: Value is 1, or the stored weight under WithWeights.
//
// Errors:
//   - ErrGraphNil: g == nil.
//
// Complexity:
//   - Time O(V log V + E log E), Space O(V + E).
func Adjacency(g *core.Graph, opts ...Option) (*CSR, []int64, error) {
	if g == nil {
		return nil, nil, fmt.Errorf("Adjacency: %w", ErrGraphNil)
	}
	o := gatherOptions(opts...)

	ids := g.Vertices()
	index := make(map[int64]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	mirror := !g.Directed() || o.symmetrize
	edges := g.Edges()
	entries := make([]Triplet, 0, 2*len(edges))
	var w float64
	for _, e := range edges {
		w = 1
		if o.weighted {
			w = e.Weight
		}
		u, v := index[e.From], index[e.To]
		entries = append(entries, Triplet{Row: u, Col: v, Value: w})
		if mirror {
			entries = append(entries, Triplet{Row: v, Col: u, Value: w})
		}
	}
	if mirror && g.Directed() {
		entries = dedupMirrored(entries)
	}

	m, err := NewCSR(len(ids), len(ids), entries)
	if err != nil {
		return nil, nil, fmt.Errorf("Adjacency: %w", err)
	}

	return m, ids, nil
}

// dedupMirrored keeps one value per coordinate when a symmetrized directed
// graph holds both u→v and v→u. The value with the larger magnitude wins,
// matching core.UndirectedView.
func dedupMirrored(in []Triplet) []Triplet {
	type key struct{ r, c int }
	best := make(map[key]int, len(in))
	out := in[:0]
	for _, t := range in {
		k := key{t.Row, t.Col}
		if idx, ok := best[k]; ok {
			if math.Abs(t.Value) > math.Abs(out[idx].Value) {
				out[idx].Value = t.Value
			}
			continue
		}
		best[k] = len(out)
		out = append(out, t)
	}

	return out
}
