// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/netcomp/core"
)

var sinkComponents [][]int64

// BenchmarkAddEdge measures edge insertion on an unweighted, undirected graph.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(0, int64(i+1), 0)
	}
}

// BenchmarkConnectedComponents measures component extraction on a forest of paths.
func BenchmarkConnectedComponents(b *testing.B) {
	g := core.NewGraph()
	for i := int64(0); i < 2000; i++ {
		if i%10 != 9 {
			_ = g.AddEdge(i, i+1, 0)
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkComponents = core.ConnectedComponents(g)
	}
}
