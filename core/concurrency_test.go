package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netcomp/core"
)

// TestGraph_ConcurrentMutationAndRead hammers the graph from several goroutines;
// run with -race to verify locking.
func TestGraph_ConcurrentMutationAndRead(t *testing.T) {
	const workers, perWorker = 8, 200
	g := core.NewGraph()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(base int64) {
			defer wg.Done()
			for i := int64(0); i < perWorker; i++ {
				_ = g.AddEdge(base, base+i+1, 0)
				_ = g.Vertices()
				_, _ = g.Degree(base)
			}
		}(int64(w) * 10_000)
	}
	wg.Wait()

	require.Equal(t, workers*perWorker, g.EdgeCount())
}
