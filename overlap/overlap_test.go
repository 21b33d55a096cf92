package overlap_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netcomp/builder"
	"github.com/katalvlaran/netcomp/core"
	"github.com/katalvlaran/netcomp/overlap"
)

func TestSimilarity(t *testing.T) {
	t.Parallel()

	p4, err := builder.BuildGraph(nil, nil, builder.Path(4))
	require.NoError(t, err)
	c4, err := builder.BuildGraph(nil, nil, builder.Cycle(4))
	require.NoError(t, err)
	far, err := builder.BuildGraph(nil, nil, builder.Shifted(100, builder.Path(2)))
	require.NoError(t, err)

	tests := []struct {
		name   string
		g1, g2 *core.Graph
		sim    float64
		dist   float64
	}{
		{"identical", p4, p4, 1, 0},
		// 4 shared vertices, 3 shared edges, union 4 vertices + 4 edges.
		{"path4 vs cycle4", p4, c4, 7.0 / 8.0, 1.0 / 7.0},
		{"disjoint", p4, far, 0, math.Inf(1)},
		{"both empty", core.NewGraph(), core.NewGraph(), 1, 0},
		{"nil is empty", nil, core.NewGraph(), 1, 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tc.sim, overlap.Similarity(tc.g1, tc.g2), 1e-12)
			assert.InDelta(t, tc.sim, overlap.Similarity(tc.g2, tc.g1), 1e-12)
			d := overlap.Distance(tc.g1, tc.g2)
			if math.IsInf(tc.dist, 1) {
				assert.True(t, math.IsInf(d, 1))
				return
			}
			assert.InDelta(t, tc.dist, d, 1e-12)
		})
	}
}

func TestSimilarity_DirectedOrientation(t *testing.T) {
	fwd := core.NewGraph(core.WithDirected(true))
	bwd := core.NewGraph(core.WithDirected(true))
	require.NoError(t, fwd.AddEdge(1, 2, 0))
	require.NoError(t, bwd.AddEdge(2, 1, 0))

	// same two vertices, no shared edge: 2 / (2 + 2).
	assert.InDelta(t, 0.5, overlap.Similarity(fwd, bwd), 1e-12)
}
