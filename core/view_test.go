package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netcomp/core"
)

func TestUndirectedView_MergesReciprocalEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 0, -3))
	require.NoError(t, g.AddEdge(1, 2, 2))
	g.AddVertex(9)

	u := core.UndirectedView(g)
	assert.False(t, u.Directed())
	assert.True(t, u.Weighted())
	assert.Equal(t, []int64{0, 1, 2, 9}, u.Vertices())
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: -3},
		{From: 1, To: 2, Weight: 2},
	}, u.Edges())

	// source untouched
	assert.False(t, g.HasEdge(2, 1))
}

func TestInducedSubgraph(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(1, 2, 0))
	require.NoError(t, g.AddEdge(2, 3, 0))

	sub := core.InducedSubgraph(g, map[int64]bool{1: true, 2: true, 3: true})
	assert.Equal(t, []int64{1, 2, 3}, sub.Vertices())
	assert.Equal(t, 2, sub.EdgeCount())
	assert.False(t, sub.HasVertex(0))

	clone := g.Clone()
	assert.Equal(t, g.Edges(), clone.Edges())
	require.NoError(t, clone.AddEdge(0, 3, 0))
	assert.False(t, g.HasEdge(0, 3))
}

func TestEgoNetwork(t *testing.T) {
	// star centered at 0 plus a pendant edge 1-4 outside the ego of 2
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(0, 2, 0))
	require.NoError(t, g.AddEdge(1, 2, 0))
	require.NoError(t, g.AddEdge(1, 4, 0))

	ego, err := core.EgoNetwork(g, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2}, ego.Vertices())
	assert.Equal(t, 3, ego.EdgeCount())

	_, err = core.EgoNetwork(g, 99)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestConnectedComponents(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge(5, 4, 0))
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(2, 1, 0))
	g.AddVertex(3)

	comps := core.ConnectedComponents(g)
	assert.Equal(t, [][]int64{{0, 1, 2}, {3}, {4, 5}}, comps)
	assert.False(t, core.IsConnected(g))

	assert.Empty(t, core.ConnectedComponents(core.NewGraph()))
	assert.False(t, core.IsConnected(core.NewGraph()))
}

func TestIDs(t *testing.T) {
	assert.Equal(t, []int64{1, 4}, core.IDs(map[int64]bool{4: true, 1: true, 2: false}))
}
