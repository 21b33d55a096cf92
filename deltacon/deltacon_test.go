// SPDX-License-Identifier: MIT
package deltacon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/netcomp/builder"
	"github.com/katalvlaran/netcomp/core"
	"github.com/katalvlaran/netcomp/deltacon"
	"github.com/katalvlaran/netcomp/matrix"
)

func graph(t *testing.T, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, cons...)
	require.NoError(t, err)

	return g
}

func adjacency(t *testing.T, cons ...builder.Constructor) *matrix.CSR {
	t.Helper()
	a, _, err := matrix.Adjacency(graph(t, cons...))
	require.NoError(t, err)

	return a
}

// TestDistance_Reflexive covers path4 vs path4 under both reducers.
func TestDistance_Reflexive(t *testing.T) {
	t.Parallel()

	for _, r := range []deltacon.Reducer{deltacon.SumAbs, deltacon.Frobenius} {
		d, err := deltacon.Distance(adjacency(t, builder.Path(4)), adjacency(t, builder.Path(4)), deltacon.WithReducer(r))
		require.NoError(t, err)
		assert.InDelta(t, 0, d, 1e-12, r.String())
	}
}

// TestDistance_Symmetric compares path4 and cycle4 in both orders.
func TestDistance_Symmetric(t *testing.T) {
	t.Parallel()

	p, c := adjacency(t, builder.Path(4)), adjacency(t, builder.Cycle(4))
	d1, err := deltacon.Distance(p, c)
	require.NoError(t, err)
	d2, err := deltacon.Distance(c, p)
	require.NoError(t, err)

	assert.Greater(t, d1, 0.0)
	assert.InDelta(t, d1, d2, 1e-12)
}

// TestDistance_PaddingInvariance compares unequal orders before and after extra padding.
func TestDistance_PaddingInvariance(t *testing.T) {
	t.Parallel()

	small, big := adjacency(t, builder.Path(3)), adjacency(t, builder.Star(5))
	base, err := deltacon.Distance(small, big)
	require.NoError(t, err)

	for _, n := range []int{6, 9} {
		ps, err := matrix.Pad(small, n)
		require.NoError(t, err)
		pb, err := matrix.Pad(big, n)
		require.NoError(t, err)

		d, err := deltacon.Distance(ps, pb)
		require.NoError(t, err)
		assert.InDelta(t, base, d, 1e-10, "N'=%d", n)
	}
}

// TestDistance_FrobeniusBoundedBySum checks ‖x‖₂ ≤ ‖x‖₁ on the same pair.
func TestDistance_FrobeniusBoundedBySum(t *testing.T) {
	p, w := adjacency(t, builder.Path(5)), adjacency(t, builder.Wheel(5))
	l1, err := deltacon.Distance(p, w)
	require.NoError(t, err)
	l2, err := deltacon.Distance(p, w, deltacon.WithReducer(deltacon.Frobenius))
	require.NoError(t, err)

	assert.Greater(t, l2, 0.0)
	assert.LessOrEqual(t, l2, l1)
}

func TestDistance_ExplicitEpsilonAndGraphs(t *testing.T) {
	g1, g2 := graph(t, builder.Path(4)), graph(t, builder.Cycle(4))
	dg, err := deltacon.DistanceGraphs(g1, g2, deltacon.WithEpsilon(0.2))
	require.NoError(t, err)

	a1, _, _ := matrix.Adjacency(g1)
	a2, _, _ := matrix.Adjacency(g2)
	dm, err := deltacon.Distance(a1, a2, deltacon.WithEpsilon(0.2))
	require.NoError(t, err)
	assert.InDelta(t, dm, dg, 1e-15)

	shared, err := deltacon.SharedEpsilon(a1, adjacency(t, builder.Star(6)))
	require.NoError(t, err)
	assert.InDelta(t, 1.0/6.0, shared, 1e-15)
}

func TestDistance_Errors(t *testing.T) {
	empty, err := matrix.NewCSR(0, 0, nil)
	require.NoError(t, err)
	_, err = deltacon.Distance(empty, adjacency(t, builder.Path(2)))
	require.ErrorIs(t, err, deltacon.ErrEmptyGraph)

	_, err = deltacon.Distance(mat.NewDense(2, 3, nil), adjacency(t, builder.Path(2)))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = deltacon.ParseReducer("manhattan")
	require.ErrorIs(t, err, deltacon.ErrUnknownReducer)

	r, err := deltacon.ParseReducer("Frobenius")
	require.NoError(t, err)
	assert.Equal(t, deltacon.Frobenius, r)

	assert.Panics(t, func() { deltacon.WithReducer(deltacon.Reducer(9)) })
}
