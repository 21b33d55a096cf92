// SPDX-License-Identifier: MIT
package resistance_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/netcomp/builder"
	"github.com/katalvlaran/netcomp/linalg"
	"github.com/katalvlaran/netcomp/matrix"
	"github.com/katalvlaran/netcomp/resistance"
)

func adjacency(t *testing.T, cons ...builder.Constructor) *matrix.CSR {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, cons...)
	require.NoError(t, err)
	a, _, err := matrix.Adjacency(g)
	require.NoError(t, err)

	return a
}

// TestRawMatrix_PathAndCycle checks closed-form resistances.
func TestRawMatrix_PathAndCycle(t *testing.T) {
	t.Parallel()

	r, err := resistance.RawMatrix(adjacency(t, builder.Path(4)))
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.InDelta(t, math.Abs(float64(i-j)), r.At(i, j), 1e-10)
		}
	}

	c, err := resistance.RawMatrix(adjacency(t, builder.Cycle(4)))
	require.NoError(t, err)
	assert.InDelta(t, 0.75, c.At(0, 1), 1e-10)
	assert.InDelta(t, 1.0, c.At(0, 2), 1e-10)
}

// TestRawMatrix_Disconnected checks +Inf across components and a zero diagonal.
func TestRawMatrix_Disconnected(t *testing.T) {
	t.Parallel()

	r, err := resistance.RawMatrix(adjacency(t, builder.Path(2), builder.Shifted(2, builder.Empty(1))))
	require.NoError(t, err)

	assert.InDelta(t, 1.0, r.At(0, 1), 1e-12)
	assert.True(t, math.IsInf(r.At(0, 2), 1))
	assert.True(t, math.IsInf(r.At(2, 1), 1))
	for i := 0; i < 3; i++ {
		assert.Zero(t, r.At(i, i))
	}
}

func TestRawMatrix_SingleNode(t *testing.T) {
	r, err := resistance.RawMatrix(adjacency(t, builder.Empty(1)))
	require.NoError(t, err)
	assert.True(t, mat.Equal(mat.NewDense(1, 1, nil), r))
}

func TestRenormalized_Range(t *testing.T) {
	r, err := resistance.Renormalized(adjacency(t, builder.Path(3), builder.Shifted(3, builder.Cycle(3))), resistance.WithBeta(2))
	require.NoError(t, err)

	n, _ := r.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := r.At(i, j)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
	assert.InDelta(t, 1.0/3.0, r.At(0, 1), 1e-12) // R=1, β=2
	assert.Equal(t, 1.0, r.At(0, 4))
	assert.Zero(t, r.At(4, 4))
}

// TestDistance_Scenarios covers reflexivity, symmetry and the path/cycle pair.
func TestDistance_Scenarios(t *testing.T) {
	t.Parallel()

	p4, c4 := adjacency(t, builder.Path(4)), adjacency(t, builder.Cycle(4))

	d, err := resistance.Distance(p4, p4)
	require.NoError(t, err)
	assert.InDelta(t, 0, d, 1e-12)

	d12, err := resistance.Distance(p4, c4)
	require.NoError(t, err)
	d21, err := resistance.Distance(c4, p4)
	require.NoError(t, err)
	assert.Greater(t, d12, 0.0)
	assert.InDelta(t, d12, d21, 1e-12)
}

// TestDistance_BetaSensitivity pins path4 vs cycle4 for several β.
func TestDistance_BetaSensitivity(t *testing.T) {
	t.Parallel()

	p4, c4 := adjacency(t, builder.Path(4)), adjacency(t, builder.Cycle(4))
	want := map[float64]float64{
		0.5: 0.4796067928386,
		1:   0.5902169169638,
		2:   0.5893764116736,
		10:  0.2783555444917,
	}
	for beta, w := range want {
		d, err := resistance.Distance(p4, c4, resistance.WithBeta(beta))
		require.NoError(t, err)
		assert.InDelta(t, w, d, 1e-9, "beta=%g", beta)
	}
}

// TestDistance_Disconnected compares two disconnected graphs: the result is finite and positive.
func TestDistance_Disconnected(t *testing.T) {
	t.Parallel()

	g5 := adjacency(t, builder.Path(2), builder.Shifted(2, builder.Path(3)))
	g6 := adjacency(t, builder.Cycle(3), builder.Shifted(3, builder.Empty(2)))

	d, err := resistance.Distance(g5, g6)
	require.NoError(t, err)
	assert.Greater(t, d, 0.0)
	assert.False(t, math.IsInf(d, 0) || math.IsNaN(d))

	// two isolated nodes vs P2: the two off-diagonal entries differ by 1 − 1/2.
	iso := adjacency(t, builder.Empty(2))
	d, err = resistance.Distance(iso, adjacency(t, builder.Path(2)))
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(0.5), d, 1e-12)
}

// TestDistance_PaddingInvariance checks that extra isolated nodes do not move the metric.
func TestDistance_PaddingInvariance(t *testing.T) {
	t.Parallel()

	a, b := adjacency(t, builder.Path(3)), adjacency(t, builder.Star(5))
	base, err := resistance.Distance(a, b, resistance.WithP(1))
	require.NoError(t, err)

	for _, n := range []int{6, 10} {
		pa, err := matrix.Pad(a, n)
		require.NoError(t, err)
		pb, err := matrix.Pad(b, n)
		require.NoError(t, err)
		d, err := resistance.Distance(pa, pb, resistance.WithP(1))
		require.NoError(t, err)
		assert.InDelta(t, base, d, 1e-10)
	}
}

func TestDistance_WeightsAndSolver(t *testing.T) {
	heavy := mat.NewDense(2, 2, []float64{0, -4, 0, 0})
	r, err := resistance.RawMatrix(heavy, resistance.WithWeights())
	require.NoError(t, err)
	assert.InDelta(t, 0.25, r.At(0, 1), 1e-12)
	assert.InDelta(t, 0.25, r.At(1, 0), 1e-12)

	unit, err := resistance.RawMatrix(heavy, resistance.WithSolver(linalg.Sparse{}))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, unit.At(0, 1), 1e-12)

	assert.Panics(t, func() { resistance.WithSolver(nil) })
}

func TestDistance_Errors(t *testing.T) {
	empty, err := matrix.NewCSR(0, 0, nil)
	require.NoError(t, err)
	p2 := adjacency(t, builder.Path(2))

	_, err = resistance.Distance(empty, p2)
	require.ErrorIs(t, err, resistance.ErrEmptyGraph)
	_, err = resistance.RawMatrix(empty)
	require.ErrorIs(t, err, resistance.ErrEmptyGraph)

	_, err = resistance.Distance(p2, p2, resistance.WithP(0))
	require.ErrorIs(t, err, resistance.ErrBadExponent)
	_, err = resistance.Distance(p2, p2, resistance.WithBeta(math.NaN()))
	require.ErrorIs(t, err, resistance.ErrBadBeta)
	_, err = resistance.Renormalized(p2, resistance.WithBeta(-1))
	require.ErrorIs(t, err, resistance.ErrBadBeta)
}
