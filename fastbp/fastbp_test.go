package fastbp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/netcomp/builder"
	"github.com/katalvlaran/netcomp/fastbp"
	"github.com/katalvlaran/netcomp/linalg"
	"github.com/katalvlaran/netcomp/matrix"
)

func adjacency(t *testing.T, c builder.Constructor) *matrix.CSR {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, c)
	require.NoError(t, err)
	a, _, err := matrix.Adjacency(g)
	require.NoError(t, err)

	return a
}

func TestDefaultEpsilon(t *testing.T) {
	eps, err := fastbp.DefaultEpsilon(adjacency(t, builder.Star(5)))
	require.NoError(t, err)
	assert.InDelta(t, 0.2, eps, 1e-15)

	w := mat.NewDense(2, 2, []float64{0, 7, 7, 0})
	eps, err = fastbp.DefaultEpsilon(w)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, eps, 1e-15, "degrees are binarized")
}

// TestMatrix_InvertsSinv checks S·Sinv = I on a path.
func TestMatrix_InvertsSinv(t *testing.T) {
	a := adjacency(t, builder.Path(4))

	s, err := fastbp.Matrix(a)
	require.NoError(t, err)

	eps, err := fastbp.DefaultEpsilon(a)
	require.NoError(t, err)
	sinv, err := fastbp.Sinv(a, eps)
	require.NoError(t, err)

	var prod mat.Dense
	prod.Mul(s, sinv)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			assert.InDelta(t, want, prod.At(i, j), 1e-12)
		}
	}
	// Sinv diagonal for an end node: 1 + ε²·1.
	assert.InDelta(t, 1+eps*eps, sinv.At(0, 0), 1e-15)
	assert.InDelta(t, -eps, sinv.At(0, 1), 1e-15)
}

// TestMatrix_IsolatedNodeIsIdentityRow checks that padding nodes contribute identity.
func TestMatrix_IsolatedNodeIsIdentityRow(t *testing.T) {
	a, err := matrix.Pad(adjacency(t, builder.Path(3)), 5)
	require.NoError(t, err)

	s, err := fastbp.Matrix(a, fastbp.WithEpsilon(0.25))
	require.NoError(t, err)
	for j := 0; j < 5; j++ {
		want := 0.0
		if j == 4 {
			want = 1
		}
		assert.InDelta(t, want, s.At(4, j), 1e-14)
	}
}

// TestMatrix_SparseStrategyAgrees forces the Gauss–Seidel path and compares with dense.
func TestMatrix_SparseStrategyAgrees(t *testing.T) {
	a := adjacency(t, builder.Cycle(12))

	dense, err := fastbp.Matrix(a)
	require.NoError(t, err)

	forced := linalg.Selector{DenseMaxOrder: 0, SparseMaxDensity: 1}
	sparse, err := fastbp.Matrix(a, fastbp.WithSelector(forced))
	require.NoError(t, err)

	assert.True(t, mat.EqualApprox(dense, sparse, 1e-9))
}

func TestMatrix_Errors(t *testing.T) {
	empty, err := matrix.NewCSR(0, 0, nil)
	require.NoError(t, err)
	_, err = fastbp.Matrix(empty)
	require.ErrorIs(t, err, fastbp.ErrEmptyMatrix)

	a := adjacency(t, builder.Path(2))
	for _, eps := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err = fastbp.Matrix(a, fastbp.WithEpsilon(eps))
		require.ErrorIs(t, err, fastbp.ErrBadEpsilon)
	}

	_, err = fastbp.Matrix(mat.NewDense(2, 3, nil))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
