// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/netcomp/matrix"
)

// path3 plus an isolated fourth node.
var path3Iso = mat.NewDense(4, 4, []float64{
	0, 1, 0, 0,
	1, 0, 1, 0,
	0, 1, 0, 0,
	0, 0, 0, 0,
})

func TestDegreeVectors(t *testing.T) {
	t.Parallel()

	w := mat.NewDense(2, 2, []float64{0, 2.5, 2.5, 0})
	d, err := matrix.DegreeVector(w)
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5, 2.5}, d)

	b, err := matrix.BinaryDegreeVector(w)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, b)

	dm, err := matrix.DegreeMatrix(path3Iso)
	require.NoError(t, err)
	assert.Equal(t, 2.0, dm.At(1, 1))
	assert.Equal(t, 0.0, dm.At(3, 3))

	mx, err := matrix.MaxBinaryDegree(w, path3Iso)
	require.NoError(t, err)
	assert.Equal(t, 2.0, mx)

	empty, err := matrix.NewCSR(0, 0, nil)
	require.NoError(t, err)
	_, err = matrix.DegreeMatrix(empty)
	require.ErrorIs(t, err, matrix.ErrEmpty)
}

// TestLaplacian_Combinatorial checks D − A on a small path.
func TestLaplacian_Combinatorial(t *testing.T) {
	t.Parallel()

	l, err := matrix.Laplacian(path3Iso, false)
	require.NoError(t, err)

	want := mat.NewDense(4, 4, []float64{
		1, -1, 0, 0,
		-1, 2, -1, 0,
		0, -1, 1, 0,
		0, 0, 0, 0,
	})
	assert.True(t, mat.Equal(want, l))
}

// TestLaplacian_NormalizedIsolated checks that isolated nodes yield zeros, not NaN.
func TestLaplacian_NormalizedIsolated(t *testing.T) {
	t.Parallel()

	l, err := matrix.Laplacian(path3Iso, true)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, l.At(0, 0), 1e-12)
	assert.InDelta(t, 1.0, l.At(1, 1), 1e-12)
	assert.InDelta(t, -1/math.Sqrt(2), l.At(0, 1), 1e-12)
	for i := 0; i < 4; i++ {
		assert.Zero(t, l.At(3, i))
		assert.False(t, math.IsNaN(l.At(i, i)))
	}
}

func TestLaplacian_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Laplacian(mat.NewDense(2, 2, []float64{0, 1, 0, 0}), false)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	empty, err := matrix.NewCSR(0, 0, nil)
	require.NoError(t, err)
	_, err = matrix.Laplacian(empty, false)
	require.ErrorIs(t, err, matrix.ErrEmpty)
}

func TestValidators(t *testing.T) {
	t.Parallel()

	n, err := matrix.ValidateSquare(path3Iso)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	require.NoError(t, matrix.ValidateSymmetric(path3Iso, -1))
	require.NoError(t, matrix.ValidateSymmetric(mat.NewSymDense(1, []float64{3}), 0))
	require.ErrorIs(t, matrix.ValidateSymmetric(mat.NewDense(2, 2, []float64{0, 1, 1.1, 0}), 0.01), matrix.ErrAsymmetry)

	require.NoError(t, matrix.ValidateFinite(path3Iso))
	require.ErrorIs(t, matrix.ValidateFinite(mat.NewDense(1, 1, []float64{math.Inf(1)})), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFinite(nil), matrix.ErrNilMatrix)
}
