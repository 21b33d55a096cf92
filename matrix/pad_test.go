// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/netcomp/matrix"
)

// TestPad_PreservesFamily checks that padding keeps the input representation.
func TestPad_PreservesFamily(t *testing.T) {
	t.Parallel()

	sp, err := matrix.NewCSR(2, 2, []matrix.Triplet{{Row: 0, Col: 1, Value: 1}, {Row: 1, Col: 0, Value: 1}})
	require.NoError(t, err)
	sym := mat.NewSymDense(2, []float64{0, 1, 1, 0})
	dense := mat.NewDense(2, 2, []float64{0, 1, 0, 0})

	for name, in := range map[string]mat.Matrix{"csr": sp, "sym": sym, "dense": dense} {
		out, err := matrix.Pad(in, 4)
		require.NoError(t, err, name)

		r, c := out.Dims()
		assert.Equal(t, 4, r, name)
		assert.Equal(t, 4, c, name)
		assert.Equal(t, in.At(0, 1), out.At(0, 1), name)
		for i := 2; i < 4; i++ {
			for j := 0; j < 4; j++ {
				assert.Zero(t, out.At(i, j), name)
				assert.Zero(t, out.At(j, i), name)
			}
		}

		switch in.(type) {
		case *matrix.CSR:
			assert.IsType(t, &matrix.CSR{}, out)
		case *mat.SymDense:
			assert.IsType(t, &mat.SymDense{}, out)
		default:
			assert.IsType(t, &mat.Dense{}, out)
		}
	}
}

func TestPad_NoOpAndErrors(t *testing.T) {
	t.Parallel()

	a := mat.NewDense(3, 3, nil)
	out, err := matrix.Pad(a, 2)
	require.NoError(t, err)
	assert.Same(t, a, out)

	_, err = matrix.Pad(mat.NewDense(2, 3, nil), 4)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Pad(nil, 4)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Pad(a, -1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestPad_EmptyCSR(t *testing.T) {
	empty, err := matrix.NewCSR(0, 0, nil)
	require.NoError(t, err)

	out, err := matrix.Pad(empty, 3)
	require.NoError(t, err)
	r, _ := out.Dims()
	assert.Equal(t, 3, r)
	assert.Zero(t, out.(*matrix.CSR).NNZ())
}

func TestPadPair(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{0, 1, 1, 0})
	b := mat.NewDense(3, 3, nil)

	pa, pb, err := matrix.PadPair(a, b, 0)
	require.NoError(t, err)
	ra, _ := pa.Dims()
	rb, _ := pb.Dims()
	assert.Equal(t, 3, ra)
	assert.Equal(t, 3, rb)

	pa, _, err = matrix.PadPair(a, b, 5)
	require.NoError(t, err)
	ra, _ = pa.Dims()
	assert.Equal(t, 5, ra)
}
