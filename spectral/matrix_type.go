// File: matrix_type.go
// Role: closed set of matrices whose spectra can be compared.

package spectral

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/netcomp/matrix"
)

// MatrixType selects the matrix whose eigenvalues are compared.
type MatrixType int

const (
	// Adjacency compares eigenvalues of A, largest first.
	Adjacency MatrixType = iota

	// Laplacian compares eigenvalues of D − A, smallest first.
	Laplacian

	// NormalizedLaplacian compares eigenvalues of D^(−1/2)(D−A)D^(−1/2),
	// smallest first.
	NormalizedLaplacian
)

// String implements fmt.Stringer. The names round-trip through ParseMatrixType.
func (t MatrixType) String() string {
	switch t {
	case Adjacency:
		return "adjacency"
	case Laplacian:
		return "laplacian"
	case NormalizedLaplacian:
		return "normalized_laplacian"
	default:
		return fmt.Sprintf("MatrixType(%d)", int(t))
	}
}

// ParseMatrixType maps "adjacency", "laplacian" and "normalized_laplacian"
// (case-insensitive) to a MatrixType.
func ParseMatrixType(s string) (MatrixType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "adjacency":
		return Adjacency, nil
	case "laplacian":
		return Laplacian, nil
	case "normalized_laplacian":
		return NormalizedLaplacian, nil
	default:
		return 0, fmt.Errorf("ParseMatrixType(%q): %w", s, ErrUnknownMatrixType)
	}
}

func (t MatrixType) valid() bool { return t >= Adjacency && t <= NormalizedLaplacian }

// descending reports whether the "top" eigenvalues of t are the largest.
func (t MatrixType) descending() bool { return t == Adjacency }

// Matrix builds the symmetric matrix of type t from the adjacency matrix a.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrAsymmetry.
//   - matrix.ErrEmpty: order 0 (gonum has no 0×0 SymDense).
//   - ErrUnknownMatrixType.
func Matrix(a mat.Matrix, t MatrixType) (*mat.SymDense, error) {
	switch t {
	case Adjacency:
		if err := matrix.ValidateSymmetric(a, matrix.DefaultSymmetryTol); err != nil {
			return nil, fmt.Errorf("spectral.Matrix: %w", err)
		}
		n, _ := a.Dims()
		if n == 0 {
			return nil, fmt.Errorf("spectral.Matrix: %w", matrix.ErrEmpty)
		}
		s := mat.NewSymDense(n, nil)
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				s.SetSym(i, j, a.At(i, j))
			}
		}

		return s, nil
	case Laplacian, NormalizedLaplacian:
		l, err := matrix.Laplacian(a, t == NormalizedLaplacian)
		if err != nil {
			return nil, fmt.Errorf("spectral.Matrix: %w", err)
		}

		return l, nil
	default:
		return nil, fmt.Errorf("spectral.Matrix: %v: %w", t, ErrUnknownMatrixType)
	}
}
