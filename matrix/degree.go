// SPDX-License-Identifier: MIT
// Package: matrix
//
// degree.go - degree vectors and the diagonal degree matrix.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// DegreeVector returns the row sums of a (weighted out-degrees).
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(nnz) for sparse inputs, O(n²) otherwise.
func DegreeVector(a mat.Matrix) ([]float64, error) {
	n, err := ValidateSquare(a)
	if err != nil {
		return nil, fmt.Errorf("DegreeVector: %w", err)
	}
	d := make([]float64, n)
	eachNonZero(a, func(i, _ int, v float64) { d[i] += v })

	return d, nil
}

// BinaryDegreeVector returns, per row, the number of non-zero entries of a:
// the out-degree of the binarized adjacency.
//
// Errors: ErrNilMatrix, ErrNonSquare.
func BinaryDegreeVector(a mat.Matrix) ([]float64, error) {
	n, err := ValidateSquare(a)
	if err != nil {
		return nil, fmt.Errorf("BinaryDegreeVector: %w", err)
	}
	d := make([]float64, n)
	eachNonZero(a, func(i, _ int, _ float64) { d[i]++ })

	return d, nil
}

// DegreeMatrix returns diag(DegreeVector(a)).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrEmpty (order 0).
func DegreeMatrix(a mat.Matrix) (*mat.DiagDense, error) {
	d, err := DegreeVector(a)
	if err != nil {
		return nil, err
	}
	if len(d) == 0 {
		return nil, fmt.Errorf("DegreeMatrix: %w", ErrEmpty)
	}

	return mat.NewDiagDense(len(d), d), nil
}

// MaxBinaryDegree returns the largest binarized out-degree over all inputs.
// Empty inputs contribute 0.
//
// Errors: as BinaryDegreeVector.
func MaxBinaryDegree(as ...mat.Matrix) (float64, error) {
	best := 0.0
	for _, a := range as {
		d, err := BinaryDegreeVector(a)
		if err != nil {
			return 0, err
		}
		for _, v := range d {
			best = max(best, v)
		}
	}

	return best, nil
}
