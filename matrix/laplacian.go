// SPDX-License-Identifier: MIT
// Package: matrix
//
// laplacian.go - combinatorial and symmetric-normalized Laplacians.
//
// Policy:
//   - Input must be symmetric (undirected).
//   - In the normalized form an isolated node (degree 0) gets scale factor 0,
//     so its row and column are 0 instead of NaN.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Laplacian returns L = D − A, or D^(−1/2)(D−A)D^(−1/2) when normalized.
//
// Implementation:
//   - Stage 1: Validate square, non-empty, symmetric.
//   - Stage 2: Compute row-sum degrees.
//   - Stage 3: Fill the upper triangle of a SymDense from the non-zeros of A,
//     then add degrees on the diagonal; scale by s_i·s_j when normalized.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry, ErrEmpty.
//
// Complexity:
//   - Time O(n²) for allocation plus O(nnz), Space O(n²).
func Laplacian(a mat.Matrix, normalized bool) (*mat.SymDense, error) {
	if err := ValidateSymmetric(a, DefaultSymmetryTol); err != nil {
		return nil, fmt.Errorf("Laplacian: %w", err)
	}
	n, _ := a.Dims()
	if n == 0 {
		return nil, fmt.Errorf("Laplacian: %w", ErrEmpty)
	}
	deg, err := DegreeVector(a)
	if err != nil {
		return nil, err
	}

	l := mat.NewSymDense(n, nil)
	eachNonZero(a, func(i, j int, v float64) {
		if i <= j {
			l.SetSym(i, j, l.At(i, j)-v)
		}
	})
	for i := 0; i < n; i++ {
		l.SetSym(i, i, l.At(i, i)+deg[i])
	}
	if !normalized {
		return l, nil
	}

	scale := make([]float64, n)
	for i, d := range deg {
		if d > 0 {
			scale[i] = 1 / math.Sqrt(d)
		}
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if v := l.At(i, j); v != 0 {
				l.SetSym(i, j, v*scale[i]*scale[j])
			}
		}
	}

	return l, nil
}
