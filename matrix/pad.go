// SPDX-License-Identifier: MIT
// Package: matrix
//
// pad.go - embed an adjacency matrix into a larger order with isolated nodes.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Pad returns an n×n matrix holding a in its top-left block and zeros
// elsewhere. The added rows/columns represent isolated nodes.
//
// Implementation:
//   - Stage 1: Validate a is square and n ≥ 0.
//   - Stage 2: No-op when order(a) ≥ n (a itself is returned).
//   - Stage 3: Copy into a container of the same family: *CSR stays *CSR,
//     *mat.SymDense stays *mat.SymDense, anything else becomes *mat.Dense.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare: from ValidateSquare.
//   - ErrBadShape: n < 0.
//
// Complexity:
//   - CSR: O(n + nnz). Dense: O(n²).
func Pad(a mat.Matrix, n int) (mat.Matrix, error) {
	order, err := ValidateSquare(a)
	if err != nil {
		return nil, fmt.Errorf("Pad: %w", err)
	}
	if n < 0 {
		return nil, fmt.Errorf("Pad: n=%d: %w", n, ErrBadShape)
	}
	if order >= n {
		return a, nil
	}

	switch src := a.(type) {
	case *CSR:
		return src.padded(n), nil
	case *mat.SymDense:
		out := mat.NewSymDense(n, nil)
		for i := 0; i < order; i++ {
			for j := i; j < order; j++ {
				out.SetSym(i, j, src.At(i, j))
			}
		}
		return out, nil
	default:
		out := mat.NewDense(n, n, nil)
		eachNonZero(a, func(i, j int, v float64) { out.Set(i, j, v) })
		return out, nil
	}
}

// PadPair pads a1 and a2 to their common order N = max(n1, n2), then to
// atLeast if that is larger.
//
// Errors: as Pad.
func PadPair(a1, a2 mat.Matrix, atLeast int) (mat.Matrix, mat.Matrix, error) {
	n1, err := ValidateSquare(a1)
	if err != nil {
		return nil, nil, fmt.Errorf("PadPair: %w", err)
	}
	n2, err := ValidateSquare(a2)
	if err != nil {
		return nil, nil, fmt.Errorf("PadPair: %w", err)
	}
	n := max(n1, n2, atLeast)
	p1, err := Pad(a1, n)
	if err != nil {
		return nil, nil, err
	}
	p2, err := Pad(a2, n)
	if err != nil {
		return nil, nil, err
	}

	return p1, p2, nil
}
