// SPDX-License-Identifier: MIT
// Package: linalg
//
// solver.go - the linear-algebra capability interface shared by all engines.

package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Solver is the single linear-algebra capability the distance engines
// depend on. Implementations differ in how they store and factor the
// operand, not in what they compute.
type Solver interface {
	// Name identifies the strategy in logs.
	Name() string

	// Inverse returns a⁻¹.
	Inverse(a mat.Matrix) (*mat.Dense, error)

	// Solve returns x with a·x = b.
	Solve(a mat.Matrix, b []float64) ([]float64, error)

	// EigenSym returns the eigenvalues of a symmetric matrix in ascending order.
	EigenSym(a mat.Symmetric) ([]float64, error)

	// PseudoInverse returns the Moore–Penrose pseudo-inverse of a.
	PseudoInverse(a mat.Matrix) (*mat.Dense, error)
}

// squareOrder validates a non-empty square operand.
func squareOrder(op string, a mat.Matrix) (int, error) {
	r, c := a.Dims()
	if r != c {
		return 0, fmt.Errorf("%s: %d×%d: %w", op, r, c, ErrNonSquare)
	}
	if r == 0 {
		return 0, fmt.Errorf("%s: %w", op, ErrEmpty)
	}

	return r, nil
}
