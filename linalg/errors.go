// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.

package linalg

import "errors"

var (
	// ErrEmpty indicates a zero-order operand.
	ErrEmpty = errors.New("linalg: zero-order matrix")

	// ErrNonSquare indicates a square operand was required.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrSingular indicates an exactly singular system (zero pivot or
	// infinite condition number).
	ErrSingular = errors.New("linalg: singular matrix")

	// ErrIllConditioned indicates the dense solver finished but its condition
	// estimate exceeded gonum's ConditionTolerance. The gonum mat.Condition
	// value stays in the error chain.
	ErrIllConditioned = errors.New("linalg: ill-conditioned matrix")

	// ErrNotConverged indicates the iterative solver hit its iteration cap.
	ErrNotConverged = errors.New("linalg: iterative solver did not converge")

	// ErrFactorization indicates an eigen or SVD factorization failed.
	ErrFactorization = errors.New("linalg: factorization failed")

	// ErrDimensionMismatch indicates a right-hand side of the wrong length.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")
)
