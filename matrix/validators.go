// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for shape, symmetry and finiteness checks.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultSymmetryTol is the absolute tolerance used when callers do not supply one.
const DefaultSymmetryTol = 1e-9

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare checks that m is non-nil and square, returning its order.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m mat.Matrix) (int, error) {
	if m == nil {
		return 0, validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	r, c := m.Dims()
	if r != c {
		return 0, validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return r, nil
}

// ValidateSymmetric checks |m[i,j] − m[j,i]| ≤ tol for all i < j.
// A negative tol selects DefaultSymmetryTol.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrAsymmetry.
// Complexity: O(n²).
func ValidateSymmetric(m mat.Matrix, tol float64) error {
	n, err := ValidateSquare(m)
	if err != nil {
		return err
	}
	if _, ok := m.(mat.Symmetric); ok {
		return nil
	}
	if tol < 0 {
		tol = DefaultSymmetryTol
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(m.At(i, j)-m.At(j, i)) > tol {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateFinite rejects any NaN or ±Inf entry.
//
// Errors: ErrNilMatrix, ErrNaNInf.
func ValidateFinite(m mat.Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateFinite", ErrNilMatrix)
	}
	var bad bool
	eachNonZero(m, func(_, _ int, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			bad = true
		}
	})
	if bad {
		return validatorErrorf("ValidateFinite", ErrNaNInf)
	}

	return nil
}
