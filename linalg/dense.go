// SPDX-License-Identifier: MIT
// Package: linalg
//
// dense.go - LAPACK-backed strategy on gonum's mat package.
//
// Contract:
//   - Inverse uses LU with partial pivoting (mat.Dense.Inverse).
//     Infinite condition ⇒ ErrSingular; finite but above
//     mat.ConditionTolerance ⇒ ErrIllConditioned.
//   - EigenSym uses mat.EigenSym (values only).
//   - PseudoInverse uses a thin SVD with cutoff max(r,c)·ε·σ_max, the same
//     default rank tolerance as LAPACK-based pinv routines.

package linalg

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Dense is the dense LAPACK-backed Solver. The zero value is ready to use.
type Dense struct{}

var _ Solver = Dense{}

// Name implements Solver.
func (Dense) Name() string { return "dense" }

// Inverse implements Solver.
//
// Complexity: O(n³) time, O(n²) space.
func (Dense) Inverse(a mat.Matrix) (*mat.Dense, error) {
	if _, err := squareOrder("Dense.Inverse", a); err != nil {
		return nil, err
	}
	var inv mat.Dense
	if err := inv.Inverse(a); err != nil {
		return nil, classify("Dense.Inverse", err)
	}

	return &inv, nil
}

// Solve implements Solver.
func (Dense) Solve(a mat.Matrix, b []float64) ([]float64, error) {
	n, err := squareOrder("Dense.Solve", a)
	if err != nil {
		return nil, err
	}
	if len(b) != n {
		return nil, fmt.Errorf("Dense.Solve: len(b)=%d, n=%d: %w", len(b), n, ErrDimensionMismatch)
	}
	var x mat.VecDense
	if err := x.SolveVec(a, mat.NewVecDense(n, append([]float64(nil), b...))); err != nil {
		return nil, classify("Dense.Solve", err)
	}

	return x.RawVector().Data, nil
}

// EigenSym implements Solver.
//
// Complexity: O(n³).
func (Dense) EigenSym(a mat.Symmetric) ([]float64, error) {
	if _, err := squareOrder("Dense.EigenSym", a); err != nil {
		return nil, err
	}
	var es mat.EigenSym
	if ok := es.Factorize(a, false); !ok {
		return nil, fmt.Errorf("Dense.EigenSym: %w", ErrFactorization)
	}

	return es.Values(nil), nil
}

// PseudoInverse implements Solver.
//
// Implementation:
//   - Stage 1: Thin SVD a = U Σ Vᵀ.
//   - Stage 2: Invert singular values above the cutoff, zero the rest.
//   - Stage 3: Return V Σ⁺ Uᵀ.
//
// Complexity: O(n³).
func (Dense) PseudoInverse(a mat.Matrix) (*mat.Dense, error) {
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("Dense.PseudoInverse: %w", ErrEmpty)
	}
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, fmt.Errorf("Dense.PseudoInverse: %w", ErrFactorization)
	}
	sv := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	smax := 0.0
	for _, s := range sv {
		smax = math.Max(smax, s)
	}
	cutoff := float64(max(r, c)) * epsilon * smax

	// V·Σ⁺ scales the columns of V.
	vs := mat.DenseCopyOf(&v)
	vr, _ := vs.Dims()
	for k, s := range sv {
		inv := 0.0
		if s > cutoff {
			inv = 1 / s
		}
		for i := 0; i < vr; i++ {
			vs.Set(i, k, vs.At(i, k)*inv)
		}
	}
	var out mat.Dense
	out.Mul(vs, u.T())

	return &out, nil
}

// epsilon is the float64 machine epsilon (2⁻⁵²).
const epsilon = 0x1p-52

// classify maps gonum's Condition errors onto the package sentinels,
// keeping the original error in the chain.
func classify(op string, err error) error {
	var cond mat.Condition
	if errors.As(err, &cond) {
		if math.IsInf(float64(cond), 1) {
			return fmt.Errorf("%s: %w: %w", op, ErrSingular, err)
		}
		return fmt.Errorf("%s: %w: %w", op, ErrIllConditioned, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}
