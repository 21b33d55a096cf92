// SPDX-License-Identifier: MIT
// Package: linalg
//
// sparse.go - CSR-backed iterative strategy (Gauss–Seidel).
//
// Contract:
//   - Convergence is guaranteed for strictly diagonally dominant systems,
//     which includes the fast BP matrix I + ε²D − εA for ε < 1/(1+d_max).
//   - A zero diagonal entry ⇒ ErrSingular (the sweep cannot proceed).
//   - Iteration stops when max|Δx| ≤ Tol·(1 + max|x|); hitting MaxIter or
//     producing a non-finite iterate ⇒ ErrNotConverged.
//   - EigenSym and PseudoInverse have no sparse formulation here and
//     delegate to Dense.

package linalg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/netcomp/matrix"
)

// Defaults for the iterative solver.
const (
	DefaultSparseTol     = 1e-12
	DefaultSparseMaxIter = 10_000
)

// Sparse is the Gauss–Seidel Solver. The zero value uses the defaults.
type Sparse struct {
	// Tol is the relative stopping tolerance; ≤ 0 selects DefaultSparseTol.
	Tol float64

	// MaxIter caps full sweeps per right-hand side; ≤ 0 selects DefaultSparseMaxIter.
	MaxIter int
}

var _ Solver = Sparse{}

// Name implements Solver.
func (Sparse) Name() string { return "sparse" }

// Inverse implements Solver by solving a·x = e_j for every column j.
//
// Complexity: O(n · iters · nnz) time, O(n²) space for the dense result.
func (s Sparse) Inverse(a mat.Matrix) (*mat.Dense, error) {
	n, err := squareOrder("Sparse.Inverse", a)
	if err != nil {
		return nil, err
	}
	csr := matrix.CSRFrom(a)
	diag, err := diagonal(csr)
	if err != nil {
		return nil, fmt.Errorf("Sparse.Inverse: %w", err)
	}

	inv := mat.NewDense(n, n, nil)
	e := make([]float64, n)
	for j := 0; j < n; j++ {
		e[j] = 1
		x, err := s.gaussSeidel(csr, diag, e)
		if err != nil {
			return nil, fmt.Errorf("Sparse.Inverse: column %d: %w", j, err)
		}
		inv.SetCol(j, x)
		e[j] = 0
	}

	return inv, nil
}

// Solve implements Solver.
func (s Sparse) Solve(a mat.Matrix, b []float64) ([]float64, error) {
	n, err := squareOrder("Sparse.Solve", a)
	if err != nil {
		return nil, err
	}
	if len(b) != n {
		return nil, fmt.Errorf("Sparse.Solve: len(b)=%d, n=%d: %w", len(b), n, ErrDimensionMismatch)
	}
	csr := matrix.CSRFrom(a)
	diag, err := diagonal(csr)
	if err != nil {
		return nil, fmt.Errorf("Sparse.Solve: %w", err)
	}
	x, err := s.gaussSeidel(csr, diag, b)
	if err != nil {
		return nil, fmt.Errorf("Sparse.Solve: %w", err)
	}

	return x, nil
}

// EigenSym implements Solver by delegating to Dense.
func (Sparse) EigenSym(a mat.Symmetric) ([]float64, error) {
	return Dense{}.EigenSym(a)
}

// PseudoInverse implements Solver by delegating to Dense.
func (Sparse) PseudoInverse(a mat.Matrix) (*mat.Dense, error) {
	return Dense{}.PseudoInverse(a)
}

func (s Sparse) params() (float64, int) {
	tol, iters := s.Tol, s.MaxIter
	if tol <= 0 {
		tol = DefaultSparseTol
	}
	if iters <= 0 {
		iters = DefaultSparseMaxIter
	}

	return tol, iters
}

// gaussSeidel runs in-place sweeps x_i ← (b_i − Σ_{j≠i} a_ij x_j) / a_ii.
func (s Sparse) gaussSeidel(a *matrix.CSR, diag, b []float64) ([]float64, error) {
	tol, maxIter := s.params()
	n := len(b)
	x := make([]float64, n)
	for it := 0; it < maxIter; it++ {
		var delta, scale float64
		for i := 0; i < n; i++ {
			sum := b[i]
			a.DoRowNonZero(i, func(_, j int, v float64) {
				if j != i {
					sum -= v * x[j]
				}
			})
			next := sum / diag[i]
			if math.IsNaN(next) || math.IsInf(next, 0) {
				return nil, fmt.Errorf("row %d diverged: %w", i, ErrNotConverged)
			}
			delta = math.Max(delta, math.Abs(next-x[i]))
			scale = math.Max(scale, math.Abs(next))
			x[i] = next
		}
		if delta <= tol*(1+scale) {
			return x, nil
		}
	}

	return nil, fmt.Errorf("after %d sweeps: %w", maxIter, ErrNotConverged)
}

// diagonal extracts a's diagonal, rejecting zero pivots.
func diagonal(a *matrix.CSR) ([]float64, error) {
	n, _ := a.Dims()
	d := make([]float64, n)
	for i := 0; i < n; i++ {
		d[i] = a.At(i, i)
		if d[i] == 0 {
			return nil, fmt.Errorf("zero diagonal at %d: %w", i, ErrSingular)
		}
	}

	return d, nil
}
