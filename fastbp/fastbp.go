// SPDX-License-Identifier: MIT

package fastbp

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/netcomp/linalg"
	"github.com/katalvlaran/netcomp/matrix"
)

var (
	// ErrBadEpsilon indicates ε is not a finite positive number.
	ErrBadEpsilon = errors.New("fastbp: epsilon must be finite and > 0")

	// ErrEmptyMatrix indicates a zero-order adjacency matrix.
	ErrEmptyMatrix = errors.New("fastbp: zero-order adjacency matrix")
)

// Option configures Matrix.
type Option func(*Options)

// Options is the resolved configuration of Matrix.
type Options struct {
	eps      float64 // 0 ⇒ DefaultEpsilon(A)
	selector linalg.Selector
}

// WithEpsilon fixes ε instead of deriving it from the maximum degree.
// The value is validated by Matrix (ErrBadEpsilon).
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.eps = eps }
}

// WithSelector overrides the dense/sparse strategy thresholds.
func WithSelector(sel linalg.Selector) Option {
	return func(o *Options) { o.selector = sel }
}

func gatherOptions(opts ...Option) Options {
	o := Options{selector: linalg.DefaultSelector()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// DefaultEpsilon returns 1/(1+d_max) where d_max is the largest binarized
// out-degree of a.
func DefaultEpsilon(a mat.Matrix) (float64, error) {
	d, err := matrix.MaxBinaryDegree(a)
	if err != nil {
		return 0, fmt.Errorf("DefaultEpsilon: %w", err)
	}

	return 1 / (1 + d), nil
}

// Sinv returns I + ε²D − εA in CSR form, where D holds the binarized
// out-degrees of a. A stays signed and weighted; only D is binarized.
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrNonSquare for malformed a.
//   - ErrBadEpsilon for non-finite or non-positive eps.
//
// Complexity: O(n + nnz log nnz).
func Sinv(a mat.Matrix, eps float64) (*matrix.CSR, error) {
	if err := checkEpsilon(eps); err != nil {
		return nil, fmt.Errorf("Sinv: %w", err)
	}
	deg, err := matrix.BinaryDegreeVector(a)
	if err != nil {
		return nil, fmt.Errorf("Sinv: %w", err)
	}
	n := len(deg)

	entries := make([]matrix.Triplet, 0, n)
	for i, d := range deg {
		entries = append(entries, matrix.Triplet{Row: i, Col: i, Value: 1 + eps*eps*d})
	}
	if nz, ok := a.(mat.NonZeroDoer); ok {
		nz.DoNonZero(func(i, j int, v float64) {
			entries = append(entries, matrix.Triplet{Row: i, Col: j, Value: -eps * v})
		})
	} else {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if v := a.At(i, j); v != 0 {
					entries = append(entries, matrix.Triplet{Row: i, Col: j, Value: -eps * v})
				}
			}
		}
	}

	m, err := matrix.NewCSR(n, n, entries)
	if err != nil {
		return nil, fmt.Errorf("Sinv: %w", err)
	}

	return m, nil
}

// Matrix returns the fast belief propagation matrix S = (I + ε²D − εA)⁻¹.
//
// Implementation:
//   - Stage 1: Resolve ε (WithEpsilon or DefaultEpsilon).
//   - Stage 2: Assemble Sinv sparsely.
//   - Stage 3: Invert through the Selector: dense LU first, Gauss–Seidel
//     when the operand is large and sparse or the dense result is
//     ill-conditioned.
//
// Errors:
//   - ErrEmptyMatrix: order 0.
//   - ErrBadEpsilon: invalid ε.
//   - linalg.ErrSingular / linalg.ErrNotConverged: the system could not be solved.
//
// Complexity: O(n³) dense, O(n · iters · nnz) sparse.
func Matrix(a mat.Matrix, opts ...Option) (*mat.Dense, error) {
	n, err := matrix.ValidateSquare(a)
	if err != nil {
		return nil, fmt.Errorf("fastbp.Matrix: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("fastbp.Matrix: %w", ErrEmptyMatrix)
	}
	o := gatherOptions(opts...)

	eps := o.eps
	if eps == 0 {
		if eps, err = DefaultEpsilon(a); err != nil {
			return nil, fmt.Errorf("fastbp.Matrix: %w", err)
		}
	}
	sinv, err := Sinv(a, eps)
	if err != nil {
		return nil, fmt.Errorf("fastbp.Matrix: %w", err)
	}
	s, err := o.selector.Invert(sinv)
	if err != nil {
		return nil, fmt.Errorf("fastbp.Matrix: %w", err)
	}

	return s, nil
}

func checkEpsilon(eps float64) error {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		return ErrBadEpsilon
	}

	return nil
}
