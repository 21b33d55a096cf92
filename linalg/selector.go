// SPDX-License-Identifier: MIT
// Package: linalg
//
// selector.go - size/density strategy selection and the dense→sparse
// inversion fallback.

package linalg

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/netcomp/matrix"
)

// Defaults for Selector.
const (
	// DefaultDenseMaxOrder: operands up to this order always go dense.
	DefaultDenseMaxOrder = 2000

	// DefaultSparseMaxDensity: larger operands go sparse when nnz/n² is at
	// or below this fraction.
	DefaultSparseMaxDensity = 0.01
)

// Selector picks a Solver for an operand by order and density.
type Selector struct {
	DenseMaxOrder    int
	SparseMaxDensity float64
	Sparse           Sparse
}

// DefaultSelector returns a Selector with the package defaults.
func DefaultSelector() Selector {
	return Selector{
		DenseMaxOrder:    DefaultDenseMaxOrder,
		SparseMaxDensity: DefaultSparseMaxDensity,
	}
}

// Select returns Dense for small or dense operands and the configured Sparse
// solver otherwise.
func (s Selector) Select(a mat.Matrix) Solver {
	n, _ := a.Dims()
	if n <= s.DenseMaxOrder {
		return Dense{}
	}
	if matrix.CSRFrom(a).Density() <= s.SparseMaxDensity {
		return s.Sparse
	}

	return Dense{}
}

// Invert computes a⁻¹ with the selected strategy. When the dense strategy
// reports ErrIllConditioned it retries once with the sparse solver; an
// exactly singular matrix is not retried.
func (s Selector) Invert(a mat.Matrix) (*mat.Dense, error) {
	solver := s.Select(a)
	n, _ := a.Dims()
	log.Debug().Str("solver", solver.Name()).Int("order", n).Msg("linalg: invert")

	inv, err := solver.Inverse(a)
	if err == nil {
		return inv, nil
	}
	if _, dense := solver.(Dense); !dense || !errors.Is(err, ErrIllConditioned) {
		return nil, err
	}
	log.Debug().Err(err).Int("order", n).Msg("linalg: dense inverse unstable, falling back to sparse")

	return s.Sparse.Inverse(a)
}
