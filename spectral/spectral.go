// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/netcomp/core"
	"github.com/katalvlaran/netcomp/linalg"
	"github.com/katalvlaran/netcomp/matrix"
)

// Spectrum returns the eigenvalues of Matrix(a, t), largest first for
// Adjacency and smallest first for the Laplacians. When 0 < k < n only the
// first k are returned. An order-0 input yields an empty spectrum.
//
// Errors:
//   - ErrBadTopK: k < 0.
//   - Errors from Matrix and from the eigensolver.
func Spectrum(a mat.Matrix, t MatrixType, k int) ([]float64, error) {
	return spectrum(a, t, k, linalg.Dense{})
}

func spectrum(a mat.Matrix, t MatrixType, k int, solver linalg.Solver) ([]float64, error) {
	if k < 0 {
		return nil, fmt.Errorf("spectral.Spectrum: k=%d: %w", k, ErrBadTopK)
	}
	n, err := matrix.ValidateSquare(a)
	if err != nil {
		return nil, fmt.Errorf("spectral.Spectrum: %w", err)
	}
	if !t.valid() {
		return nil, fmt.Errorf("spectral.Spectrum: %v: %w", t, ErrUnknownMatrixType)
	}
	if n == 0 {
		return []float64{}, nil
	}

	m, err := Matrix(a, t)
	if err != nil {
		return nil, fmt.Errorf("spectral.Spectrum: %w", err)
	}
	vals, err := solver.EigenSym(m)
	if err != nil {
		return nil, fmt.Errorf("spectral.Spectrum: %w", err)
	}
	if t.descending() {
		slices.Reverse(vals)
	}
	if k > 0 && k < len(vals) {
		vals = vals[:k]
	}

	return vals, nil
}

// Distance returns the Euclidean distance between the spectra of a1 and a2.
//
// Implementation:
//   - Stage 1: k_eff = min(k, n1−1, n2−1) when WithTopK is set; k_eff < 1
//     falls back to full spectra.
//   - Stage 2: Spectrum of each input under the selected MatrixType.
//   - Stage 3: Zero-pad the shorter sequence, return ‖λ1 − λ2‖₂.
//
// Behavior highlights:
//   - Inputs of different order are compared without padding the matrices:
//     only the spectra are padded.
//   - Empty inputs contribute an empty spectrum.
//
// Errors:
//   - matrix.ErrAsymmetry for directed inputs; use DistanceGraphs or
//     symmetrize first.
//   - ErrUnknownMatrixType, linalg errors.
//
// Complexity: O(n1³ + n2³) for the dense eigensolver.
func Distance(a1, a2 mat.Matrix, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)

	n1, err := matrix.ValidateSquare(a1)
	if err != nil {
		return 0, fmt.Errorf("spectral.Distance: %w", err)
	}
	n2, err := matrix.ValidateSquare(a2)
	if err != nil {
		return 0, fmt.Errorf("spectral.Distance: %w", err)
	}

	k := 0
	if o.k > 0 {
		k = min(o.k, n1-1, n2-1)
		if k < 1 {
			log.Debug().Int("k", o.k).Int("n1", n1).Int("n2", n2).
				Msg("spectral: truncation too small, using full spectra")
			k = 0
		}
	}

	s1, err := spectrum(a1, o.kind, k, o.solver)
	if err != nil {
		return 0, fmt.Errorf("spectral.Distance: %w", err)
	}
	s2, err := spectrum(a2, o.kind, k, o.solver)
	if err != nil {
		return 0, fmt.Errorf("spectral.Distance: %w", err)
	}
	s1, s2 = padSpectra(s1, s2)

	return floats.Distance(s1, s2, 2), nil
}

// DistanceGraphs compares the spectra of the undirected, unweighted views of
// g1 and g2.
func DistanceGraphs(g1, g2 *core.Graph, opts ...Option) (float64, error) {
	a1, _, err := matrix.Adjacency(g1, matrix.WithSymmetrize())
	if err != nil {
		return 0, fmt.Errorf("spectral.DistanceGraphs: %w", err)
	}
	a2, _, err := matrix.Adjacency(g2, matrix.WithSymmetrize())
	if err != nil {
		return 0, fmt.Errorf("spectral.DistanceGraphs: %w", err)
	}

	return Distance(a1, a2, opts...)
}

// padSpectra appends zeros to the shorter slice so both have equal length.
func padSpectra(s1, s2 []float64) ([]float64, []float64) {
	switch {
	case len(s1) < len(s2):
		s1 = append(s1, make([]float64, len(s2)-len(s1))...)
	case len(s2) < len(s1):
		s2 = append(s2, make([]float64, len(s1)-len(s2))...)
	}

	return s1, s2
}
