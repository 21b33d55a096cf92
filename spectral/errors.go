// SPDX-License-Identifier: MIT

package spectral

import "errors"

var (
	// ErrUnknownMatrixType indicates a matrix type name outside the closed set.
	ErrUnknownMatrixType = errors.New("spectral: unknown matrix type")

	// ErrBadTopK indicates a negative eigenvalue count.
	ErrBadTopK = errors.New("spectral: k must be ≥ 0")
)
