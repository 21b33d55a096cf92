// SPDX-License-Identifier: MIT

package resistance

import "errors"

var (
	// ErrEmptyGraph indicates a zero-order input; resistance is undefined.
	ErrEmptyGraph = errors.New("resistance: empty graph")

	// ErrBadExponent indicates p is not a finite positive number.
	ErrBadExponent = errors.New("resistance: exponent p must be finite and > 0")

	// ErrBadBeta indicates β is not a finite positive number.
	ErrBadBeta = errors.New("resistance: beta must be finite and > 0")
)
