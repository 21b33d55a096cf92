// SPDX-License-Identifier: MIT

package netsimile

import "errors"

var (
	// ErrDimensionMismatch indicates Canberra inputs of different length.
	ErrDimensionMismatch = errors.New("netsimile: dimension mismatch")

	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("netsimile: graph is nil")

	// ErrBadFeatureMatrix indicates a feature matrix without NumFeatures columns.
	ErrBadFeatureMatrix = errors.New("netsimile: feature matrix must have 7 columns")
)
