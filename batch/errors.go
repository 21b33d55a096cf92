// SPDX-License-Identifier: MIT

package batch

import "errors"

var (
	// ErrUnknownMetric indicates a metric name outside the closed set.
	ErrUnknownMetric = errors.New("batch: unknown metric")

	// ErrBadParams indicates metric parameters that no engine accepts.
	ErrBadParams = errors.New("batch: bad parameters")

	// ErrNilGraph indicates a pair with a missing graph.
	ErrNilGraph = errors.New("batch: graph is nil")
)
