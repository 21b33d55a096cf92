// SPDX-License-Identifier: MIT

package edgelist

import "errors"

var (
	// ErrEmptyEdgeList indicates an edge list that would produce an empty graph.
	ErrEmptyEdgeList = errors.New("edgelist: empty edge list")

	// ErrUnknownMode indicates a mode name outside the closed set.
	ErrUnknownMode = errors.New("edgelist: unknown mode")

	// ErrSyntax indicates a malformed edge-list line.
	ErrSyntax = errors.New("edgelist: syntax error")
)
