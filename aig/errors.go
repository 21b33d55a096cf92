// SPDX-License-Identifier: MIT

package aig

import "errors"

var (
	// ErrUnknownFormat indicates input that starts with neither "aag" nor "aig".
	ErrUnknownFormat = errors.New("aig: unknown AIGER format")

	// ErrParse wraps a failure reported by the AIGER reader.
	ErrParse = errors.New("aig: parse error")
)
