// SPDX-License-Identifier: MIT
// Package: matrix
//
// options.go - functional options for graph → matrix adapters.

package matrix

// Defaults for adjacency export.
const (
	// DefaultWeighted exports 1 for every edge instead of its stored weight.
	DefaultWeighted = false

	// DefaultSymmetrize keeps directed graphs asymmetric.
	DefaultSymmetrize = false
)

// Option mutates Options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective adapter configuration.
type Options struct {
	weighted   bool
	symmetrize bool
}

// WithWeights exports stored edge weights instead of binary presence.
func WithWeights() Option {
	return func(o *Options) { o.weighted = true }
}

// WithBinary exports 1 for every edge (the default).
func WithBinary() Option {
	return func(o *Options) { o.weighted = false }
}

// WithSymmetrize mirrors directed edges so the result is symmetric. It has no
// effect on undirected graphs, which are always exported symmetric.
func WithSymmetrize() Option {
	return func(o *Options) { o.symmetrize = true }
}

func gatherOptions(user ...Option) Options {
	o := Options{weighted: DefaultWeighted, symmetrize: DefaultSymmetrize}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
