// SPDX-License-Identifier: MIT

package spectral

import "github.com/katalvlaran/netcomp/linalg"

// Option configures Distance.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	kind   MatrixType
	k      int // 0 ⇒ full spectrum
	solver linalg.Solver
}

// WithMatrixType selects the compared matrix (Adjacency by default).
func WithMatrixType(t MatrixType) Option {
	return func(o *Options) { o.kind = t }
}

// WithTopK compares only the first k eigenvalues of each spectrum. k = 0
// compares the full spectra. Panics on negative k.
func WithTopK(k int) Option {
	if k < 0 {
		panic(ErrBadTopK)
	}
	return func(o *Options) { o.k = k }
}

// WithSolver overrides the eigensolver (linalg.Dense by default).
func WithSolver(s linalg.Solver) Option {
	if s == nil {
		panic("spectral: WithSolver(nil)")
	}
	return func(o *Options) { o.solver = s }
}

func gatherOptions(opts ...Option) Options {
	o := Options{kind: Adjacency, solver: linalg.Dense{}}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
