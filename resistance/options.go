// SPDX-License-Identifier: MIT

package resistance

import "github.com/katalvlaran/netcomp/linalg"

// Defaults for Distance.
const (
	DefaultP    = 2.0
	DefaultBeta = 1.0
)

// Option configures the resistance computations.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	p        float64
	beta     float64
	weighted bool
	solver   linalg.Solver
}

// WithP sets the exponent of the entrywise p-norm (default 2).
func WithP(p float64) Option {
	return func(o *Options) { o.p = p }
}

// WithBeta sets the renormalization constant in R/(R+β) (default 1).
func WithBeta(beta float64) Option {
	return func(o *Options) { o.beta = beta }
}

// WithWeights uses |a_ij| as edge conductance instead of unit conductance.
// For asymmetric input the larger of |a_ij| and |a_ji| is used.
func WithWeights() Option {
	return func(o *Options) { o.weighted = true }
}

// WithSolver overrides the pseudo-inverse backend (linalg.Dense by default).
func WithSolver(s linalg.Solver) Option {
	if s == nil {
		panic("resistance: WithSolver(nil)")
	}
	return func(o *Options) { o.solver = s }
}

func gatherOptions(opts ...Option) Options {
	o := Options{p: DefaultP, beta: DefaultBeta, solver: linalg.Dense{}}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
