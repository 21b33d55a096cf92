// SPDX-License-Identifier: MIT

package edgelist

import (
	"fmt"
	"strings"
)

// Mode selects how an edge list becomes a graph.
type Mode int

const (
	// Undirected drops weights and orientation.
	Undirected Mode = iota

	// Directed keeps orientation and encodes inversion as direction: an edge
	// carrying the inverted weight is reversed, unless the inverted and
	// regular weights coincide. Weights are then dropped.
	Directed

	// Weighted keeps weights. Orientation is kept only under WithDirected(true).
	Weighted
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Undirected:
		return "undirected"
	case Directed:
		return "directed"
	case Weighted:
		return "weighted"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "undirected", "directed" and "weighted" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "undirected":
		return Undirected, nil
	case "directed":
		return Directed, nil
	case "weighted":
		return Weighted, nil
	default:
		return 0, fmt.Errorf("ParseMode(%q): %w", s, ErrUnknownMode)
	}
}

// DefaultInvertedWeight marks a complemented connection.
const DefaultInvertedWeight = -1.0

// Option configures Build.
type Option func(*Options)

// Options is the resolved Build configuration.
type Options struct {
	mode     Mode
	directed bool
	inverted float64
	regular  float64
}

// WithMode selects the conversion mode (Undirected by default).
func WithMode(m Mode) Option {
	return func(o *Options) { o.mode = m }
}

// WithDirected makes Weighted mode build a directed graph.
func WithDirected(directed bool) Option {
	return func(o *Options) { o.directed = directed }
}

// WithInvertedWeight sets the weight that Directed mode reverses
// (DefaultInvertedWeight by default).
func WithInvertedWeight(w float64) Option {
	return func(o *Options) { o.inverted = w }
}

// WithRegularWeight sets the weight of non-inverted connections (1 by
// default). When it equals the inverted weight the list carries no inversion
// information and Directed mode reverses nothing.
func WithRegularWeight(w float64) Option {
	return func(o *Options) { o.regular = w }
}

func gatherOptions(opts ...Option) Options {
	o := Options{mode: Undirected, inverted: DefaultInvertedWeight, regular: 1}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
