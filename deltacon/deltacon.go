// SPDX-License-Identifier: MIT

package deltacon

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/netcomp/core"
	"github.com/katalvlaran/netcomp/fastbp"
	"github.com/katalvlaran/netcomp/linalg"
	"github.com/katalvlaran/netcomp/matrix"
)

var (
	// ErrEmptyGraph indicates that either input has no nodes.
	ErrEmptyGraph = errors.New("deltacon: empty graph")

	// ErrUnknownReducer indicates an unrecognized reducer name.
	ErrUnknownReducer = errors.New("deltacon: unknown reducer")
)

// Reducer selects how the elementwise differences of √|S| are folded into
// a scalar.
type Reducer int

const (
	// SumAbs is Σ|√|S1| − √|S2||.
	SumAbs Reducer = iota

	// Frobenius is √Σ(√|S1| − √|S2|)².
	Frobenius
)

// String implements fmt.Stringer.
func (r Reducer) String() string {
	switch r {
	case SumAbs:
		return "sum_abs"
	case Frobenius:
		return "frobenius"
	default:
		return fmt.Sprintf("Reducer(%d)", int(r))
	}
}

// ParseReducer maps "sum_abs" and "frobenius" (case-insensitive) to a Reducer.
func ParseReducer(s string) (Reducer, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sum_abs":
		return SumAbs, nil
	case "frobenius":
		return Frobenius, nil
	default:
		return 0, fmt.Errorf("ParseReducer(%q): %w", s, ErrUnknownReducer)
	}
}

// Option configures Distance.
type Option func(*Options)

// Options is the resolved configuration of Distance.
type Options struct {
	eps      float64 // 0 ⇒ shared default
	reducer  Reducer
	selector linalg.Selector
}

// WithEpsilon fixes the ε used for both graphs.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.eps = eps }
}

// WithReducer selects the reducer (SumAbs by default).
func WithReducer(r Reducer) Option {
	if r != SumAbs && r != Frobenius {
		panic("deltacon: WithReducer: unknown reducer")
	}
	return func(o *Options) { o.reducer = r }
}

// WithSelector overrides the dense/sparse inversion strategy.
func WithSelector(sel linalg.Selector) Option {
	return func(o *Options) { o.selector = sel }
}

func gatherOptions(opts ...Option) Options {
	o := Options{reducer: SumAbs, selector: linalg.DefaultSelector()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// SharedEpsilon returns 1/(1+d) where d is the largest binarized out-degree
// across both inputs. Padding adds only isolated nodes, so the value does
// not depend on the common order.
func SharedEpsilon(a1, a2 mat.Matrix) (float64, error) {
	d, err := matrix.MaxBinaryDegree(a1, a2)
	if err != nil {
		return 0, fmt.Errorf("SharedEpsilon: %w", err)
	}

	return 1 / (1 + d), nil
}

// Distance returns the DeltaCon0 distance between two adjacency matrices.
//
// Implementation:
//   - Stage 1: Reject empty inputs; resolve one ε for both graphs.
//   - Stage 2: Pad both matrices to N = max(n1, n2).
//   - Stage 3: S1, S2 ← fastbp.Matrix with that ε.
//   - Stage 4: Reduce the differences of √|S1| and √|S2|.
//
// Behavior highlights:
//   - Distance(A, A) == 0 and Distance is symmetric.
//   - Padding nodes give identity rows in both S, so the value is invariant
//     to padding beyond N.
//
// Errors:
//   - ErrEmptyGraph: n1 == 0 or n2 == 0.
//   - Shape and numeric errors from matrix, fastbp and linalg.
//
// Complexity: two O(N³) inversions plus O(N²).
func Distance(a1, a2 mat.Matrix, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)

	n1, err := matrix.ValidateSquare(a1)
	if err != nil {
		return 0, fmt.Errorf("deltacon.Distance: %w", err)
	}
	n2, err := matrix.ValidateSquare(a2)
	if err != nil {
		return 0, fmt.Errorf("deltacon.Distance: %w", err)
	}
	if n1 == 0 || n2 == 0 {
		return 0, fmt.Errorf("deltacon.Distance: n1=%d n2=%d: %w", n1, n2, ErrEmptyGraph)
	}

	eps := o.eps
	if eps == 0 {
		if eps, err = SharedEpsilon(a1, a2); err != nil {
			return 0, fmt.Errorf("deltacon.Distance: %w", err)
		}
	}
	p1, p2, err := matrix.PadPair(a1, a2, 0)
	if err != nil {
		return 0, fmt.Errorf("deltacon.Distance: %w", err)
	}

	bp := []fastbp.Option{fastbp.WithEpsilon(eps), fastbp.WithSelector(o.selector)}
	s1, err := fastbp.Matrix(p1, bp...)
	if err != nil {
		return 0, fmt.Errorf("deltacon.Distance: %w", err)
	}
	s2, err := fastbp.Matrix(p2, bp...)
	if err != nil {
		return 0, fmt.Errorf("deltacon.Distance: %w", err)
	}

	return reduce(s1, s2, o.reducer), nil
}

// DistanceGraphs materializes both graphs as adjacency matrices (binary,
// directed graphs kept asymmetric) and calls Distance.
func DistanceGraphs(g1, g2 *core.Graph, opts ...Option) (float64, error) {
	a1, _, err := matrix.Adjacency(g1)
	if err != nil {
		return 0, fmt.Errorf("deltacon.DistanceGraphs: %w", err)
	}
	a2, _, err := matrix.Adjacency(g2)
	if err != nil {
		return 0, fmt.Errorf("deltacon.DistanceGraphs: %w", err)
	}

	return Distance(a1, a2, opts...)
}

func reduce(s1, s2 *mat.Dense, r Reducer) float64 {
	n, _ := s1.Dims()
	var acc float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d := math.Sqrt(math.Abs(s1.At(i, j))) - math.Sqrt(math.Abs(s2.At(i, j)))
			if r == Frobenius {
				acc += d * d
			} else {
				acc += math.Abs(d)
			}
		}
	}
	if r == Frobenius {
		return math.Sqrt(acc)
	}

	return acc
}
