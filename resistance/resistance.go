// SPDX-License-Identifier: MIT

package resistance

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/netcomp/core"
	"github.com/katalvlaran/netcomp/matrix"
)

// RawMatrix returns the effective-resistance matrix of the undirected graph
// induced by a: an edge {i,j} exists iff a_ij ≠ 0 or a_ji ≠ 0. Entries
// between different connected components are +Inf.
//
// Implementation:
//   - Stage 1: Build the induced undirected graph and split it into
//     connected components.
//   - Stage 2: Per component, M ← pinv(L_sub) and
//     R_sub[i,j] = M[i,i] + M[j,j] − 2M[i,j].
//   - Stage 3: Scatter R_sub into the N×N result; everything else is +Inf,
//     the diagonal is 0.
//
// Errors:
//   - ErrEmptyGraph: order 0.
//   - matrix.ErrNonSquare / matrix.ErrNilMatrix: malformed a.
//   - linalg errors from the pseudo-inverse.
//
// Complexity: Σ O(m_k³) over component sizes m_k, plus O(N²) assembly.
func RawMatrix(a mat.Matrix, opts ...Option) (*mat.Dense, error) {
	o := gatherOptions(opts...)

	return rawMatrix(a, o)
}

func rawMatrix(a mat.Matrix, o Options) (*mat.Dense, error) {
	n, err := matrix.ValidateSquare(a)
	if err != nil {
		return nil, fmt.Errorf("resistance.RawMatrix: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("resistance.RawMatrix: %w", ErrEmptyGraph)
	}

	g, err := inducedGraph(a, n, o.weighted)
	if err != nil {
		return nil, fmt.Errorf("resistance.RawMatrix: %w", err)
	}
	comps := core.ConnectedComponents(g)
	if len(comps) > 1 {
		log.Debug().Int("order", n).Int("components", len(comps)).
			Msg("resistance: graph is disconnected, cross-component resistance is infinite")
	}

	r := mat.NewDense(n, n, nil)
	inf := math.Inf(1)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				r.Set(i, j, inf)
			}
		}
	}

	for _, comp := range comps {
		if len(comp) == 1 {
			continue
		}
		l := componentLaplacian(g, comp)
		m, err := o.solver.PseudoInverse(l)
		if err != nil {
			return nil, fmt.Errorf("resistance.RawMatrix: component of size %d: %w", len(comp), err)
		}
		for x, u := range comp {
			for y := x + 1; y < len(comp); y++ {
				v := comp[y]
				rv := m.At(x, x) + m.At(y, y) - 2*m.At(x, y)
				r.Set(int(u), int(v), rv)
				r.Set(int(v), int(u), rv)
			}
		}
	}

	return r, nil
}

// Renormalized returns R' = R/(R+β) with +Inf (and any NaN) mapped to 1 and
// a zero diagonal. All entries lie in [0,1].
//
// Errors:
//   - ErrBadBeta: β not finite and > 0.
//   - Errors from RawMatrix.
func Renormalized(a mat.Matrix, opts ...Option) (*mat.Dense, error) {
	o := gatherOptions(opts...)
	if err := checkPositive(o.beta, ErrBadBeta); err != nil {
		return nil, fmt.Errorf("resistance.Renormalized: %w", err)
	}

	return renormalized(a, o)
}

func renormalized(a mat.Matrix, o Options) (*mat.Dense, error) {
	r, err := rawMatrix(a, o)
	if err != nil {
		return nil, err
	}
	r.Apply(func(i, j int, v float64) float64 {
		switch {
		case i == j:
			return 0
		case math.IsInf(v, 1) || math.IsNaN(v):
			return 1
		default:
			return v / (v + o.beta)
		}
	}, r)

	return r, nil
}

// Distance returns (Σ |R1' − R2'|^p)^(1/p) over the full N×N grid, where
// R1', R2' are the renormalized resistance matrices of a1 and a2 padded to
// N = max(n1, n2). NaN terms contribute 0.
//
// Behavior highlights:
//   - Disconnected inputs yield finite distances: cross-component entries
//     are 1 after renormalization.
//   - Padding beyond N adds isolated nodes whose entries are 1 in both
//     matrices, so the distance does not change.
//
// Errors:
//   - ErrEmptyGraph: either input has order 0.
//   - ErrBadExponent, ErrBadBeta: invalid parameters.
func Distance(a1, a2 mat.Matrix, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	if err := checkPositive(o.p, ErrBadExponent); err != nil {
		return 0, fmt.Errorf("resistance.Distance: %w", err)
	}
	if err := checkPositive(o.beta, ErrBadBeta); err != nil {
		return 0, fmt.Errorf("resistance.Distance: %w", err)
	}

	n1, err := matrix.ValidateSquare(a1)
	if err != nil {
		return 0, fmt.Errorf("resistance.Distance: %w", err)
	}
	n2, err := matrix.ValidateSquare(a2)
	if err != nil {
		return 0, fmt.Errorf("resistance.Distance: %w", err)
	}
	if n1 == 0 || n2 == 0 {
		return 0, fmt.Errorf("resistance.Distance: n1=%d n2=%d: %w", n1, n2, ErrEmptyGraph)
	}

	p1, p2, err := matrix.PadPair(a1, a2, 0)
	if err != nil {
		return 0, fmt.Errorf("resistance.Distance: %w", err)
	}
	r1, err := renormalized(p1, o)
	if err != nil {
		return 0, fmt.Errorf("resistance.Distance: %w", err)
	}
	r2, err := renormalized(p2, o)
	if err != nil {
		return 0, fmt.Errorf("resistance.Distance: %w", err)
	}

	n, _ := r1.Dims()
	var sum float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			term := math.Pow(math.Abs(r1.At(i, j)-r2.At(i, j)), o.p)
			if !math.IsNaN(term) {
				sum += term
			}
		}
	}

	return math.Pow(sum, 1/o.p), nil
}

// DistanceGraphs materializes both graphs as adjacency matrices (stored
// weights are exported so that WithWeights can use them) and calls Distance.
func DistanceGraphs(g1, g2 *core.Graph, opts ...Option) (float64, error) {
	a1, _, err := matrix.Adjacency(g1, matrix.WithWeights())
	if err != nil {
		return 0, fmt.Errorf("resistance.DistanceGraphs: %w", err)
	}
	a2, _, err := matrix.Adjacency(g2, matrix.WithWeights())
	if err != nil {
		return 0, fmt.Errorf("resistance.DistanceGraphs: %w", err)
	}

	return Distance(a1, a2, opts...)
}

// inducedGraph builds the undirected conductance graph on vertices 0..n-1.
func inducedGraph(a mat.Matrix, n int, weighted bool) (*core.Graph, error) {
	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < n; i++ {
		g.AddVertex(int64(i))
	}
	var err error
	visit := func(i, j int, v float64) {
		if i == j || err != nil {
			return
		}
		w := 1.0
		if weighted {
			w = math.Abs(v)
			if prev, ok := g.Weight(int64(i), int64(j)); ok && prev >= w {
				return
			}
		}
		err = g.AddEdge(int64(i), int64(j), w)
	}
	if nz, ok := a.(mat.NonZeroDoer); ok {
		nz.DoNonZero(visit)
	} else {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if v := a.At(i, j); v != 0 {
					visit(i, j, v)
				}
			}
		}
	}

	return g, err
}

// componentLaplacian returns the weighted Laplacian of g restricted to comp,
// indexed by position within comp.
func componentLaplacian(g *core.Graph, comp []int64) *mat.SymDense {
	pos := make(map[int64]int, len(comp))
	for k, id := range comp {
		pos[id] = k
	}
	l := mat.NewSymDense(len(comp), nil)
	for _, u := range comp {
		nbrs, _ := g.Neighbors(u)
		x := pos[u]
		for _, v := range nbrs {
			y := pos[v]
			if y <= x {
				continue
			}
			w, _ := g.Weight(u, v)
			l.SetSym(x, y, -w)
			l.SetSym(x, x, l.At(x, x)+w)
			l.SetSym(y, y, l.At(y, y)+w)
		}
	}

	return l
}

func checkPositive(v float64, sentinel error) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return sentinel
	}

	return nil
}
