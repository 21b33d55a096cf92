// SPDX-License-Identifier: MIT
// Package: matrix
//
// csr.go - compressed sparse row matrices implementing gonum's mat.Matrix.
//
// Contract:
//   - Storage is github.com/james-bowman/sparse's CSR; CSR wraps it with
//     validation, a 0×0 representation and the padding/iteration helpers the
//     engines use.
//   - Zero-sized matrices (0×0) are valid; gonum's Dense cannot represent
//     them, so CSR is the canonical carrier for empty graphs. They carry no
//     backing store.
//   - Explicit zeros are never stored; duplicate coordinates are summed.
//   - Column indices within a row are strictly increasing.
//   - CSR values are immutable after construction.
//
// Complexity:
//   - At: O(log d) per lookup.
//   - DoNonZero / DoRowNonZero: O(nnz) / O(d).

package matrix

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// Triplet is a single (row, col, value) coordinate entry.
type Triplet struct {
	Row, Col int
	Value    float64
}

// CSR is an immutable compressed-sparse-row matrix.
type CSR struct {
	rows, cols int
	sp         *sparse.CSR // nil iff rows == 0 || cols == 0
}

var (
	_ mat.Matrix         = (*CSR)(nil)
	_ mat.NonZeroDoer    = (*CSR)(nil)
	_ mat.RowNonZeroDoer = (*CSR)(nil)
)

// NewCSR builds an r×c CSR matrix from coordinate entries.
//
// Implementation:
//   - Stage 1: Validate shape, indices and finiteness.
//   - Stage 2: Sort by (row, col) and merge duplicates by summation.
//   - Stage 3: Drop entries that summed to zero and hand the row pointers
//     to sparse.NewCSR.
//
// Errors:
//   - ErrBadShape: r < 0 or c < 0.
//   - ErrOutOfRange: any coordinate outside [0,r)×[0,c).
//   - ErrNaNInf: any non-finite value.
//
// Complexity: O(k log k) for k entries.
func NewCSR(r, c int, entries []Triplet) (*CSR, error) {
	if r < 0 || c < 0 {
		return nil, fmt.Errorf("NewCSR: %d×%d: %w", r, c, ErrBadShape)
	}
	sorted := make([]Triplet, 0, len(entries))
	for _, t := range entries {
		if t.Row < 0 || t.Row >= r || t.Col < 0 || t.Col >= c {
			return nil, fmt.Errorf("NewCSR: (%d,%d): %w", t.Row, t.Col, ErrOutOfRange)
		}
		if math.IsNaN(t.Value) || math.IsInf(t.Value, 0) {
			return nil, fmt.Errorf("NewCSR: (%d,%d): %w", t.Row, t.Col, ErrNaNInf)
		}
		sorted = append(sorted, t)
	}

	return fromTriplets(r, c, sorted), nil
}

// fromTriplets sorts, merges and packs unvalidated entries.
func fromTriplets(r, c int, ts []Triplet) *CSR {
	slices.SortStableFunc(ts, func(a, b Triplet) int {
		if x := cmp.Compare(a.Row, b.Row); x != 0 {
			return x
		}

		return cmp.Compare(a.Col, b.Col)
	})

	indptr := make([]int, r+1)
	var (
		indices []int
		data    []float64
	)
	for k := 0; k < len(ts); {
		cur := ts[k]
		sum := 0.0
		for ; k < len(ts) && ts[k].Row == cur.Row && ts[k].Col == cur.Col; k++ {
			sum += ts[k].Value
		}
		if sum == 0 {
			continue
		}
		indices = append(indices, cur.Col)
		data = append(data, sum)
		indptr[cur.Row+1]++
	}
	for i := 0; i < r; i++ {
		indptr[i+1] += indptr[i]
	}

	m := &CSR{rows: r, cols: c}
	if r > 0 && c > 0 {
		m.sp = sparse.NewCSR(r, c, indptr, indices, data)
	}

	return m
}

// CSRFrom copies the non-zero entries of any mat.Matrix into a CSR.
// A *CSR input is returned as is.
//
// Complexity: O(r·c) for dense inputs, O(nnz log nnz) for NonZeroDoer inputs.
func CSRFrom(a mat.Matrix) *CSR {
	if c, ok := a.(*CSR); ok {
		return c
	}
	r, c := a.Dims()
	var ts []Triplet
	eachNonZero(a, func(i, j int, v float64) {
		ts = append(ts, Triplet{Row: i, Col: j, Value: v})
	})

	return fromTriplets(r, c, ts)
}

// Dims returns the number of rows and columns.
func (m *CSR) Dims() (r, c int) { return m.rows, m.cols }

// At returns the element at (i, j). It panics on out-of-range indices, as
// gonum matrices do.
func (m *CSR) At(i, j int) float64 {
	if uint(i) >= uint(m.rows) {
		panic(mat.ErrRowAccess)
	}
	if uint(j) >= uint(m.cols) {
		panic(mat.ErrColAccess)
	}

	return m.sp.At(i, j)
}

// T returns the implicit transpose.
func (m *CSR) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// NNZ returns the number of stored non-zero entries.
func (m *CSR) NNZ() int {
	if m.sp == nil {
		return 0
	}

	return m.sp.NNZ()
}

// Density returns nnz / (rows·cols), or 0 for an empty matrix.
func (m *CSR) Density() float64 {
	if m.rows == 0 || m.cols == 0 {
		return 0
	}

	return float64(m.NNZ()) / (float64(m.rows) * float64(m.cols))
}

// DoNonZero calls fn for every stored entry in row-major order.
func (m *CSR) DoNonZero(fn func(i, j int, v float64)) {
	if m.sp == nil {
		return
	}
	m.sp.DoNonZero(fn)
}

// DoRowNonZero calls fn for every stored entry of row i.
func (m *CSR) DoRowNonZero(i int, fn func(i, j int, v float64)) {
	if uint(i) >= uint(m.rows) {
		panic(mat.ErrRowAccess)
	}
	if m.sp == nil {
		return
	}
	m.sp.DoRowNonZero(i, fn)
}

// MulVecTo computes dst = m·x. dst and x must have lengths rows and cols.
func (m *CSR) MulVecTo(dst, x []float64) {
	if len(x) != m.cols || len(dst) != m.rows {
		panic(mat.ErrShape)
	}
	for i := 0; i < m.rows; i++ {
		s := 0.0
		m.DoRowNonZero(i, func(_, j int, v float64) { s += v * x[j] })
		dst[i] = s
	}
}

// ToDense materializes m as a *mat.Dense. It returns nil for a zero-sized
// matrix, which gonum cannot represent.
func (m *CSR) ToDense() *mat.Dense {
	if m.sp == nil {
		return nil
	}

	return m.sp.ToDense()
}

// padded returns a copy of m enlarged to n×n with zero rows/columns appended.
func (m *CSR) padded(n int) *CSR {
	ts := make([]Triplet, 0, m.NNZ())
	m.DoNonZero(func(i, j int, v float64) {
		ts = append(ts, Triplet{Row: i, Col: j, Value: v})
	})

	return fromTriplets(n, n, ts)
}

// eachNonZero visits the non-zero entries of any mat.Matrix, using the sparse
// iterator when the matrix provides one.
func eachNonZero(a mat.Matrix, fn func(i, j int, v float64)) {
	if nz, ok := a.(mat.NonZeroDoer); ok {
		nz.DoNonZero(fn)
		return
	}
	r, c := a.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := a.At(i, j); v != 0 {
				fn(i, j, v)
			}
		}
	}
}
