package matrix_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/netcomp/builder"
	"github.com/katalvlaran/netcomp/matrix"
)

// ExamplePad embeds a triangle into order 5 and prints its Laplacian diagonal.
func ExamplePad() {
	g, _ := builder.BuildGraph(nil, nil, builder.Cycle(3))
	a, _, _ := matrix.Adjacency(g)

	padded, _ := matrix.Pad(a, 5)
	l, _ := matrix.Laplacian(padded, false)

	diag := make([]float64, 5)
	for i := range diag {
		diag[i] = l.At(i, i)
	}
	fmt.Println(diag)
	fmt.Println(mat.Sum(padded.(*matrix.CSR).ToDense()))

	// Output:
	// [2 2 2 0 0]
	// 6
}
