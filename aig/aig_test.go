package aig_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netcomp/aig"
	"github.com/katalvlaran/netcomp/edgelist"
)

const andGate = `aag 3 2 0 1 1
2
4
6
6 2 4
`

const halfAdder = `aag 7 2 0 2 3
2
4
6
12
6 13 15
12 2 4
14 3 5
i0 x
i1 y
o0 s
o1 c
`

func TestRead_AndGate(t *testing.T) {
	t.Parallel()

	c, err := aig.Read(strings.NewReader(andGate))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Inputs())
	assert.Equal(t, 1, c.Outputs())
	assert.Equal(t, 0, c.Latches())
	assert.Equal(t, 1, c.Gates())
	assert.Equal(t, 1, c.Levels())

	assert.ElementsMatch(t, []edgelist.Edge{
		{Source: 1, Target: 3, Weight: 1},
		{Source: 2, Target: 3, Weight: 1},
		{Source: 3, Target: 4, Weight: 1},
	}, c.Edges(-1, 1))
}

func TestRead_HalfAdder(t *testing.T) {
	t.Parallel()

	c, err := aig.Read(strings.NewReader(halfAdder))
	require.NoError(t, err)
	assert.Equal(t, 3, c.Gates())
	assert.Equal(t, 2, c.Levels())

	edges := c.Edges(-1, 1)
	require.Len(t, edges, 8)
	var inv, reg int
	for _, e := range edges {
		switch e.Weight {
		case -1:
			inv++
		case 1:
			reg++
		}
	}
	assert.Equal(t, 4, inv)
	assert.Equal(t, 4, reg)

	g, err := edgelist.Build(edges, edgelist.WithMode(edgelist.Directed))
	require.NoError(t, err)
	assert.Equal(t, 2+3+2, g.VertexCount())
}

// Binary AIGER stores each AND as two deltas: lhs−rhs0 and rhs0−rhs1.
const (
	andGateBinary = "aig 3 2 0 1 1\n6\n\x02\x02"

	// carry = x∧y (6), nor = ¬x∧¬y (8), sum = ¬carry∧¬nor (10).
	halfAdderBinary = "aig 5 2 0 2 3\n10\n6\n" +
		"\x02\x02" + // 6 = 4 ∧ 2
		"\x03\x02" + // 8 = 5 ∧ 3
		"\x01\x02" // 10 = 9 ∧ 7
)

func TestRead_Binary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		gates  int
		levels int
		edges  []edgelist.Edge
	}{
		{
			name:   "and gate",
			input:  andGateBinary,
			gates:  1,
			levels: 1,
			edges: []edgelist.Edge{
				{Source: 1, Target: 3, Weight: 1},
				{Source: 2, Target: 3, Weight: 1},
				{Source: 3, Target: 4, Weight: 1},
			},
		},
		{
			name:   "half adder",
			input:  halfAdderBinary,
			gates:  3,
			levels: 2,
			edges: []edgelist.Edge{
				{Source: 1, Target: 3, Weight: 1},
				{Source: 2, Target: 3, Weight: 1},
				{Source: 1, Target: 4, Weight: -1},
				{Source: 2, Target: 4, Weight: -1},
				{Source: 3, Target: 5, Weight: -1},
				{Source: 4, Target: 5, Weight: -1},
				{Source: 5, Target: 6, Weight: 1},
				{Source: 3, Target: 7, Weight: 1},
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c, err := aig.Read(strings.NewReader(tc.input))
			require.NoError(t, err)
			assert.Equal(t, 2, c.Inputs())
			assert.Equal(t, tc.gates, c.Gates())
			assert.Equal(t, tc.levels, c.Levels())
			assert.ElementsMatch(t, tc.edges, c.Edges(-1, 1))
		})
	}
}

func TestLoad_Binary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "half_adder.aig")
	require.NoError(t, os.WriteFile(path, []byte(halfAdderBinary), 0o600))

	c, err := aig.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Outputs())
	assert.Equal(t, 3, c.Gates())
}

func TestRead_Errors(t *testing.T) {
	t.Parallel()

	_, err := aig.Read(strings.NewReader("p cnf 1 1\n"))
	require.ErrorIs(t, err, aig.ErrUnknownFormat)

	_, err = aig.Read(strings.NewReader(""))
	require.ErrorIs(t, err, aig.ErrUnknownFormat)

	_, err = aig.Read(strings.NewReader("aag 3 2 0 1 1\n2\n4\n6\n7 2 4\n"))
	require.ErrorIs(t, err, aig.ErrParse)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "and.aag")
	require.NoError(t, os.WriteFile(path, []byte(andGate), 0o600))

	c, err := aig.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Gates())

	_, err = aig.Load(filepath.Join(t.TempDir(), "missing.aag"))
	require.Error(t, err)
}
