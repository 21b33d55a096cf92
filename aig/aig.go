// SPDX-License-Identifier: MIT

package aig

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/logic/aiger"
	"github.com/go-air/gini/z"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/netcomp/edgelist"
)

// Circuit is a loaded And-Inverter Graph.
//
// Node IDs: the constant is 0 and every other gini variable v gets v−1, so
// primary inputs keep their AIGER indices 1..I. Output nodes are appended
// after the last variable, one per primary output, in output order.
type Circuit struct {
	a *aiger.T
}

// Load reads an AIGER file from path.
func Load(path string) (*Circuit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("aig.Load: %w", err)
	}
	defer f.Close()

	c, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("aig.Load %s: %w", path, err)
	}

	return c, nil
}

// Read parses AIGER data, dispatching on the "aag" (ascii) or "aig"
// (binary) header.
//
// Errors:
//   - ErrUnknownFormat: neither header.
//   - ErrParse: the AIGER reader rejected the body.
func Read(r io.Reader) (*Circuit, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(3)
	if err != nil {
		return nil, fmt.Errorf("aig.Read: %w", ErrUnknownFormat)
	}

	var a *aiger.T
	switch string(head) {
	case "aag":
		a, err = aiger.ReadAscii(br)
	case "aig":
		a, err = aiger.ReadBinary(br)
	default:
		return nil, fmt.Errorf("aig.Read: header %q: %w", head, ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("aig.Read: %w: %w", ErrParse, err)
	}
	c := &Circuit{a: a}
	log.Debug().Int("inputs", c.Inputs()).Int("outputs", c.Outputs()).
		Int("latches", c.Latches()).Int("gates", c.Gates()).Msg("aig: circuit loaded")

	return c, nil
}

// Inputs returns the number of primary inputs.
func (c *Circuit) Inputs() int { return len(c.a.Inputs) }

// Outputs returns the number of primary outputs.
func (c *Circuit) Outputs() int { return len(c.a.Outputs) }

// Latches returns the number of latches.
func (c *Circuit) Latches() int { return len(c.a.Latches) }

// Gates returns the number of AND gates.
func (c *Circuit) Gates() int {
	s := c.a.S
	n := 0
	for i := 2; i < s.Len(); i++ {
		if s.Type(s.At(i)) == logic.SAnd {
			n++
		}
	}

	return n
}

// Levels returns the length of the longest path of AND gates from a
// primary input, latch or constant.
//
// Complexity: O(V); gini stores nodes in topological order.
func (c *Circuit) Levels() int {
	s := c.a.S
	level := make([]int, s.Len())
	depth := 0
	for i := 2; i < s.Len(); i++ {
		m := s.At(i)
		if s.Type(m) != logic.SAnd {
			continue
		}
		c0, c1 := s.Ins(m)
		level[i] = 1 + max(level[c0.Var()], level[c1.Var()])
		depth = max(depth, level[i])
	}

	return depth
}

// Edges returns the circuit as (source, target, weight) triples:
//   - one edge fanin → gate for each of the two inputs of every AND gate,
//   - one edge next-state driver → latch for every latch,
//   - one edge driver → output node for every primary output.
//
// The weight is inverted when the connecting literal is complemented and
// regular otherwise.
func (c *Circuit) Edges(inverted, regular float64) []edgelist.Edge {
	s := c.a.S
	out := make([]edgelist.Edge, 0, 2*s.Len()+len(c.a.Outputs))
	add := func(from z.Lit, to int64) {
		w := regular
		if c.complemented(from) {
			w = inverted
		}
		out = append(out, edgelist.Edge{Source: c.id(from), Target: to, Weight: w})
	}

	for i := 2; i < s.Len(); i++ {
		m := s.At(i)
		switch s.Type(m) {
		case logic.SAnd:
			c0, c1 := s.Ins(m)
			add(c0, c.id(m))
			add(c1, c.id(m))
		case logic.SLatch:
			add(s.Next(m), c.id(m))
		}
	}
	base := int64(s.Len() - 1)
	for k, m := range c.a.Outputs {
		add(m, base+int64(k))
	}

	return out
}

// id maps a literal to its node ID.
func (c *Circuit) id(m z.Lit) int64 { return int64(m.Var()) - 1 }

// complemented follows AIGER's convention: the constant false literal is the
// regular one, although gini represents false as the negated constant.
func (c *Circuit) complemented(m z.Lit) bool {
	if m.Var() == c.a.S.T.Var() {
		return m == c.a.S.T
	}

	return !m.IsPos()
}
