// File: source.go
// Role: load graph files for a batch run.
//
// AI-Hints:
//   - ".aig" and ".aag" files go through package aig; everything else is read
//     as a plain edge list.

package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/netcomp/aig"
	"github.com/katalvlaran/netcomp/core"
	"github.com/katalvlaran/netcomp/edgelist"
)

// GraphSpec says how circuits become graphs.
type GraphSpec struct {
	Mode           edgelist.Mode
	InvertedWeight float64
	RegularWeight  float64
}

// DefaultGraphSpec is undirected with weights −1 / 1.
func DefaultGraphSpec() GraphSpec {
	return GraphSpec{Mode: edgelist.Undirected, InvertedWeight: edgelist.DefaultInvertedWeight, RegularWeight: 1}
}

// PairSpec names the two files of one pair.
type PairSpec struct {
	ID    string
	Left  string
	Right string
}

// LoadGraph reads path and builds its graph under spec.
func LoadGraph(path string, spec GraphSpec) (*core.Graph, error) {
	var edges []edgelist.Edge
	switch strings.ToLower(filepath.Ext(path)) {
	case ".aig", ".aag":
		c, err := aig.Load(path)
		if err != nil {
			return nil, err
		}
		edges = c.Edges(spec.InvertedWeight, spec.RegularWeight)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("LoadGraph: %w", err)
		}
		defer f.Close()
		if edges, err = edgelist.Read(f); err != nil {
			return nil, fmt.Errorf("LoadGraph %s: %w", path, err)
		}
	}

	g, err := edgelist.Build(edges, edgelist.WithMode(spec.Mode), edgelist.WithInvertedWeight(spec.InvertedWeight), edgelist.WithRegularWeight(spec.RegularWeight))
	if err != nil {
		return nil, fmt.Errorf("LoadGraph %s: %w", path, err)
	}

	return g, nil
}

// LoadPairs loads all pair files concurrently. Unlike Run, the first failure
// aborts: a pair without graphs cannot produce any result.
func LoadPairs(ctx context.Context, specs []PairSpec, spec GraphSpec, workers int) ([]Pair, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	pairs := make([]Pair, len(specs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, ps := range specs {
		i, ps := i, ps
		pairs[i].ID = ps.ID
		for _, side := range []struct {
			path string
			dst  **core.Graph
		}{{ps.Left, &pairs[i].Left}, {ps.Right, &pairs[i].Right}} {
			side := side
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				gr, err := LoadGraph(side.path, spec)
				if err != nil {
					return fmt.Errorf("pair %s: %w", ps.ID, err)
				}
				*side.dst = gr

				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return pairs, nil
}
