// SPDX-License-Identifier: MIT

package netsimile

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/netcomp/core"
)

// Signature returns the aggregate feature vector of g.
func Signature(g *core.Graph) ([]float64, error) {
	f, err := Features(g)
	if err != nil {
		return nil, fmt.Errorf("Signature: %w", err)
	}
	agg, err := Aggregate(f)
	if err != nil {
		return nil, fmt.Errorf("Signature: %w", err)
	}

	return agg, nil
}

// Distance returns the NetSimile distance: the Canberra distance between the
// aggregate feature vectors of g1 and g2. No node correspondence is assumed
// and the graphs may differ in order.
//
// Behavior highlights:
//   - Two empty graphs, or two single isolated vertices, are at distance 0.
//   - An empty graph against a non-empty one compares only the skewness
//     and kurtosis blocks (the others are NaN on the empty side).
//
// Errors:
//   - ErrNilGraph.
func Distance(g1, g2 *core.Graph) (float64, error) {
	s1, err := Signature(g1)
	if err != nil {
		return 0, fmt.Errorf("netsimile.Distance: %w", err)
	}
	s2, err := Signature(g2)
	if err != nil {
		return 0, fmt.Errorf("netsimile.Distance: %w", err)
	}
	if g1.VertexCount() == 0 || g2.VertexCount() == 0 {
		log.Debug().Int("n1", g1.VertexCount()).Int("n2", g2.VertexCount()).
			Msg("netsimile: empty graph, only higher moments are compared")
	}

	return Canberra(s1, s2)
}

// DistanceFeatures is Distance over precomputed feature matrices.
func DistanceFeatures(f1, f2 *mat.Dense) (float64, error) {
	a1, err := Aggregate(f1)
	if err != nil {
		return 0, fmt.Errorf("netsimile.DistanceFeatures: %w", err)
	}
	a2, err := Aggregate(f2)
	if err != nil {
		return 0, fmt.Errorf("netsimile.DistanceFeatures: %w", err)
	}

	return Canberra(a1, a2)
}
