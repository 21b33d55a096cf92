// SPDX-License-Identifier: MIT

package batch

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/netcomp/core"
	"github.com/katalvlaran/netcomp/deltacon"
	"github.com/katalvlaran/netcomp/netsimile"
	"github.com/katalvlaran/netcomp/overlap"
	"github.com/katalvlaran/netcomp/resistance"
	"github.com/katalvlaran/netcomp/spectral"
)

// Metric is the closed set of graph comparisons the runner can dispatch.
type Metric int

const (
	DeltaCon0 Metric = iota
	Resistance
	SpectralAdjacency
	SpectralLaplacian
	SpectralNormalizedLaplacian
	NetSimile
	VertexEdgeOverlap
)

var metricNames = [...]string{
	DeltaCon0:                   "deltacon0",
	Resistance:                  "resistance",
	SpectralAdjacency:           "spectral_adjacency",
	SpectralLaplacian:           "spectral_laplacian",
	SpectralNormalizedLaplacian: "spectral_normalized_laplacian",
	NetSimile:                   "netsimile",
	VertexEdgeOverlap:           "veo",
}

// Metrics returns every metric in declaration order.
func Metrics() []Metric {
	out := make([]Metric, len(metricNames))
	for i := range metricNames {
		out[i] = Metric(i)
	}

	return out
}

// String implements fmt.Stringer; names round-trip through ParseMetric.
func (m Metric) String() string {
	if m < 0 || int(m) >= len(metricNames) {
		return fmt.Sprintf("Metric(%d)", int(m))
	}

	return metricNames[m]
}

// ParseMetric maps a metric name (case-insensitive) to a Metric.
func ParseMetric(s string) (Metric, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range metricNames {
		if name == key {
			return Metric(i), nil
		}
	}

	return 0, fmt.Errorf("ParseMetric(%q): %w", s, ErrUnknownMetric)
}

// Params carries the engine parameters shared by all pairs of a run.
type Params struct {
	// DeltaConEpsilon fixes ε; 0 selects the shared default.
	DeltaConEpsilon float64
	DeltaConReducer deltacon.Reducer

	ResistanceP    float64
	ResistanceBeta float64

	// SpectralK truncates spectra to the top k eigenvalues; 0 keeps all.
	SpectralK int
}

// DefaultParams returns the engine defaults.
func DefaultParams() Params {
	return Params{
		DeltaConReducer: deltacon.SumAbs,
		ResistanceP:     resistance.DefaultP,
		ResistanceBeta:  resistance.DefaultBeta,
	}
}

// Validate rejects parameters that would make an engine panic or fail on
// every pair.
func (p Params) Validate() error {
	switch {
	case p.DeltaConEpsilon < 0:
		return fmt.Errorf("deltacon epsilon %g: %w", p.DeltaConEpsilon, ErrBadParams)
	case p.DeltaConReducer != deltacon.SumAbs && p.DeltaConReducer != deltacon.Frobenius:
		return fmt.Errorf("deltacon reducer %v: %w", p.DeltaConReducer, ErrBadParams)
	case !(p.ResistanceP > 0):
		return fmt.Errorf("resistance p %g: %w", p.ResistanceP, ErrBadParams)
	case !(p.ResistanceBeta > 0):
		return fmt.Errorf("resistance beta %g: %w", p.ResistanceBeta, ErrBadParams)
	case p.SpectralK < 0:
		return fmt.Errorf("spectral k %d: %w", p.SpectralK, ErrBadParams)
	}

	return nil
}

// Compute evaluates metric m on one graph pair.
//
// Errors:
//   - ErrNilGraph, ErrUnknownMetric, ErrBadParams.
//   - Whatever the engine returns (for example resistance.ErrEmptyGraph).
func Compute(m Metric, g1, g2 *core.Graph, p Params) (float64, error) {
	if g1 == nil || g2 == nil {
		return 0, fmt.Errorf("Compute %v: %w", m, ErrNilGraph)
	}
	if err := p.Validate(); err != nil {
		return 0, fmt.Errorf("Compute %v: %w", m, err)
	}

	switch m {
	case DeltaCon0:
		opts := []deltacon.Option{deltacon.WithReducer(p.DeltaConReducer)}
		if p.DeltaConEpsilon > 0 {
			opts = append(opts, deltacon.WithEpsilon(p.DeltaConEpsilon))
		}
		return deltacon.DistanceGraphs(g1, g2, opts...)
	case Resistance:
		return resistance.DistanceGraphs(g1, g2, resistance.WithP(p.ResistanceP), resistance.WithBeta(p.ResistanceBeta))
	case SpectralAdjacency:
		return spectralDistance(g1, g2, spectral.Adjacency, p.SpectralK)
	case SpectralLaplacian:
		return spectralDistance(g1, g2, spectral.Laplacian, p.SpectralK)
	case SpectralNormalizedLaplacian:
		return spectralDistance(g1, g2, spectral.NormalizedLaplacian, p.SpectralK)
	case NetSimile:
		return netsimile.Distance(g1, g2)
	case VertexEdgeOverlap:
		return overlap.Similarity(g1, g2), nil
	default:
		return 0, fmt.Errorf("Compute %v: %w", m, ErrUnknownMetric)
	}
}

func spectralDistance(g1, g2 *core.Graph, t spectral.MatrixType, k int) (float64, error) {
	return spectral.DistanceGraphs(g1, g2, spectral.WithMatrixType(t), spectral.WithTopK(k))
}
