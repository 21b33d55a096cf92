package config

import (
	"fmt"

	"github.com/katalvlaran/netcomp/batch"
	"github.com/katalvlaran/netcomp/deltacon"
	"github.com/katalvlaran/netcomp/edgelist"
)

func invalid(field string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, field, err)
}

func invalidf(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidConfig, field, fmt.Sprintf(format, args...))
}

// Validate checks every field. The first failure is returned, wrapped in
// ErrInvalidConfig together with the field name.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return invalidf("workers", "must be ≥ 0, got %d", c.Workers)
	}
	if _, err := c.MetricList(); err != nil {
		return err
	}
	if _, err := c.GraphSpec(); err != nil {
		return err
	}
	params, err := c.Params()
	if err != nil {
		return err
	}
	if err := params.Validate(); err != nil {
		return invalid("parameters", err)
	}

	seen := make(map[string]bool, len(c.Pairs))
	for i, p := range c.Pairs {
		field := fmt.Sprintf("pairs[%d]", i)
		switch {
		case p.ID == "":
			return invalidf(field, "missing id")
		case seen[p.ID]:
			return invalidf(field, "duplicate id %q", p.ID)
		case p.Left == "" || p.Right == "":
			return invalidf(field, "pair %q needs left and right", p.ID)
		}
		seen[p.ID] = true
	}

	return nil
}

// MetricList parses Metrics.
func (c *Config) MetricList() ([]batch.Metric, error) {
	if len(c.Metrics) == 0 {
		return nil, invalidf("metrics", "empty")
	}
	out := make([]batch.Metric, 0, len(c.Metrics))
	for i, name := range c.Metrics {
		m, err := batch.ParseMetric(name)
		if err != nil {
			return nil, invalid(fmt.Sprintf("metrics[%d]", i), err)
		}
		out = append(out, m)
	}

	return out, nil
}

// GraphSpec converts the graph section.
func (c *Config) GraphSpec() (batch.GraphSpec, error) {
	mode, err := edgelist.ParseMode(c.Graph.Mode)
	if err != nil {
		return batch.GraphSpec{}, invalid("graph.mode", err)
	}

	return batch.GraphSpec{
		Mode:           mode,
		InvertedWeight: c.Graph.InvertedWeight,
		RegularWeight:  c.Graph.RegularWeight,
	}, nil
}

// Params converts the engine sections.
func (c *Config) Params() (batch.Params, error) {
	reducer, err := deltacon.ParseReducer(c.DeltaCon.Reducer)
	if err != nil {
		return batch.Params{}, invalid("deltacon.reducer", err)
	}

	return batch.Params{
		DeltaConEpsilon: c.DeltaCon.Epsilon,
		DeltaConReducer: reducer,
		ResistanceP:     c.Resistance.P,
		ResistanceBeta:  c.Resistance.Beta,
		SpectralK:       c.Spectral.K,
	}, nil
}

// PairSpecs converts the pair list.
func (c *Config) PairSpecs() []batch.PairSpec {
	out := make([]batch.PairSpec, len(c.Pairs))
	for i, p := range c.Pairs {
		out[i] = batch.PairSpec{ID: p.ID, Left: p.Left, Right: p.Right}
	}

	return out
}
