// SPDX-License-Identifier: MIT

// Package config loads the YAML description of a batch comparison run.
//
// A run names the metrics to evaluate, how circuits become graphs, the
// engine parameters and the list of file pairs. Relative pair and output
// paths are resolved against the directory of the configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/netcomp/batch"
	"github.com/katalvlaran/netcomp/deltacon"
	"github.com/katalvlaran/netcomp/edgelist"
	"github.com/katalvlaran/netcomp/resistance"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of a run file.
type Config struct {
	Workers    int              `yaml:"workers"`
	Metrics    []string         `yaml:"metrics"`
	Graph      GraphConfig      `yaml:"graph"`
	DeltaCon   DeltaConConfig   `yaml:"deltacon"`
	Resistance ResistanceConfig `yaml:"resistance"`
	Spectral   SpectralConfig   `yaml:"spectral"`
	Pairs      []PairConfig     `yaml:"pairs,omitempty"`
	Output     string           `yaml:"output,omitempty"`
}

// GraphConfig controls circuit → graph conversion.
type GraphConfig struct {
	Mode           string  `yaml:"mode"`
	InvertedWeight float64 `yaml:"inverted_weight"`
	RegularWeight  float64 `yaml:"regular_weight"`
}

// DeltaConConfig holds DeltaCon0 parameters. Epsilon 0 selects the shared default.
type DeltaConConfig struct {
	Epsilon float64 `yaml:"epsilon"`
	Reducer string  `yaml:"reducer"`
}

// ResistanceConfig holds resistance distance parameters.
type ResistanceConfig struct {
	P    float64 `yaml:"p"`
	Beta float64 `yaml:"beta"`
}

// SpectralConfig holds spectral distance parameters. K 0 compares full spectra.
type SpectralConfig struct {
	K int `yaml:"k"`
}

// PairConfig names the two circuit files of one comparison.
type PairConfig struct {
	ID    string `yaml:"id"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// Default returns a configuration with every engine default filled in and
// no pairs.
func Default() *Config {
	return &Config{
		Metrics: []string{
			batch.DeltaCon0.String(),
			batch.Resistance.String(),
			batch.SpectralLaplacian.String(),
			batch.NetSimile.String(),
		},
		Graph: GraphConfig{
			Mode:           edgelist.Undirected.String(),
			InvertedWeight: edgelist.DefaultInvertedWeight,
			RegularWeight:  1,
		},
		DeltaCon:   DeltaConConfig{Reducer: deltacon.SumAbs.String()},
		Resistance: ResistanceConfig{P: resistance.DefaultP, Beta: resistance.DefaultBeta},
	}
}

// Load reads, resolves and validates the configuration at path. Fields the
// file omits keep their Default values; unknown fields are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config.Load %s: %w", path, err)
	}
	cfg.resolve(filepath.Dir(path))

	return cfg, nil
}

// Parse decodes and validates YAML data over Default. Paths are left as
// written.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Write encodes c as YAML.
func (c *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config.Write: %w", err)
	}

	return enc.Close()
}

// resolve makes relative pair and output paths relative to dir.
func (c *Config) resolve(dir string) {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	for i := range c.Pairs {
		c.Pairs[i].Left = abs(c.Pairs[i].Left)
		c.Pairs[i].Right = abs(c.Pairs[i].Right)
	}
	c.Output = abs(c.Output)
}
