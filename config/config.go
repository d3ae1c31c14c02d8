// SPDX-License-Identifier: MIT
// Package config: scenario records, loading and validation.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/tesalab/tesa/core"
)

// DefaultConductance is assigned to places that leave the conductance
// parameter unset.
const DefaultConductance = 1.0

// EnvPrefix is the prefix of override environment variables.
const EnvPrefix = "TESA_"

// PlaceSpec is one place record as written in a scenario file.
type PlaceSpec struct {
	ID          string  `yaml:"id" toml:"id"`
	Type        string  `yaml:"type" toml:"type"`
	Prime       int64   `yaml:"prime" toml:"prime"`
	I0          int     `yaml:"i0" toml:"i0"`
	N           int     `yaml:"n" toml:"n"`
	Conductance float64 `yaml:"conductance" toml:"conductance"`
}

// Scenario is the full input of one audit run.
type Scenario struct {
	Name            string      `yaml:"name" toml:"name"`
	Genus           int         `yaml:"genus" toml:"genus"`
	DeltaLowerBound *float64    `yaml:"delta_lower_bound" toml:"delta_lower_bound"`
	CEpsilon        float64     `yaml:"c_epsilon" toml:"c_epsilon"`
	HL              float64     `yaml:"h_l" toml:"h_l"`
	MD              float64     `yaml:"m_d" toml:"m_d"`
	Workers         int         `yaml:"workers" toml:"workers"`
	Places          []PlaceSpec `yaml:"places" toml:"places"`
}

// Load reads, decodes, env-overrides and validates a scenario file.
// The decode format follows the file extension.
func Load(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}

	var s Scenario
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("Load(%s): %w", path, err)
		}
	case ".toml":
		if err = toml.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("Load(%s): %w", path, err)
		}
	default:
		return nil, fmt.Errorf("Load(%s): extension %q: %w", path, ext, ErrUnsupportedFormat)
	}

	ApplyEnvOverrides(&s)
	if err = s.Validate(); err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}
	return &s, nil
}

// ApplyEnvOverrides applies TESA_-prefixed environment overrides onto s.
// Unparseable values are ignored in favour of the file's content.
func ApplyEnvOverrides(s *Scenario) {
	if v, ok := os.LookupEnv(EnvPrefix + "WORKERS"); ok {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			s.Workers = n
		}
	}
	if v, ok := os.LookupEnv(EnvPrefix + "DELTA_LOWER_BOUND"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			s.DeltaLowerBound = &f
		}
	}
	if v, ok := os.LookupEnv(EnvPrefix + "C_EPSILON"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			s.CEpsilon = f
		}
	}
}

// Validate enforces the structural contract. Any violation is fatal for
// the whole run: nothing can be computed from a malformed scenario.
func (s *Scenario) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrMissingName
	}
	if len(s.Places) == 0 {
		return ErrNoPlaces
	}
	if s.DeltaLowerBound != nil && (*s.DeltaLowerBound < 0 || *s.DeltaLowerBound >= 1) {
		return fmt.Errorf("delta_lower_bound=%g: %w", *s.DeltaLowerBound, ErrBadDeltaBound)
	}
	for i := range s.Places {
		p := &s.Places[i]
		if p.Conductance == 0 {
			p.Conductance = DefaultConductance
		}
		switch {
		case strings.TrimSpace(p.ID) == "":
			return fmt.Errorf("place %d: empty id: %w", i, ErrBadPlace)
		case p.Prime < 0:
			return fmt.Errorf("place %s: prime=%d: %w", p.ID, p.Prime, ErrBadPlace)
		case p.I0 < 0:
			return fmt.Errorf("place %s: i0=%d: %w", p.ID, p.I0, ErrBadPlace)
		case p.N < 0:
			return fmt.Errorf("place %s: n=%d: %w", p.ID, p.N, ErrBadPlace)
		case p.Conductance < 0:
			return fmt.Errorf("place %s: conductance=%g: %w", p.ID, p.Conductance, ErrBadPlace)
		}
	}
	return nil
}

// CorePlaces materializes the immutable core.Place list in scenario
// order. Unknown type tags pass through untouched; the builder rejects
// them per place so the batch-isolation property holds.
func (s *Scenario) CorePlaces() []core.Place {
	places := make([]core.Place, 0, len(s.Places))
	for _, p := range s.Places {
		places = append(places, core.Place{
			ID:          p.ID,
			Type:        core.ReductionType(p.Type),
			Prime:       p.Prime,
			I0:          p.I0,
			N:           p.N,
			Conductance: p.Conductance,
		})
	}
	return places
}
