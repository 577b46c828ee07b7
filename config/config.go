// Package config loads optional YAML run configuration for apportionment
// runs: the target seat total, the uniform seat floor, and whether DC and
// Puerto Rico participate.
//
// The file format is deliberately tiny:
//
//	total_seats: 435
//	min_seats: 1
//	include_dc: false
//	include_pr: false
//
// Every field is optional; zero values defer to the engine defaults
// (total_seats 0 → 435, min_seats absent → 1). min_seats is a pointer so an
// explicit floor of 0 remains expressible. Unknown keys are rejected, so a
// typo fails loudly instead of silently configuring nothing.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/apportion/census"
	"github.com/katalvlaran/apportion/hhill"
)

// ErrInvalidConfig indicates a malformed run configuration: unparseable
// YAML, an unknown key, or a negative seat value. The wrapped message names
// the offending field or decode failure.
var ErrInvalidConfig = errors.New("config: invalid run configuration")

// Run is one apportionment run configuration. The zero value selects the
// engine defaults everywhere.
type Run struct {
	// TotalSeats is the target seat total; 0 defers to hhill.DefaultTotalSeats.
	TotalSeats int `yaml:"total_seats"`

	// MinSeats is the uniform per-entity seat floor; nil defers to
	// hhill.DefaultMinSeats. A pointer so an explicit 0 can be configured.
	MinSeats *int `yaml:"min_seats"`

	// IncludeDC includes the District of Columbia in the run.
	IncludeDC bool `yaml:"include_dc"`

	// IncludePR includes Puerto Rico in the run.
	IncludePR bool `yaml:"include_pr"`
}

// Load reads and parses a run configuration file.
func Load(path string) (Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Run{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a run configuration from raw YAML. Empty input yields the
// zero Run (all engine defaults). Unknown keys, malformed YAML, and negative
// seat values all wrap ErrInvalidConfig.
func Parse(data []byte) (Run, error) {
	var run Run

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&run); err != nil {
		if errors.Is(err, io.EOF) {
			return Run{}, nil // empty file: defaults everywhere
		}

		return Run{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if run.TotalSeats < 0 {
		return Run{}, fmt.Errorf("%w: total_seats must be non-negative, got %d", ErrInvalidConfig, run.TotalSeats)
	}
	if run.MinSeats != nil && *run.MinSeats < 0 {
		return Run{}, fmt.Errorf("%w: min_seats must be non-negative, got %d", ErrInvalidConfig, *run.MinSeats)
	}

	return run, nil
}

// EngineOptions translates the configuration into hhill functional options,
// emitting only the fields that were explicitly set so engine defaults stay
// in charge of the rest.
func (r Run) EngineOptions() []hhill.Option {
	var opts []hhill.Option
	if r.TotalSeats > 0 {
		opts = append(opts, hhill.WithTotalSeats(r.TotalSeats))
	}
	if r.MinSeats != nil {
		opts = append(opts, hhill.WithMinSeats(*r.MinSeats))
	}

	return opts
}

// CensusOptions translates the configuration into census participation
// options.
func (r Run) CensusOptions() []census.Option {
	var opts []census.Option
	if r.IncludeDC {
		opts = append(opts, census.WithDC())
	}
	if r.IncludePR {
		opts = append(opts, census.WithPR())
	}

	return opts
}
