// SPDX-License-Identifier: MIT

package optimise

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/certmin/domain"
	"github.com/katalvlaran/certmin/solver"
)

// Config is the file form of the options. LoadConfig starts from
// DefaultConfig and overlays the keys present in the document.
//
// Example:
//
//	workers: 4
//	boundary: faces
//	second_derivative_filter: false
//	overlap: 1.0e-6
//	solver:
//	  tolerance: 1.0e-8
//	  max_iterations: 20
//	  max_boxes: 20000
type Config struct {
	Workers                int          `yaml:"workers"`
	Boundary               string       `yaml:"boundary"`
	SecondDerivativeFilter bool         `yaml:"second_derivative_filter"`
	Overlap                float64      `yaml:"overlap"`
	Solver                 SolverConfig `yaml:"solver"`
}

// SolverConfig mirrors solver.Options.
type SolverConfig struct {
	Tolerance     float64 `yaml:"tolerance"`
	MaxIterations int     `yaml:"max_iterations"`
	MaxBoxes      int     `yaml:"max_boxes"`
}

// DefaultConfig returns the defaults of every option.
func DefaultConfig() Config {
	return Config{
		Workers:                DefaultWorkers,
		Boundary:               DefaultBoundary.String(),
		SecondDerivativeFilter: DefaultSecondDerivativeFilter,
		Overlap:                domain.DefaultOverlap,
		Solver: SolverConfig{
			Tolerance:     solver.DefaultTolerance,
			MaxIterations: solver.DefaultMaxIterations,
			MaxBoxes:      solver.DefaultMaxBoxes,
		},
	}
}

// LoadConfig decodes a YAML document over DefaultConfig. Unknown keys are
// rejected; an empty document yields the defaults.
//
// Errors: ErrInvalidOption (every violated field, combined), YAML errors.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}

	return cfg, nil
}

// Validate reports every out-of-range field.
func (c Config) Validate() error {
	_, err := c.Options()

	return err
}

// Options converts the config into options, validating on the way.
func (c Config) Options() ([]Option, error) {
	b, err := ParseBoundary(c.Boundary)
	opts := []Option{
		WithWorkers(c.Workers),
		WithSecondDerivativeFilter(c.SecondDerivativeFilter),
		WithBoundary(b),
		WithOverlap(c.Overlap),
		WithTolerance(c.Solver.Tolerance),
		WithMaxIterations(c.Solver.MaxIterations),
		WithMaxBoxes(c.Solver.MaxBoxes),
	}
	if _, verr := gatherOptions(opts...); verr != nil {
		err = multierr.Append(err, verr)
	}
	if err != nil {
		return nil, err
	}

	return opts, nil
}
