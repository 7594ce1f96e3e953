// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the box width below which bisection stops.
	DefaultTolerance = 1e-8

	// DefaultMaxIterations bounds Krawczyk contraction, refinement and
	// ε-inflation loops for a single box.
	DefaultMaxIterations = 20

	// DefaultMaxBoxes bounds the total number of boxes examined per SolveAll.
	DefaultMaxBoxes = 20000
)

// Options is the resolved solver configuration.
type Options struct {
	Tolerance     float64
	MaxIterations int
	MaxBoxes      int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		MaxBoxes:      DefaultMaxBoxes,
	}
}

// Validate reports the first out-of-range field as ErrInvalidOption.
func (o Options) Validate() error {
	switch {
	case !(o.Tolerance > 0) || math.IsInf(o.Tolerance, 0):
		return fmt.Errorf("Tolerance %g must be finite and > 0: %w", o.Tolerance, ErrInvalidOption)
	case o.MaxIterations < 1:
		return fmt.Errorf("MaxIterations %d must be >= 1: %w", o.MaxIterations, ErrInvalidOption)
	case o.MaxBoxes < 1:
		return fmt.Errorf("MaxBoxes %d must be >= 1: %w", o.MaxBoxes, ErrInvalidOption)
	}

	return nil
}

// Option mutates Options.
type Option func(*Options)

// WithTolerance sets the minimum box width.
func WithTolerance(tol float64) Option { return func(o *Options) { o.Tolerance = tol } }

// WithMaxIterations sets the per-box iteration cap.
func WithMaxIterations(n int) Option { return func(o *Options) { o.MaxIterations = n } }

// WithMaxBoxes sets the total box budget.
func WithMaxBoxes(n int) Option { return func(o *Options) { o.MaxBoxes = n } }

// WithOptions replaces the whole configuration, e.g. one loaded from a file.
func WithOptions(src Options) Option { return func(o *Options) { *o = src } }
