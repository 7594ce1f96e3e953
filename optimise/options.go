// SPDX-License-Identifier: MIT

// Package optimise: functional configuration for Minimise / MinimiseAll.
// This file defines:
//   - documented defaults (constants),
//   - Option constructors,
//   - gatherOptions, which resolves and validates every field and reports
//     all violations at once (multierr) instead of panicking.
package optimise

import (
	"fmt"
	"math"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/certmin/domain"
	"github.com/katalvlaran/certmin/solver"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers runs subproblems sequentially.
	DefaultWorkers = 1

	// DefaultBoundary searches every face of the domain.
	DefaultBoundary = BoundaryFaces

	// DefaultSecondDerivativeFilter keeps every stationary point.
	DefaultSecondDerivativeFilter = false
)

// BoundaryPolicy selects how the boundary of a bounded domain is searched.
type BoundaryPolicy int

const (
	// BoundaryFaces fixes every subset of coordinates at their finite bounds
	// and searches the resulting faces, edges and corners.
	BoundaryFaces BoundaryPolicy = iota
	// BoundaryCorners adds a domain corner only when the gradient sign test
	// proves it optimal (all partials certainly > 0 at the lower corner, or
	// certainly < 0 at the upper corner).
	BoundaryCorners
	// BoundaryNone reports interior stationary points only.
	BoundaryNone
)

// String implements fmt.Stringer; the names are the config-file spelling.
func (b BoundaryPolicy) String() string {
	switch b {
	case BoundaryFaces:
		return "faces"
	case BoundaryCorners:
		return "corners"
	case BoundaryNone:
		return "none"
	default:
		return fmt.Sprintf("BoundaryPolicy(%d)", int(b))
	}
}

// ParseBoundary is the inverse of BoundaryPolicy.String.
func ParseBoundary(s string) (BoundaryPolicy, error) {
	for _, b := range []BoundaryPolicy{BoundaryFaces, BoundaryCorners, BoundaryNone} {
		if s == b.String() {
			return b, nil
		}
	}

	return 0, fmt.Errorf("boundary %q (want faces|corners|none): %w", s, ErrInvalidOption)
}

// options is the resolved configuration of one call.
type options struct {
	workers          int
	secondDerivative bool
	boundary         BoundaryPolicy
	overlap          float64
	solver           solver.Options
	logger           *zap.Logger
}

// Option configures Minimise and MinimiseAll.
type Option func(*options)

// WithWorkers sets the number of subproblems solved concurrently (≥ 1).
// Results do not depend on it.
func WithWorkers(n int) Option { return func(o *options) { o.workers = n } }

// WithSecondDerivativeFilter drops stationary points at which some pure
// second partial derivative is certainly ≤ 0.
func WithSecondDerivativeFilter(on bool) Option {
	return func(o *options) { o.secondDerivative = on }
}

// WithBoundary selects the boundary policy.
func WithBoundary(b BoundaryPolicy) Option { return func(o *options) { o.boundary = b } }

// WithOverlap sets the ε by which the reference intervals overlap.
func WithOverlap(eps float64) Option { return func(o *options) { o.overlap = eps } }

// WithTolerance sets the solver's minimum box width.
func WithTolerance(tol float64) Option { return func(o *options) { o.solver.Tolerance = tol } }

// WithMaxIterations sets the solver's per-box iteration cap.
func WithMaxIterations(n int) Option { return func(o *options) { o.solver.MaxIterations = n } }

// WithMaxBoxes sets the solver's box budget per subproblem.
func WithMaxBoxes(n int) Option { return func(o *options) { o.solver.MaxBoxes = n } }

// WithLogger injects a logger; nil restores the no-op default.
func WithLogger(l *zap.Logger) Option { return func(o *options) { o.logger = l } }

func defaultOptions() options {
	return options{
		workers:          DefaultWorkers,
		secondDerivative: DefaultSecondDerivativeFilter,
		boundary:         DefaultBoundary,
		overlap:          domain.DefaultOverlap,
		solver:           solver.DefaultOptions(),
		logger:           zap.NewNop(),
	}
}

// gatherOptions applies opts over the defaults and validates the result.
func gatherOptions(opts ...Option) (options, error) {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	var errs error
	if o.workers < 1 {
		errs = multierr.Append(errs, fmt.Errorf("workers %d must be >= 1: %w", o.workers, ErrInvalidOption))
	}
	if o.boundary < BoundaryFaces || o.boundary > BoundaryNone {
		errs = multierr.Append(errs, fmt.Errorf("unknown %v: %w", o.boundary, ErrInvalidOption))
	}
	if !(o.overlap >= 0 && o.overlap < 1) || math.IsNaN(o.overlap) {
		errs = multierr.Append(errs, fmt.Errorf("overlap %g not in [0, 1): %w", o.overlap, ErrInvalidOption))
	}
	if err := o.solver.Validate(); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("%w: %w", ErrInvalidOption, err))
	}

	return o, errs
}
