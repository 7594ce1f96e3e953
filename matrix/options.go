// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the factorisation kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is the absolute threshold below which the largest
	// remaining pivot candidate is treated as zero and LU reports ErrSingular.
	DefaultPivotTolerance = 1e-300
)

// Options holds the resolved configuration for LU-based kernels.
type Options struct {
	pivotTolerance float64
}

// Option mutates Options.
type Option func(*Options)

// WithPivotTolerance sets the singularity threshold used during pivoting.
// Panics if tol is negative, NaN or Inf.
func WithPivotTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic("matrix: WithPivotTolerance requires a finite tol >= 0")
	}

	return func(o *Options) { o.pivotTolerance = tol }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{pivotTolerance: DefaultPivotTolerance}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
