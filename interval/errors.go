// SPDX-License-Identifier: MIT

// Package interval: sentinel error set.
// All constructors return these sentinels; callers match them via errors.Is.
package interval

import "errors"

var (
	// ErrInvalidBounds is returned when lo > hi or a bound is NaN.
	ErrInvalidBounds = errors.New("interval: invalid bounds")

	// ErrEmptyInterval indicates that an empty interval was supplied where a
	// non-empty one is required (e.g., as a Vector member).
	ErrEmptyInterval = errors.New("interval: empty interval")

	// ErrDimensionMismatch indicates that two vectors have different lengths.
	ErrDimensionMismatch = errors.New("interval: dimension mismatch")
)
