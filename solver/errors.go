// SPDX-License-Identifier: MIT

// Package solver: sentinel error set.
package solver

import "errors"

var (
	// ErrNonConvergence is returned (with a partial Solution) when some boxes
	// could be neither verified nor excluded.
	ErrNonConvergence = errors.New("solver: search did not converge")

	// ErrUnboundedDomain indicates a search box with an infinite or NaN bound.
	ErrUnboundedDomain = errors.New("solver: search box must be bounded")

	// ErrDimensionMismatch indicates len(box) != f.Dimension().
	ErrDimensionMismatch = errors.New("solver: dimension mismatch")

	// ErrNilFunc indicates a nil system.
	ErrNilFunc = errors.New("solver: nil function")

	// ErrInvalidOption indicates an option value outside its documented range.
	ErrInvalidOption = errors.New("solver: invalid option")
)
