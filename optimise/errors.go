// SPDX-License-Identifier: MIT

// Package optimise: sentinel error set.
// Every message is prefixed with "optimise: ". Entry points wrap these with an
// operation tag; callers match via errors.Is. Solver non-convergence is never
// returned as an error: it is recorded per region in Report.
package optimise

import "errors"

var (
	// ErrNilPolynomial indicates a nil objective.
	ErrNilPolynomial = errors.New("optimise: nil polynomial")

	// ErrNoVariables indicates an objective over zero variables.
	ErrNoVariables = errors.New("optimise: objective has no variables")

	// ErrDimensionMismatch indicates len(domain) != number of variables.
	ErrDimensionMismatch = errors.New("optimise: domain dimension mismatch")

	// ErrInvalidDomain indicates an empty or NaN domain coordinate.
	ErrInvalidDomain = errors.New("optimise: invalid domain")

	// ErrInvalidOption indicates an option or config value outside its range.
	ErrInvalidOption = errors.New("optimise: invalid option")
)
