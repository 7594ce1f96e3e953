// SPDX-License-Identifier: MIT

package domain

import "errors"

var (
	// ErrEmptyDomain indicates a domain with no coordinates, or with an empty
	// or NaN coordinate interval.
	ErrEmptyDomain = errors.New("domain: empty domain")

	// ErrNoRegions indicates that a coordinate produced no region. It cannot
	// happen for a valid domain and is kept as a guard.
	ErrNoRegions = errors.New("domain: no regions")

	// ErrInvalidOption indicates an overlap outside [0, 1).
	ErrInvalidOption = errors.New("domain: invalid option")
)
