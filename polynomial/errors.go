// SPDX-License-Identifier: MIT

// Package polynomial: sentinel error set.
// Every message is prefixed with "polynomial: ". Operations wrap these with an
// operation tag (fmt.Errorf("%s: %w", op, err)); callers match via errors.Is.
package polynomial

import "errors"

var (
	// ErrNoVariables is returned when a polynomial is requested over zero variables.
	ErrNoVariables = errors.New("polynomial: number of variables must be > 0")

	// ErrExponentLength indicates an exponent tuple whose length differs from
	// the number of variables.
	ErrExponentLength = errors.New("polynomial: exponent tuple length mismatch")

	// ErrNegativeExponent indicates a negative exponent in a term.
	ErrNegativeExponent = errors.New("polynomial: negative exponent")

	// ErrNilCoefficient indicates a term without a coefficient.
	ErrNilCoefficient = errors.New("polynomial: nil coefficient")

	// ErrNilPolynomial indicates a nil *Polynomial operand.
	ErrNilPolynomial = errors.New("polynomial: nil polynomial")

	// ErrDimensionMismatch indicates operands (or points) over different
	// numbers of variables.
	ErrDimensionMismatch = errors.New("polynomial: dimension mismatch")

	// ErrVariableOutOfRange indicates a variable index outside [0, n).
	ErrVariableOutOfRange = errors.New("polynomial: variable index out of range")

	// ErrZeroPolynomial is returned by MaxDegree (and the reciprocal transform)
	// for the zero polynomial, whose degree is undefined.
	ErrZeroPolynomial = errors.New("polynomial: zero polynomial has no degree")

	// ErrDegreeTooLow indicates an explicit reciprocal degree smaller than the
	// variable's maximum exponent; the transform would leave negative powers.
	ErrDegreeTooLow = errors.New("polynomial: reciprocal degree below max degree")

	// ErrInexactDivision indicates a quotient that is not a polynomial.
	ErrInexactDivision = errors.New("polynomial: division is not exact")

	// ErrDivisionByZero indicates division by the zero scalar or polynomial.
	ErrDivisionByZero = errors.New("polynomial: division by zero")

	// ErrDependsOnDropped indicates Restrict was asked to drop a variable the
	// polynomial still depends on.
	ErrDependsOnDropped = errors.New("polynomial: polynomial depends on dropped variable")

	// ErrUnsupportedOperand indicates an Operand of unknown kind.
	ErrUnsupportedOperand = errors.New("polynomial: unsupported operand")
)

// Operation name constants for uniform error wrapping.
const (
	opNew        = "New"
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opQuo        = "Quo"
	opMaxDegree  = "MaxDegree"
	opReciprocal = "EvaluateAtReciprocal"
	opEvaluate   = "Evaluate"
	opRestrict   = "Restrict"
	opSystem     = "NewSystem"
	opCombine    = "Combine"
)
