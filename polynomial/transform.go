// SPDX-License-Identifier: MIT

// Package polynomial - exact transforms: derivative, degree bookkeeping,
// reciprocal substitution, variable fixing and restriction.
//
// All transforms are exact (rational arithmetic) and return new values.

package polynomial

import (
	"fmt"
	"math/big"
)

// Derivative returns ∂p/∂x_n.
// Every term c·x_n^e with e > 0 becomes (c·e)·x_n^(e−1); terms with e = 0 vanish.
// Panics if n is outside [0, NumVariables()), a programmer error.
func (p *Polynomial) Derivative(n int) *Polynomial {
	p.mustVar(n)
	acc := newAccumulator(p.nvars)
	m := make(Monomial, p.nvars)
	c := new(big.Rat)
	factor := new(big.Rat)
	for _, t := range p.terms {
		e := t.exps[n]
		if e == 0 {
			continue
		}
		copy(m, t.exps)
		m[n] = e - 1
		factor.SetInt64(int64(e))
		acc.add(m, c.Mul(t.coef, factor))
	}

	return acc.build()
}

// MaxDegree returns the largest exponent of x_n over all terms.
// A nonzero polynomial that does not involve x_n has MaxDegree 0.
//
// Errors:
//   - ErrVariableOutOfRange (n outside [0, NumVariables())).
//   - ErrZeroPolynomial     (p has no terms: the reciprocal trick is undefined).
func (p *Polynomial) MaxDegree(n int) (int, error) {
	if n < 0 || n >= p.nvars {
		return 0, fmt.Errorf("%s(%d): %w", opMaxDegree, n, ErrVariableOutOfRange)
	}
	if p.IsZero() {
		return 0, fmt.Errorf("%s(%d): %w", opMaxDegree, n, ErrZeroPolynomial)
	}
	d := 0
	for _, t := range p.terms {
		if t.exps[n] > d {
			d = t.exps[n]
		}
	}

	return d, nil
}

// EvaluateAtReciprocal returns q(x) = x_n^d · p(…, 1/x_n, …) with
// d = MaxDegree(n): the "polynomial trick" that turns roots of p on an
// unbounded x_n-interval into roots of q on the bounded reciprocal interval.
// Each exponent e of x_n maps to d − e, so q is again a polynomial.
//
// Errors: see MaxDegree.
func (p *Polynomial) EvaluateAtReciprocal(n int) (*Polynomial, error) {
	d, err := p.MaxDegree(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReciprocal, err)
	}

	return p.reciprocal(n, d), nil
}

// EvaluateAtReciprocalDegree is EvaluateAtReciprocal with an explicit degree
// d ≥ MaxDegree(n). Applying it twice with the same d returns p exactly,
// which is the degree bookkeeping needed for round trips.
//
// Errors:
//   - ErrVariableOutOfRange, ErrZeroPolynomial (see MaxDegree).
//   - ErrDegreeTooLow (d < MaxDegree(n)).
func (p *Polynomial) EvaluateAtReciprocalDegree(n, d int) (*Polynomial, error) {
	maxDeg, err := p.MaxDegree(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReciprocal, err)
	}
	if d < maxDeg {
		return nil, fmt.Errorf("%s: degree %d < %d: %w", opReciprocal, d, maxDeg, ErrDegreeTooLow)
	}

	return p.reciprocal(n, d), nil
}

func (p *Polynomial) reciprocal(n, d int) *Polynomial {
	acc := newAccumulator(p.nvars)
	m := make(Monomial, p.nvars)
	for _, t := range p.terms {
		copy(m, t.exps)
		m[n] = d - t.exps[n]
		acc.add(m, t.coef)
	}

	return acc.build()
}

// Substitute returns p with x_n fixed to the exact value v. The result keeps
// the same number of variables but no longer depends on x_n.
// Panics if n is out of range.
func (p *Polynomial) Substitute(n int, v *big.Rat) *Polynomial {
	p.mustVar(n)
	acc := newAccumulator(p.nvars)
	m := make(Monomial, p.nvars)
	c := new(big.Rat)
	for _, t := range p.terms {
		copy(m, t.exps)
		m[n] = 0
		acc.add(m, c.Mul(t.coef, ratPow(v, t.exps[n])))
	}

	return acc.build()
}

// Restrict returns p as a polynomial over the variables listed in keep
// (in that order); variable keep[i] of p becomes variable i of the result.
//
// Errors:
//   - ErrNoVariables        (keep is empty).
//   - ErrVariableOutOfRange (an index in keep is invalid).
//   - ErrDependsOnDropped   (p depends on a variable not in keep).
func (p *Polynomial) Restrict(keep []int) (*Polynomial, error) {
	if len(keep) == 0 {
		return nil, fmt.Errorf("%s: %w", opRestrict, ErrNoVariables)
	}
	kept := make([]bool, p.nvars)
	for _, k := range keep {
		if k < 0 || k >= p.nvars {
			return nil, fmt.Errorf("%s: index %d: %w", opRestrict, k, ErrVariableOutOfRange)
		}
		kept[k] = true
	}
	for i := 0; i < p.nvars; i++ {
		if !kept[i] && p.DependsOn(i) {
			return nil, fmt.Errorf("%s: x%d: %w", opRestrict, i, ErrDependsOnDropped)
		}
	}
	acc := newAccumulator(len(keep))
	m := make(Monomial, len(keep))
	for _, t := range p.terms {
		for i, k := range keep {
			m[i] = t.exps[k]
		}
		acc.add(m, t.coef)
	}

	return acc.build(), nil
}

// Variables returns the indices of the variables p depends on, ascending.
func (p *Polynomial) Variables() []int {
	var vars []int
	for i := 0; i < p.nvars; i++ {
		if p.DependsOn(i) {
			vars = append(vars, i)
		}
	}

	return vars
}

func (p *Polynomial) mustVar(n int) {
	if n < 0 || n >= p.nvars {
		panic(fmt.Sprintf("polynomial: variable %d of %d: %v", n, p.nvars, ErrVariableOutOfRange))
	}
}

// ratPow returns v^k as a new rational (v^0 = 1, including 0^0).
func ratPow(v *big.Rat, k int) *big.Rat {
	result := big.NewRat(1, 1)
	base := new(big.Rat).Set(v)
	for k > 0 {
		if k&1 == 1 {
			result.Mul(result, base)
		}
		k >>= 1
		if k > 0 {
			base.Mul(base, base)
		}
	}

	return result
}
