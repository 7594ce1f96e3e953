// SPDX-License-Identifier: MIT

// Package polynomial - core value type, constructors & accessors.
//
// Purpose:
//   - Hold a canonical sparse representation: sorted terms, merged exponents,
//     no zero coefficients.
//   - Cache an outward-rounded interval enclosure of each coefficient so that
//     validated evaluation never re-converts rationals.
//
// Complexity quicksheet:
//   - New: O(T·n + T log T) for T terms over n variables.
//   - Terms/Clone: O(T·n).

package polynomial

import (
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/certmin/interval"
)

// Monomial is an exponent tuple: Monomial[i] is the power of variable i.
type Monomial []int

// Degree returns the total degree Σ e_i.
func (m Monomial) Degree() int {
	d := 0
	for _, e := range m {
		d += e
	}

	return d
}

// key encodes m as a map key.
func (m Monomial) key() string {
	var sb strings.Builder
	for i, e := range m {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(e))
	}

	return sb.String()
}

// Term is one coefficient·monomial pair, the input/output format of the package.
type Term struct {
	Exponents   Monomial // one non-negative power per variable
	Coefficient *big.Rat // exact coefficient; zero terms are dropped by New
}

// term is the internal, owned representation of a Term.
type term struct {
	exps      Monomial          // owned copy
	coef      *big.Rat          // owned copy, never zero
	enclosure interval.Interval // FromRat(coef), cached
}

// Polynomial is an immutable sparse polynomial in a fixed number of variables.
// The zero value is not usable; build polynomials with New, Zero, Constant or
// Variable.
type Polynomial struct {
	nvars int    // number of variables (≥ 1)
	terms []term // canonical: sorted, merged, nonzero
}

// New builds a polynomial over nvars variables from terms.
// Equal exponent tuples are merged by coefficient addition and zero
// coefficients are dropped. Inputs are copied; later mutation of the
// caller's slices or rationals does not affect the result.
//
// Errors:
//   - ErrNoVariables      (nvars ≤ 0).
//   - ErrExponentLength   (len(Exponents) != nvars).
//   - ErrNegativeExponent (some exponent < 0).
//   - ErrNilCoefficient   (Coefficient == nil).
func New(nvars int, terms ...Term) (*Polynomial, error) {
	if nvars <= 0 {
		return nil, fmt.Errorf("%s: %w", opNew, ErrNoVariables)
	}
	acc := newAccumulator(nvars)
	for i, t := range terms {
		if t.Coefficient == nil {
			return nil, fmt.Errorf("%s: term %d: %w", opNew, i, ErrNilCoefficient)
		}
		if len(t.Exponents) != nvars {
			return nil, fmt.Errorf("%s: term %d has %d exponents, want %d: %w",
				opNew, i, len(t.Exponents), nvars, ErrExponentLength)
		}
		for _, e := range t.Exponents {
			if e < 0 {
				return nil, fmt.Errorf("%s: term %d: %w", opNew, i, ErrNegativeExponent)
			}
		}
		acc.add(t.Exponents, t.Coefficient)
	}

	return acc.build(), nil
}

// MustNew is New that panics on error. Intended for literals in tests and
// examples where the input is known to be well formed.
func MustNew(nvars int, terms ...Term) *Polynomial {
	p, err := New(nvars, terms...)
	if err != nil {
		panic(err)
	}

	return p
}

// Zero returns the zero polynomial over nvars variables.
func Zero(nvars int) *Polynomial { return &Polynomial{nvars: nvars} }

// Constant returns the constant polynomial c over nvars variables.
func Constant(nvars int, c *big.Rat) *Polynomial {
	acc := newAccumulator(nvars)
	acc.add(make(Monomial, nvars), c)

	return acc.build()
}

// Variable returns the polynomial x_i over nvars variables.
func Variable(nvars, i int) *Polynomial {
	if i < 0 || i >= nvars {
		panic(fmt.Sprintf("polynomial: Variable(%d, %d): %v", nvars, i, ErrVariableOutOfRange))
	}
	m := make(Monomial, nvars)
	m[i] = 1
	acc := newAccumulator(nvars)
	acc.add(m, big.NewRat(1, 1))

	return acc.build()
}

// NumVariables returns the number of variables.
func (p *Polynomial) NumVariables() int { return p.nvars }

// Len returns the number of stored (nonzero) terms.
func (p *Polynomial) Len() int { return len(p.terms) }

// IsZero reports whether p is the zero polynomial.
func (p *Polynomial) IsZero() bool { return len(p.terms) == 0 }

// IsConstant reports whether p has no variable dependence.
func (p *Polynomial) IsConstant() bool {
	for _, t := range p.terms {
		if t.exps.Degree() > 0 {
			return false
		}
	}

	return true
}

// Degree returns the total degree (0 for constants and for the zero polynomial).
func (p *Polynomial) Degree() int {
	d := 0
	for _, t := range p.terms {
		if td := t.exps.Degree(); td > d {
			d = td
		}
	}

	return d
}

// DependsOn reports whether variable n appears with a positive power.
func (p *Polynomial) DependsOn(n int) bool {
	if n < 0 || n >= p.nvars {
		return false
	}
	for _, t := range p.terms {
		if t.exps[n] > 0 {
			return true
		}
	}

	return false
}

// Terms returns a deep copy of the terms in canonical order.
func (p *Polynomial) Terms() []Term {
	out := make([]Term, len(p.terms))
	for i, t := range p.terms {
		out[i] = Term{
			Exponents:   append(Monomial(nil), t.exps...),
			Coefficient: new(big.Rat).Set(t.coef),
		}
	}

	return out
}

// Coefficient returns a copy of the coefficient of monomial m (0 if absent).
func (p *Polynomial) Coefficient(m Monomial) *big.Rat {
	if len(m) != p.nvars {
		return new(big.Rat)
	}
	k := m.key()
	for _, t := range p.terms {
		if t.exps.key() == k {
			return new(big.Rat).Set(t.coef)
		}
	}

	return new(big.Rat)
}

// Equal reports whether p and q are the same polynomial over the same variables.
func (p *Polynomial) Equal(q *Polynomial) bool {
	if p == nil || q == nil {
		return p == q
	}
	if p.nvars != q.nvars || len(p.terms) != len(q.terms) {
		return false
	}
	for i := range p.terms {
		if p.terms[i].exps.key() != q.terms[i].exps.key() || p.terms[i].coef.Cmp(q.terms[i].coef) != 0 {
			return false
		}
	}

	return true
}

// String renders p with variables x0, x1, …, e.g. "2*x0^2 - 6*x0 + 5".
func (p *Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	for i, t := range p.terms {
		c := new(big.Rat).Set(t.coef)
		switch {
		case i == 0 && c.Sign() < 0:
			sb.WriteString("-")
			c.Neg(c)
		case i > 0 && c.Sign() < 0:
			sb.WriteString(" - ")
			c.Neg(c)
		case i > 0:
			sb.WriteString(" + ")
		}
		mono := monomialString(t.exps)
		switch {
		case mono == "":
			sb.WriteString(c.RatString())
		case c.Cmp(big.NewRat(1, 1)) == 0:
			sb.WriteString(mono)
		default:
			sb.WriteString(c.RatString())
			sb.WriteString("*")
			sb.WriteString(mono)
		}
	}

	return sb.String()
}

func monomialString(m Monomial) string {
	var parts []string
	for i, e := range m {
		switch {
		case e == 1:
			parts = append(parts, "x"+strconv.Itoa(i))
		case e > 1:
			parts = append(parts, "x"+strconv.Itoa(i)+"^"+strconv.Itoa(e))
		}
	}

	return strings.Join(parts, "*")
}

// accumulator merges terms by exponent key and produces canonical polynomials.
type accumulator struct {
	nvars int
	index map[string]int
	exps  []Monomial
	coefs []*big.Rat
}

func newAccumulator(nvars int) *accumulator {
	return &accumulator{nvars: nvars, index: make(map[string]int)}
}

// add accumulates c·x^m; m and c are copied.
func (a *accumulator) add(m Monomial, c *big.Rat) {
	k := m.key()
	if i, ok := a.index[k]; ok {
		a.coefs[i].Add(a.coefs[i], c)

		return
	}
	a.index[k] = len(a.exps)
	a.exps = append(a.exps, append(Monomial(nil), m...))
	a.coefs = append(a.coefs, new(big.Rat).Set(c))
}

func (a *accumulator) build() *Polynomial {
	terms := make([]term, 0, len(a.exps))
	for i, m := range a.exps {
		if a.coefs[i].Sign() == 0 {
			continue
		}
		terms = append(terms, term{exps: m, coef: a.coefs[i], enclosure: interval.FromRat(a.coefs[i])})
	}
	sort.Slice(terms, func(i, j int) bool { return monomialLess(terms[j].exps, terms[i].exps) })

	return &Polynomial{nvars: a.nvars, terms: terms}
}

// monomialLess orders by total degree, then lexicographically by exponent.
func monomialLess(a, b Monomial) bool {
	da, db := a.Degree(), b.Degree()
	if da != db {
		return da < db
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}
