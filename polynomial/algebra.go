package polynomial

import (
	"fmt"
	"math/big"
)

// checkBinary validates operands of a binary operation.
func checkBinary(op string, p, q *Polynomial) error {
	if p == nil || q == nil {
		return fmt.Errorf("%s: %w", op, ErrNilPolynomial)
	}
	if p.nvars != q.nvars {
		return fmt.Errorf("%s: %d vs %d variables: %w", op, p.nvars, q.nvars, ErrDimensionMismatch)
	}

	return nil
}

// Add returns p + q.
func (p *Polynomial) Add(q *Polynomial) (*Polynomial, error) {
	if err := checkBinary(opAdd, p, q); err != nil {
		return nil, err
	}
	acc := newAccumulator(p.nvars)
	for _, t := range p.terms {
		acc.add(t.exps, t.coef)
	}
	for _, t := range q.terms {
		acc.add(t.exps, t.coef)
	}

	return acc.build(), nil
}

// Sub returns p − q.
func (p *Polynomial) Sub(q *Polynomial) (*Polynomial, error) {
	if err := checkBinary(opSub, p, q); err != nil {
		return nil, err
	}

	return p.Add(q.Neg())
}

// Mul returns p · q.
// Complexity: O(|p|·|q|·n).
func (p *Polynomial) Mul(q *Polynomial) (*Polynomial, error) {
	if err := checkBinary(opMul, p, q); err != nil {
		return nil, err
	}

	return p.mul(q), nil
}

func (p *Polynomial) mul(q *Polynomial) *Polynomial {
	acc := newAccumulator(p.nvars)
	m := make(Monomial, p.nvars)
	c := new(big.Rat)
	for _, a := range p.terms {
		for _, b := range q.terms {
			for i := range m {
				m[i] = a.exps[i] + b.exps[i]
			}
			acc.add(m, c.Mul(a.coef, b.coef))
		}
	}

	return acc.build()
}

// Neg returns −p.
func (p *Polynomial) Neg() *Polynomial {
	return p.Scale(big.NewRat(-1, 1))
}

// Scale returns c · p.
func (p *Polynomial) Scale(c *big.Rat) *Polynomial {
	acc := newAccumulator(p.nvars)
	prod := new(big.Rat)
	for _, t := range p.terms {
		acc.add(t.exps, prod.Mul(t.coef, c))
	}

	return acc.build()
}

// Pow returns p^k for k ≥ 0 (p^0 = 1).
func (p *Polynomial) Pow(k int) *Polynomial {
	result := Constant(p.nvars, big.NewRat(1, 1))
	base := p
	for k > 0 {
		if k&1 == 1 {
			result = result.mul(base)
		}
		k >>= 1
		if k > 0 {
			base = base.mul(base)
		}
	}

	return result
}

// Quo returns p / q when the quotient is itself a polynomial and q is a
// single term (a monomial times a constant). General multivariate division
// is not supported.
//
// Errors:
//   - ErrDivisionByZero  (q is the zero polynomial).
//   - ErrInexactDivision (q has several terms, or some term of p is not
//     divisible by q's monomial).
func (p *Polynomial) Quo(q *Polynomial) (*Polynomial, error) {
	if err := checkBinary(opQuo, p, q); err != nil {
		return nil, err
	}
	if q.IsZero() {
		return nil, fmt.Errorf("%s: %w", opQuo, ErrDivisionByZero)
	}
	if len(q.terms) != 1 {
		return nil, fmt.Errorf("%s: divisor has %d terms: %w", opQuo, len(q.terms), ErrInexactDivision)
	}
	d := q.terms[0]
	inv := new(big.Rat).Inv(d.coef)
	acc := newAccumulator(p.nvars)
	m := make(Monomial, p.nvars)
	c := new(big.Rat)
	for _, t := range p.terms {
		for i := range m {
			m[i] = t.exps[i] - d.exps[i]
			if m[i] < 0 {
				return nil, fmt.Errorf("%s: term %s not divisible by %s: %w",
					opQuo, monomialString(t.exps), monomialString(d.exps), ErrInexactDivision)
			}
		}
		acc.add(m, c.Mul(t.coef, inv))
	}

	return acc.build(), nil
}
