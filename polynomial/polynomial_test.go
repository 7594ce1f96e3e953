package polynomial_test

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/certmin/interval"
	"github.com/katalvlaran/certmin/polynomial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ratEqual lets go-cmp compare *big.Rat values by numeric value.
var ratEqual = cmp.Comparer(func(a, b *big.Rat) bool { return a.Cmp(b) == 0 })

func r(a, b int64) *big.Rat { return big.NewRat(a, b) }

// univariate builds Σ coefs[k]·x^k over one variable.
func univariate(coefs ...*big.Rat) *polynomial.Polynomial {
	terms := make([]polynomial.Term, 0, len(coefs))
	for k, c := range coefs {
		terms = append(terms, polynomial.Term{Exponents: polynomial.Monomial{k}, Coefficient: c})
	}

	return polynomial.MustNew(1, terms...)
}

// TestNew_Validation verifies constructor errors.
func TestNew_Validation(t *testing.T) {
	_, err := polynomial.New(0)
	assert.ErrorIs(t, err, polynomial.ErrNoVariables)

	_, err = polynomial.New(2, polynomial.Term{Exponents: polynomial.Monomial{1}, Coefficient: r(1, 1)})
	assert.ErrorIs(t, err, polynomial.ErrExponentLength)

	_, err = polynomial.New(1, polynomial.Term{Exponents: polynomial.Monomial{-1}, Coefficient: r(1, 1)})
	assert.ErrorIs(t, err, polynomial.ErrNegativeExponent)

	_, err = polynomial.New(1, polynomial.Term{Exponents: polynomial.Monomial{1}})
	assert.ErrorIs(t, err, polynomial.ErrNilCoefficient)
}

// TestNew_MergesAndDropsZeros checks the canonical-form invariants.
func TestNew_MergesAndDropsZeros(t *testing.T) {
	p := polynomial.MustNew(2,
		polynomial.Term{Exponents: polynomial.Monomial{1, 0}, Coefficient: r(2, 1)},
		polynomial.Term{Exponents: polynomial.Monomial{1, 0}, Coefficient: r(3, 1)},
		polynomial.Term{Exponents: polynomial.Monomial{0, 2}, Coefficient: r(1, 1)},
		polynomial.Term{Exponents: polynomial.Monomial{0, 2}, Coefficient: r(-1, 1)},
		polynomial.Term{Exponents: polynomial.Monomial{0, 0}, Coefficient: r(0, 1)},
	)
	want := []polynomial.Term{{Exponents: polynomial.Monomial{1, 0}, Coefficient: r(5, 1)}}
	if diff := cmp.Diff(want, p.Terms(), ratEqual); diff != "" {
		t.Errorf("Terms() mismatch (-want +got):\n%s", diff)
	}
}

// TestNew_CopiesInputs verifies immutability against caller mutation.
func TestNew_CopiesInputs(t *testing.T) {
	c := r(3, 1)
	exps := polynomial.Monomial{2}
	p := polynomial.MustNew(1, polynomial.Term{Exponents: exps, Coefficient: c})
	c.SetInt64(100)
	exps[0] = 7
	assert.Equal(t, "3*x0^2", p.String())
}

// TestAlgebra exercises Add/Sub/Mul/Pow against hand expansions.
func TestAlgebra(t *testing.T) {
	x := polynomial.Variable(1, 0)
	one := polynomial.Constant(1, r(1, 1))

	sum, err := x.Add(one)
	require.NoError(t, err)
	sq := sum.Pow(2) // x² + 2x + 1
	assert.True(t, sq.Equal(univariate(r(1, 1), r(2, 1), r(1, 1))))

	diff, err := sq.Sub(sq)
	require.NoError(t, err)
	assert.True(t, diff.IsZero())

	prod, err := sum.Mul(sum)
	require.NoError(t, err)
	assert.True(t, prod.Equal(sq))

	_, err = x.Add(polynomial.Variable(2, 0))
	assert.ErrorIs(t, err, polynomial.ErrDimensionMismatch)

	_, err = x.Mul(nil)
	assert.ErrorIs(t, err, polynomial.ErrNilPolynomial)

	assert.True(t, x.Pow(0).Equal(one))
}

// TestQuo covers exact monomial division and its failure modes.
func TestQuo(t *testing.T) {
	// (6x³ + 3x²) / (3x²) = 2x + 1
	p := univariate(r(0, 1), r(0, 1), r(3, 1), r(6, 1))
	d := polynomial.MustNew(1, polynomial.Term{Exponents: polynomial.Monomial{2}, Coefficient: r(3, 1)})
	q, err := p.Quo(d)
	require.NoError(t, err)
	assert.True(t, q.Equal(univariate(r(1, 1), r(2, 1))))

	_, err = p.Quo(univariate(r(1, 1), r(1, 1)))
	assert.ErrorIs(t, err, polynomial.ErrInexactDivision)

	_, err = univariate(r(1, 1)).Quo(polynomial.Variable(1, 0))
	assert.ErrorIs(t, err, polynomial.ErrInexactDivision)

	_, err = p.Quo(polynomial.Zero(1))
	assert.ErrorIs(t, err, polynomial.ErrDivisionByZero)
}

// TestDerivative verifies exact partial derivatives.
func TestDerivative(t *testing.T) {
	// f = 2x² − 6x + 5 → f' = 4x − 6
	f := univariate(r(5, 1), r(-6, 1), r(2, 1))
	assert.True(t, f.Derivative(0).Equal(univariate(r(-6, 1), r(4, 1))))

	// g = x²y³ + y → ∂x = 2xy³, ∂y = 3x²y² + 1
	g := polynomial.MustNew(2,
		polynomial.Term{Exponents: polynomial.Monomial{2, 3}, Coefficient: r(1, 1)},
		polynomial.Term{Exponents: polynomial.Monomial{0, 1}, Coefficient: r(1, 1)},
	)
	assert.Equal(t, "2*x0*x1^3", g.Derivative(0).String())
	assert.Equal(t, "3*x0^2*x1^2 + 1", g.Derivative(1).String())

	// terms without the variable vanish entirely
	assert.True(t, polynomial.Constant(2, r(7, 1)).Derivative(1).IsZero())
	assert.Panics(t, func() { g.Derivative(2) })
}

// TestMaxDegree verifies degree bookkeeping and its guards.
func TestMaxDegree(t *testing.T) {
	g := polynomial.MustNew(2,
		polynomial.Term{Exponents: polynomial.Monomial{2, 3}, Coefficient: r(1, 1)},
		polynomial.Term{Exponents: polynomial.Monomial{4, 0}, Coefficient: r(1, 1)},
	)
	d, err := g.MaxDegree(0)
	require.NoError(t, err)
	assert.Equal(t, 4, d)

	d, err = polynomial.Constant(2, r(1, 1)).MaxDegree(1)
	require.NoError(t, err)
	assert.Equal(t, 0, d, "constant does not involve x1")

	_, err = polynomial.Zero(2).MaxDegree(0)
	assert.ErrorIs(t, err, polynomial.ErrZeroPolynomial)

	_, err = g.MaxDegree(5)
	assert.ErrorIs(t, err, polynomial.ErrVariableOutOfRange)
}

// TestEvaluateAtReciprocal checks the polynomial trick on x⁴ − 1 and 2x + 2.
func TestEvaluateAtReciprocal(t *testing.T) {
	q, err := univariate(r(-1, 1), r(0, 1), r(0, 1), r(0, 1), r(1, 1)).EvaluateAtReciprocal(0)
	require.NoError(t, err)
	assert.True(t, q.Equal(univariate(r(1, 1), r(0, 1), r(0, 1), r(0, 1), r(-1, 1))), "x⁴−1 → 1−x⁴")

	q, err = univariate(r(2, 1), r(2, 1)).EvaluateAtReciprocal(0)
	require.NoError(t, err)
	assert.True(t, q.Equal(univariate(r(2, 1), r(2, 1))), "2x+2 is self-reciprocal")

	_, err = polynomial.Zero(1).EvaluateAtReciprocal(0)
	assert.ErrorIs(t, err, polynomial.ErrZeroPolynomial)
}

// TestEvaluateAtReciprocal_RootsInvert verifies that roots of q are the
// reciprocals of roots of p: p = (x−2)(x+3) has roots 2, −3, q has 1/2, −1/3.
func TestEvaluateAtReciprocal_RootsInvert(t *testing.T) {
	p := univariate(r(-6, 1), r(1, 1), r(1, 1))
	q, err := p.EvaluateAtReciprocal(0)
	require.NoError(t, err)
	for _, root := range []*big.Rat{r(1, 2), r(-1, 3)} {
		v, err := q.EvaluateRat([]*big.Rat{root})
		require.NoError(t, err)
		assert.Zero(t, v.Sign(), "q(%s) must vanish", root.RatString())

		back, err := p.EvaluateRat([]*big.Rat{new(big.Rat).Inv(root)})
		require.NoError(t, err)
		assert.Zero(t, back.Sign(), "p(1/%s) must vanish", root.RatString())
	}
}

// TestEvaluateAtReciprocalDegree_RoundTrip verifies that applying the
// transform twice with matching degree recovers the original polynomial.
func TestEvaluateAtReciprocalDegree_RoundTrip(t *testing.T) {
	// p = x·y + 3x³ (no x⁰ term, so MaxDegree of q would drift without an explicit d)
	p := polynomial.MustNew(2,
		polynomial.Term{Exponents: polynomial.Monomial{1, 1}, Coefficient: r(1, 1)},
		polynomial.Term{Exponents: polynomial.Monomial{3, 0}, Coefficient: r(3, 1)},
	)
	q, err := p.EvaluateAtReciprocalDegree(0, 3)
	require.NoError(t, err)
	back, err := q.EvaluateAtReciprocalDegree(0, 3)
	require.NoError(t, err)
	assert.True(t, back.Equal(p), "got %s", back)

	_, err = p.EvaluateAtReciprocalDegree(0, 2)
	assert.ErrorIs(t, err, polynomial.ErrDegreeTooLow)
}

// TestEvaluate_Encloses verifies validated evaluation against exact rationals.
func TestEvaluate_Encloses(t *testing.T) {
	// f = x⁵/5 − x at x = 0.1 (inexact in binary)
	f := polynomial.MustNew(1,
		polynomial.Term{Exponents: polynomial.Monomial{5}, Coefficient: r(1, 5)},
		polynomial.Term{Exponents: polynomial.Monomial{1}, Coefficient: r(-1, 1)},
	)
	v, err := f.Evaluate(interval.Points([]float64{0.1}))
	require.NoError(t, err)

	exact, err := f.EvaluateRat([]*big.Rat{new(big.Rat).SetFloat64(0.1)})
	require.NoError(t, err)
	lo, hi := new(big.Rat).SetFloat64(v.Lo), new(big.Rat).SetFloat64(v.Hi)
	assert.True(t, lo.Cmp(exact) <= 0 && exact.Cmp(hi) <= 0, "enclosure %v must contain %s", v, exact.FloatString(20))

	// box evaluation contains the range
	v, err = f.Evaluate(interval.Vector{{Lo: -1, Hi: 1}})
	require.NoError(t, err)
	assert.True(t, v.Contains(0.8) && v.Contains(-0.8))

	_, err = f.Evaluate(interval.Unbounded(2))
	assert.ErrorIs(t, err, polynomial.ErrDimensionMismatch)

	assert.InDelta(t, -0.09998, f.EvaluateFloat([]float64{0.1}), 1e-12)
}

// TestSubstituteRestrict covers fixing a variable and dropping it.
func TestSubstituteRestrict(t *testing.T) {
	// f = x² + y² + x·y
	f := polynomial.MustNew(2,
		polynomial.Term{Exponents: polynomial.Monomial{2, 0}, Coefficient: r(1, 1)},
		polynomial.Term{Exponents: polynomial.Monomial{0, 2}, Coefficient: r(1, 1)},
		polynomial.Term{Exponents: polynomial.Monomial{1, 1}, Coefficient: r(1, 1)},
	)
	g := f.Substitute(0, r(1, 1)) // 1 + y² + y
	assert.False(t, g.DependsOn(0))
	assert.Equal(t, []int{1}, g.Variables())

	_, err := f.Restrict([]int{1})
	assert.ErrorIs(t, err, polynomial.ErrDependsOnDropped)

	h, err := g.Restrict([]int{1})
	require.NoError(t, err)
	assert.True(t, h.Equal(univariate(r(1, 1), r(1, 1), r(1, 1))), "got %s", h)

	_, err = g.Restrict(nil)
	assert.ErrorIs(t, err, polynomial.ErrNoVariables)
}

// TestString checks the canonical rendering order and signs.
func TestString(t *testing.T) {
	f := univariate(r(5, 1), r(-6, 1), r(2, 1))
	assert.Equal(t, "2*x0^2 - 6*x0 + 5", f.String())
	assert.Equal(t, "-x0", polynomial.Variable(1, 0).Neg().String())
	assert.Equal(t, "0", polynomial.Zero(3).String())
	assert.Equal(t, "1/5*x0^5", polynomial.MustNew(1,
		polynomial.Term{Exponents: polynomial.Monomial{5}, Coefficient: r(1, 5)}).String())
}
