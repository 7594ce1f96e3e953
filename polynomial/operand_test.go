package polynomial_test

import (
	"testing"

	"github.com/katalvlaran/certmin/interval"
	"github.com/katalvlaran/certmin/polynomial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCombine_AllKinds walks every operand pairing.
func TestCombine_AllKinds(t *testing.T) {
	x := polynomial.Variable(1, 0)
	two := polynomial.Scalar{Value: r(2, 1)}

	got, err := polynomial.Combine(polynomial.OpMul, two, polynomial.Scalar{Value: r(3, 1)})
	require.NoError(t, err)
	s, ok := got.(polynomial.Scalar)
	require.True(t, ok, "scalar∘scalar stays scalar")
	assert.Zero(t, s.Value.Cmp(r(6, 1)))

	got, err = polynomial.Combine(polynomial.OpAdd, two, x)
	require.NoError(t, err)
	assert.Equal(t, "x0 + 2", got.(*polynomial.Polynomial).String())

	got, err = polynomial.Combine(polynomial.OpQuo, x, two)
	require.NoError(t, err)
	assert.Equal(t, "1/2*x0", got.(*polynomial.Polynomial).String())

	got, err = polynomial.Combine(polynomial.OpSub, x, x)
	require.NoError(t, err)
	assert.True(t, got.(*polynomial.Polynomial).IsZero())
}

// TestCombine_Errors covers the failure arms.
func TestCombine_Errors(t *testing.T) {
	x := polynomial.Variable(1, 0)
	zero := polynomial.Scalar{Value: r(0, 1)}

	_, err := polynomial.Combine(polynomial.OpQuo, x, zero)
	assert.ErrorIs(t, err, polynomial.ErrDivisionByZero)

	_, err = polynomial.Combine(polynomial.OpQuo, polynomial.Scalar{Value: r(1, 1)}, zero)
	assert.ErrorIs(t, err, polynomial.ErrDivisionByZero)

	_, err = polynomial.Combine(polynomial.OpQuo, polynomial.Scalar{Value: r(1, 1)}, x)
	assert.ErrorIs(t, err, polynomial.ErrInexactDivision)

	_, err = polynomial.Combine(polynomial.Op(42), x, x)
	assert.ErrorIs(t, err, polynomial.ErrUnsupportedOperand)

	_, err = polynomial.Combine(polynomial.OpAdd, polynomial.Scalar{}, x)
	assert.ErrorIs(t, err, polynomial.ErrUnsupportedOperand)

	var nilPoly *polynomial.Polynomial
	_, err = polynomial.Combine(polynomial.OpAdd, nilPoly, x)
	assert.ErrorIs(t, err, polynomial.ErrNilPolynomial)

	_, err = polynomial.Combine(polynomial.OpAdd, nil, x)
	assert.ErrorIs(t, err, polynomial.ErrUnsupportedOperand)
}

// TestSystem_EvalJacobian checks the gradient system of (x−2)² + (y+3)².
func TestSystem_EvalJacobian(t *testing.T) {
	// ∂x = 2x − 4, ∂y = 2y + 6
	fx := polynomial.MustNew(2,
		polynomial.Term{Exponents: polynomial.Monomial{1, 0}, Coefficient: r(2, 1)},
		polynomial.Term{Exponents: polynomial.Monomial{0, 0}, Coefficient: r(-4, 1)},
	)
	fy := polynomial.MustNew(2,
		polynomial.Term{Exponents: polynomial.Monomial{0, 1}, Coefficient: r(2, 1)},
		polynomial.Term{Exponents: polynomial.Monomial{0, 0}, Coefficient: r(6, 1)},
	)
	sys, err := polynomial.NewSystem(fx, fy)
	require.NoError(t, err)
	assert.Equal(t, 2, sys.Dimension())

	v := sys.Eval(interval.Points([]float64{2, -3}))
	assert.Equal(t, interval.Vector{interval.Point(0), interval.Point(0)}, v)

	j := sys.Jacobian(interval.Unbounded(2))
	assert.Equal(t, interval.Point(2), j[0][0])
	assert.Equal(t, interval.Point(0), j[0][1])
	assert.Equal(t, interval.Point(0), j[1][0])
	assert.Equal(t, interval.Point(2), j[1][1])

	_, err = polynomial.NewSystem(fx)
	assert.ErrorIs(t, err, polynomial.ErrDimensionMismatch)

	_, err = polynomial.NewSystem()
	assert.ErrorIs(t, err, polynomial.ErrNoVariables)

	_, err = polynomial.NewSystem(fx, nil)
	assert.ErrorIs(t, err, polynomial.ErrNilPolynomial)
}
