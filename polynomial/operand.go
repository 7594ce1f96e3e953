package polynomial

import (
	"fmt"
	"math/big"
)

// Operand is a tagged variant: exactly one of Scalar or *Polynomial.
// The set of kinds is closed (isOperand is unexported), so Combine can switch
// over it exhaustively.
type Operand interface {
	isOperand()
}

// Scalar is an exact rational operand.
type Scalar struct {
	Value *big.Rat
}

func (Scalar) isOperand()      {}
func (*Polynomial) isOperand() {}

// Op enumerates the binary operations accepted by Combine.
type Op int

const (
	// OpAdd is a + b.
	OpAdd Op = iota
	// OpSub is a − b.
	OpSub
	// OpMul is a · b.
	OpMul
	// OpQuo is the exact quotient a / b.
	OpQuo
)

// String implements fmt.Stringer.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpQuo:
		return "quo"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Combine applies op to a and b. Scalar∘Scalar stays a Scalar; any
// combination involving a *Polynomial yields a *Polynomial, with scalars
// lifted to constants over the polynomial's variables. Scalar / Polynomial
// is exact only when the divisor is a nonzero constant.
//
// Errors:
//   - ErrUnsupportedOperand (unknown op, nil operand or nil scalar value).
//   - ErrDivisionByZero, ErrInexactDivision, ErrDimensionMismatch (from the
//     underlying operation).
func Combine(op Op, a, b Operand) (Operand, error) {
	switch x := a.(type) {
	case Scalar:
		if x.Value == nil {
			return nil, fmt.Errorf("%s: %w", opCombine, ErrUnsupportedOperand)
		}
		switch y := b.(type) {
		case Scalar:
			return combineScalars(op, x, y)
		case *Polynomial:
			if y == nil {
				return nil, fmt.Errorf("%s: %w", opCombine, ErrNilPolynomial)
			}
			if op == OpQuo && !y.IsConstant() {
				return nil, fmt.Errorf("%s: scalar / %s: %w", opCombine, y, ErrInexactDivision)
			}

			return combinePolynomials(op, Constant(y.nvars, x.Value), y)
		default:
			return nil, fmt.Errorf("%s: %T: %w", opCombine, b, ErrUnsupportedOperand)
		}
	case *Polynomial:
		if x == nil {
			return nil, fmt.Errorf("%s: %w", opCombine, ErrNilPolynomial)
		}
		switch y := b.(type) {
		case Scalar:
			if y.Value == nil {
				return nil, fmt.Errorf("%s: %w", opCombine, ErrUnsupportedOperand)
			}
			if op == OpQuo && y.Value.Sign() == 0 {
				return nil, fmt.Errorf("%s: %w", opCombine, ErrDivisionByZero)
			}

			return combinePolynomials(op, x, Constant(x.nvars, y.Value))
		case *Polynomial:
			if y == nil {
				return nil, fmt.Errorf("%s: %w", opCombine, ErrNilPolynomial)
			}

			return combinePolynomials(op, x, y)
		default:
			return nil, fmt.Errorf("%s: %T: %w", opCombine, b, ErrUnsupportedOperand)
		}
	default:
		return nil, fmt.Errorf("%s: %T: %w", opCombine, a, ErrUnsupportedOperand)
	}
}

func combineScalars(op Op, a, b Scalar) (Operand, error) {
	if b.Value == nil {
		return nil, fmt.Errorf("%s: %w", opCombine, ErrUnsupportedOperand)
	}
	r := new(big.Rat)
	switch op {
	case OpAdd:
		r.Add(a.Value, b.Value)
	case OpSub:
		r.Sub(a.Value, b.Value)
	case OpMul:
		r.Mul(a.Value, b.Value)
	case OpQuo:
		if b.Value.Sign() == 0 {
			return nil, fmt.Errorf("%s: %w", opCombine, ErrDivisionByZero)
		}
		r.Quo(a.Value, b.Value)
	default:
		return nil, fmt.Errorf("%s: %v: %w", opCombine, op, ErrUnsupportedOperand)
	}

	return Scalar{Value: r}, nil
}

func combinePolynomials(op Op, a, b *Polynomial) (Operand, error) {
	var (
		r   *Polynomial
		err error
	)
	switch op {
	case OpAdd:
		r, err = a.Add(b)
	case OpSub:
		r, err = a.Sub(b)
	case OpMul:
		r, err = a.Mul(b)
	case OpQuo:
		r, err = a.Quo(b)
	default:
		return nil, fmt.Errorf("%s: %v: %w", opCombine, op, ErrUnsupportedOperand)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCombine, err)
	}

	return r, nil
}
