package polynomial

import (
	"fmt"

	"github.com/katalvlaran/certmin/interval"
)

// System is a square polynomial system F: Rⁿ → Rⁿ together with its exact
// Jacobian ∂F_i/∂x_j. A root of the system is a point where every component
// vanishes simultaneously. Systems are immutable and safe for concurrent use.
type System struct {
	nvars int
	funcs []*Polynomial
	jac   [][]*Polynomial // jac[i][j] = ∂funcs[i]/∂x_j
}

// NewSystem builds a system from n components over n variables each.
//
// Errors:
//   - ErrNoVariables       (no components).
//   - ErrNilPolynomial     (a nil component).
//   - ErrDimensionMismatch (component count != variable count, or components
//     over different variable counts).
func NewSystem(funcs ...*Polynomial) (*System, error) {
	if len(funcs) == 0 {
		return nil, fmt.Errorf("%s: %w", opSystem, ErrNoVariables)
	}
	n := len(funcs)
	for i, f := range funcs {
		if f == nil {
			return nil, fmt.Errorf("%s: component %d: %w", opSystem, i, ErrNilPolynomial)
		}
		if f.nvars != n {
			return nil, fmt.Errorf("%s: component %d has %d variables, want %d: %w",
				opSystem, i, f.nvars, n, ErrDimensionMismatch)
		}
	}
	jac := make([][]*Polynomial, n)
	for i, f := range funcs {
		jac[i] = make([]*Polynomial, n)
		for j := 0; j < n; j++ {
			jac[i][j] = f.Derivative(j)
		}
	}

	return &System{nvars: n, funcs: append([]*Polynomial(nil), funcs...), jac: jac}, nil
}

// Dimension returns n.
func (s *System) Dimension() int { return s.nvars }

// Component returns F_i.
func (s *System) Component(i int) *Polynomial { return s.funcs[i] }

// Eval returns an enclosure of F over x. len(x) must equal Dimension().
func (s *System) Eval(x interval.Vector) interval.Vector {
	out := make(interval.Vector, s.nvars)
	for i, f := range s.funcs {
		out[i] = f.eval(x)
	}

	return out
}

// Jacobian returns an interval enclosure of the Jacobian over x, row-major:
// J[i][j] ⊇ {∂F_i/∂x_j(y) : y ∈ x}. len(x) must equal Dimension().
func (s *System) Jacobian(x interval.Vector) [][]interval.Interval {
	out := make([][]interval.Interval, s.nvars)
	for i := range s.jac {
		out[i] = make([]interval.Interval, s.nvars)
		for j, d := range s.jac[i] {
			out[i][j] = d.eval(x)
		}
	}

	return out
}

// String lists the components, one per line.
func (s *System) String() string {
	str := ""
	for i, f := range s.funcs {
		str += fmt.Sprintf("F%d = %s\n", i, f)
	}

	return str
}
