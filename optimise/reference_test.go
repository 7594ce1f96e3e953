package optimise_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/optimize"

	"github.com/katalvlaran/certmin/optimise"
	"github.com/katalvlaran/certmin/polynomial"
)

// TestAgreesWithLocalSearch cross-checks the certified minimum of convex
// objectives against gonum's BFGS started from a few points: the local
// minimum must lie inside the certified enclosure (up to the line-search
// accuracy).
func TestAgreesWithLocalSearch(t *testing.T) {
	cases := []struct {
		name string
		f    *polynomial.Polynomial
		x0   [][]float64
	}{
		{
			// x² + y² + xy − 3x: minimum −3 at (2, −1)
			name: "coupled quadratic",
			f: polynomial.MustNew(2,
				term(1, 1, 2, 0), term(1, 1, 0, 2), term(1, 1, 1, 1), term(-3, 1, 1, 0)),
			x0: [][]float64{{0, 0}, {10, -7}, {-4, 3}},
		},
		{
			// x⁴ + x² − 2x: minimum at the real root of 2x³ + x − 1
			name: "quartic",
			f:    polynomial.MustNew(1, term(1, 1, 4), term(1, 1, 2), term(-2, 1, 1)),
			x0:   [][]float64{{-3}, {0}, {5}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := optimise.Minimise(tc.f, nil)
			require.NoError(t, err)
			require.Equal(t, optimise.Found, res.Status)

			n := tc.f.NumVariables()
			grad := make([]*polynomial.Polynomial, n)
			for i := range grad {
				grad[i] = tc.f.Derivative(i)
			}
			problem := optimize.Problem{
				Func: tc.f.EvaluateFloat,
				Grad: func(g, x []float64) {
					for i, gi := range grad {
						g[i] = gi.EvaluateFloat(x)
					}
				},
			}

			for _, x0 := range tc.x0 {
				local, err := optimize.Minimize(problem, x0, nil, &optimize.BFGS{})
				require.NoError(t, err)
				assert.InDelta(t, res.Value.Mid(), local.F, 1e-9, "start %v", x0)
				assert.InDeltaSlice(t, res.Point.Mid(), local.X, 1e-5, "start %v", x0)
			}
		})
	}
}
