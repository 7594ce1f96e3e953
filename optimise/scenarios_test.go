package optimise_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/certmin/interval"
	"github.com/katalvlaran/certmin/optimise"
	"github.com/katalvlaran/certmin/polynomial"
)

const tol = 1e-8

// ScenarioSuite pins the end-to-end behaviour on small textbook objectives.
type ScenarioSuite struct {
	suite.Suite
}

// TestQuadraticShifted: x² + 2x on ℝ has its minimum −1 at −1.
func (s *ScenarioSuite) TestQuadraticShifted() {
	f := polynomial.MustNew(1, term(1, 1, 2), term(2, 1, 1))
	res, err := optimise.Minimise(f, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), optimise.Found, res.Status)
	s.InDelta(-1.0, res.Point[0].Mid(), tol)
	s.True(res.Value.Contains(-1))
	s.Equal(optimise.Stationary, res.Kind)
	s.False(res.Clipped)
}

// TestQuadraticFractional: 2x² − 6x + 5 on ℝ has its minimum 1/2 at 3/2,
// found through the inverted B3 region.
func (s *ScenarioSuite) TestQuadraticFractional() {
	f := polynomial.MustNew(1, term(2, 1, 2), term(-6, 1, 1), term(5, 1, 0))
	res, err := optimise.Minimise(f, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), optimise.Found, res.Status)
	s.InDelta(1.5, res.Point[0].Mid(), tol)
	s.True(res.Value.Contains(0.5))
	s.Len(res.Candidates, 1)
}

// TestSeparable2D: (x−2)² + (y+3)² on ℝ² has its minimum 0 at (2, −3).
func (s *ScenarioSuite) TestSeparable2D() {
	// x² − 4x + y² + 6y + 13
	f := polynomial.MustNew(2,
		term(1, 1, 2, 0), term(-4, 1, 1, 0),
		term(1, 1, 0, 2), term(6, 1, 0, 1),
		term(13, 1, 0, 0),
	)
	res, err := optimise.Minimise(f, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), optimise.Found, res.Status)
	s.InDeltaSlice([]float64{2, -3}, mids(res.Point), tol)
	s.True(res.Value.Contains(0))
	s.Zero(res.Report.NonConverged())
}

// TestBoundaryMinimum: x² + y² on [1,3]×[−1,1] attains 1 at (1, 0), on the
// face x = 1, while the unconstrained minimum (0, 0) lies outside.
func (s *ScenarioSuite) TestBoundaryMinimum() {
	f := polynomial.MustNew(2, term(1, 1, 2, 0), term(1, 1, 0, 2))
	d := interval.Vector{iv(1, 3), iv(-1, 1)}

	res, err := optimise.Minimise(f, d)
	require.NoError(s.T(), err)
	require.Equal(s.T(), optimise.Found, res.Status)
	s.InDeltaSlice([]float64{1, 0}, mids(res.Point), tol)
	s.True(res.Value.Contains(1))
	s.Less(res.Value.Width(), tol)
	s.Equal(optimise.Face, res.Kind)
	s.Empty(res.Contenders)

	// without the boundary the interior has no stationary point
	res, err = optimise.Minimise(f, d, optimise.WithBoundary(optimise.BoundaryNone))
	require.NoError(s.T(), err)
	s.Equal(optimise.NoRealSolution, res.Status)
}

// TestClippedAtBoundary: (x − a)² with a = 1 − 2⁻⁶⁰ on [1, 3]. The root lies
// just outside the domain, closer than one ulp, so its enclosure straddles
// x = 1 and is cut back to D. The candidate is flagged, and its value still
// encloses f(1) = 2⁻¹²⁰, the true minimum.
func (s *ScenarioSuite) TestClippedAtBoundary() {
	a := new(big.Rat).Sub(big.NewRat(1, 1), new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Lsh(big.NewInt(1), 60)))
	f := polynomial.MustNew(1,
		polynomial.Term{Exponents: polynomial.Monomial{2}, Coefficient: big.NewRat(1, 1)},
		polynomial.Term{Exponents: polynomial.Monomial{1}, Coefficient: new(big.Rat).Mul(big.NewRat(-2, 1), a)},
		polynomial.Term{Exponents: polynomial.Monomial{0}, Coefficient: new(big.Rat).Mul(a, a)},
	)
	d := interval.Vector{iv(1, 3)}

	res, err := optimise.Minimise(f, d, optimise.WithBoundary(optimise.BoundaryNone))
	require.NoError(s.T(), err)
	require.Equal(s.T(), optimise.Found, res.Status)
	s.Equal(optimise.Stationary, res.Kind)
	s.True(res.Clipped)
	s.True(res.Point.Subset(d))
	s.True(res.Value.Contains(0x1p-120))
	for _, c := range res.Candidates {
		s.True(c.Clipped)
	}
}

// TestTwoStationaryPoints: x⁵/5 − x has stationary points ±1 with values
// ∓4/5; both are reported and the lower one wins.
func (s *ScenarioSuite) TestTwoStationaryPoints() {
	f := polynomial.MustNew(1, term(1, 5, 5), term(-1, 1, 1))

	all, _, err := optimise.MinimiseAll(f, nil)
	require.NoError(s.T(), err)
	require.Len(s.T(), all, 2)
	got := []float64{all[0].Point[0].Mid(), all[1].Point[0].Mid()}
	if got[0] > got[1] {
		got[0], got[1] = got[1], got[0]
	}
	s.InDeltaSlice([]float64{-1, 1}, got, tol)

	res, err := optimise.Minimise(f, nil)
	require.NoError(s.T(), err)
	s.InDelta(1.0, res.Point[0].Mid(), tol)
	s.True(res.Value.Contains(-0.8))
	s.Empty(res.Contenders)
}

// TestSecondDerivativeFilter drops the local maximum of x⁵/5 − x.
func (s *ScenarioSuite) TestSecondDerivativeFilter() {
	f := polynomial.MustNew(1, term(1, 5, 5), term(-1, 1, 1))
	all, rep, err := optimise.MinimiseAll(f, nil, optimise.WithSecondDerivativeFilter(true))
	require.NoError(s.T(), err)
	require.Len(s.T(), all, 1)
	s.InDelta(1.0, all[0].Point[0].Mid(), tol)
	s.Positive(rep.Discarded)
}

// TestSymmetricMinima: x⁴ + y⁴ − 4xy has two global minima −2 at ±(1,1);
// the one not selected is a contender because the values cannot be ranked.
func (s *ScenarioSuite) TestSymmetricMinima() {
	f := polynomial.MustNew(2, term(1, 1, 4, 0), term(1, 1, 0, 4), term(-4, 1, 1, 1))
	res, err := optimise.Minimise(f, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), optimise.Found, res.Status)
	s.True(res.Value.Contains(-2))
	s.Len(res.Candidates, 3, "(−1,−1), (0,0), (1,1)")
	require.Len(s.T(), res.Contenders, 1)

	p, c := mids(res.Point), mids(res.Contenders[0].Point)
	s.InDelta(1.0, math.Abs(p[0]), tol)
	s.InDelta(-p[0], c[0], 2*tol)
	s.InDelta(-p[1], c[1], 2*tol)
	s.Zero(res.Report.NonConverged())
}

// TestNoStationaryPoint: a linear objective on ℝ is unbounded below.
func (s *ScenarioSuite) TestNoStationaryPoint() {
	f := polynomial.Variable(1, 0)
	res, err := optimise.Minimise(f, nil)
	require.NoError(s.T(), err)
	s.Equal(optimise.NoRealSolution, res.Status)
	for _, rr := range res.Report.Regions {
		s.Equal(optimise.OutcomeNoRoots, rr.Outcome, rr.Region)
	}
}

// TestCornerSignTest: x + y increases in every direction on [0,1]², so the
// lower corner is proved optimal by the gradient sign test.
func (s *ScenarioSuite) TestCornerSignTest() {
	f := polynomial.MustNew(2, term(1, 1, 1, 0), term(1, 1, 0, 1))
	d := interval.Vector{iv(0, 1), iv(0, 1)}

	res, err := optimise.Minimise(f, d, optimise.WithBoundary(optimise.BoundaryCorners))
	require.NoError(s.T(), err)
	require.Equal(s.T(), optimise.Found, res.Status)
	s.Equal(interval.Vector{interval.Point(0), interval.Point(0)}, res.Point)
	s.Equal(optimise.Corner, res.Kind)

	faces, err := optimise.Minimise(f, d)
	require.NoError(s.T(), err)
	s.Equal(res.Point, faces.Point, "the face search reaches the same corner")
}

// TestIgnoredVariable: y does not appear in x² − 2x, so it is pinned.
func (s *ScenarioSuite) TestIgnoredVariable() {
	f := polynomial.MustNew(2, term(1, 1, 2, 0), term(-2, 1, 1, 0))

	res, err := optimise.Minimise(f, nil)
	require.NoError(s.T(), err)
	s.InDeltaSlice([]float64{1, 0}, mids(res.Point), tol)
	s.True(res.Value.Contains(-1))

	res, err = optimise.Minimise(f, interval.Vector{iv(math.Inf(-1), math.Inf(1)), iv(2, 5)})
	require.NoError(s.T(), err)
	s.InDelta(1.0, res.Point[0].Mid(), tol)
	s.True(res.Point[1].Subset(iv(2, 5)))
}

func TestScenarioSuite(t *testing.T) {
	suite.Run(t, new(ScenarioSuite))
}
