package polynomial

import (
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/certmin/interval"
)

// Evaluate returns a validated enclosure of p over the box x: for every point
// y ∈ x, p(y) lies in the returned interval. A point evaluation passes
// degenerate intervals (see interval.Points).
//
// Errors:
//   - ErrDimensionMismatch (len(x) != NumVariables()).
func (p *Polynomial) Evaluate(x interval.Vector) (interval.Interval, error) {
	if len(x) != p.nvars {
		return interval.Interval{}, fmt.Errorf("%s: point has %d coordinates, want %d: %w",
			opEvaluate, len(x), p.nvars, ErrDimensionMismatch)
	}

	return p.eval(x), nil
}

// eval is Evaluate without the dimension check; callers guarantee len(x).
// Powers are cached per (variable, exponent) so shared factors are
// evaluated once.
func (p *Polynomial) eval(x interval.Vector) interval.Interval {
	sum := interval.Point(0)
	powers := make([]map[int]interval.Interval, len(x))
	for _, t := range p.terms {
		v := t.enclosure
		for i, e := range t.exps {
			if e == 0 {
				continue
			}
			if powers[i] == nil {
				powers[i] = make(map[int]interval.Interval)
			}
			pw, ok := powers[i][e]
			if !ok {
				pw = interval.Pow(x[i], e)
				powers[i][e] = pw
			}
			v = interval.Mul(v, pw)
		}
		sum = interval.Add(sum, v)
	}

	return sum
}

// EvaluateRat returns p at an exact rational point.
//
// Errors:
//   - ErrDimensionMismatch (len(x) != NumVariables()).
func (p *Polynomial) EvaluateRat(x []*big.Rat) (*big.Rat, error) {
	if len(x) != p.nvars {
		return nil, fmt.Errorf("%s: point has %d coordinates, want %d: %w",
			opEvaluate, len(x), p.nvars, ErrDimensionMismatch)
	}
	sum := new(big.Rat)
	for _, t := range p.terms {
		v := new(big.Rat).Set(t.coef)
		for i, e := range t.exps {
			if e > 0 {
				v.Mul(v, ratPow(x[i], e))
			}
		}
		sum.Add(sum, v)
	}

	return sum, nil
}

// EvaluateFloat returns an unvalidated float64 approximation of p(x).
// Intended for diagnostics and for driving floating-point optimisers; use
// Evaluate for anything that must be certified.
func (p *Polynomial) EvaluateFloat(x []float64) float64 {
	if len(x) != p.nvars {
		return math.NaN()
	}
	sum := 0.0
	for _, t := range p.terms {
		c, _ := t.coef.Float64()
		for i, e := range t.exps {
			if e > 0 {
				c *= math.Pow(x[i], float64(e))
			}
		}
		sum += c
	}

	return sum
}
