package interval

import "math"

// Directed rounding helpers.
//
// Go exposes only round-to-nearest float arithmetic. Each helper computes the
// nearest result together with the sign of its rounding error (TwoSum for
// addition, an FMA residual for multiplication and division) and returns the
// tightest pair (lo, hi) of floats that brackets the exact result. When the
// residual is zero the operation was exact and lo == hi.

// tinyExponent marks the magnitude below which FMA residuals may themselves
// underflow; results in that range are widened unconditionally.
const tinyExponent = 0x1p-960

func down(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}

	return math.Nextafter(x, math.Inf(-1))
}

func up(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}

	return math.Nextafter(x, math.Inf(1))
}

// overflowBracket handles a finite-operand result that overflowed to ±Inf.
func overflowBracket(r float64) (float64, float64) {
	if r > 0 {
		return math.MaxFloat64, math.Inf(1)
	}

	return math.Inf(-1), -math.MaxFloat64
}

// bracketByResidual turns a nearest result r and the sign of (exact − r) into
// a bracket.
func bracketByResidual(r, residual float64) (float64, float64) {
	switch {
	case residual > 0:
		return r, up(r)
	case residual < 0:
		return down(r), r
	default:
		return r, r
	}
}

func addBracket(a, b float64) (float64, float64) {
	s := a + b
	if math.IsNaN(s) {
		return s, s
	}
	if math.IsInf(s, 0) {
		if math.IsInf(a, 0) || math.IsInf(b, 0) {
			return s, s
		}

		return overflowBracket(s)
	}
	// Knuth TwoSum: err is the exact rounding error of s.
	bb := s - a
	err := (a - (s - bb)) + (b - bb)

	return bracketByResidual(s, err)
}

func mulBracket(a, b float64) (float64, float64) {
	// 0·∞ is 0 in interval arithmetic: the zero factor is exact.
	if a == 0 || b == 0 {
		return 0, 0
	}
	p := a * b
	if math.IsNaN(p) {
		return p, p
	}
	if math.IsInf(p, 0) {
		if math.IsInf(a, 0) || math.IsInf(b, 0) {
			return p, p
		}

		return overflowBracket(p)
	}
	if math.Abs(p) < tinyExponent {
		return down(p), up(p)
	}

	return bracketByResidual(p, math.FMA(a, b, -p))
}

func divBracket(a, b float64) (float64, float64) {
	q := a / b
	if math.IsNaN(q) {
		return q, q
	}
	if math.IsInf(q, 0) {
		if math.IsInf(a, 0) || b == 0 {
			return q, q
		}

		return overflowBracket(q)
	}
	if a == 0 || math.IsInf(b, 0) {
		return q, q
	}
	if math.Abs(q) < tinyExponent {
		return down(q), up(q)
	}
	// exact a/b − q = r/b with r = a − q·b computed exactly by FMA.
	r := math.FMA(-q, b, a)
	if b < 0 {
		r = -r
	}

	return bracketByResidual(q, r)
}
