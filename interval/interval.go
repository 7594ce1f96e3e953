// SPDX-License-Identifier: MIT

// Package interval - Interval value type & arithmetic.
//
// Purpose:
//   - Provide a closed interval [Lo, Hi] with possibly infinite bounds.
//   - Guarantee enclosure: every operation returns a superset of the exact image.
//   - Keep values immutable: operations never modify their operands.
//
// Complexity quicksheet:
//   - Add/Sub/Neg: O(1); Mul/Div: O(1) (four endpoint products); Pow(k): O(k).

package interval

import (
	"fmt"
	"math"
	"math/big"
)

// Interval is a closed interval [Lo, Hi] of float64.
//   - Lo may be -Inf and Hi may be +Inf.
//   - Lo > Hi encodes the empty interval (see Empty); NaN bounds are invalid.
type Interval struct {
	Lo float64 // lower bound (rounded towards −∞)
	Hi float64 // upper bound (rounded towards +∞)
}

// New validates and returns [lo, hi].
//
// Errors:
//   - ErrInvalidBounds if lo > hi or either bound is NaN.
func New(lo, hi float64) (Interval, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return Interval{}, fmt.Errorf("New(%g,%g): %w", lo, hi, ErrInvalidBounds)
	}

	return Interval{Lo: lo, Hi: hi}, nil
}

// Point returns the degenerate interval [x, x].
func Point(x float64) Interval { return Interval{Lo: x, Hi: x} }

// Entire returns (−∞, +∞).
func Entire() Interval { return Interval{Lo: math.Inf(-1), Hi: math.Inf(1)} }

// Empty returns the distinguished empty interval.
func Empty() Interval { return Interval{Lo: math.Inf(1), Hi: math.Inf(-1)} }

// FromRat returns the tightest float interval enclosing the exact rational r.
// When r is representable the result is a point.
func FromRat(r *big.Rat) Interval {
	f, exact := r.Float64()
	if exact {
		return Point(f)
	}
	// Float64 rounds to nearest; the exact value lies within one ulp of f.
	cmp := new(big.Rat).SetFloat64(f)
	if cmp == nil {
		// f overflowed to ±Inf.
		if r.Sign() > 0 {
			return Interval{Lo: math.MaxFloat64, Hi: math.Inf(1)}
		}

		return Interval{Lo: math.Inf(-1), Hi: -math.MaxFloat64}
	}
	if r.Cmp(cmp) > 0 {
		return Interval{Lo: f, Hi: up(f)}
	}

	return Interval{Lo: down(f), Hi: f}
}

// IsEmpty reports whether iv is the empty interval.
func (iv Interval) IsEmpty() bool { return iv.Lo > iv.Hi }

// IsNaN reports whether a bound is NaN, i.e. the value is not certifiable.
func (iv Interval) IsNaN() bool { return math.IsNaN(iv.Lo) || math.IsNaN(iv.Hi) }

// IsBounded reports whether both bounds are finite.
func (iv Interval) IsBounded() bool {
	return !math.IsInf(iv.Lo, 0) && !math.IsInf(iv.Hi, 0) && !iv.IsNaN()
}

// IsPoint reports whether Lo == Hi.
func (iv Interval) IsPoint() bool { return iv.Lo == iv.Hi }

// Certifiable reports whether iv is a usable enclosure: non-empty, no NaN,
// and bounded.
func (iv Interval) Certifiable() bool {
	return !iv.IsEmpty() && iv.IsBounded()
}

// Width returns Hi − Lo rounded upward (+Inf for unbounded intervals, 0 for empty).
func (iv Interval) Width() float64 {
	if iv.IsEmpty() {
		return 0
	}
	_, hi := addBracket(iv.Hi, -iv.Lo)

	return hi
}

// Mid returns a float inside iv close to its centre.
// For half-bounded intervals it returns the finite bound; for Entire it returns 0.
func (iv Interval) Mid() float64 {
	loInf, hiInf := math.IsInf(iv.Lo, 0), math.IsInf(iv.Hi, 0)
	switch {
	case loInf && hiInf:
		return 0
	case loInf:
		return iv.Hi
	case hiInf:
		return iv.Lo
	}
	m := 0.5*iv.Lo + 0.5*iv.Hi
	// guard against rounding escaping the interval for adjacent floats
	if m < iv.Lo {
		return iv.Lo
	}
	if m > iv.Hi {
		return iv.Hi
	}

	return m
}

// Mag returns max(|Lo|, |Hi|).
func (iv Interval) Mag() float64 { return math.Max(math.Abs(iv.Lo), math.Abs(iv.Hi)) }

// Contains reports whether x ∈ iv.
func (iv Interval) Contains(x float64) bool { return iv.Lo <= x && x <= iv.Hi }

// ContainsZero reports whether 0 ∈ iv.
func (iv Interval) ContainsZero() bool { return iv.Contains(0) }

// Subset reports whether iv ⊆ other.
func (iv Interval) Subset(other Interval) bool {
	if iv.IsEmpty() {
		return true
	}

	return other.Lo <= iv.Lo && iv.Hi <= other.Hi
}

// Interior reports whether iv lies strictly inside other (Krawczyk test).
func (iv Interval) Interior(other Interval) bool {
	return other.Lo < iv.Lo && iv.Hi < other.Hi
}

// String renders the interval as "[lo, hi]".
func (iv Interval) String() string {
	if iv.IsEmpty() {
		return "[empty]"
	}

	return fmt.Sprintf("[%g, %g]", iv.Lo, iv.Hi)
}

// Intersect returns a ∩ b (possibly empty).
func Intersect(a, b Interval) Interval {
	lo, hi := math.Max(a.Lo, b.Lo), math.Min(a.Hi, b.Hi)
	if lo > hi {
		return Empty()
	}

	return Interval{Lo: lo, Hi: hi}
}

// Hull returns the smallest interval containing a and b.
func Hull(a, b Interval) Interval {
	if a.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return a
	}

	return Interval{Lo: math.Min(a.Lo, b.Lo), Hi: math.Max(a.Hi, b.Hi)}
}

// Neg returns −a (exact).
func Neg(a Interval) Interval { return Interval{Lo: -a.Hi, Hi: -a.Lo} }

// Add returns a + b.
func Add(a, b Interval) Interval {
	if a.IsEmpty() || b.IsEmpty() {
		return Empty()
	}
	lo, _ := addBracket(a.Lo, b.Lo)
	_, hi := addBracket(a.Hi, b.Hi)

	return Interval{Lo: lo, Hi: hi}
}

// Sub returns a − b.
func Sub(a, b Interval) Interval { return Add(a, Neg(b)) }

// Mul returns a · b.
//
// Implementation:
//   - Stage 1: bracket the four endpoint products.
//   - Stage 2: Lo = min of lower brackets, Hi = max of upper brackets.
//
// Notes:
//   - 0·∞ is treated as 0, the interval-arithmetic convention.
func Mul(a, b Interval) Interval {
	if a.IsEmpty() || b.IsEmpty() {
		return Empty()
	}
	if a.IsNaN() || b.IsNaN() {
		return Interval{Lo: math.NaN(), Hi: math.NaN()}
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, x := range [2]float64{a.Lo, a.Hi} {
		for _, y := range [2]float64{b.Lo, b.Hi} {
			l, h := mulBracket(x, y)
			lo = math.Min(lo, l)
			hi = math.Max(hi, h)
		}
	}

	return Interval{Lo: lo, Hi: hi}
}

// Recip returns 1/a.
//
// Behavior highlights:
//   - a strictly containing 0 → Entire.
//   - a == [0, 0] → Empty (no real reciprocal).
//   - a touching 0 at one end maps that end to ±∞, e.g. 1/[0, 2] = [0.5, +∞]
//     and 1/[−∞, −1] = [−1, 0].
func Recip(a Interval) Interval {
	switch {
	case a.IsEmpty():
		return Empty()
	case a.Lo == 0 && a.Hi == 0:
		return Empty()
	case a.Lo < 0 && a.Hi > 0:
		return Entire()
	}
	var lo, hi float64
	if a.Hi == 0 {
		lo = math.Inf(-1)
	} else {
		lo, _ = divBracket(1, a.Hi)
	}
	if a.Lo == 0 {
		hi = math.Inf(1)
	} else {
		_, hi = divBracket(1, a.Lo)
	}
	// 1/±∞ yields a signed zero; normalise so Lo/Hi compare cleanly.
	if lo == 0 {
		lo = 0
	}
	if hi == 0 {
		hi = 0
	}

	return Interval{Lo: lo, Hi: hi}
}

// Div returns a / b. A divisor containing 0 in its interior yields Entire;
// a divisor touching 0 at one end is handled through Recip.
func Div(a, b Interval) Interval {
	if a.IsEmpty() || b.IsEmpty() {
		return Empty()
	}
	if b.ContainsZero() {
		if b.Lo == 0 && b.Hi == 0 {
			return Empty()
		}
		if b.Lo < 0 && b.Hi > 0 {
			return Entire()
		}
	}

	if b.Lo == 0 || b.Hi == 0 {
		return Mul(a, Recip(b))
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, x := range [2]float64{a.Lo, a.Hi} {
		for _, y := range [2]float64{b.Lo, b.Hi} {
			l, h := divBracket(x, y)
			if math.IsNaN(l) {
				// ∞/∞: fall back to the reciprocal form
				return Mul(a, Recip(b))
			}
			lo = math.Min(lo, l)
			hi = math.Max(hi, h)
		}
	}

	return Interval{Lo: lo, Hi: hi}
}

// Pow returns a^k for k ≥ 0, respecting even-power symmetry
// (e.g. [−2, 1]^2 = [0, 4], not [−2, 4]).
func Pow(a Interval, k int) Interval {
	if a.IsEmpty() {
		return Empty()
	}
	switch {
	case k <= 0:
		return Point(1)
	case k == 1:
		return a
	}
	if k%2 == 1 || a.Lo >= 0 {
		return Interval{Lo: pointPow(a.Lo, k).Lo, Hi: pointPow(a.Hi, k).Hi}
	}
	if a.Hi <= 0 {
		return Interval{Lo: pointPow(-a.Hi, k).Lo, Hi: pointPow(-a.Lo, k).Hi}
	}

	return Interval{Lo: 0, Hi: pointPow(a.Mag(), k).Hi}
}

// pointPow encloses x^k by repeated squaring on validated products.
func pointPow(x float64, k int) Interval {
	result := Point(1)
	base := Point(x)
	for k > 0 {
		if k&1 == 1 {
			result = Mul(result, base)
		}
		k >>= 1
		if k > 0 {
			base = Mul(base, base)
		}
	}

	return result
}
