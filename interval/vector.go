package interval

import (
	"fmt"
	"math"
	"strings"
)

// Vector is an ordered sequence of intervals, one per dimension: a box.
// Vectors are values; every method returns a fresh copy and never mutates
// the receiver.
type Vector []Interval

// NewVector validates ivs and returns them as a box.
//
// Errors:
//   - ErrEmptyInterval if any member is empty.
//   - ErrInvalidBounds if any member has a NaN bound.
func NewVector(ivs ...Interval) (Vector, error) {
	v := make(Vector, len(ivs))
	for i, iv := range ivs {
		if iv.IsNaN() {
			return nil, fmt.Errorf("NewVector: dim %d: %w", i, ErrInvalidBounds)
		}
		if iv.IsEmpty() {
			return nil, fmt.Errorf("NewVector: dim %d: %w", i, ErrEmptyInterval)
		}
		v[i] = iv
	}

	return v, nil
}

// Unbounded returns the n-dimensional box (−∞, ∞)ⁿ.
func Unbounded(n int) Vector {
	v := make(Vector, n)
	for i := range v {
		v[i] = Entire()
	}

	return v
}

// Points returns the degenerate box with the given coordinates.
func Points(xs []float64) Vector {
	v := make(Vector, len(xs))
	for i, x := range xs {
		v[i] = Point(x)
	}

	return v
}

// Dim returns the number of dimensions.
func (v Vector) Dim() int { return len(v) }

// Clone returns an independent copy.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// Mid returns the midpoint of every coordinate.
func (v Vector) Mid() []float64 {
	m := make([]float64, len(v))
	for i, iv := range v {
		m[i] = iv.Mid()
	}

	return m
}

// MaxWidth returns the largest coordinate width.
func (v Vector) MaxWidth() float64 {
	w := 0.0
	for _, iv := range v {
		w = math.Max(w, iv.Width())
	}

	return w
}

// WidestDimension returns the index of the widest coordinate (first on ties).
func (v Vector) WidestDimension() int {
	best, bestW := 0, -1.0
	for i, iv := range v {
		if w := iv.Width(); w > bestW {
			best, bestW = i, w
		}
	}

	return best
}

// Bisect splits coordinate i at its midpoint and returns the two halves.
func (v Vector) Bisect(i int) (Vector, Vector) {
	m := v[i].Mid()
	left, right := v.Clone(), v.Clone()
	left[i] = Interval{Lo: v[i].Lo, Hi: m}
	right[i] = Interval{Lo: m, Hi: v[i].Hi}

	return left, right
}

// Intersect returns v ∩ w and whether the intersection is non-empty.
// Vectors of different dimension never intersect.
func (v Vector) Intersect(w Vector) (Vector, bool) {
	if len(v) != len(w) {
		return nil, false
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = Intersect(v[i], w[i])
		if out[i].IsEmpty() {
			return nil, false
		}
	}

	return out, true
}

// Overlaps reports whether v and w share at least one point.
func (v Vector) Overlaps(w Vector) bool {
	_, ok := v.Intersect(w)

	return ok
}

// Interior reports whether every coordinate of v lies strictly inside w.
func (v Vector) Interior(w Vector) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if !v[i].Interior(w[i]) {
			return false
		}
	}

	return true
}

// Subset reports whether v ⊆ w.
func (v Vector) Subset(w Vector) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if !v[i].Subset(w[i]) {
			return false
		}
	}

	return true
}

// IsBounded reports whether every coordinate is bounded.
func (v Vector) IsBounded() bool {
	for _, iv := range v {
		if !iv.IsBounded() {
			return false
		}
	}

	return true
}

// Inflate widens every coordinate by r on both sides (outward rounded).
func (v Vector) Inflate(r float64) Vector {
	out := make(Vector, len(v))
	for i, iv := range v {
		lo, _ := addBracket(iv.Lo, -r)
		_, hi := addBracket(iv.Hi, r)
		out[i] = Interval{Lo: lo, Hi: hi}
	}

	return out
}

// Lower returns the lower corner as a degenerate box.
func (v Vector) Lower() Vector {
	out := make(Vector, len(v))
	for i, iv := range v {
		out[i] = Point(iv.Lo)
	}

	return out
}

// Upper returns the upper corner as a degenerate box.
func (v Vector) Upper() Vector {
	out := make(Vector, len(v))
	for i, iv := range v {
		out[i] = Point(iv.Hi)
	}

	return out
}

// Sub returns v − w coordinate-wise.
func (v Vector) Sub(w Vector) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = Sub(v[i], w[i])
	}

	return out
}

// String renders the box as "[lo, hi] × [lo, hi] …".
func (v Vector) String() string {
	parts := make([]string, len(v))
	for i, iv := range v {
		parts[i] = iv.String()
	}

	return strings.Join(parts, " × ")
}
