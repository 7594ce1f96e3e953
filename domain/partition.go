// SPDX-License-Identifier: MIT

package domain

import (
	"fmt"
	"math"

	"github.com/katalvlaran/certmin/interval"
)

const opPartition = "Partition"

// DefaultOverlap is the ε by which reference intervals are widened.
const DefaultOverlap = 1e-6

// RegionTag names the reference interval a region was cut from.
type RegionTag int8

const (
	// NegativeUnbounded is B1 = (−∞, −1+ε].
	NegativeUnbounded RegionTag = iota
	// Bounded is B2 = [−1−ε, 1+ε].
	Bounded
	// PositiveUnbounded is B3 = [1−ε, +∞).
	PositiveUnbounded
)

// String implements fmt.Stringer.
func (t RegionTag) String() string {
	switch t {
	case NegativeUnbounded:
		return "B1"
	case Bounded:
		return "B2"
	case PositiveUnbounded:
		return "B3"
	default:
		return fmt.Sprintf("RegionTag(%d)", int(t))
	}
}

// Region is one bounded slice of a coordinate.
//   - Interval is in solver coordinates: t = 1/x when Inverted, x otherwise.
//   - Inverted means results must be mapped back with x = 1/t.
type Region struct {
	Tag      RegionTag
	Interval interval.Interval
	Inverted bool
}

// Original maps an enclosure in region coordinates back to x.
// For an inverted region an enclosure containing t = 0 maps to an unbounded
// interval (the point at infinity).
func (r Region) Original(iv interval.Interval) interval.Interval {
	if !r.Inverted {
		return iv
	}

	return interval.Recip(iv)
}

// String renders e.g. "B3[0, 1.000001]⁻¹".
func (r Region) String() string {
	s := r.Tag.String() + r.Interval.String()
	if r.Inverted {
		s += "⁻¹"
	}

	return s
}

// Dimension is the ordered region list (B1, B2, B3 order) of one coordinate.
type Dimension []Region

// Options configures Partition.
type Options struct {
	Overlap float64
}

// Option mutates Options.
type Option func(*Options)

// WithOverlap sets ε; it must lie in [0, 1).
func WithOverlap(eps float64) Option { return func(o *Options) { o.Overlap = eps } }

func gatherOptions(opts ...Option) (Options, error) {
	o := Options{Overlap: DefaultOverlap}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if !(o.Overlap >= 0 && o.Overlap < 1) {
		return o, fmt.Errorf("overlap %g not in [0, 1): %w", o.Overlap, ErrInvalidOption)
	}

	return o, nil
}

// references returns B1, B2, B3 widened by eps.
func references(eps float64) [3]interval.Interval {
	return [3]interval.Interval{
		{Lo: math.Inf(-1), Hi: -1 + eps},
		{Lo: -1 - eps, Hi: 1 + eps},
		{Lo: 1 - eps, Hi: math.Inf(1)},
	}
}

// Partition returns, per coordinate of d, the non-empty bounded regions.
//
// Guarantees:
//   - every Region.Interval is bounded;
//   - a coordinate that is bounded never yields an Inverted region;
//   - a point coordinate yields exactly one region.
//
// Errors: ErrEmptyDomain, ErrInvalidOption, ErrNoRegions.
func Partition(d interval.Vector, opts ...Option) ([]Dimension, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPartition, err)
	}
	if len(d) == 0 {
		return nil, fmt.Errorf("%s: %w", opPartition, ErrEmptyDomain)
	}
	refs := references(o.Overlap)

	out := make([]Dimension, len(d))
	for i, di := range d {
		if di.IsEmpty() || di.IsNaN() {
			return nil, fmt.Errorf("%s: coordinate %d is %v: %w", opPartition, i, di, ErrEmptyDomain)
		}
		for tag, ref := range refs {
			s := interval.Intersect(di, ref)
			if s.IsEmpty() {
				continue
			}
			r := Region{Tag: RegionTag(tag), Interval: s}
			if !s.IsBounded() {
				// only B1/B3 slices can be unbounded, and they exclude 0
				r.Interval = interval.Recip(s)
				r.Inverted = true
			}
			out[i] = append(out[i], r)
			if di.IsPoint() {
				break
			}
		}
		if len(out[i]) == 0 {
			return nil, fmt.Errorf("%s: coordinate %d: %w", opPartition, i, ErrNoRegions)
		}
	}

	return out, nil
}

// Combinations enumerates the Cartesian product of the dimensions'
// regions in lexicographic order (last coordinate varies fastest) and calls
// fn with each combination. The slice passed to fn is reused; copy it to keep it.
func Combinations(dims []Dimension, fn func([]Region)) {
	if len(dims) == 0 {
		return
	}
	idx := make([]int, len(dims))
	cur := make([]Region, len(dims))
	for {
		for i, k := range idx {
			cur[i] = dims[i][k]
		}
		fn(cur)

		i := len(dims) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(dims[i]) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return
		}
	}
}
