package domain_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/certmin/domain"
	"github.com/katalvlaran/certmin/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var inf = math.Inf(1)

func iv(lo, hi float64) interval.Interval { return interval.Interval{Lo: lo, Hi: hi} }

// TestPartition_FullLine: (−∞, ∞) yields B1 and B3 inverted around B2.
func TestPartition_FullLine(t *testing.T) {
	dims, err := domain.Partition(interval.Unbounded(1))
	require.NoError(t, err)
	require.Len(t, dims, 1)
	regs := dims[0]
	require.Len(t, regs, 3)

	assert.Equal(t, domain.NegativeUnbounded, regs[0].Tag)
	assert.True(t, regs[0].Inverted)
	assert.Equal(t, 0.0, regs[0].Interval.Hi, "x → −∞ maps to t = 0")
	assert.True(t, regs[0].Interval.Contains(-1), "x = −1 stays inside the inverted slice")

	assert.Equal(t, domain.Bounded, regs[1].Tag)
	assert.False(t, regs[1].Inverted)
	eps := domain.DefaultOverlap
	assert.Equal(t, iv(-1-eps, 1+eps), regs[1].Interval)

	assert.Equal(t, domain.PositiveUnbounded, regs[2].Tag)
	assert.True(t, regs[2].Inverted)
	assert.Equal(t, 0.0, regs[2].Interval.Lo)
	assert.True(t, regs[2].Interval.Interior(iv(-2, 2)))

	for _, r := range regs {
		assert.True(t, r.Interval.IsBounded(), r.String())
	}
}

// TestPartition_BoundedIsUntransformed: bounded domains never invert.
func TestPartition_BoundedIsUntransformed(t *testing.T) {
	for _, d := range []interval.Vector{
		{iv(-5, 5)},
		{iv(1, 3), iv(-1, 1)},
		{iv(-1e9, -2), iv(0.25, 0.5)},
		{iv(2, 2)},
	} {
		dims, err := domain.Partition(d)
		require.NoError(t, err)
		for i, regs := range dims {
			for _, r := range regs {
				assert.False(t, r.Inverted, "coordinate %d of %v", i, d)
				assert.True(t, r.Interval.Subset(d[i]))
			}
		}
	}
}

// TestPartition_HalfLine: [2, ∞) lives entirely in B3.
func TestPartition_HalfLine(t *testing.T) {
	dims, err := domain.Partition(interval.Vector{iv(2, inf)})
	require.NoError(t, err)
	require.Len(t, dims[0], 1)
	r := dims[0][0]
	assert.Equal(t, domain.PositiveUnbounded, r.Tag)
	assert.True(t, r.Inverted)
	assert.Equal(t, iv(0, 0.5), r.Interval)
	assert.Equal(t, iv(2, inf), r.Original(r.Interval))
}

// TestPartition_Overlap: ε = 0 keeps exact reference endpoints, and a point
// coordinate produces one region even where references overlap.
func TestPartition_Overlap(t *testing.T) {
	dims, err := domain.Partition(interval.Vector{iv(-1, 1), iv(1, 1)}, domain.WithOverlap(0))
	require.NoError(t, err)
	assert.Len(t, dims[0], 3, "±1 touch B1 and B3 as degenerate slices")
	assert.Len(t, dims[1], 1)
	assert.Equal(t, domain.Bounded, dims[1][0].Tag)

	_, err = domain.Partition(interval.Unbounded(1), domain.WithOverlap(1))
	assert.ErrorIs(t, err, domain.ErrInvalidOption)
	_, err = domain.Partition(interval.Unbounded(1), domain.WithOverlap(math.NaN()))
	assert.ErrorIs(t, err, domain.ErrInvalidOption)
}

func TestPartition_Errors(t *testing.T) {
	_, err := domain.Partition(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyDomain)
	_, err = domain.Partition(interval.Vector{interval.Empty()})
	assert.ErrorIs(t, err, domain.ErrEmptyDomain)
	_, err = domain.Partition(interval.Vector{iv(math.NaN(), 1)})
	assert.ErrorIs(t, err, domain.ErrEmptyDomain)
}

func TestCombinations_Order(t *testing.T) {
	dims, err := domain.Partition(interval.Vector{iv(-inf, inf), iv(0, 0.5)})
	require.NoError(t, err)

	var tags [][2]domain.RegionTag
	domain.Combinations(dims, func(rs []domain.Region) {
		tags = append(tags, [2]domain.RegionTag{rs[0].Tag, rs[1].Tag})
	})
	assert.Equal(t, [][2]domain.RegionTag{
		{domain.NegativeUnbounded, domain.Bounded},
		{domain.Bounded, domain.Bounded},
		{domain.PositiveUnbounded, domain.Bounded},
	}, tags)
	assert.Equal(t, "B2", domain.Bounded.String())
}
