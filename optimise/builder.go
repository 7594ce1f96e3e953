// SPDX-License-Identifier: MIT

package optimise

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/certmin/domain"
	"github.com/katalvlaran/certmin/interval"
	"github.com/katalvlaran/certmin/polynomial"
)

const opBuild = "BuildSubproblems"

// Subproblem is one root-finding task: the gradient system of the objective
// expressed in the coordinates of one combination of regions.
//   - Functions: component j is ∂f/∂x_j, reciprocal-transformed in every
//     Inverted coordinate.
//   - Box: the regions' intervals, in solver coordinates.
//   - Inverted[i]: roots must be mapped back with x_i = 1/t_i.
type Subproblem struct {
	Functions *polynomial.System
	Box       interval.Vector
	Inverted  []bool
	Tags      []domain.RegionTag
	Regions   []domain.Region
}

// String renders the region combination, e.g. "B1⁻¹×B2".
func (sp Subproblem) String() string {
	parts := make([]string, len(sp.Regions))
	for i, r := range sp.Regions {
		parts[i] = r.Tag.String()
		if r.Inverted {
			parts[i] += "⁻¹"
		}
	}

	return strings.Join(parts, "×")
}

// BuildSubproblems partitions d (nil means the full space) and returns one
// Subproblem per element of the Cartesian product of the surviving regions,
// in lexicographic region order.
//
// Errors: ErrNilPolynomial, ErrNoVariables, ErrDimensionMismatch, and the
// domain package's partition errors.
func BuildSubproblems(p *polynomial.Polynomial, d interval.Vector, opts ...domain.Option) ([]Subproblem, error) {
	d, err := checkProblem(p, d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}
	dims, err := domain.Partition(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}

	n := p.NumVariables()
	grad := make([]*polynomial.Polynomial, n)
	for j := range grad {
		grad[j] = p.Derivative(j)
	}

	var (
		out      []Subproblem
		buildErr error
	)
	domain.Combinations(dims, func(rs []domain.Region) {
		if buildErr != nil {
			return
		}
		sp, err := buildOne(grad, rs)
		if err != nil {
			buildErr = err

			return
		}
		out = append(out, sp)
	})
	if buildErr != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, buildErr)
	}

	return out, nil
}

// buildOne assembles the subproblem of one region combination.
func buildOne(grad []*polynomial.Polynomial, rs []domain.Region) (Subproblem, error) {
	n := len(rs)
	sp := Subproblem{
		Box:      make(interval.Vector, n),
		Inverted: make([]bool, n),
		Tags:     make([]domain.RegionTag, n),
		Regions:  append([]domain.Region(nil), rs...),
	}
	for i, r := range rs {
		sp.Box[i] = r.Interval
		sp.Inverted[i] = r.Inverted
		sp.Tags[i] = r.Tag
	}

	comps := make([]*polynomial.Polynomial, n)
	for j, g := range grad {
		c := g
		for i := 0; i < n; i++ {
			if !sp.Inverted[i] || c.IsZero() {
				continue
			}
			t, err := c.EvaluateAtReciprocal(i)
			if err != nil {
				return Subproblem{}, fmt.Errorf("component %d, coordinate %d: %w", j, i, err)
			}
			c = t
		}
		comps[j] = c
	}
	sys, err := polynomial.NewSystem(comps...)
	if err != nil {
		return Subproblem{}, err
	}
	sp.Functions = sys

	return sp, nil
}

// checkProblem validates the objective against the domain and defaults a
// nil domain to the full space.
func checkProblem(p *polynomial.Polynomial, d interval.Vector) (interval.Vector, error) {
	if p == nil {
		return nil, ErrNilPolynomial
	}
	n := p.NumVariables()
	if n < 1 {
		return nil, ErrNoVariables
	}
	if d == nil {
		return interval.Unbounded(n), nil
	}
	if len(d) != n {
		return nil, fmt.Errorf("domain has %d coordinates, polynomial %d variables: %w", len(d), n, ErrDimensionMismatch)
	}
	for i, iv := range d {
		if iv.IsEmpty() || iv.IsNaN() || math.IsInf(iv.Lo, 1) || math.IsInf(iv.Hi, -1) {
			return nil, fmt.Errorf("coordinate %d is %v: %w", i, iv, ErrInvalidDomain)
		}
	}

	return d, nil
}
