// SPDX-License-Identifier: MIT

package optimise

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/katalvlaran/certmin/domain"
	"github.com/katalvlaran/certmin/interval"
	"github.com/katalvlaran/certmin/polynomial"
)

// side of one coordinate within a face.
type side int8

const (
	free side = iota
	atLower
	atUpper
)

// face fixes some coordinates at a bound; the all-free face is the interior.
type face []side

// String renders e.g. "(*, lo)"; "*" marks a free coordinate.
func (f face) String() string {
	parts := make([]string, len(f))
	for i, s := range f {
		switch s {
		case free:
			parts[i] = "*"
		case atLower:
			parts[i] = "lo"
		case atUpper:
			parts[i] = "hi"
		}
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// enumerateFaces lists the faces to search, interior first, then in
// lexicographic order of (free, lower, upper) per coordinate.
// A point coordinate is always fixed.
func enumerateFaces(d interval.Vector, policy BoundaryPolicy) []face {
	choices := make([][]side, len(d))
	for i, iv := range d {
		switch {
		case iv.IsPoint():
			choices[i] = []side{atLower}
		case policy == BoundaryFaces:
			choices[i] = []side{free}
			if !math.IsInf(iv.Lo, 0) {
				choices[i] = append(choices[i], atLower)
			}
			if !math.IsInf(iv.Hi, 0) {
				choices[i] = append(choices[i], atUpper)
			}
		default:
			choices[i] = []side{free}
		}
	}

	var faces []face
	idx := make([]int, len(d))
	for {
		f := make(face, len(d))
		for i, k := range idx {
			f[i] = choices[i][k]
		}
		faces = append(faces, f)

		i := len(d) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(choices[i]) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return faces
		}
	}
}

// facePlan is the restricted problem of one face.
//   - fixed[i] is the exact value of coordinate i, or nil when it is solved for.
//   - free lists the solved coordinates; sub and box are f and d restricted to them.
type facePlan struct {
	face  face
	kind  Kind
	fixed []*big.Rat
	free  []int
	sub   *polynomial.Polynomial
	box   interval.Vector
}

// planFace substitutes the face's fixed coordinates, then pins every free
// coordinate the restricted objective does not depend on, and restricts the
// objective to what is left.
func planFace(p *polynomial.Polynomial, d interval.Vector, f face) (facePlan, error) {
	n := len(d)
	pl := facePlan{face: f, fixed: make([]*big.Rat, n)}

	g := p
	nfixed := 0
	for i, s := range f {
		var v float64
		switch s {
		case free:
			continue
		case atLower:
			v = d[i].Lo
		case atUpper:
			v = d[i].Hi
		}
		pl.fixed[i] = new(big.Rat).SetFloat64(v)
		g = g.Substitute(i, pl.fixed[i])
		nfixed++
	}
	switch {
	case nfixed == 0:
		pl.kind = Stationary
	case nfixed == n:
		pl.kind = Corner
	default:
		pl.kind = Face
	}

	for i, s := range f {
		if s != free || g.DependsOn(i) {
			continue
		}
		pl.fixed[i] = new(big.Rat).SetFloat64(representative(d[i]))
		g = g.Substitute(i, pl.fixed[i])
	}

	for i := range pl.fixed {
		if pl.fixed[i] == nil {
			pl.free = append(pl.free, i)
			pl.box = append(pl.box, d[i])
		}
	}
	if len(pl.free) == 0 {
		return pl, nil
	}
	sub, err := g.Restrict(pl.free)
	if err != nil {
		return facePlan{}, fmt.Errorf("face %v: %w", f, err)
	}
	pl.sub = sub

	return pl, nil
}

// representative picks the value a coordinate the objective ignores is
// pinned at: 0 when feasible, otherwise the finite bound nearest 0.
func representative(iv interval.Interval) float64 {
	switch {
	case iv.ContainsZero():
		return 0
	case iv.Lo > 0:
		return iv.Lo
	default:
		return iv.Hi
	}
}

// embed lifts a point over the free coordinates back to all n coordinates.
func (pl facePlan) embed(sol interval.Vector) interval.Vector {
	x := make(interval.Vector, len(pl.fixed))
	k := 0
	for i, v := range pl.fixed {
		if v != nil {
			x[i] = interval.FromRat(v)

			continue
		}
		x[i] = sol[k]
		k++
	}

	return x
}

// tagOf names the reference interval a fixed value lies in.
func tagOf(iv interval.Interval) domain.RegionTag {
	switch {
	case iv.Hi <= -1:
		return domain.NegativeUnbounded
	case iv.Lo >= 1:
		return domain.PositiveUnbounded
	default:
		return domain.Bounded
	}
}

// cornerCandidates applies the gradient sign test at the two extreme corners
// of a bounded domain: the lower corner is a candidate when every partial is
// certainly > 0 there, the upper corner when every partial is certainly < 0.
func cornerCandidates(grad []*polynomial.Polynomial, d interval.Vector) []interval.Vector {
	if !d.IsBounded() {
		return nil
	}
	var out []interval.Vector
	for _, c := range []struct {
		corner interval.Vector
		test   func(interval.Interval) interval.Tri
	}{
		{d.Lower(), interval.Positive},
		{d.Upper(), interval.Negative},
	} {
		signs := make([]interval.Tri, len(grad))
		for i, g := range grad {
			v, err := g.Evaluate(c.corner)
			if err != nil {
				signs[i] = interval.Indeterminate

				continue
			}
			signs[i] = c.test(v)
		}
		switch interval.And(signs...) {
		case interval.CertainlyTrue:
			out = append(out, c.corner)
		case interval.CertainlyFalse, interval.Indeterminate:
		}
	}

	return out
}
