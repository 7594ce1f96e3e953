// SPDX-License-Identifier: MIT

package solver

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/certmin/interval"
)

const opSolveAll = "SolveAll"

// contractionRatio is the width-sum ratio below which a Krawczyk step counts
// as progress; slower boxes are bisected instead.
const contractionRatio = 0.9

// inflationFactor scales the ε-inflation radius relative to the box width.
const inflationFactor = 0.1

// Func is a square system F: Rⁿ → Rⁿ with an interval Jacobian.
// *polynomial.System satisfies it.
type Func interface {
	Dimension() int
	Eval(x interval.Vector) interval.Vector
	Jacobian(x interval.Vector) [][]interval.Interval
}

// Reason explains why a box was left unresolved.
type Reason int

const (
	// ReasonTolerance: the box shrank below Tolerance without a verdict.
	ReasonTolerance Reason = iota
	// ReasonBudget: the MaxBoxes budget ran out before the box was examined.
	ReasonBudget
)

// String implements fmt.Stringer.
func (r Reason) String() string {
	switch r {
	case ReasonTolerance:
		return "tolerance"
	case ReasonBudget:
		return "budget"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// UnresolvedBox is a box that may or may not hold roots.
type UnresolvedBox struct {
	Box    interval.Vector
	Reason Reason
}

// Solution collects the outcome of SolveAll.
//   - Roots: pairwise disjoint enclosures, each holding exactly one root.
//   - Unresolved: boxes without a verdict.
//   - Boxes: number of boxes examined.
type Solution struct {
	Roots      []interval.Vector
	Unresolved []UnresolvedBox
	Boxes      int
}

// Solver is a configured Krawczyk solver. It is stateless between calls and
// safe for concurrent use.
type Solver struct {
	opts Options
}

// New returns a Solver with defaults overridden by opts.
//
// Errors: ErrInvalidOption.
func New(opts ...Option) (*Solver, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return &Solver{opts: o}, nil
}

// Options returns the resolved configuration.
func (s *Solver) Options() Options { return s.opts }

// verdict of contracting a single box.
type verdict int

const (
	verdictEmpty verdict = iota
	verdictRoot
	verdictSplit
)

// SolveAll returns every root of f inside box.
//
// Errors:
//   - ErrNilFunc, ErrDimensionMismatch, ErrUnboundedDomain (nothing searched).
//   - ErrNonConvergence with the partial Solution when Unresolved is non-empty.
//   - ctx.Err() (wrapped) when the context is cancelled mid-search.
//
// Complexity: bounded by MaxBoxes · O(n³) per box.
func (s *Solver) SolveAll(ctx context.Context, f Func, box interval.Vector) (Solution, error) {
	var sol Solution
	if f == nil {
		return sol, fmt.Errorf("%s: %w", opSolveAll, ErrNilFunc)
	}
	if len(box) != f.Dimension() || len(box) == 0 {
		return sol, fmt.Errorf("%s: box has %d coordinates, system %d: %w",
			opSolveAll, len(box), f.Dimension(), ErrDimensionMismatch)
	}
	for i, iv := range box {
		if iv.IsEmpty() || !iv.IsBounded() {
			return sol, fmt.Errorf("%s: coordinate %d is %v: %w", opSolveAll, i, iv, ErrUnboundedDomain)
		}
	}

	stack := []interval.Vector{box.Clone()}
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return sol, fmt.Errorf("%s: %w", opSolveAll, err)
		}
		if sol.Boxes >= s.opts.MaxBoxes {
			for i := len(stack) - 1; i >= 0; i-- {
				sol.Unresolved = append(sol.Unresolved, UnresolvedBox{Box: stack[i], Reason: ReasonBudget})
			}
			break
		}
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		sol.Boxes++

		v, y := s.contract(f, x)
		switch v {
		case verdictEmpty:
			continue
		case verdictRoot:
			sol.addRoot(s.refine(f, y))
		case verdictSplit:
			if y.MaxWidth() <= s.opts.Tolerance {
				s.resolveTiny(f, y, box, &sol)
				continue
			}
			left, right := y.Bisect(y.WidestDimension())
			// right first so the lower half is examined first
			stack = append(stack, right, left)
		}
	}

	slices.SortFunc(sol.Roots, compareBoxes)
	if len(sol.Unresolved) > 0 {
		return sol, fmt.Errorf("%s: %d unresolved boxes: %w", opSolveAll, len(sol.Unresolved), ErrNonConvergence)
	}

	return sol, nil
}

// contract runs Krawczyk steps on x until it proves a verdict or stalls.
// The returned box is the root enclosure (verdictRoot) or the contracted box
// to split (verdictSplit).
func (s *Solver) contract(f Func, x interval.Vector) (verdict, interval.Vector) {
	for it := 0; it < s.opts.MaxIterations; it++ {
		if excludes(f, x) {
			return verdictEmpty, nil
		}
		k, ok := krawczyk(f, x)
		if !ok {
			return verdictSplit, x
		}
		if k.Interior(x) {
			return verdictRoot, k
		}
		kx, ok := k.Intersect(x)
		if !ok {
			return verdictEmpty, nil
		}
		before, after := widthSum(x), widthSum(kx)
		x = kx
		if !(after < contractionRatio*before) {
			break
		}
	}

	return verdictSplit, x
}

// refine tightens a verified enclosure by iterating K ∩ X.
func (s *Solver) refine(f Func, x interval.Vector) interval.Vector {
	for it := 0; it < s.opts.MaxIterations; it++ {
		k, ok := krawczyk(f, x)
		if !ok {
			break
		}
		kx, ok := k.Intersect(x)
		if !ok {
			break
		}
		if !(widthSum(kx) < widthSum(x)) {
			break
		}
		x = kx
	}

	return x
}

// resolveTiny handles a box below tolerance: either it lies in a known root
// enclosure, or ε-inflation proves a unique root in a neighbourhood of it,
// or it is reported unresolved.
func (s *Solver) resolveTiny(f Func, x, search interval.Vector, sol *Solution) {
	for _, r := range sol.Roots {
		if x.Subset(r) {
			return
		}
	}

	y := x
	for it := 0; it < s.opts.MaxIterations; it++ {
		y = y.Inflate(inflationRadius(y, s.opts.Tolerance))
		k, ok := krawczyk(f, y)
		if !ok {
			break
		}
		if k.Interior(y) {
			// y ⊇ x, so any root in x is the unique root in k
			if k.Overlaps(search) {
				sol.addRoot(s.refine(f, k))
			}

			return
		}
		if _, ok = k.Intersect(y); !ok {
			// y ⊇ x holds no root
			return
		}
		y = hull(k, y)
	}
	sol.Unresolved = append(sol.Unresolved, UnresolvedBox{Box: x, Reason: ReasonTolerance})
}

// inflationRadius grows with the box but never drops to zero for point boxes.
func inflationRadius(x interval.Vector, tol float64) float64 {
	r := inflationFactor * x.MaxWidth()
	floor := tol * 1e-3
	for _, iv := range x {
		if m := iv.Mag() * 0x1p-40; m > floor {
			floor = m
		}
	}

	return math.Max(r, floor)
}

// addRoot keeps root enclosures pairwise disjoint: of two overlapping
// enclosures the narrower one survives.
func (sol *Solution) addRoot(r interval.Vector) {
	for i, old := range sol.Roots {
		if old.Overlaps(r) {
			if r.MaxWidth() < old.MaxWidth() {
				sol.Roots[i] = r
			}

			return
		}
	}
	sol.Roots = append(sol.Roots, r)
}

// compareBoxes orders boxes lexicographically by lower bounds.
func compareBoxes(a, b interval.Vector) int {
	for i := range a {
		switch {
		case a[i].Lo < b[i].Lo:
			return -1
		case a[i].Lo > b[i].Lo:
			return 1
		}
	}

	return 0
}
