// SPDX-License-Identifier: MIT

package optimise

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/certmin/interval"
	"github.com/katalvlaran/certmin/solver"
)

// Outcome classifies what the solver established for one subproblem.
type Outcome int

const (
	// OutcomeRoots: at least one certified stationary point.
	OutcomeRoots Outcome = iota
	// OutcomeNoRoots: the region was proved free of finite stationary points.
	OutcomeNoRoots
	// OutcomeNonConverged: some boxes stayed unresolved; the region
	// contributes no points, which is not a proof that it has none.
	OutcomeNonConverged
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case OutcomeRoots:
		return "roots"
	case OutcomeNoRoots:
		return "no-roots"
	case OutcomeNonConverged:
		return "non-converged"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// RegionReport describes one solved subproblem.
//   - Face/Region: which face of the domain and which region combination
//     of its free coordinates.
//   - Roots: certified roots mapped back to finite points.
//   - AtInfinity: roots or tolerance-sized boxes at t = 0 of an inverted
//     coordinate, i.e. "stationary points" at infinity, which are dropped.
type RegionReport struct {
	Face       string
	Region     string
	Outcome    Outcome
	Roots      int
	AtInfinity int
	Unresolved int
	Boxes      int
}

// Report summarises a MinimiseAll run.
type Report struct {
	Faces       int
	Subproblems int
	Regions     []RegionReport
	// Discarded counts points dropped after solving: outside the domain,
	// rejected by the second-derivative filter, or duplicates.
	Discarded int
}

// NonConverged returns the number of regions that gave up.
func (r Report) NonConverged() int {
	n := 0
	for _, rr := range r.Regions {
		if rr.Outcome == OutcomeNonConverged {
			n++
		}
	}

	return n
}

// findCriticalPoints solves one subproblem and returns its roots in original
// (un-inverted) coordinates of the subproblem's variables.
//
// Non-convergence is recovered locally: the region yields no points and is
// reported as OutcomeNonConverged. Only cancellation and misuse are errors.
func findCriticalPoints(ctx context.Context, s *solver.Solver, sp Subproblem, log *zap.Logger) ([]interval.Vector, RegionReport, error) {
	rep := RegionReport{Region: sp.String()}
	sol, err := s.SolveAll(ctx, sp.Functions, sp.Box)
	rep.Boxes = sol.Boxes
	if err != nil && !errors.Is(err, solver.ErrNonConvergence) {
		return nil, rep, err
	}

	for _, u := range sol.Unresolved {
		if u.Reason == solver.ReasonTolerance && atInfinity(u.Box, sp.Inverted) {
			rep.AtInfinity++

			continue
		}
		rep.Unresolved++
	}
	if rep.Unresolved > 0 {
		rep.Outcome = OutcomeNonConverged
		log.Warn("region did not converge; treating it as empty",
			zap.String("region", rep.Region),
			zap.Int("unresolved", rep.Unresolved),
			zap.Int("discarded_roots", len(sol.Roots)),
			zap.Int("boxes", sol.Boxes))

		return nil, rep, nil
	}

	points := make([]interval.Vector, 0, len(sol.Roots))
	for _, r := range sol.Roots {
		x, ok := uninvert(r, sp.Inverted)
		if !ok {
			rep.AtInfinity++

			continue
		}
		points = append(points, x)
	}
	rep.Roots = len(points)
	rep.Outcome = OutcomeNoRoots
	if len(points) > 0 {
		rep.Outcome = OutcomeRoots
	}
	log.Debug("region solved",
		zap.String("region", rep.Region),
		zap.Stringer("outcome", rep.Outcome),
		zap.Int("roots", rep.Roots),
		zap.Int("at_infinity", rep.AtInfinity),
		zap.Int("boxes", sol.Boxes))

	return points, rep, nil
}

// atInfinity reports whether box touches t = 0 in some inverted coordinate.
func atInfinity(box interval.Vector, inverted []bool) bool {
	for i, inv := range inverted {
		if inv && box[i].ContainsZero() {
			return true
		}
	}

	return false
}

// uninvert maps t back to x = 1/t in inverted coordinates; false when the
// enclosure contains t = 0.
func uninvert(r interval.Vector, inverted []bool) (interval.Vector, bool) {
	if atInfinity(r, inverted) {
		return nil, false
	}
	x := r.Clone()
	for i, inv := range inverted {
		if inv {
			x[i] = interval.Recip(r[i])
		}
	}

	return x, true
}
