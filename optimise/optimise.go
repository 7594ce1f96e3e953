// SPDX-License-Identifier: MIT

package optimise

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/certmin/domain"
	"github.com/katalvlaran/certmin/interval"
	"github.com/katalvlaran/certmin/polynomial"
	"github.com/katalvlaran/certmin/solver"
)

const (
	opMinimise    = "Minimise"
	opMinimiseAll = "MinimiseAll"
)

// Minimise returns the certified global minimum of p over d (nil means the
// full space). A problem without certifiable candidates is not an error: it
// yields Status NoRealSolution.
//
// Errors: ErrNilPolynomial, ErrNoVariables, ErrDimensionMismatch,
// ErrInvalidDomain, ErrInvalidOption.
func Minimise(p *polynomial.Polynomial, d interval.Vector, opts ...Option) (Result, error) {
	return MinimiseContext(context.Background(), p, d, opts...)
}

// MinimiseContext is Minimise with cancellation.
func MinimiseContext(ctx context.Context, p *polynomial.Polynomial, d interval.Vector, opts ...Option) (Result, error) {
	cands, rep, err := MinimiseAllContext(ctx, p, d, opts...)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opMinimise, err)
	}
	res := selectMinimum(cands)
	res.Report = rep

	return res, nil
}

// MinimiseAll returns every certified candidate (stationary points and, per
// the boundary policy, face and corner points) in deterministic order,
// before global reduction, together with a per-region report.
func MinimiseAll(p *polynomial.Polynomial, d interval.Vector, opts ...Option) ([]Candidate, Report, error) {
	return MinimiseAllContext(context.Background(), p, d, opts...)
}

// task is one subproblem of one face.
type task struct {
	plan int
	sp   Subproblem
}

// taskResult is written by exactly one worker.
type taskResult struct {
	points []interval.Vector
	report RegionReport
}

// MinimiseAllContext is MinimiseAll with cancellation.
//
// Pipeline:
//  1. enumerate faces (boundary policy) and plan each: fix, pin, restrict;
//  2. partition each restricted domain and build its subproblems;
//  3. solve all subproblems on a bounded worker pool;
//  4. embed roots back into n coordinates, clip to d, evaluate f, filter,
//     merge duplicates.
func MinimiseAllContext(ctx context.Context, p *polynomial.Polynomial, d interval.Vector, opts ...Option) ([]Candidate, Report, error) {
	var rep Report
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, rep, fmt.Errorf("%s: %w", opMinimiseAll, err)
	}
	d, err = checkProblem(p, d)
	if err != nil {
		return nil, rep, fmt.Errorf("%s: %w", opMinimiseAll, err)
	}
	slv, err := solver.New(solver.WithOptions(o.solver))
	if err != nil {
		return nil, rep, fmt.Errorf("%s: %w: %w", opMinimiseAll, ErrInvalidOption, err)
	}
	log := o.logger.With(zap.String("objective", p.String()))
	start := time.Now()

	// 1–2: plans and tasks, in deterministic order.
	faces := enumerateFaces(d, o.boundary)
	plans := make([]facePlan, 0, len(faces))
	var tasks []task
	for _, f := range faces {
		pl, err := planFace(p, d, f)
		if err != nil {
			return nil, rep, fmt.Errorf("%s: %w", opMinimiseAll, err)
		}
		plans = append(plans, pl)
		if len(pl.free) == 0 {
			continue
		}
		sps, err := BuildSubproblems(pl.sub, pl.box, domain.WithOverlap(o.overlap))
		if err != nil {
			return nil, rep, fmt.Errorf("%s: face %v: %w", opMinimiseAll, f, err)
		}
		for _, sp := range sps {
			tasks = append(tasks, task{plan: len(plans) - 1, sp: sp})
		}
	}
	rep.Faces = len(plans)
	rep.Subproblems = len(tasks)
	log.Debug("planned", zap.Int("faces", len(plans)), zap.Int("subproblems", len(tasks)),
		zap.Int("workers", o.workers), zap.Stringer("boundary", o.boundary))

	// 3: solve. Each worker owns results[i]; nothing else is shared.
	results := make([]taskResult, len(tasks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, t := range tasks {
		i, t := i, t
		g.Go(func() error {
			flog := log.With(zap.Stringer("face", plans[t.plan].face))
			pts, rr, err := findCriticalPoints(gctx, slv, t.sp, flog)
			if err != nil {
				return fmt.Errorf("face %v region %v: %w", plans[t.plan].face, t.sp, err)
			}
			rr.Face = plans[t.plan].face.String()
			results[i] = taskResult{points: pts, report: rr}

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, rep, fmt.Errorf("%s: %w", opMinimiseAll, err)
	}

	// 4: assemble.
	asm := newAssembler(p, d, o.secondDerivative)
	next := 0
	for pi, pl := range plans {
		if len(pl.free) == 0 {
			x := pl.embed(nil)
			asm.add(pl, x, nil)

			continue
		}
		for ; next < len(tasks) && tasks[next].plan == pi; next++ {
			res := results[next]
			rep.Regions = append(rep.Regions, res.report)
			for _, pt := range res.points {
				asm.add(pl, pl.embed(pt), tasks[next].sp.Tags)
			}
		}
	}
	if o.boundary == BoundaryCorners {
		for _, c := range cornerCandidates(asm.grad, d) {
			asm.addCorner(c)
		}
	}
	rep.Discarded = asm.discarded

	log.Info("minimise_all finished",
		zap.Int("candidates", len(asm.out)),
		zap.Int("faces", rep.Faces),
		zap.Int("subproblems", rep.Subproblems),
		zap.Int("non_converged", rep.NonConverged()),
		zap.Int("discarded", rep.Discarded),
		zap.Duration("elapsed", time.Since(start)))

	return asm.out, rep, nil
}

// assembler turns embedded points into candidates, in insertion order.
type assembler struct {
	p         *polynomial.Polynomial
	d         interval.Vector
	grad      []*polynomial.Polynomial
	curvature []*polynomial.Polynomial // ∂²f/∂x_i², only with the filter on
	out       []Candidate
	discarded int
}

func newAssembler(p *polynomial.Polynomial, d interval.Vector, secondDerivative bool) *assembler {
	a := &assembler{p: p, d: d, grad: make([]*polynomial.Polynomial, p.NumVariables())}
	for i := range a.grad {
		a.grad[i] = p.Derivative(i)
	}
	if secondDerivative {
		a.curvature = make([]*polynomial.Polynomial, len(a.grad))
		for i, g := range a.grad {
			a.curvature[i] = g.Derivative(i)
		}
	}

	return a
}

// add records the point x found on plan pl; freeTags are the region tags of
// pl's free coordinates (nil when there are none).
func (a *assembler) add(pl facePlan, x interval.Vector, freeTags []domain.RegionTag) {
	clipped := !x.Subset(a.d)
	x, ok := x.Intersect(a.d)
	if !ok {
		a.discarded++

		return
	}
	if !a.convexEnough(pl, x) {
		a.discarded++

		return
	}
	tags := make([]domain.RegionTag, len(x))
	k := 0
	for i, v := range pl.fixed {
		if v != nil {
			tags[i] = tagOf(x[i])

			continue
		}
		tags[i] = freeTags[k]
		k++
	}
	a.insert(Candidate{Point: x, Value: a.value(x), Kind: pl.kind, Tags: tags, Clipped: clipped})
}

// addCorner records a corner proved optimal by the gradient sign test.
func (a *assembler) addCorner(x interval.Vector) {
	tags := make([]domain.RegionTag, len(x))
	for i := range x {
		tags[i] = tagOf(x[i])
	}
	a.insert(Candidate{Point: x, Value: a.value(x), Kind: Corner, Tags: tags})
}

func (a *assembler) value(x interval.Vector) interval.Interval {
	v, err := a.p.Evaluate(x)
	if err != nil {
		// dimensions are checked up front; an error here leaves the
		// candidate uncertifiable so the selector drops it
		return interval.Interval{Lo: math.NaN(), Hi: math.NaN()}
	}

	return v
}

// convexEnough applies the optional second-derivative filter over the free
// coordinates of the plan: a point is dropped only when some ∂²f/∂x_i² is
// certainly ≤ 0; an indeterminate sign keeps it.
func (a *assembler) convexEnough(pl facePlan, x interval.Vector) bool {
	if a.curvature == nil {
		return true
	}
	for _, i := range pl.free {
		v, err := a.curvature[i].Evaluate(x)
		if err != nil {
			continue
		}
		switch interval.Positive(v) {
		case interval.CertainlyFalse:
			return false
		case interval.CertainlyTrue, interval.Indeterminate:
		}
	}

	return true
}

// insert merges x with an earlier candidate whose enclosure overlaps it in
// every coordinate, keeping the narrower of the two.
func (a *assembler) insert(c Candidate) {
	for i, old := range a.out {
		if !old.Point.Overlaps(c.Point) {
			continue
		}
		if c.Point.MaxWidth() < old.Point.MaxWidth() {
			a.out[i] = c
		}
		a.discarded++

		return
	}
	a.out = append(a.out, c)
}
