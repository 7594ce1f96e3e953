// Package optimise computes certified global minima of multivariate
// polynomials over axis-aligned, possibly unbounded boxes.
//
// 🚀 What is in here?
//
//	Minimise(f, D)     → the certified minimiser and its value, or NoRealSolution;
//	MinimiseAll(f, D)  → every certified candidate, before reduction;
//	BuildSubproblems   → the per-region gradient systems, for inspection;
//	LoadConfig         → options from a YAML document.
//
// ⚙️ How it works:
//
//	Stage 1 – Faces: with BoundaryFaces every combination of coordinates fixed
//	          at a finite bound is a face; the objective is restricted to its
//	          free coordinates. Coordinates the restriction ignores are pinned.
//	Stage 2 – Partition: every free coordinate is split over B1/B2/B3; the
//	          unbounded pieces become bounded through t = 1/x.
//	Stage 3 – Subproblems: one gradient system per region combination, with
//	          the reciprocal transform applied to every inverted coordinate.
//	Stage 4 – Solve: a bounded worker pool runs the Krawczyk solver on every
//	          subproblem; unresolved regions are reported, not fatal.
//	Stage 5 – Assemble: roots are mapped back (x = 1/t), clipped to D,
//	          evaluated with interval arithmetic and de-duplicated.
//	Stage 6 – Select: the running best changes only on a CertainlyTrue
//	          comparison; candidates that cannot be ranked are Contenders.
//
// ✨ Guarantees:
//   - Every Candidate.Point encloses a point of D that is stationary on its
//     face, and Candidate.Value encloses f there. The exception is a Clipped
//     candidate: the solver's enclosure straddled the boundary of D and was
//     cut back to it, so Point holds the stationary point only when that
//     point lies in D. Value still encloses f over all of Point, so a
//     feasible minimum is never lost.
//   - Results are identical for any WithWorkers value.
//   - A region where the solver gave up is OutcomeNonConverged in Report,
//     never silently "no roots".
//
// Usage:
//
//	f := polynomial.MustNew(1,
//		polynomial.Term{Exponents: polynomial.Monomial{2}, Coefficient: big.NewRat(1, 1)},
//		polynomial.Term{Exponents: polynomial.Monomial{1}, Coefficient: big.NewRat(2, 1)},
//	)
//	res, err := optimise.Minimise(f, nil, optimise.WithWorkers(4))
//	// res.Point ≈ [-1], res.Value = [-1, -1]
package optimise
