// Package certmin finds certified global minima of multivariate polynomials
// with rational coefficients, over boxes that may be unbounded.
//
// 🚀 What is certmin?
//
//	A small stack of packages that turns "minimise f over D" into a finite
//	set of root-finding problems and solves them with guarantees:
//		• Interval arithmetic with outward rounding and three-valued comparison
//		• Exact rational polynomials: derivatives, substitution, x → 1/t
//		• A Krawczyk solver that certifies every root it reports
//		• Partitioning of ℝ into overlapping reference intervals
//		• Selection of the minimum that never guesses between ties
//
// ✨ Why certified?
//
//   - Every reported point encloses a true stationary point.
//   - Every reported value encloses f at that point.
//   - Comparisons that rounding cannot decide are reported as contenders,
//     never silently resolved.
//   - Regions where the solver gave up are reported, never mistaken for
//     "no roots".
//
// Packages:
//
//	interval/    Interval, Vector, Tri; outward-rounded arithmetic
//	polynomial/  exact rational polynomials and polynomial systems
//	matrix/      dense float matrices, LU, inverse (solver preconditioner)
//	solver/      Krawczyk interval Newton root finder over finite boxes
//	domain/      B1/B2/B3 partition and the reciprocal transform of boxes
//	optimise/    Minimise, MinimiseAll, boundary faces, config
//	cmd/certmin  command-line front end reading YAML problem files
//
// Quick example (f = x² + 2x over ℝ):
//
//	f := polynomial.MustNew(1,
//		polynomial.Term{Exponents: polynomial.Monomial{2}, Coefficient: big.NewRat(1, 1)},
//		polynomial.Term{Exponents: polynomial.Monomial{1}, Coefficient: big.NewRat(2, 1)},
//	)
//	res, _ := optimise.Minimise(f, nil)
//	// res.Point ≈ [-1], res.Value ∋ -1
//
//	go install github.com/katalvlaran/certmin/cmd/certmin@latest
package certmin
