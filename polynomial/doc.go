// Package polynomial implements exact sparse multivariate polynomials with
// rational coefficients and their validated (interval) evaluation.
//
// 🚀 What is in here?
//
//	A Polynomial maps exponent tuples to nonzero *big.Rat coefficients:
//	  • algebra: Add, Sub, Mul, Neg, Scale, Pow, exact Quo;
//	  • calculus: Derivative(n) with exact coefficients;
//	  • the reciprocal ("polynomial") trick: EvaluateAtReciprocal(n) returns
//	    q(x) = x_n^d · p(…, 1/x_n, …), a polynomial again, so roots over an
//	    unbounded interval become roots over a bounded one;
//	  • validated evaluation over interval boxes (Evaluate);
//	  • System: n polynomials in n unknowns plus their exact Jacobian,
//	    ready for an interval Newton solver.
//
// ✨ Guarantees:
//   - Immutable values: every operation returns a new *Polynomial.
//   - Zero coefficients are never stored; equal exponents are merged.
//   - Deterministic term order (graded, then lexicographic), so String and
//     Terms are stable.
//
// ⚙️ Usage:
//
//	// f(x, y) = (x − 2)² + (y + 3)²
//	x, y := polynomial.Variable(2, 0), polynomial.Variable(2, 1)
//	fx, _ := x.Sub(polynomial.Constant(2, big.NewRat(2, 1)))
//	fy, _ := y.Add(polynomial.Constant(2, big.NewRat(3, 1)))
//	f, _ := fx.Pow(2).Add(fy.Pow(2))
//	df := f.Derivative(0) // 2x − 4
//
// Parsing polynomials from strings is deliberately left to front ends; this
// package only consumes exponent→coefficient data (see Term).
package polynomial
