// Package matrix provides the small dense linear-algebra kernel used by the
// interval Newton solver.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set that
//     return sentinel errors instead of panicking.
//   - LU with partial pivoting (PA = LU), SolveVec and Inverse. The Krawczyk
//     operator needs the inverse of the midpoint Jacobian as a
//     preconditioner; its accuracy affects only how fast boxes contract,
//     never the soundness of the enclosure.
//   - WithPivotTolerance, so callers can declare a matrix singular relative
//     to its own scale instead of the absolute default.
//
// Matrices here are tiny (one row per unknown of the polynomial system), so
// the kernels favour clarity and determinism over blocking or SIMD.
package matrix
