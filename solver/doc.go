// Package solver finds every root of a square polynomial system inside a
// finite box and certifies each one with the Krawczyk interval-Newton test.
//
// Algorithm (per box X, depth-first):
//
//  1. Exclusion: if some component F_i(X) certainly excludes 0, X holds no root.
//  2. Krawczyk operator, with m = mid(X) and Y ≈ mid(J(X))⁻¹:
//
//     K(X) = m − Y·F(m) + (I − Y·J(X))·(X − m)
//
//     K(X) ⊂ int(X) proves exactly one root in X (and in K); K ∩ X = ∅ proves
//     none. Otherwise X ← K ∩ X while that keeps shrinking the box.
//  3. Boxes that stop contracting are bisected along their widest coordinate.
//  4. Boxes narrower than Tolerance get a last chance through ε-inflation
//     around the box; failing that they are reported as Unresolved.
//
// Verified roots are refined by iterating K for up to MaxIterations steps.
// The search stops after MaxBoxes boxes; anything left is Unresolved with
// ReasonBudget. Whenever Unresolved is non-empty SolveAll returns the partial
// Solution together with ErrNonConvergence, so callers can tell "proved
// root-free" from "gave up".
//
// The Jacobian preconditioner comes from matrix.Inverse, with a pivot
// threshold scaled to the midpoint Jacobian; a box whose midpoint Jacobian is
// numerically singular is bisected instead. Its accuracy only affects how
// quickly boxes contract, never the soundness of an enclosure.
package solver
