// Package domain splits a (possibly unbounded) search box into bounded
// per-coordinate regions suitable for a finite-box root finder.
//
// Every coordinate interval D_i is intersected with three reference
// intervals, each widened by ε on its finite side(s):
//
//	B1 = (−∞, −1+ε]   B2 = [−1−ε, 1+ε]   B3 = [1−ε, +∞)
//
// A B1/B3 slice with an infinite endpoint is replaced by its outward-rounded
// reciprocal image (t = 1/x), which is bounded and touches t = 0 where x
// reaches ±∞; such regions are flagged Inverted. Bounded B1/B3 slices are
// kept as they are. The ε overlap makes a stationary point at exactly ±1 lie
// in the interior of some region, so a root finder that only certifies
// interior roots still sees it; duplicates are merged downstream.
package domain
