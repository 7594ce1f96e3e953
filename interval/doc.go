// Package interval is a small validated-numerics kernel: closed intervals of
// float64 with outward rounding, boxes (vectors of intervals) and
// three-valued comparisons.
//
// 🚀 What is a validated number?
//
//	An Interval [lo, hi] is a rigorous enclosure of an unknown real. Every
//	arithmetic operation returns an interval that is guaranteed to contain
//	the exact result for every choice of operands inside the inputs:
//	  • results are rounded outward (lo towards −∞, hi towards +∞);
//	  • exact float results are detected (TwoSum / FMA residuals) and kept tight;
//	  • ±Inf bounds are legal, so (−∞, ∞) is an ordinary Interval.
//
// ✨ Three-valued logic:
//
//	Comparing enclosures is not boolean. Less, Positive and Negative return a
//	Tri: CertainlyTrue, CertainlyFalse or Indeterminate. Callers must handle
//	all three arms; Indeterminate is a legitimate outcome, not an error.
//
// ⚙️ Usage:
//
//	x := interval.Point(2)
//	y, _ := interval.New(-1, 3)
//	z := interval.Mul(x, y)            // [-2, 6]
//	if interval.Positive(z).Definitely() { ... }
//
// The empty interval is a distinguished invalid value (see Empty); it is
// never a member of a Vector built with NewVector.
package interval
