// SPDX-License-Identifier: MIT

package solver

import (
	"math"

	"github.com/katalvlaran/certmin/interval"
	"github.com/katalvlaran/certmin/matrix"
)

// preconditioner returns Y ≈ mid(J)⁻¹ as plain rows, or false when the
// midpoint matrix is not finite or numerically singular. A pivot counts as
// zero once it falls below n·ulp(1)·max|mid(J)|, the size of the rounding
// noise elimination leaves behind.
func preconditioner(j [][]interval.Interval) ([][]float64, bool) {
	n := len(j)
	rows := make([][]float64, n)
	scale := 0.0
	for r := 0; r < n; r++ {
		rows[r] = make([]float64, n)
		for c := 0; c < n; c++ {
			if !j[r][c].Certifiable() {
				return nil, false
			}
			rows[r][c] = j[r][c].Mid()
			scale = math.Max(scale, math.Abs(rows[r][c]))
		}
	}
	mid, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, false
	}
	inv, err := matrix.Inverse(mid, matrix.WithPivotTolerance(float64(n)*0x1p-52*scale))
	if err != nil {
		return nil, false
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if rows[r][c], err = inv.At(r, c); err != nil {
				return nil, false
			}
		}
	}

	return rows, true
}

// krawczyk evaluates K(X) = m − Y·F(m) + (I − Y·J(X))·(X − m).
// It returns false when the operator cannot be formed (singular or
// non-finite preconditioner, NaN enclosures).
func krawczyk(f Func, x interval.Vector) (interval.Vector, bool) {
	n := len(x)
	m := x.Mid()
	fm := f.Eval(interval.Points(m))
	jx := f.Jacobian(x)

	y, ok := preconditioner(jx)
	if !ok {
		return nil, false
	}

	dx := x.Sub(interval.Points(m))
	k := make(interval.Vector, n)
	for i := 0; i < n; i++ {
		acc := interval.Point(m[i])
		for j := 0; j < n; j++ {
			acc = interval.Sub(acc, interval.Mul(interval.Point(y[i][j]), fm[j]))
		}
		for j := 0; j < n; j++ {
			// (I − Y·J)_ij
			c := interval.Point(0)
			if i == j {
				c = interval.Point(1)
			}
			for l := 0; l < n; l++ {
				c = interval.Sub(c, interval.Mul(interval.Point(y[i][l]), jx[l][j]))
			}
			acc = interval.Add(acc, interval.Mul(c, dx[j]))
		}
		if acc.IsNaN() || acc.IsEmpty() || math.IsInf(acc.Lo, 0) || math.IsInf(acc.Hi, 0) {
			return nil, false
		}
		k[i] = acc
	}

	return k, true
}

// excludes reports whether some component of F(X) certainly misses zero.
func excludes(f Func, x interval.Vector) bool {
	for _, v := range f.Eval(x) {
		if interval.Positive(v).Definitely() || interval.Negative(v).Definitely() {
			return true
		}
	}

	return false
}

// hull returns the coordinate-wise hull of two boxes of equal dimension.
func hull(a, b interval.Vector) interval.Vector {
	out := make(interval.Vector, len(a))
	for i := range a {
		out[i] = interval.Hull(a[i], b[i])
	}

	return out
}

// widthSum is the sum of coordinate widths, used as the contraction measure.
func widthSum(x interval.Vector) float64 {
	s := 0.0
	for _, iv := range x {
		s += iv.Width()
	}

	return s
}
