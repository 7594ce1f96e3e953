// SPDX-License-Identifier: MIT
// Package matrix: LU factorisation and the kernels built on it.
//
// Contract:
//   - All kernels use central validators and return plain sentinels wrapped
//     via matrixErrorf with an operation tag.
//   - Loop orders are fixed (i→j→k); results are reproducible bit-for-bit.
//   - Inputs are never mutated; outputs are freshly allocated.

package matrix

import (
	"fmt"
	"math"
)

// Operation tags for error wrapping.
const (
	opLU      = "LU"
	opSolve   = "Solve"
	opInverse = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// LU is a packed PA = LU factorisation. L is unit lower triangular and shares
// storage with U: entries below the diagonal belong to L, the rest to U.
type LU struct {
	n    int
	lu   []float64 // row-major n×n
	perm []int     // perm[i] = original row placed at position i
}

// denseData returns a row-major snapshot of m, using the backing buffer for *Dense.
func denseData(m Matrix) ([]float64, error) {
	if d, ok := m.(*Dense); ok {
		out := make([]float64, len(d.data))
		copy(out, d.data)

		return out, nil
	}
	r, c := m.Rows(), m.Cols()
	out := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out[i*c+j] = v
		}
	}

	return out, nil
}

// Factorize computes PA = LU with partial (row) pivoting.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare from validation.
//   - ErrNaNInf if the input holds a non-finite value.
//   - ErrSingular if some column has no pivot above the tolerance.
//
// Complexity: O(n³) time, O(n²) space.
func Factorize(m Matrix, opts ...Option) (*LU, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)

	a, err := denseData(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	for _, v := range a {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, matrixErrorf(opLU, ErrNaNInf)
		}
	}

	n := m.Rows()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	for k := 0; k < n; k++ {
		// pick the largest |a[i][k]| for i ≥ k; ties keep the lowest row
		p, best := k, math.Abs(a[k*n+k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(a[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best <= o.pivotTolerance {
			return nil, matrixErrorf(opLU, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		if p != k {
			for j := 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}

		pivot := a[k*n+k]
		for i := k + 1; i < n; i++ {
			l := a[i*n+k] / pivot
			a[i*n+k] = l
			if l == 0 {
				continue
			}
			for j := k + 1; j < n; j++ {
				a[i*n+j] -= l * a[k*n+j]
			}
		}
	}

	return &LU{n: n, lu: a, perm: perm}, nil
}

// SolveVec solves A·x = b using the factorisation.
func (f *LU) SolveVec(b []float64) ([]float64, error) {
	if err := ValidateVecLen(b, f.n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := f.n
	x := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = b[f.perm[i]]
	}
	// forward: L·y = Pb (unit diagonal)
	for i := 0; i < n; i++ {
		s := x[i]
		for j := 0; j < i; j++ {
			s -= f.lu[i*n+j] * x[j]
		}
		x[i] = s
	}
	// backward: U·x = y
	for i := n - 1; i >= 0; i-- {
		s := x[i]
		for j := i + 1; j < n; j++ {
			s -= f.lu[i*n+j] * x[j]
		}
		x[i] = s / f.lu[i*n+i]
	}

	return x, nil
}

// Inverse returns A⁻¹ by solving A·X = I column by column.
//
// Errors: as Factorize, wrapped with the Inverse tag.
//
// Complexity: O(n³).
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	f, err := Factorize(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := f.n
	out, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	e := make([]float64, n)
	for j := 0; j < n; j++ {
		for i := range e {
			e[i] = 0
		}
		e[j] = 1
		col, err := f.SolveVec(e)
		if err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		for i := 0; i < n; i++ {
			if math.IsNaN(col[i]) || math.IsInf(col[i], 0) {
				return nil, matrixErrorf(opInverse, ErrSingular)
			}
			out.data[i*n+j] = col[i]
		}
	}

	return out, nil
}
