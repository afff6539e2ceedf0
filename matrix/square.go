// SPDX-License-Identifier: MIT
// Package matrix: operations restricted to square matrices.
// Squareness is expressed by taking *Matrix[S, N, N], so calling any of these
// on a non-square matrix is a compile error.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

// Identity returns the N×N identity matrix.
func Identity[S scalar.Scalar, N vector.Dim[S]]() *Matrix[S, N, N] {
	m := New[S, N, N]()
	n := m.Rows()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m
}

// setDiagonal zeroes m and writes diag along the main diagonal.
func setDiagonal[S scalar.Scalar, N vector.Dim[S]](m *Matrix[S, N, N], diag N) {
	m.ensure()
	clear(m.data)
	n := len(diag)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = diag[i]
	}
}

// BecomeIdentity overwrites m with the identity. Returns ErrNilMatrix for nil m.
func BecomeIdentity[S scalar.Scalar, N vector.Dim[S]](m *Matrix[S, N, N]) error {
	if m == nil {
		return matrixErrorf(opIdentity, ErrNilMatrix)
	}
	setDiagonal(m, vector.Fill[S, N](1).Array())

	return nil
}

// BecomeScale overwrites m with diag(v): a per-axis scale with v on the
// diagonal and zeros elsewhere.
func BecomeScale[S scalar.Scalar, N vector.Dim[S]](m *Matrix[S, N, N], v vector.Vector[S, N]) error {
	if m == nil {
		return matrixErrorf(opBecomeScale, ErrNilMatrix)
	}
	setDiagonal(m, v.Array())

	return nil
}

// BecomeScaleHomogeneous overwrites m with diag(v, 1): an (N-1)-axis scale that
// leaves the homogeneous coordinate w unscaled.
// Returns ErrDimensionMismatch if len(E) != N-1.
func BecomeScaleHomogeneous[S scalar.Scalar, N vector.Dim[S], E vector.Dim[S]](m *Matrix[S, N, N], v vector.Vector[S, E]) error {
	if m == nil {
		return matrixErrorf(opScale, ErrNilMatrix)
	}
	if err := validateHomogeneous(v.Len(), m.Rows()); err != nil {
		return matrixErrorf(opScale, err)
	}
	full, _ := vector.Extend[N](v, 1) // length checked above
	setDiagonal(m, full.Array())

	return nil
}

// BecomeUniformScale overwrites m with diag(s, ..., s, 1): a uniform scale of
// the first N-1 axes leaving w unscaled.
func BecomeUniformScale[S scalar.Scalar, N vector.Dim[S]](m *Matrix[S, N, N], s S) error {
	if m == nil {
		return matrixErrorf(opUniformScale, ErrNilMatrix)
	}
	diag := vector.Fill[S, N](s).Array()
	diag[len(diag)-1] = 1
	setDiagonal(m, diag)

	return nil
}

// BecomeTranslation overwrites m with the homogeneous translation by t:
// the identity with t written into the first N-1 entries of the last row.
// Returns ErrDimensionMismatch if len(E) != N-1.
func BecomeTranslation[S scalar.Scalar, N vector.Dim[S], E vector.Dim[S]](m *Matrix[S, N, N], t vector.Vector[S, E]) error {
	if m == nil {
		return matrixErrorf(opTranslation, ErrNilMatrix)
	}
	n := m.Rows()
	if err := validateHomogeneous(t.Len(), n); err != nil {
		return matrixErrorf(opTranslation, err)
	}
	setDiagonal(m, vector.Fill[S, N](1).Array())
	tv := t.Array()
	last := (n - 1) * n
	for j := 0; j < n-1; j++ {
		m.data[last+j] = tv[j]
	}

	return nil
}

// Pow returns m^k by binary exponentiation.
//
// Implementation:
//   - Stage 1: k < 0 → ErrNegativeExponent; result = I, base = m.
//   - Stage 2: for each bit of k from the lowest: if set, result = result·base;
//     then base = base·base.
//
// Behavior highlights:
//   - Pow(m, 0) == I, Pow(m, 1) == m, Pow(I, k) == I.
//   - m is not mutated.
//
// Complexity:
//   - O(log k) matrix products, each O(N³).
func Pow[S scalar.Scalar, N vector.Dim[S]](m *Matrix[S, N, N], k int) (*Matrix[S, N, N], error) {
	if k < 0 {
		return nil, matrixErrorf(opPow, fmt.Errorf("k=%d: %w", k, ErrNegativeExponent))
	}
	result := Identity[S, N]()
	base := m.Clone()
	for k > 0 {
		if k&1 == 1 {
			result = Mul(result, base)
		}
		k >>= 1
		if k > 0 {
			base = Mul(base, base)
		}
	}

	return result, nil
}

// Trace returns the sum of the diagonal.
func Trace[S scalar.Scalar, N vector.Dim[S]](m *Matrix[S, N, N]) S {
	var sum S
	n := m.Rows()
	for i := 0; i < n; i++ {
		sum += m.at(i, i)
	}

	return sum
}
