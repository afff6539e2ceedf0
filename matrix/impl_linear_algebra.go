// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels.
//
// Purpose:
//   - Element-wise Add/Sub/Neg/Scale, matrix product, row-vector product, transpose.
//
// Notes:
//   - Operand shapes are type parameters, so every kernel here is total:
//     a 4x2 times a 4x4 does not compile.
//   - Results are freshly allocated; operands are never mutated except by InPlace forms.
//   - Loops are fixed i→k→j (or flat 0..n-1) for deterministic rounding.

package matrix

import (
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

// Add returns a+b.
// Complexity: O(R*C).
func Add[S scalar.Scalar, R vector.Dim[S], C vector.Dim[S]](a, b *Matrix[S, R, C]) *Matrix[S, R, C] {
	out := a.Clone()
	bd := b.values()
	if bd == nil {
		return out
	}
	for idx := range out.data {
		out.data[idx] += bd[idx]
	}

	return out
}

// Sub returns a-b. For unsigned scalars the result wraps like Go arithmetic.
// Complexity: O(R*C).
func Sub[S scalar.Scalar, R vector.Dim[S], C vector.Dim[S]](a, b *Matrix[S, R, C]) *Matrix[S, R, C] {
	out := a.Clone()
	bd := b.values()
	if bd == nil {
		return out
	}
	for idx := range out.data {
		out.data[idx] -= bd[idx]
	}

	return out
}

// Neg returns -m.
func Neg[S scalar.Scalar, R vector.Dim[S], C vector.Dim[S]](m *Matrix[S, R, C]) *Matrix[S, R, C] {
	out := m.Clone()
	for idx := range out.data {
		out.data[idx] = -out.data[idx]
	}

	return out
}

// Scale returns m with every element multiplied by s.
func Scale[S scalar.Scalar, R vector.Dim[S], C vector.Dim[S]](m *Matrix[S, R, C], s S) *Matrix[S, R, C] {
	out := m.Clone()
	for idx := range out.data {
		out.data[idx] *= s
	}

	return out
}

// AddInPlace sets m = m+b. Returns ErrNilMatrix if m is nil.
func (m *Matrix[S, R, C]) AddInPlace(b *Matrix[S, R, C]) error {
	if m == nil {
		return matrixErrorf(opAddInPlace, ErrNilMatrix)
	}
	m.ensure()
	bd := b.values()
	if bd == nil {
		return nil
	}
	for idx := range m.data {
		m.data[idx] += bd[idx]
	}

	return nil
}

// SubInPlace sets m = m-b. Returns ErrNilMatrix if m is nil.
func (m *Matrix[S, R, C]) SubInPlace(b *Matrix[S, R, C]) error {
	if m == nil {
		return matrixErrorf(opSubInPlace, ErrNilMatrix)
	}
	m.ensure()
	bd := b.values()
	if bd == nil {
		return nil
	}
	for idx := range m.data {
		m.data[idx] -= bd[idx]
	}

	return nil
}

// Mul returns the matrix product a·b (row-times-column dot products).
// The shared dimension K is a type parameter, so mismatched operands are a
// compile error and the result shape is R×C.
//
// Implementation:
//   - Stage 1: allocate the R×C result.
//   - Stage 2: i→k→j loops over the flat buffers. For integer scalars zero
//     entries of a are skipped; float scalars always multiply so that 0·Inf
//     and 0·NaN propagate NaN as IEEE-754 requires.
//
// Behavior highlights:
//   - Under the row-vector convention used by MulVec, Mul(A, B) applies A first, then B.
//
// Complexity:
//   - Time O(R*K*C), Space O(R*C).
func Mul[S scalar.Scalar, R vector.Dim[S], K vector.Dim[S], C vector.Dim[S]](a *Matrix[S, R, K], b *Matrix[S, K, C]) *Matrix[S, R, C] {
	res := New[S, R, C]()
	ad, bd := a.values(), b.values()
	if ad == nil || bd == nil {
		return res
	}
	aRows, aCols := a.Shape()
	bCols := b.Cols()
	var (
		i, k, j                            int
		av                                 S
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	skipZero := !scalar.IsFloat[S]()
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = ad[rowOffsetA+k]
			if skipZero && av == 0 {
				continue
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * bd[rowOffsetB+j]
			}
		}
	}

	return res
}

// MulVec multiplies the row vector v by m: r[n] = Σ_k v[k]·m[k][n].
// With this convention a translation lives in the last row of a homogeneous
// matrix and transforms compose left to right: MulVec(Mul(A, B), v) equals
// MulVec(B, MulVec(A, v)).
//
// Complexity: O(R*C).
func MulVec[S scalar.Scalar, R vector.Dim[S], C vector.Dim[S]](m *Matrix[S, R, C], v vector.Vector[S, R]) vector.Vector[S, C] {
	var out C
	in := v.Array()
	rows, cols := m.Shape()
	var k, n int
	for n = 0; n < cols; n++ {
		var sum S
		for k = 0; k < rows; k++ {
			sum += m.at(k, n) * in[k]
		}
		out[n] = sum
	}

	return vector.FromArray[S](out)
}

// Transposed returns mᵀ as a new C×R matrix; m is not mutated.
// Complexity: O(R*C).
func Transposed[S scalar.Scalar, R vector.Dim[S], C vector.Dim[S]](m *Matrix[S, R, C]) *Matrix[S, C, R] {
	res := New[S, C, R]()
	rows, cols := m.Shape()
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.at(i, j)
		}
	}

	return res
}

// Transpose transposes a square matrix in place by swapping (i,j) and (j,i)
// above the diagonal. Returns ErrNilMatrix for a nil matrix.
func Transpose[S scalar.Scalar, N vector.Dim[S]](m *Matrix[S, N, N]) error {
	if m == nil {
		return matrixErrorf(opTranspose, ErrNilMatrix)
	}
	m.ensure()
	n := m.Rows()
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			m.data[i*n+j], m.data[j*n+i] = m.data[j*n+i], m.data[i*n+j]
		}
	}

	return nil
}
