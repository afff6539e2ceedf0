// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small deterministic fixtures and a naive reference product.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
	"github.com/stretchr/testify/require"
)

// m4 is the 0..15 fixture used by the layout, transpose, multiply and Pow tests.
func m4(t *testing.T) *matrix.Matrix4[int] {
	t.Helper()
	m, err := matrix.FromValues[int, [4]int, [4]int](
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
		12, 13, 14, 15,
	)
	require.NoError(t, err)

	return m
}

// MustFromSlice builds an R×C matrix or fails the test.
func MustFromSlice[S scalar.Scalar, R vector.Dim[S], C vector.Dim[S]](t *testing.T, s []S) *matrix.Matrix[S, R, C] {
	t.Helper()
	m, err := matrix.FromSlice[S, R, C](s)
	require.NoError(t, err)

	return m
}

// naiveMul is an independent i→j→k reference product over Get.
func naiveMul[S scalar.Scalar, R vector.Dim[S], K vector.Dim[S], C vector.Dim[S]](t *testing.T, a *matrix.Matrix[S, R, K], b *matrix.Matrix[S, K, C]) *matrix.Matrix[S, R, C] {
	t.Helper()
	out := matrix.New[S, R, C]()
	rows, inner := a.Shape()
	cols := b.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			var sum S
			for k := 0; k < inner; k++ {
				av, err := a.Get(i, k)
				require.NoError(t, err)
				bv, err := b.Get(k, j)
				require.NoError(t, err)
				sum += av * bv
			}
			require.NoError(t, out.Set(i, j, sum))
		}
	}

	return out
}

// get reads (i,j) or fails the test.
func get[S scalar.Scalar, R vector.Dim[S], C vector.Dim[S]](t *testing.T, m *matrix.Matrix[S, R, C], i, j int) S {
	t.Helper()
	v, err := m.Get(i, j)
	require.NoError(t, err)

	return v
}
