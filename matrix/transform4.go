// SPDX-License-Identifier: MIT
// Package matrix: 4x4 homogeneous transform builders.
//
// Purpose:
//   - Rotations around X/Y/Z, Euler angles, an arbitrary axis, and the
//     rotation aligning one direction with another.
//   - Translation and point/direction application helpers.
//
// Convention:
//   - Points are row vectors: p' = p·M (see MulVec). Rotations are
//     counter-clockwise about their axis under the right-hand rule, and the
//     translation sits in row 3.
//   - Angles are in radians. Integer scalars are accepted; only angles whose
//     sine and cosine are integral (0) give meaningful results.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

// fromColumnRotation writes the 3x3 rotation r, given in the column-vector
// convention (p' = r·p), into m as the equivalent row-vector transform rᵀ
// with no translation.
func fromColumnRotation[S scalar.Scalar](m *Matrix4[S], r [3][3]S) {
	m.ensure()
	clear(m.data)
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			m.data[i*4+j] = r[j][i]
		}
	}
	m.data[15] = 1
}

// BecomeRotationAroundX overwrites m with a rotation of angle radians about +X.
func BecomeRotationAroundX[S scalar.Scalar](m *Matrix4[S], angle S) error {
	if m == nil {
		return matrixErrorf(opRotation, ErrNilMatrix)
	}
	c, s := scalar.Cos(angle), scalar.Sin(angle)
	fromColumnRotation(m, [3][3]S{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	})

	return nil
}

// BecomeRotationAroundY overwrites m with a rotation of angle radians about +Y.
func BecomeRotationAroundY[S scalar.Scalar](m *Matrix4[S], angle S) error {
	if m == nil {
		return matrixErrorf(opRotation, ErrNilMatrix)
	}
	c, s := scalar.Cos(angle), scalar.Sin(angle)
	fromColumnRotation(m, [3][3]S{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	})

	return nil
}

// BecomeRotationAroundZ overwrites m with a rotation of angle radians about +Z.
func BecomeRotationAroundZ[S scalar.Scalar](m *Matrix4[S], angle S) error {
	if m == nil {
		return matrixErrorf(opRotation, ErrNilMatrix)
	}
	c, s := scalar.Cos(angle), scalar.Sin(angle)
	fromColumnRotation(m, [3][3]S{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	})

	return nil
}

// RotationAroundX returns a rotation of angle radians about +X.
func RotationAroundX[S scalar.Scalar](angle S) *Matrix4[S] {
	m := New[S, [4]S, [4]S]()
	_ = BecomeRotationAroundX(m, angle) // m is non-nil

	return m
}

// RotationAroundY returns a rotation of angle radians about +Y.
func RotationAroundY[S scalar.Scalar](angle S) *Matrix4[S] {
	m := New[S, [4]S, [4]S]()
	_ = BecomeRotationAroundY(m, angle)

	return m
}

// RotationAroundZ returns a rotation of angle radians about +Z.
func RotationAroundZ[S scalar.Scalar](angle S) *Matrix4[S] {
	m := New[S, [4]S, [4]S]()
	_ = BecomeRotationAroundZ(m, angle)

	return m
}

// RotationFromEuler returns the rotation that turns by x about X, then by y
// about Y, then by z about Z (extrinsic X-Y-Z order).
func RotationFromEuler[S scalar.Scalar](x, y, z S) *Matrix4[S] {
	return Mul(Mul(RotationAroundX(x), RotationAroundY(y)), RotationAroundZ(z))
}

// RotationAroundAxis returns the rotation of angle radians about axis using
// Rodrigues' formula: p' = p·cos + (u×p)·sin + u·(u·p)·(1-cos).
// The axis is normalised first; a zero axis returns ErrZeroLength.
//
// Complexity: O(1).
func RotationAroundAxis[S scalar.Scalar](axis vector.Vector3[S], angle S) (*Matrix4[S], error) {
	u, err := axis.Normalised()
	if err != nil {
		return nil, matrixErrorf(opRotationAxis, ErrZeroLength)
	}
	a := u.Array()
	x, y, z := a[0], a[1], a[2]
	c, s := scalar.Cos(angle), scalar.Sin(angle)
	t := 1 - c
	m := New[S, [4]S, [4]S]()
	fromColumnRotation(m, [3][3]S{
		{t*x*x + c, t*x*y - s*z, t*x*z + s*y},
		{t*x*y + s*z, t*y*y + c, t*y*z - s*x},
		{t*x*z - s*y, t*y*z + s*x, t*z*z + c},
	})

	return m, nil
}

// RotationAlign returns the rotation R with from·R = to for unit vectors from
// and to, built from v = from×to and c = from·to:
//
//	R = I + [v]× + [v]×² / (1+c)
//
// Errors:
//   - ErrAntiParallel when 1+c is within the numeric policy of 0 (the
//     formulation divides by 1+c and the rotation axis is not unique).
//
// Notes:
//   - Inputs are not normalised; pass unit vectors.
func RotationAlign[S scalar.Scalar](from, to vector.Vector3[S], opts ...scalar.Option) (*Matrix4[S], error) {
	c := vector.Dot(from, to)
	if scalar.Close(1+c, 0, scalar.Resolve(opts...)) {
		return nil, matrixErrorf(opRotationAlign, fmt.Errorf("from=%v to=%v: %w", from, to, ErrAntiParallel))
	}
	v := vector.Cross(from, to).Array()
	x, y, z := v[0], v[1], v[2]
	k := 1 / (1 + c)
	m := New[S, [4]S, [4]S]()
	fromColumnRotation(m, [3][3]S{
		{x*x*k + c, y*x*k - z, z*x*k + y},
		{x*y*k + z, y*y*k + c, z*y*k - x},
		{x*z*k - y, y*z*k + x, z*z*k + c},
	})

	return m, nil
}

// Translation4 returns the homogeneous translation by t.
func Translation4[S scalar.Scalar](t vector.Vector3[S]) *Matrix4[S] {
	m := New[S, [4]S, [4]S]()
	_ = BecomeTranslation(m, t) // 3 == 4-1

	return m
}

// TransformPoint applies m to p with w=1 and drops w. Translation applies.
func TransformPoint[S scalar.Scalar](m *Matrix4[S], p vector.Vector3[S]) vector.Vector3[S] {
	return apply(m, p, 1)
}

// TransformDirection applies m to d with w=0 and drops w. Translation is ignored.
func TransformDirection[S scalar.Scalar](m *Matrix4[S], d vector.Vector3[S]) vector.Vector3[S] {
	return apply(m, d, 0)
}

func apply[S scalar.Scalar](m *Matrix4[S], p vector.Vector3[S], w S) vector.Vector3[S] {
	a := p.Array()
	r := MulVec(m, vector.Vec4(a[0], a[1], a[2], w)).Array()

	return vector.Vec3(r[0], r[1], r[2])
}
