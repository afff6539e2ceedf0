// SPDX-License-Identifier: MIT
// Package vector: named 2D, 3D and 4D instantiations and their helpers.

package vector

import "github.com/katalvlaran/lvgeom/scalar"

// Vector2 is a 2-dimensional vector.
type Vector2[S scalar.Scalar] = Vector[S, [2]S]

// Vector3 is a 3-dimensional vector.
type Vector3[S scalar.Scalar] = Vector[S, [3]S]

// Vector4 is a 4-dimensional vector, typically a homogeneous 3D point (w=1)
// or direction (w=0).
type Vector4[S scalar.Scalar] = Vector[S, [4]S]

// Vec2 returns (x, y).
func Vec2[S scalar.Scalar](x, y S) Vector2[S] {
	return Vector2[S]{data: [2]S{x, y}}
}

// Vec3 returns (x, y, z).
func Vec3[S scalar.Scalar](x, y, z S) Vector3[S] {
	return Vector3[S]{data: [3]S{x, y, z}}
}

// Vec4 returns (x, y, z, w).
func Vec4[S scalar.Scalar](x, y, z, w S) Vector4[S] {
	return Vector4[S]{data: [4]S{x, y, z, w}}
}

// R90 returns v rotated by +90 degrees: (x, y) -> (-y, x).
func R90[S scalar.Scalar](v Vector2[S]) Vector2[S] {
	return Vec2(-v.data[1], v.data[0])
}

// Cross2 returns the z component of the 3D cross product of (a, 0) and (b, 0).
// Positive when b is counter-clockwise from a.
func Cross2[S scalar.Scalar](a, b Vector2[S]) S {
	return a.data[0]*b.data[1] - a.data[1]*b.data[0]
}

// Cross returns the right-handed cross product a × b.
func Cross[S scalar.Scalar](a, b Vector3[S]) Vector3[S] {
	return Vec3(
		a.data[1]*b.data[2]-a.data[2]*b.data[1],
		a.data[2]*b.data[0]-a.data[0]*b.data[2],
		a.data[0]*b.data[1]-a.data[1]*b.data[0],
	)
}
