// SPDX-License-Identifier: MIT
// Package aabb: helpers defined only for 2D boxes.

package aabb

import (
	"math"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/triangle"
	"github.com/katalvlaran/lvgeom/vector"
)

// Box2 is a 2D box.
type Box2[S scalar.Scalar] = Box[S, [2]S]

// New2 returns the box with corners (x1, y1) and (x2, y2), stored as given.
func New2[S scalar.Scalar](x1, y1, x2, y2 S) Box2[S] {
	return New(vector.Vec2(x1, y1), vector.Vec2(x2, y2))
}

// Width returns the extent along x.
func Width[S scalar.Scalar](b Box2[S]) S {
	mn, mx := b.min.Array(), b.max.Array()

	return mx[0] - mn[0]
}

// Height returns the extent along y.
func Height[S scalar.Scalar](b Box2[S]) S {
	mn, mx := b.min.Array(), b.max.Array()

	return mx[1] - mn[1]
}

// EnclosingTriangle returns a triangle that encloses b tightly: apex below
// the box at (minX + w/2, minY - w), base on the line y = maxY stretched by h
// on each side.
func EnclosingTriangle[S scalar.Scalar](b Box2[S]) triangle.Triangle2[S] {
	mn, mx := b.min.Array(), b.max.Array()
	w, h := Width(b), Height(b)

	return triangle.New(
		vector.Vec2(mn[0]+w/2, mn[1]-w),
		vector.Vec2(mx[0]+h, mx[1]),
		vector.Vec2(mn[0]-h, mx[1]),
	)
}

// OuterEnclosingTriangle returns the equilateral triangle circumscribing the
// circumcircle of b, so it encloses b under any rotation about its center.
// Computed in float64; integer scalars round outward.
func OuterEnclosingTriangle[S scalar.Scalar](b Box2[S]) triangle.Triangle2[S] {
	mn, mx := b.min.Array(), b.max.Array()
	x0, y0 := float64(mn[0]), float64(mn[1])
	x1, y1 := float64(mx[0]), float64(mx[1])
	cx, cy := (x0+x1)/2, (y0+y1)/2
	r := math.Hypot(x1-x0, y1-y0) / 2
	half := math.Sqrt(3) * r // half the side of the circumscribed triangle

	down, up := identity, identity
	if !scalar.IsFloat[S]() {
		r++ // absorbs truncation of the apex x
		half = math.Sqrt(3) * r
		down, up = math.Floor, math.Ceil
	}

	return triangle.New(
		vector.Vec2(S(cx), S(down(cy-2*r))),
		vector.Vec2(S(up(cx+half)), S(up(cy+r))),
		vector.Vec2(S(down(cx-half)), S(up(cy+r))),
	)
}

func identity(x float64) float64 { return x }
