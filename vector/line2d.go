// SPDX-License-Identifier: MIT
// Package vector: queries defined only for 2D lines.
// Each function takes a Line2 so the dimension is checked by the compiler.

package vector

import (
	"math"

	"github.com/katalvlaran/lvgeom/scalar"
)

// Line2 is a 2D line segment.
type Line2[S scalar.Scalar] = Line[S, [2]S]

// Side returns the 2D cross product of (Finish-Start) and (p-Start).
// Positive: p is left of the directed line. Zero: collinear. Negative: right.
func Side[S scalar.Scalar](l Line2[S], p Vector2[S]) S {
	return Cross2(l.Direction(), p.Sub(l.Start))
}

// Normal returns the unit normal of l, the direction rotated by +90 degrees.
// Returns ErrZeroLength for a degenerate segment.
func Normal[S scalar.Scalar](l Line2[S]) (Vector2[S], error) {
	d, err := l.Direction().Normalised()
	if err != nil {
		return Vector2[S]{}, vectorErrorf(opNormal, err)
	}

	return R90(d), nil
}

// SignedDistance returns the distance from p to the infinite line through l,
// positive on the side Normal points to.
// Returns ErrZeroLength for a degenerate segment.
func SignedDistance[S scalar.Scalar](l Line2[S], p Vector2[S]) (S, error) {
	n, err := Normal(l)
	if err != nil {
		return 0, err
	}

	return Dot(p.Sub(l.Start), n), nil
}

// SegmentDistance returns the distance from p to the closest point of the
// segment. A degenerate segment is treated as the point Start.
//
// Implementation:
//   - Stage 1: project p on the line, t = (p-Start)·(Finish-Start) / |Finish-Start|².
//   - Stage 2: clamp t to [0,1] and measure to Start + t*(Finish-Start).
//
// The projection runs in float64 so integer segments clamp correctly;
// the result is converted back to S.
func SegmentDistance[S scalar.Scalar](l Line2[S], p Vector2[S]) S {
	l2 := float64(l.LengthSquare())
	if l2 == 0 {
		return p.Distance(l.Start)
	}
	sx, sy := float64(l.Start.data[0]), float64(l.Start.data[1])
	dx, dy := float64(l.Finish.data[0])-sx, float64(l.Finish.data[1])-sy
	px, py := float64(p.data[0])-sx, float64(p.data[1])-sy
	t := (px*dx + py*dy) / l2
	t = math.Max(0, math.Min(1, t))
	ex, ey := px-t*dx, py-t*dy

	return S(math.Sqrt(ex*ex + ey*ey))
}

// Intersect2 returns the intersection point of the infinite lines through a and b.
// Returns ErrParallel when the directions are parallel (including coincident
// lines) and ErrZeroLength when either segment is degenerate.
// Integer inputs yield the intersection truncated toward zero.
func Intersect2[S scalar.Scalar](a, b Line2[S]) (Vector2[S], error) {
	d1, d2 := a.Direction(), b.Direction()
	if d1.LengthSquare() == 0 || d2.LengthSquare() == 0 {
		return Vector2[S]{}, vectorErrorf(opIntersect, ErrZeroLength)
	}
	denom := float64(d1.data[0])*float64(d2.data[1]) - float64(d1.data[1])*float64(d2.data[0])
	if denom == 0 {
		return Vector2[S]{}, vectorErrorf(opIntersect, ErrParallel)
	}
	wx := float64(b.Start.data[0]) - float64(a.Start.data[0])
	wy := float64(b.Start.data[1]) - float64(a.Start.data[1])
	t := (wx*float64(d2.data[1]) - wy*float64(d2.data[0])) / denom

	return Vec2(
		S(float64(a.Start.data[0])+t*float64(d1.data[0])),
		S(float64(a.Start.data[1])+t*float64(d1.data[1])),
	), nil
}
