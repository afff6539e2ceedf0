// SPDX-License-Identifier: MIT

package triangle

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

// Triangle2 is a triangle in the plane.
type Triangle2[S scalar.Scalar] = Triangle[S, [2]S]

// xy returns the vertex coordinates as float64.
func xy[S scalar.Scalar](t Triangle2[S]) (ax, ay, bx, by, cx, cy float64) {
	a, b, c := t.v[0].Array(), t.v[1].Array(), t.v[2].Array()

	return float64(a[0]), float64(a[1]), float64(b[0]), float64(b[1]), float64(c[0]), float64(c[1])
}

// SignedArea returns the signed area: positive when A, B, C run counter-clockwise.
func SignedArea[S scalar.Scalar](t Triangle2[S]) float64 {
	ax, ay, bx, by, cx, cy := xy(t)

	return ((bx-ax)*(cy-ay) - (cx-ax)*(by-ay)) / 2
}

// SurfaceArea returns the unsigned area.
func SurfaceArea[S scalar.Scalar](t Triangle2[S]) S {
	return S(math.Abs(SignedArea(t)))
}

// CircumCenter returns the center of the circle through A, B and C.
// Returns ErrDegenerate when the vertices are collinear.
func CircumCenter[S scalar.Scalar](t Triangle2[S]) (vector.Vector2[S], error) {
	ax, ay, bx, by, cx, cy := xy(t)
	bdx, bdy := bx-ax, by-ay
	cdx, cdy := cx-ax, cy-ay
	asq := bdx*bdx + bdy*bdy
	csq := cdx*cdx + cdy*cdy
	bot := bdy*cdx - cdy*bdx
	if bot == 0 {
		return vector.Vector2[S]{}, fmt.Errorf("CircumCenter: %w", ErrDegenerate)
	}
	top1 := bdy*csq - cdy*asq
	top2 := bdx*csq - cdx*asq

	return vector.Vec2(S(ax+0.5*top1/bot), S(ay-0.5*top2/bot)), nil
}

// CircumRadius returns the radius of the circle through A, B and C using
// R = abc / sqrt((a+b+c)(-a+b+c)(a-b+c)(a+b-c)).
// Returns ErrDegenerate when the denominator is not positive.
func CircumRadius[S scalar.Scalar](t Triangle2[S]) (S, error) {
	ax, ay, bx, by, cx, cy := xy(t)
	a := math.Hypot(bx-ax, by-ay)
	b := math.Hypot(cx-bx, cy-by)
	c := math.Hypot(ax-cx, ay-cy)
	bot := (a + b + c) * (-a + b + c) * (a - b + c) * (a + b - c)
	if !(bot > 0) {
		return 0, fmt.Errorf("CircumRadius: %w", ErrDegenerate)
	}

	return S(a * b * c / math.Sqrt(bot)), nil
}

// ContainsPoint reports whether p lies inside t or on its boundary.
// Works for either winding. A degenerate triangle reports true for every
// point of its supporting line.
func ContainsPoint[S scalar.Scalar](t Triangle2[S], p vector.Vector2[S]) bool {
	ax, ay, bx, by, cx, cy := xy(t)
	pa := p.Array()
	px, py := float64(pa[0]), float64(pa[1])
	d1 := (bx-ax)*(py-ay) - (by-ay)*(px-ax)
	d2 := (cx-bx)*(py-by) - (cy-by)*(px-bx)
	d3 := (ax-cx)*(py-cy) - (ay-cy)*(px-cx)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0

	return !(hasNeg && hasPos)
}
