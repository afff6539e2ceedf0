// SPDX-License-Identifier: MIT

// Package triangle provides N-dimensional triangles and 2D triangle metrics.
//
// Triangle[S, D] holds three vertices A, B and C. Angles and Centroid work in
// any dimension; SurfaceArea, CircumCenter, CircumRadius and ContainsPoint are
// defined on Triangle2. Degenerate inputs (repeated or collinear vertices)
// return ErrDegenerate instead of producing NaN or Inf.
package triangle

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

var (
	// ErrOutOfRange indicates a vertex index outside [0, 3).
	ErrOutOfRange = errors.New("triangle: vertex index out of range")

	// ErrDegenerate indicates a zero-length side or collinear vertices.
	ErrDegenerate = errors.New("triangle: degenerate triangle")
)

// Triangle is three vertices in N dimensions.
type Triangle[S scalar.Scalar, D vector.Dim[S]] struct {
	v [3]vector.Vector[S, D]
}

// New returns the triangle a, b, c.
func New[S scalar.Scalar, D vector.Dim[S]](a, b, c vector.Vector[S, D]) Triangle[S, D] {
	return Triangle[S, D]{v: [3]vector.Vector[S, D]{a, b, c}}
}

// A returns the first vertex.
func (t Triangle[S, D]) A() vector.Vector[S, D] { return t.v[0] }

// B returns the second vertex.
func (t Triangle[S, D]) B() vector.Vector[S, D] { return t.v[1] }

// C returns the third vertex.
func (t Triangle[S, D]) C() vector.Vector[S, D] { return t.v[2] }

// Vertices returns all three vertices.
func (t Triangle[S, D]) Vertices() [3]vector.Vector[S, D] { return t.v }

// Get returns vertex i, or ErrOutOfRange.
func (t Triangle[S, D]) Get(i int) (vector.Vector[S, D], error) {
	if i < 0 || i >= len(t.v) {
		return vector.Vector[S, D]{}, fmt.Errorf("Get: index %d: %w", i, ErrOutOfRange)
	}

	return t.v[i], nil
}

// SetA replaces the first vertex.
func (t *Triangle[S, D]) SetA(a vector.Vector[S, D]) { t.v[0] = a }

// SetB replaces the second vertex.
func (t *Triangle[S, D]) SetB(b vector.Vector[S, D]) { t.v[1] = b }

// SetC replaces the third vertex.
func (t *Triangle[S, D]) SetC(c vector.Vector[S, D]) { t.v[2] = c }

// Angles returns the interior angles (radians) at A, B and C by the law of
// cosines. Returns ErrDegenerate when a side has zero length.
// The computation runs in float64; integer scalars receive truncated radians.
func (t Triangle[S, D]) Angles() (vector.Vector3[S], error) {
	ab := float64(t.v[0].DistanceSquare(t.v[1]))
	bc := float64(t.v[1].DistanceSquare(t.v[2]))
	ca := float64(t.v[2].DistanceSquare(t.v[0]))
	if ab == 0 || bc == 0 || ca == 0 {
		return vector.Vector3[S]{}, fmt.Errorf("Angles: %w", ErrDegenerate)
	}
	dab, dbc, dca := math.Sqrt(ab), math.Sqrt(bc), math.Sqrt(ca)

	return vector.Vec3(
		S(angle(ca+ab-bc, 2*dca*dab)),
		S(angle(ab+bc-ca, 2*dab*dbc)),
		S(angle(bc+ca-ab, 2*dbc*dca)),
	), nil
}

// angle returns acos(num/den) with the ratio kept inside [-1, 1] against rounding.
func angle(num, den float64) float64 {
	return math.Acos(math.Max(-1, math.Min(1, num/den)))
}

// Centroid returns (A+B+C)/3.
func (t Triangle[S, D]) Centroid() vector.Vector[S, D] {
	a, b, c := t.v[0].Array(), t.v[1].Array(), t.v[2].Array()
	var out D
	for i := 0; i < len(out); i++ {
		out[i] = (a[i] + b[i] + c[i]) / 3
	}

	return vector.FromArray[S](out)
}

// String renders the triangle as "<a, b, c>".
func (t Triangle[S, D]) String() string {
	return "<" + t.v[0].String() + ", " + t.v[1].String() + ", " + t.v[2].String() + ">"
}
