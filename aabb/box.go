// SPDX-License-Identifier: MIT
// Package aabb: the Box type, predicates, metrics and mutation.

package aabb

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

// Box is an axis-aligned box with corners min and max.
// The zero value is the degenerate box at the origin.
type Box[S scalar.Scalar, D vector.Dim[S]] struct {
	min vector.Vector[S, D]
	max vector.Vector[S, D]
}

// New returns the box [lo, hi). The corners are stored as given.
func New[S scalar.Scalar, D vector.Dim[S]](lo, hi vector.Vector[S, D]) Box[S, D] {
	return Box[S, D]{min: lo, max: hi}
}

// FromPoint returns the zero-volume box at p. It contains no points.
func FromPoint[S scalar.Scalar, D vector.Dim[S]](p vector.Vector[S, D]) Box[S, D] {
	return Box[S, D]{min: p, max: p}
}

// FromCorners returns the smallest valid box with a and b as opposite corners.
func FromCorners[S scalar.Scalar, D vector.Dim[S]](a, b vector.Vector[S, D]) Box[S, D] {
	box := FromPoint(a)
	box.ExpandToContain(b)

	return box
}

// Min returns the minimum corner.
func (b Box[S, D]) Min() vector.Vector[S, D] { return b.min }

// Max returns the maximum corner (exclusive on every axis).
func (b Box[S, D]) Max() vector.Vector[S, D] { return b.max }

// SetMin replaces the minimum corner.
func (b *Box[S, D]) SetMin(v vector.Vector[S, D]) { b.min = v }

// SetMax replaces the maximum corner.
func (b *Box[S, D]) SetMax(v vector.Vector[S, D]) { b.max = v }

// Move translates the box by v.
func (b *Box[S, D]) Move(v vector.Vector[S, D]) {
	b.min.AddInPlace(v)
	b.max.AddInPlace(v)
}

// MoveMin translates only the minimum corner by v.
func (b *Box[S, D]) MoveMin(v vector.Vector[S, D]) { b.min.AddInPlace(v) }

// MoveMax translates only the maximum corner by v.
func (b *Box[S, D]) MoveMax(v vector.Vector[S, D]) { b.max.AddInPlace(v) }

// Validate returns ErrInvertedBounds if min[d] > max[d] on some axis.
func (b Box[S, D]) Validate() error {
	mn, mx := b.min.Array(), b.max.Array()
	for d := 0; d < len(mn); d++ {
		if mn[d] > mx[d] {
			return boxErrorf(opValidate, fmt.Errorf("axis %d: %v > %v: %w", d, mn[d], mx[d], ErrInvertedBounds))
		}
	}

	return nil
}

// IsEmpty reports whether the box contains no points, i.e. max[d] <= min[d]
// on some axis.
func (b Box[S, D]) IsEmpty() bool {
	mn, mx := b.min.Array(), b.max.Array()
	for d := 0; d < len(mn); d++ {
		if mx[d] <= mn[d] {
			return true
		}
	}

	return false
}

// Contains reports min[d] <= p[d] < max[d] on every axis.
func (b Box[S, D]) Contains(p vector.Vector[S, D]) bool {
	mn, mx, pp := b.min.Array(), b.max.Array(), p.Array()
	for d := 0; d < len(mn); d++ {
		if pp[d] < mn[d] || pp[d] >= mx[d] {
			return false
		}
	}

	return true
}

// ContainsBox reports whether every point of o lies in b: o.min is contained
// and o.max[d] <= max[d] on every axis. The max corner is an exclusive
// supremum rather than a point, so b.ContainsBox(b) holds for non-empty b.
// An empty o is contained only if its min corner is.
func (b Box[S, D]) ContainsBox(o Box[S, D]) bool {
	if !b.Contains(o.min) {
		return false
	}
	mx, omx := b.max.Array(), o.max.Array()
	for d := 0; d < len(mx); d++ {
		if omx[d] > mx[d] {
			return false
		}
	}

	return true
}

// Overlaps reports whether b and o share at least one point:
// max(b.min, o.min) < min(b.max, o.max) on every axis.
// Symmetric; touching boxes and empty boxes do not overlap.
func (b Box[S, D]) Overlaps(o Box[S, D]) bool {
	amn, amx := b.min.Array(), b.max.Array()
	bmn, bmx := o.min.Array(), o.max.Array()
	for d := 0; d < len(amn); d++ {
		if max(amn[d], bmn[d]) >= min(amx[d], bmx[d]) {
			return false
		}
	}

	return true
}

// CanContain reports whether o would fit inside b after a translation:
// b's extent is at least o's on every axis.
func (b Box[S, D]) CanContain(o Box[S, D]) bool {
	be, oe := b.Diagonal().Array(), o.Diagonal().Array()
	for d := 0; d < len(be); d++ {
		if be[d] < oe[d] {
			return false
		}
	}

	return true
}

// ExpandToContain grows the box so that p is within its bounds.
// Repeated calls never shrink the box.
func (b *Box[S, D]) ExpandToContain(p vector.Vector[S, D]) {
	mn, mx, pp := b.min.Array(), b.max.Array(), p.Array()
	for d := 0; d < len(mn); d++ {
		mn[d] = min(mn[d], pp[d])
		mx[d] = max(mx[d], pp[d])
	}
	b.min, b.max = vector.FromArray[S](mn), vector.FromArray[S](mx)
}

// ExpandToContainBox grows the box to cover o's corners.
func (b *Box[S, D]) ExpandToContainBox(o Box[S, D]) {
	b.ExpandToContain(o.min)
	b.ExpandToContain(o.max)
}

// AxisExtent returns max[d]-min[d], or ErrOutOfRange.
// A non-positive extent means the box is empty.
func (b Box[S, D]) AxisExtent(d int) (S, error) {
	mn, mx := b.min.Array(), b.max.Array()
	if d < 0 || d >= len(mn) {
		return 0, boxErrorf(opAxisExtent, fmt.Errorf("axis %d: %w", d, ErrOutOfRange))
	}

	return mx[d] - mn[d], nil
}

// Diagonal returns max-min.
func (b Box[S, D]) Diagonal() vector.Vector[S, D] { return b.max.Sub(b.min) }

// Center returns min + (max-min)/2.
func (b Box[S, D]) Center() vector.Vector[S, D] { return vector.Midpoint(b.min, b.max) }

// Incenter returns the center of the largest inscribed ball, which for a box
// is its Center.
func (b Box[S, D]) Incenter() vector.Vector[S, D] { return b.Center() }

// Volume returns the product of the axis extents. Inverted boxes can yield a
// negative value; check Validate first when that matters.
func (b Box[S, D]) Volume() S {
	e := b.Diagonal().Array()
	v := e[0]
	for d := 1; d < len(e); d++ {
		v *= e[d]
	}

	return v
}

// Area is Volume, named for 2D use.
func (b Box[S, D]) Area() S { return b.Volume() }

// Inradius returns half the smallest axis extent.
func (b Box[S, D]) Inradius() S {
	e := b.Diagonal().Array()
	m := e[0]
	for d := 1; d < len(e); d++ {
		m = min(m, e[d])
	}

	return m / 2
}

// Circumradius returns half the diagonal length.
func (b Box[S, D]) Circumradius() S { return b.Diagonal().Length() / 2 }

// Distance returns the Euclidean distance from p to the box; 0 when p is
// within the bounds.
func (b Box[S, D]) Distance(p vector.Vector[S, D]) S {
	mn, mx, pp := b.min.Array(), b.max.Array(), p.Array()
	var gap D
	for d := 0; d < len(mn); d++ {
		switch {
		case pp[d] < mn[d]:
			gap[d] = mn[d] - pp[d]
		case pp[d] > mx[d]:
			gap[d] = pp[d] - mx[d]
		}
	}

	return vector.FromArray[S](gap).Length()
}

// Equal reports whether both corners are equal.
func (b Box[S, D]) Equal(o Box[S, D]) bool {
	return b.min.Equal(o.min) && b.max.Equal(o.max)
}

// String renders the box as "[min, max)".
func (b Box[S, D]) String() string {
	return "[" + b.min.String() + ", " + b.max.String() + ")"
}
