// SPDX-License-Identifier: MIT
// Package vector: line segments in N dimensions.

package vector

import "github.com/katalvlaran/lvgeom/scalar"

// Line is an ordered pair of points. It is the result type of box edge
// enumeration and the operand of 2D line queries.
type Line[S scalar.Scalar, D Dim[S]] struct {
	Start  Vector[S, D]
	Finish Vector[S, D]
}

// NewLine returns the segment start→finish.
func NewLine[S scalar.Scalar, D Dim[S]](start, finish Vector[S, D]) Line[S, D] {
	return Line[S, D]{Start: start, Finish: finish}
}

// Direction returns Finish-Start.
func (l Line[S, D]) Direction() Vector[S, D] { return l.Finish.Sub(l.Start) }

// LengthSquare returns the squared segment length.
func (l Line[S, D]) LengthSquare() S { return l.Start.DistanceSquare(l.Finish) }

// Length returns the segment length.
func (l Line[S, D]) Length() S { return l.Start.Distance(l.Finish) }

// Midpoint returns the point halfway along the segment.
func (l Line[S, D]) Midpoint() Vector[S, D] { return Midpoint(l.Start, l.Finish) }

// Reversed returns the segment Finish→Start.
func (l Line[S, D]) Reversed() Line[S, D] { return Line[S, D]{Start: l.Finish, Finish: l.Start} }

// Equal reports whether l and o join the same two points in either direction.
func (l Line[S, D]) Equal(o Line[S, D]) bool {
	if l.Start.Equal(o.Start) && l.Finish.Equal(o.Finish) {
		return true
	}

	return l.Start.Equal(o.Finish) && l.Finish.Equal(o.Start)
}

// String renders the segment as "(x, y)->(x, y)".
func (l Line[S, D]) String() string {
	return l.Start.String() + "->" + l.Finish.String()
}
