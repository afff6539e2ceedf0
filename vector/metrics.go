// SPDX-License-Identifier: MIT
// Package vector: lengths, distances, dot product and normalisation.

package vector

import "github.com/katalvlaran/lvgeom/scalar"

// Dot returns the sum of element-wise products of a and b.
// Complexity: O(N).
func Dot[S scalar.Scalar, D Dim[S]](a, b Vector[S, D]) S {
	var sum S
	for i := 0; i < len(a.data); i++ {
		sum += a.data[i] * b.data[i]
	}

	return sum
}

// Dot returns Dot(v, b).
func (v Vector[S, D]) Dot(b Vector[S, D]) S { return Dot(v, b) }

// LengthSquare returns v·v.
func (v Vector[S, D]) LengthSquare() S { return Dot(v, v) }

// Length returns the Euclidean norm. Integer vectors get the floor of the true value.
func (v Vector[S, D]) Length() S { return scalar.Sqrt(v.LengthSquare()) }

// DistanceSquare returns |v-b|².
func (v Vector[S, D]) DistanceSquare(b Vector[S, D]) S {
	var sum S
	for i := 0; i < len(v.data); i++ {
		d := v.data[i] - b.data[i]
		sum += d * d
	}

	return sum
}

// Distance returns |v-b|.
func (v Vector[S, D]) Distance(b Vector[S, D]) S { return scalar.Sqrt(v.DistanceSquare(b)) }

// ManhattanDistance returns the sum of absolute component differences.
// Unsigned scalars are handled without wrap-around.
func (v Vector[S, D]) ManhattanDistance(b Vector[S, D]) S {
	var sum S
	for i := 0; i < len(v.data); i++ {
		if v.data[i] > b.data[i] {
			sum += v.data[i] - b.data[i]
		} else {
			sum += b.data[i] - v.data[i]
		}
	}

	return sum
}

// Normalise scales v to unit length in place.
//
// Implementation:
//   - Stage 1: l = Length(); l == 0 returns ErrZeroLength and leaves v untouched.
//   - Stage 2: divide every component by l.
//
// Notes:
//   - Integer vectors only normalise exactly along an axis; other
//     directions truncate toward zero.
func (v *Vector[S, D]) Normalise() error {
	l := v.Length()
	if l == 0 {
		return vectorErrorf(opNormalise, ErrZeroLength)
	}
	for i := 0; i < len(v.data); i++ {
		v.data[i] /= l
	}

	return nil
}

// Normalised returns a unit-length copy of v. See Normalise.
func (v Vector[S, D]) Normalised() (Vector[S, D], error) {
	err := v.Normalise()

	return v, err
}
