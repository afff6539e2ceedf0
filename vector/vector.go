// SPDX-License-Identifier: MIT
// Package vector: the Vector type, construction and element access.

package vector

import (
	"github.com/katalvlaran/lvgeom/scalar"
)

// Vector is an N-dimensional vector of S with N = len(D).
// The zero value is the zero vector and is ready to use.
// Vectors are values: assignment copies every component.
type Vector[S scalar.Scalar, D Dim[S]] struct {
	data D // components, index 0..N-1
}

// Zero returns the zero vector.
func Zero[S scalar.Scalar, D Dim[S]]() Vector[S, D] {
	return Vector[S, D]{}
}

// Uninitialised returns a vector whose contents the caller intends to
// overwrite immediately. Go has no uninitialised memory, so the components
// are zero; the constructor only names the intent at the call site.
func Uninitialised[S scalar.Scalar, D Dim[S]]() Vector[S, D] {
	return Vector[S, D]{}
}

// Fill returns a vector with every component set to s.
func Fill[S scalar.Scalar, D Dim[S]](s S) Vector[S, D] {
	var v Vector[S, D]
	for i := 0; i < len(v.data); i++ {
		v.data[i] = s
	}

	return v
}

// FromArray wraps an array of components.
func FromArray[S scalar.Scalar, D Dim[S]](d D) Vector[S, D] {
	return Vector[S, D]{data: d}
}

// FromSlice copies exactly N values from s.
// Returns ErrDimensionMismatch if len(s) != N.
func FromSlice[S scalar.Scalar, D Dim[S]](s []S) (Vector[S, D], error) {
	var v Vector[S, D]
	if len(s) != len(v.data) {
		return v, vectorErrorf(opFromSlice, ErrDimensionMismatch)
	}
	for i := 0; i < len(v.data); i++ {
		v.data[i] = s[i]
	}

	return v, nil
}

// New builds a vector from up to N leading values; remaining components are zero.
// Returns ErrTooManyValues if more than N values are supplied.
func New[S scalar.Scalar, D Dim[S]](values ...S) (Vector[S, D], error) {
	var v Vector[S, D]
	if len(values) > len(v.data) {
		return v, vectorErrorf(opNew, ErrTooManyValues)
	}
	for i, x := range values {
		v.data[i] = x
	}

	return v, nil
}

// Extend returns the N-dimensional vector made of the N-1 components of v
// followed by nth. The target dimension E is given explicitly:
//
//	p, err := vector.Extend[[4]float64](v3, 1) // homogeneous point
//
// Returns ErrDimensionMismatch if len(E) != len(D)+1.
func Extend[E Dim[S], S scalar.Scalar, D Dim[S]](v Vector[S, D], nth S) (Vector[S, E], error) {
	var out Vector[S, E]
	n := len(v.data)
	if len(out.data) != n+1 {
		return out, vectorErrorf(opExtend, ErrDimensionMismatch)
	}
	for i := 0; i < n; i++ {
		out.data[i] = v.data[i]
	}
	out.data[n] = nth

	return out, nil
}

// Convert changes the scalar type of v, keeping the dimension.
// Float to integer conversion truncates toward zero like a Go conversion.
// Returns ErrDimensionMismatch if len(E) != len(D).
func Convert[T scalar.Scalar, E Dim[T], S scalar.Scalar, D Dim[S]](v Vector[S, D]) (Vector[T, E], error) {
	var out Vector[T, E]
	if len(out.data) != len(v.data) {
		return out, vectorErrorf(opConvert, ErrDimensionMismatch)
	}
	for i := 0; i < len(v.data); i++ {
		out.data[i] = T(v.data[i])
	}

	return out, nil
}

// Len returns N.
func (v Vector[S, D]) Len() int { return len(v.data) }

// Array returns a copy of the components.
func (v Vector[S, D]) Array() D { return v.data }

// Slice returns the components as a freshly allocated slice.
func (v Vector[S, D]) Slice() []S {
	out := make([]S, len(v.data))
	for i := range out {
		out[i] = v.data[i]
	}

	return out
}

// Get returns component i, or ErrOutOfRange if i is not in [0, N).
func (v Vector[S, D]) Get(i int) (S, error) {
	if i < 0 || i >= len(v.data) {
		var zero S

		return zero, indexErrorf(opGet, i, len(v.data))
	}

	return v.data[i], nil
}

// Set assigns component i, or returns ErrOutOfRange if i is not in [0, N).
func (v *Vector[S, D]) Set(i int, x S) error {
	if i < 0 || i >= len(v.data) {
		return indexErrorf(opSet, i, len(v.data))
	}
	v.data[i] = x

	return nil
}

// With returns a copy of v with component i replaced by x.
// Out-of-range indices return v unchanged together with ErrOutOfRange.
func (v Vector[S, D]) With(i int, x S) (Vector[S, D], error) {
	err := v.Set(i, x)

	return v, err
}
