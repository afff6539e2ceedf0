// SPDX-License-Identifier: MIT
// Package vector: element-wise arithmetic.
// Value forms return a new vector; InPlace forms mutate the receiver and
// never touch the argument.

package vector

import "github.com/katalvlaran/lvgeom/scalar"

// Add returns v+b.
func (v Vector[S, D]) Add(b Vector[S, D]) Vector[S, D] {
	v.AddInPlace(b)

	return v
}

// Sub returns v-b.
func (v Vector[S, D]) Sub(b Vector[S, D]) Vector[S, D] {
	v.SubInPlace(b)

	return v
}

// Mul returns v scaled by s.
func (v Vector[S, D]) Mul(s S) Vector[S, D] {
	v.MulInPlace(s)

	return v
}

// Div returns v divided by s, or ErrDivisionByZero when s == 0.
func (v Vector[S, D]) Div(s S) (Vector[S, D], error) {
	err := v.DivInPlace(s)

	return v, err
}

// Neg returns -v.
func (v Vector[S, D]) Neg() Vector[S, D] {
	for i := 0; i < len(v.data); i++ {
		v.data[i] = -v.data[i]
	}

	return v
}

// Hadamard returns the element-wise product of v and b.
func (v Vector[S, D]) Hadamard(b Vector[S, D]) Vector[S, D] {
	for i := 0; i < len(v.data); i++ {
		v.data[i] *= b.data[i]
	}

	return v
}

// AddInPlace sets v = v+b.
func (v *Vector[S, D]) AddInPlace(b Vector[S, D]) {
	for i := 0; i < len(v.data); i++ {
		v.data[i] += b.data[i]
	}
}

// SubInPlace sets v = v-b.
func (v *Vector[S, D]) SubInPlace(b Vector[S, D]) {
	for i := 0; i < len(v.data); i++ {
		v.data[i] -= b.data[i]
	}
}

// MulInPlace sets v = v*s.
func (v *Vector[S, D]) MulInPlace(s S) {
	for i := 0; i < len(v.data); i++ {
		v.data[i] *= s
	}
}

// DivInPlace sets v = v/s. On s == 0 it returns ErrDivisionByZero and leaves v unchanged.
func (v *Vector[S, D]) DivInPlace(s S) error {
	if s == 0 {
		return vectorErrorf(opDiv, ErrDivisionByZero)
	}
	for i := 0; i < len(v.data); i++ {
		v.data[i] /= s
	}

	return nil
}

// Sum returns the sum of all vectors in vs; the zero vector when vs is empty.
func Sum[S scalar.Scalar, D Dim[S]](vs ...Vector[S, D]) Vector[S, D] {
	var out Vector[S, D]
	for _, v := range vs {
		out.AddInPlace(v)
	}

	return out
}
