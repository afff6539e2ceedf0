// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/lvgeom/scalar"

// Lerp interpolates componentwise between a and b:
//
//	Lerp(t, a, b) = a*(1-t) + b*t
//
// t is the weight of b: t=0 yields a, t=1 yields b. Values outside [0,1]
// extrapolate. For integer scalars only t in {0, 1} is meaningful.
func Lerp[S scalar.Scalar, D Dim[S]](t S, a, b Vector[S, D]) Vector[S, D] {
	var out Vector[S, D]
	for i := 0; i < len(out.data); i++ {
		out.data[i] = a.data[i]*(1-t) + b.data[i]*t
	}

	return out
}

// Midpoint returns the point halfway between a and b, computed per component
// as lo + (hi-lo)/2 from the smaller operand so that integer coordinates do
// not overflow and unsigned ones do not wrap.
func Midpoint[S scalar.Scalar, D Dim[S]](a, b Vector[S, D]) Vector[S, D] {
	var out Vector[S, D]
	ComputeMidpoint(a, b, &out)

	return out
}

// ComputeMidpoint writes the midpoint of a and b into out.
// out may alias a or b.
func ComputeMidpoint[S scalar.Scalar, D Dim[S]](a, b Vector[S, D], out *Vector[S, D]) {
	var x, y S
	for i := 0; i < len(out.data); i++ {
		x, y = a.data[i], b.data[i]
		if y < x {
			x, y = y, x
		}
		out.data[i] = x + (y-x)/2
	}
}
