// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/lvgeom/scalar"

// MaxDimensions is the largest dimension expressible by Dim.
const MaxDimensions = 8

// Dim is the compile-time dimension of a vector: an array type [N]S with
// 1 <= N <= MaxDimensions. Two vectors can only be combined when their Dim
// types are identical, so mismatched lengths are rejected by the compiler.
type Dim[S scalar.Scalar] interface {
	~[1]S | ~[2]S | ~[3]S | ~[4]S | ~[5]S | ~[6]S | ~[7]S | ~[8]S
}

// Len returns N for the dimension D without needing a value.
func Len[S scalar.Scalar, D Dim[S]]() int {
	var d D

	return len(d)
}
