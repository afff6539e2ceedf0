// SPDX-License-Identifier: MIT

// Package scalar: element-type constraint and type classification helpers.
package scalar

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Scalar is the constraint for vector, matrix and box elements.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// IsFloat reports whether S is a floating-point type.
// The check divides two constants at run time: integer division truncates to 0.
// Complexity: O(1).
func IsFloat[S Scalar]() bool {
	one, two := S(1), S(2)

	return one/two != 0
}

// IsFloat32 reports whether S has float32 as its underlying type.
// Complexity: O(1).
func IsFloat32[S Scalar]() bool {
	var zero S

	return IsFloat[S]() && unsafe.Sizeof(zero) == 4
}
