// SPDX-License-Identifier: MIT
// Package vector: component reordering.

package vector

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/scalar"
)

// Swizzle returns a vector whose component n is v[idx[n]].
// idx must hold exactly N indices; repeats are allowed ({1,1} duplicates Y).
//
// Errors:
//   - ErrDimensionMismatch if len(idx) != N.
//   - ErrOutOfRange if any index is outside [0, N).
//
// Complexity: O(N).
func (v Vector[S, D]) Swizzle(idx ...int) (Vector[S, D], error) {
	var out Vector[S, D]
	if len(idx) != len(v.data) {
		return out, fmt.Errorf("%s: want %d indices, got %d: %w", opSwizzle, len(v.data), len(idx), ErrDimensionMismatch)
	}
	if err := gather[S](v.data, idx, &out.data, opSwizzle); err != nil {
		return Vector[S, D]{}, err
	}

	return out, nil
}

// Project returns the R-dimensional vector whose component n is v[idx[n]].
// Typical use drops one axis of a point:
//
//	xy, err := vector.Project[[2]float64](p3, 0, 1)
//
// Errors:
//   - ErrDimensionMismatch if len(idx) != len(R) or len(R) > N.
//   - ErrOutOfRange if any index is outside [0, N).
func Project[R Dim[S], S scalar.Scalar, D Dim[S]](v Vector[S, D], idx ...int) (Vector[S, R], error) {
	var out Vector[S, R]
	if len(out.data) > len(v.data) || len(idx) != len(out.data) {
		return out, fmt.Errorf("%s: %d indices into %d of %d: %w", opProject, len(idx), len(out.data), len(v.data), ErrDimensionMismatch)
	}
	if err := gather[S](v.data, idx, &out.data, opProject); err != nil {
		return Vector[S, R]{}, err
	}

	return out, nil
}

// gather writes src[idx[n]] into dst[n]; len(idx) == len(*dst) is checked by the caller.
func gather[S scalar.Scalar, D Dim[S], R Dim[S]](src D, idx []int, dst *R, tag string) error {
	for n, i := range idx {
		if i < 0 || i >= len(src) {
			return indexErrorf(tag, i, len(src))
		}
		(*dst)[n] = src[i]
	}

	return nil
}

// Reverse returns the components of v in reverse order.
func (v Vector[S, D]) Reverse() Vector[S, D] {
	n := len(v.data)
	for i := 0; i < n/2; i++ {
		v.data[i], v.data[n-1-i] = v.data[n-1-i], v.data[i]
	}

	return v
}
