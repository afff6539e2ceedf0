// SPDX-License-Identifier: MIT
// Package matrix: tolerance-based comparison.

package matrix

import (
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

// AllClose reports whether every pair of elements satisfies
// |a-b| <= atol + rtol*|b| under the scalar numeric policy built from opts
// (defaults scalar.DefaultEpsilon and scalar.DefaultRelativeTolerance).
//
// Behavior highlights:
//   - Deterministic flat walk 0..R*C-1 with early exit on the first miss.
//   - NaN is never close to anything.
//
// Complexity:
//   - Time O(R*C), Space O(1).
func AllClose[S scalar.Scalar, R vector.Dim[S], C vector.Dim[S]](a, b *Matrix[S, R, C], opts ...scalar.Option) bool {
	o := scalar.Resolve(opts...)
	rows, cols := a.Shape()
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if !scalar.Close(a.at(i, j), b.at(i, j), o) {
				return false
			}
		}
	}

	return true
}
