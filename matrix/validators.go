// SPDX-License-Identifier: MIT
// Package matrix: centralized runtime validators.
// Only relations the type system cannot express are validated here.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

// shape returns (len(R), len(C)) without needing a value.
func shape[S scalar.Scalar, R vector.Dim[S], C vector.Dim[S]]() (int, int) {
	var (
		r R
		c C
	)

	return len(r), len(c)
}

// validateIndex checks 0 <= i < rows and 0 <= j < cols.
func validateIndex(i, j, rows, cols int) error {
	if i < 0 || i >= rows || j < 0 || j >= cols {
		return fmt.Errorf("(%d,%d) not in %dx%d: %w", i, j, rows, cols, ErrOutOfRange)
	}

	return nil
}

// validateHomogeneous checks that a vector of length got is one shorter than n.
func validateHomogeneous(got, n int) error {
	if got != n-1 {
		return fmt.Errorf("want %d components, got %d: %w", n-1, got, ErrDimensionMismatch)
	}

	return nil
}
