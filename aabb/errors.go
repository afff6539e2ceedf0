// SPDX-License-Identifier: MIT
// Package aabb: sentinel error set.

package aabb

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates an axis index outside [0, N).
	ErrOutOfRange = errors.New("aabb: axis out of range")

	// ErrInvertedBounds is reported by Validate when min > max on some axis.
	ErrInvertedBounds = errors.New("aabb: min exceeds max")
)

const (
	opAxisExtent = "AxisExtent"
	opValidate   = "Validate"
)

// boxErrorf wraps err with an operation tag; call only with a non-nil err.
func boxErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
