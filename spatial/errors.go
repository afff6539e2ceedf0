// SPDX-License-Identifier: MIT
// Package spatial: sentinel error set.

package spatial

import (
	"errors"
	"fmt"
)

var (
	// ErrBadCellSize indicates a cell size that is not finite and above the
	// configured epsilon.
	ErrBadCellSize = errors.New("spatial: cell size must be positive and finite")

	// ErrUnknownEntry indicates an id that is not (or no longer) in the grid.
	ErrUnknownEntry = errors.New("spatial: unknown entry")
)

const (
	opNewGrid = "NewGrid"
	opInsert  = "Insert"
	opUpdate  = "Update"
	opRemove  = "Remove"
)

// gridErrorf wraps err with an operation tag.
func gridErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
