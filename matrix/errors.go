// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Exported functions return these sentinels (wrapped with an operation
// tag via matrixErrorf) and tests check them via errors.Is. No function panics
// on caller input.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for easy grepping.
// Shape errors that the type system can express (Mul of a 4x2 by a 4x4,
// square-only operations on a 4x2) are compile errors and have no sentinel.

var (
	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates a runtime length relation that does not hold,
	// e.g. FromSlice with len != R*C or a homogeneous vector that is not N-1 long.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrTooManyValues is returned by FromValues when more than R*C values are given.
	ErrTooManyValues = errors.New("matrix: too many values")

	// ErrNegativeExponent is returned by Pow for k < 0 (no inverse is computed).
	ErrNegativeExponent = errors.New("matrix: negative exponent")

	// ErrNilMatrix indicates that a nil *Matrix was used where it must be written.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrAntiParallel is returned by RotationAlign when the two directions are
	// opposite and the alignment rotation is not unique.
	ErrAntiParallel = errors.New("matrix: vectors are anti-parallel")

	// ErrZeroLength is returned when a rotation axis has zero length.
	ErrZeroLength = errors.New("matrix: zero-length axis")
)

// Operation name constants for unified error wrapping.
const (
	opGet           = "Get"
	opSet           = "Set"
	opRow           = "Row"
	opFromSlice     = "FromSlice"
	opFromValues    = "FromValues"
	opFromVector    = "FromVector"
	opPow           = "Pow"
	opBecomeScale   = "BecomeScale"
	opScale         = "BecomeScaleHomogeneous"
	opUniformScale  = "BecomeUniformScale"
	opTranslation   = "BecomeTranslation"
	opRotation      = "BecomeRotation"
	opRotationAxis  = "RotationAroundAxis"
	opRotationAlign = "RotationAlign"
	opIdentity      = "BecomeIdentity"
	opAddInPlace    = "AddInPlace"
	opSubInPlace    = "SubInPlace"
	opTranspose     = "Transpose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
//
// Implementation:
//   - Stage 1: Wrap using fmt.Errorf("%s: %w", tag, err) to enable errors.Is/As.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
