// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// All exported operations return these sentinels (optionally wrapped with an
// operation tag via vectorErrorf). Callers match them with errors.Is.
// No function in this package panics on caller input.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a component index outside [0, N).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDimensionMismatch indicates that a runtime length relation between
	// two dimensions does not hold (Extend, Project, FromSlice, Convert).
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrTooManyValues is returned by New when more than N values are given.
	ErrTooManyValues = errors.New("vector: too many values")

	// ErrZeroLength signals normalisation of a zero-length vector.
	ErrZeroLength = errors.New("vector: zero length")

	// ErrDivisionByZero signals a scalar division by zero.
	ErrDivisionByZero = errors.New("vector: division by zero")

	// ErrParallel is returned when two 2D lines have no single intersection point.
	ErrParallel = errors.New("vector: lines are parallel")
)

// Operation tags used with vectorErrorf.
const (
	opGet       = "Get"
	opSet       = "Set"
	opNew       = "New"
	opFromSlice = "FromSlice"
	opExtend    = "Extend"
	opConvert   = "Convert"
	opSwizzle   = "Swizzle"
	opProject   = "Project"
	opNormalise = "Normalise"
	opDiv       = "Div"
	opNormal    = "Normal"
	opIntersect = "Intersect2"
)

// vectorErrorf wraps err with an operation tag, keeping errors.Is working.
// Call only with a non-nil err.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf reports an out-of-range index together with the valid bound.
func indexErrorf(tag string, i, n int) error {
	return fmt.Errorf("%s: index %d not in [0,%d): %w", tag, i, n, ErrOutOfRange)
}
