// SPDX-License-Identifier: MIT

// Package vector implements fixed-size N-dimensional vectors and line segments,
// generic over the scalar type and a compile-time dimension.
//
// What:
//
//   - Vector[S, D] stores N = len(D) components of type S by value.
//     D is an array type such as [3]float64, so Vector[float64, [3]float64]
//     and Vector[float64, [2]float64] are distinct types and cannot be mixed.
//   - Construction: zero value, Zero, Uninitialised, Fill, FromArray,
//     FromSlice, New (brace-list with zero fill), Extend (N-1 -> N), Convert.
//   - Metrics: LengthSquare, Length, DistanceSquare, Distance,
//     ManhattanDistance, Dot.
//   - Arithmetic: Add, Sub, Mul, Div, Neg, Hadamard and in-place forms.
//   - Reordering: Swizzle (same length), Project (shorter), Reverse.
//   - Interpolation: Lerp, Midpoint, ComputeMidpoint.
//   - Line[S, D]: a start/finish pair with length, midpoint and 2D queries
//     (Side, Normal, SignedDistance, SegmentDistance, Intersect2).
//   - Named helpers for 2, 3 and 4 dimensions: Vec2, Vec3, Vec4,
//     R90 and Cross.
//
// Why:
//
//   - Dimension mismatches become compile errors instead of runtime checks.
//   - Values are copied on assignment, so no aliasing surprises.
//
// Conventions:
//
//   - Lerp(t, a, b) = a*(1-t) + b*t: t is the weight of b.
//   - Length of an integer vector is the floor of the true length.
//   - Division by zero and normalisation of a zero vector return errors
//     (ErrDivisionByZero, ErrZeroLength) for every scalar type.
//
// Complexity:
//
//   - All operations are O(N) time and allocation free.
//
// Errors:
//
//   - ErrOutOfRange, ErrDimensionMismatch, ErrTooManyValues,
//     ErrZeroLength, ErrDivisionByZero, ErrParallel.
package vector
