// SPDX-License-Identifier: MIT

// Package matrix provides fixed-shape R×C matrices for transforms and small
// linear algebra, generic over the scalar type.
//
// What:
//
//   - Matrix[S, R, C] stores len(R)*len(C) elements in a flat row-major buffer.
//     R and C are array types (vector.Dim), so the shape is part of the type.
//   - Mul(a *Matrix[S,R,K], b *Matrix[S,K,C]) *Matrix[S,R,C]: operands with
//     mismatched inner dimension do not compile.
//   - Square-only operations (Identity, Transpose in place, Pow, scale and
//     translation builders) take *Matrix[S,N,N].
//   - 4x4 builders: rotations about X/Y/Z, Euler, arbitrary axis, alignment.
//
// Convention:
//
//   - Vectors are row vectors multiplied on the left: MulVec(m, v) = v·m.
//     Homogeneous translation therefore lives in the last row, and
//     Mul(A, B) applies A first, then B.
//
// Errors:
//
//   - ErrOutOfRange, ErrDimensionMismatch, ErrTooManyValues,
//     ErrNegativeExponent, ErrNilMatrix, ErrAntiParallel, ErrZeroLength.
//
// Concurrency:
//
//   - A *Matrix may be read from many goroutines. Writers need exclusive
//     access; share a Clone instead.
package matrix
