// SPDX-License-Identifier: MIT

// Package scalar - math wrappers dispatching on the element type.
//
// Purpose:
//   - Give generic code one entry point for sqrt/abs/sin/cos/pow over any Scalar.
//   - float32 goes through github.com/chewxy/math32 to avoid float64 round trips.
//   - Integers use exact integer arithmetic where one exists (Sqrt, Pow).
package scalar

import (
	"math"

	"github.com/chewxy/math32"
)

// Sqrt returns the square root of v in the element type S.
// Implementation:
//   - Stage 1: float32 → math32.Sqrt; other floats → math.Sqrt.
//   - Stage 2: integers → floor square root by the digit-by-digit method.
//
// Behavior highlights:
//   - Float paths keep IEEE-754 semantics (negative input gives NaN).
//   - Integer path is exact: Sqrt(15) == 3, Sqrt(16) == 4; negative input gives 0.
//
// Complexity:
//   - Time O(1) for floats, O(bits) for integers. Space O(1).
func Sqrt[S Scalar](v S) S {
	if IsFloat[S]() {
		if IsFloat32[S]() {
			return S(math32.Sqrt(float32(v)))
		}

		return S(math.Sqrt(float64(v)))
	}
	if v <= 0 {
		return 0
	}

	return S(isqrt(uint64(v)))
}

// isqrt computes floor(sqrt(x)) one result bit at a time.
func isqrt(x uint64) uint64 {
	var res uint64
	one := uint64(1) << 62 // highest power of four representable
	for one > x {
		one >>= 2
	}
	for one != 0 {
		if x >= res+one {
			x -= res + one
			res += 2 * one
		}
		res >>= 1
		one >>= 2
	}

	return res
}

// Abs returns |v|. Unsigned types are returned unchanged.
func Abs[S Scalar](v S) S {
	if v < 0 {
		return -v
	}

	return v
}

// Sin returns sin(v) converted back to S.
// Integer scalars truncate the result, which keeps exact angles such as 0 exact.
func Sin[S Scalar](v S) S {
	if IsFloat32[S]() {
		return S(math32.Sin(float32(v)))
	}

	return S(math.Sin(float64(v)))
}

// Cos returns cos(v) converted back to S.
func Cos[S Scalar](v S) S {
	if IsFloat32[S]() {
		return S(math32.Cos(float32(v)))
	}

	return S(math.Cos(float64(v)))
}

// Acos returns acos(v) converted back to S.
func Acos[S Scalar](v S) S {
	if IsFloat32[S]() {
		return S(math32.Acos(float32(v)))
	}

	return S(math.Acos(float64(v)))
}

// Pow raises base to an integer exponent by repeated squaring.
// A negative exponent returns 1/base^|exp| for float types. For integer types
// it returns the truncated reciprocal, and 0 when base is 0.
// Complexity: O(log |exp|) multiplications.
func Pow[S Scalar](base S, exp int) S {
	if exp < 0 {
		d := Pow(base, -exp)
		if d == 0 && !IsFloat[S]() {
			return 0
		}

		return S(1) / d
	}
	result := S(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		exp >>= 1
		base *= base
	}

	return result
}

// IsFinite reports whether v is neither NaN nor ±Inf. Integers are always finite.
func IsFinite[S Scalar](v S) bool {
	if !IsFloat[S]() {
		return true
	}
	f := float64(v)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
