// Package scalar defines the numeric element types accepted by lvgeom and the
// small set of scalar helpers the vector, matrix and box packages are built on.
//
// What:
//
//   - Scalar: every signed/unsigned integer and floating-point type (including
//     named types whose underlying type is one of those).
//   - Sqrt, Abs, Sin, Cos, Pow: thin wrappers that pick the float32 path
//     (github.com/chewxy/math32), the float64 path (math) or an integer path.
//   - Options: the numeric policy (absolute and relative tolerance) consumed by
//     approximate comparisons such as vector.ApproxEqual and matrix.AllClose.
//
// Why:
//
//   - Generic code over Scalar cannot call math.Sqrt directly; routing through
//     one helper keeps integer vectors (pixel grids, voxel indices) and float
//     vectors on the same API.
//
// Complexity:
//
//   - Every helper is O(1) except Pow, which is O(log |exp|) multiplications.
//
// Notes:
//
//   - Integer Sqrt is the floor of the exact square root; negative integers
//     yield 0. Float paths keep IEEE-754 semantics (Sqrt(-1) is NaN).
package scalar
