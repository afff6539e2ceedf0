// Package lvgeom is a generic N-dimensional geometry toolkit: fixed-size
// vectors and matrices, axis-aligned bounding boxes, lines and triangles,
// all parameterized over a scalar type and a compile-time dimension.
//
// What is in the box?
//
//	scalar/   the Scalar constraint, numeric tolerance options, Sqrt/Sin/Cos
//	            that pick float32, float64 or integer arithmetic per type
//	vector/   Vector[S, D] with metrics, swizzles, lerp, lines, 2D/3D helpers
//	matrix/   Matrix[S, R, C] with compile-time checked Mul, Pow, transpose,
//	            scale/translation builders and 4×4 rotations
//	aabb/     Box[S, D], half-open containment and overlap, Difference,
//	            GatherEdges and 2D enclosing triangles
//	triangle/ angles, centroid, area, circumcircle
//	spatial/  hash grid of boxes with overlap, point and coverage queries
//
// Dimensions are array types: Vector[float64, [3]float64] is a 3D vector, and
// multiplying a 4×2 matrix by a 3×3 one does not compile.
//
// Conventions:
//
//   - Vectors are values; matrices are pointers with private storage.
//   - Vectors are row vectors: MulVec computes v·M, translation lives in the
//     last row and Mul(A, B) applies A first.
//   - A box contains p when min <= p < max on every axis.
//   - Caller mistakes come back as errors (errors.Is on package sentinels),
//     never as panics.
//
// The geomctl command (cmd/geomctl) runs box set algebra from a YAML scene.
package lvgeom
