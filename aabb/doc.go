// SPDX-License-Identifier: MIT

// Package aabb implements N-dimensional axis-aligned bounding boxes and their
// set algebra.
//
// What:
//
//   - Box[S, D] is the region between two corners, min and max.
//   - Predicates: Contains, ContainsBox, Overlaps, CanContain, IsEmpty.
//   - Metrics: AxisExtent, Diagonal, Center, Volume, Inradius, Circumradius, Distance.
//   - Set algebra: Intersection, Difference (B minus A as disjoint slabs),
//     Corners and GatherEdges (the N·2^(N-1) edges of the box).
//   - 2D helpers: Width, Height, New2, EnclosingTriangle, OuterEnclosingTriangle.
//
// Containment convention (half-open):
//
//	p ∈ box  ⇔  min[d] <= p[d] < max[d] for every axis d
//
// A box with min == max on any axis contains nothing and overlaps nothing.
// Two boxes that only touch along a face do not overlap. Every predicate and
// set operation in this package follows this one rule, which is what makes
// Difference an exact partition.
//
// Validity:
//
//   - New does not reorder or reject inverted corners; Validate reports
//     ErrInvertedBounds and FromCorners builds a valid box from any two points.
//
// Complexity:
//
//   - Predicates and metrics are O(N). Difference is O(N²) and returns at most
//     2·N boxes. GatherEdges is O(N·2^N).
package aabb
