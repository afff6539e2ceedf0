// SPDX-License-Identifier: MIT

// Package spatial indexes axis-aligned boxes in a uniform hash grid.
//
// What:
//
//   - Grid[S, D] buckets every entry into the integer cells its box touches.
//     A cell is the half-open cube [k·size, (k+1)·size) per axis; the cell
//     coordinates are hashed with xxhash into a 64-bit bucket key.
//   - Entries are identified by a UUID returned from Insert.
//   - Query, QueryPoint and Uncovered answer overlap, stabbing and coverage
//     questions using the half-open predicates of package aabb.
//
// Why:
//
//   - Broad-phase culling: a query only inspects entries sharing a bucket,
//     so cost follows local density instead of the total entry count.
//
// Conventions:
//
//   - Entries spanning more than Options.MaxCellsPerEntry cells are kept in
//     an overflow list that every query scans linearly.
//   - Bucket collisions are harmless: candidates are always re-checked
//     against the exact box predicate.
//   - Query results are sorted by id so output is deterministic.
//
// Concurrency:
//
//   - A Grid is not safe for concurrent mutation. Readers may share a Grid
//     as long as no goroutine calls Insert, Update or Remove.
package spatial
