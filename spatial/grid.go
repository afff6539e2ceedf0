// SPDX-License-Identifier: MIT

package spatial

import (
	"bytes"
	"encoding/binary"
	"math"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/katalvlaran/lvgeom/aabb"
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

// cellCoord is an integer cell coordinate; only the first N axes are used.
type cellCoord [vector.MaxDimensions]int64

// cellRange is the inclusive block of cells touched by a box.
type cellRange struct {
	lo, hi cellCoord
	n      int
}

// Grid is a uniform hash grid over boxes of dimension D.
type Grid[S scalar.Scalar, D vector.Dim[S]] struct {
	size     float64
	opts     Options
	entries  map[uuid.UUID]aabb.Box[S, D]
	buckets  map[uint64][]uuid.UUID
	overflow map[uuid.UUID]struct{}
}

// NewGrid returns an empty grid with the given cell edge length.
// Returns ErrBadCellSize when cellSize is not finite or does not exceed the
// numeric epsilon.
func NewGrid[S scalar.Scalar, D vector.Dim[S]](cellSize S, opts ...Option) (*Grid[S, D], error) {
	o := resolve(opts...)
	size := float64(cellSize)
	if !scalar.IsFinite(cellSize) || size <= o.numeric.Epsilon() || size <= 0 {
		return nil, gridErrorf(opNewGrid, ErrBadCellSize)
	}

	return &Grid[S, D]{
		size:     size,
		opts:     o,
		entries:  make(map[uuid.UUID]aabb.Box[S, D]),
		buckets:  make(map[uint64][]uuid.UUID),
		overflow: make(map[uuid.UUID]struct{}),
	}, nil
}

// CellSize returns the cell edge length.
func (g *Grid[S, D]) CellSize() S { return S(g.size) }

// Len returns the number of entries.
func (g *Grid[S, D]) Len() int { return len(g.entries) }

// Get returns the box stored under id.
func (g *Grid[S, D]) Get(id uuid.UUID) (aabb.Box[S, D], bool) {
	b, ok := g.entries[id]

	return b, ok
}

// Insert stores box and returns its new id.
// Inverted boxes are rejected with aabb.ErrInvertedBounds. Empty boxes are
// stored but occupy no bucket, so no query ever returns them.
func (g *Grid[S, D]) Insert(box aabb.Box[S, D]) (uuid.UUID, error) {
	if err := box.Validate(); err != nil {
		return uuid.Nil, gridErrorf(opInsert, err)
	}
	id, err := uuid.NewRandomFromReader(g.opts.entropy)
	if err != nil {
		return uuid.Nil, gridErrorf(opInsert, err)
	}
	g.entries[id] = box
	g.link(id, box)

	return id, nil
}

// Update replaces the box stored under id.
func (g *Grid[S, D]) Update(id uuid.UUID, box aabb.Box[S, D]) error {
	old, ok := g.entries[id]
	if !ok {
		return gridErrorf(opUpdate, ErrUnknownEntry)
	}
	if err := box.Validate(); err != nil {
		return gridErrorf(opUpdate, err)
	}
	g.unlink(id, old)
	g.entries[id] = box
	g.link(id, box)

	return nil
}

// Remove deletes the entry with the given id.
func (g *Grid[S, D]) Remove(id uuid.UUID) error {
	box, ok := g.entries[id]
	if !ok {
		return gridErrorf(opRemove, ErrUnknownEntry)
	}
	g.unlink(id, box)
	delete(g.entries, id)

	return nil
}

// Query returns the ids of all entries overlapping box, sorted.
// Complexity: O(cells(box) + candidates·N + k·log k).
func (g *Grid[S, D]) Query(box aabb.Box[S, D]) []uuid.UUID {
	if box.IsEmpty() {
		return nil
	}
	var out []uuid.UUID
	if r := g.cells(box); r.count() > g.opts.maxCells {
		// wider than the bucket budget: a full scan is cheaper
		for id, e := range g.entries {
			if e.Overlaps(box) {
				out = append(out, id)
			}
		}
	} else {
		seen := make(map[uuid.UUID]struct{})
		r.each(func(c *cellCoord) {
			for _, id := range g.buckets[g.key(c, r.n)] {
				if _, dup := seen[id]; dup {
					continue
				}
				seen[id] = struct{}{}
				if g.entries[id].Overlaps(box) {
					out = append(out, id)
				}
			}
		})
		for id := range g.overflow {
			if g.entries[id].Overlaps(box) {
				out = append(out, id)
			}
		}
	}
	sortIDs(out)

	return out
}

// QueryPoint returns the ids of all entries containing p, sorted.
// Complexity: O(bucket + overflow).
func (g *Grid[S, D]) QueryPoint(p vector.Vector[S, D]) []uuid.UUID {
	c, n := g.cellOf(p.Array())
	var out []uuid.UUID
	for _, id := range g.buckets[g.key(&c, n)] {
		if g.entries[id].Contains(p) {
			out = append(out, id)
		}
	}
	for id := range g.overflow {
		if g.entries[id].Contains(p) {
			out = append(out, id)
		}
	}
	sortIDs(out)

	return out
}

// Uncovered returns disjoint boxes whose union is the part of box not covered
// by any entry.
//
// Implementation:
//   - Stage 1: start from the single piece {box} (nothing if box is empty).
//   - Stage 2: for every overlapping entry e (in id order), replace each
//     piece p by aabb.Difference(e, p).
//
// Behavior highlights:
//   - Pieces stay pairwise disjoint, so the covered volume of box equals
//     Volume(box) minus the summed piece volumes.
//
// Complexity:
//   - Time O(k·P·N²) for k overlapping entries and P live pieces.
func (g *Grid[S, D]) Uncovered(box aabb.Box[S, D]) []aabb.Box[S, D] {
	if box.IsEmpty() {
		return nil
	}
	pieces := []aabb.Box[S, D]{box}
	var next []aabb.Box[S, D]
	for _, id := range g.Query(box) {
		e := g.entries[id]
		next = next[:0]
		for _, p := range pieces {
			next = append(next, aabb.Difference(e, p)...)
		}
		pieces, next = next, pieces
		if len(pieces) == 0 {
			break
		}
	}

	return pieces
}

// ---------- bucket bookkeeping ----------

func (g *Grid[S, D]) link(id uuid.UUID, box aabb.Box[S, D]) {
	if box.IsEmpty() {
		return
	}
	r := g.cells(box)
	if r.count() > g.opts.maxCells {
		g.overflow[id] = struct{}{}
		return
	}
	r.each(func(c *cellCoord) {
		k := g.key(c, r.n)
		g.buckets[k] = append(g.buckets[k], id)
	})
}

func (g *Grid[S, D]) unlink(id uuid.UUID, box aabb.Box[S, D]) {
	if _, ok := g.overflow[id]; ok {
		delete(g.overflow, id)
		return
	}
	if box.IsEmpty() {
		return
	}
	r := g.cells(box)
	r.each(func(c *cellCoord) {
		k := g.key(c, r.n)
		ids := g.buckets[k]
		if i := slices.Index(ids, id); i >= 0 {
			ids[i] = ids[len(ids)-1]
			ids = ids[:len(ids)-1]
		}
		if len(ids) == 0 {
			delete(g.buckets, k)
		} else {
			g.buckets[k] = ids
		}
	})
}

// maxCellIndex bounds cell coordinates so that spans fit in int64. Every
// value up to 2^52 is exact in float64.
const maxCellIndex = 1 << 52

// cellIndex maps x to its cell index clamped to ±maxCellIndex, so infinite
// and huge coordinates land in the outermost cells. NaN maps to the lower
// bound when low is set and to the upper bound otherwise.
func (g *Grid[S, D]) cellIndex(x S, low bool) int64 {
	q := math.Floor(float64(x) / g.size)
	switch {
	case math.IsNaN(q):
		if low {
			return -maxCellIndex
		}

		return maxCellIndex
	case q < -maxCellIndex:
		return -maxCellIndex
	case q > maxCellIndex:
		return maxCellIndex
	}

	return int64(q)
}

// cellOf maps a point to the cell containing it.
func (g *Grid[S, D]) cellOf(p D) (cellCoord, int) {
	var c cellCoord
	for d := 0; d < len(p); d++ {
		c[d] = g.cellIndex(p[d], true)
	}

	return c, len(p)
}

// cells returns the cell block covering a non-empty box. A max lying on a
// cell boundary also claims the cell above it; queries re-check exact boxes.
func (g *Grid[S, D]) cells(box aabb.Box[S, D]) cellRange {
	mn, mx := box.Min().Array(), box.Max().Array()
	r := cellRange{n: len(mn)}
	for d := 0; d < len(mn); d++ {
		r.lo[d] = g.cellIndex(mn[d], true)
		r.hi[d] = g.cellIndex(mx[d], false)
	}

	return r
}

// key hashes the first n coordinates of c.
func (g *Grid[S, D]) key(c *cellCoord, n int) uint64 {
	var buf [8 * vector.MaxDimensions]byte
	for d := 0; d < n; d++ {
		binary.LittleEndian.PutUint64(buf[8*d:], uint64(c[d]))
	}

	return xxhash.Sum64(buf[:8*n])
}

// count returns the number of cells in r, saturating at MaxInt. An inverted
// range also saturates, sending its box to the full-scan path.
func (r cellRange) count() int {
	total := 1
	for d := 0; d < r.n; d++ {
		span := r.hi[d] - r.lo[d] + 1
		if span <= 0 || span > int64(math.MaxInt/total) {
			return math.MaxInt
		}
		total *= int(span)
	}

	return total
}

// each visits every cell of r in odometer order (axis 0 fastest).
func (r cellRange) each(fn func(*cellCoord)) {
	cur := r.lo
	for {
		fn(&cur)
		d := 0
		for ; d < r.n; d++ {
			if cur[d] < r.hi[d] {
				cur[d]++
				break
			}
			cur[d] = r.lo[d]
		}
		if d == r.n {
			return
		}
	}
}

func sortIDs(ids []uuid.UUID) {
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })
}
