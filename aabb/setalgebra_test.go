// SPDX-License-Identifier: MIT

package aabb_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvgeom/aabb"
	"github.com/katalvlaran/lvgeom/vector"
	"github.com/stretchr/testify/require"
)

func TestIntersection(t *testing.T) {
	a, b := aabb.New2(0, 0, 10, 10), aabb.New2(5, -5, 15, 5)
	require.True(t, aabb.Intersection(a, b).Equal(aabb.New2(5, 0, 10, 5)))
	require.True(t, aabb.Intersection(a, b).Equal(aabb.Intersection(b, a)))

	// disjoint inputs give an empty (inverted) box, not an error
	c := aabb.Intersection(a, aabb.New2(20, 20, 30, 30))
	require.True(t, c.IsEmpty())
	e, err := c.AxisExtent(0)
	require.NoError(t, err)
	require.LessOrEqual(t, e, 0)
}

// TestDifferenceScenarios covers the fixed cases with known slab counts.
func TestDifferenceScenarios(t *testing.T) {
	cases := []struct {
		name string
		a, b aabb.Box2[int]
		want int
	}{
		{"same", aabb.New2(0, 0, 10, 10), aabb.New2(0, 0, 10, 10), 0},
		{"no overlap", aabb.New2(0, 0, 10, 10), aabb.New2(20, 20, 30, 30), 1},
		{"touching", aabb.New2(0, 0, 10, 10), aabb.New2(10, 0, 20, 10), 1},
		{"a contains b", aabb.New2(0, 0, 10, 10), aabb.New2(4, 4, 8, 8), 0},
		{"b extends a on x max", aabb.New2(0, 0, 10, 10), aabb.New2(5, 0, 15, 10), 1},
		{"b extends a on both max", aabb.New2(0, 0, 5, 5), aabb.New2(0, 0, 8, 8), 2},
		{"b extends a on both min", aabb.New2(0, 0, 5, 5), aabb.New2(-3, -3, 5, 5), 2},
		{"b contains a", aabb.New2(4, 4, 8, 8), aabb.New2(0, 0, 10, 10), 4},
		{"b crosses a", aabb.New2(0, 4, 10, 6), aabb.New2(4, 0, 6, 10), 2},
		{"b empty", aabb.New2(0, 0, 10, 10), aabb.New2(3, 3, 3, 3), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := aabb.Difference(tc.a, tc.b)
			require.Len(t, got, tc.want)
			checkPartition(t, tc.a, tc.b, got)
		})
	}
}

// TestDifferenceDisjointIsB returns b itself when nothing overlaps.
func TestDifferenceDisjointIsB(t *testing.T) {
	a, b := aabb.New2(0, 0, 1, 1), aabb.New2(5, 5, 6, 7)
	got := aabb.Difference(a, b)
	require.Len(t, got, 1)
	require.True(t, got[0].Equal(b))
}

// TestDifferenceSlabOrder pins the lower-then-upper, ascending-axis decomposition.
func TestDifferenceSlabOrder(t *testing.T) {
	a, b := aabb.New2(4, 4, 8, 8), aabb.New2(0, 0, 10, 10)
	got := aabb.Difference(a, b)
	want := []aabb.Box2[int]{
		aabb.New2(0, 0, 4, 10),  // below a on x
		aabb.New2(4, 0, 10, 4),  // below a on y
		aabb.New2(8, 4, 10, 10), // above a on x
		aabb.New2(4, 8, 8, 10),  // above a on y
	}
	require.Len(t, got, len(want))
	for i := range want {
		require.True(t, got[i].Equal(want[i]), "slab %d: got %v want %v", i, got[i], want[i])
	}
	total := 0
	for _, s := range got {
		total += s.Area()
	}
	require.Equal(t, 84, total) // 100 - 16
}

// TestDifferenceProperties runs the partition checks over random boxes in 1-4D.
func TestDifferenceProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 300; i++ {
		a, b := randBox2(rng), randBox2(rng)
		require.Equal(t, a.Overlaps(b), b.Overlaps(a))
		checkPartition(t, a, b, aabb.Difference(a, b))
	}
	for i := 0; i < 200; i++ {
		a, b := randBox3(rng), randBox3(rng)
		require.Equal(t, a.Overlaps(b), b.Overlaps(a))
		checkPartition(t, a, b, aabb.Difference(a, b))
	}
	for i := 0; i < 100; i++ {
		a, b := randBox[[4]int](rng), randBox[[4]int](rng)
		checkPartition(t, a, b, aabb.Difference(a, b))
	}
	for i := 0; i < 100; i++ {
		a, b := randBox[[1]int](rng), randBox[[1]int](rng)
		checkPartition(t, a, b, aabb.Difference(a, b))
	}
}

func TestDifferenceSelfIsEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		a := randBox3(rng)
		require.Empty(t, aabb.Difference(a, a))
	}
}

// TestGatherEdgesCount checks N·2^(N-1) for N = 1..5 and the endpoint invariant.
func TestGatherEdgesCount(t *testing.T) {
	require.Len(t, aabb.GatherEdges(unitBox[[1]int]()), 1)
	require.Len(t, aabb.GatherEdges(unitBox[[2]int]()), 4)
	require.Len(t, aabb.GatherEdges(unitBox[[3]int]()), 12)
	require.Len(t, aabb.GatherEdges(unitBox[[4]int]()), 32)
	require.Len(t, aabb.GatherEdges(unitBox[[5]int]()), 80)

	require.Len(t, aabb.Corners(unitBox[[3]int]()), 8)
	require.Len(t, aabb.Corners(unitBox[[5]int]()), 32)

	checkEdges(t, unitBox[[3]int]())
	checkEdges(t, aabb.New(vector.Vec4(-1, 2, 0, 5), vector.Vec4(3, 4, 7, 6)))
}

// TestGatherEdges2D pins the concrete edge list of a rectangle.
func TestGatherEdges2D(t *testing.T) {
	edges := aabb.GatherEdges(aabb.New2(0, 0, 2, 1))
	want := []vector.Line2[int]{
		vector.NewLine(vector.Vec2(0, 0), vector.Vec2(2, 0)),
		vector.NewLine(vector.Vec2(0, 0), vector.Vec2(0, 1)),
		vector.NewLine(vector.Vec2(2, 0), vector.Vec2(2, 1)),
		vector.NewLine(vector.Vec2(0, 1), vector.Vec2(2, 1)),
	}
	require.Len(t, edges, len(want))
	for i := range want {
		require.True(t, edges[i].Equal(want[i]), "edge %d: %v", i, edges[i])
	}
}

// ---------- helpers ----------

func unitBox[D vector.Dim[int]]() aabb.Box[int, D] {
	return aabb.New(vector.Zero[int, D](), vector.Fill[int, D](1))
}

func randBox[D vector.Dim[int]](rng *rand.Rand) aabb.Box[int, D] {
	var lo, hi D
	for d := 0; d < len(lo); d++ {
		x, y := rng.Intn(8), rng.Intn(8)
		lo[d], hi[d] = min(x, y), max(x, y) // may be degenerate on purpose
	}

	return aabb.New(vector.FromArray[int](lo), vector.FromArray[int](hi))
}

func randBox2(rng *rand.Rand) aabb.Box2[int] { return randBox[[2]int](rng) }

func randBox3(rng *rand.Rand) aabb.Box[int, [3]int] { return randBox[[3]int](rng) }

// checkPartition asserts the slab invariants of Difference(a, b):
// no slab is empty, none overlaps a, slabs are pairwise disjoint, there are at
// most 2N of them, the volume law holds, and every lattice cell of b is covered
// by exactly one of a∩b or a slab.
func checkPartition[D vector.Dim[int]](t *testing.T, a, b aabb.Box[int, D], slabs []aabb.Box[int, D]) {
	t.Helper()
	n := vector.Len[int, D]()
	require.LessOrEqual(t, len(slabs), 2*n)

	for i, s := range slabs {
		require.False(t, s.IsEmpty(), "slab %d empty: %v", i, s)
		require.False(t, s.Overlaps(a), "slab %d overlaps a: %v vs %v", i, s, a)
		require.True(t, b.ContainsBox(s), "slab %d escapes b: %v vs %v", i, s, b)
		for j := i + 1; j < len(slabs); j++ {
			require.False(t, s.Overlaps(slabs[j]), "slabs %d and %d overlap", i, j)
		}
	}

	if b.IsEmpty() {
		require.Empty(t, slabs)
		return
	}
	inter := aabb.Intersection(a, b)
	want := b.Volume()
	got := 0
	if !inter.IsEmpty() {
		got += inter.Volume()
	}
	for _, s := range slabs {
		got += s.Volume()
	}
	require.Equal(t, want, got, "volume law a=%v b=%v", a, b)

	// lattice check: every unit cell of b is covered exactly once
	forEachCell(b, func(p vector.Vector[int, D]) {
		count := 0
		if a.Contains(p) {
			count++
		}
		for _, s := range slabs {
			if s.Contains(p) {
				count++
			}
		}
		require.Equal(t, 1, count, "cell %v of b=%v with a=%v", p, b, a)
	})
}

// forEachCell visits every integer point of a non-empty integer box.
func forEachCell[D vector.Dim[int]](b aabb.Box[int, D], fn func(vector.Vector[int, D])) {
	lo, hi := b.Min().Array(), b.Max().Array()
	cur := lo
	for {
		fn(vector.FromArray[int](cur))
		d := 0
		for ; d < len(cur); d++ {
			cur[d]++
			if cur[d] < hi[d] {
				break
			}
			cur[d] = lo[d]
		}
		if d == len(cur) {
			return
		}
	}
}

// checkEdges asserts each edge joins two corners differing on exactly one axis
// and that no edge is repeated.
func checkEdges[D vector.Dim[int]](t *testing.T, box aabb.Box[int, D]) {
	t.Helper()
	edges := aabb.GatherEdges(box)
	lo, hi := box.Min().Array(), box.Max().Array()
	for i, e := range edges {
		s, f := e.Start.Array(), e.Finish.Array()
		diff := 0
		for d := 0; d < len(s); d++ {
			require.True(t, s[d] == lo[d] || s[d] == hi[d])
			require.True(t, f[d] == lo[d] || f[d] == hi[d])
			if s[d] != f[d] {
				diff++
			}
		}
		require.Equal(t, 1, diff, "edge %d: %v", i, e)
		for j := i + 1; j < len(edges); j++ {
			require.False(t, e.Equal(edges[j]), "edges %d and %d repeat", i, j)
		}
	}
}
