// SPDX-License-Identifier: MIT

package aabb_test

import (
	"testing"

	"github.com/katalvlaran/lvgeom/aabb"
	"github.com/katalvlaran/lvgeom/vector"
	"github.com/stretchr/testify/require"
)

// TestContainsHalfOpen checks both boundary edges explicitly.
func TestContainsHalfOpen(t *testing.T) {
	b := aabb.New2(0, 0, 10, 10)
	require.True(t, b.Contains(vector.Vec2(0, 0)))  // min is inclusive
	require.True(t, b.Contains(vector.Vec2(9, 9)))
	require.False(t, b.Contains(vector.Vec2(10, 5))) // max is exclusive
	require.False(t, b.Contains(vector.Vec2(5, 10)))
	require.False(t, b.Contains(vector.Vec2(-1, 5)))

	f := aabb.New2(0.0, 0.0, 1.0, 1.0)
	require.True(t, f.Contains(vector.Vec2(0.999999, 0.0)))
	require.False(t, f.Contains(vector.Vec2(1.0, 0.0)))
}

// TestPointBoxContainsNothing: a zero-volume box holds no points, not even its own.
func TestPointBoxContainsNothing(t *testing.T) {
	p := vector.Vec3(1, 2, 3)
	b := aabb.FromPoint(p)
	require.False(t, b.Contains(p))
	require.True(t, b.IsEmpty())
	require.Zero(t, b.Volume())
	require.False(t, b.Overlaps(b))
	require.False(t, aabb.New2(0, 0, 10, 10).Overlaps(aabb.FromPoint(vector.Vec2(5, 5))))
}

func TestContainsBox(t *testing.T) {
	a := aabb.New2(0, 0, 10, 10)
	require.True(t, a.ContainsBox(aabb.New2(4, 4, 8, 8)))
	require.True(t, a.ContainsBox(a)) // max corners may coincide
	require.False(t, a.ContainsBox(aabb.New2(4, 4, 11, 8)))
	require.False(t, a.ContainsBox(aabb.New2(-1, 4, 8, 8)))
	require.False(t, aabb.New2(4, 4, 8, 8).ContainsBox(a))
}

func TestOverlaps(t *testing.T) {
	a := aabb.New2(0, 0, 10, 10)
	cases := []struct {
		name string
		b    aabb.Box2[int]
		want bool
	}{
		{"inside", aabb.New2(2, 2, 3, 3), true},
		{"partial", aabb.New2(5, 5, 15, 15), true},
		{"touching face", aabb.New2(10, 0, 20, 10), false},
		{"touching corner", aabb.New2(10, 10, 20, 20), false},
		{"disjoint", aabb.New2(20, 20, 30, 30), false},
		{"enclosing", aabb.New2(-5, -5, 15, 15), true},
		{"thin slab", aabb.New2(3, -5, 3, 15), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, a.Overlaps(tc.b))
			require.Equal(t, tc.want, tc.b.Overlaps(a)) // symmetric
		})
	}
}

// TestExpandMonotonic: expansion never shrinks the box.
func TestExpandMonotonic(t *testing.T) {
	b := aabb.FromPoint(vector.Vec2(5, 5))
	pts := []vector.Vector2[int]{vector.Vec2(1, 7), vector.Vec2(3, 3), vector.Vec2(9, 2), vector.Vec2(4, 4)}
	prev := b
	for _, p := range pts {
		b.ExpandToContain(p)
		require.True(t, b.CanContain(prev))
		require.LessOrEqual(t, prev.Volume(), b.Volume())
		prev = b
	}
	require.True(t, b.Equal(aabb.New2(1, 2, 9, 7)))

	b.ExpandToContainBox(aabb.New2(-1, 0, 2, 3))
	require.True(t, b.Equal(aabb.New2(-1, 0, 9, 7)))

	require.True(t, aabb.FromCorners(vector.Vec2(9, 1), vector.Vec2(2, 7)).Equal(aabb.New2(2, 1, 9, 7)))
}

func TestMetrics(t *testing.T) {
	b := aabb.New(vector.Vec3(0.0, 0, 0), vector.Vec3(2.0, 4, 4))
	e, err := b.AxisExtent(1)
	require.NoError(t, err)
	require.Equal(t, 4.0, e)
	_, err = b.AxisExtent(3)
	require.ErrorIs(t, err, aabb.ErrOutOfRange)

	require.Equal(t, [3]float64{2, 4, 4}, b.Diagonal().Array())
	require.Equal(t, [3]float64{1, 2, 2}, b.Center().Array())
	require.Equal(t, b.Center().Array(), b.Incenter().Array())
	require.Equal(t, 32.0, b.Volume())
	require.Equal(t, 32.0, b.Area())
	require.Equal(t, 1.0, b.Inradius())
	require.Equal(t, 3.0, b.Circumradius()) // |(2,4,4)| = 6

	require.Zero(t, b.Distance(vector.Vec3(1.0, 1, 1)))
	require.Equal(t, 5.0, b.Distance(vector.Vec3(-3.0, 8, 2)))

	// integer center does not overflow
	big := int32(2_000_000_000)
	ib := aabb.New2(big-10, big-10, big, big)
	require.Equal(t, [2]int32{big - 5, big - 5}, ib.Center().Array())
}

func TestCanContain(t *testing.T) {
	a := aabb.New2(0, 0, 10, 5)
	require.True(t, a.CanContain(aabb.New2(100, 100, 110, 105))) // far away but same size
	require.False(t, a.CanContain(aabb.New2(0, 0, 5, 10)))
}

func TestMutation(t *testing.T) {
	b := aabb.New2(0, 0, 2, 2)
	b.Move(vector.Vec2(1, 1))
	require.True(t, b.Equal(aabb.New2(1, 1, 3, 3)))
	b.MoveMin(vector.Vec2(-1, 0))
	b.MoveMax(vector.Vec2(0, 2))
	require.True(t, b.Equal(aabb.New2(0, 1, 3, 5)))
	b.SetMin(vector.Vec2(-2, -2))
	b.SetMax(vector.Vec2(2, 2))
	require.Equal(t, [2]int{-2, -2}, b.Min().Array())
	require.Equal(t, [2]int{2, 2}, b.Max().Array())
	require.Equal(t, "[(-2, -2), (2, 2))", b.String())
}

func TestValidate(t *testing.T) {
	require.NoError(t, aabb.New2(0, 0, 1, 1).Validate())
	require.NoError(t, aabb.FromPoint(vector.Vec2(3, 3)).Validate())
	inv := aabb.New2(5, 0, 1, 1)
	require.ErrorIs(t, inv.Validate(), aabb.ErrInvertedBounds)
	require.True(t, inv.IsEmpty())
}
