package vector_test

import (
	"testing"

	"github.com/katalvlaran/lvgeom/vector"
	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	a, b := vector.Vec3(1, 2, 3), vector.Vec3(4, 5, 6)

	require.Equal(t, [3]int{5, 7, 9}, a.Add(b).Array())
	require.Equal(t, [3]int{-3, -3, -3}, a.Sub(b).Array())
	require.Equal(t, [3]int{2, 4, 6}, a.Mul(2).Array())
	require.Equal(t, [3]int{-1, -2, -3}, a.Neg().Array())
	require.Equal(t, [3]int{4, 10, 18}, a.Hadamard(b).Array())

	q, err := b.Div(2)
	require.NoError(t, err)
	require.Equal(t, [3]int{2, 2, 3}, q.Array())

	// operands are never mutated by value forms
	require.Equal(t, [3]int{1, 2, 3}, a.Array())
	require.Equal(t, [3]int{4, 5, 6}, b.Array())
}

// TestDivisionByZero is an error for floats and integers alike.
func TestDivisionByZero(t *testing.T) {
	_, err := vector.Vec2(1, 2).Div(0)
	require.ErrorIs(t, err, vector.ErrDivisionByZero)

	f := vector.Vec2(1.0, 2.0)
	require.ErrorIs(t, f.DivInPlace(0), vector.ErrDivisionByZero)
	require.Equal(t, [2]float64{1, 2}, f.Array())
}

func TestInPlace(t *testing.T) {
	v := vector.Vec2(1.0, 1.0)
	v.AddInPlace(vector.Vec2(1.0, 2.0))
	v.SubInPlace(vector.Vec2(0.5, 0.5))
	v.MulInPlace(2)
	require.NoError(t, v.DivInPlace(3))
	require.True(t, v.ApproxEqual(vector.Vec2(1.0, 5.0/3)))
}

func TestSum(t *testing.T) {
	require.Equal(t, [2]int{0, 0}, vector.Sum[int, [2]int]().Array())
	s := vector.Sum(vector.Vec2(1, 2), vector.Vec2(3, 4), vector.Vec2(-1, 0))
	require.Equal(t, [2]int{3, 6}, s.Array())
}
