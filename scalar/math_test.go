package scalar_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/stretchr/testify/require"
)

type meters float64 // named float, must classify like float64

// TestIsFloat classifies every family of Scalar.
func TestIsFloat(t *testing.T) {
	require.False(t, scalar.IsFloat[int]())
	require.False(t, scalar.IsFloat[uint8]())
	require.True(t, scalar.IsFloat[float32]())
	require.True(t, scalar.IsFloat[float64]())
	require.True(t, scalar.IsFloat[meters]())

	require.True(t, scalar.IsFloat32[float32]())
	require.False(t, scalar.IsFloat32[float64]())
	require.False(t, scalar.IsFloat32[int32]()) // same width, not a float
}

// TestSqrt covers the integer floor path and both float paths.
func TestSqrt(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, 0}, {1, 1}, {3, 1}, {4, 2}, {15, 3}, {16, 4}, {17, 4}, {1 << 40, 1 << 20}, {-9, 0},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, scalar.Sqrt(tc.in), "Sqrt(%d)", tc.in)
	}

	require.Equal(t, 3.0, scalar.Sqrt(9.0))
	require.Equal(t, float32(1.5), scalar.Sqrt(float32(2.25)))
	require.True(t, math.IsNaN(scalar.Sqrt(-1.0)))
	require.Equal(t, meters(5), scalar.Sqrt(meters(25)))
}

// TestPow mirrors the integer exponent checks: 2^3 and 5^5.
func TestPow(t *testing.T) {
	require.Equal(t, 8, scalar.Pow(2, 3))
	require.Equal(t, 3125, scalar.Pow(5, 5))
	require.Equal(t, 1, scalar.Pow(7, 0))
	require.Equal(t, 0.25, scalar.Pow(2.0, -2))
	require.Equal(t, 0, scalar.Pow(0, -1)) // integer reciprocal of zero is 0, not a panic
	require.Equal(t, 0, scalar.Pow(3, -1))
}

// TestTrig checks that exact angles stay exact for every scalar family.
func TestTrig(t *testing.T) {
	require.Equal(t, 1, scalar.Cos(0))
	require.Equal(t, 0, scalar.Sin(0))
	require.Equal(t, float32(1), scalar.Cos(float32(0)))
	require.InDelta(t, 1.0, scalar.Sin(math.Pi/2), 1e-15)
	require.InDelta(t, math.Pi, scalar.Acos(-1.0), 1e-15)
}

// TestAbsAndFinite covers sign handling and finiteness checks.
func TestAbsAndFinite(t *testing.T) {
	require.Equal(t, 4, scalar.Abs(-4))
	require.Equal(t, uint(4), scalar.Abs(uint(4)))
	require.Equal(t, 2.5, scalar.Abs(-2.5))

	require.True(t, scalar.IsFinite(42))
	require.True(t, scalar.IsFinite(1.0))
	require.False(t, scalar.IsFinite(math.NaN()))
	require.False(t, scalar.IsFinite(math.Inf(-1)))
}
