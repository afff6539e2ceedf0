// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/vector"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	testAngles = []float64{0, 0.1, math.Pi / 6, math.Pi / 2, 2, math.Pi, -1.3}
	testPoints = [][4]float64{{1, 0, 0, 1}, {0, 1, 0, 0}, {1, 2, 3, 1}, {-4, 0.5, 2, 0}}
)

// TestRotationZeroIsIdentity holds for integer and floating scalars alike.
func TestRotationZeroIsIdentity(t *testing.T) {
	require.True(t, matrix.RotationAroundZ(0).Equal(matrix.Identity[int, [4]int]()))
	require.True(t, matrix.RotationAroundZ(float32(0)).Equal(matrix.Identity[float32, [4]float32]()))
	require.True(t, matrix.RotationAroundZ(0.0).Equal(matrix.Identity[float64, [4]float64]()))
	require.True(t, matrix.RotationAroundX(0).Equal(matrix.Identity[int, [4]int]()))
	require.True(t, matrix.RotationAroundY(0).Equal(matrix.Identity[int, [4]int]()))
}

// TestRotationCounterClockwise pins the handedness: +90° about Z maps X to Y.
func TestRotationCounterClockwise(t *testing.T) {
	q := math.Pi / 2
	require.True(t, matrix.TransformDirection(matrix.RotationAroundZ(q), vector.Vec3(1.0, 0, 0)).ApproxEqual(vector.Vec3(0.0, 1, 0)))
	require.True(t, matrix.TransformDirection(matrix.RotationAroundX(q), vector.Vec3(0.0, 1, 0)).ApproxEqual(vector.Vec3(0.0, 0, 1)))
	require.True(t, matrix.TransformDirection(matrix.RotationAroundY(q), vector.Vec3(0.0, 0, 1)).ApproxEqual(vector.Vec3(1.0, 0, 0)))
}

// TestRotationMatchesMathgl applies both libraries to the same points.
func TestRotationMatchesMathgl(t *testing.T) {
	type builder struct {
		name string
		ours func(float64) *matrix.Matrix4[float64]
		mgl  func(float64) mgl64.Mat4
	}
	builders := []builder{
		{"X", matrix.RotationAroundX[float64], mgl64.HomogRotate3DX},
		{"Y", matrix.RotationAroundY[float64], mgl64.HomogRotate3DY},
		{"Z", matrix.RotationAroundZ[float64], mgl64.HomogRotate3DZ},
	}
	for _, b := range builders {
		t.Run(b.name, func(t *testing.T) {
			for _, a := range testAngles {
				for _, p := range testPoints {
					got := matrix.MulVec(b.ours(a), vector.FromArray[float64](p)).Array()
					want := b.mgl(a).Mul4x1(mgl64.Vec4(p))
					for i := 0; i < 4; i++ {
						require.InDelta(t, want[i], got[i], 1e-12, "angle=%v p=%v i=%d", a, p, i)
					}
				}
			}
		})
	}
}

// TestEulerOrder: X first, then Y, then Z.
func TestEulerOrder(t *testing.T) {
	x, y, z := 0.3, -1.1, 2.2
	m := matrix.RotationFromEuler(x, y, z)
	want := mgl64.HomogRotate3DZ(z).Mul4(mgl64.HomogRotate3DY(y)).Mul4(mgl64.HomogRotate3DX(x))
	for _, p := range testPoints {
		got := matrix.MulVec(m, vector.FromArray[float64](p)).Array()
		w := want.Mul4x1(mgl64.Vec4(p))
		for i := 0; i < 4; i++ {
			require.InDelta(t, w[i], got[i], 1e-12)
		}
	}
}

// TestRotationAroundAxisMatchesGonum compares Rodrigues with r3.Rotation.
func TestRotationAroundAxisMatchesGonum(t *testing.T) {
	axes := []r3.Vec{{X: 0, Y: 0, Z: 1}, {X: 1.0 / 3, Y: 2.0 / 3, Z: 2.0 / 3}, {X: 0, Y: -0.6, Z: 0.8}}
	for _, ax := range axes {
		for _, a := range testAngles {
			m, err := matrix.RotationAroundAxis(vector.Vec3(ax.X, ax.Y, ax.Z), a)
			require.NoError(t, err)
			rot := r3.NewRotation(a, ax)
			for _, p := range testPoints {
				got := matrix.TransformDirection(m, vector.Vec3(p[0], p[1], p[2])).Array()
				want := rot.Rotate(r3.Vec{X: p[0], Y: p[1], Z: p[2]})
				require.InDelta(t, want.X, got[0], 1e-12)
				require.InDelta(t, want.Y, got[1], 1e-12)
				require.InDelta(t, want.Z, got[2], 1e-12)
			}
		}
	}

	m, err := matrix.RotationAroundAxis(vector.Vec3(0.0, 0, 5), 0.7) // normalised internally
	require.NoError(t, err)
	require.True(t, matrix.AllClose(m, matrix.RotationAroundZ(0.7)))

	_, err = matrix.RotationAroundAxis(vector.Vec3(0.0, 0, 0), 1)
	require.ErrorIs(t, err, matrix.ErrZeroLength)
}

func TestRotationAlign(t *testing.T) {
	pairs := [][2]vector.Vector3[float64]{
		{vector.Vec3(1.0, 0, 0), vector.Vec3(0.0, 1, 0)},
		{vector.Vec3(0.0, 0, 1), vector.Vec3(0.6, 0.8, 0)},
		{vector.Vec3(1.0/3, 2.0/3, 2.0/3), vector.Vec3(0.0, -0.6, 0.8)},
	}
	for _, pr := range pairs {
		m, err := matrix.RotationAlign(pr[0], pr[1])
		require.NoError(t, err)
		require.True(t, matrix.TransformDirection(m, pr[0]).ApproxEqual(pr[1]), "%v -> %v", pr[0], pr[1])
		// orthonormal: R·Rᵀ = I
		require.True(t, matrix.AllClose(matrix.Mul(m, matrix.Transposed(m)), matrix.Identity[float64, [4]float64]()))
	}

	same, err := matrix.RotationAlign(vector.Vec3(0.0, 1, 0), vector.Vec3(0.0, 1, 0))
	require.NoError(t, err)
	require.True(t, matrix.AllClose(same, matrix.Identity[float64, [4]float64]()))

	_, err = matrix.RotationAlign(vector.Vec3(1.0, 0, 0), vector.Vec3(-1.0, 0, 0))
	require.ErrorIs(t, err, matrix.ErrAntiParallel)
}

func TestTransformPoint(t *testing.T) {
	m := matrix.Mul(matrix.RotationAroundZ(math.Pi/2), matrix.Translation4(vector.Vec3(10.0, 0, 0)))
	p := matrix.TransformPoint(m, vector.Vec3(1.0, 0, 0))
	require.True(t, p.ApproxEqual(vector.Vec3(10.0, 1, 0))) // rotate, then translate
	d := matrix.TransformDirection(m, vector.Vec3(1.0, 0, 0))
	require.True(t, d.ApproxEqual(vector.Vec3(0.0, 1, 0)))
}
