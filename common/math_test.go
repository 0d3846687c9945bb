package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-5

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = float32(i)
	}
	Identity(m)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := float32(0)
			if i == j {
				want = 1
			}
			assert.Equal(t, want, m[i*4+j], "element (%d,%d)", i, j)
		}
	}
}

func TestMul4_IdentityIsNeutral(t *testing.T) {
	id := make([]float32, 16)
	Identity(id)

	m := []float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	out := make([]float32, 16)

	Mul4(out, id, m)
	assert.Equal(t, m, out, "identity * m")

	Mul4(out, m, id)
	assert.Equal(t, m, out, "m * identity")
}

func TestMul4_TranslationComposition(t *testing.T) {
	a := make([]float32, 16)
	b := make([]float32, 16)
	Identity(a)
	Identity(b)
	a[12], a[13], a[14] = 1, 2, 3
	b[12], b[13], b[14] = 10, 20, 30

	out := make([]float32, 16)
	Mul4(out, a, b)

	assert.InDelta(t, 11.0, out[12], epsilon)
	assert.InDelta(t, 22.0, out[13], epsilon)
	assert.InDelta(t, 33.0, out[14], epsilon)
}

func TestPerspective(t *testing.T) {
	out := make([]float32, 16)
	fovY := float32(math.Pi / 3) // 60 degrees
	Perspective(out, fovY, 16.0/9.0, 0.1, 100.0)

	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))
	assert.InDelta(t, f/(16.0/9.0), out[0], epsilon)
	assert.InDelta(t, f, out[5], epsilon)
	assert.InDelta(t, -1.0, out[11], epsilon)
	assert.InDelta(t, 0.0, out[15], epsilon)
}

func TestLookAt(t *testing.T) {
	out := make([]float32, 16)
	LookAt(out, 0, 0, 5, 0, 0, 0, 0, 1, 0)

	// The eye maps to the origin of view space.
	eye := TransformPoint(out, Vec3{0, 0, 5})
	assert.InDelta(t, 0.0, eye.X, epsilon)
	assert.InDelta(t, 0.0, eye.Y, epsilon)
	assert.InDelta(t, 0.0, eye.Z, epsilon)

	// The target sits on the negative Z axis in view space.
	target := TransformPoint(out, Vec3{0, 0, 0})
	assert.InDelta(t, 0.0, target.X, epsilon)
	assert.InDelta(t, 0.0, target.Y, epsilon)
	assert.InDelta(t, -5.0, target.Z, epsilon)
}

func TestVec3_Ops(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	assert.Equal(t, Vec3{5, 7, 9}, a.Add(b))
	assert.Equal(t, Vec3{-3, -3, -3}, a.Sub(b))
	assert.Equal(t, Vec3{2, 4, 6}, a.Scale(2))
	assert.InDelta(t, 32.0, a.Dot(b), epsilon)

	cross := Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0})
	assert.Equal(t, Vec3{0, 0, 1}, cross)
}

func TestVec3_Normalized(t *testing.T) {
	n := Vec3{3, 0, 4}.Normalized()
	assert.InDelta(t, 1.0, n.Length(), epsilon)
	assert.InDelta(t, 0.6, n.X, epsilon)
	assert.InDelta(t, 0.8, n.Z, epsilon)

	assert.Equal(t, Vec3{}, Vec3{}.Normalized(), "zero vector stays zero")
}

func TestTransformDirection_IgnoresTranslation(t *testing.T) {
	m := make([]float32, 16)
	Identity(m)
	m[12], m[13], m[14] = 100, 200, 300

	d := TransformDirection(m, Vec3{0, 0, -1})
	assert.Equal(t, Vec3{0, 0, -1}, d)
}

func TestSliceToBytes(t *testing.T) {
	data := []float32{1.0, 2.0}
	b := SliceToBytes(data)
	require.Len(t, b, 8)

	assert.Nil(t, SliceToBytes([]float32{}))
}
