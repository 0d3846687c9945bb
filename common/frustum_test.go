package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildViewProj assembles a view-projection matrix for a camera at eye
// looking at the origin with a 60 degree vertical FOV.
func buildViewProj(eyeX, eyeY, eyeZ float32) []float32 {
	view := make([]float32, 16)
	proj := make([]float32, 16)
	vp := make([]float32, 16)
	LookAt(view, eyeX, eyeY, eyeZ, 0, 0, 0, 0, 1, 0)
	Perspective(proj, float32(math.Pi/3), 1.0, 0.1, 100.0)
	Mul4(vp, proj, view)
	return vp
}

func TestFrustum_PlanesAreNormalized(t *testing.T) {
	f := ExtractFrustumFromMatrix(buildViewProj(0, 0, 10))
	for i, p := range f.Planes {
		length := math.Sqrt(float64(
			p.Normal[0]*p.Normal[0] + p.Normal[1]*p.Normal[1] + p.Normal[2]*p.Normal[2],
		))
		assert.InDelta(t, 1.0, length, 1e-4, "plane %d", i)
	}
}

func TestFrustum_ContainsSphere(t *testing.T) {
	f := ExtractFrustumFromMatrix(buildViewProj(0, 0, 10))

	tests := []struct {
		name   string
		center [3]float32
		radius float32
		want   bool
	}{
		{"at the look target", [3]float32{0, 0, 0}, 0.5, true},
		{"behind the camera", [3]float32{0, 0, 20}, 0.5, false},
		{"far off to the side", [3]float32{100, 0, 0}, 0.5, false},
		{"outside but overlapping", [3]float32{100, 0, 0}, 95.0, true},
		{"beyond the far plane", [3]float32{0, 0, -200}, 0.5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.ContainsSphere(tt.center, tt.radius))
		})
	}
}
