package splat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshsplat/meshsplat/common"
)

// isotropicSplat is a unit-rotation splat with equal scales on every axis.
func isotropicSplat(scale float32) Splat {
	return Splat{
		Rotation: [9]float32{1, 0, 0, 0, 1, 0, 0, 0, 1},
		Scale:    [3]float32{scale, scale, scale},
		Color:    [3]float32{1, 1, 1},
		Opacity:  1,
	}
}

// viewFrom builds a view matrix for a camera at eye looking at the origin.
func viewFrom(eyeX, eyeY, eyeZ float32) []float32 {
	view := make([]float32, 16)
	common.LookAt(view, eyeX, eyeY, eyeZ, 0, 0, 0, 0, 1, 0)
	return view
}

func TestCovariance_Symmetric(t *testing.T) {
	s := Splat{
		Rotation: normalFrame(common.Vec3{X: 1, Y: 2, Z: 3}.Normalized()),
		Scale:    [3]float32{0.5, 0.3, 0.1},
	}
	sigma := s.Covariance()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, float64(sigma[i*3+j]), float64(sigma[j*3+i]), 1e-6)
		}
	}

	// Diagonal entries are variances, strictly positive.
	assert.Greater(t, sigma[0], float32(0))
	assert.Greater(t, sigma[4], float32(0))
	assert.Greater(t, sigma[8], float32(0))
}

func TestProjectSplat_IsotropicAtCenter(t *testing.T) {
	const scale = float32(0.1)
	const dist = float32(5.0)

	s := isotropicSplat(scale)
	ps, ok := ProjectSplat(&s, viewFrom(0, 0, dist), 1.0)
	require.True(t, ok)

	// Centered splat projects to the NDC origin at depth -dist.
	assert.InDelta(t, 0.0, float64(ps.Center[0]), 1e-5)
	assert.InDelta(t, 0.0, float64(ps.Center[1]), 1e-5)
	assert.InDelta(t, float64(-dist), float64(ps.Depth), 1e-4)

	// An isotropic Gaussian at the view axis scales by (k/z)^2 on both axes.
	want := 3 * scale * float32(math.Abs(float64(ProjectionK))) / dist
	assert.InDelta(t, float64(want), float64(ps.Radius[0]), 1e-5)
	assert.InDelta(t, float64(want), float64(ps.Radius[1]), 1e-5)

	// Conic is positive on the diagonal for a valid ellipse.
	assert.Greater(t, ps.Conic[0], float32(0))
	assert.Greater(t, ps.Conic[2], float32(0))
}

func TestProjectSplat_AspectWidensX(t *testing.T) {
	s := isotropicSplat(0.1)
	ps, ok := ProjectSplat(&s, viewFrom(0, 0, 5), 2.0)
	require.True(t, ok)

	// Horizontal NDC extent halves with a 2:1 aspect ratio.
	assert.InDelta(t, float64(ps.Radius[1]/2), float64(ps.Radius[0]), 1e-5)
}

func TestProjectSplat_RotatedAnisotropicConic(t *testing.T) {
	// Splat rotated 45 degrees about the view axis, unequal scales in the
	// rotated plane. On-axis the Jacobian is diagonal, so Sigma2 is
	// (k/z)^2 times the upper-left 2x2 of Sigma3:
	//   Sigma00 = Sigma11 = (sx^2 + sy^2) / 2
	//   Sigma01 = (sx^2 - sy^2) / 2
	const h = float32(0.70710678) // sqrt(2)/2
	s := Splat{
		Rotation: [9]float32{h, -h, 0, h, h, 0, 0, 0, 1},
		Scale:    [3]float32{0.4, 0.2, 0.1},
		Opacity:  1,
	}
	const dist = float32(5.0)
	ps, ok := ProjectSplat(&s, viewFrom(0, 0, dist), 1.0)
	require.True(t, ok)

	kz2 := ProjectionK * ProjectionK / (dist * dist)
	a := float64(kz2 * (0.16 + 0.04) / 2)
	b := float64(kz2 * (0.16 - 0.04) / 2)
	det := a*a - b*b

	assert.InDelta(t, a/det, float64(ps.Conic[0]), 1e-2)
	assert.InDelta(t, -b/det, float64(ps.Conic[1]), 1e-2)
	assert.InDelta(t, a/det, float64(ps.Conic[2]), 1e-2)
	assert.InDelta(t, 3*math.Sqrt(a), float64(ps.Radius[0]), 1e-5)
	assert.InDelta(t, 3*math.Sqrt(a), float64(ps.Radius[1]), 1e-5)
}

func TestProjectSplat_RadiusShrinksWithDistance(t *testing.T) {
	s := isotropicSplat(0.1)

	near, ok := ProjectSplat(&s, viewFrom(0, 0, 2), 1.0)
	require.True(t, ok)
	far, ok := ProjectSplat(&s, viewFrom(0, 0, 4), 1.0)
	require.True(t, ok)

	assert.InDelta(t, 2.0, float64(near.Radius[0]/far.Radius[0]), 1e-4)
}

func TestProjectSplat_CullsBehindCamera(t *testing.T) {
	s := isotropicSplat(0.1)
	s.Position = [3]float32{0, 0, 10}

	// Camera at z=5 looking toward the origin: the splat sits behind it.
	_, ok := ProjectSplat(&s, viewFrom(0, 0, 5), 1.0)
	assert.False(t, ok)
}

func TestProjectSplat_CullsAtCameraPlane(t *testing.T) {
	s := isotropicSplat(0.1)
	s.Position = [3]float32{0, 0, 5}

	_, ok := ProjectSplat(&s, viewFrom(0, 0, 5), 1.0)
	assert.False(t, ok)
}

func TestProjectSplat_CullsDegenerateCovariance(t *testing.T) {
	s := Splat{
		Rotation: [9]float32{1, 0, 0, 0, 1, 0, 0, 0, 1},
		Scale:    [3]float32{0, 0, 0},
	}
	_, ok := ProjectSplat(&s, viewFrom(0, 0, 5), 1.0)
	assert.False(t, ok)
}

func TestProjectedSplat_Alpha(t *testing.T) {
	s := isotropicSplat(0.1)
	ps, ok := ProjectSplat(&s, viewFrom(0, 0, 5), 1.0)
	require.True(t, ok)

	// Peak alpha at the center.
	assert.InDelta(t, 0.75, float64(ps.Alpha(0.75, 0, 0)), 1e-6)

	// At the 3-sigma extent the falloff is exp(-4.5).
	want := 0.75 * math.Exp(-4.5)
	assert.InDelta(t, want, float64(ps.Alpha(0.75, ps.Radius[0], 0)), 1e-5)
	assert.InDelta(t, want, float64(ps.Alpha(0.75, 0, ps.Radius[1])), 1e-5)
}

func TestViewDepth_MatchesProjection(t *testing.T) {
	view := viewFrom(1, 2, 5)
	s := isotropicSplat(0.1)
	s.Position = [3]float32{0.3, -0.2, 0.1}

	ps, ok := ProjectSplat(&s, view, 1.0)
	require.True(t, ok)
	assert.InDelta(t, float64(ps.Depth), float64(ViewDepth(s.Position, view)), 1e-6)
}
