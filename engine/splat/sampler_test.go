package splat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshsplat/meshsplat/common"
	"github.com/meshsplat/meshsplat/engine/mesh"
)

// singleTriangle is a unit right triangle in the XY plane.
func singleTriangle(t *testing.T) *mesh.Mesh {
	t.Helper()
	m, err := mesh.NewMesh(
		[]float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		[]uint32{0, 1, 2},
	)
	require.NoError(t, err)
	return m
}

// twoTriangles builds two XY-plane triangles with a 1:3 area ratio,
// separated along X so samples classify by position.
func twoTriangles(t *testing.T) *mesh.Mesh {
	t.Helper()
	m, err := mesh.NewMesh(
		[]float32{
			0, 0, 0, 1, 0, 0, 0, 1, 0, // area 0.5 around x in [0, 1]
			10, 0, 0, 11, 0, 0, 10, 3, 0, // area 1.5 around x in [10, 11]
		},
		[]uint32{0, 1, 2, 3, 4, 5},
	)
	require.NoError(t, err)
	return m
}

func TestSampler_ExactCount(t *testing.T) {
	s := NewSampler(WithCount(1000), WithSeed(42))
	splats, err := s.Sample(singleTriangle(t))
	require.NoError(t, err)
	assert.Len(t, splats, 1000)
}

func TestSampler_AreaWeightedFairness(t *testing.T) {
	s := NewSampler(WithCount(20000), WithSeed(7))
	splats, err := s.Sample(twoTriangles(t))
	require.NoError(t, err)

	small := 0
	for _, sp := range splats {
		if sp.Position[0] < 5 {
			small++
		}
	}
	// Expected split is 1:3, so the small face gets about 25%.
	frac := float64(small) / float64(len(splats))
	assert.InDelta(t, 0.25, frac, 0.02)
}

func TestSampler_PositionsInsideSourceTriangle(t *testing.T) {
	m := singleTriangle(t)
	s := NewSampler(WithCount(2000), WithSeed(11))
	splats, err := s.Sample(m)
	require.NoError(t, err)

	a, b, c := m.FaceVertices(0)
	for _, sp := range splats {
		p := common.Vec3{X: sp.Position[0], Y: sp.Position[1], Z: sp.Position[2]}
		u, v := barycentric(p, a, b, c)
		assert.GreaterOrEqual(t, u, float32(-1e-4))
		assert.GreaterOrEqual(t, v, float32(-1e-4))
		assert.LessOrEqual(t, u+v, float32(1+1e-4))
	}
}

func TestFoldBarycentric(t *testing.T) {
	tests := []struct {
		name         string
		u, v         float32
		wantU, wantV float32
	}{
		{"inside lower triangle", 0.2, 0.3, 0.2, 0.3},
		{"reflected", 0.8, 0.7, 0.2, 0.3},
		{"diagonal kept", 0.4, 0.6, 0.4, 0.6},
		{"origin", 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, v := foldBarycentric(tt.u, tt.v)
			// The reflected cases compute 1-u and 1-v, so compare with a
			// float32 rounding tolerance.
			assert.InDelta(t, tt.wantU, u, 1e-6)
			assert.InDelta(t, tt.wantV, v, 1e-6)
		})
	}
}

func TestSampler_DeterministicAcrossWorkerCounts(t *testing.T) {
	m := mesh.Icosphere(1.0, 2)

	one, err := NewSampler(WithCount(5000), WithSeed(99), WithWorkers(1)).Sample(m)
	require.NoError(t, err)
	eight, err := NewSampler(WithCount(5000), WithSeed(99), WithWorkers(8)).Sample(m)
	require.NoError(t, err)

	assert.Equal(t, one, eight)
}

func TestSampler_PerFaceStrategy(t *testing.T) {
	// Two faces of equal area share the count evenly.
	m, err := mesh.NewMesh(
		[]float32{
			0, 0, 0, 1, 0, 0, 0, 1, 0,
			10, 0, 0, 11, 0, 0, 10, 1, 0,
		},
		[]uint32{0, 1, 2, 3, 4, 5},
	)
	require.NoError(t, err)

	splats, err := NewSampler(WithCount(10), WithSeed(3), WithStrategy(StrategyPerFace)).Sample(m)
	require.NoError(t, err)
	require.Len(t, splats, 10)

	small := 0
	for _, sp := range splats {
		if sp.Position[0] < 5 {
			small++
		}
	}
	assert.Equal(t, 5, small)
}

func TestSampler_SplatFrame(t *testing.T) {
	splats, err := NewSampler(WithCount(50), WithSeed(1)).Sample(singleTriangle(t))
	require.NoError(t, err)

	for _, sp := range splats {
		require.NoError(t, sp.Validate())

		// Column 2 of the rotation is the face normal (+Z for this mesh).
		assert.InDelta(t, 0.0, float64(sp.Rotation[2]), 1e-5)
		assert.InDelta(t, 0.0, float64(sp.Rotation[5]), 1e-5)
		assert.InDelta(t, 1.0, float64(sp.Rotation[8]), 1e-5)

		// Columns are unit length and mutually orthogonal.
		for col := 0; col < 3; col++ {
			var norm float64
			for row := 0; row < 3; row++ {
				v := float64(sp.Rotation[row*3+col])
				norm += v * v
			}
			assert.InDelta(t, 1.0, norm, 1e-5, "column %d", col)
		}
		var dot01 float64
		for row := 0; row < 3; row++ {
			dot01 += float64(sp.Rotation[row*3+0]) * float64(sp.Rotation[row*3+1])
		}
		assert.InDelta(t, 0.0, dot01, 1e-5)

		// Normal axis is the shortest.
		assert.Less(t, sp.Scale[2], sp.Scale[0])
		assert.Equal(t, sp.Scale[0], sp.Scale[1])
	}
}

func TestSampler_ColorModes(t *testing.T) {
	m := singleTriangle(t)

	fixed, err := NewSampler(WithCount(5), WithSeed(2), WithColor(0.1, 0.2, 0.3)).Sample(m)
	require.NoError(t, err)
	for _, sp := range fixed {
		assert.Equal(t, [3]float32{0.1, 0.2, 0.3}, sp.Color)
	}

	// Normal color for a +Z face is (0.5, 0.5, 1.0).
	byNormal, err := NewSampler(WithCount(5), WithSeed(2), WithColorMode(ColorModeNormal)).Sample(m)
	require.NoError(t, err)
	for _, sp := range byNormal {
		assert.InDelta(t, 0.5, float64(sp.Color[0]), 1e-5)
		assert.InDelta(t, 0.5, float64(sp.Color[1]), 1e-5)
		assert.InDelta(t, 1.0, float64(sp.Color[2]), 1e-5)
	}
}

func TestSampler_Validation(t *testing.T) {
	valid := singleTriangle(t)
	degenerate, err := mesh.NewMesh(
		[]float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		[]uint32{0, 1, 1},
	)
	require.NoError(t, err)

	tests := []struct {
		name    string
		sampler Sampler
		mesh    *mesh.Mesh
		wantErr string
	}{
		{"nil mesh", NewSampler(), nil, "mesh is nil"},
		{"zero area", NewSampler(), degenerate, "zero total surface area"},
		{"bad count", NewSampler(WithCount(0)), valid, "count must be positive"},
		{"negative scale", NewSampler(WithScale(-1)), valid, "scale must be non-negative"},
		{"bad normal scale", NewSampler(WithNormalScale(2)), valid, "normal scale"},
		{"bad opacity", NewSampler(WithOpacity(1.5)), valid, "opacity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.sampler.Sample(tt.mesh)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
