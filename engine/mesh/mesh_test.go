package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshsplat/meshsplat/common"
)

func TestNewMesh_Validation(t *testing.T) {
	tests := []struct {
		name     string
		vertices []float32
		faces    []uint32
		wantErr  string
	}{
		{"no vertices", nil, []uint32{0, 1, 2}, "no vertices"},
		{"misaligned vertices", []float32{0, 0}, []uint32{0, 1, 2}, "not a multiple of 3"},
		{"no faces", []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, nil, "no faces"},
		{"misaligned faces", []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, []uint32{0, 1}, "not a multiple of 3"},
		{"index out of range", []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, []uint32{0, 1, 3}, "exceeds vertex count"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMesh(tt.vertices, tt.faces)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewMesh_NormalsAndAreas(t *testing.T) {
	// Right triangle in the XY plane, legs of length 2, so area = 2 and the
	// normal points along +Z.
	m, err := NewMesh(
		[]float32{0, 0, 0, 2, 0, 0, 0, 2, 0},
		[]uint32{0, 1, 2},
	)
	require.NoError(t, err)

	assert.Equal(t, 1, m.FaceCount())
	assert.InDelta(t, 2.0, float64(m.FaceArea(0)), 1e-6)
	assert.InDelta(t, 2.0, float64(m.TotalArea()), 1e-6)

	n := m.FaceNormal(0)
	assert.InDelta(t, 0.0, float64(n.X), 1e-6)
	assert.InDelta(t, 0.0, float64(n.Y), 1e-6)
	assert.InDelta(t, 1.0, float64(n.Z), 1e-6)
}

func TestNewMesh_DegenerateFaceZeroNormal(t *testing.T) {
	// Second face reuses a vertex twice: zero area, zero normal.
	m, err := NewMesh(
		[]float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		[]uint32{0, 1, 2, 0, 1, 1},
	)
	require.NoError(t, err)

	assert.Equal(t, float32(0), m.FaceArea(1))
	assert.Equal(t, common.Vec3{}, m.FaceNormal(1))
	assert.InDelta(t, 0.5, float64(m.TotalArea()), 1e-6)
}

func TestMesh_Bounds(t *testing.T) {
	m := Cube(2.0)
	min, max := m.Bounds()
	assert.Equal(t, common.Vec3{X: -1, Y: -1, Z: -1}, min)
	assert.Equal(t, common.Vec3{X: 1, Y: 1, Z: 1}, max)
	assert.InDelta(t, 1.7320508, float64(m.BoundingRadius()), 1e-4)
}

func TestCube(t *testing.T) {
	m := Cube(1.0)
	assert.Equal(t, 8, m.VertexCount())
	assert.Equal(t, 12, m.FaceCount())
	assert.InDelta(t, 6.0, float64(m.TotalArea()), 1e-5)
}

func TestPlane(t *testing.T) {
	m := Plane(3.0)
	assert.Equal(t, 2, m.FaceCount())
	assert.InDelta(t, 9.0, float64(m.TotalArea()), 1e-5)

	// Both faces point up.
	for f := 0; f < m.FaceCount(); f++ {
		assert.InDelta(t, 1.0, float64(m.FaceNormal(f).Y), 1e-6, "face %d", f)
	}
}

func TestIcosphere(t *testing.T) {
	tests := []struct {
		subdivisions int
		wantFaces    int
	}{
		{0, 20},
		{1, 80},
		{2, 320},
	}
	for _, tt := range tests {
		m := Icosphere(1.0, tt.subdivisions)
		assert.Equal(t, tt.wantFaces, m.FaceCount(), "subdivisions=%d", tt.subdivisions)

		// All vertices sit on the sphere.
		for i := 0; i < m.VertexCount(); i++ {
			assert.InDelta(t, 1.0, float64(m.Vertex(i).Length()), 1e-5)
		}
	}

	// Negative levels clamp to the base icosahedron.
	assert.Equal(t, 20, Icosphere(1.0, -3).FaceCount())
}

func TestTorus(t *testing.T) {
	m := Torus(2.0, 0.5, 16, 8)
	assert.Equal(t, 16*8, m.VertexCount())
	assert.Equal(t, 16*8*2, m.FaceCount())

	// Segment counts clamp at 3.
	small := Torus(2.0, 0.5, 1, 1)
	assert.Equal(t, 9, small.VertexCount())
}
