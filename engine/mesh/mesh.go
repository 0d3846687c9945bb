// package mesh provides the triangle mesh container used as the sampling
// surface for splat generation and as geometry for the mesh preview pipeline.
package mesh

import (
	"fmt"

	"github.com/meshsplat/meshsplat/common"
)

// Mesh is an immutable indexed triangle mesh. Vertex positions are stored as
// a flat xyz slice and faces as index triples. Per-face unit normals and
// areas are derived once at construction.
type Mesh struct {
	vertices []float32
	faces    []uint32

	normals   []float32 // per-face unit normal, xyz triples
	areas     []float32 // per-face area
	totalArea float32
}

// NewMesh constructs a mesh from flat vertex positions (xyz triples) and face
// index triples, deriving per-face normals and areas.
//
// Parameters:
//   - vertices: flat xyz positions, length must be a non-zero multiple of 3
//   - faces: index triples into the vertex list, length must be a non-zero multiple of 3
//
// Returns:
//   - *Mesh: the constructed mesh
//   - error: validation error when the input is empty, misaligned, or indexes out of range
func NewMesh(vertices []float32, faces []uint32) (*Mesh, error) {
	if len(vertices) == 0 {
		return nil, fmt.Errorf("mesh has no vertices")
	}
	if len(vertices)%3 != 0 {
		return nil, fmt.Errorf("vertex data length %d is not a multiple of 3", len(vertices))
	}
	if len(faces) == 0 {
		return nil, fmt.Errorf("mesh has no faces")
	}
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face index length %d is not a multiple of 3", len(faces))
	}

	vertexCount := uint32(len(vertices) / 3)
	for i, idx := range faces {
		if idx >= vertexCount {
			return nil, fmt.Errorf("face index %d at position %d exceeds vertex count %d", idx, i, vertexCount)
		}
	}

	m := &Mesh{
		vertices: vertices,
		faces:    faces,
		normals:  make([]float32, len(faces)),
		areas:    make([]float32, len(faces)/3),
	}

	for f := 0; f < m.FaceCount(); f++ {
		a, b, c := m.FaceVertices(f)
		cross := b.Sub(a).Cross(c.Sub(a))
		area := cross.Length() * 0.5

		m.areas[f] = area
		m.totalArea += area

		// Degenerate faces keep a zero normal; the sampler never selects
		// them because their area weight is zero.
		n := cross.Normalized()
		m.normals[f*3+0] = n.X
		m.normals[f*3+1] = n.Y
		m.normals[f*3+2] = n.Z
	}

	return m, nil
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.vertices) / 3
}

// FaceCount returns the number of triangle faces.
func (m *Mesh) FaceCount() int {
	return len(m.faces) / 3
}

// Vertex returns vertex i as a vector.
func (m *Mesh) Vertex(i int) common.Vec3 {
	return common.Vec3{
		X: m.vertices[i*3+0],
		Y: m.vertices[i*3+1],
		Z: m.vertices[i*3+2],
	}
}

// FaceVertices returns the three corner positions of face f.
func (m *Mesh) FaceVertices(f int) (common.Vec3, common.Vec3, common.Vec3) {
	return m.Vertex(int(m.faces[f*3+0])),
		m.Vertex(int(m.faces[f*3+1])),
		m.Vertex(int(m.faces[f*3+2]))
}

// FaceNormal returns the unit normal of face f. Degenerate faces report the
// zero vector.
func (m *Mesh) FaceNormal(f int) common.Vec3 {
	return common.Vec3{
		X: m.normals[f*3+0],
		Y: m.normals[f*3+1],
		Z: m.normals[f*3+2],
	}
}

// FaceArea returns the area of face f.
func (m *Mesh) FaceArea(f int) float32 {
	return m.areas[f]
}

// TotalArea returns the summed area of all faces.
func (m *Mesh) TotalArea() float32 {
	return m.totalArea
}

// Positions returns the flat vertex position slice. The slice is shared with
// the mesh and must not be modified.
func (m *Mesh) Positions() []float32 {
	return m.vertices
}

// Indices returns the flat face index slice. The slice is shared with the
// mesh and must not be modified.
func (m *Mesh) Indices() []uint32 {
	return m.faces
}

// Bounds returns the axis-aligned bounding box of the mesh.
func (m *Mesh) Bounds() (min, max common.Vec3) {
	min = m.Vertex(0)
	max = min
	for i := 1; i < m.VertexCount(); i++ {
		v := m.Vertex(i)
		if v.X < min.X {
			min.X = v.X
		}
		if v.Y < min.Y {
			min.Y = v.Y
		}
		if v.Z < min.Z {
			min.Z = v.Z
		}
		if v.X > max.X {
			max.X = v.X
		}
		if v.Y > max.Y {
			max.Y = v.Y
		}
		if v.Z > max.Z {
			max.Z = v.Z
		}
	}
	return min, max
}

// BoundingRadius returns the radius of the bounding sphere centered on the
// midpoint of the bounding box.
func (m *Mesh) BoundingRadius() float32 {
	min, max := m.Bounds()
	center := min.Add(max).Scale(0.5)
	var radius float32
	for i := 0; i < m.VertexCount(); i++ {
		if d := m.Vertex(i).Sub(center).Length(); d > radius {
			radius = d
		}
	}
	return radius
}
