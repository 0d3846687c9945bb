package scene

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/meshsplat/meshsplat/engine/mesh"
)

// MeshPreviewShaderSource is the WGSL source for the optional flat-shaded
// source mesh overlay. Its VertexInput matches GPUMeshVertex layout exactly
// and its CameraUniform matches the splat pipeline's camera buffer.
//
//go:embed assets/mesh_preview.wgsl
var MeshPreviewShaderSource string

// GPUMeshVertexSize is the packed size of one preview vertex in bytes.
const GPUMeshVertexSize = 24

// GPUMeshVertex is the vertex buffer record for the mesh preview pipeline.
// Vertex buffers have no WGSL struct alignment rules, so position and normal
// pack tightly at 12 bytes each.
type GPUMeshVertex struct {
	Position [3]float32 // offset  0: object-space position (12 bytes)
	Normal   [3]float32 // offset 12: face normal for flat shading (12 bytes)
}

// Size returns the size of the GPUMeshVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUMeshVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// MarshalTo serializes the GPUMeshVertex into the first 24 bytes of buf,
// which must be at least GPUMeshVertexSize long.
func (g *GPUMeshVertex) MarshalTo(buf []byte) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Normal[0]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Normal[1]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Normal[2]))
}

// BuildPreviewBuffers expands a triangle mesh into flat-shaded vertex and
// index buffers for the preview pipeline. Each face gets its own three
// vertices carrying the face normal, so shared mesh vertices are duplicated
// and the index buffer is a plain 0..3F-1 sequence.
//
// Parameters:
//   - m: the source mesh
//
// Returns:
//   - []byte: packed GPUMeshVertex data, 3 vertices per face
//   - []byte: packed uint32 index data
//   - int: number of indices
func BuildPreviewBuffers(m *mesh.Mesh) (vertexData, indexData []byte, indexCount int) {
	faces := m.FaceCount()
	indexCount = faces * 3
	vertexData = make([]byte, indexCount*GPUMeshVertexSize)
	indexData = make([]byte, indexCount*4)

	for f := 0; f < faces; f++ {
		a, b, c := m.FaceVertices(f)
		n := m.FaceNormal(f)
		normal := [3]float32{n.X, n.Y, n.Z}
		corners := [3][3]float32{
			{a.X, a.Y, a.Z},
			{b.X, b.Y, b.Z},
			{c.X, c.Y, c.Z},
		}
		for k, pos := range corners {
			i := f*3 + k
			v := GPUMeshVertex{Position: pos, Normal: normal}
			v.MarshalTo(vertexData[i*GPUMeshVertexSize:])
			binary.LittleEndian.PutUint32(indexData[i*4:], uint32(i))
		}
	}
	return vertexData, indexData, indexCount
}
