package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/meshsplat/meshsplat/engine/logging"
	"github.com/meshsplat/meshsplat/engine/mesh"
)

// objLoaderBackend loads Wavefront OBJ files. Only geometry is extracted:
// v statements become vertices and f statements become triangles, with
// polygon faces fan-triangulated. Texture coordinates, normals, materials,
// and grouping statements are skipped.
type objLoaderBackend struct{}

var _ loaderBackend = &objLoaderBackend{}

// newOBJLoaderBackend creates a new OBJ loader backend.
//
// Returns:
//   - *objLoaderBackend: the backend instance
func newOBJLoaderBackend() *objLoaderBackend {
	return &objLoaderBackend{}
}

func (b *objLoaderBackend) Load(path string) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer f.Close()
	return b.LoadReader(f)
}

func (b *objLoaderBackend) LoadReader(r io.Reader) (*mesh.Mesh, error) {
	var (
		vertices []float32
		faces    []uint32
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates, got %d", lineNum, len(fields)-1)
			}
			// A fourth w component, if present, is ignored.
			for _, fs := range fields[1:4] {
				v, err := strconv.ParseFloat(fs, 32)
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid vertex coordinate %q: %w", lineNum, fs, err)
				}
				vertices = append(vertices, float32(v))
			}
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices, got %d", lineNum, len(fields)-1)
			}
			vertexCount := len(vertices) / 3
			corners := make([]uint32, 0, len(fields)-1)
			for _, fs := range fields[1:] {
				idx, err := parseFaceIndex(fs, vertexCount)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNum, err)
				}
				corners = append(corners, idx)
			}
			// Fan triangulation: (0, i, i+1) for each interior corner.
			for i := 1; i < len(corners)-1; i++ {
				faces = append(faces, corners[0], corners[i], corners[i+1])
			}
		case "vt", "vn", "vp", "g", "o", "s", "mtllib", "usemtl", "l", "p":
			// Geometry-only import.
		default:
			logging.LogDebug("obj: skipping unknown statement %q on line %d", fields[0], lineNum)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read OBJ data: %w", err)
	}

	m, err := mesh.NewMesh(vertices, faces)
	if err != nil {
		return nil, fmt.Errorf("invalid OBJ geometry: %w", err)
	}
	return m, nil
}

// parseFaceIndex resolves one face corner reference to a zero-based vertex
// index. OBJ corners may carry texture and normal references separated by
// slashes (v, v/vt, v//vn, v/vt/vn); only the vertex index is used. Indices
// are 1-based, and negative values count back from the most recent vertex.
//
// Parameters:
//   - field: the face corner token
//   - vertexCount: number of vertices parsed so far
//
// Returns:
//   - uint32: zero-based vertex index
//   - error: if the reference is malformed or out of range
func parseFaceIndex(field string, vertexCount int) (uint32, error) {
	vertRef := field
	if slash := strings.IndexByte(field, '/'); slash >= 0 {
		vertRef = field[:slash]
	}
	idx, err := strconv.Atoi(vertRef)
	if err != nil {
		return 0, fmt.Errorf("invalid face index %q: %w", field, err)
	}
	if idx < 0 {
		idx = vertexCount + idx + 1
	}
	if idx < 1 || idx > vertexCount {
		return 0, fmt.Errorf("face index %q out of range (have %d vertices)", field, vertexCount)
	}
	return uint32(idx - 1), nil
}
