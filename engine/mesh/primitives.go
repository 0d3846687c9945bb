package mesh

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/meshsplat/meshsplat/common"
)

// Cube returns an axis-aligned cube of the given edge length centered on the
// origin, 12 triangles with outward winding.
func Cube(size float32) *Mesh {
	h := size * 0.5
	vertices := []float32{
		-h, -h, -h, // 0
		h, -h, -h, // 1
		h, h, -h, // 2
		-h, h, -h, // 3
		-h, -h, h, // 4
		h, -h, h, // 5
		h, h, h, // 6
		-h, h, h, // 7
	}
	faces := []uint32{
		4, 5, 6, 4, 6, 7, // +Z
		1, 0, 3, 1, 3, 2, // -Z
		5, 1, 2, 5, 2, 6, // +X
		0, 4, 7, 0, 7, 3, // -X
		3, 7, 6, 3, 6, 2, // +Y
		0, 1, 5, 0, 5, 4, // -Y
	}
	return mustMesh(vertices, faces)
}

// Plane returns a single quad of the given edge length in the XZ plane,
// centered on the origin, facing +Y.
func Plane(size float32) *Mesh {
	h := size * 0.5
	vertices := []float32{
		-h, 0, -h,
		h, 0, -h,
		h, 0, h,
		-h, 0, h,
	}
	faces := []uint32{
		0, 2, 1,
		0, 3, 2,
	}
	return mustMesh(vertices, faces)
}

// Icosphere returns a unit-icosahedron-based sphere of the given radius.
// Each subdivision level splits every face into four, so face count grows as
// 20 * 4^level. Levels above 6 are clamped to keep memory bounded.
func Icosphere(radius float32, subdivisions int) *Mesh {
	if subdivisions < 0 {
		subdivisions = 0
	}
	if subdivisions > 6 {
		subdivisions = 6
	}

	// Icosahedron from three orthogonal golden-ratio rectangles.
	t := float32((1.0 + math.Sqrt(5.0)) / 2.0)
	verts := []common.Vec3{
		{X: -1, Y: t, Z: 0}, {X: 1, Y: t, Z: 0}, {X: -1, Y: -t, Z: 0}, {X: 1, Y: -t, Z: 0},
		{X: 0, Y: -1, Z: t}, {X: 0, Y: 1, Z: t}, {X: 0, Y: -1, Z: -t}, {X: 0, Y: 1, Z: -t},
		{X: t, Y: 0, Z: -1}, {X: t, Y: 0, Z: 1}, {X: -t, Y: 0, Z: -1}, {X: -t, Y: 0, Z: 1},
	}
	for i := range verts {
		verts[i] = verts[i].Normalized()
	}
	faces := [][3]uint32{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	for level := 0; level < subdivisions; level++ {
		midpoints := make(map[[2]uint32]uint32)
		midpoint := func(a, b uint32) uint32 {
			key := [2]uint32{a, b}
			if a > b {
				key = [2]uint32{b, a}
			}
			if idx, ok := midpoints[key]; ok {
				return idx
			}
			mid := verts[a].Add(verts[b]).Scale(0.5).Normalized()
			verts = append(verts, mid)
			idx := uint32(len(verts) - 1)
			midpoints[key] = idx
			return idx
		}

		next := make([][3]uint32, 0, len(faces)*4)
		for _, f := range faces {
			ab := midpoint(f[0], f[1])
			bc := midpoint(f[1], f[2])
			ca := midpoint(f[2], f[0])
			next = append(next,
				[3]uint32{f[0], ab, ca},
				[3]uint32{f[1], bc, ab},
				[3]uint32{f[2], ca, bc},
				[3]uint32{ab, bc, ca},
			)
		}
		faces = next
	}

	flatVerts := make([]float32, 0, len(verts)*3)
	for _, v := range verts {
		flatVerts = append(flatVerts, v.X*radius, v.Y*radius, v.Z*radius)
	}
	flatFaces := make([]uint32, 0, len(faces)*3)
	for _, f := range faces {
		flatFaces = append(flatFaces, f[0], f[1], f[2])
	}
	return mustMesh(flatVerts, flatFaces)
}

// Torus returns a torus with the given major (ring) and minor (tube) radii,
// tessellated into majorSegments * minorSegments quads. Segment counts below
// 3 are clamped to 3.
func Torus(majorRadius, minorRadius float32, majorSegments, minorSegments int) *Mesh {
	if majorSegments < 3 {
		majorSegments = 3
	}
	if minorSegments < 3 {
		minorSegments = 3
	}

	vertices := make([]float32, 0, majorSegments*minorSegments*3)
	for i := 0; i < majorSegments; i++ {
		u := 2 * math32.Pi * float32(i) / float32(majorSegments)
		cu, su := math32.Cos(u), math32.Sin(u)
		for j := 0; j < minorSegments; j++ {
			v := 2 * math32.Pi * float32(j) / float32(minorSegments)
			cv, sv := math32.Cos(v), math32.Sin(v)
			r := majorRadius + minorRadius*cv
			vertices = append(vertices, r*cu, minorRadius*sv, r*su)
		}
	}

	faces := make([]uint32, 0, majorSegments*minorSegments*6)
	for i := 0; i < majorSegments; i++ {
		ni := (i + 1) % majorSegments
		for j := 0; j < minorSegments; j++ {
			nj := (j + 1) % minorSegments
			a := uint32(i*minorSegments + j)
			b := uint32(ni*minorSegments + j)
			c := uint32(ni*minorSegments + nj)
			d := uint32(i*minorSegments + nj)
			faces = append(faces, a, b, c, a, c, d)
		}
	}
	return mustMesh(vertices, faces)
}

// mustMesh wraps NewMesh for the procedural generators, whose inputs are
// valid by construction.
func mustMesh(vertices []float32, faces []uint32) *Mesh {
	m, err := NewMesh(vertices, faces)
	if err != nil {
		panic(err)
	}
	return m
}
