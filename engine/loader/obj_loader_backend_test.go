package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const objTriangle = `
# simple triangle
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`

const objQuad = `
v -1 -1 0
v 1 -1 0
v 1 1 0
v -1 1 0
f 1 2 3 4
`

func TestOBJLoad_Triangle(t *testing.T) {
	b := newOBJLoaderBackend()
	m, err := b.LoadReader(strings.NewReader(objTriangle))
	require.NoError(t, err)
	assert.Equal(t, 3, m.VertexCount())
	assert.Equal(t, 1, m.FaceCount())

	v := m.Vertex(1)
	assert.Equal(t, float32(1), v.X)
}

func TestOBJLoad_QuadFanTriangulation(t *testing.T) {
	b := newOBJLoaderBackend()
	m, err := b.LoadReader(strings.NewReader(objQuad))
	require.NoError(t, err)
	assert.Equal(t, 4, m.VertexCount())
	require.Equal(t, 2, m.FaceCount())
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, m.Indices())
}

func TestOBJLoad_SlashReferencesAndNegativeIndices(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vn 0 0 1
f 1/1/1 2/1/1 -1//1
`
	b := newOBJLoaderBackend()
	m, err := b.LoadReader(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 1, m.FaceCount())
	assert.Equal(t, []uint32{0, 1, 2}, m.Indices())
}

func TestOBJLoad_IgnoresNonGeometryStatements(t *testing.T) {
	src := `
mtllib scene.mtl
o triangle
g default
usemtl red
s off
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	b := newOBJLoaderBackend()
	m, err := b.LoadReader(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 1, m.FaceCount())
}

func TestOBJLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "short vertex",
			src:  "v 1 2\n",
			want: "line 1",
		},
		{
			name: "short face",
			src:  "v 0 0 0\nv 1 0 0\nf 1 2\n",
			want: "line 3",
		},
		{
			name: "index out of range",
			src:  "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n",
			want: "out of range",
		},
		{
			name: "bad coordinate",
			src:  "v 0 zero 0\n",
			want: "invalid vertex coordinate",
		},
		{
			name: "bad face reference",
			src:  "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 x\n",
			want: "invalid face index",
		},
	}

	b := newOBJLoaderBackend()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.LoadReader(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoader_CachesByName(t *testing.T) {
	l := NewLoader(BackendTypeOBJ)

	m1, err := l.LoadReader("tri", strings.NewReader(objTriangle))
	require.NoError(t, err)

	// Second load under the same name returns the cached mesh even though
	// the reader is empty.
	m2, err := l.LoadReader("tri", strings.NewReader(""))
	require.NoError(t, err)
	assert.Same(t, m1, m2)

	assert.Same(t, m1, l.Get("tri"))
	assert.Nil(t, l.Get("missing"))
	assert.Len(t, l.Meshes(), 1)
}
