package scene

import (
	"encoding/binary"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshsplat/meshsplat/common"
	"github.com/meshsplat/meshsplat/engine/mesh"
	"github.com/meshsplat/meshsplat/engine/renderer/bind_group_provider"
	"github.com/meshsplat/meshsplat/engine/splat"
)

// cloudSplat builds a valid splat at the given position.
func cloudSplat(x, y, z float32) splat.Splat {
	return splat.Splat{
		Position: [3]float32{x, y, z},
		Rotation: [9]float32{1, 0, 0, 0, 1, 0, 0, 0, 1},
		Scale:    [3]float32{0.1, 0.1, 0.05},
		Color:    [3]float32{1, 1, 1},
		Opacity:  1,
	}
}

// sortScene builds a scene with just the pieces prepareCloud touches, so
// the sort/cull path can run without a GPU.
func sortScene(depthSort, frustumCulling bool) *scene {
	return &scene{
		mu:             &sync.RWMutex{},
		depthSort:      depthSort,
		frustumCulling: frustumCulling,
		prepPool:       worker.NewDynamicWorkerPool(2, 256, 1*time.Second),
	}
}

// newCloud wraps splats in a splatCloud with a CPU-only provider.
func newCloud(t *testing.T, splats []splat.Splat) *splatCloud {
	t.Helper()
	maxScale, err := validateSplats(splats)
	require.NoError(t, err)
	return &splatCloud{
		splats:   splats,
		maxScale: maxScale,
		provider: bind_group_provider.NewBindGroupProvider("test_splats"),
		capacity: len(splats),
	}
}

func TestValidateSplats_MaxScalePerSplat(t *testing.T) {
	splats := []splat.Splat{
		{Rotation: [9]float32{1, 0, 0, 0, 1, 0, 0, 0, 1}, Scale: [3]float32{0.1, 0.3, 0.2}, Opacity: 1},
		{Rotation: [9]float32{1, 0, 0, 0, 1, 0, 0, 0, 1}, Scale: [3]float32{0.5, 0.1, 0.1}, Opacity: 1},
	}
	maxScale, err := validateSplats(splats)
	require.NoError(t, err)
	require.Len(t, maxScale, 2)
	assert.InDelta(t, 0.3, float64(maxScale[0]), 1e-6)
	assert.InDelta(t, 0.5, float64(maxScale[1]), 1e-6)
}

func TestValidateSplats_RejectsInvalid(t *testing.T) {
	splats := []splat.Splat{
		cloudSplat(0, 0, 0),
		{Scale: [3]float32{0, 0.1, 0.1}, Opacity: 1},
	}
	_, err := validateSplats(splats)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "splat 1")
}

func TestPrepareCloud_SortsBackToFront(t *testing.T) {
	s := sortScene(true, false)
	// Camera at +5Z looking at the origin; larger object-space Z is closer.
	view := make([]float32, 16)
	common.LookAt(view, 0, 0, 5, 0, 0, 0, 0, 1, 0)

	c := newCloud(t, []splat.Splat{
		cloudSplat(0, 0, 1),  // nearest
		cloudSplat(0, 0, -2), // farthest
		cloudSplat(0, 0, 0),
	})

	var frustum common.Frustum
	s.prepareCloud(c, view, &frustum)

	require.Equal(t, uint32(3), c.visible)
	// Back to front: farthest splat packs first.
	assert.Equal(t, []int{1, 2, 0}, c.order)

	// The packed buffer holds the farthest splat's position in slot 0.
	z := math.Float32frombits(binary.LittleEndian.Uint32(c.packed[8:12]))
	assert.InDelta(t, -2, float64(z), 1e-6)
	assert.Equal(t, 3, c.provider.InstanceCount())
}

func TestPrepareCloud_CullsOutsideFrustum(t *testing.T) {
	s := sortScene(false, true)
	view := make([]float32, 16)
	common.LookAt(view, 0, 0, 5, 0, 0, 0, 0, 1, 0)
	proj := make([]float32, 16)
	common.Perspective(proj, float32(math.Pi/3), 1, 0.1, 100)
	vp := make([]float32, 16)
	common.Mul4(vp, proj, view)
	frustum := common.ExtractFrustumFromMatrix(vp)

	c := newCloud(t, []splat.Splat{
		cloudSplat(0, 0, 0),    // dead center
		cloudSplat(0, 0, 50),   // far behind the camera
		cloudSplat(200, 0, 0),  // far off to the side
		cloudSplat(0.5, 0.5, 0),
	})

	s.prepareCloud(c, view, &frustum)

	require.Equal(t, uint32(2), c.visible)
	// Culling without sorting preserves upload order.
	assert.Equal(t, []int{0, 3}, c.order)
}

func TestPrepareCloud_KeepsAllWhenSortOnly(t *testing.T) {
	s := sortScene(true, false)
	view := make([]float32, 16)
	common.LookAt(view, 3, 2, 5, 0, 0, 0, 0, 1, 0)

	splats := make([]splat.Splat, 0, 50)
	for i := 0; i < 50; i++ {
		f := float32(i)
		splats = append(splats, cloudSplat(f*0.1, -f*0.05, f*0.02))
	}
	c := newCloud(t, splats)

	var frustum common.Frustum
	s.prepareCloud(c, view, &frustum)

	require.Equal(t, uint32(50), c.visible)
	// Depths must be non-decreasing in packed order (view Z is negative in
	// front, so back-to-front means ascending).
	prev := float32(math.Inf(-1))
	for _, idx := range c.order {
		d := splat.ViewDepth(c.splats[idx].Position, view)
		assert.GreaterOrEqual(t, d, prev)
		prev = d
	}
}

func TestGPUMeshVertex_Layout(t *testing.T) {
	v := GPUMeshVertex{
		Position: [3]float32{1, 2, 3},
		Normal:   [3]float32{0, 1, 0},
	}
	assert.Equal(t, GPUMeshVertexSize, v.Size())

	buf := make([]byte, GPUMeshVertexSize)
	v.MarshalTo(buf)
	assert.Equal(t, float32(3), math.Float32frombits(binary.LittleEndian.Uint32(buf[8:12])))
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(buf[16:20])))
}

func TestBuildPreviewBuffers_Cube(t *testing.T) {
	m := mesh.Cube(2)
	vertexData, indexData, indexCount := BuildPreviewBuffers(m)

	require.Equal(t, m.FaceCount()*3, indexCount)
	assert.Len(t, vertexData, indexCount*GPUMeshVertexSize)
	assert.Len(t, indexData, indexCount*4)

	// Indices are a plain sequence since flat shading duplicates vertices.
	for i := 0; i < indexCount; i++ {
		assert.Equal(t, uint32(i), binary.LittleEndian.Uint32(indexData[i*4:]))
	}

	// Every expanded vertex carries its face's unit normal.
	for f := 0; f < m.FaceCount(); f++ {
		want := m.FaceNormal(f)
		base := f * 3 * GPUMeshVertexSize
		nx := math.Float32frombits(binary.LittleEndian.Uint32(vertexData[base+12 : base+16]))
		ny := math.Float32frombits(binary.LittleEndian.Uint32(vertexData[base+16 : base+20]))
		nz := math.Float32frombits(binary.LittleEndian.Uint32(vertexData[base+20 : base+24]))
		assert.InDelta(t, float64(want.X), float64(nx), 1e-6)
		assert.InDelta(t, float64(want.Y), float64(ny), 1e-6)
		assert.InDelta(t, float64(want.Z), float64(nz), 1e-6)
		length := math.Sqrt(float64(nx*nx + ny*ny + nz*nz))
		assert.InDelta(t, 1.0, length, 1e-5)
	}
}
