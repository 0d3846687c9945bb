package camera

import (
	"encoding/binary"
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGPUCameraUniform_Layout(t *testing.T) {
	var g GPUCameraUniform
	assert.Equal(t, 80, g.Size())
	assert.Equal(t, uintptr(0), unsafe.Offsetof(g.View))
	assert.Equal(t, uintptr(64), unsafe.Offsetof(g.Aspect))
}

func TestGPUCameraUniform_Marshal(t *testing.T) {
	g := GPUCameraUniform{Aspect: 1.5}
	for i := range g.View {
		g.View[i] = float32(i)
	}

	buf := g.Marshal()
	require.Len(t, buf, 80)

	for i := range 16 {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		assert.Equal(t, float32(i), got, "view element %d", i)
	}
	assert.Equal(t, float32(1.5), math.Float32frombits(binary.LittleEndian.Uint32(buf[64:])))

	// Trailing pad is zeroed.
	for off := 68; off < 80; off += 4 {
		assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(buf[off:]), "pad at %d", off)
	}
}
