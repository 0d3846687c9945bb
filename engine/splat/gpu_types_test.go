package splat

import (
	"encoding/binary"
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGPUSplat_Layout(t *testing.T) {
	var g GPUSplat
	assert.Equal(t, GPUSplatSize, g.Size())

	assert.Equal(t, uintptr(0), unsafe.Offsetof(g.Position))
	assert.Equal(t, uintptr(16), unsafe.Offsetof(g.Rot0))
	assert.Equal(t, uintptr(32), unsafe.Offsetof(g.Rot1))
	assert.Equal(t, uintptr(48), unsafe.Offsetof(g.Rot2))
	assert.Equal(t, uintptr(64), unsafe.Offsetof(g.Scale))
	assert.Equal(t, uintptr(80), unsafe.Offsetof(g.Color))
	assert.Equal(t, uintptr(92), unsafe.Offsetof(g.Opacity))
}

func TestGPUSplat_MarshalOffsets(t *testing.T) {
	g := GPUSplat{
		Position: [3]float32{1, 2, 3},
		Rot0:     [3]float32{4, 5, 6},
		Rot1:     [3]float32{7, 8, 9},
		Rot2:     [3]float32{10, 11, 12},
		Scale:    [3]float32{13, 14, 15},
		Color:    [3]float32{16, 17, 18},
		Opacity:  19,
	}
	buf := g.Marshal()
	require.Len(t, buf, GPUSplatSize)

	readAt := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off : off+4]))
	}
	assert.Equal(t, float32(1), readAt(0))
	assert.Equal(t, float32(3), readAt(8))
	assert.Equal(t, float32(4), readAt(16))
	assert.Equal(t, float32(7), readAt(32))
	assert.Equal(t, float32(10), readAt(48))
	assert.Equal(t, float32(13), readAt(64))
	assert.Equal(t, float32(16), readAt(80))
	assert.Equal(t, float32(19), readAt(92))

	// Pad words are written as zero.
	for _, off := range []int{12, 28, 44, 60, 76} {
		assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(buf[off:off+4]), "pad at %d", off)
	}
}

func TestGPUSplat_RoundTripBitExact(t *testing.T) {
	// Awkward float payloads: subnormal, negative zero, extremes.
	values := []float32{
		math.Float32frombits(0x00000001), // smallest subnormal
		math.Float32frombits(0x80000000), // negative zero
		math.MaxFloat32,
		-math.SmallestNonzeroFloat32,
		1.0 / 3.0,
		-12345.678,
	}

	g := GPUSplat{
		Position: [3]float32{values[0], values[1], values[2]},
		Rot0:     [3]float32{values[3], values[4], values[5]},
		Rot1:     [3]float32{values[5], values[4], values[3]},
		Rot2:     [3]float32{values[2], values[1], values[0]},
		Scale:    [3]float32{values[0], values[2], values[4]},
		Color:    [3]float32{values[1], values[3], values[5]},
		Opacity:  values[4],
	}

	var back GPUSplat
	require.NoError(t, back.Unmarshal(g.Marshal()))

	for i := 0; i < 3; i++ {
		assert.Equal(t, math.Float32bits(g.Position[i]), math.Float32bits(back.Position[i]))
		assert.Equal(t, math.Float32bits(g.Rot0[i]), math.Float32bits(back.Rot0[i]))
		assert.Equal(t, math.Float32bits(g.Rot1[i]), math.Float32bits(back.Rot1[i]))
		assert.Equal(t, math.Float32bits(g.Rot2[i]), math.Float32bits(back.Rot2[i]))
		assert.Equal(t, math.Float32bits(g.Scale[i]), math.Float32bits(back.Scale[i]))
		assert.Equal(t, math.Float32bits(g.Color[i]), math.Float32bits(back.Color[i]))
	}
	assert.Equal(t, math.Float32bits(g.Opacity), math.Float32bits(back.Opacity))
}

func TestGPUSplat_UnmarshalShortBuffer(t *testing.T) {
	var g GPUSplat
	err := g.Unmarshal(make([]byte, 95))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too short")
}

func TestPackSplats(t *testing.T) {
	splats := []Splat{
		{Position: [3]float32{1, 2, 3}, Rotation: [9]float32{1, 0, 0, 0, 1, 0, 0, 0, 1}, Scale: [3]float32{0.1, 0.1, 0.01}, Color: [3]float32{1, 0, 0}, Opacity: 0.5},
		{Position: [3]float32{4, 5, 6}, Rotation: [9]float32{0, 1, 0, 1, 0, 0, 0, 0, 1}, Scale: [3]float32{0.2, 0.2, 0.02}, Color: [3]float32{0, 1, 0}, Opacity: 0.9},
		{Position: [3]float32{7, 8, 9}, Rotation: [9]float32{1, 0, 0, 0, 0, 1, 0, 1, 0}, Scale: [3]float32{0.3, 0.3, 0.03}, Color: [3]float32{0, 0, 1}, Opacity: 1.0},
	}

	buf := PackSplats(splats)
	require.Len(t, buf, 3*GPUSplatSize)

	back, err := UnpackSplats(buf)
	require.NoError(t, err)
	assert.Equal(t, splats, back)

	assert.Nil(t, PackSplats(nil))
}

func TestUnpackSplats_Misaligned(t *testing.T) {
	_, err := UnpackSplats(make([]byte, 100))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a multiple")
}
