package splat

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"
)

// SplatShaderSource is the canonical WGSL source for the splat render
// pipeline. Its Splat struct matches GPUSplat layout exactly (96 bytes,
// vec3f fields aligned to 16).
//
//go:embed assets/splat.wgsl
var SplatShaderSource string

// GPUSplatSize is the packed size of one splat record in bytes.
const GPUSplatSize = 96

// GPUSplat is the GPU-aligned representation of a single Gaussian splat.
// Matches the WGSL Splat struct layout exactly (see SplatShaderSource).
// Size: 96 bytes (five vec3f fields padded to 16-byte alignment, opacity
// packed into the color field's trailing pad).
type GPUSplat struct {
	Position [3]float32 // offset  0: Gaussian center in object space (12 bytes)
	_pad0    float32    // offset 12: vec3f alignment pad
	Rot0     [3]float32 // offset 16: rotation matrix row 0 (12 bytes)
	_pad1    float32    // offset 28: vec3f alignment pad
	Rot1     [3]float32 // offset 32: rotation matrix row 1 (12 bytes)
	_pad2    float32    // offset 44: vec3f alignment pad
	Rot2     [3]float32 // offset 48: rotation matrix row 2 (12 bytes)
	_pad3    float32    // offset 60: vec3f alignment pad
	Scale    [3]float32 // offset 64: per-axis standard deviations (12 bytes)
	_pad4    float32    // offset 76: vec3f alignment pad
	Color    [3]float32 // offset 80: linear RGB (12 bytes)
	Opacity  float32    // offset 92: peak alpha (4 bytes)
}

// Size returns the size of the GPUSplat struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUSplat) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUSplat struct into a byte buffer suitable for GPU
// upload. Padding bytes are written as zero.
//
// Returns:
//   - []byte: 96-byte buffer ready for GPU upload.
func (g *GPUSplat) Marshal() []byte {
	buf := make([]byte, GPUSplatSize)
	g.MarshalTo(buf)
	return buf
}

// MarshalTo serializes the GPUSplat into the first 96 bytes of buf, which
// must be at least GPUSplatSize long. Lets callers pack many splats without
// per-record allocations.
func (g *GPUSplat) MarshalTo(buf []byte) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], 0)
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Rot0[0]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Rot0[1]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.Rot0[2]))
	binary.LittleEndian.PutUint32(buf[28:32], 0)
	binary.LittleEndian.PutUint32(buf[32:36], math.Float32bits(g.Rot1[0]))
	binary.LittleEndian.PutUint32(buf[36:40], math.Float32bits(g.Rot1[1]))
	binary.LittleEndian.PutUint32(buf[40:44], math.Float32bits(g.Rot1[2]))
	binary.LittleEndian.PutUint32(buf[44:48], 0)
	binary.LittleEndian.PutUint32(buf[48:52], math.Float32bits(g.Rot2[0]))
	binary.LittleEndian.PutUint32(buf[52:56], math.Float32bits(g.Rot2[1]))
	binary.LittleEndian.PutUint32(buf[56:60], math.Float32bits(g.Rot2[2]))
	binary.LittleEndian.PutUint32(buf[60:64], 0)
	binary.LittleEndian.PutUint32(buf[64:68], math.Float32bits(g.Scale[0]))
	binary.LittleEndian.PutUint32(buf[68:72], math.Float32bits(g.Scale[1]))
	binary.LittleEndian.PutUint32(buf[72:76], math.Float32bits(g.Scale[2]))
	binary.LittleEndian.PutUint32(buf[76:80], 0)
	binary.LittleEndian.PutUint32(buf[80:84], math.Float32bits(g.Color[0]))
	binary.LittleEndian.PutUint32(buf[84:88], math.Float32bits(g.Color[1]))
	binary.LittleEndian.PutUint32(buf[88:92], math.Float32bits(g.Color[2]))
	binary.LittleEndian.PutUint32(buf[92:96], math.Float32bits(g.Opacity))
}

// Unmarshal deserializes the first 96 bytes of buf into the GPUSplat,
// ignoring padding bytes.
//
// Parameters:
//   - buf: source buffer, must be at least GPUSplatSize long
//
// Returns:
//   - error: when buf is too short
func (g *GPUSplat) Unmarshal(buf []byte) error {
	if len(buf) < GPUSplatSize {
		return fmt.Errorf("buffer too short for splat record: %d < %d", len(buf), GPUSplatSize)
	}
	read := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off : off+4]))
	}
	for i := 0; i < 3; i++ {
		g.Position[i] = read(0 + i*4)
		g.Rot0[i] = read(16 + i*4)
		g.Rot1[i] = read(32 + i*4)
		g.Rot2[i] = read(48 + i*4)
		g.Scale[i] = read(64 + i*4)
		g.Color[i] = read(80 + i*4)
	}
	g.Opacity = read(92)
	return nil
}

// FromSplat converts a CPU splat into its GPU record.
//
// Parameters:
//   - s: the source splat
//
// Returns:
//   - GPUSplat: the GPU-aligned record
func FromSplat(s *Splat) GPUSplat {
	return GPUSplat{
		Position: s.Position,
		Rot0:     [3]float32{s.Rotation[0], s.Rotation[1], s.Rotation[2]},
		Rot1:     [3]float32{s.Rotation[3], s.Rotation[4], s.Rotation[5]},
		Rot2:     [3]float32{s.Rotation[6], s.Rotation[7], s.Rotation[8]},
		Scale:    s.Scale,
		Color:    s.Color,
		Opacity:  s.Opacity,
	}
}

// ToSplat converts a GPU record back into a CPU splat.
func (g *GPUSplat) ToSplat() Splat {
	return Splat{
		Position: g.Position,
		Rotation: [9]float32{
			g.Rot0[0], g.Rot0[1], g.Rot0[2],
			g.Rot1[0], g.Rot1[1], g.Rot1[2],
			g.Rot2[0], g.Rot2[1], g.Rot2[2],
		},
		Scale:   g.Scale,
		Color:   g.Color,
		Opacity: g.Opacity,
	}
}

// PackSplats serializes a slice of splats into one contiguous buffer with a
// 96-byte stride, ready for storage buffer upload.
//
// Parameters:
//   - splats: the splats to pack
//
// Returns:
//   - []byte: len(splats) * 96 bytes, or nil for an empty slice
func PackSplats(splats []Splat) []byte {
	if len(splats) == 0 {
		return nil
	}
	buf := make([]byte, len(splats)*GPUSplatSize)
	for i := range splats {
		g := FromSplat(&splats[i])
		g.MarshalTo(buf[i*GPUSplatSize:])
	}
	return buf
}

// UnpackSplats deserializes a packed buffer produced by PackSplats.
//
// Parameters:
//   - buf: packed splat records, length must be a multiple of 96
//
// Returns:
//   - []Splat: the decoded splats
//   - error: when the buffer length is not a multiple of the record size
func UnpackSplats(buf []byte) ([]Splat, error) {
	if len(buf)%GPUSplatSize != 0 {
		return nil, fmt.Errorf("packed buffer length %d is not a multiple of %d", len(buf), GPUSplatSize)
	}
	out := make([]Splat, len(buf)/GPUSplatSize)
	for i := range out {
		var g GPUSplat
		if err := g.Unmarshal(buf[i*GPUSplatSize:]); err != nil {
			return nil, err
		}
		out[i] = g.ToSplat()
	}
	return out, nil
}
