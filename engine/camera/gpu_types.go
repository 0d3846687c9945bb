package camera

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUCameraUniformSource is the canonical WGSL definition of the CameraUniform struct.
// Matches GPUCameraUniform layout exactly (80 bytes, WGSL aligned).
//
//go:embed assets/camera_uniform.wgsl
var GPUCameraUniformSource string

// GPUCameraUniform is the GPU-aligned representation of the camera uniform buffer
// consumed by the splat render pipeline. The projection is baked into the shader,
// so only the view matrix and aspect ratio cross to the GPU.
// Matches the WGSL CameraUniform struct layout exactly (see GPUCameraUniformSource).
// Size: 80 bytes (mat4x4<f32> + f32, padded to 16-byte struct alignment).
type GPUCameraUniform struct {
	View   [16]float32 // offset  0: column-major view matrix (mat4x4<f32>)
	Aspect float32     // offset 64: viewport width / height
	_pad   [3]float32  // offset 68: padding to 80 bytes
}

// Size returns the size of the GPUCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (80)
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCameraUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.View[i]))
	}
	binary.LittleEndian.PutUint32(buf[64:], math.Float32bits(g.Aspect))
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[68+i*4:], 0) // _pad
	}
	return buf
}
