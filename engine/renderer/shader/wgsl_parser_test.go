package shader

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// splatStyleSource mirrors the resource declarations of the splat render shader:
// a uniform camera block and a read-only storage array of 96-byte records, with
// no vertex inputs at all.
const splatStyleSource = `
struct CameraUniform {
    view: mat4x4f,
    aspect: f32,
}

struct Splat {
    position: vec3f,
    rot0: vec3f,
    rot1: vec3f,
    rot2: vec3f,
    scale: vec3f,
    color: vec3f,
    opacity: f32,
}

@group(0) @binding(0) var<uniform> camera: CameraUniform;
@group(1) @binding(0) var<storage, read> splats: array<Splat>;

struct VertexOutput {
    @builtin(position) position: vec4f,
    @location(0) color: vec3f,
}

@vertex
fn vs_main(@builtin(vertex_index) vi: u32, @builtin(instance_index) ii: u32) -> VertexOutput {
    var out: VertexOutput;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4f {
    return vec4f(in.color, 1.0);
}
`

// meshStyleSource has a conventional vertex input struct with @location attributes.
const meshStyleSource = `
struct VertexInput {
    @location(0) position: vec3f,
    @location(1) normal: vec3f,
}

struct CameraUniform {
    view: mat4x4f,
    aspect: f32,
}

@group(0) @binding(0) var<uniform> camera: CameraUniform;

@vertex
fn vs_main(in: VertexInput) -> @builtin(position) vec4f {
    return vec4f(in.position, 1.0);
}
`

func TestParseEntryPoint(t *testing.T) {
	tests := []struct {
		name       string
		shaderType ShaderType
		expected   string
	}{
		{"vertex", ShaderTypeVertex, "vs_main"},
		{"fragment", ShaderTypeFragment, "fs_main"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseEntryPoint(splatStyleSource, tt.shaderType))
		})
	}
}

func TestParseBindGroupLayoutsUniformSize(t *testing.T) {
	layouts, varNames := parseBindGroupLayouts(splatStyleSource, wgpu.ShaderStageVertex)

	group0, ok := layouts[0]
	require.True(t, ok)
	require.Len(t, group0.Entries, 1)

	entry := group0.Entries[0]
	assert.Equal(t, uint32(0), entry.Binding)
	assert.Equal(t, wgpu.BufferBindingTypeUniform, entry.Buffer.Type)
	// mat4x4f (64) + f32 (4), padded to the struct's 16-byte alignment.
	assert.Equal(t, uint64(80), entry.Buffer.MinBindingSize)
	assert.Equal(t, "camera", varNames[0][0])
}

func TestParseBindGroupLayoutsStorageStride(t *testing.T) {
	layouts, varNames := parseBindGroupLayouts(splatStyleSource, wgpu.ShaderStageVertex)

	group1, ok := layouts[1]
	require.True(t, ok)
	require.Len(t, group1.Entries, 1)

	entry := group1.Entries[0]
	assert.Equal(t, wgpu.BufferBindingTypeReadOnlyStorage, entry.Buffer.Type)
	// Runtime-sized array binding: MinBindingSize is one element stride.
	// Six vec3f fields at 16-byte alignment plus a trailing f32 packs to 96.
	assert.Equal(t, uint64(96), entry.Buffer.MinBindingSize)
	assert.Equal(t, "splats", varNames[1][0])
}

func TestParseVertexLayoutsBuiltinOnlyShader(t *testing.T) {
	// VertexOutput has a @builtin field and Splat has no @location fields,
	// so neither qualifies as a vertex input struct.
	layouts := parseVertexLayouts(splatStyleSource)
	assert.Empty(t, layouts)
}

func TestParseVertexLayoutsMeshInput(t *testing.T) {
	layouts := parseVertexLayouts(meshStyleSource)
	require.Len(t, layouts, 1)
	require.Len(t, layouts[0], 1)

	layout := layouts[0][0]
	assert.Equal(t, uint64(24), layout.ArrayStride)
	require.Len(t, layout.Attributes, 2)
	assert.Equal(t, wgpu.VertexFormatFloat32x3, layout.Attributes[0].Format)
	assert.Equal(t, uint64(0), layout.Attributes[0].Offset)
	assert.Equal(t, uint64(12), layout.Attributes[1].Offset)
	assert.Equal(t, uint32(1), layout.Attributes[1].ShaderLocation)
}

func TestNewShaderFromSource(t *testing.T) {
	vs := NewShaderFromSource("splat_vert", ShaderTypeVertex, splatStyleSource)
	assert.Equal(t, "splat_vert", vs.Key())
	assert.Equal(t, "vs_main", vs.EntryPoint())
	assert.Equal(t, ShaderTypeVertex, vs.ShaderType())
	assert.Empty(t, vs.VertexLayouts())
	require.NotNil(t, vs.Module())
	assert.Equal(t, splatStyleSource, vs.Module().WGSLDescriptor.Code)

	binding, ok := vs.BindGroupFromVarName(1, "splats")
	require.True(t, ok)
	assert.Equal(t, 0, binding)
	assert.Equal(t, "camera", vs.BindGroupVarName(0, 0))

	fs := NewShaderFromSource("splat_frag", ShaderTypeFragment, splatStyleSource)
	assert.Equal(t, "fs_main", fs.EntryPoint())
}

func TestNewShaderFromSourcePanicsOnEmptySource(t *testing.T) {
	assert.Panics(t, func() {
		NewShaderFromSource("bad", ShaderTypeVertex, "")
	})
}
