package renderer

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU backend. It is the only backend;
	// the splat pipeline's storage-buffer layout and blend state are
	// expressed in WGSL terms.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how finished frames reach the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the vertical blank, capping the frame rate
	// at the monitor refresh rate. No tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents immediately. Useful for measuring raw
	// splat throughput with the profiler; may tear.
	PresentModeUncapped
)

// MSAASampleCount is the multisample count for the render target. MSAA
// smooths the hard clip edge of each splat quad at its 3-sigma boundary;
// the Gaussian falloff itself needs no anti-aliasing. WebGPU guarantees
// 1 and 4, higher counts are adapter-dependent.
type MSAASampleCount uint32

const (
	MSAAOff MSAASampleCount = 1
	MSAA4x  MSAASampleCount = 4 // default
	MSAA8x  MSAASampleCount = 8
	MSAA16x MSAASampleCount = 16
)

// RendererBackend is what the Renderer facade drives. It embeds the
// concrete interface of the selected GPU API.
type RendererBackend interface {
	wgpuRendererBackend
}
