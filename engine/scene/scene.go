package scene

import (
	"fmt"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/meshsplat/meshsplat/common"
	"github.com/meshsplat/meshsplat/engine/camera"
	"github.com/meshsplat/meshsplat/engine/logging"
	"github.com/meshsplat/meshsplat/engine/mesh"
	"github.com/meshsplat/meshsplat/engine/renderer"
	"github.com/meshsplat/meshsplat/engine/renderer/bind_group_provider"
	"github.com/meshsplat/meshsplat/engine/renderer/pipeline"
	"github.com/meshsplat/meshsplat/engine/renderer/shader"
	"github.com/meshsplat/meshsplat/engine/splat"
)

const (
	splatPipelineKey       = "splat_render"
	splatVertexShaderKey   = "splat_vertex"
	splatFragmentShaderKey = "splat_fragment"

	meshPreviewPipelineKey       = "mesh_preview"
	meshPreviewVertexShaderKey   = "mesh_preview_vertex"
	meshPreviewFragmentShaderKey = "mesh_preview_fragment"

	// prepareChunkSize is the number of splats handed to one worker task
	// during the parallel depth/cull pass.
	prepareChunkSize = 1024
)

// Scene owns the splat clouds and optional preview meshes that make up one
// renderable view, plus the camera that observes them. Each frame the host
// calls Prepare to update the camera uniform and (when enabled) re-sort and
// cull the splats, then DrawCalls to encode the frame.
type Scene interface {
	// Name retrieves the name of the scene.
	//
	// Returns:
	//   - string: the name of the scene
	Name() string

	// SetName sets the name of the scene.
	//
	// Parameters:
	//   - name: the new name of the scene
	SetName(name string)

	// Active reports whether the scene is active for rendering.
	//
	// Returns:
	//   - bool: whether the scene is active
	Active() bool

	// SetActive sets whether the scene is active for rendering.
	//
	// Parameters:
	//   - active: whether the scene is active
	SetActive(active bool)

	// Camera retrieves the camera attached to the scene.
	//
	// Returns:
	//   - camera.Camera: the camera attached to the scene
	Camera() camera.Camera

	// SetCamera attaches a camera to the scene.
	//
	// Parameters:
	//   - cam: the camera to attach
	SetCamera(cam camera.Camera)

	// Renderer retrieves the renderer attached to the scene.
	//
	// Returns:
	//   - renderer.Renderer: the renderer attached to the scene
	Renderer() renderer.Renderer

	// SetRenderer attaches a renderer to the scene.
	//
	// Parameters:
	//   - r: the renderer to attach
	SetRenderer(r renderer.Renderer)

	// AddCloud uploads a splat cloud under the given name. The splats are
	// validated, packed into a GPU storage buffer sized for the full cloud,
	// and drawn every frame until removed. Adding a cloud under an existing
	// name is an error; use SetCloudSplats to replace one in place.
	//
	// Parameters:
	//   - name: unique name for the cloud within this scene
	//   - splats: the splats to upload (must be non-empty and valid)
	//
	// Returns:
	//   - error: if the name is taken, a splat fails validation, or buffer creation fails
	AddCloud(name string, splats []splat.Splat) error

	// SetCloudSplats replaces the splats of an existing cloud. The new set
	// must fit in the cloud's original buffer capacity.
	//
	// Parameters:
	//   - name: name of an existing cloud
	//   - splats: the replacement splats
	//
	// Returns:
	//   - error: if the cloud does not exist, a splat fails validation, or the set exceeds capacity
	SetCloudSplats(name string, splats []splat.Splat) error

	// Cloud retrieves a copy of the splats in the named cloud.
	//
	// Parameters:
	//   - name: name of the cloud
	//
	// Returns:
	//   - []splat.Splat: copy of the cloud's splats, or nil if not found
	Cloud(name string) []splat.Splat

	// CloudNames retrieves the names of all clouds in draw order.
	//
	// Returns:
	//   - []string: cloud names in the order they are drawn
	CloudNames() []string

	// RemoveCloud removes the named cloud and releases its GPU resources.
	//
	// Parameters:
	//   - name: name of the cloud to remove
	RemoveCloud(name string)

	// SplatCount retrieves the total number of splats across all clouds.
	//
	// Returns:
	//   - int: total splat count
	SplatCount() int

	// VisibleCount retrieves the number of instances the named cloud drew
	// after the most recent Prepare. Equal to the cloud's splat count unless
	// frustum culling removed some.
	//
	// Parameters:
	//   - name: name of the cloud
	//
	// Returns:
	//   - uint32: instances drawn last frame, 0 if the cloud is unknown
	VisibleCount(name string) uint32

	// AddPreviewMesh uploads a triangle mesh drawn as a flat-shaded overlay
	// alongside the splats. The first call registers the preview pipeline.
	//
	// Parameters:
	//   - name: unique name for the mesh within this scene
	//   - m: the mesh to upload
	//
	// Returns:
	//   - error: if the name is taken or buffer creation fails
	AddPreviewMesh(name string, m *mesh.Mesh) error

	// RemovePreviewMesh removes the named preview mesh.
	//
	// Parameters:
	//   - name: name of the mesh to remove
	RemovePreviewMesh(name string)

	// DepthSort reports whether per-frame back-to-front splat sorting is enabled.
	//
	// Returns:
	//   - bool: whether depth sorting is enabled
	DepthSort() bool

	// SetDepthSort enables or disables per-frame back-to-front splat sorting.
	// Sorting re-packs and re-uploads every cloud each frame, so it trades
	// upload bandwidth for correct source-over compositing order.
	//
	// Parameters:
	//   - enabled: whether to sort splats by view depth each frame
	SetDepthSort(enabled bool)

	// FrustumCulling reports whether per-splat CPU frustum culling is enabled.
	//
	// Returns:
	//   - bool: whether frustum culling is enabled
	FrustumCulling() bool

	// SetFrustumCulling enables or disables per-splat CPU frustum culling.
	// Like depth sorting, culling re-uploads the visible set each frame.
	//
	// Parameters:
	//   - enabled: whether to cull splats against the camera frustum
	SetFrustumCulling(enabled bool)

	// Prepare runs the per-frame CPU phase: updates the camera from its
	// controller, writes the camera uniform, and when depth sorting or
	// frustum culling is enabled re-orders and re-uploads each cloud's
	// splat buffer. Must be called before BeginFrame so the queued buffer
	// writes land ahead of the frame's commands.
	Prepare()

	// DrawCalls encodes one instanced quad draw per cloud and one indexed
	// draw per preview mesh into the current frame's render pass.
	DrawCalls()
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	cam camera.Camera
	r   renderer.Renderer

	clouds     map[string]*splatCloud
	cloudOrder []string
	meshes     map[string]bind_group_provider.BindGroupProvider
	meshOrder  []string

	depthSort      bool
	frustumCulling bool

	// Bind group and binding indices discovered from the splat vertex
	// shader's reflection data.
	cameraGroup   int
	cameraBinding int
	splatGroup    int
	splatBinding  int

	splatVertexShader shader.Shader

	meshPipelineReady bool

	// Pre-allocated slices reused each frame to avoid per-frame allocations.
	writePool          []bind_group_provider.BufferWrite
	drawBindGroupsPool []bind_group_provider.BindGroupProvider

	// prepPool manages a bounded set of reusable goroutines for the
	// parallel depth/cull pass of Prepare. Workers persist across frames,
	// avoiding per-frame goroutine spawn/teardown overhead.
	prepPool    worker.DynamicWorkerPool
	prepWorkers int
}

// splatCloud is the per-cloud GPU state plus the CPU-side splats and the
// scratch buffers the sort/cull pass reuses each frame.
type splatCloud struct {
	splats   []splat.Splat
	maxScale []float32 // largest scale component per splat, for cull radii
	provider bind_group_provider.BindGroupProvider
	capacity int    // storage buffer capacity in splats
	visible  uint32 // instances drawn after the last Prepare
	dirty    bool   // splats changed since the last upload

	depths []float32
	keep   []bool
	order  []int
	packed []byte
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new Scene with the given camera and renderer. It builds
// the splat shaders from the canonical embedded source, registers the splat
// render pipeline (triangle strip, no depth test or write, source-over
// blending), and initializes the camera's bind group from the shader's
// reflected camera uniform layout. Camera and renderer are required and
// NewScene panics if either is nil.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera to attach (must not be nil)
//   - r: the renderer to attach (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, r renderer.Renderer, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}
	if r == nil {
		panic("scene: NewScene requires a non-nil Renderer")
	}

	vert := shader.NewShaderFromSource(splatVertexShaderKey, shader.ShaderTypeVertex, splat.SplatShaderSource)
	frag := shader.NewShaderFromSource(splatFragmentShaderKey, shader.ShaderTypeFragment, splat.SplatShaderSource)

	s := &scene{
		mu:                &sync.RWMutex{},
		name:              name,
		active:            false,
		cam:               cam,
		r:                 r,
		clouds:            make(map[string]*splatCloud),
		meshes:            make(map[string]bind_group_provider.BindGroupProvider),
		splatGroup:        1,
		splatVertexShader: vert,
		prepWorkers:       max(runtime.NumCPU()-1, 1),
		drawBindGroupsPool: make(
			[]bind_group_provider.BindGroupProvider, 0, 2,
		),
	}

	for _, option := range options {
		option(s)
	}

	// Initialize the prep pool after options so WithPrepareWorkers can
	// override the default. Queue size of 256 accommodates large clouds
	// split into 1024-splat chunks with headroom.
	s.prepPool = worker.NewDynamicWorkerPool(s.prepWorkers, 256, 1*time.Second)

	// Discover the camera and splat bind groups from the shader's variable
	// names rather than hard-coding indices.
	for group, names := range vert.BindGroupVarNames() {
		for binding, varName := range names {
			low := strings.ToLower(varName)
			if strings.Contains(low, "camera") {
				s.cameraGroup = group
				s.cameraBinding = binding
			}
			if strings.Contains(low, "splat") {
				s.splatGroup = group
				s.splatBinding = binding
			}
		}
	}

	p := pipeline.NewPipeline(splatPipelineKey,
		pipeline.WithVertexShader(vert),
		pipeline.WithFragmentShader(frag),
		pipeline.WithTopology(wgpu.PrimitiveTopologyTriangleStrip),
		pipeline.WithDepthTestEnabled(false),
		pipeline.WithDepthWriteEnabled(false),
		pipeline.WithBlendEnabled(true),
	)
	if err := r.RegisterPipelines(p); err != nil {
		panic(fmt.Sprintf("scene: failed to register splat pipeline: %v", err))
	}

	// Initialize the camera's bind group on the GPU using the layout from
	// the splat vertex shader.
	if bgp := cam.BindGroupProvider(); bgp != nil {
		if err := r.InitBindGroup(bgp, vert.BindGroupLayoutDescriptor(s.cameraGroup), nil, nil); err != nil {
			panic(fmt.Sprintf("scene: failed to init camera bind group: %v", err))
		}
	}

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) SetCamera(cam camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = cam
}

func (s *scene) Renderer() renderer.Renderer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r
}

func (s *scene) SetRenderer(r renderer.Renderer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r = r
}

func (s *scene) DepthSort() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.depthSort
}

func (s *scene) SetDepthSort(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.depthSort = enabled
	s.markCloudsDirty()
}

func (s *scene) FrustumCulling() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.frustumCulling
}

func (s *scene) SetFrustumCulling(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frustumCulling = enabled
	s.markCloudsDirty()
}

// markCloudsDirty forces a re-upload on the next Prepare. Needed when sort
// or cull is toggled off so the buffer returns to the full original order.
// Caller must hold the write lock.
func (s *scene) markCloudsDirty() {
	for _, c := range s.clouds {
		c.dirty = true
	}
}

func (s *scene) AddCloud(name string, splats []splat.Splat) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.clouds[name]; exists {
		return fmt.Errorf("scene: cloud %q already exists", name)
	}
	if len(splats) == 0 {
		return fmt.Errorf("scene: cloud %q has no splats", name)
	}
	maxScale, err := validateSplats(splats)
	if err != nil {
		return fmt.Errorf("scene: cloud %q: %w", name, err)
	}

	owned := make([]splat.Splat, len(splats))
	copy(owned, splats)
	packed := splat.PackSplats(owned)

	bgp := bind_group_provider.NewBindGroupProvider(
		s.name+"_"+name+"_splats",
		bind_group_provider.WithInstanceCount(len(owned)),
	)

	// The reflected layout sizes the storage binding for a single element;
	// override it to hold the whole cloud.
	descriptor := s.splatVertexShader.BindGroupLayoutDescriptor(s.splatGroup)
	sizeOverrides := map[int]uint64{
		s.splatBinding: uint64(len(packed)),
	}
	if err := s.r.InitBindGroup(bgp, descriptor, nil, sizeOverrides); err != nil {
		return fmt.Errorf("scene: failed to init splat bind group for cloud %q: %w", name, err)
	}

	s.r.WriteBuffers([]bind_group_provider.BufferWrite{{
		Provider: bgp,
		Binding:  s.splatBinding,
		Offset:   0,
		Data:     packed,
	}})

	s.clouds[name] = &splatCloud{
		splats:   owned,
		maxScale: maxScale,
		provider: bgp,
		capacity: len(owned),
		visible:  uint32(len(owned)),
	}
	s.cloudOrder = append(s.cloudOrder, name)
	logging.LogDebug("scene %q: added cloud %q with %d splats", s.name, name, len(owned))
	return nil
}

func (s *scene) SetCloudSplats(name string, splats []splat.Splat) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, exists := s.clouds[name]
	if !exists {
		return fmt.Errorf("scene: cloud %q not found", name)
	}
	if len(splats) > c.capacity {
		return fmt.Errorf("scene: cloud %q holds at most %d splats, got %d", name, c.capacity, len(splats))
	}
	maxScale, err := validateSplats(splats)
	if err != nil {
		return fmt.Errorf("scene: cloud %q: %w", name, err)
	}

	c.splats = append(c.splats[:0], splats...)
	c.maxScale = maxScale
	c.visible = uint32(len(c.splats))
	c.dirty = true
	return nil
}

func (s *scene) Cloud(name string) []splat.Splat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, exists := s.clouds[name]
	if !exists {
		return nil
	}
	out := make([]splat.Splat, len(c.splats))
	copy(out, c.splats)
	return out
}

func (s *scene) CloudNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.cloudOrder))
	copy(out, s.cloudOrder)
	return out
}

func (s *scene) RemoveCloud(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, exists := s.clouds[name]
	if !exists {
		return
	}
	c.provider.Release()
	delete(s.clouds, name)
	for i, n := range s.cloudOrder {
		if n == name {
			s.cloudOrder = append(s.cloudOrder[:i], s.cloudOrder[i+1:]...)
			break
		}
	}
}

func (s *scene) SplatCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, c := range s.clouds {
		total += len(c.splats)
	}
	return total
}

func (s *scene) VisibleCount(name string) uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, exists := s.clouds[name]
	if !exists {
		return 0
	}
	return c.visible
}

func (s *scene) AddPreviewMesh(name string, m *mesh.Mesh) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.meshes[name]; exists {
		return fmt.Errorf("scene: preview mesh %q already exists", name)
	}
	if m == nil {
		return fmt.Errorf("scene: preview mesh %q is nil", name)
	}

	// Register the preview pipeline lazily so scenes that never show the
	// source mesh skip compiling its shaders.
	if !s.meshPipelineReady {
		vert := shader.NewShaderFromSource(meshPreviewVertexShaderKey, shader.ShaderTypeVertex, MeshPreviewShaderSource)
		frag := shader.NewShaderFromSource(meshPreviewFragmentShaderKey, shader.ShaderTypeFragment, MeshPreviewShaderSource)
		p := pipeline.NewPipeline(meshPreviewPipelineKey,
			pipeline.WithVertexShader(vert),
			pipeline.WithFragmentShader(frag),
			pipeline.WithCullMode(wgpu.CullModeBack),
		)
		if err := s.r.RegisterPipelines(p); err != nil {
			return fmt.Errorf("scene: failed to register preview pipeline: %w", err)
		}
		s.meshPipelineReady = true
	}

	vertexData, indexData, indexCount := BuildPreviewBuffers(m)
	provider := bind_group_provider.NewBindGroupProvider(s.name + "_" + name + "_preview")
	if err := s.r.InitMeshBuffers(provider, vertexData, indexData, indexCount); err != nil {
		return fmt.Errorf("scene: failed to init preview buffers for mesh %q: %w", name, err)
	}

	s.meshes[name] = provider
	s.meshOrder = append(s.meshOrder, name)
	return nil
}

func (s *scene) RemovePreviewMesh(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	provider, exists := s.meshes[name]
	if !exists {
		return
	}
	provider.Release()
	delete(s.meshes, name)
	for i, n := range s.meshOrder {
		if n == name {
			s.meshOrder = append(s.meshOrder[:i], s.meshOrder[i+1:]...)
			break
		}
	}
}

func (s *scene) Prepare() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cam == nil || s.r == nil {
		return
	}

	s.cam.Update()

	view := s.cam.ViewMatrix()
	writes := s.writePool[:0]

	if bgp := s.cam.BindGroupProvider(); bgp != nil {
		uniform := camera.GPUCameraUniform{View: view, Aspect: s.cam.Aspect()}
		writes = append(writes, bind_group_provider.BufferWrite{
			Provider: bgp,
			Binding:  s.cameraBinding,
			Offset:   0,
			Data:     uniform.Marshal(),
		})
	}

	var frustum common.Frustum
	if s.frustumCulling {
		vp := s.cam.ViewProjectionMatrix()
		frustum = common.ExtractFrustumFromMatrix(vp[:])
	}

	for _, name := range s.cloudOrder {
		c := s.clouds[name]
		if len(c.splats) == 0 {
			c.visible = 0
			continue
		}

		if !s.depthSort && !s.frustumCulling {
			// Static path: the buffer only changes when the splats do.
			if c.dirty {
				writes = append(writes, bind_group_provider.BufferWrite{
					Provider: c.provider,
					Binding:  s.splatBinding,
					Offset:   0,
					Data:     splat.PackSplats(c.splats),
				})
				c.dirty = false
			}
			c.visible = uint32(len(c.splats))
			c.provider.SetInstanceCount(len(c.splats))
			continue
		}

		s.prepareCloud(c, view[:], &frustum)
		writes = append(writes, bind_group_provider.BufferWrite{
			Provider: c.provider,
			Binding:  s.splatBinding,
			Offset:   0,
			Data:     c.packed[:int(c.visible)*splat.GPUSplatSize],
		})
		c.dirty = false
	}

	// Coalesced GPU submission: one WriteBuffers call for the camera
	// uniform and every re-packed cloud.
	s.r.WriteBuffers(writes)
	s.writePool = writes[:0]
}

// prepareCloud runs the parallel depth/cull pass for one cloud and re-packs
// the visible splats in draw order into c.packed. Caller must hold the
// write lock.
func (s *scene) prepareCloud(c *splatCloud, view []float32, frustum *common.Frustum) {
	n := len(c.splats)
	if cap(c.depths) < n {
		c.depths = make([]float32, n)
		c.keep = make([]bool, n)
	}
	if cap(c.packed) < c.capacity*splat.GPUSplatSize {
		c.packed = make([]byte, c.capacity*splat.GPUSplatSize)
	}
	depths := c.depths[:n]
	keep := c.keep[:n]
	culling := s.frustumCulling

	// Fan the depth/cull work out across the prep pool. A WaitGroup
	// provides per-frame barrier sync since pool.Wait() blocks until
	// workers idle-exit, which is unsuitable for frame-rate workloads.
	var wg sync.WaitGroup
	taskID := 0
	for start := 0; start < n; start += prepareChunkSize {
		end := min(start+prepareChunkSize, n)
		wg.Add(1)
		lo, hi := start, end
		s.prepPool.SubmitTask(worker.Task{
			ID: taskID,
			Do: func() (any, error) {
				defer wg.Done()
				for i := lo; i < hi; i++ {
					sp := &c.splats[i]
					depths[i] = splat.ViewDepth(sp.Position, view)
					if culling {
						// 3 sigma along the largest axis bounds the
						// splat's visible extent.
						keep[i] = frustum.ContainsSphere(sp.Position, 3*c.maxScale[i])
					} else {
						keep[i] = true
					}
				}
				return nil, nil
			},
		})
		taskID++
	}
	wg.Wait()

	order := c.order[:0]
	for i := 0; i < n; i++ {
		if keep[i] {
			order = append(order, i)
		}
	}
	if s.depthSort {
		// View-space Z is negative in front of the camera, so ascending
		// order draws back to front.
		sort.Slice(order, func(a, b int) bool {
			return depths[order[a]] < depths[order[b]]
		})
	}

	for j, idx := range order {
		g := splat.FromSplat(&c.splats[idx])
		g.MarshalTo(c.packed[j*splat.GPUSplatSize:])
	}

	c.order = order
	c.visible = uint32(len(order))
	c.provider.SetInstanceCount(len(order))
}

func (s *scene) DrawCalls() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cam == nil || s.r == nil {
		return
	}
	camBGP := s.cam.BindGroupProvider()
	if camBGP == nil {
		return
	}

	for _, name := range s.cloudOrder {
		c := s.clouds[name]
		if c.visible == 0 {
			continue
		}
		groups := append(s.drawBindGroupsPool[:0], camBGP, c.provider)
		if err := s.r.DrawQuadInstances(splatPipelineKey, c.visible, groups); err != nil {
			logging.LogError("scene: splat draw for cloud %q failed: %v", name, err)
		}
	}

	for _, name := range s.meshOrder {
		groups := append(s.drawBindGroupsPool[:0], camBGP)
		if err := s.r.DrawCall(meshPreviewPipelineKey, s.meshes[name], 1, groups); err != nil {
			logging.LogError("scene: preview draw for mesh %q failed: %v", name, err)
		}
	}
}

// validateSplats checks every splat and collects the largest scale component
// of each, used as the cull radius basis.
func validateSplats(splats []splat.Splat) ([]float32, error) {
	maxScale := make([]float32, len(splats))
	for i := range splats {
		if err := splats[i].Validate(); err != nil {
			return nil, fmt.Errorf("splat %d: %w", i, err)
		}
		m := splats[i].Scale[0]
		if splats[i].Scale[1] > m {
			m = splats[i].Scale[1]
		}
		if splats[i].Scale[2] > m {
			m = splats[i].Scale[2]
		}
		maxScale[i] = m
	}
	return maxScale, nil
}
