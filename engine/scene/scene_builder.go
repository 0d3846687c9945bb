package scene

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active for rendering.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithDepthSort enables per-frame back-to-front splat sorting. Sorting
// re-packs and re-uploads every cloud each frame; with it off, splats render
// in upload order, which is acceptable for mostly transparent clouds but
// produces order artifacts on dense opaque ones. Default is off.
//
// Parameters:
//   - enabled: whether to sort splats by view depth each frame
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithDepthSort(enabled bool) SceneBuilderOption {
	return func(s *scene) {
		s.depthSort = enabled
	}
}

// WithFrustumCulling enables per-splat CPU frustum culling. Culled clouds
// are re-packed and re-uploaded each frame like sorted ones, so this only
// pays off when a large share of the cloud is off screen. Default is off;
// off-screen splats are cheap for the GPU to reject in the vertex stage.
//
// Parameters:
//   - enabled: whether to cull splats against the camera frustum
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithFrustumCulling(enabled bool) SceneBuilderOption {
	return func(s *scene) {
		s.frustumCulling = enabled
	}
}

// WithPrepareWorkers sets the number of worker goroutines used during the
// parallel depth/cull pass of Prepare. Defaults to runtime.NumCPU()-1.
// Only relevant when depth sorting or frustum culling is enabled.
//
// Parameters:
//   - n: the number of prepare workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithPrepareWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.prepWorkers = n
	}
}
