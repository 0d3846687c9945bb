package splat

// SamplerBuilderOption is a functional option used to configure a Sampler during construction.
type SamplerBuilderOption func(*sampler)

// WithCount sets the number of splats to generate.
//
// Parameters:
//   - count: the target splat count (must be positive)
//
// Returns:
//   - SamplerBuilderOption: a function that sets the splat count for this sampler
func WithCount(count int) SamplerBuilderOption {
	return func(s *sampler) {
		s.count = count
	}
}

// WithSeed sets the RNG seed so sampling is reproducible. Without this
// option the seed is derived from the current time.
//
// Parameters:
//   - seed: the seed value
//
// Returns:
//   - SamplerBuilderOption: a function that sets the RNG seed for this sampler
func WithSeed(seed int64) SamplerBuilderOption {
	return func(s *sampler) {
		s.seed = seed
	}
}

// WithScale sets the tangent-plane standard deviation of each splat. A zero
// scale (the default) derives the footprint from the mesh area and splat
// count so the surface stays covered.
//
// Parameters:
//   - scale: standard deviation in object units, or 0 for automatic
//
// Returns:
//   - SamplerBuilderOption: a function that sets the splat scale for this sampler
func WithScale(scale float32) SamplerBuilderOption {
	return func(s *sampler) {
		s.scale = scale
	}
}

// WithNormalScale sets the ratio of the normal-axis standard deviation to
// the tangent-plane one. Values well below 1 flatten the Gaussian onto the
// surface.
//
// Parameters:
//   - ratio: normal-axis scale ratio in (0, 1]
//
// Returns:
//   - SamplerBuilderOption: a function that sets the normal scale ratio for this sampler
func WithNormalScale(ratio float32) SamplerBuilderOption {
	return func(s *sampler) {
		s.normalScale = ratio
	}
}

// WithColor sets the base color applied to every splat in fixed color mode.
//
// Parameters:
//   - r, g, b: linear RGB components in [0, 1]
//
// Returns:
//   - SamplerBuilderOption: a function that sets the base color for this sampler
func WithColor(r, g, b float32) SamplerBuilderOption {
	return func(s *sampler) {
		s.color = [3]float32{r, g, b}
	}
}

// WithColorMode sets how splats are colored.
//
// Parameters:
//   - mode: ColorModeFixed or ColorModeNormal
//
// Returns:
//   - SamplerBuilderOption: a function that sets the color mode for this sampler
func WithColorMode(mode ColorMode) SamplerBuilderOption {
	return func(s *sampler) {
		s.colorMode = mode
	}
}

// WithOpacity sets the peak alpha of every generated splat.
//
// Parameters:
//   - opacity: alpha in [0, 1]
//
// Returns:
//   - SamplerBuilderOption: a function that sets the opacity for this sampler
func WithOpacity(opacity float32) SamplerBuilderOption {
	return func(s *sampler) {
		s.opacity = opacity
	}
}

// WithStrategy sets the surface distribution strategy.
//
// Parameters:
//   - strategy: StrategyAreaWeighted or StrategyPerFace
//
// Returns:
//   - SamplerBuilderOption: a function that sets the sampling strategy for this sampler
func WithStrategy(strategy SampleStrategy) SamplerBuilderOption {
	return func(s *sampler) {
		s.strategy = strategy
	}
}

// WithWorkers sets the number of pool workers used for sampling. The result
// is identical for any worker count; this only affects throughput.
//
// Parameters:
//   - workers: worker count (values below 1 are treated as 1)
//
// Returns:
//   - SamplerBuilderOption: a function that sets the worker count for this sampler
func WithWorkers(workers int) SamplerBuilderOption {
	return func(s *sampler) {
		if workers < 1 {
			workers = 1
		}
		s.workers = workers
	}
}
