package splat

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/chewxy/math32"
	"github.com/meshsplat/meshsplat/common"
	"github.com/meshsplat/meshsplat/engine/logging"
	"github.com/meshsplat/meshsplat/engine/mesh"
)

// SampleStrategy selects how splat positions are distributed over the mesh
// surface.
type SampleStrategy int

const (
	// StrategyAreaWeighted draws each splat from a face chosen with
	// probability proportional to its area. Exactly the requested number of
	// splats is produced.
	StrategyAreaWeighted SampleStrategy = iota

	// StrategyPerFace assigns each face round(area/totalArea * count)
	// splats. The output count may differ from the request after rounding.
	StrategyPerFace
)

// ColorMode selects how sampled splats are colored.
type ColorMode int

const (
	// ColorModeFixed colors every splat with the configured base color.
	ColorModeFixed ColorMode = iota

	// ColorModeNormal maps the face normal to RGB (n*0.5 + 0.5), useful for
	// inspecting splat orientation.
	ColorModeNormal
)

// chunkSize is the number of splats generated per worker task. Each chunk
// owns an RNG derived from (seed, chunk index), so output is reproducible
// for a given seed regardless of worker count.
const chunkSize = 1024

// Sampler generates oriented Gaussian splats from a triangle mesh surface.
type Sampler interface {
	// Sample generates splats over the surface of m.
	//
	// Parameters:
	//   - m: the source mesh (must be non-nil with positive total area)
	//
	// Returns:
	//   - []Splat: the generated splats
	//   - error: validation error when the mesh or sampler configuration is unusable
	Sample(m *mesh.Mesh) ([]Splat, error)
}

type sampler struct {
	count       int
	seed        int64
	scale       float32
	normalScale float32
	color       [3]float32
	colorMode   ColorMode
	opacity     float32
	strategy    SampleStrategy
	workers     int

	pool worker.DynamicWorkerPool
}

// Ensure sampler implements Sampler interface.
var _ Sampler = &sampler{}

// NewSampler creates a new Sampler with the provided options applied over
// defaults: 4096 splats, area-weighted strategy, automatic footprint scale,
// time-derived seed.
//
// Parameters:
//   - options: a variadic list of SamplerBuilderOption functions
//
// Returns:
//   - Sampler: the configured sampler
func NewSampler(options ...SamplerBuilderOption) Sampler {
	s := &sampler{
		count:       4096,
		seed:        time.Now().UnixNano(),
		scale:       0, // resolved against the mesh at sample time
		normalScale: 0.15,
		color:       [3]float32{0.8, 0.8, 0.8},
		colorMode:   ColorModeFixed,
		opacity:     0.8,
		strategy:    StrategyAreaWeighted,
		workers:     4,
	}
	for _, option := range options {
		option(s)
	}

	s.pool = worker.NewDynamicWorkerPool(s.workers, 256, 1*time.Second)
	return s
}

func (s *sampler) Sample(m *mesh.Mesh) ([]Splat, error) {
	if err := s.validate(m); err != nil {
		return nil, err
	}

	start := time.Now()

	baseScale := s.scale
	if baseScale == 0 {
		// Cover the surface: splat standard deviation on the order of the
		// per-splat patch size.
		baseScale = 0.8 * math32.Sqrt(m.TotalArea()/float32(s.count))
	}

	var splats []Splat
	switch s.strategy {
	case StrategyPerFace:
		splats = s.samplePerFace(m, baseScale)
	default:
		splats = s.sampleAreaWeighted(m, baseScale)
	}

	logging.LogDebug("sampled %d splats from %d faces in %s", len(splats), m.FaceCount(), time.Since(start))
	return splats, nil
}

func (s *sampler) validate(m *mesh.Mesh) error {
	if m == nil {
		return fmt.Errorf("mesh is nil")
	}
	if m.TotalArea() <= 0 {
		return fmt.Errorf("mesh has zero total surface area")
	}
	if s.count <= 0 {
		return fmt.Errorf("splat count must be positive, got %d", s.count)
	}
	if s.scale < 0 {
		return fmt.Errorf("scale must be non-negative, got %v", s.scale)
	}
	if s.normalScale <= 0 || s.normalScale > 1 {
		return fmt.Errorf("normal scale must be in (0, 1], got %v", s.normalScale)
	}
	if s.opacity < 0 || s.opacity > 1 {
		return fmt.Errorf("opacity must be in [0, 1], got %v", s.opacity)
	}
	return nil
}

// sampleAreaWeighted draws count splats, each from a face selected with
// probability proportional to face area.
func (s *sampler) sampleAreaWeighted(m *mesh.Mesh, baseScale float32) []Splat {
	out := make([]Splat, s.count)

	// Last face with positive area backs the rounding fallback: cumulative
	// float arithmetic can leave the draw value past the final face.
	lastPositive := 0
	for f := 0; f < m.FaceCount(); f++ {
		if m.FaceArea(f) > 0 {
			lastPositive = f
		}
	}

	s.runChunks(len(out), func(rng *rand.Rand, start, end int) {
		for i := start; i < end; i++ {
			u := rng.Float32() * m.TotalArea()
			face := lastPositive
			for f := 0; f < m.FaceCount(); f++ {
				u -= m.FaceArea(f)
				if u < 0 {
					face = f
					break
				}
			}
			if m.FaceArea(face) == 0 {
				face = lastPositive
			}
			out[i] = s.sampleFace(rng, m, face, baseScale)
		}
	})
	return out
}

// samplePerFace gives each face a rounded share of the requested count.
func (s *sampler) samplePerFace(m *mesh.Mesh, baseScale float32) []Splat {
	faceForSample := make([]int, 0, s.count)
	for f := 0; f < m.FaceCount(); f++ {
		share := float64(m.FaceArea(f)) / float64(m.TotalArea()) * float64(s.count)
		n := int(share + 0.5)
		for i := 0; i < n; i++ {
			faceForSample = append(faceForSample, f)
		}
	}

	out := make([]Splat, len(faceForSample))
	s.runChunks(len(out), func(rng *rand.Rand, start, end int) {
		for i := start; i < end; i++ {
			out[i] = s.sampleFace(rng, m, faceForSample[i], baseScale)
		}
	})
	return out
}

// runChunks splits [0, n) into fixed-size chunks and runs fn for each on the
// worker pool. Every chunk gets its own seed-derived RNG so the result does
// not depend on scheduling.
func (s *sampler) runChunks(n int, fn func(rng *rand.Rand, start, end int)) {
	var wg sync.WaitGroup
	taskID := 0
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}

		wg.Add(1)
		chunkStart, chunkEnd := start, end
		chunk := int64(taskID)
		id := taskID
		taskID++
		s.pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				rng := rand.New(rand.NewSource(s.seed + chunk*0x9E3779B9))
				fn(rng, chunkStart, chunkEnd)
				return nil, nil
			},
		})
	}
	wg.Wait()
}

// sampleFace generates one splat at a uniform position on face f.
func (s *sampler) sampleFace(rng *rand.Rand, m *mesh.Mesh, f int, baseScale float32) Splat {
	a, b, c := m.FaceVertices(f)

	u, v := foldBarycentric(rng.Float32(), rng.Float32())

	pos := a.Add(b.Sub(a).Scale(u)).Add(c.Sub(a).Scale(v))
	n := m.FaceNormal(f)

	color := s.color
	if s.colorMode == ColorModeNormal {
		color = [3]float32{n.X*0.5 + 0.5, n.Y*0.5 + 0.5, n.Z*0.5 + 0.5}
	}

	return Splat{
		Position: [3]float32{pos.X, pos.Y, pos.Z},
		Rotation: normalFrame(n),
		Scale:    [3]float32{baseScale, baseScale, baseScale * s.normalScale},
		Color:    color,
		Opacity:  s.opacity,
	}
}

// foldBarycentric reflects points from the upper triangle of the unit square
// back into the lower one so positions stay uniform over the face. The
// u+v == 1 diagonal already lies inside the triangle and is kept as-is.
func foldBarycentric(u, v float32) (float32, float32) {
	if u+v > 1 {
		return 1 - u, 1 - v
	}
	return u, v
}

// barycentric recovers the (u, v) coordinates of point p within triangle
// (a, b, c). Shared by the sampler tests to verify containment.
func barycentric(p, a, b, c common.Vec3) (float32, float32) {
	e0 := b.Sub(a)
	e1 := c.Sub(a)
	e2 := p.Sub(a)

	d00 := e0.Dot(e0)
	d01 := e0.Dot(e1)
	d11 := e1.Dot(e1)
	d20 := e2.Dot(e0)
	d21 := e2.Dot(e1)

	denom := d00*d11 - d01*d01
	if denom == 0 {
		return 0, 0
	}
	u := (d11*d20 - d01*d21) / denom
	v := (d00*d21 - d01*d20) / denom
	return u, v
}
