// package splat implements 3D Gaussian splat generation from triangle meshes
// and the CPU-side projection math the renderer and tests share.
package splat

import (
	"fmt"
	"math"
)

// Splat is a single oriented 3D Gaussian in object space.
type Splat struct {
	// Position is the Gaussian center.
	Position [3]float32

	// Rotation is a row-major orthonormal 3x3 matrix whose columns are the
	// Gaussian's principal axes. Column 2 is the surface normal axis for
	// splats produced by the sampler.
	Rotation [9]float32

	// Scale holds the per-axis standard deviations. All components must be
	// positive; Scale[2] is the smallest so the Gaussian lies flat on the
	// surface.
	Scale [3]float32

	// Color is linear RGB in [0, 1].
	Color [3]float32

	// Opacity is the peak alpha at the Gaussian center, in [0, 1].
	Opacity float32
}

// Validate checks that the splat's numeric fields are renderable.
//
// Returns:
//   - error: the first constraint violation found, or nil
func (s *Splat) Validate() error {
	for i, v := range s.Scale {
		if !(v > 0) || math.IsInf(float64(v), 0) {
			return fmt.Errorf("scale[%d] must be a positive finite value, got %v", i, v)
		}
	}
	if s.Opacity < 0 || s.Opacity > 1 || math.IsNaN(float64(s.Opacity)) {
		return fmt.Errorf("opacity must be in [0, 1], got %v", s.Opacity)
	}
	for i, v := range s.Color {
		if v < 0 || v > 1 || math.IsNaN(float64(v)) {
			return fmt.Errorf("color[%d] must be in [0, 1], got %v", i, v)
		}
	}
	return nil
}

// Covariance returns the 3x3 covariance matrix R * S * S^T * R^T as a
// row-major slice, where S = diag(Scale).
//
// Returns:
//   - [9]float32: symmetric covariance matrix, row-major
func (s *Splat) Covariance() [9]float32 {
	var sigma [9]float32
	s2 := [3]float32{
		s.Scale[0] * s.Scale[0],
		s.Scale[1] * s.Scale[1],
		s.Scale[2] * s.Scale[2],
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float32
			for k := 0; k < 3; k++ {
				sum += s.Rotation[i*3+k] * s2[k] * s.Rotation[j*3+k]
			}
			sigma[i*3+j] = sum
		}
	}
	return sigma
}
