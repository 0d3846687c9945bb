package splat

import (
	"github.com/chewxy/math32"
)

// ProjectionK is the projection factor -1/tan(30°) for the fixed 60° vertical
// field of view baked into the splat shader. Negative because the camera
// looks down -Z in view space.
const ProjectionK = float32(-1.7320508)

// zEpsilon is the view-space depth margin below which a splat counts as
// behind the camera plane. Matches Z_EPSILON in the shader.
const zEpsilon = float32(1e-6)

// ProjectedSplat is the screen-space footprint of a splat: the ellipse the
// vertex stage produces, in NDC units.
type ProjectedSplat struct {
	// Center is the projected Gaussian center in NDC.
	Center [2]float32

	// Radius holds the 3-sigma half extents of the quad along X and Y.
	Radius [2]float32

	// Conic is the inverse 2D covariance as (a, b, c) for the quadratic form
	// a*dx^2 + 2*b*dx*dy + c*dy^2.
	Conic [3]float32

	// Depth is the view-space Z of the center, negative in front of the
	// camera.
	Depth float32
}

// ProjectSplat runs the splat shader's vertex-stage math on the CPU:
// view transform, covariance projection through the perspective Jacobian,
// and conic extraction.
//
// Parameters:
//   - s: the splat to project
//   - view: column-major view matrix (16 elements)
//   - aspect: viewport width / height
//
// Returns:
//   - ProjectedSplat: the screen-space footprint
//   - bool: false when the splat is culled (behind the camera or with a
//     degenerate projected covariance)
func ProjectSplat(s *Splat, view []float32, aspect float32) (ProjectedSplat, bool) {
	// p = W * position + t, with W and t read from the column-major view.
	px := view[0]*s.Position[0] + view[4]*s.Position[1] + view[8]*s.Position[2] + view[12]
	py := view[1]*s.Position[0] + view[5]*s.Position[1] + view[9]*s.Position[2] + view[13]
	pz := view[2]*s.Position[0] + view[6]*s.Position[1] + view[10]*s.Position[2] + view[14]

	if pz >= -zEpsilon {
		return ProjectedSplat{}, false
	}

	k := ProjectionK
	center := [2]float32{
		px * k / (aspect * pz),
		py * k / pz,
	}

	// T = W * Sigma3 * W^T, row-major 3x3 throughout.
	sigma3 := s.Covariance()
	var w [9]float32
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			w[r*3+c] = view[c*4+r]
		}
	}
	ws := mul3(w, sigma3)
	t := mul3(ws, transpose3(w))

	// Jacobian rows of the perspective projection at p.
	zz := pz * pz
	j0 := [3]float32{k / (aspect * pz), 0, -px * k / (aspect * zz)}
	j1 := [3]float32{0, k / pz, -py * k / zz}

	// Sigma2 = J * T * J^T (2x2 symmetric).
	tj0 := mulVec3(t, j0)
	tj1 := mulVec3(t, j1)
	a := dot3(j0, tj0)
	b := dot3(j0, tj1)
	c := dot3(j1, tj1)

	det := a*c - b*b
	if det < 0 {
		det = 0
	}
	if det <= 0 {
		return ProjectedSplat{}, false
	}

	invDet := 1 / det
	return ProjectedSplat{
		Center: center,
		Radius: [2]float32{3 * math32.Sqrt(a), 3 * math32.Sqrt(c)},
		Conic:  [3]float32{c * invDet, -b * invDet, a * invDet},
		Depth:  pz,
	}, true
}

// Alpha evaluates the fragment-stage Gaussian falloff at offset (dx, dy)
// from the splat center, in the same NDC units as the projection.
//
// Parameters:
//   - opacity: the splat's peak alpha
//   - dx, dy: offset from the projected center
//
// Returns:
//   - float32: opacity * exp(-0.5 * delta^T * Sigma2^-1 * delta)
func (p *ProjectedSplat) Alpha(opacity, dx, dy float32) float32 {
	power := -0.5 * (p.Conic[0]*dx*dx + 2*p.Conic[1]*dx*dy + p.Conic[2]*dy*dy)
	return opacity * math32.Exp(power)
}

// ViewDepth returns the view-space Z of an object-space position. Cheaper
// than a full projection, used for depth sorting.
//
// Parameters:
//   - pos: object-space position
//   - view: column-major view matrix (16 elements)
//
// Returns:
//   - float32: view-space Z, negative in front of the camera
func ViewDepth(pos [3]float32, view []float32) float32 {
	return view[2]*pos[0] + view[6]*pos[1] + view[10]*pos[2] + view[14]
}

func mul3(a, b [9]float32) [9]float32 {
	var out [9]float32
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r*3+c] = a[r*3+0]*b[0*3+c] + a[r*3+1]*b[1*3+c] + a[r*3+2]*b[2*3+c]
		}
	}
	return out
}

func transpose3(m [9]float32) [9]float32 {
	return [9]float32{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

func mulVec3(m [9]float32, v [3]float32) [3]float32 {
	return [3]float32{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

func dot3(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}
