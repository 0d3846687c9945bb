package camera

import (
	"sync"

	"github.com/chewxy/math32"
)

type orbitController struct {
	mu *sync.Mutex

	// position is derived from target + spherical coordinates, never set
	// directly.
	position [3]float32
	target   [3]float32

	radius    float32
	azimuth   float32
	elevation float32

	minRadius    float32
	maxRadius    float32
	minElevation float32
	maxElevation float32

	orbitSpeed       float32
	mouseSensitivity float32
	zoomSpeed        float32
	panSpeed         float32
}

var _ CameraController = &orbitController{}

// NewOrbitController creates an orbit camera controller. Defaults frame a
// unit-scale mesh at the origin: radius 4, slight downward tilt, zoom bounds
// wide enough for close inspection and full-cloud overview.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewOrbitController(options ...CameraControllerOption) CameraController {
	oc := &orbitController{
		mu: &sync.Mutex{},

		radius:    4.0,
		elevation: math32.Pi / 6,

		minRadius:    0.25,
		maxRadius:    100.0,
		minElevation: -math32.Pi/2 + 0.1,
		maxElevation: math32.Pi/2 - 0.1,

		orbitSpeed:       0.03,
		mouseSensitivity: 0.005,
		zoomSpeed:        0.25,
		panSpeed:         0.02,
	}

	for _, option := range options {
		option(oc)
	}

	oc.updatePosition()
	return oc
}

// updatePosition recomputes position from the spherical offset around the
// target. Caller must hold the mutex.
func (oc *orbitController) updatePosition() {
	cosElev := math32.Cos(oc.elevation)
	oc.position[0] = oc.target[0] + oc.radius*cosElev*math32.Sin(oc.azimuth)
	oc.position[1] = oc.target[1] + oc.radius*math32.Sin(oc.elevation)
	oc.position[2] = oc.target[2] + oc.radius*cosElev*math32.Cos(oc.azimuth)
}

// localAxes returns the camera's right, up and forward vectors, consistent
// with the LookAt matrix the camera builds from this state. All components
// are zero when position and target coincide. Caller must hold the mutex.
func (oc *orbitController) localAxes() (rx, ry, rz, ux, uy, uz, fx, fy, fz float32) {
	bx := oc.position[0] - oc.target[0]
	by := oc.position[1] - oc.target[1]
	bz := oc.position[2] - oc.target[2]
	bLen := math32.Sqrt(bx*bx + by*by + bz*bz)
	if bLen < 1e-8 {
		return
	}
	bx /= bLen
	by /= bLen
	bz /= bLen

	// right = normalize(cross(worldUp, backward)) with worldUp = (0, 1, 0),
	// which collapses to (bz, 0, -bx).
	rx = bz
	rz = -bx
	rLen := math32.Sqrt(rx*rx + rz*rz)
	if rLen < 1e-8 {
		return
	}
	rx /= rLen
	rz /= rLen

	// up = cross(backward, right)
	ux = by*rz - bz*ry
	uy = bz*rx - bx*rz
	uz = bx*ry - by*rx

	fx = -bx
	fy = -by
	fz = -bz
	return
}

func (oc *orbitController) Position() (x, y, z float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.position[0], oc.position[1], oc.position[2]
}

func (oc *orbitController) Target() (x, y, z float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.target[0], oc.target[1], oc.target[2]
}

func (oc *orbitController) SetTarget(x, y, z float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.target[0] = x
	oc.target[1] = y
	oc.target[2] = z
	oc.updatePosition()
}

func (oc *orbitController) Zoom(delta float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.radius = clampf(oc.radius-delta*oc.zoomSpeed, oc.minRadius, oc.maxRadius)
	oc.updatePosition()
}

func (oc *orbitController) Radius() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.radius
}

func (oc *orbitController) Azimuth() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.azimuth
}

func (oc *orbitController) SetAzimuth(azimuth float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.azimuth = azimuth
	oc.updatePosition()
}

func (oc *orbitController) Elevation() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.elevation
}

func (oc *orbitController) SetElevation(elevation float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.elevation = clampf(elevation, oc.minElevation, oc.maxElevation)
	oc.updatePosition()
}

func (oc *orbitController) MinElevation() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.minElevation
}

func (oc *orbitController) MaxElevation() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.maxElevation
}

func (oc *orbitController) OrbitLeft() {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.azimuth -= oc.orbitSpeed
	oc.updatePosition()
}

func (oc *orbitController) OrbitRight() {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.azimuth += oc.orbitSpeed
	oc.updatePosition()
}

func (oc *orbitController) OrbitUp() {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.elevation = clampf(oc.elevation+oc.orbitSpeed, oc.minElevation, oc.maxElevation)
	oc.updatePosition()
}

func (oc *orbitController) OrbitDown() {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.elevation = clampf(oc.elevation-oc.orbitSpeed, oc.minElevation, oc.maxElevation)
	oc.updatePosition()
}

func (oc *orbitController) MouseSensitivity() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.mouseSensitivity
}

func (oc *orbitController) PanRight(delta float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	rx, _, rz, _, _, _, _, _, _ := oc.localAxes()
	oc.translate(rx*delta*oc.panSpeed, 0, rz*delta*oc.panSpeed)
}

func (oc *orbitController) PanUp(delta float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	_, _, _, ux, uy, uz, _, _, _ := oc.localAxes()
	oc.translate(ux*delta*oc.panSpeed, uy*delta*oc.panSpeed, uz*delta*oc.panSpeed)
}

func (oc *orbitController) PanForward(delta float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	_, _, _, _, _, _, fx, fy, fz := oc.localAxes()
	oc.translate(fx*delta*oc.panSpeed, fy*delta*oc.panSpeed, fz*delta*oc.panSpeed)
}

// translate shifts target and position by the same offset, preserving the
// spherical orbit relationship. Caller must hold the mutex.
func (oc *orbitController) translate(dx, dy, dz float32) {
	oc.target[0] += dx
	oc.target[1] += dy
	oc.target[2] += dz
	oc.position[0] += dx
	oc.position[1] += dy
	oc.position[2] += dz
}

func clampf(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}
