package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCamera_UpdateReadsController(t *testing.T) {
	ctrl := NewOrbitController(WithRadius(5), WithAzimuth(0), WithElevation(0))
	cam := NewCamera(WithController(ctrl), WithAspect(2.0))

	// Azimuth 0 and elevation 0 place the camera on the +Z axis.
	x, y, z := ctrl.Position()
	assert.InDelta(t, 0.0, float64(x), 1e-5)
	assert.InDelta(t, 0.0, float64(y), 1e-5)
	assert.InDelta(t, 5.0, float64(z), 1e-5)

	cam.Update()
	view := cam.ViewMatrix()

	// The camera position maps to the view-space origin.
	vx := view[0]*x + view[4]*y + view[8]*z + view[12]
	vy := view[1]*x + view[5]*y + view[9]*z + view[13]
	vz := view[2]*x + view[6]*y + view[10]*z + view[14]
	assert.InDelta(t, 0.0, float64(vx), 1e-5)
	assert.InDelta(t, 0.0, float64(vy), 1e-5)
	assert.InDelta(t, 0.0, float64(vz), 1e-5)

	assert.Equal(t, float32(2.0), cam.Aspect())
}

func TestOrbitController_ZoomClamps(t *testing.T) {
	ctrl := NewOrbitController(WithRadius(5), WithRadiusBounds(1, 10), WithZoomSpeed(1))

	ctrl.Zoom(100)
	assert.Equal(t, float32(1), ctrl.Radius(), "zooming in stops at the minimum radius")

	ctrl.Zoom(-100)
	assert.Equal(t, float32(10), ctrl.Radius(), "zooming out stops at the maximum radius")
}

func TestOrbitController_ElevationClamps(t *testing.T) {
	ctrl := NewOrbitController()
	for i := 0; i < 1000; i++ {
		ctrl.OrbitUp()
	}
	assert.LessOrEqual(t, ctrl.Elevation(), ctrl.MaxElevation())

	for i := 0; i < 1000; i++ {
		ctrl.OrbitDown()
	}
	assert.GreaterOrEqual(t, ctrl.Elevation(), ctrl.MinElevation())
}

func TestOrbitController_OrbitKeepsRadius(t *testing.T) {
	ctrl := NewOrbitController(WithRadius(3), WithTarget(1, -2, 4))
	for i := 0; i < 37; i++ {
		ctrl.OrbitLeft()
		ctrl.OrbitUp()
	}

	x, y, z := ctrl.Position()
	tx, ty, tz := ctrl.Target()
	dx, dy, dz := x-tx, y-ty, z-tz
	dist := math.Sqrt(float64(dx*dx + dy*dy + dz*dz))
	require.InDelta(t, 3.0, dist, 1e-4)
}

func TestOrbitController_PanMovesTargetAndPosition(t *testing.T) {
	ctrl := NewOrbitController(WithRadius(5), WithPanSpeed(1))

	px, py, pz := ctrl.Position()
	ctrl.PanUp(1)

	nx, ny, nz := ctrl.Position()
	tx, ty, tz := ctrl.Target()

	// Position and target move by the same offset, preserving the orbit.
	assert.InDelta(t, float64(nx-px), float64(tx), 1e-5)
	assert.InDelta(t, float64(ny-py), float64(ty), 1e-5)
	assert.InDelta(t, float64(nz-pz), float64(tz), 1e-5)
}
