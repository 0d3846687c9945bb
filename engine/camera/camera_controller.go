package camera

// CameraController drives the orbit camera used by the splat viewer. It owns
// the positional state (target, spherical offset) and derives the world-space
// position from it; Camera reads Position/Target each Update to build the
// view matrix. All methods are safe for concurrent use, input callbacks run
// on the window thread while the engine tick reads state.
type CameraController interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// Target returns the orbit pivot point.
	//
	// Returns:
	//   - x, y, z: world-space target position
	Target() (x, y, z float32)

	// SetTarget moves the orbit pivot and recomputes the camera position
	// from the current spherical coordinates.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetTarget(x, y, z float32)

	// Zoom changes the orbit radius by delta scaled with the zoom speed.
	// Positive delta moves toward the target; the radius is clamped to the
	// configured bounds.
	//
	// Parameters:
	//   - delta: scroll input, typically the wheel offset
	Zoom(delta float32)

	// Radius returns the current distance from the target.
	Radius() float32

	// Azimuth returns the horizontal angle around the Y axis in radians.
	Azimuth() float32

	// SetAzimuth sets the horizontal angle and recomputes the position.
	//
	// Parameters:
	//   - azimuth: horizontal angle in radians (0 = +Z axis)
	SetAzimuth(azimuth float32)

	// Elevation returns the vertical angle from the horizontal plane in radians.
	Elevation() float32

	// SetElevation sets the vertical angle, clamped to the elevation bounds,
	// and recomputes the position.
	//
	// Parameters:
	//   - elevation: vertical angle in radians
	SetElevation(elevation float32)

	// MinElevation returns the lower elevation clamp in radians.
	MinElevation() float32

	// MaxElevation returns the upper elevation clamp in radians.
	MaxElevation() float32

	// OrbitLeft rotates the camera one orbit step left around the target.
	OrbitLeft()

	// OrbitRight rotates the camera one orbit step right around the target.
	OrbitRight()

	// OrbitUp tilts the camera one orbit step upward, clamped at MaxElevation.
	OrbitUp()

	// OrbitDown tilts the camera one orbit step downward, clamped at MinElevation.
	OrbitDown()

	// MouseSensitivity returns the multiplier applied to mouse drag deltas
	// when the caller feeds them into SetAzimuth/SetElevation.
	MouseSensitivity() float32

	// PanRight shifts target and position together along the camera's local
	// right axis, keeping the orbit offset intact.
	//
	// Parameters:
	//   - delta: pan amount scaled by the pan speed
	PanRight(delta float32)

	// PanUp shifts target and position together along the camera's local up axis.
	//
	// Parameters:
	//   - delta: pan amount scaled by the pan speed
	PanUp(delta float32)

	// PanForward shifts target and position together along the view direction,
	// dollying the whole orbit through the scene.
	//
	// Parameters:
	//   - delta: pan amount scaled by the pan speed
	PanForward(delta float32)
}
