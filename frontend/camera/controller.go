// Package camera implements the free-camera debug controller: a smoothed
// 6-degree-of-freedom transform integrated once per frame from held buttons
// and top-screen drag deltas, handed to the renderer as a view matrix.
package camera

import (
	"math"

	"github.com/Carmen-Shannon/duo-go/common"
	"github.com/Carmen-Shannon/duo-go/frontend/input"
)

// Bindings is the controller-owned set of digital inputs, constructed once
// at controller creation. A nil entry simply never reads as held.
type Bindings struct {
	Forward input.ButtonDevice
	Back    input.ButtonDevice
	Left    input.ButtonDevice
	Right   input.ButtonDevice
	Up      input.ButtonDevice
	Down    input.ButtonDevice
	Reset   input.ButtonDevice
	Boost   input.ButtonDevice
}

// Controller integrates the free camera. All methods must be called from the
// window/frame thread: the controller runs synchronously between pointer
// events and the once-per-frame Update and has no internal locking.
type Controller interface {
	// Grab begins a drag-to-look interaction at the given top-screen pixel
	// offsets. The first Update after Grab sees a zero delta.
	//
	// Parameters:
	//   - x, y: pixel offsets into the top screen
	Grab(x, y float64)

	// Drag records the current drag position while grabbed. Deltas are
	// consumed by Update, one per tick.
	//
	// Parameters:
	//   - x, y: pixel offsets into the top screen
	Drag(x, y float64)

	// Release ends the drag-to-look interaction.
	Release()

	// Grabbed reports whether a drag-to-look interaction is in progress.
	//
	// Returns:
	//   - bool: true while grabbed
	Grabbed() bool

	// Reset restores the camera-to-world transform to identity, discarding
	// accumulated position and orientation.
	Reset()

	// WorldMatrix returns the current camera-to-world transform.
	//
	// Returns:
	//   - [16]float64: the transform, column-major
	WorldMatrix() [16]float64

	// Update integrates one tick of button and drag input into the world
	// transform and derives the view matrix by inversion. When the world
	// matrix is singular the view value is unusable and ok is false; the
	// caller must skip publishing that tick rather than propagate it.
	//
	// Returns:
	//   - view: the world-to-camera (view) matrix, column-major
	//   - ok: false when inversion failed
	Update() (view [16]float64, ok bool)
}

type controllerImpl struct {
	bindings Bindings

	// Drag-to-look state: tx/ty are the latest top-screen hit and lastX/lastY
	// the pair consumed by the previous tick, so each Update sees exactly one
	// delta.
	grabbed      bool
	lastX, lastY float64
	tx, ty       float64

	world         [16]float64 // camera-to-world, column-major
	keyMovement   [3]float64  // smoothed velocity along local right/up/forward
	mouseMovement [2]float64  // smoothed yaw/pitch angular velocity

	moveSpeed       float64
	boostMultiplier float64
	moveDrag        float64
	lookSensitivity float64
	lookDrag        float64
}

// Velocity integration constants: the per-tick acceleration is the speed cap
// divided by moveStepDivisor, and decayed velocities snap to exactly zero
// below the epsilon so drag never produces infinite asymptotic drift.
const (
	moveStepDivisor = 5.0
	moveEpsilon     = 0.01
	lookEpsilon     = 0.0001
)

// Compile-time interface compliance check
var _ Controller = &controllerImpl{}

// NewController creates a free-camera controller with the world transform at
// identity.
//
// Parameters:
//   - bindings: the digital inputs driving movement, reset, and boost
//   - options: functional options to configure speeds and smoothing
//
// Returns:
//   - Controller: the newly created controller
func NewController(bindings Bindings, options ...ControllerOption) Controller {
	c := &controllerImpl{
		bindings:        bindings,
		moveSpeed:       10.0,
		boostMultiplier: 5.0,
		moveDrag:        0.8,
		lookSensitivity: 500.0,
		lookDrag:        0.0,
	}
	common.Identity(c.world[:])

	for _, option := range options {
		option(c)
	}
	return c
}

func (c *controllerImpl) Grab(x, y float64) {
	c.tx = x
	c.ty = y
	c.lastX = x
	c.lastY = y
	c.grabbed = true
}

func (c *controllerImpl) Drag(x, y float64) {
	if !c.grabbed {
		return
	}
	c.tx = x
	c.ty = y
}

func (c *controllerImpl) Release() {
	c.grabbed = false
}

func (c *controllerImpl) Grabbed() bool {
	return c.grabbed
}

func (c *controllerImpl) Reset() {
	common.Identity(c.world[:])
	c.keyMovement = [3]float64{}
	c.mouseMovement = [2]float64{}
}

func (c *controllerImpl) WorldMatrix() [16]float64 {
	return c.world
}

// held reports a binding's status, treating nil bindings as never held.
func held(d input.ButtonDevice) bool {
	return d != nil && d.GetStatus()
}

// integrateAxis accelerates v toward the signed cap while one of the two
// directional buttons is held, or decays it geometrically and snaps it to
// exactly zero once it falls under the movement epsilon.
func (c *controllerImpl) integrateAxis(v float64, negative, positive bool, step, cap float64) float64 {
	switch {
	case negative:
		return common.ClampRange(v-step, cap)
	case positive:
		return common.ClampRange(v+step, cap)
	default:
		v *= c.moveDrag
		if math.Abs(v) < moveEpsilon {
			v = 0
		}
		return v
	}
}

func (c *controllerImpl) Update() (view [16]float64, ok bool) {
	mouseDeltaX := c.tx - c.lastX
	mouseDeltaY := c.ty - c.lastY
	c.lastX = c.tx
	c.lastY = c.ty

	speedCap := c.moveSpeed
	if held(c.bindings.Boost) {
		speedCap *= c.boostMultiplier
	}
	step := speedCap / moveStepDivisor

	// Forward is -Z in the camera's local frame.
	c.keyMovement[2] = c.integrateAxis(c.keyMovement[2], held(c.bindings.Forward), held(c.bindings.Back), step, speedCap)
	c.keyMovement[0] = c.integrateAxis(c.keyMovement[0], held(c.bindings.Left), held(c.bindings.Right), step, speedCap)
	c.keyMovement[1] = c.integrateAxis(c.keyMovement[1], held(c.bindings.Down), held(c.bindings.Up), step, speedCap)

	if held(c.bindings.Reset) {
		common.Identity(c.world[:])
	}

	// The camera's current up axis is the second column of the world matrix.
	up := [3]float64{c.world[1], c.world[5], c.world[9]}

	if !common.IsZero3(c.keyMovement) {
		// Strafe and forward movement follow the camera's local axes, but the
		// vertical component is projected onto the current up axis so vertical
		// movement stays aligned with world gravity, not head tilt.
		movement := [3]float64{c.keyMovement[0], 0, c.keyMovement[2]}
		movement[0] += up[0] * c.keyMovement[1]
		movement[1] += up[1] * c.keyMovement[1]
		movement[2] += up[2] * c.keyMovement[1]

		common.Translate(c.world[:], c.world[:], movement)
	}

	c.mouseMovement[0] += mouseDeltaX / -c.lookSensitivity
	c.mouseMovement[1] += mouseDeltaY / -c.lookSensitivity

	if c.mouseMovement[0] != 0 || c.mouseMovement[1] != 0 {
		// Yaw about the current up axis, then pitch about the absolute X
		// axis. Pitch deliberately ignores the camera's local right axis so
		// roll never accumulates. A degenerate up axis skips the yaw.
		yawAxis := up
		if common.Normalize3(&yawAxis) {
			common.Rotate(c.world[:], c.world[:], c.mouseMovement[0], yawAxis)
		}
		common.Rotate(c.world[:], c.world[:], c.mouseMovement[1], [3]float64{1, 0, 0})
	}

	c.mouseMovement[0] *= c.lookDrag
	c.mouseMovement[1] *= c.lookDrag
	if math.Abs(c.mouseMovement[0]) < lookEpsilon {
		c.mouseMovement[0] = 0
	}
	if math.Abs(c.mouseMovement[1]) < lookEpsilon {
		c.mouseMovement[1] = 0
	}

	if !common.Invert4(view[:], c.world[:]) {
		return view, false
	}
	return view, true
}
