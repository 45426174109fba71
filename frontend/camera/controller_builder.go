package camera

// ControllerOption is a functional option for configuring a Controller.
type ControllerOption func(*controllerImpl)

// WithMoveSpeed sets the base movement speed cap.
//
// Parameters:
//   - speed: maximum velocity per axis without boost
//
// Returns:
//   - ControllerOption: functional option to set the move speed
func WithMoveSpeed(speed float64) ControllerOption {
	return func(c *controllerImpl) {
		c.moveSpeed = speed
	}
}

// WithBoostMultiplier sets the factor applied to the speed cap while the
// boost binding is held.
//
// Parameters:
//   - mult: the boost multiplier
//
// Returns:
//   - ControllerOption: functional option to set the boost multiplier
func WithBoostMultiplier(mult float64) ControllerOption {
	return func(c *controllerImpl) {
		c.boostMultiplier = mult
	}
}

// WithMoveDrag sets the per-tick geometric decay applied to movement
// velocity while no directional button is held.
//
// Parameters:
//   - drag: decay factor in [0, 1)
//
// Returns:
//   - ControllerOption: functional option to set the movement drag
func WithMoveDrag(drag float64) ControllerOption {
	return func(c *controllerImpl) {
		c.moveDrag = drag
	}
}

// WithLookSensitivity sets the divisor converting drag pixel deltas into
// angular velocity. Larger values make the look slower.
//
// Parameters:
//   - sensitivity: pixels per radian of accumulated angular velocity
//
// Returns:
//   - ControllerOption: functional option to set the look sensitivity
func WithLookSensitivity(sensitivity float64) ControllerOption {
	return func(c *controllerImpl) {
		c.lookSensitivity = sensitivity
	}
}

// WithLookDrag sets the per-tick decay applied to angular velocity after it
// is consumed. The default of 0 applies each delta exactly once with no
// smoothing.
//
// Parameters:
//   - drag: decay factor in [0, 1)
//
// Returns:
//   - ControllerOption: functional option to set the look drag
func WithLookDrag(drag float64) ControllerOption {
	return func(c *controllerImpl) {
		c.lookDrag = drag
	}
}
