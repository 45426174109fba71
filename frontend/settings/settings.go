// Package settings holds the externally owned emulator configuration read by
// the frontend layer. The frontend never mutates these values; they are set
// by whatever configuration surface the embedding application provides.
package settings

// StereoRenderOption selects whether and how the bottom (touch) screen is
// duplicated for stereoscopic viewing. Exactly one option is active at a
// time; it changes both the touch-region shape and the pixel remapping rule.
type StereoRenderOption int

const (
	// StereoOff renders a single flat image.
	StereoOff StereoRenderOption = iota
	// StereoSideBySide renders a half-width image per eye, side by side.
	StereoSideBySide
	// StereoCardboardVR renders per-eye images shifted for a phone-in-headset
	// viewer, with user-adjustable horizontal shift.
	StereoCardboardVR
)

// LayoutOption selects how the two emulated screens are arranged within the
// rendered frame.
type LayoutOption int

const (
	// LayoutDefault stacks the top screen above the bottom screen.
	LayoutDefault LayoutOption = iota
	// LayoutSingleScreen shows only one screen, filling the frame.
	LayoutSingleScreen
	// LayoutLargeScreen shows a large primary screen with a small secondary
	// screen beside it.
	LayoutLargeScreen
	// LayoutSideScreen places the two screens side by side at equal height.
	LayoutSideScreen
	// LayoutMobilePortrait stacks the screens for a portrait-oriented window.
	LayoutMobilePortrait
	// LayoutMobileLandscape uses a large top screen with the bottom screen
	// tucked into a corner, for a landscape-oriented mobile window.
	LayoutMobileLandscape
)

// Settings is the read-only configuration snapshot consumed by the frontend.
// A single instance is shared by reference; the frontend reads it when
// events arrive or layouts are rebuilt and never writes to it.
type Settings struct {
	// Render3D is the active stereoscopic rendering mode.
	Render3D StereoRenderOption

	// Layout selects the on-screen arrangement of the emulated screens.
	Layout LayoutOption

	// SwapScreen exchanges the top and bottom screen positions.
	SwapScreen bool

	// UprightScreen rotates the layout for a device held upright; layouts
	// built with it report IsRotated == false.
	UprightScreen bool

	// CustomLayout bypasses the named layout options and stretches both
	// screens across the window.
	CustomLayout bool

	// CardboardXShift and CardboardYShift nudge the per-eye images when
	// Render3D is StereoCardboardVR, in pixels of user adjustment.
	CardboardXShift int
	CardboardYShift int

	// CardboardScreenSize scales the per-eye image as a percentage of the
	// available half-frame (100 = fill).
	CardboardScreenSize int

	// DisableFog forwards a fog-override flag to the renderer alongside the
	// free-camera view matrix.
	DisableFog bool
}

// Default returns a Settings instance with the stock configuration: flat
// rendering, default layout, fog enabled.
//
// Returns:
//   - *Settings: a freshly allocated default configuration
func Default() *Settings {
	return &Settings{
		Render3D:            StereoOff,
		Layout:              LayoutDefault,
		CardboardScreenSize: 100,
	}
}
