// Package renderer presents the emulated frame and receives the per-frame
// render-hacks input: a narrow debug struct carrying the free-camera view
// matrix and the fog override past the normal emulated-hardware state.
package renderer

// RenderHacks is the per-frame debug override input delivered to the
// renderer. It is a fire-and-forget write, not request/response: the
// renderer applies whatever was most recently set when it draws.
type RenderHacks struct {
	// ViewMatrix is the world-to-camera transform, column-major.
	ViewMatrix [16]float64

	// DisableFog suppresses emulated fog while the free camera is active.
	DisableFog bool
}

// PresentMode controls how finished frames are delivered to the display.
type PresentMode int

const (
	// PresentModeUncapped presents frames as fast as they are produced.
	PresentModeUncapped PresentMode = iota
	// PresentModeVSync synchronizes presentation with the display refresh.
	PresentModeVSync
)

// Renderer is the surface the frontend window drives each frame.
type Renderer interface {
	// SetRenderHacks stores the debug override input applied to subsequent
	// frames. Safe to call from the window/input thread.
	//
	// Parameters:
	//   - h: the override input to apply
	SetRenderHacks(h RenderHacks)

	// RenderHacks returns the most recently set override input.
	//
	// Returns:
	//   - RenderHacks: the current override input
	RenderHacks() RenderHacks

	// ConfigureSurface resizes the presentation surface. Must be called once
	// before the first frame and again whenever the window resizes.
	//
	// Parameters:
	//   - width: surface width in pixels
	//   - height: surface height in pixels
	ConfigureSurface(width, height int)

	// BeginFrame acquires the next surface image, uploads the render-hacks
	// uniform, and opens the frame's render pass.
	//
	// Returns:
	//   - error: error if the surface image could not be acquired
	BeginFrame() error

	// EndFrame closes the render pass and submits the frame's commands.
	EndFrame()

	// Present delivers the finished frame to the display.
	Present()
}
