// Package window implements the emulator frontend window: it owns the touch
// state, routes platform pointer events through the coordinate mapper, hosts
// the free-camera debug controller, and publishes the per-frame render-hacks
// input to the renderer.
package window

import (
	"github.com/Carmen-Shannon/duo-go/common"
	"github.com/Carmen-Shannon/duo-go/frontend/camera"
	"github.com/Carmen-Shannon/duo-go/frontend/input"
	"github.com/Carmen-Shannon/duo-go/frontend/layout"
	"github.com/Carmen-Shannon/duo-go/frontend/renderer"
	"github.com/Carmen-Shannon/duo-go/frontend/settings"
	"github.com/Carmen-Shannon/duo-go/frontend/touch"
	"github.com/cogentcore/webgpu/wgpu"
)

// TouchFactoryName is the fixed name the window registers its touch state
// under; consumers create pollable touch devices from it.
const TouchFactoryName = "emu_window"

// pointerPhase is the window's pointer interaction state. The camera-grab
// and touch flows are mutually exclusive: a press that grabs the camera
// never writes touch state, and a release while grabbed never clears touch
// state left by an unrelated press.
type pointerPhase int

const (
	phaseIdle pointerPhase = iota
	phaseTouchActive
	phaseCameraGrabbed
)

// Window is the frontend window driven by platform events and, once per
// rendered frame, by UpdateCameraHack. Apart from the touch state (which is
// internally locked for cross-thread polling) all methods must be called
// from the window/event thread.
type Window interface {
	// TouchPressed handles a pointer press at the given framebuffer pixel.
	// A press on the top screen grabs the free camera; a press on the touch
	// region writes the touch state. Anything else is rejected.
	//
	// Parameters:
	//   - x, y: framebuffer pixel coordinates
	//
	// Returns:
	//   - bool: true if the press was accepted by either flow
	TouchPressed(x, y int) bool

	// TouchMoved handles pointer movement while pressed. Movement feeds
	// whichever flow the preceding press started; moves that stray outside
	// the touch region are clipped back onto it.
	//
	// Parameters:
	//   - x, y: framebuffer pixel coordinates
	TouchMoved(x, y int)

	// TouchReleased ends the active pointer interaction.
	TouchReleased()

	// ClipToTouchScreen projects a pixel onto the nearest valid touch-region
	// coordinate under the active layout and stereo mode.
	//
	// Parameters:
	//   - x, y: framebuffer pixel coordinates
	//
	// Returns:
	//   - cx, cy: the nearest in-region pixel coordinates
	ClipToTouchScreen(x, y int) (cx, cy int)

	// UpdateCameraHack integrates one tick of free-camera input and
	// publishes the resulting view matrix and fog override to the renderer.
	// Call once per rendered frame. A singular world matrix skips the
	// publish for that tick.
	UpdateCameraHack()

	// UpdateLayout rebuilds the framebuffer layout for a new window size
	// from the active layout configuration.
	//
	// Parameters:
	//   - width: frame width in pixels
	//   - height: frame height in pixels
	//   - portrait: whether the window reports portrait orientation
	UpdateLayout(width, height int, portrait bool)

	// Layout returns the active framebuffer layout.
	//
	// Returns:
	//   - layout.FramebufferLayout: the current layout
	Layout() layout.FramebufferLayout

	// MinClientAreaSize returns the smallest client area that keeps every
	// shown screen at native resolution under the active layout option.
	//
	// Returns:
	//   - width, height: minimum dimensions in pixels
	MinClientAreaSize() (width, height int)

	// Keyboard returns the keyboard state fed by the platform key callbacks.
	//
	// Returns:
	//   - *input.Keyboard: the window's keyboard
	Keyboard() *input.Keyboard

	// Camera returns the free-camera controller, or nil when disabled.
	//
	// Returns:
	//   - camera.Controller: the controller
	Camera() camera.Controller

	// SetRenderer attaches the renderer that receives the per-frame
	// render-hacks input. The renderer is created after the window because
	// it needs the window's surface.
	//
	// Parameters:
	//   - r: the renderer to publish to
	SetRenderer(r renderer.Renderer)

	// SurfaceDescriptor returns the platform surface descriptor for
	// renderer creation.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the surface descriptor
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// ProcessMessages pumps platform events without blocking.
	//
	// Returns:
	//   - bool: false once the window should close
	ProcessMessages() bool

	// Close destroys the platform window, unregisters the touch factory,
	// and degrades outstanding touch devices to neutral reads.
	//
	// Returns:
	//   - error: error if the platform window was not initialized
	Close() error
}

type emuWindow struct {
	settings *settings.Settings
	renderer renderer.Renderer
	cam      camera.Controller
	keyboard *input.Keyboard

	touchState *touch.State
	phase      pointerPhase

	layout              layout.FramebufferLayout
	width, height       int
	minWidth, minHeight int

	title          string
	internalWindow any
}

// Compile-time interface compliance check
var _ Window = &emuWindow{}

// NewWindow creates the frontend window, registers its touch state under
// TouchFactoryName, and opens the platform window.
//
// Parameters:
//   - s: the externally owned emulator configuration (must not be nil)
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the newly created window
//   - error: error if the platform window could not be created
func NewWindow(s *settings.Settings, options ...WindowBuilderOption) (Window, error) {
	w := newEmuWindow(s)

	for _, option := range options {
		option(w)
	}
	w.UpdateLayout(w.width, w.height, w.height > w.width)

	if err := newPlatformWindow(w); err != nil {
		input.UnregisterTouchFactory(TouchFactoryName)
		w.touchState.Close()
		return nil, err
	}
	return w, nil
}

// newEmuWindow builds a window without a platform backend; the platform
// window is attached by NewWindow.
func newEmuWindow(s *settings.Settings) *emuWindow {
	keyboard := input.NewKeyboard()
	minWidth, minHeight := layout.MinimumSize(s.Layout, s.UprightScreen)

	w := &emuWindow{
		settings:   s,
		keyboard:   keyboard,
		touchState: touch.NewState(),
		width:      minWidth,
		height:     minHeight,
		minWidth:   minWidth,
		minHeight:  minHeight,
		title:      "duo-go",
	}
	w.cam = camera.NewController(camera.Bindings{
		Forward: keyboard.Button(common.KeyW),
		Back:    keyboard.Button(common.KeyS),
		Left:    keyboard.Button(common.KeyA),
		Right:   keyboard.Button(common.KeyD),
		Down:    keyboard.Button(common.KeyQ),
		Up:      keyboard.Button(common.KeyE),
		Reset:   keyboard.Button(common.KeyB),
		Boost:   keyboard.Button(common.KeyLeftShift),
	})

	input.RegisterTouchFactory(TouchFactoryName, w.touchState)
	return w
}

func (w *emuWindow) TouchPressed(x, y int) bool {
	if tx, ty, ok := touch.WithinTopScreen(w.layout, x, y); ok {
		if w.phase != phaseIdle || w.cam == nil {
			return false
		}
		w.cam.Grab(tx, ty)
		w.phase = phaseCameraGrabbed
		return true
	}

	if !touch.WithinTouchscreen(w.layout, w.settings.Render3D, x, y) {
		return false
	}
	if w.phase == phaseCameraGrabbed {
		return false
	}

	nx, ny := touch.MapToTouchscreen(w.layout, w.settings.Render3D, x, y)
	w.touchState.Set(nx, ny)
	w.phase = phaseTouchActive
	return true
}

func (w *emuWindow) TouchMoved(x, y int) {
	switch w.phase {
	case phaseCameraGrabbed:
		if tx, ty, ok := touch.WithinTopScreen(w.layout, x, y); ok {
			w.cam.Drag(tx, ty)
		}
	case phaseTouchActive:
		if !touch.WithinTouchscreen(w.layout, w.settings.Render3D, x, y) {
			x, y = touch.ClipToTouchscreen(w.layout, w.settings.Render3D, x, y)
		}
		nx, ny := touch.MapToTouchscreen(w.layout, w.settings.Render3D, x, y)
		w.touchState.Set(nx, ny)
	}
}

func (w *emuWindow) TouchReleased() {
	switch w.phase {
	case phaseCameraGrabbed:
		w.cam.Release()
	case phaseTouchActive:
		w.touchState.Release()
	}
	w.phase = phaseIdle
}

func (w *emuWindow) ClipToTouchScreen(x, y int) (cx, cy int) {
	return touch.ClipToTouchscreen(w.layout, w.settings.Render3D, x, y)
}

func (w *emuWindow) UpdateCameraHack() {
	if w.cam == nil {
		return
	}
	view, ok := w.cam.Update()
	if !ok {
		// Singular world matrix; skip this tick rather than publish garbage.
		return
	}
	if w.renderer == nil {
		return
	}
	w.renderer.SetRenderHacks(renderer.RenderHacks{
		ViewMatrix: view,
		DisableFog: w.settings.DisableFog,
	})
}

func (w *emuWindow) UpdateLayout(width, height int, portrait bool) {
	s := w.settings

	var l layout.FramebufferLayout
	if s.CustomLayout {
		l = layout.CustomFrameLayout(width, height)
	} else {
		w.minWidth, w.minHeight = layout.MinimumSize(s.Layout, s.UprightScreen)
		width = max(width, w.minWidth)
		height = max(height, w.minHeight)

		// A portrait window only really makes sense with the portrait layout.
		option := s.Layout
		if portrait {
			option = settings.LayoutMobilePortrait
		}

		switch option {
		case settings.LayoutSingleScreen:
			l = layout.SingleFrameLayout(width, height, s.SwapScreen, s.UprightScreen)
		case settings.LayoutLargeScreen:
			l = layout.LargeFrameLayout(width, height, s.SwapScreen, s.UprightScreen)
		case settings.LayoutSideScreen:
			l = layout.SideFrameLayout(width, height, s.SwapScreen, s.UprightScreen)
		case settings.LayoutMobilePortrait:
			l = layout.MobilePortraitFrameLayout(width, height, s.SwapScreen)
		case settings.LayoutMobileLandscape:
			l = layout.MobileLandscapeFrameLayout(width, height, s.SwapScreen, 2.25)
		default:
			l = layout.DefaultFrameLayout(width, height, s.SwapScreen, s.UprightScreen)
		}
	}

	if s.Render3D == settings.StereoCardboardVR {
		l = layout.ApplyCardboard(l, s)
	}

	w.layout = l
	w.width = width
	w.height = height
}

func (w *emuWindow) Layout() layout.FramebufferLayout {
	return w.layout
}

func (w *emuWindow) MinClientAreaSize() (width, height int) {
	return w.minWidth, w.minHeight
}

func (w *emuWindow) Keyboard() *input.Keyboard {
	return w.keyboard
}

func (w *emuWindow) Camera() camera.Controller {
	return w.cam
}

func (w *emuWindow) SetRenderer(r renderer.Renderer) {
	w.renderer = r
}

func (w *emuWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *emuWindow) ProcessMessages() bool {
	return platformProcessMessages(w)
}

func (w *emuWindow) Close() error {
	input.UnregisterTouchFactory(TouchFactoryName)
	w.touchState.Close()
	return platformCloseWindow(w)
}
