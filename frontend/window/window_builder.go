package window

import (
	"github.com/Carmen-Shannon/duo-go/frontend/camera"
)

// WindowBuilderOption is a functional option for configuring a Window.
// Use the With* functions to create options.
type WindowBuilderOption func(w *emuWindow)

// WithTitle sets the window title displayed in the title bar.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *emuWindow) {
		w.title = title
	}
}

// WithSize sets the initial window dimensions. Dimensions below the active
// layout's minimum client area are raised to it.
//
// Parameters:
//   - width: initial width in pixels
//   - height: initial height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSize(width, height int) WindowBuilderOption {
	return func(w *emuWindow) {
		w.width = max(width, w.minWidth)
		w.height = max(height, w.minHeight)
	}
}

// WithCameraController replaces the default free-camera controller. Pass nil
// to disable the free camera entirely; top-screen presses are then rejected
// instead of grabbing.
//
// Parameters:
//   - c: the controller to use, or nil
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithCameraController(c camera.Controller) WindowBuilderOption {
	return func(w *emuWindow) {
		w.cam = c
	}
}
