package renderer

import (
	"errors"

	"github.com/cogentcore/webgpu/wgpu"
)

// errFramePending is returned by BeginFrame when the previous frame's
// surface image has not been presented yet.
var errFramePending = errors.New("previous frame surface not yet presented")

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*wgpuRenderer)

// WithPresentMode selects how finished frames are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use
//
// Returns:
//   - RendererOption: option function to apply
func WithPresentMode(mode PresentMode) RendererOption {
	return func(r *wgpuRenderer) {
		switch mode {
		case PresentModeVSync:
			r.presentMode = wgpu.PresentModeFifo
		case PresentModeUncapped:
			fallthrough
		default:
			r.presentMode = wgpu.PresentModeImmediate
		}
	}
}

// WithClearColor sets the color the frame is cleared to before any drawing.
//
// Parameters:
//   - red, green, blue, alpha: color components in [0, 1]
//
// Returns:
//   - RendererOption: option function to apply
func WithClearColor(red, green, blue, alpha float64) RendererOption {
	return func(r *wgpuRenderer) {
		r.clearColor = wgpu.Color{R: red, G: green, B: blue, A: alpha}
	}
}
