package touch

import (
	"github.com/Carmen-Shannon/duo-go/frontend/layout"
	"github.com/Carmen-Shannon/duo-go/frontend/settings"
)

// The functions in this file are stateless: they classify a framebuffer
// pixel against the active layout and convert accepted touch coordinates
// into the panel's [0,1]x[0,1] space. The stereo mode changes both the
// region shape (the bottom screen is drawn once, twice side by side, or
// twice with cardboard eye shifts) and the horizontal remapping rule.

// WithinTopScreen reports whether the pixel lies on the top screen. On a hit
// it also returns the pixel offsets relative to the screen's top-left
// corner; these feed the free-camera grab flow as raw drag coordinates and
// are deliberately not normalized.
//
// Parameters:
//   - l: the active framebuffer layout
//   - x, y: framebuffer pixel coordinates
//
// Returns:
//   - offX, offY: pixel offsets into the top screen, valid only on a hit
//   - ok: whether the pixel is within the top screen
func WithinTopScreen(l layout.FramebufferLayout, x, y int) (offX, offY float64, ok bool) {
	if !l.TopScreen.Contains(x, y) {
		return 0, 0, false
	}
	return float64(x - l.TopScreen.Left), float64(y - l.TopScreen.Top), true
}

// WithinTouchscreen reports whether the pixel lies on the touch (bottom)
// screen under the active stereo mode. Side-by-side halves the horizontal
// bounds and accepts either eye's copy; cardboard accepts the left-eye rect
// or the right-eye copy located by the cardboard sub-geometry.
//
// Parameters:
//   - l: the active framebuffer layout
//   - stereo: the active stereoscopic rendering mode
//   - x, y: framebuffer pixel coordinates
//
// Returns:
//   - bool: whether the pixel is within the touch region
func WithinTouchscreen(l layout.FramebufferLayout, stereo settings.StereoRenderOption, x, y int) bool {
	bs := l.BottomScreen
	if y < bs.Top || y >= bs.Bottom {
		return false
	}

	switch stereo {
	case settings.StereoSideBySide:
		half := l.Width / 2
		return (x >= bs.Left/2 && x < bs.Right/2) ||
			(x >= bs.Left/2+half && x < bs.Right/2+half)
	case settings.StereoCardboardVR:
		half := l.Width / 2
		rightEye := l.Cardboard.BottomScreenRightEye + half
		return (x >= bs.Left && x < bs.Right) ||
			(x >= rightEye && x < rightEye+bs.Width())
	default:
		return x >= bs.Left && x < bs.Right
	}
}

// unshiftStereo undoes the horizontal offset of a right-eye pixel so the
// remaining math can treat every coordinate as left-eye. Pixels already in
// the left half-frame pass through unchanged.
func unshiftStereo(l layout.FramebufferLayout, stereo settings.StereoRenderOption, x int) int {
	if x < l.Width/2 {
		return x
	}
	switch stereo {
	case settings.StereoSideBySide:
		return x - l.Width/2
	case settings.StereoCardboardVR:
		return x - (l.Width/2 - l.Cardboard.UserXShift*2)
	default:
		return x
	}
}

// ClipToTouchscreen projects a pixel that strayed outside the touch region
// (mid-drag, typically) back onto the nearest valid coordinate: the stereo
// offset is undone first, then both axes are clamped to the touch screen's
// bounds (halved horizontal bounds under side-by-side).
//
// Parameters:
//   - l: the active framebuffer layout
//   - stereo: the active stereoscopic rendering mode
//   - x, y: framebuffer pixel coordinates
//
// Returns:
//   - cx, cy: the nearest in-region pixel coordinates
func ClipToTouchscreen(l layout.FramebufferLayout, stereo settings.StereoRenderOption, x, y int) (cx, cy int) {
	x = unshiftStereo(l, stereo, x)

	bs := l.BottomScreen
	if stereo == settings.StereoSideBySide {
		x = max(x, bs.Left/2)
		x = min(x, bs.Right/2-1)
	} else {
		x = max(x, bs.Left)
		x = min(x, bs.Right-1)
	}

	y = max(y, bs.Top)
	y = min(y, bs.Bottom-1)

	return x, y
}

// MapToTouchscreen converts an accepted framebuffer pixel into normalized
// touch-panel coordinates. When the layout reports IsRotated == false the
// axes are swapped and the horizontal result mirrored, correcting for a
// panel mounted a quarter turn from the display. Given a prior containment
// check the result is in [0,1] on both axes by construction.
//
// Parameters:
//   - l: the active framebuffer layout
//   - stereo: the active stereoscopic rendering mode
//   - x, y: framebuffer pixel coordinates, already inside the touch region
//
// Returns:
//   - nx, ny: normalized touch-panel coordinates in [0, 1]
func MapToTouchscreen(l layout.FramebufferLayout, stereo settings.StereoRenderOption, x, y int) (nx, ny float64) {
	x = unshiftStereo(l, stereo, x)

	bs := l.BottomScreen
	if stereo == settings.StereoSideBySide {
		nx = float64(x-bs.Left/2) / float64(bs.Right/2-bs.Left/2)
	} else {
		nx = float64(x-bs.Left) / float64(bs.Right-bs.Left)
	}
	ny = float64(y-bs.Top) / float64(bs.Bottom-bs.Top)

	if !l.IsRotated {
		nx, ny = ny, nx
		nx = 1 - nx
	}

	return nx, ny
}
