// Package layout computes where each emulated screen is placed within the
// rendered frame. A FramebufferLayout is a plain value consumed read-only by
// the touch mapper and the renderer; the constructors in this package build
// one from the window size and the active layout configuration.
package layout

import (
	"github.com/Carmen-Shannon/duo-go/frontend/settings"
)

// Native emulated screen dimensions in pixels.
const (
	TopScreenWidth     = 400
	TopScreenHeight    = 240
	BottomScreenWidth  = 320
	BottomScreenHeight = 240
)

// largeScreenScale is the size ratio of the large screen to the small screen
// in the LargeScreen and MobileLandscape layouts.
const largeScreenScale = 2.25

// Rect is a screen rectangle in framebuffer pixel coordinates. Right and
// Bottom are exclusive. A rect is non-degenerate (Right > Left and
// Bottom > Top) whenever its screen is shown by the active layout; hidden
// screens carry a zero rect, which Contains rejects for every pixel.
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Width returns the rectangle width in pixels.
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height returns the rectangle height in pixels.
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// Contains reports whether the pixel (x, y) lies within the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// Cardboard carries the stereo sub-geometry used only when the active stereo
// mode is CardboardVR. The left-eye screen rects live in FramebufferLayout
// directly; the fields here locate the right-eye copies within the right
// half-frame.
type Cardboard struct {
	// TopScreenRightEye is the left edge of the right-eye top screen,
	// relative to the start of the right half-frame.
	TopScreenRightEye int

	// BottomScreenRightEye is the left edge of the right-eye bottom screen,
	// relative to the start of the right half-frame.
	BottomScreenRightEye int

	// UserXShift is the user-configured horizontal eye shift in pixels. The
	// left eye is shifted right by this amount and the right eye left by the
	// same amount, so a right-eye pixel maps back to its left-eye twin by
	// subtracting (width/2 - 2*UserXShift).
	UserXShift int
}

// FramebufferLayout describes where the emulated screens sit within the
// final rendered image.
type FramebufferLayout struct {
	// Width and Height are the total frame dimensions in pixels.
	Width  int
	Height int

	// TopScreen and BottomScreen are the screen rectangles. Under CardboardVR
	// they are the left-eye rects.
	TopScreen    Rect
	BottomScreen Rect

	// IsRotated is true for the standard landscape layouts. Upright layouts
	// set it to false, which makes the touch mapper swap and mirror the
	// normalized axes to match the physically rotated panel.
	IsRotated bool

	// Cardboard is only meaningful when the CardboardVR stereo mode is
	// active; see ApplyCardboard.
	Cardboard Cardboard
}

// scaleToFit returns the largest integer dimensions with the aspect ratio
// nativeW:nativeH that fit within (width, height), and the centering offset.
func scaleToFit(width, height, nativeW, nativeH int) (w, h, offsetX, offsetY int) {
	if width*nativeH <= height*nativeW {
		w = width
		h = width * nativeH / nativeW
	} else {
		h = height
		w = height * nativeW / nativeH
	}
	offsetX = (width - w) / 2
	offsetY = (height - h) / 2
	return w, h, offsetX, offsetY
}

// DefaultFrameLayout stacks the top screen above the bottom screen, scaled to
// the largest 400x480 area that fits the frame. With swapped the bottom
// screen takes the upper slot. With upright the whole arrangement is rotated
// a quarter turn (screens side by side, each rotated) and IsRotated is false.
//
// Parameters:
//   - width: frame width in pixels
//   - height: frame height in pixels
//   - swapped: place the bottom screen in the primary (upper/left) slot
//   - upright: build the rotated variant for an upright-held device
//
// Returns:
//   - FramebufferLayout: the computed layout
func DefaultFrameLayout(width, height int, swapped, upright bool) FramebufferLayout {
	l := FramebufferLayout{Width: width, Height: height, IsRotated: !upright}

	if !upright {
		// Emulation area is 400 wide, two 240-tall screens stacked.
		ew, eh, ox, oy := scaleToFit(width, height, TopScreenWidth, TopScreenHeight+BottomScreenHeight)
		half := eh / 2

		upper := Rect{Left: ox, Top: oy, Right: ox + ew, Bottom: oy + half}
		// The bottom screen is narrower than the frame; center it.
		inset := ew * (TopScreenWidth - BottomScreenWidth) / (2 * TopScreenWidth)
		lower := Rect{Left: ox + inset, Top: oy + half, Right: ox + ew - inset, Bottom: oy + eh}

		if swapped {
			upper.Left += inset
			upper.Right -= inset
			lower.Left -= inset
			lower.Right += inset
			l.TopScreen, l.BottomScreen = lower, upper
		} else {
			l.TopScreen, l.BottomScreen = upper, lower
		}
		return l
	}

	// Upright: each screen is rotated a quarter turn, so the screens sit side
	// by side in a 480x400 emulation area, primary screen on the left.
	ew, eh, ox, oy := scaleToFit(width, height, TopScreenHeight+BottomScreenHeight, TopScreenWidth)
	half := ew / 2

	left := Rect{Left: ox, Top: oy, Right: ox + half, Bottom: oy + eh}
	inset := eh * (TopScreenWidth - BottomScreenWidth) / (2 * TopScreenWidth)
	right := Rect{Left: ox + half, Top: oy + inset, Right: ox + ew, Bottom: oy + eh - inset}

	if swapped {
		left.Top += inset
		left.Bottom -= inset
		right.Top -= inset
		right.Bottom += inset
		l.TopScreen, l.BottomScreen = right, left
	} else {
		l.TopScreen, l.BottomScreen = left, right
	}
	return l
}

// SingleFrameLayout shows one screen filling the frame. The hidden screen
// keeps a zero rect, which rejects all touch containment tests.
//
// Parameters:
//   - width: frame width in pixels
//   - height: frame height in pixels
//   - swapped: show the bottom screen instead of the top screen
//   - upright: rotate the shown screen for an upright-held device
//
// Returns:
//   - FramebufferLayout: the computed layout
func SingleFrameLayout(width, height int, swapped, upright bool) FramebufferLayout {
	l := FramebufferLayout{Width: width, Height: height, IsRotated: !upright}

	nativeW, nativeH := TopScreenWidth, TopScreenHeight
	if swapped {
		nativeW, nativeH = BottomScreenWidth, BottomScreenHeight
	}
	if upright {
		nativeW, nativeH = nativeH, nativeW
	}

	w, h, ox, oy := scaleToFit(width, height, nativeW, nativeH)
	shown := Rect{Left: ox, Top: oy, Right: ox + w, Bottom: oy + h}

	if swapped {
		l.BottomScreen = shown
	} else {
		l.TopScreen = shown
	}
	return l
}

// LargeFrameLayout shows a large primary screen with the secondary screen
// beside it at 1/2.25 scale, bottom-aligned.
//
// Parameters:
//   - width: frame width in pixels
//   - height: frame height in pixels
//   - swapped: make the bottom screen the large one
//   - upright: rotate both screens for an upright-held device
//
// Returns:
//   - FramebufferLayout: the computed layout
func LargeFrameLayout(width, height int, swapped, upright bool) FramebufferLayout {
	return largeFrameLayout(width, height, swapped, upright, largeScreenScale)
}

func largeFrameLayout(width, height int, swapped, upright bool, scale float64) FramebufferLayout {
	l := FramebufferLayout{Width: width, Height: height, IsRotated: !upright}

	largeW, largeH := TopScreenWidth, TopScreenHeight
	smallW, smallH := BottomScreenWidth, BottomScreenHeight
	if swapped {
		largeW, largeH, smallW, smallH = smallW, smallH, largeW, largeH
	}
	if upright {
		largeW, largeH = largeH, largeW
		smallW, smallH = smallH, smallW
	}

	// Native emulation area: large screen at full size, small screen beside
	// it shrunk by the scale factor, bottom-aligned.
	shrunkW := int(float64(smallW) / scale)
	shrunkH := int(float64(smallH) / scale)
	ew, eh, ox, oy := scaleToFit(width, height, largeW+shrunkW, largeH)

	// Everything below is proportional to the achieved scale.
	largePx := ew * largeW / (largeW + shrunkW)
	smallPxW := ew - largePx
	smallPxH := eh * shrunkH / largeH

	large := Rect{Left: ox, Top: oy, Right: ox + largePx, Bottom: oy + eh}
	small := Rect{Left: ox + largePx, Top: oy + eh - smallPxH, Right: ox + largePx + smallPxW, Bottom: oy + eh}

	if swapped {
		l.TopScreen, l.BottomScreen = small, large
	} else {
		l.TopScreen, l.BottomScreen = large, small
	}
	return l
}

// SideFrameLayout places the two screens side by side at equal height,
// primary screen on the left.
//
// Parameters:
//   - width: frame width in pixels
//   - height: frame height in pixels
//   - swapped: place the bottom screen on the left
//   - upright: rotate both screens for an upright-held device
//
// Returns:
//   - FramebufferLayout: the computed layout
func SideFrameLayout(width, height int, swapped, upright bool) FramebufferLayout {
	l := FramebufferLayout{Width: width, Height: height, IsRotated: !upright}

	topW, topH := TopScreenWidth, TopScreenHeight
	botW, botH := BottomScreenWidth, BottomScreenHeight
	if upright {
		topW, topH = topH, topW
		botW, botH = botH, botW
	}

	ew, eh, ox, oy := scaleToFit(width, height, topW+botW, max(topH, botH))
	firstPx := ew * topW / (topW + botW)

	first := Rect{Left: ox, Top: oy, Right: ox + firstPx, Bottom: oy + eh}
	second := Rect{Left: ox + firstPx, Top: oy, Right: ox + ew, Bottom: oy + eh}

	if swapped {
		l.TopScreen, l.BottomScreen = second, first
	} else {
		l.TopScreen, l.BottomScreen = first, second
	}
	return l
}

// MobilePortraitFrameLayout stacks both screens from the top of a
// portrait-oriented frame, each spanning as much width as its native aspect
// allows.
//
// Parameters:
//   - width: frame width in pixels
//   - height: frame height in pixels
//   - swapped: place the bottom screen in the upper slot
//
// Returns:
//   - FramebufferLayout: the computed layout
func MobilePortraitFrameLayout(width, height int, swapped bool) FramebufferLayout {
	l := FramebufferLayout{Width: width, Height: height, IsRotated: true}

	topH := width * TopScreenHeight / TopScreenWidth
	botW := width * BottomScreenWidth / TopScreenWidth
	botH := botW * BottomScreenHeight / BottomScreenWidth
	inset := (width - botW) / 2

	upper := Rect{Left: 0, Top: 0, Right: width, Bottom: topH}
	lower := Rect{Left: inset, Top: topH, Right: inset + botW, Bottom: topH + botH}

	if swapped {
		upper.Left += inset
		upper.Right -= inset
		lower.Left -= inset
		lower.Right += inset
		l.TopScreen, l.BottomScreen = lower, upper
	} else {
		l.TopScreen, l.BottomScreen = upper, lower
	}
	return l
}

// MobileLandscapeFrameLayout is the large-screen arrangement tuned for
// landscape mobile windows.
//
// Parameters:
//   - width: frame width in pixels
//   - height: frame height in pixels
//   - swapped: make the bottom screen the large one
//   - scale: size ratio of the large screen to the small screen
//
// Returns:
//   - FramebufferLayout: the computed layout
func MobileLandscapeFrameLayout(width, height int, swapped bool, scale float64) FramebufferLayout {
	return largeFrameLayout(width, height, swapped, false, scale)
}

// CustomFrameLayout stretches the top screen across the upper half of the
// frame and the bottom screen across the lower half, ignoring native aspect
// ratios.
//
// Parameters:
//   - width: frame width in pixels
//   - height: frame height in pixels
//
// Returns:
//   - FramebufferLayout: the computed layout
func CustomFrameLayout(width, height int) FramebufferLayout {
	half := height / 2
	return FramebufferLayout{
		Width:        width,
		Height:       height,
		IsRotated:    true,
		TopScreen:    Rect{Left: 0, Top: 0, Right: width, Bottom: half},
		BottomScreen: Rect{Left: 0, Top: half, Right: width, Bottom: height},
	}
}

// MinimumSize returns the smallest frame dimensions that keep every shown
// screen at native resolution for the given layout option.
//
// Parameters:
//   - option: the layout option to size for
//   - upright: whether the upright variant is in use
//
// Returns:
//   - width, height: minimum frame dimensions in pixels
func MinimumSize(option settings.LayoutOption, upright bool) (width, height int) {
	switch option {
	case settings.LayoutSingleScreen:
		width, height = TopScreenWidth, TopScreenHeight
	case settings.LayoutLargeScreen, settings.LayoutMobileLandscape:
		scaledBottom := float64(BottomScreenWidth) / largeScreenScale
		width = TopScreenWidth + int(scaledBottom)
		height = TopScreenHeight
	case settings.LayoutSideScreen:
		width, height = TopScreenWidth+BottomScreenWidth, TopScreenHeight
	case settings.LayoutMobilePortrait:
		width, height = TopScreenWidth, TopScreenHeight+BottomScreenHeight
	default:
		width, height = TopScreenWidth, TopScreenHeight+BottomScreenHeight
	}
	if upright {
		width, height = height, width
	}
	return width, height
}

// ApplyCardboard shrinks a layout into the per-eye arrangement used by the
// CardboardVR stereo mode. Each screen rect becomes its left-eye copy within
// the left half-frame, shifted right by the user X shift; the Cardboard
// sub-record locates the right-eye copies, shifted left by the same amount.
//
// Parameters:
//   - l: the flat layout to transform
//   - s: configuration supplying the cardboard shifts and screen size
//
// Returns:
//   - FramebufferLayout: the per-eye layout
func ApplyCardboard(l FramebufferLayout, s *settings.Settings) FramebufferLayout {
	out := l

	size := s.CardboardScreenSize
	if size <= 0 || size > 100 {
		size = 100
	}

	shrink := func(r Rect) Rect {
		// Halve horizontally into the left half-frame, then scale about the
		// half-frame center by the configured screen size.
		r = Rect{Left: r.Left / 2, Top: r.Top, Right: r.Right / 2, Bottom: r.Bottom}
		cx := (r.Left + r.Right) / 2
		cy := (r.Top + r.Bottom) / 2
		w := r.Width() * size / 100
		h := r.Height() * size / 100
		return Rect{
			Left:   cx - w/2,
			Top:    cy - h/2 + s.CardboardYShift,
			Right:  cx - w/2 + w,
			Bottom: cy - h/2 + h + s.CardboardYShift,
		}
	}

	top := shrink(l.TopScreen)
	bottom := shrink(l.BottomScreen)

	shift := s.CardboardXShift
	out.Cardboard = Cardboard{
		TopScreenRightEye:    top.Left - shift,
		BottomScreenRightEye: bottom.Left - shift,
		UserXShift:           shift,
	}

	top.Left += shift
	top.Right += shift
	bottom.Left += shift
	bottom.Right += shift
	out.TopScreen = top
	out.BottomScreen = bottom

	return out
}
