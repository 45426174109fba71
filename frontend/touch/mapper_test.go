package touch

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/duo-go/frontend/layout"
	"github.com/Carmen-Shannon/duo-go/frontend/settings"
)

// defaultRotatedLayout is the stock stacked layout at native size: top screen
// {0,0,400,240}, bottom screen {40,240,360,480}.
func defaultRotatedLayout() layout.FramebufferLayout {
	return layout.DefaultFrameLayout(400, 480, false, false)
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestWithinTopScreen(t *testing.T) {
	l := defaultRotatedLayout()

	offX, offY, ok := WithinTopScreen(l, 10, 5)
	if !ok {
		t.Fatal("pixel (10, 5) should be on the top screen")
	}
	if offX != 10 || offY != 5 {
		t.Fatalf("offsets: got (%v, %v), want (10, 5)", offX, offY)
	}

	if _, _, ok := WithinTopScreen(l, 200, 240); ok {
		t.Fatal("pixel below the top screen accepted")
	}
	if _, _, ok := WithinTopScreen(l, 400, 100); ok {
		t.Fatal("pixel right of the top screen accepted")
	}
}

func TestWithinTouchscreenFlat(t *testing.T) {
	l := defaultRotatedLayout()

	tests := []struct {
		x, y int
		want bool
	}{
		{200, 360, true},
		{40, 240, true},
		{359, 479, true},
		{39, 360, false},  // left of the bottom screen
		{360, 360, false}, // right edge is exclusive
		{200, 100, false}, // on the top screen
		{200, 480, false}, // below the frame
	}
	for _, tc := range tests {
		if got := WithinTouchscreen(l, settings.StereoOff, tc.x, tc.y); got != tc.want {
			t.Errorf("WithinTouchscreen(%d, %d): got %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestMapToTouchscreenCenter(t *testing.T) {
	l := defaultRotatedLayout()

	nx, ny := MapToTouchscreen(l, settings.StereoOff, 200, 360)
	if !closeTo(nx, 0.5) || !closeTo(ny, 0.5) {
		t.Fatalf("center pixel: got (%v, %v), want (0.5, 0.5)", nx, ny)
	}
}

func TestMapToTouchscreenCorners(t *testing.T) {
	l := defaultRotatedLayout()

	nx, ny := MapToTouchscreen(l, settings.StereoOff, 40, 240)
	if nx != 0 || ny != 0 {
		t.Fatalf("top-left pixel: got (%v, %v), want (0, 0)", nx, ny)
	}

	nx, ny = MapToTouchscreen(l, settings.StereoOff, 359, 479)
	if nx >= 1 || ny >= 1 || !closeTo(nx, 319.0/320) || !closeTo(ny, 239.0/240) {
		t.Fatalf("last interior pixel: got (%v, %v)", nx, ny)
	}
}

func TestMapToTouchscreenUpright(t *testing.T) {
	l := defaultRotatedLayout()
	l.IsRotated = false

	// The center maps to the center either way.
	nx, ny := MapToTouchscreen(l, settings.StereoOff, 200, 360)
	if !closeTo(nx, 0.5) || !closeTo(ny, 0.5) {
		t.Fatalf("center pixel: got (%v, %v), want (0.5, 0.5)", nx, ny)
	}

	// Off-center the axes swap and the horizontal result mirrors: a pixel a
	// quarter of the way across both axes lands at (0.75, 0.25).
	nx, ny = MapToTouchscreen(l, settings.StereoOff, 120, 300)
	if !closeTo(nx, 0.75) || !closeTo(ny, 0.25) {
		t.Fatalf("quarter pixel: got (%v, %v), want (0.75, 0.25)", nx, ny)
	}
}

// sideBySideLayout doubles the default layout into an 800-wide frame; the
// bottom screen rect stays flat and the stereo rules halve it per eye.
func sideBySideLayout() layout.FramebufferLayout {
	return layout.DefaultFrameLayout(800, 960, false, false)
}

func TestWithinTouchscreenSideBySide(t *testing.T) {
	l := sideBySideLayout()

	tests := []struct {
		x, y int
		want bool
	}{
		{200, 600, true},  // left eye
		{600, 600, true},  // right eye
		{40, 600, true},   // left-eye left edge
		{400, 600, false}, // between the eyes
		{30, 600, false},  // left of both eyes
		{760, 600, false}, // right of both eyes
		{200, 400, false}, // above the touch rows
	}
	for _, tc := range tests {
		if got := WithinTouchscreen(l, settings.StereoSideBySide, tc.x, tc.y); got != tc.want {
			t.Errorf("WithinTouchscreen(%d, %d): got %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestMapToTouchscreenSideBySideEyesAgree(t *testing.T) {
	l := sideBySideLayout()

	// A pixel in the right-eye copy maps exactly like its left-eye twin,
	// which sits half a frame to the left.
	for _, x := range []int{40, 120, 200, 359} {
		lx, ly := MapToTouchscreen(l, settings.StereoSideBySide, x, 600)
		rx, ry := MapToTouchscreen(l, settings.StereoSideBySide, x+l.Width/2, 600)
		if lx != rx || ly != ry {
			t.Fatalf("x=%d: left eye (%v, %v) != right eye (%v, %v)", x, lx, ly, rx, ry)
		}
	}

	nx, ny := MapToTouchscreen(l, settings.StereoSideBySide, 600, 720)
	if !closeTo(nx, 0.5) || !closeTo(ny, 0.5) {
		t.Fatalf("right-eye center: got (%v, %v), want (0.5, 0.5)", nx, ny)
	}
}

// cardboardLayout doubles the default layout and applies the per-eye shrink
// with a 10 pixel user shift.
func cardboardLayout() (layout.FramebufferLayout, *settings.Settings) {
	s := settings.Default()
	s.Render3D = settings.StereoCardboardVR
	s.CardboardXShift = 10
	flat := layout.DefaultFrameLayout(800, 960, false, false)
	return layout.ApplyCardboard(flat, s), s
}

func TestWithinTouchscreenCardboard(t *testing.T) {
	l, _ := cardboardLayout()

	tests := []struct {
		x, y int
		want bool
	}{
		{50, 600, true},   // left-eye left edge
		{369, 600, true},  // left-eye last column
		{430, 600, true},  // right-eye left edge
		{749, 600, true},  // right-eye last column
		{400, 600, false}, // between the eyes
		{49, 600, false},  // left of the left eye
		{750, 600, false}, // right of the right eye
	}
	for _, tc := range tests {
		if got := WithinTouchscreen(l, settings.StereoCardboardVR, tc.x, tc.y); got != tc.want {
			t.Errorf("WithinTouchscreen(%d, %d): got %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestMapToTouchscreenCardboardEyesAgree(t *testing.T) {
	l, _ := cardboardLayout()

	// The right-eye copy sits (width/2 - 2*shift) to the right of the
	// left-eye copy; unshifting must land right-eye pixels exactly on their
	// left-eye twins.
	shift := l.Width/2 - 2*l.Cardboard.UserXShift
	for _, x := range []int{50, 150, 250, 369} {
		lx, ly := MapToTouchscreen(l, settings.StereoCardboardVR, x, 600)
		rx, ry := MapToTouchscreen(l, settings.StereoCardboardVR, x+shift, 600)
		if lx != rx || ly != ry {
			t.Fatalf("x=%d: left eye (%v, %v) != right eye (%v, %v)", x, lx, ly, rx, ry)
		}
	}

	nx, _ := MapToTouchscreen(l, settings.StereoCardboardVR, 50, 600)
	if nx != 0 {
		t.Fatalf("left-eye left edge: got nx=%v, want 0", nx)
	}
}

func TestClipToTouchscreenFlat(t *testing.T) {
	l := defaultRotatedLayout()

	tests := []struct {
		x, y   int
		cx, cy int
	}{
		{0, 0, 40, 240},      // far top-left clamps to the near corner
		{500, 600, 359, 479}, // past the far corner
		{200, 360, 200, 360}, // in-region pixels pass through
		{200, 1000, 200, 479},
	}
	for _, tc := range tests {
		cx, cy := ClipToTouchscreen(l, settings.StereoOff, tc.x, tc.y)
		if cx != tc.cx || cy != tc.cy {
			t.Errorf("ClipToTouchscreen(%d, %d): got (%d, %d), want (%d, %d)",
				tc.x, tc.y, cx, cy, tc.cx, tc.cy)
		}
	}
}

func TestClipToTouchscreenSideBySide(t *testing.T) {
	l := sideBySideLayout()

	// A right-eye pixel is unshifted first, then clamped to the halved
	// horizontal bounds.
	cx, cy := ClipToTouchscreen(l, settings.StereoSideBySide, 790, 600)
	if cx != 359 || cy != 600 {
		t.Fatalf("got (%d, %d), want (359, 600)", cx, cy)
	}

	// A pixel in the dead zone between the eyes unshifts into the left
	// half-frame before clamping.
	cx, cy = ClipToTouchscreen(l, settings.StereoSideBySide, 420, 600)
	if cx != 40 || cy != 600 {
		t.Fatalf("got (%d, %d), want (40, 600)", cx, cy)
	}
}

func TestClippedPixelMapsInRange(t *testing.T) {
	l := defaultRotatedLayout()

	for _, p := range [][2]int{{-50, -50}, {1000, 1000}, {0, 479}, {399, 0}} {
		cx, cy := ClipToTouchscreen(l, settings.StereoOff, p[0], p[1])
		nx, ny := MapToTouchscreen(l, settings.StereoOff, cx, cy)
		if nx < 0 || nx >= 1 || ny < 0 || ny >= 1 {
			t.Errorf("clipped (%d, %d) maps to (%v, %v), outside [0, 1)", p[0], p[1], nx, ny)
		}
	}
}
