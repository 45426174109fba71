package input

import (
	"testing"

	"github.com/Carmen-Shannon/duo-go/common"
)

type stubTouchDevice struct {
	x, y    float64
	pressed bool
}

func (d *stubTouchDevice) GetStatus() (float64, float64, bool) {
	return d.x, d.y, d.pressed
}

type stubTouchFactory struct {
	device *stubTouchDevice
}

func (f *stubTouchFactory) Create() TouchDevice {
	return f.device
}

func TestTouchFactoryRegistration(t *testing.T) {
	factory := &stubTouchFactory{device: &stubTouchDevice{x: 0.5, y: 0.25, pressed: true}}
	RegisterTouchFactory("test_factory", factory)
	defer UnregisterTouchFactory("test_factory")

	d, err := CreateTouchDevice("test_factory")
	if err != nil {
		t.Fatalf("CreateTouchDevice: %v", err)
	}
	if x, y, pressed := d.GetStatus(); !pressed || x != 0.5 || y != 0.25 {
		t.Fatalf("device: got (%v, %v, %v), want (0.5, 0.25, true)", x, y, pressed)
	}
}

func TestCreateTouchDeviceUnknownName(t *testing.T) {
	if _, err := CreateTouchDevice("no_such_factory"); err == nil {
		t.Fatal("expected an error for an unregistered factory name")
	}
}

func TestUnregisterTouchFactory(t *testing.T) {
	RegisterTouchFactory("transient", &stubTouchFactory{device: &stubTouchDevice{}})
	UnregisterTouchFactory("transient")

	if _, err := CreateTouchDevice("transient"); err == nil {
		t.Fatal("factory still resolvable after unregister")
	}
}

func TestKeyboardButton(t *testing.T) {
	k := NewKeyboard()
	w := k.Button(common.KeyW)

	if w.GetStatus() {
		t.Fatal("fresh keyboard reports a held key")
	}

	k.KeyDown(common.KeyW)
	if !w.GetStatus() {
		t.Fatal("held key not reported")
	}

	k.KeyUp(common.KeyW)
	if w.GetStatus() {
		t.Fatal("released key still reported held")
	}
}

func TestKeyboardReleaseAll(t *testing.T) {
	k := NewKeyboard()
	w := k.Button(common.KeyW)
	shift := k.Button(common.KeyLeftShift)

	k.KeyDown(common.KeyW)
	k.KeyDown(common.KeyLeftShift)
	k.ReleaseAll()

	if w.GetStatus() || shift.GetStatus() {
		t.Fatal("keys survive ReleaseAll")
	}
}

func TestSamplerSnapshot(t *testing.T) {
	s := NewSampler(4)

	k := NewKeyboard()
	k.KeyDown(common.KeyW)
	s.AddButton("forward", k.Button(common.KeyW))
	s.AddButton("back", k.Button(common.KeyS))
	s.AddTouch("touch", &stubTouchDevice{x: 0.5, y: 0.5, pressed: true})

	snap := s.Sample()
	if !snap.Buttons["forward"] {
		t.Fatal("held button sampled as released")
	}
	if snap.Buttons["back"] {
		t.Fatal("released button sampled as held")
	}
	sample, ok := snap.Touch["touch"]
	if !ok || !sample.Pressed || sample.X != 0.5 || sample.Y != 0.5 {
		t.Fatalf("touch sample: got %+v", sample)
	}
}

func TestSamplerRemove(t *testing.T) {
	s := NewSampler(1)
	s.AddButton("b", &stubTouchButton{})
	s.Remove("b")

	snap := s.Sample()
	if _, ok := snap.Buttons["b"]; ok {
		t.Fatal("removed device still sampled")
	}
}

type stubTouchButton struct{}

func (b *stubTouchButton) GetStatus() bool { return true }
