package shell

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/Carmen-Shannon/duo-go/frontend/camera"
	"github.com/Carmen-Shannon/duo-go/frontend/input"
	"github.com/Carmen-Shannon/duo-go/frontend/layout"
	"github.com/Carmen-Shannon/duo-go/frontend/renderer"
	"github.com/Carmen-Shannon/duo-go/frontend/window"
	"github.com/cogentcore/webgpu/wgpu"
)

// stubWindow pumps a fixed number of frames and counts camera updates.
type stubWindow struct {
	framesLeft    int64
	cameraUpdates int64
}

var _ window.Window = &stubWindow{}

func (w *stubWindow) TouchPressed(x, y int) bool                  { return false }
func (w *stubWindow) TouchMoved(x, y int)                         {}
func (w *stubWindow) TouchReleased()                              {}
func (w *stubWindow) ClipToTouchScreen(x, y int) (int, int)       { return x, y }
func (w *stubWindow) UpdateLayout(width, height int, portrait bool) {}
func (w *stubWindow) Layout() layout.FramebufferLayout            { return layout.FramebufferLayout{} }
func (w *stubWindow) MinClientAreaSize() (int, int)               { return 0, 0 }
func (w *stubWindow) Keyboard() *input.Keyboard                   { return nil }
func (w *stubWindow) Camera() camera.Controller                   { return nil }
func (w *stubWindow) SetRenderer(r renderer.Renderer)             {}
func (w *stubWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor  { return nil }
func (w *stubWindow) Close() error                                { return nil }

func (w *stubWindow) UpdateCameraHack() {
	atomic.AddInt64(&w.cameraUpdates, 1)
}

func (w *stubWindow) ProcessMessages() bool {
	return atomic.AddInt64(&w.framesLeft, -1) >= 0
}

// stubFrameRenderer counts frame lifecycle calls.
type stubFrameRenderer struct {
	begins, ends, presents int64
	hacks                  renderer.RenderHacks
}

func (r *stubFrameRenderer) SetRenderHacks(h renderer.RenderHacks) { r.hacks = h }
func (r *stubFrameRenderer) RenderHacks() renderer.RenderHacks     { return r.hacks }
func (r *stubFrameRenderer) ConfigureSurface(width, height int)    {}
func (r *stubFrameRenderer) EndFrame()                             { atomic.AddInt64(&r.ends, 1) }
func (r *stubFrameRenderer) Present()                              { atomic.AddInt64(&r.presents, 1) }

func (r *stubFrameRenderer) BeginFrame() error {
	atomic.AddInt64(&r.begins, 1)
	return nil
}

func TestRunDrivesFrameLoop(t *testing.T) {
	w := &stubWindow{framesLeft: 5}
	r := &stubFrameRenderer{}

	s := NewShell(w, r)
	s.Run()

	if w.cameraUpdates != 5 {
		t.Fatalf("camera updates: got %d, want 5", w.cameraUpdates)
	}
	if r.begins != 5 || r.ends != 5 || r.presents != 5 {
		t.Fatalf("frame calls: got %d/%d/%d, want 5/5/5", r.begins, r.ends, r.presents)
	}
}

func TestStopEndsRun(t *testing.T) {
	w := &stubWindow{framesLeft: 1 << 30}
	r := &stubFrameRenderer{}

	s := NewShell(w, r)
	done := make(chan struct{})
	go func() {
		s.Run()
		close(done)
	}()

	s.Stop()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Stop")
	}

	// Stop is idempotent.
	s.Stop()
}

func TestTickCallbackReceivesSnapshots(t *testing.T) {
	sampler := input.NewSampler(2)
	k := input.NewKeyboard()
	k.KeyDown(87)
	sampler.AddButton("forward", k.Button(87))

	w := &stubWindow{framesLeft: 1 << 30}
	r := &stubFrameRenderer{}
	s := NewShell(w, r, WithSampler(sampler), WithTickRate(1000))

	got := make(chan input.Snapshot, 1)
	s.SetTickCallback(func(snap input.Snapshot) {
		select {
		case got <- snap:
		default:
		}
	})

	done := make(chan struct{})
	go func() {
		s.Run()
		close(done)
	}()

	select {
	case snap := <-got:
		if !snap.Buttons["forward"] {
			t.Error("held button missing from snapshot")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no snapshot delivered")
	}

	s.Stop()
	<-done
}
