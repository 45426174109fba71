// Package shell drives the frontend: it pumps the platform window, runs the
// once-per-frame camera update and renderer hand-off, and samples the
// pollable input devices for the emulated core at a fixed tick rate.
package shell

import (
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/duo-go/frontend/input"
	"github.com/Carmen-Shannon/duo-go/frontend/renderer"
	"github.com/Carmen-Shannon/duo-go/frontend/window"
)

// Shell owns the frontend loops.
type Shell interface {
	// Run blocks until the window closes or Stop is called. The frame loop
	// (event pump, camera update, render) runs on the calling goroutine,
	// which must be the OS thread the window was created on; input sampling
	// runs on its own goroutine at the configured tick rate.
	Run()

	// Stop asks Run to return. Safe to call more than once and from any
	// goroutine.
	Stop()

	// SetTickCallback registers the function receiving each input snapshot.
	// The core side consumes snapshots here, one per emulated frame.
	//
	// Parameters:
	//   - callback: function to call with each snapshot (or nil to disable)
	SetTickCallback(callback func(input.Snapshot))
}

type shellImpl struct {
	window   window.Window
	renderer renderer.Renderer
	sampler  *input.Sampler

	tickRate     time.Duration
	tickCallback func(input.Snapshot)

	profiler         *Profiler
	profilingEnabled bool

	quitChannel chan struct{}
	quitOnce    sync.Once
	wg          sync.WaitGroup
}

// Compile-time interface compliance check
var _ Shell = &shellImpl{}

// NewShell creates a Shell around an already-created window and renderer.
// The window's touch state is sampled under the touch factory's fixed name
// when a sampler worker count is configured.
//
// Parameters:
//   - w: the frontend window (must not be nil)
//   - r: the renderer driven each frame (must not be nil)
//   - options: functional options to configure the shell
//
// Returns:
//   - Shell: the newly created shell
func NewShell(w window.Window, r renderer.Renderer, options ...ShellOption) Shell {
	if w == nil {
		panic("shell: NewShell requires a non-nil Window")
	}
	if r == nil {
		panic("shell: NewShell requires a non-nil Renderer")
	}

	s := &shellImpl{
		window:      w,
		renderer:    r,
		tickRate:    time.Second / 60,
		quitChannel: make(chan struct{}),
	}
	for _, option := range options {
		option(s)
	}

	if s.sampler != nil {
		if d, err := input.CreateTouchDevice(window.TouchFactoryName); err == nil {
			s.sampler.AddTouch(window.TouchFactoryName, d)
		} else {
			log.Printf("shell: touch device unavailable: %v", err)
		}
	}
	if s.profilingEnabled {
		s.profiler = NewProfiler()
	}
	return s
}

func (s *shellImpl) SetTickCallback(callback func(input.Snapshot)) {
	s.tickCallback = callback
}

func (s *shellImpl) Stop() {
	s.quitOnce.Do(func() {
		close(s.quitChannel)
	})
}

func (s *shellImpl) Run() {
	if s.sampler != nil {
		s.wg.Add(1)
		go s.tickLoop()
	}

	for s.window.ProcessMessages() {
		select {
		case <-s.quitChannel:
		default:
			s.window.UpdateCameraHack()

			if err := s.renderer.BeginFrame(); err != nil {
				// Transient surface losses (resize mid-acquire, minimize)
				// resolve themselves; skip the frame.
				continue
			}
			s.renderer.EndFrame()
			s.renderer.Present()

			if s.profiler != nil {
				s.profiler.Tick()
			}
			continue
		}
		break
	}

	s.Stop()
	s.wg.Wait()
}

// tickLoop samples input at the configured tick rate until Stop.
func (s *shellImpl) tickLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.tickRate)
	defer ticker.Stop()

	for {
		select {
		case <-s.quitChannel:
			return
		case <-ticker.C:
			snap := s.sampler.Sample()
			if s.tickCallback != nil {
				s.tickCallback(snap)
			}
		}
	}
}
