// Package touch owns the emulated touch-panel state and the pure coordinate
// mapping from framebuffer pixels into the panel's normalized space.
package touch

import (
	"sync"

	"github.com/Carmen-Shannon/duo-go/frontend/input"
)

// State is the current touch-panel contact, written by the window's pointer
// event path and read by pollable devices from whatever thread samples
// input. All access goes through the internal mutex; each update is a single
// atomic struct write under the lock.
type State struct {
	mu      sync.Mutex
	pressed bool
	x       float64
	y       float64
	closed  bool
}

// Compile-time interface compliance check
var _ input.TouchFactory = &State{}

// NewState creates an idle touch state.
//
// Returns:
//   - *State: the newly created state
func NewState() *State {
	return &State{}
}

// Set records a contact at the given normalized position and marks the panel
// pressed.
//
// Parameters:
//   - x: normalized horizontal position in [0, 1]
//   - y: normalized vertical position in [0, 1]
func (s *State) Set(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.x = x
	s.y = y
	s.pressed = true
}

// Release clears the contact and zeroes the position.
func (s *State) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pressed = false
	s.x = 0
	s.y = 0
}

// Status returns the current contact. Once the owning window has closed the
// state, Status degrades to the neutral (0, 0, false) reading instead of
// reporting stale input.
//
// Returns:
//   - x, y: normalized position, zero unless pressed
//   - pressed: whether the panel is currently pressed
func (s *State) Status() (x, y float64, pressed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, 0, false
	}
	return s.x, s.y, s.pressed
}

// Close marks the state dead. Devices created from it keep a reference but
// every later read returns the neutral result; there is no dangling-owner
// hazard because the devices never outlive the state's memory, only its
// validity.
func (s *State) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.pressed = false
	s.x = 0
	s.y = 0
}

// Create returns a pollable device bound to this state, satisfying
// input.TouchFactory so the state can be registered as a device source.
//
// Returns:
//   - input.TouchDevice: a device polling this state
func (s *State) Create() input.TouchDevice {
	return &device{state: s}
}

// device is a non-owning handle onto a State.
type device struct {
	state *State
}

func (d *device) GetStatus() (x, y float64, pressed bool) {
	return d.state.Status()
}
