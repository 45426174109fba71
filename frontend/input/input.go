// Package input defines the pollable input-device abstraction shared between
// the frontend window and the emulated core. Devices are created through
// named factories: a producer (the window, a keyboard backend) registers a
// factory under a fixed name, and consumers create devices from it without
// knowing who backs them.
package input

import (
	"fmt"
	"sync"
)

// ButtonDevice is a pollable digital input.
type ButtonDevice interface {
	// GetStatus returns whether the button is currently held.
	GetStatus() bool
}

// TouchDevice is a pollable touch-panel input. Coordinates are normalized to
// [0, 1] on both axes and are only meaningful while pressed is true.
type TouchDevice interface {
	// GetStatus returns the current touch position and pressed state.
	GetStatus() (x, y float64, pressed bool)
}

// TouchFactory creates TouchDevices bound to a producer's state.
type TouchFactory interface {
	// Create returns a new device polling the factory's backing state.
	Create() TouchDevice
}

// registry is a mutex-guarded name-to-factory map shared by the package-level
// registration functions.
type registry[F any] struct {
	mu        sync.Mutex
	factories map[string]F
}

func (r *registry[F]) register(name string, f F) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.factories == nil {
		r.factories = make(map[string]F)
	}
	r.factories[name] = f
}

func (r *registry[F]) unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.factories, name)
}

func (r *registry[F]) lookup(name string) (F, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.factories[name]
	return f, ok
}

var touchFactories registry[TouchFactory]

// RegisterTouchFactory registers a touch-device factory under the given name,
// replacing any previous registration.
//
// Parameters:
//   - name: the factory name consumers create devices by
//   - f: the factory to register
func RegisterTouchFactory(name string, f TouchFactory) {
	touchFactories.register(name, f)
}

// UnregisterTouchFactory removes the touch-device factory registered under
// the given name. Devices already created from it keep working (or degrade
// to a neutral result, depending on the factory's backing state).
//
// Parameters:
//   - name: the factory name to remove
func UnregisterTouchFactory(name string) {
	touchFactories.unregister(name)
}

// CreateTouchDevice creates a touch device from the factory registered under
// the given name.
//
// Parameters:
//   - name: the factory name to create from
//
// Returns:
//   - TouchDevice: the created device
//   - error: error if no factory is registered under the name
func CreateTouchDevice(name string) (TouchDevice, error) {
	f, ok := touchFactories.lookup(name)
	if !ok {
		return nil, fmt.Errorf("no touch factory registered under %q", name)
	}
	return f.Create(), nil
}
