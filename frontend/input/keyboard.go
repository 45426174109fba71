package input

import "sync"

// Keyboard tracks the held state of every key reported by the platform
// window and hands out ButtonDevices bound to individual key codes. The
// window's key callbacks write it from the event thread; devices may be
// polled from any thread.
type Keyboard struct {
	mu      sync.Mutex
	pressed map[uint32]bool
}

// NewKeyboard creates an empty keyboard state.
//
// Returns:
//   - *Keyboard: the newly created keyboard
func NewKeyboard() *Keyboard {
	return &Keyboard{pressed: make(map[uint32]bool)}
}

// KeyDown records a key press.
//
// Parameters:
//   - code: the platform virtual key code
func (k *Keyboard) KeyDown(code uint32) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.pressed[code] = true
}

// KeyUp records a key release.
//
// Parameters:
//   - code: the platform virtual key code
func (k *Keyboard) KeyUp(code uint32) {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.pressed, code)
}

// ReleaseAll clears every held key, for use when the window loses focus and
// release events can no longer be trusted to arrive.
func (k *Keyboard) ReleaseAll() {
	k.mu.Lock()
	defer k.mu.Unlock()
	clear(k.pressed)
}

// Button returns a ButtonDevice polling the held state of a single key.
//
// Parameters:
//   - code: the platform virtual key code to bind
//
// Returns:
//   - ButtonDevice: a device reporting whether the key is held
func (k *Keyboard) Button(code uint32) ButtonDevice {
	return &keyButton{keyboard: k, code: code}
}

type keyButton struct {
	keyboard *Keyboard
	code     uint32
}

func (b *keyButton) GetStatus() bool {
	b.keyboard.mu.Lock()
	defer b.keyboard.mu.Unlock()
	return b.keyboard.pressed[b.code]
}
