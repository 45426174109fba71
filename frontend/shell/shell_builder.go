package shell

import (
	"time"

	"github.com/Carmen-Shannon/duo-go/frontend/input"
)

// ShellOption is a functional option for configuring a Shell.
type ShellOption func(*shellImpl)

// WithTickRate sets the input sampling rate in ticks per second.
// Values <= 0 are treated as the default (60Hz).
//
// Parameters:
//   - tps: target ticks per second
//
// Returns:
//   - ShellOption: option function to apply
func WithTickRate(tps float64) ShellOption {
	return func(s *shellImpl) {
		if tps <= 0 {
			tps = 60.0
		}
		s.tickRate = time.Duration(float64(time.Second) / tps)
	}
}

// WithSampler attaches an input sampler; the window's touch device is added
// to it automatically under the touch factory's fixed name.
//
// Parameters:
//   - sampler: the sampler to drive each tick
//
// Returns:
//   - ShellOption: option function to apply
func WithSampler(sampler *input.Sampler) ShellOption {
	return func(s *shellImpl) {
		s.sampler = sampler
	}
}

// WithProfiling enables frame-rate and memory logging.
//
// Parameters:
//   - enabled: if true, a profiler is attached to the frame loop
//
// Returns:
//   - ShellOption: option function to apply
func WithProfiling(enabled bool) ShellOption {
	return func(s *shellImpl) {
		s.profilingEnabled = enabled
	}
}
