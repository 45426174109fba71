package input

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// TouchSample is one touch-panel reading.
type TouchSample struct {
	X       float64
	Y       float64
	Pressed bool
}

// Snapshot is the result of sampling every registered device once. The core
// side consumes one snapshot per emulated frame instead of polling devices
// mid-frame, so a frame never observes a half-updated input set.
type Snapshot struct {
	Buttons map[string]bool
	Touch   map[string]TouchSample
}

// Sampler polls a named set of pollable devices once per call, fanning the
// polls out over a persistent worker pool. Workers are reused across frames;
// a WaitGroup provides the per-frame barrier since pool.Wait() blocks until
// workers idle-exit, which is unsuitable for frame-rate workloads.
type Sampler struct {
	mu      sync.Mutex
	buttons map[string]ButtonDevice
	touch   map[string]TouchDevice
	pool    worker.DynamicWorkerPool
}

// NewSampler creates a Sampler backed by a worker pool of the given size.
//
// Parameters:
//   - workers: number of pool workers (values < 1 are raised to 1)
//
// Returns:
//   - *Sampler: the newly created sampler
func NewSampler(workers int) *Sampler {
	if workers < 1 {
		workers = 1
	}
	return &Sampler{
		buttons: make(map[string]ButtonDevice),
		touch:   make(map[string]TouchDevice),
		pool:    worker.NewDynamicWorkerPool(workers, 256, time.Second),
	}
}

// AddButton registers a button device under a name, replacing any previous
// device with that name.
//
// Parameters:
//   - name: the snapshot key for this device
//   - d: the device to sample
func (s *Sampler) AddButton(name string, d ButtonDevice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buttons[name] = d
}

// AddTouch registers a touch device under a name, replacing any previous
// device with that name.
//
// Parameters:
//   - name: the snapshot key for this device
//   - d: the device to sample
func (s *Sampler) AddTouch(name string, d TouchDevice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch[name] = d
}

// Remove drops the device registered under a name, if any.
//
// Parameters:
//   - name: the snapshot key to remove
func (s *Sampler) Remove(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.buttons, name)
	delete(s.touch, name)
}

// Sample polls every registered device once and returns the combined
// snapshot. Individual polls run on the worker pool; Sample blocks until all
// of them finish.
//
// Returns:
//   - Snapshot: one reading per registered device
func (s *Sampler) Sample() Snapshot {
	s.mu.Lock()
	snap := Snapshot{
		Buttons: make(map[string]bool, len(s.buttons)),
		Touch:   make(map[string]TouchSample, len(s.touch)),
	}

	var wg sync.WaitGroup
	var resultMu sync.Mutex
	taskID := 0

	for name, d := range s.buttons {
		wg.Add(1)
		nameCap, dCap := name, d
		s.pool.SubmitTask(worker.Task{
			ID: taskID,
			Do: func() (any, error) {
				defer wg.Done()
				held := dCap.GetStatus()
				resultMu.Lock()
				snap.Buttons[nameCap] = held
				resultMu.Unlock()
				return nil, nil
			},
		})
		taskID++
	}

	for name, d := range s.touch {
		wg.Add(1)
		nameCap, dCap := name, d
		s.pool.SubmitTask(worker.Task{
			ID: taskID,
			Do: func() (any, error) {
				defer wg.Done()
				x, y, pressed := dCap.GetStatus()
				resultMu.Lock()
				snap.Touch[nameCap] = TouchSample{X: x, Y: y, Pressed: pressed}
				resultMu.Unlock()
				return nil, nil
			},
		})
		taskID++
	}
	s.mu.Unlock()

	wg.Wait()
	return snap
}
