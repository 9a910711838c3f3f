package loop

import (
	"sync"
	"time"
)

// LoopHandle identifies one scheduled recurring tick.
// The zero handle means no loop is scheduled.
type LoopHandle uint64

// Scheduler arms and disarms recurring ticks on behalf of the controller.
// Implementations deliver ticks back by calling Controller.Tick with the
// handle they were started with.
type Scheduler interface {
	// Start begins delivering ticks tagged with h every interval.
	Start(h LoopHandle, every time.Duration)

	// Stop stops ticks tagged with h. Stopping an unknown or already
	// stopped handle is a no-op.
	Stop(h LoopHandle)
}

// ManualScheduler is a Scheduler whose ticks are fired explicitly.
// It is used for headless frame export and in tests.
type ManualScheduler struct {
	mu     sync.Mutex
	live   map[LoopHandle]time.Duration
	starts int
	stops  int
}

// NewManualScheduler creates an empty manual scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{live: make(map[LoopHandle]time.Duration)}
}

// Start records h as live.
func (m *ManualScheduler) Start(h LoopHandle, every time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.live[h] = every
	m.starts++
}

// Stop forgets h if it is live.
func (m *ManualScheduler) Stop(h LoopHandle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.live[h]; ok {
		delete(m.live, h)
		m.stops++
	}
}

// Live returns the currently live handles.
func (m *ManualScheduler) Live() []LoopHandle {
	m.mu.Lock()
	defer m.mu.Unlock()
	handles := make([]LoopHandle, 0, len(m.live))
	for h := range m.live {
		handles = append(handles, h)
	}
	return handles
}

// Counts returns how many times a loop was started and stopped.
func (m *ManualScheduler) Counts() (starts, stops int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.starts, m.stops
}

// Fire delivers one tick to c for every live handle.
// It returns the number of ticks delivered.
func (m *ManualScheduler) Fire(c *Controller) int {
	fired := 0
	for _, h := range m.Live() {
		if c.Tick(h) {
			fired++
		}
	}
	return fired
}
