package engine

import "sync"

// ManualScheduler is a FrameScheduler stepped explicitly, for tests and headless runs
type ManualScheduler struct {
	mu      sync.Mutex
	pending func()
}

// NewManualScheduler creates an idle scheduler
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// RequestFrame replaces the pending callback
func (m *ManualScheduler) RequestFrame(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = fn
}

// Pending reports whether a callback is waiting
func (m *ManualScheduler) Pending() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending != nil
}

// Step runs the pending callback, false if none was registered
func (m *ManualScheduler) Step() bool {
	m.mu.Lock()
	fn := m.pending
	m.pending = nil
	m.mu.Unlock()

	if fn == nil {
		return false
	}
	fn()
	return true
}

// StepN runs up to n callbacks and returns how many ran
func (m *ManualScheduler) StepN(n int) int {
	for i := 0; i < n; i++ {
		if !m.Step() {
			return i
		}
	}
	return n
}
