package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/enemy-drift/core"
)

// FrameScheduler runs a callback once before the next display refresh
// A callback must re-register itself to keep running
type FrameScheduler interface {
	RequestFrame(fn func())
}

// ClockScheduler is a FrameScheduler driven by a fixed-interval ticker
// Pending callbacks run on the scheduler goroutine, at most one per tick
type ClockScheduler struct {
	interval time.Duration

	mu      sync.Mutex
	pending func()

	// Tick counter for debugging and metrics
	tickCount atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewClockScheduler creates a scheduler firing every interval
func NewClockScheduler(interval time.Duration) *ClockScheduler {
	return &ClockScheduler{
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// RequestFrame replaces the pending callback
func (cs *ClockScheduler) RequestFrame(fn func()) {
	cs.mu.Lock()
	cs.pending = fn
	cs.mu.Unlock()
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		// Use core.Go for safe execution with centralized crash handling
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for an in-flight callback to finish
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
		if cs.running.CompareAndSwap(true, false) {
			cs.wg.Wait()
		}
	})
}

// Ticks returns the number of callbacks executed
func (cs *ClockScheduler) Ticks() uint64 {
	return cs.tickCount.Load()
}

func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	ticker := time.NewTicker(cs.interval)
	defer ticker.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-ticker.C:
			cs.fire()
		}
	}
}

// fire takes and runs the pending callback; a callback registered during the run waits for the next tick
func (cs *ClockScheduler) fire() {
	cs.mu.Lock()
	fn := cs.pending
	cs.pending = nil
	cs.mu.Unlock()

	if fn == nil {
		return
	}
	fn()
	cs.tickCount.Add(1)
}
