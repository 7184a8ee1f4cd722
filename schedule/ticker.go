package schedule

import (
	"sync"
	"time"
)

// Ticker runs a task repeatedly at a fixed interval until stopped.
//
// Start, Stop and Reset may be called in any order and any number of times;
// at most one timer is armed at any moment. A timer that already fired but
// lost the race against Stop or Reset never runs the task.
type Ticker struct {
	mu       sync.Mutex
	clock    Clock
	interval time.Duration
	task     func()

	timer   Timer
	gen     uint64
	running bool
}

// NewTicker creates a stopped ticker. A nil clock means WallClock.
func NewTicker(clock Clock, interval time.Duration, task func()) *Ticker {
	return &Ticker{
		clock:    orDefault(clock),
		interval: interval,
		task:     task,
	}
}

// Interval returns the configured cadence.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Running reports whether a timer is armed.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Start arms the ticker. It is a no-op if the ticker is already running or
// has no usable interval or task.
func (t *Ticker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.startLocked()
}

// Stop cancels the armed timer. Stopping a stopped ticker is a no-op.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

// Reset stops then starts the ticker, so the next tick is a full interval
// from now.
func (t *Ticker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
	t.startLocked()
}

func (t *Ticker) startLocked() {
	if t.running || t.interval <= 0 || t.task == nil {
		return
	}
	t.running = true
	t.armLocked()
}

func (t *Ticker) stopLocked() {
	if !t.running {
		return
	}
	t.running = false
	t.gen++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

func (t *Ticker) armLocked() {
	t.gen++
	gen := t.gen
	t.timer = t.clock.AfterFunc(t.interval, func() { t.fire(gen) })
}

func (t *Ticker) fire(gen uint64) {
	t.mu.Lock()
	if !t.running || gen != t.gen {
		t.mu.Unlock()
		return
	}
	t.armLocked()
	task := t.task
	t.mu.Unlock()

	task()
}
