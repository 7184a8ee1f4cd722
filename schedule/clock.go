// Package schedule provides cancellable timer-driven tasks: a repeating
// ticker with idempotent start/stop and a debouncer for bursty events.
package schedule

import "time"

// Timer is a pending callback that can be cancelled.
type Timer interface {
	// Stop prevents the callback from firing. It returns false if the
	// callback already fired or was already stopped.
	Stop() bool
}

// Clock schedules callbacks. Hosts that run a single event loop supply a
// Clock whose callbacks are delivered on that loop.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// WallClock runs callbacks on their own goroutine via time.AfterFunc.
type WallClock struct{}

func (WallClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// orDefault returns c, or the wall clock when c is nil.
func orDefault(c Clock) Clock {
	if c == nil {
		return WallClock{}
	}
	return c
}
