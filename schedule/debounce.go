package schedule

import (
	"sync"
	"time"
)

// Edge selects which end of a burst of calls a Debouncer fires on.
type Edge int

const (
	// Trailing fires once, with the last value, after the wait window
	// passes with no further calls.
	Trailing Edge = iota
	// Leading fires on the first call of a burst and swallows the rest.
	Leading
	// LeadingTrailing fires on the first call and again after the burst if
	// more calls arrived inside the window.
	LeadingTrailing
)

// String returns the string representation of the edge.
func (e Edge) String() string {
	switch e {
	case Trailing:
		return "trailing"
	case Leading:
		return "leading"
	case LeadingTrailing:
		return "leading+trailing"
	default:
		return "unknown"
	}
}

func (e Edge) leading() bool  { return e == Leading || e == LeadingTrailing }
func (e Edge) trailing() bool { return e == Trailing || e == LeadingTrailing }

// Debouncer coalesces bursts of calls. Every call restarts the wait window.
type Debouncer[T any] struct {
	mu    sync.Mutex
	clock Clock
	wait  time.Duration
	edge  Edge
	fn    func(T)

	timer Timer
	gen   uint64
	owed  bool
	last  T
}

// NewDebouncer creates a debouncer that calls fn according to edge. A nil
// clock means WallClock.
func NewDebouncer[T any](clock Clock, wait time.Duration, edge Edge, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{
		clock: orDefault(clock),
		wait:  wait,
		edge:  edge,
		fn:    fn,
	}
}

// Edge returns the firing policy.
func (d *Debouncer[T]) Edge() Edge {
	return d.edge
}

// Call records v and fires or defers fn according to the edge policy.
func (d *Debouncer[T]) Call(v T) {
	d.mu.Lock()

	fireNow := d.timer == nil && d.edge.leading()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.last = v
	if !fireNow {
		d.owed = true
	}

	d.gen++
	gen := d.gen
	d.timer = d.clock.AfterFunc(d.wait, func() { d.expire(gen) })
	d.mu.Unlock()

	if fireNow {
		d.fn(v)
	}
}

// Pending reports whether a wait window is open.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Cancel closes the window and drops any owed trailing call.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	d.owed = false
}

func (d *Debouncer[T]) expire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	fire := d.owed && d.edge.trailing()
	d.owed = false
	v := d.last
	d.mu.Unlock()

	if fire {
		d.fn(v)
	}
}
