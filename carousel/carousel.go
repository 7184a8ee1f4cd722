// Package carousel implements the slide carousel engine: a position within a
// fixed sequence of slides under a wrap or clamp boundary policy, a visible
// window sized from the viewport width, and optional auto-advance.
//
// The engine never fails. Out-of-range input is normalised by the boundary
// policy, empty sequences turn navigation into no-ops, and every method is
// safe to call on a nil *Carousel, which is what Mount returns when the host
// has no container for the selector.
package carousel

import (
	"sync"
	"time"

	"orthoslide/log"
	"orthoslide/schedule"
)

// Page is the host surface carousels are mounted on.
type Page interface {
	// Lookup returns the container for selector, if the page has one.
	Lookup(selector string) (Container, bool)
	// ViewportWidth returns the current viewport width in pixels.
	ViewportWidth() int
}

// Container is a carousel's host element: an ordered run of slides.
type Container interface {
	SlideCount() int
	// ItemWidth is the rendered width of one slide, in pixels.
	ItemWidth() int
}

// Options configures a carousel.
type Options struct {
	// Policy is the boundary policy. The zero value is Wrap.
	Policy BoundaryPolicy
	// VisibleCount maps viewport width to slides on screen. Nil means Single.
	VisibleCount VisibleCountFunc
	// AutoAdvance is the self-advance cadence. Zero disables it.
	AutoAdvance time.Duration
	// Gap is the spacing between slides, used only for the track offset.
	Gap int
	// Clock drives auto-advance. Nil means schedule.WallClock.
	Clock schedule.Clock
	// OnChange receives the new frame after every position or window change.
	// It is called without the carousel's lock held.
	OnChange func(Frame)
}

// Frame is what the rendering layer needs after a change.
type Frame struct {
	Index        int
	VisibleCount int
	SlideCount   int
	// Offset is the track translation in pixels, zero or negative.
	Offset       int
	PrevDisabled bool
	NextDisabled bool
	// WindowStart and WindowEnd bound the visible slides, end exclusive.
	WindowStart int
	WindowEnd   int
}

// Carousel is one mounted carousel instance. Its state is owned exclusively
// by the instance.
type Carousel struct {
	mu sync.Mutex

	name      string
	policy    BoundaryPolicy
	visibleFn VisibleCountFunc
	gap       int
	onChange  func(Frame)

	slides    int
	itemWidth int
	visible   int
	index     int

	ticker *schedule.Ticker
}

// New creates a carousel over slideCount slides of itemWidth pixels, sized for
// viewportWidth. If opts.AutoAdvance is set, auto-advance starts immediately.
func New(slideCount, itemWidth, viewportWidth int, opts Options) *Carousel {
	if slideCount < 0 {
		slideCount = 0
	}
	visibleFn := opts.VisibleCount
	if visibleFn == nil {
		visibleFn = Single
	}

	c := &Carousel{
		policy:    opts.Policy,
		visibleFn: visibleFn,
		gap:       opts.Gap,
		onChange:  opts.OnChange,
		slides:    slideCount,
		itemWidth: itemWidth,
		visible:   atLeastOne(visibleFn(viewportWidth)),
	}

	if opts.AutoAdvance > 0 {
		c.ticker = schedule.NewTicker(opts.Clock, opts.AutoAdvance, c.tick)
		if slideCount > 0 {
			c.ticker.Start()
		}
	}
	return c
}

// Mount looks up selector on the page and creates a carousel for it. When
// the page or container is missing it declines to activate and returns nil.
func Mount(p Page, selector string, opts Options) (*Carousel, bool) {
	if p == nil {
		log.InfoLog.Printf("carousel %s: no page, not mounting", selector)
		return nil, false
	}
	container, ok := p.Lookup(selector)
	if !ok || container == nil {
		log.InfoLog.Printf("carousel %s: container not found, not mounting", selector)
		return nil, false
	}

	c := New(container.SlideCount(), container.ItemWidth(), p.ViewportWidth(), opts)
	c.name = selector
	log.CarouselTrace(selector, "mounted: slides=%d policy=%s visible=%d auto=%v",
		c.slides, c.policy, c.visible, opts.AutoAdvance)
	return c, true
}

// Name returns the selector the carousel was mounted under.
func (c *Carousel) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

// Policy returns the boundary policy.
func (c *Carousel) Policy() BoundaryPolicy {
	if c == nil {
		return Wrap
	}
	return c.policy
}

// Next moves one position forward. Under Clamp this is a no-op at the last
// position; under Wrap the last position moves to the first.
func (c *Carousel) Next() {
	c.move(func(i int) int { return i + 1 }, true)
}

// Previous moves one position back, symmetric to Next.
func (c *Carousel) Previous() {
	c.move(func(i int) int { return i - 1 }, true)
}

// GoTo jumps to index, normalised by the boundary policy.
func (c *Carousel) GoTo(index int) {
	c.move(func(int) int { return index }, true)
}

func (c *Carousel) tick() {
	c.move(func(i int) int { return i + 1 }, false)
}

// move applies step to the index. Manual moves restart auto-advance so the
// next automatic tick is a full interval after the interaction.
func (c *Carousel) move(step func(int) int, manual bool) {
	if c == nil {
		return
	}

	c.mu.Lock()
	from := c.index
	if c.slides > 1 {
		c.index = c.policy.normalize(step(c.index), c.slides, c.visible)
	}
	changed := c.index != from
	if manual && c.ticker != nil && c.ticker.Running() {
		c.ticker.Reset()
	}
	frame := c.frameLocked()
	notify := c.onChange
	c.mu.Unlock()

	if !changed {
		return
	}
	log.CarouselTrace(c.name, "index %d -> %d (manual=%v)", from, frame.Index, manual)
	if notify != nil {
		notify(frame)
	}
}

// RecomputeVisibleCount re-evaluates the visible count for a new viewport
// width. An index past the new last position moves to the last position
// under either policy, so the slide that was on screen stays in the window.
func (c *Carousel) RecomputeVisibleCount(viewportWidth int) {
	if c == nil {
		return
	}

	c.mu.Lock()
	visible := atLeastOne(c.visibleFn(viewportWidth))
	if visible == c.visible {
		c.mu.Unlock()
		return
	}
	c.visible = visible
	c.index = fit(c.index, c.slides, c.visible)
	frame := c.frameLocked()
	notify := c.onChange
	c.mu.Unlock()

	log.CarouselTrace(c.name, "visible=%d index=%d after resize to %d", frame.VisibleCount, frame.Index, viewportWidth)
	if notify != nil {
		notify(frame)
	}
}

// SetItemWidth updates the measured slide width, which only affects the
// track offset.
func (c *Carousel) SetItemWidth(width int) {
	if c == nil {
		return
	}

	c.mu.Lock()
	if width == c.itemWidth {
		c.mu.Unlock()
		return
	}
	c.itemWidth = width
	frame := c.frameLocked()
	notify := c.onChange
	c.mu.Unlock()

	if notify != nil {
		notify(frame)
	}
}

// StartAutoAdvance starts self-advancing. No-op without an interval or when
// already running.
func (c *Carousel) StartAutoAdvance() {
	if c == nil || c.ticker == nil {
		return
	}
	c.ticker.Start()
}

// StopAutoAdvance stops self-advancing. Safe to call when already stopped.
func (c *Carousel) StopAutoAdvance() {
	if c == nil || c.ticker == nil {
		return
	}
	c.ticker.Stop()
}

// ResetAutoAdvance stops then restarts self-advancing.
func (c *Carousel) ResetAutoAdvance() {
	if c == nil || c.ticker == nil {
		return
	}
	c.ticker.Reset()
}

// AutoAdvancing reports whether a self-advance timer is armed.
func (c *Carousel) AutoAdvancing() bool {
	if c == nil || c.ticker == nil {
		return false
	}
	return c.ticker.Running()
}

// AutoAdvanceInterval returns the configured cadence, zero if none.
func (c *Carousel) AutoAdvanceInterval() time.Duration {
	if c == nil || c.ticker == nil {
		return 0
	}
	return c.ticker.Interval()
}

// Index returns the current position.
func (c *Carousel) Index() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// VisibleCount returns the number of slides on screen.
func (c *Carousel) VisibleCount() int {
	if c == nil {
		return 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

// SlideCount returns the length of the sequence.
func (c *Carousel) SlideCount() int {
	if c == nil {
		return 0
	}
	return c.slides
}

// MaxIndex returns the largest valid position for the current window.
func (c *Carousel) MaxIndex() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return positions(c.slides, c.visible) - 1
}

// Frame returns the current render state.
func (c *Carousel) Frame() Frame {
	if c == nil {
		return Frame{VisibleCount: 1, PrevDisabled: true, NextDisabled: true}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frameLocked()
}

func (c *Carousel) frameLocked() Frame {
	f := Frame{
		Index:        c.index,
		VisibleCount: c.visible,
		SlideCount:   c.slides,
		Offset:       -c.index * (c.itemWidth + c.gap),
		WindowStart:  c.index,
		WindowEnd:    min(c.index+c.visible, c.slides),
	}

	switch c.policy {
	case Clamp:
		f.PrevDisabled = c.index == 0
		f.NextDisabled = c.index >= c.slides-c.visible
	default:
		stuck := positions(c.slides, c.visible) <= 1
		f.PrevDisabled = stuck
		f.NextDisabled = stuck
	}
	return f
}
