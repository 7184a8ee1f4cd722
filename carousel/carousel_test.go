package carousel

import (
	"fmt"
	"testing"
	"time"

	"orthoslide/testing/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixed(n int) VisibleCountFunc {
	return func(int) int { return n }
}

func TestClampScenario(t *testing.T) {
	c := New(6, 100, 1200, Options{Policy: Clamp, VisibleCount: fixed(3)})

	want := []int{1, 2, 3, 3}
	for i, w := range want {
		c.Next()
		assert.Equal(t, w, c.Index(), "after next #%d", i+1)
	}

	f := c.Frame()
	assert.False(t, f.PrevDisabled)
	assert.True(t, f.NextDisabled)
	assert.Equal(t, 3, f.WindowStart)
	assert.Equal(t, 6, f.WindowEnd)
}

func TestWrapScenario(t *testing.T) {
	c := New(4, 100, 1200, Options{Policy: Wrap})

	c.Previous()
	assert.Equal(t, 3, c.Index())

	c.Next()
	assert.Equal(t, 0, c.Index())
}

func TestWrapCyclicClosure(t *testing.T) {
	for n := 2; n <= 9; n++ {
		for start := 0; start < n; start++ {
			c := New(n, 100, 0, Options{Policy: Wrap})
			c.GoTo(start)
			for i := 0; i < n; i++ {
				c.Next()
			}
			assert.Equal(t, start, c.Index(), "n=%d start=%d", n, start)
		}
	}
}

func TestWindowedWrapClosure(t *testing.T) {
	for n := 2; n <= 9; n++ {
		for v := 1; v <= n; v++ {
			steps := n - v + 1
			for start := 0; start < steps; start++ {
				c := New(n, 100, 0, Options{Policy: Wrap, VisibleCount: fixed(v)})
				c.GoTo(start)
				for i := 0; i < steps; i++ {
					c.Next()
				}
				assert.Equal(t, start, c.Index(), "n=%d v=%d start=%d", n, v, start)
			}
		}
	}

	c := New(6, 100, 0, Options{Policy: Wrap, VisibleCount: fixed(3)})
	for i := 0; i < 6; i++ {
		c.Next()
	}
	assert.Equal(t, 2, c.Index(), "six steps over four positions")
}

func TestClampSaturates(t *testing.T) {
	for n := 0; n <= 8; n++ {
		for v := 1; v <= 4; v++ {
			t.Run(fmt.Sprintf("n=%d/v=%d", n, v), func(t *testing.T) {
				c := New(n, 100, 0, Options{Policy: Clamp, VisibleCount: fixed(v)})
				wantMax := n - v
				if wantMax < 0 {
					wantMax = 0
				}

				for i := 0; i < n+3; i++ {
					c.Next()
					assert.GreaterOrEqual(t, c.Index(), 0)
					assert.LessOrEqual(t, c.Index(), wantMax)
				}
				assert.Equal(t, wantMax, c.Index())
				assert.Equal(t, wantMax, c.MaxIndex())

				for i := 0; i < n+3; i++ {
					c.Previous()
				}
				assert.Equal(t, 0, c.Index())
			})
		}
	}
}

func TestPreviousInvertsNext(t *testing.T) {
	tests := []struct {
		name   string
		policy BoundaryPolicy
		n, v   int
	}{
		{"wrap single", Wrap, 5, 1},
		{"wrap windowed", Wrap, 6, 2},
		{"clamp", Clamp, 6, 3},
		{"clamp oversized window", Clamp, 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.n, 100, 0, Options{Policy: tt.policy, VisibleCount: fixed(tt.v)})
			for i := 0; i <= c.MaxIndex(); i++ {
				c.GoTo(i)
				atEnd := tt.policy == Clamp && i == c.MaxIndex()

				c.Next()
				c.Previous()
				if atEnd {
					// Next was a no-op at the boundary, Previous then steps back.
					assert.Equal(t, max(i-1, 0), c.Index())
				} else {
					assert.Equal(t, i, c.Index())
				}
			}
		})
	}
}

func TestGoToNormalises(t *testing.T) {
	tests := []struct {
		name   string
		policy BoundaryPolicy
		n, v   int
		target int
		want   int
	}{
		{"wrap past end", Wrap, 4, 1, 5, 1},
		{"wrap negative", Wrap, 4, 1, -1, 3},
		{"wrap far negative", Wrap, 4, 1, -9, 3},
		{"wrap windowed", Wrap, 5, 3, 3, 0},
		{"clamp past end", Clamp, 6, 3, 10, 3},
		{"clamp negative", Clamp, 6, 3, -4, 0},
		{"clamp in range", Clamp, 6, 3, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.n, 100, 0, Options{Policy: tt.policy, VisibleCount: fixed(tt.v)})
			c.GoTo(tt.target)
			assert.Equal(t, tt.want, c.Index())
		})
	}
}

func TestWindowedWrap(t *testing.T) {
	// Six testimonials, three on screen: positions 0..3, then back to 0.
	c := New(6, 100, 0, Options{Policy: Wrap, VisibleCount: fixed(3)})

	seen := []int{}
	for i := 0; i < 5; i++ {
		c.Next()
		seen = append(seen, c.Index())
	}
	assert.Equal(t, []int{1, 2, 3, 0, 1}, seen)

	c.GoTo(0)
	c.Previous()
	assert.Equal(t, 3, c.Index())
}

func TestTinySequencesAreNoOps(t *testing.T) {
	for _, policy := range []BoundaryPolicy{Wrap, Clamp} {
		for _, n := range []int{0, 1} {
			c := New(n, 100, 0, Options{Policy: policy})
			c.Next()
			c.Previous()
			c.GoTo(7)
			assert.Equal(t, 0, c.Index(), "%s n=%d", policy, n)

			f := c.Frame()
			assert.True(t, f.PrevDisabled)
			assert.True(t, f.NextDisabled)
		}
	}
}

func TestVisibleCountExceedsSlides(t *testing.T) {
	c := New(2, 100, 2000, Options{Policy: Clamp, VisibleCount: DefaultBreakpoints.Count})

	require.Equal(t, 3, c.VisibleCount())
	c.Next()
	c.GoTo(1)

	f := c.Frame()
	assert.Equal(t, 0, f.Index)
	assert.True(t, f.PrevDisabled)
	assert.True(t, f.NextDisabled)
	assert.Equal(t, 2, f.WindowEnd)
}

func TestResizeReclampsIndex(t *testing.T) {
	// 6 slides: max index is 4 at 1024px (2 visible) and 3 at 1200px (3 visible).
	c := New(6, 100, 800, Options{Policy: Clamp, VisibleCount: DefaultBreakpoints.Count})
	require.Equal(t, 2, c.VisibleCount())
	c.GoTo(99)
	require.Equal(t, 4, c.Index())

	c.RecomputeVisibleCount(1200)
	assert.Equal(t, 3, c.VisibleCount())
	assert.Equal(t, 3, c.Index())
	assert.True(t, c.Frame().NextDisabled)

	c.RecomputeVisibleCount(500)
	assert.Equal(t, 1, c.VisibleCount())
	assert.Equal(t, 3, c.Index(), "widening the range keeps the index")
}

func TestResizeWrapSingleKeepsIndex(t *testing.T) {
	c := New(5, 100, 500, Options{Policy: Wrap})
	c.GoTo(4)
	c.RecomputeVisibleCount(1600)
	assert.Equal(t, 4, c.Index())
}

func TestResizeWindowedWrapKeepsSlideOnScreen(t *testing.T) {
	// Testimonials: six slides, wrap, one visible on a phone.
	c := New(6, 100, 500, Options{Policy: Wrap, VisibleCount: DefaultBreakpoints.Count})
	c.GoTo(5)
	require.Equal(t, 5, c.Index())

	c.RecomputeVisibleCount(1200)
	f := c.Frame()
	assert.Equal(t, 3, f.VisibleCount)
	assert.Equal(t, 3, f.Index, "clamped to the last position, not wrapped")
	assert.True(t, f.WindowStart <= 5 && 5 < f.WindowEnd, "slide 5 still visible in [%d,%d)", f.WindowStart, f.WindowEnd)

	c.RecomputeVisibleCount(500)
	assert.Equal(t, 3, c.Index(), "widening the range keeps the index")

	c.Next()
	c.Next()
	c.Next()
	assert.Equal(t, 0, c.Index(), "navigation still wraps")
}

func TestOffsetAndOnChange(t *testing.T) {
	var frames []Frame
	c := New(6, 300, 1200, Options{
		Policy:       Clamp,
		VisibleCount: fixed(3),
		Gap:          10,
		OnChange:     func(f Frame) { frames = append(frames, f) },
	})

	assert.Equal(t, 0, c.Frame().Offset)

	c.Next()
	c.Next()
	require.Len(t, frames, 2)
	assert.Equal(t, -620, frames[1].Offset)

	c.Previous()
	c.Previous()
	c.Previous()
	assert.Len(t, frames, 4, "no-op at index 0 must not notify")

	c.SetItemWidth(200)
	require.Len(t, frames, 5)
	assert.Equal(t, 0, frames[4].Offset)
	c.GoTo(1)
	assert.Equal(t, -210, c.Frame().Offset)
}

func TestNilCarouselIsInert(t *testing.T) {
	var c *Carousel

	assert.NotPanics(t, func() {
		c.Next()
		c.Previous()
		c.GoTo(3)
		c.RecomputeVisibleCount(100)
		c.SetItemWidth(10)
		c.StartAutoAdvance()
		c.ResetAutoAdvance()
		c.StopAutoAdvance()
	})
	assert.Equal(t, 0, c.Index())
	assert.False(t, c.AutoAdvancing())
	assert.Equal(t, "", c.Name())
	assert.True(t, c.Frame().NextDisabled)
}

func TestAutoAdvance(t *testing.T) {
	clk := clock.New()
	c := New(3, 100, 0, Options{Policy: Wrap, AutoAdvance: 5 * time.Second, Clock: clk})
	require.True(t, c.AutoAdvancing())

	clk.Advance(5 * time.Second)
	assert.Equal(t, 1, c.Index())
	clk.Advance(10 * time.Second)
	assert.Equal(t, 0, c.Index())

	c.StopAutoAdvance()
	c.StopAutoAdvance()
	clk.Advance(time.Minute)
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 0, clk.Pending())

	c.StartAutoAdvance()
	clk.Advance(5 * time.Second)
	assert.Equal(t, 1, c.Index())
}

func TestManualNavigationRestartsAutoAdvance(t *testing.T) {
	clk := clock.New()
	c := New(5, 100, 0, Options{Policy: Wrap, AutoAdvance: 4 * time.Second, Clock: clk})

	clk.Advance(3 * time.Second)
	c.Next()
	require.Equal(t, 1, c.Index())

	clk.Advance(3 * time.Second)
	assert.Equal(t, 1, c.Index(), "tick is measured from the manual move")

	clk.Advance(time.Second)
	assert.Equal(t, 2, c.Index())
	assert.Equal(t, 1, clk.Pending())
}

func TestResetAutoAdvanceTwiceKeepsOneTimer(t *testing.T) {
	clk := clock.New()
	c := New(5, 100, 0, Options{Policy: Wrap, AutoAdvance: time.Second, Clock: clk})

	c.ResetAutoAdvance()
	c.ResetAutoAdvance()
	assert.Equal(t, 1, clk.Pending())

	clk.Advance(time.Second)
	assert.Equal(t, 1, c.Index())
}

func TestAutoAdvanceClampStopsAtEnd(t *testing.T) {
	clk := clock.New()
	c := New(4, 100, 0, Options{Policy: Clamp, VisibleCount: fixed(2), AutoAdvance: time.Second, Clock: clk})

	clk.Advance(10 * time.Second)
	assert.Equal(t, 2, c.Index())
}

func TestNoAutoAdvanceWithoutSlides(t *testing.T) {
	clk := clock.New()
	c := New(0, 100, 0, Options{AutoAdvance: time.Second, Clock: clk})
	assert.False(t, c.AutoAdvancing())
	assert.Equal(t, 0, clk.Pending())
}
