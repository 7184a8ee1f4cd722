package app

import (
	"sync"
	"time"

	"orthoslide/log"
	"orthoslide/schedule"

	tea "github.com/charmbracelet/bubbletea"
)

// timerMsg carries a timer callback onto the Bubble Tea loop.
type timerMsg struct {
	fn func()
}

// loopClock is a schedule.Clock whose callbacks run inside Update rather
// than on the timer goroutine, so carousels and debouncers are only ever
// touched from the event loop.
type loopClock struct {
	mu      sync.Mutex
	program *tea.Program
}

var _ schedule.Clock = (*loopClock)(nil)

// attach sets the program callbacks are delivered to. Callbacks that fire
// before attach are dropped.
func (c *loopClock) attach(p *tea.Program) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.program = p
}

func (c *loopClock) AfterFunc(d time.Duration, f func()) schedule.Timer {
	return time.AfterFunc(d, func() {
		c.mu.Lock()
		p := c.program
		c.mu.Unlock()
		if p == nil {
			log.TimerTrace("dropped a %v timer fired before the program started", d)
			return
		}
		p.Send(timerMsg{fn: f})
	})
}
