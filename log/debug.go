// Package log provides the application loggers plus a debug mode with render
// profiling. Enable debug mode by setting ORTHOSLIDE_DEBUG=1.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// DebugEnv is the environment variable that turns on debug mode.
const DebugEnv = "ORTHOSLIDE_DEBUG"

// Debug mode configuration
var (
	DebugEnabled bool
	DebugLog     *log.Logger
	debugLogFile *os.File
)

var debugLogFileName = filepath.Join(os.TempDir(), "orthoslide-debug.log")

// InitDebug initializes debug logging if ORTHOSLIDE_DEBUG=1 is set.
func InitDebug() {
	if os.Getenv(DebugEnv) != "1" {
		DebugEnabled = false
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	DebugEnabled = true

	f, err := os.OpenFile(debugLogFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		ErrorLog.Printf("could not open debug log file: %s", err)
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	DebugLog = log.New(f, "DEBUG:", log.Ldate|log.Ltime|log.Lmicroseconds)
	debugLogFile = f

	DebugLog.Println("Debug mode enabled")
	DebugLog.Printf("Debug log: %s", debugLogFileName)
}

// CloseDebug writes the render profile and closes the debug log file.
func CloseDebug() {
	profiler.LogStats()
	if debugLogFile != nil {
		_ = debugLogFile.Close()
		debugLogFile = nil
		fmt.Println("wrote debug logs to " + debugLogFileName)
	}
}

// Debug logs a debug message if debug mode is enabled.
func Debug(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf(format, v...)
	}
}

// RenderProfiler times whole frames (one View call) and the carousel
// sections rendered inside them.
type RenderProfiler struct {
	mu       sync.RWMutex
	sections map[string]*SectionMetrics
	frames   int64
	slow     int64
	total    time.Duration
	recent   []time.Duration // last frameWindow frames
}

// SectionMetrics accumulates render timings for one carousel section.
type SectionMetrics struct {
	Selector string
	Renders  int64
	Total    time.Duration
	Max      time.Duration
}

// RenderStats is a point-in-time summary of the profiler.
type RenderStats struct {
	Frames     int64
	SlowFrames int64
	AvgFrame   time.Duration
	// RecentMax is the worst frame in the rolling window.
	RecentMax time.Duration
	// Sections is sorted by worst render first.
	Sections []SectionMetrics
}

const frameWindow = 100

// slowFrame is one frame at 60fps.
const slowFrame = 16 * time.Millisecond

var profiler = newRenderProfiler()

func newRenderProfiler() *RenderProfiler {
	return &RenderProfiler{
		sections: make(map[string]*SectionMetrics),
		recent:   make([]time.Duration, 0, frameWindow),
	}
}

// GetProfiler returns the global render profiler.
func GetProfiler() *RenderProfiler {
	return profiler
}

// StartRender begins timing the section rendered under selector and returns
// the function that stops the timer.
func (p *RenderProfiler) StartRender(selector string) func() {
	if !DebugEnabled {
		return func() {}
	}

	start := time.Now()
	return func() {
		p.recordSection(selector, time.Since(start))
	}
}

func (p *RenderProfiler) recordSection(selector string, elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	m, ok := p.sections[selector]
	if !ok {
		m = &SectionMetrics{Selector: selector}
		p.sections[selector] = m
	}
	m.Renders++
	m.Total += elapsed
	m.Max = max(m.Max, elapsed)
}

// RecordFrame records one complete View call.
func (p *RenderProfiler) RecordFrame(elapsed time.Duration) {
	if !DebugEnabled {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.frames++
	p.total += elapsed
	if len(p.recent) >= frameWindow {
		p.recent = p.recent[1:]
	}
	p.recent = append(p.recent, elapsed)

	if elapsed > slowFrame {
		p.slow++
		if DebugLog != nil {
			DebugLog.Printf("SLOW FRAME: %v", elapsed)
		}
	}
}

// Stats summarises what has been recorded since the last Reset.
func (p *RenderProfiler) Stats() RenderStats {
	p.mu.RLock()
	defer p.mu.RUnlock()

	st := RenderStats{Frames: p.frames, SlowFrames: p.slow}
	if p.frames > 0 {
		st.AvgFrame = p.total / time.Duration(p.frames)
	}
	for _, d := range p.recent {
		st.RecentMax = max(st.RecentMax, d)
	}
	for _, m := range p.sections {
		st.Sections = append(st.Sections, *m)
	}
	sort.Slice(st.Sections, func(i, j int) bool {
		if st.Sections[i].Max != st.Sections[j].Max {
			return st.Sections[i].Max > st.Sections[j].Max
		}
		return st.Sections[i].Selector < st.Sections[j].Selector
	})
	return st
}

// GetStats renders Stats as text. Empty when debug mode is off.
func (p *RenderProfiler) GetStats() string {
	if !DebugEnabled {
		return ""
	}

	st := p.Stats()
	var sb strings.Builder
	sb.WriteString("\n=== Render Profile ===\n")
	sb.WriteString(fmt.Sprintf("Frames: %d (%d slow) avg=%v worst recent=%v\n",
		st.Frames, st.SlowFrames, st.AvgFrame, st.RecentMax))
	for _, m := range st.Sections {
		sb.WriteString(fmt.Sprintf("  %s: renders=%d avg=%v max=%v\n",
			m.Selector, m.Renders, m.Total/time.Duration(m.Renders), m.Max))
	}
	return sb.String()
}

// LogStats writes GetStats to the debug log.
func (p *RenderProfiler) LogStats() {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Print(p.GetStats())
	}
}

// Reset drops everything recorded so far.
func (p *RenderProfiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.sections = make(map[string]*SectionMetrics)
	p.frames, p.slow, p.total = 0, 0, 0
	p.recent = make([]time.Duration, 0, frameWindow)
}

// LayoutTrace logs layout computation events.
func LayoutTrace(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[LAYOUT] "+format, v...)
	}
}

// InputTrace logs input handling events.
func InputTrace(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[INPUT] "+format, v...)
	}
}

// CarouselTrace logs an event of the carousel mounted under selector.
func CarouselTrace(selector, format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[CAROUSEL %s] "+format, append([]interface{}{selector}, v...)...)
	}
}

// TimerTrace logs scheduling events: timers armed, fired and dropped.
func TimerTrace(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[TIMER] "+format, v...)
	}
}
