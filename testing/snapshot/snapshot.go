// Package snapshot provides output assertions for TUI components. It strips
// terminal escapes so rendered views can be checked as plain text.
package snapshot

import (
	"regexp"
	"strings"
	"testing"

	"github.com/muesli/ansi"
)

var (
	ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)
	oscRegex  = regexp.MustCompile(`\x1b\]8;;[^\x1b]*\x1b\\`)
)

// Snap provides assertion helpers bound to a test
type Snap struct {
	t *testing.T
}

// New creates a new Snap instance for the given test
func New(t *testing.T) *Snap {
	return &Snap{t: t}
}

// AssertContains checks that actual output contains the expected substring
func (s *Snap) AssertContains(actual, substr string) {
	s.t.Helper()
	normalized := normalizeOutput(actual)
	if !strings.Contains(normalized, substr) {
		s.t.Errorf("Output does not contain expected substring.\nExpected to contain: %q\nActual:\n%s", substr, normalized)
	}
}

// AssertNotContains checks that actual output does NOT contain the substring
func (s *Snap) AssertNotContains(actual, substr string) {
	s.t.Helper()
	normalized := normalizeOutput(actual)
	if strings.Contains(normalized, substr) {
		s.t.Errorf("Output unexpectedly contains substring: %q\nActual:\n%s", substr, normalized)
	}
}

// AssertFits checks that output is no wider and no taller than the given box.
func (s *Snap) AssertFits(actual string, width, height int) {
	s.t.Helper()
	if w := Width(actual); w > width {
		s.t.Errorf("Output is %d columns wide, limit %d\nActual:\n%s", w, width, normalizeOutput(actual))
	}
	if h := Lines(actual); h > height {
		s.t.Errorf("Output is %d lines tall, limit %d\nActual:\n%s", h, height, normalizeOutput(actual))
	}
}

// normalizeOutput strips ANSI codes and normalizes whitespace for comparison
func normalizeOutput(s string) string {
	s = StripANSI(s)

	// Normalize line endings
	s = strings.ReplaceAll(s, "\r\n", "\n")

	// Remove trailing whitespace from each line
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.Join(lines, "\n")
}

// StripANSI removes all ANSI escape codes from a string
func StripANSI(s string) string {
	s = ansiRegex.ReplaceAllString(s, "")
	// Also strip OSC 8 hyperlink sequences
	return oscRegex.ReplaceAllString(s, "")
}

// Lines returns the line count of the rendered output (useful for height tests)
func Lines(s string) int {
	return len(strings.Split(StripANSI(s), "\n"))
}

// Width returns the maximum printable width of the rendered output, in cells
func Width(s string) int {
	maxWidth := 0
	for _, line := range strings.Split(s, "\n") {
		if w := ansi.PrintableRuneWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

// Count returns how many times substr appears in the plain-text output.
func Count(s, substr string) int {
	return strings.Count(StripANSI(s), substr)
}
