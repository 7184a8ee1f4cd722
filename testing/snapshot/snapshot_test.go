package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasure(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		plain string
		lines int
		width int
	}{
		{
			name:  "plain heading",
			in:    "Our Clinic",
			plain: "Our Clinic",
			lines: 1,
			width: 10,
		},
		{
			name:  "styled affordances",
			in:    "\x1b[1;36m‹\x1b[0m 2/4 \x1b[2m›\x1b[0m",
			plain: "‹ 2/4 ›",
			lines: 1,
			width: 7,
		},
		{
			name:  "card rows of different widths",
			in:    "╭──────╮\n│ Knee │\n╰──────╯\n\x1b[32m●\x1b[0m ○",
			plain: "╭──────╮\n│ Knee │\n╰──────╯\n● ○",
			lines: 4,
			width: 8,
		},
		{
			name:  "hyperlinked caption",
			in:    "\x1b]8;;https://example.com/knee\x1b\\Knee care\x1b]8;;\x1b\\",
			plain: "Knee care",
			lines: 1,
			width: 9,
		},
		{
			name:  "wide runes",
			in:    "\x1b[1m膝\x1b[0m…",
			plain: "膝…",
			lines: 1,
			width: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.plain, StripANSI(tt.in))
			assert.Equal(t, tt.lines, Lines(tt.in))
			assert.Equal(t, tt.width, Width(tt.in))
		})
	}
}

func TestNormalizeOutput(t *testing.T) {
	out := normalizeOutput("Welcome   \r\n\x1b[31mHero\x1b[0m\t\n")
	assert.Equal(t, "Welcome\nHero\n", out)
}

func TestCountDots(t *testing.T) {
	dots := "\x1b[32m●\x1b[0m ○ ○ \x1b[32m●\x1b[0m"
	assert.Equal(t, 2, Count(dots, "●"))
	assert.Equal(t, 2, Count(dots, "○"))
}

func TestSnapAssertions(t *testing.T) {
	s := New(t)
	s.AssertContains("\x1b[1mWhat Patients Say\x1b[0m   ", "What Patients Say")
	s.AssertNotContains("‹ 1/3 ›", "4/3")
	s.AssertFits("╭──╮\n╰──╯", 4, 2)
}
