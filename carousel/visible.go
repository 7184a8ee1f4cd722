package carousel

import "sort"

// VisibleCountFunc maps a viewport width to the number of slides shown at
// once. Results below 1 are treated as 1.
type VisibleCountFunc func(viewportWidth int) int

// Single shows one slide regardless of width.
func Single(int) int { return 1 }

// Breakpoint is one row of a breakpoint table: widths up to and including
// MaxWidth show Count slides.
type Breakpoint struct {
	MaxWidth int `json:"max_width"`
	Count    int `json:"count"`
}

// Breakpoints is an ordered width table with a count for widths above the
// last row.
type Breakpoints struct {
	Rows     []Breakpoint `json:"rows"`
	Fallback int          `json:"fallback"`
}

// DefaultBreakpoints are the gallery breakpoints: phones show one slide,
// tablets two, anything wider three.
var DefaultBreakpoints = Breakpoints{
	Rows: []Breakpoint{
		{MaxWidth: 767, Count: 1},
		{MaxWidth: 1023, Count: 2},
	},
	Fallback: 3,
}

// Count returns the visible count for width. It can be used as a
// VisibleCountFunc.
func (b Breakpoints) Count(width int) int {
	rows := make([]Breakpoint, len(b.Rows))
	copy(rows, b.Rows)
	sort.Slice(rows, func(i, j int) bool { return rows[i].MaxWidth < rows[j].MaxWidth })

	for _, r := range rows {
		if width <= r.MaxWidth {
			return atLeastOne(r.Count)
		}
	}
	return atLeastOne(b.Fallback)
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
