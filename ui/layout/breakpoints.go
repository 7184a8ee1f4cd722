package layout

// Width breakpoints
const (
	// MinWidth is the absolute minimum terminal width.
	MinWidth = 80

	// CompactWidth triggers compact mode features.
	CompactWidth = 100

	// StandardWidth is the threshold for standard layout.
	StandardWidth = 120

	// FullWidth is the threshold for full layout with all features.
	FullWidth = 140
)

// Height breakpoints
const (
	// MinHeight is the absolute minimum terminal height (standard terminal).
	MinHeight = 24

	// CompactHeight triggers compact mode features.
	CompactHeight = 30

	// StandardHeight is the threshold for standard layout.
	StandardHeight = 40

	// FullHeight is the threshold for full layout.
	FullHeight = 50
)

// Viewport conversion
const (
	// DefaultCellWidthPx is how many viewport pixels one terminal column
	// stands for. At 8px, 80 columns is a phone, 100 a tablet and 128 a
	// desktop.
	DefaultCellWidthPx = 8

	// GapCells is the gap between slide cards, in columns.
	GapCells = 1
)

// Section constraints
const (
	// SectionMinHeight fits border, heading, a card with one caption line
	// and the indicator row.
	SectionMinHeight = 9

	// SectionMaxHeight keeps sections from over-stretching on tall terminals.
	SectionMaxHeight = 14

	// CollapsedHeight is the height of a section folded to its summary line.
	CollapsedHeight = 1

	// SidePadding is the horizontal margin around sections.
	SidePadding = 1
)

// Menu constraints
const (
	// MenuMinHeight is the minimum menu height.
	MenuMinHeight = 1

	// MenuStandardHeight is the standard menu height (1 line + padding).
	MenuStandardHeight = 2

	// MenuMaxHeight is the maximum menu height.
	MenuMaxHeight = 3
)

// Component constraints
const (
	// ErrBoxHeight is the fixed error box height.
	ErrBoxHeight = 1

	// HeaderHeight is the page title bar height.
	HeaderHeight = 1
)

// Overlay constraints
const (
	// OverlayMaxWidth is the maximum overlay width.
	OverlayMaxWidth = 80

	// OverlayMaxHeight is the maximum overlay height.
	OverlayMaxHeight = 25

	// OverlayMinWidth is the minimum overlay width.
	OverlayMinWidth = 40

	// OverlayMinHeight is the minimum overlay height.
	OverlayMinHeight = 10

	// OverlayMargin is the minimum margin from terminal edges.
	OverlayMargin = 4
)

// ViewportWidth converts a terminal width in columns to viewport pixels.
func ViewportWidth(cols, cellWidthPx int) int {
	if cellWidthPx <= 0 {
		cellWidthPx = DefaultCellWidthPx
	}
	if cols < 0 {
		return 0
	}
	return cols * cellWidthPx
}
