package inspect

import (
	"fmt"
	"strings"
	"time"

	"orthoslide/ui/layout"
)

// Snapshot represents a complete UI state at a point in time.
type Snapshot struct {
	// Timestamp when the snapshot was taken.
	Timestamp time.Time `json:"timestamp"`

	// Version of the snapshot format.
	Version string `json:"version"`

	// Terminal contains terminal dimensions.
	Terminal TerminalInfo `json:"terminal"`

	// AppState contains application state information.
	AppState AppStateInfo `json:"app_state"`

	// Layout contains layout configuration.
	Layout LayoutInfo `json:"layout"`

	// Components is the root of the component tree.
	Components *Node `json:"components"`

	// Breakpoints contains information about responsive breakpoints.
	Breakpoints []BreakpointInfo `json:"breakpoints"`

	// Styles holds the registered named styles.
	Styles map[string]*StyleInfo `json:"styles,omitempty"`
}

// TerminalInfo contains terminal dimensions.
type TerminalInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	// ViewportPx is the width handed to the carousels as their viewport.
	ViewportPx int `json:"viewport_px"`
}

// AppStateInfo contains application-level state.
type AppStateInfo struct {
	// State is the current app state (e.g., "default", "help", "picker").
	State string `json:"state"`

	// HasOverlay indicates if an overlay is currently displayed.
	HasOverlay bool `json:"has_overlay"`

	// OverlayType is the type of overlay if one is displayed.
	OverlayType string `json:"overlay_type,omitempty"`

	// ContentPath is the page content file, empty for the built-in page.
	ContentPath string `json:"content_path,omitempty"`

	// SectionCount is the number of sections on the page.
	SectionCount int `json:"section_count"`

	// MountedCount is the number of sections that got a carousel.
	MountedCount int `json:"mounted_count"`

	// Focused is the selector of the focused section.
	Focused string `json:"focused,omitempty"`

	// ErrorMessage is the current error message if any.
	ErrorMessage string `json:"error_message,omitempty"`
}

// LayoutInfo contains layout configuration.
type LayoutInfo struct {
	// Mode is the current layout mode.
	Mode string `json:"mode"`

	// SectionWidth is the width of every section.
	SectionWidth int `json:"section_width"`

	// SectionHeight is the height of an expanded section.
	SectionHeight int `json:"section_height"`

	// ContentHeight is the height left for sections.
	ContentHeight int `json:"content_height"`

	// MenuHeight is the menu height.
	MenuHeight int `json:"menu_height"`

	// UseAccordion indicates that unfocused sections are folded.
	UseAccordion bool `json:"use_accordion"`

	// Degradation contains active degradation flags.
	Degradation DegradationInfo `json:"degradation"`
}

// DegradationInfo contains active UI degradation flags.
type DegradationInfo struct {
	HideAuthors     bool `json:"hide_authors"`
	HideCaptions    bool `json:"hide_captions"`
	HideOffset      bool `json:"hide_offset"`
	HideIndicator   bool `json:"hide_indicator"`
	SimplifyBorders bool `json:"simplify_borders"`
	SingleLineMenu  bool `json:"single_line_menu"`
	ShowMinWarning  bool `json:"show_min_warning"`
}

// BreakpointInfo contains information about a responsive breakpoint.
type BreakpointInfo struct {
	// Name is the breakpoint name.
	Name string `json:"name"`

	// Threshold is the dimension threshold.
	Threshold int `json:"threshold"`

	// Active indicates if this breakpoint is currently triggered.
	Active bool `json:"active"`

	// Dimension is "width", "height" or "section_height".
	Dimension string `json:"dimension"`
}

// NewSnapshot creates a new snapshot with current timestamp.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Timestamp: time.Now(),
		Version:   "1.0.0",
	}
}

// WithTerminal sets terminal info and returns the snapshot for chaining.
func (s *Snapshot) WithTerminal(width, height, viewportPx int) *Snapshot {
	s.Terminal = TerminalInfo{Width: width, Height: height, ViewportPx: viewportPx}
	return s
}

// WithAppState sets the application state and returns the snapshot for chaining.
func (s *Snapshot) WithAppState(state AppStateInfo) *Snapshot {
	s.AppState = state
	return s
}

// WithLayout sets layout info from constraints and degradation.
func (s *Snapshot) WithLayout(c layout.Constraints, d layout.Degradation) *Snapshot {
	s.Layout = LayoutInfo{
		Mode:          c.Mode.String(),
		SectionWidth:  c.SectionWidth,
		SectionHeight: c.SectionHeight,
		ContentHeight: c.ContentHeight,
		MenuHeight:    c.MenuHeight,
		UseAccordion:  c.UseAccordion,
		Degradation: DegradationInfo{
			HideAuthors:     d.HideAuthors,
			HideCaptions:    d.HideCaptions,
			HideOffset:      d.HideOffset,
			HideIndicator:   d.HideIndicator,
			SimplifyBorders: d.SimplifyBorders,
			SingleLineMenu:  d.SingleLineMenu,
			ShowMinWarning:  d.ShowMinWarning,
		},
	}

	accordionHeight := c.HeaderHeight + c.MenuHeight + c.ErrBoxHeight + c.Sections*layout.SectionMinHeight
	s.Breakpoints = []BreakpointInfo{
		{Name: "hide_authors", Threshold: layout.AuthorHideSectionHeight, Active: d.HideAuthors, Dimension: "section_height"},
		{Name: "hide_captions", Threshold: layout.CaptionHideSectionHeight, Active: d.HideCaptions, Dimension: "section_height"},
		{Name: "hide_offset", Threshold: layout.OffsetHideWidth, Active: d.HideOffset, Dimension: "width"},
		{Name: "hide_indicator", Threshold: layout.IndicatorHideHeight, Active: d.HideIndicator, Dimension: "height"},
		{Name: "simplify_borders", Threshold: layout.BorderSimplifyWidth, Active: d.SimplifyBorders, Dimension: "width"},
		{Name: "single_line_menu", Threshold: layout.SingleLineMenuHeight, Active: d.SingleLineMenu, Dimension: "height"},
		{Name: "accordion", Threshold: accordionHeight, Active: d.UseAccordion, Dimension: "height"},
	}

	return s
}

// WithComponents sets the component tree root.
func (s *Snapshot) WithComponents(root *Node) *Snapshot {
	s.Components = root
	return s
}

// WithRegisteredStyles copies the registered styles into the snapshot.
func (s *Snapshot) WithRegisteredStyles() *Snapshot {
	s.Styles = GetAllStyles()
	return s
}

// ToText returns a human-readable text representation.
func (s *Snapshot) ToText() string {
	var b strings.Builder

	b.WriteString("=== UI Snapshot ===\n")
	b.WriteString(fmt.Sprintf("Time: %s\n", s.Timestamp.Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf("Terminal: %dx%d (viewport %dpx)\n", s.Terminal.Width, s.Terminal.Height, s.Terminal.ViewportPx))
	b.WriteString(fmt.Sprintf("State: %s\n", s.AppState.State))
	if s.AppState.Focused != "" {
		b.WriteString(fmt.Sprintf("Focused: %s\n", s.AppState.Focused))
	}
	b.WriteString(fmt.Sprintf("Sections: %d mounted of %d\n", s.AppState.MountedCount, s.AppState.SectionCount))
	if s.AppState.ErrorMessage != "" {
		b.WriteString(fmt.Sprintf("Error: %s\n", s.AppState.ErrorMessage))
	}

	b.WriteString("\n--- Layout ---\n")
	b.WriteString(fmt.Sprintf("Mode: %s\n", s.Layout.Mode))
	b.WriteString(fmt.Sprintf("Section: %dx%d\n", s.Layout.SectionWidth, s.Layout.SectionHeight))
	b.WriteString(fmt.Sprintf("Accordion: %v\n", s.Layout.UseAccordion))

	b.WriteString("\n--- Active Breakpoints ---\n")
	for _, bp := range s.Breakpoints {
		status := "[ ]"
		if bp.Active {
			status = "[X]"
		}
		b.WriteString(fmt.Sprintf("  %s %s (threshold: %d %s)\n", status, bp.Name, bp.Threshold, bp.Dimension))
	}

	if s.Components != nil {
		b.WriteString("\n--- Components ---\n")
		writeNodeText(&b, s.Components, 0)
	}

	return b.String()
}

func writeNodeText(b *strings.Builder, node *Node, indent int) {
	prefix := strings.Repeat("  ", indent)

	b.WriteString(fmt.Sprintf("%s%s", prefix, node.Type))
	if node.ID != "" {
		b.WriteString(fmt.Sprintf(" [%s]", node.ID))
	}
	b.WriteString(fmt.Sprintf(" (%dx%d)", node.Bounds.Width, node.Bounds.Height))

	if idx, ok := node.State["index"]; ok {
		b.WriteString(fmt.Sprintf(" index=%v", idx))
	}
	if w := node.Window; w != nil {
		b.WriteString(fmt.Sprintf(" window=[%d,%d)/%d offset=%d", w.Start, w.End, w.Of, w.Offset))
	}
	if !node.Visible {
		b.WriteString(" hidden")
	}

	b.WriteString("\n")

	for _, child := range node.Children {
		writeNodeText(b, child, indent+1)
	}
}
