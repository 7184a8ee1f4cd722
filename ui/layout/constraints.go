package layout

// Constraints holds the computed layout constraints for all components.
type Constraints struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Computed mode
	Mode LayoutMode

	// Fixed chrome
	HeaderHeight int
	MenuHeight   int
	ErrBoxHeight int

	// ContentHeight is what is left for the carousel sections.
	ContentHeight int

	// Sections is the number of carousel sections being laid out.
	Sections int
	// SectionWidth is the outer width of every section.
	SectionWidth int
	// SectionHeight is the outer height of an expanded section.
	SectionHeight int

	// Layout flags
	UseAccordion   bool // Only the focused section is expanded; others fold to one line
	ShowMinWarning bool // Terminal is below minimum size
}

// ComputeConstraints calculates layout constraints for the given terminal
// dimensions and number of sections.
func ComputeConstraints(width, height, sections int) Constraints {
	c := Constraints{
		TerminalWidth:  width,
		TerminalHeight: height,
		Sections:       sections,
	}

	c.Mode = DetermineMode(width, height)
	if width < MinWidth || height < MinHeight {
		c.ShowMinWarning = true
		// Still compute basic layout for partial display
	}

	c.HeaderHeight = HeaderHeight
	c.ErrBoxHeight = ErrBoxHeight
	c.MenuHeight = computeMenuHeight(c.Mode)
	c.ContentHeight = max(height-c.HeaderHeight-c.MenuHeight-c.ErrBoxHeight, 0)
	c.SectionWidth = max(width-2*SidePadding, 0)

	if sections <= 0 {
		return c
	}

	if sections*SectionMinHeight <= c.ContentHeight {
		c.SectionHeight = clamp(c.ContentHeight/sections, SectionMinHeight, SectionMaxHeight)
		return c
	}

	// Not enough room to expand everything: fold all but the focused section.
	c.UseAccordion = true
	c.SectionHeight = clamp(c.ContentHeight-(sections-1)*CollapsedHeight, CollapsedHeight, SectionMaxHeight)
	return c
}

// computeMenuHeight calculates the menu height based on mode.
func computeMenuHeight(mode LayoutMode) int {
	switch mode {
	case LayoutFull:
		return MenuMaxHeight
	case LayoutStandard:
		return MenuStandardHeight
	default:
		return MenuMinHeight
	}
}

// CardWidth returns the width of one slide card when visible cards share a
// section of the given outer width.
func CardWidth(sectionWidth, visible int) int {
	if visible < 1 {
		visible = 1
	}
	// Section border and horizontal padding
	inner := sectionWidth - 4
	w := (inner - (visible-1)*GapCells) / visible
	return max(w, 8)
}

// ComputeOverlaySize calculates constrained overlay dimensions.
func ComputeOverlaySize(termWidth, termHeight int, preferredWidth, preferredHeight int) (int, int) {
	maxW := termWidth - OverlayMargin*2
	maxH := termHeight - OverlayMargin*2

	w := clamp(preferredWidth, OverlayMinWidth, min(maxW, OverlayMaxWidth))
	h := clamp(preferredHeight, OverlayMinHeight, min(maxH, OverlayMaxHeight))

	return w, h
}

func clamp(value, minVal, maxVal int) int {
	if value < minVal {
		return minVal
	}
	if value > maxVal {
		return maxVal
	}
	return value
}
