package layout

// Degradation holds flags indicating which UI features should be hidden or simplified.
// Features are listed in order of degradation priority (first to hide).
type Degradation struct {
	// Slide card degradation
	HideAuthors   bool // Hide testimonial author lines (section height < 11)
	HideCaptions  bool // Hide slide captions entirely (section height < 10)
	HideOffset    bool // Hide the track offset readout (width < 100)
	HideIndicator bool // Hide the dot indicator row (height < 28)

	// Component simplification
	SimplifyBorders bool // Plain borders on cards (width < 90)
	SingleLineMenu  bool // Compact menu to one line (height < 26)

	// Critical degradation
	UseAccordion   bool // Fold unfocused sections
	ShowMinWarning bool // Terminal too small warning (below MinWidth/MinHeight)
}

// Threshold constants for degradation
const (
	AuthorHideSectionHeight  = 11
	CaptionHideSectionHeight = 10
	OffsetHideWidth          = 100
	IndicatorHideHeight      = 28
	BorderSimplifyWidth      = 90
	SingleLineMenuHeight     = 26
)

// ComputeDegradation calculates which UI features should be degraded.
func ComputeDegradation(c Constraints) Degradation {
	return Degradation{
		HideAuthors:   c.SectionHeight < AuthorHideSectionHeight,
		HideCaptions:  c.SectionHeight < CaptionHideSectionHeight,
		HideOffset:    c.TerminalWidth < OffsetHideWidth,
		HideIndicator: c.TerminalHeight < IndicatorHideHeight,

		SimplifyBorders: c.TerminalWidth < BorderSimplifyWidth,
		SingleLineMenu:  c.TerminalHeight < SingleLineMenuHeight,

		UseAccordion:   c.UseAccordion,
		ShowMinWarning: c.ShowMinWarning,
	}
}

// IsCompactMode returns true if slide cards should use compact rendering.
func (d Degradation) IsCompactMode() bool {
	return d.HideAuthors || d.HideCaptions
}

// ShouldShowCaption returns true if slide captions should be shown.
func (d Degradation) ShouldShowCaption() bool {
	return !d.HideCaptions
}

// ShouldShowAuthor returns true if testimonial authors should be shown.
func (d Degradation) ShouldShowAuthor() bool {
	return !d.HideAuthors
}

// ShouldShowIndicator returns true if the dot indicator row should be shown.
func (d Degradation) ShouldShowIndicator() bool {
	return !d.HideIndicator
}
