package ui

import (
	"orthoslide/inspect"

	"github.com/charmbracelet/lipgloss"
)

// Semantic Color Palette
// Designed for accessibility (colorblind-safe) with both color and shape differentiation.

// Status colors - each status has a distinct color and associated icon
var (
	// StatusRunning indicates a carousel that is auto-advancing
	// Color: Blue, Icon: "▶"
	StatusRunning = lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#3B82F6"}

	// StatusPaused indicates a carousel with auto-advance stopped
	// Color: Gray, Icon: "⏸"
	StatusPaused = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}

	// StatusWarning indicates needs attention
	// Color: Amber, Icon: "!"
	StatusWarning = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#F59E0B"}

	// StatusError indicates errors/failures
	// Color: Red, Icon: "x"
	StatusError = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#EF4444"}
)

// UI chrome colors - structural elements
var (
	// Primary is the accent/focus color
	Primary = lipgloss.AdaptiveColor{Light: "#0F766E", Dark: "#2DD4BF"}

	// Border is the default border color
	Border = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#3C3C3C"}

	// BorderFocus is the border color for focused elements
	BorderFocus = lipgloss.AdaptiveColor{Light: "#0F766E", Dark: "#2DD4BF"}

	// TextPrimary is the main text color
	TextPrimary = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}

	// TextSecondary is for secondary text (captions, labels)
	TextSecondary = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}

	// TextMuted is for hints, disabled controls and subtle text
	TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	// BackgroundSubtle is for overlays
	BackgroundSubtle = lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#2a2a2a"}
)

// Icons for accessibility (shape + color)
const (
	IconPlaying   = "▶"
	IconPaused    = "⏸"
	IconPrev      = "‹"
	IconNext      = "›"
	IconDot       = "○"
	IconDotActive = "●"
	IconCollapsed = "▸"
	IconExpanded  = "▾"
)

// Pre-built styles for common UI elements

// TextStyles contains pre-built styles for text elements
var TextStyles = struct {
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Muted     lipgloss.Style
	Heading   lipgloss.Style
}{
	Primary:   lipgloss.NewStyle().Foreground(TextPrimary),
	Secondary: lipgloss.NewStyle().Foreground(TextSecondary),
	Muted:     lipgloss.NewStyle().Foreground(TextMuted),
	Heading:   lipgloss.NewStyle().Foreground(TextPrimary).Bold(true),
}

// ControlStyles render the previous/next affordances and dot indicators.
var ControlStyles = struct {
	Enabled   lipgloss.Style
	Disabled  lipgloss.Style
	Dot       lipgloss.Style
	DotActive lipgloss.Style
}{
	Enabled:   lipgloss.NewStyle().Foreground(Primary).Bold(true),
	Disabled:  lipgloss.NewStyle().Foreground(TextMuted).Faint(true),
	Dot:       lipgloss.NewStyle().Foreground(TextMuted),
	DotActive: lipgloss.NewStyle().Foreground(Primary),
}

// BorderStyles contains pre-built styles for bordered elements
var BorderStyles = struct {
	Default lipgloss.Style
	Focus   lipgloss.Style
}{
	Default: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(Border),
	Focus: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderFocus),
}

var mainTitle = lipgloss.NewStyle().
	Background(lipgloss.Color("#0F766E")).
	Foreground(lipgloss.Color("230")).
	Padding(0, 1)

// BadgeStyle creates a styled badge with the given color
func BadgeStyle(color lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(color).
		Padding(0, 1)
}

// StatusBadge returns a formatted status badge string
func StatusBadge(status string, color lipgloss.TerminalColor) string {
	return BadgeStyle(color).Render(status)
}

// Spacing constants for consistent layout
const (
	SpaceXS = 1
	SpaceSM = 2
)

// OverlayStyle creates a style for overlay/modal containers
func OverlayStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderFocus).
		Padding(1, 2).
		Background(BackgroundSubtle)
}

// CardStyle creates a style for slide cards
func CardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
}

// PlainCardStyle is CardStyle with square corners for narrow terminals.
func PlainCardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(Border).
		Padding(0, 1)
}

func init() {
	inspect.RegisterStyle("text.primary", TextStyles.Primary)
	inspect.RegisterStyle("text.heading", TextStyles.Heading)
	inspect.RegisterStyle("control.enabled", ControlStyles.Enabled)
	inspect.RegisterStyle("control.disabled", ControlStyles.Disabled)
	inspect.RegisterStyle("border.focus", BorderStyles.Focus)
	inspect.RegisterStyle("card", CardStyle())
	inspect.RegisterStyle("card.plain", PlainCardStyle())
	inspect.RegisterStyle("overlay", OverlayStyle())
}
