package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SectionOption is one page section in the picker.
type SectionOption struct {
	Selector string
	Heading  string
	// Detail is a short summary such as "6 slides, clamp".
	Detail string
	// Mounted is false when the section has no carousel; it can't be picked.
	Mounted bool
}

// SectionPickerOverlay lets the user jump focus to a section by name.
type SectionPickerOverlay struct {
	Dismissed bool
	Selected  string // The selected section's selector
	options   []SectionOption
	cursor    int
	width     int
}

// NewSectionPickerOverlay creates a picker with the cursor on current, or
// on the first mounted section when current isn't mounted.
func NewSectionPickerOverlay(options []SectionOption, current string) *SectionPickerOverlay {
	s := &SectionPickerOverlay{options: options, cursor: -1}
	for i, opt := range options {
		if !opt.Mounted {
			continue
		}
		if opt.Selector == current {
			s.cursor = i
			break
		}
		if s.cursor < 0 {
			s.cursor = i
		}
	}
	return s
}

// HandleKeyPress processes a key press and updates the state
func (s *SectionPickerOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "up", "k", "shift+tab":
		s.moveCursor(-1)
		return false
	case "down", "j", "tab":
		s.moveCursor(1)
		return false
	case "enter":
		if s.cursor >= 0 && s.options[s.cursor].Mounted {
			s.Selected = s.options[s.cursor].Selector
			s.Dismissed = true
			return true
		}
		return false
	case "esc", "s", "q":
		s.Dismissed = true
		return true
	default:
		return false
	}
}

// moveCursor moves the cursor up or down, skipping sections without a carousel
func (s *SectionPickerOverlay) moveCursor(delta int) {
	if s.cursor < 0 || len(s.options) == 0 {
		return
	}
	next := s.cursor
	for attempts := 0; attempts < len(s.options); attempts++ {
		next = (next + delta + len(s.options)) % len(s.options)
		if s.options[next].Mounted {
			s.cursor = next
			return
		}
	}
}

// Cursor returns the highlighted option index, -1 when nothing is pickable.
func (s *SectionPickerOverlay) Cursor() int {
	return s.cursor
}

// Render renders the section picker overlay
func (s *SectionPickerOverlay) Render(opts ...WhitespaceOption) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("37"))

	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#2DD4BF")).
		Bold(true)

	normalStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA"))

	unavailableStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#555555")).
		Strikethrough(true)

	detailStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		PaddingLeft(4)

	var content strings.Builder
	content.WriteString(titleStyle.Render("Jump to Section"))
	content.WriteString("\n\n")

	for i, opt := range s.options {
		prefix := "  "
		nameStyle := normalStyle
		switch {
		case !opt.Mounted:
			nameStyle = unavailableStyle
		case i == s.cursor:
			prefix = "> "
			nameStyle = selectedStyle
		}

		content.WriteString(prefix)
		content.WriteString(nameStyle.Render(opt.Heading))
		if !opt.Mounted {
			content.WriteString(" (not mounted)")
		}
		content.WriteString("\n")
		content.WriteString(detailStyle.Render(opt.Selector + "  " + opt.Detail))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Render(
		"[Enter] Focus  [Esc] Cancel  [↑/↓] Navigate"))

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("37")).
		Padding(1, 2).
		Width(s.width)

	return borderStyle.Render(content.String())
}

// SetWidth sets the width of the overlay
func (s *SectionPickerOverlay) SetWidth(width int) {
	s.width = width
}
