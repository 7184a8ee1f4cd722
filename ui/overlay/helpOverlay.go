package overlay

import (
	"strings"

	"orthoslide/keys"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpOverlay lists every key binding. Any key dismisses it.
type HelpOverlay struct {
	Dismissed bool

	title string
	// notes are extra lines shown under the bindings, such as the log path.
	notes []string
	help  help.Model
	width int
}

// NewHelpOverlay creates a help overlay with the given title.
func NewHelpOverlay(title string, notes ...string) *HelpOverlay {
	h := help.New()
	h.ShowAll = true
	h.FullSeparator = "    "
	return &HelpOverlay{
		title: title,
		notes: notes,
		help:  h,
	}
}

// HandleKeyPress processes a key press. It returns true when the overlay
// should close.
func (h *HelpOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	h.Dismissed = true
	return true
}

// SetWidth sets the overlay width
func (h *HelpOverlay) SetWidth(width int) {
	h.width = width
	h.help.Width = max(width-6, 0)
}

// Render renders the help overlay
func (h *HelpOverlay) Render(opts ...WhitespaceOption) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("37"))

	noteStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true)

	var content strings.Builder
	content.WriteString(titleStyle.Render(h.title))
	content.WriteString("\n\n")
	content.WriteString(h.help.View(keys.KeyMap{}))
	for _, note := range h.notes {
		content.WriteString("\n")
		content.WriteString(noteStyle.Render(note))
	}
	content.WriteString("\n\n")
	content.WriteString(noteStyle.Render("press any key to close"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("37")).
		Padding(1, 2).
		Width(h.width).
		Render(content.String())
}
