// Package harness drives Bubble Tea models in tests: it feeds them window
// sizes and key presses the way the program loop would and returns the
// commands they produce.
package harness

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// UseASCIIProfile renders without colour so views can be compared as plain
// text. Call it from TestMain.
func UseASCIIProfile() {
	lipgloss.SetColorProfile(termenv.Ascii)
	lipgloss.SetHasDarkBackground(true)
}

// namedKeys maps the key names used by the key map to their key types.
var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"home":      tea.KeyHome,
	"end":       tea.KeyEnd,
	"ctrl+c":    tea.KeyCtrlC,
}

// Key returns the message the terminal would deliver for key. Named keys
// ("tab", "left", "ctrl+c") become their key type, anything else is runes.
func Key(key string) tea.KeyMsg {
	if t, ok := namedKeys[key]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// Harness owns a model and the terminal size it was last given.
type Harness struct {
	t      *testing.T
	model  tea.Model
	width  int
	height int
}

// New wraps model and sends it the initial window size.
func New(t *testing.T, model tea.Model, width, height int) *Harness {
	h := &Harness{t: t, model: model}
	h.Resize(width, height)
	return h
}

// SendMsg updates the model with msg.
func (h *Harness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	return cmd
}

// SendKey sends a single key press, see Key.
func (h *Harness) SendKey(key string) tea.Cmd {
	return h.SendMsg(Key(key))
}

// SendKeys sends each key in turn and returns the commands they produced.
func (h *Harness) SendKeys(keys ...string) []tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(keys))
	for _, k := range keys {
		cmds = append(cmds, h.SendKey(k))
	}
	return cmds
}

func (h *Harness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// Resize sends a window size message.
func (h *Harness) Resize(width, height int) tea.Cmd {
	h.width = width
	h.height = height
	return h.SendMsg(tea.WindowSizeMsg{Width: width, Height: height})
}

func (h *Harness) View() string {
	return h.model.View()
}

// Size returns the last size sent to the model.
func (h *Harness) Size() (width, height int) {
	return h.width, h.height
}

// TerminalSize is a named terminal size.
type TerminalSize struct {
	Name   string
	Width  int
	Height int
}

// CommonSizes covers each layout mode plus the lopsided shapes that push
// the width and height breakpoints apart.
var CommonSizes = []TerminalSize{
	{Name: "minimum", Width: 80, Height: 24},
	{Name: "compact", Width: 100, Height: 30},
	{Name: "standard", Width: 120, Height: 40},
	{Name: "large", Width: 200, Height: 50},
	{Name: "wide", Width: 200, Height: 24},
	{Name: "tall", Width: 80, Height: 60},
}

// RunWithCommonSizes runs fn as a subtest for every size in CommonSizes.
func RunWithCommonSizes(t *testing.T, fn func(t *testing.T, size TerminalSize)) {
	for _, size := range CommonSizes {
		t.Run(size.Name, func(t *testing.T) {
			fn(t, size)
		})
	}
}
