package ui

import (
	"strings"

	"orthoslide/keys"

	"github.com/charmbracelet/lipgloss"
)

var keyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#655F5F",
	Dark:  "#7F7A7A",
})

var descStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#7A7474",
	Dark:  "#9C9494",
})

var sepStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#DDDADA",
	Dark:  "#3C3C3C",
})

var actionGroupStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("37"))

var separator = " • "
var verticalSeparator = " │ "

var menuStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("37"))

// MenuState represents different states the menu can be in
type MenuState int

const (
	StateDefault MenuState = iota
	// StateEmpty is when no carousel is mounted.
	StateEmpty
	// StateLoading is while the page loader is up.
	StateLoading
	// StateHelp is while the help overlay is shown.
	StateHelp
)

type Menu struct {
	options       []keys.KeyName
	groups        []menuGroup
	height, width int
	state         MenuState
	singleLine    bool

	// keyDown is the key which is pressed. The default is -1.
	keyDown keys.KeyName
}

// menuGroup is a half-open range of options rendered between separators.
type menuGroup struct {
	start, end int
	action     bool
}

var (
	navigationOptions = []keys.KeyName{keys.KeyPrev, keys.KeyNext, keys.KeyGoTo}
	actionOptions     = []keys.KeyName{keys.KeyToggleAuto, keys.KeyCopy}
	systemOptions     = []keys.KeyName{keys.KeyFocusNext, keys.KeySections, keys.KeyHelp, keys.KeyQuit}
	compactOptions    = []keys.KeyName{keys.KeyPrev, keys.KeyNext, keys.KeyFocusNext, keys.KeyHelp, keys.KeyQuit}
	emptyOptions      = []keys.KeyName{keys.KeyHelp, keys.KeyQuit}
	helpOptions       = []keys.KeyName{keys.KeyHelp}
	loadingOptions    = []keys.KeyName{keys.KeyQuit}
)

func NewMenu() *Menu {
	m := &Menu{
		state:   StateEmpty,
		keyDown: -1,
	}
	m.updateOptions()
	return m
}

func (m *Menu) Keydown(name keys.KeyName) {
	m.keyDown = name
}

func (m *Menu) ClearKeydown() {
	m.keyDown = -1
}

// SetState updates the menu state and options accordingly
func (m *Menu) SetState(state MenuState) {
	m.state = state
	m.updateOptions()
}

// State returns the current menu state.
func (m *Menu) State() MenuState {
	return m.state
}

// SetSingleLine switches to the short option list used on short terminals.
func (m *Menu) SetSingleLine(singleLine bool) {
	m.singleLine = singleLine
	m.updateOptions()
}

// updateOptions updates the menu options based on current state
func (m *Menu) updateOptions() {
	switch m.state {
	case StateEmpty:
		m.setGroups(emptyOptions)
	case StateLoading:
		m.setGroups(loadingOptions)
	case StateHelp:
		m.setGroups(helpOptions)
	default:
		if m.singleLine {
			m.setGroups(compactOptions)
			return
		}
		m.setGroups(navigationOptions, actionOptions, systemOptions)
		m.groups[1].action = true
	}
}

func (m *Menu) setGroups(groups ...[]keys.KeyName) {
	m.options = m.options[:0]
	m.groups = m.groups[:0]
	for _, g := range groups {
		start := len(m.options)
		m.options = append(m.options, g...)
		m.groups = append(m.groups, menuGroup{start: start, end: len(m.options)})
	}
}

// Options returns the key names currently shown.
func (m *Menu) Options() []keys.KeyName {
	return m.options
}

// SetSize sets the width of the window. The menu will be centered horizontally within this width.
func (m *Menu) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Menu) inActionGroup(i int) bool {
	for _, g := range m.groups {
		if g.action && i >= g.start && i < g.end {
			return true
		}
	}
	return false
}

func (m *Menu) isGroupEnd(i int) bool {
	for _, g := range m.groups {
		if i == g.end-1 {
			return true
		}
	}
	return false
}

func (m *Menu) String() string {
	var s strings.Builder

	for i, k := range m.options {
		binding := keys.GlobalkeyBindings[k]

		var (
			localActionStyle = actionGroupStyle
			localKeyStyle    = keyStyle
			localDescStyle   = descStyle
		)
		if m.keyDown == k {
			localActionStyle = localActionStyle.Underline(true)
			localKeyStyle = localKeyStyle.Underline(true)
			localDescStyle = localDescStyle.Underline(true)
		}

		if m.inActionGroup(i) {
			s.WriteString(localActionStyle.Render(binding.Help().Key))
			s.WriteString(" ")
			s.WriteString(localActionStyle.Render(binding.Help().Desc))
		} else {
			s.WriteString(localKeyStyle.Render(binding.Help().Key))
			s.WriteString(" ")
			s.WriteString(localDescStyle.Render(binding.Help().Desc))
		}

		// Add appropriate separator
		if i != len(m.options)-1 {
			if m.isGroupEnd(i) {
				s.WriteString(sepStyle.Render(verticalSeparator))
			} else {
				s.WriteString(sepStyle.Render(separator))
			}
		}
	}

	centeredMenuText := menuStyle.Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, centeredMenuText)
}
