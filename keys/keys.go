package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyName int

const (
	KeyPrev KeyName = iota
	KeyNext
	KeyFirst
	KeyLast
	KeyGoTo

	KeyFocusNext
	KeyFocusPrev
	KeySections

	KeyToggleAuto
	KeyCopy
	KeyReadMore
	KeyOpen

	KeyHelp
	KeyQuit
)

// GlobalKeyStringsMap is a global, immutable map string to keybinding.
var GlobalKeyStringsMap = map[string]KeyName{
	"left":      KeyPrev,
	"h":         KeyPrev,
	"right":     KeyNext,
	"l":         KeyNext,
	"home":      KeyFirst,
	"g":         KeyFirst,
	"end":       KeyLast,
	"G":         KeyLast,
	"1":         KeyGoTo,
	"2":         KeyGoTo,
	"3":         KeyGoTo,
	"4":         KeyGoTo,
	"5":         KeyGoTo,
	"6":         KeyGoTo,
	"7":         KeyGoTo,
	"8":         KeyGoTo,
	"9":         KeyGoTo,
	"tab":       KeyFocusNext,
	"shift+tab": KeyFocusPrev,
	"s":         KeySections,
	"p":         KeyToggleAuto,
	"y":         KeyCopy,
	"e":         KeyReadMore,
	"o":         KeyOpen,
	"?":         KeyHelp,
	"q":         KeyQuit,
	"ctrl+c":    KeyQuit,
}

// GlobalkeyBindings is a global, immutable map of KeyName to keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyPrev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "prev"),
	),
	KeyNext: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next"),
	),
	KeyFirst: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "first"),
	),
	KeyLast: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "last"),
	),
	KeyGoTo: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "go to"),
	),
	KeyFocusNext: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next section"),
	),
	KeyFocusPrev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev section"),
	),
	KeySections: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sections"),
	),
	KeyToggleAuto: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "play/pause"),
	),
	KeyCopy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy caption"),
	),
	KeyReadMore: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "read more/less"),
	),
	KeyOpen: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open content"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// KeyMap groups the bindings for bubbles/help.
type KeyMap struct{}

// ShortHelp implements help.KeyMap.
func (KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		GlobalkeyBindings[KeyPrev],
		GlobalkeyBindings[KeyNext],
		GlobalkeyBindings[KeyFocusNext],
		GlobalkeyBindings[KeyHelp],
		GlobalkeyBindings[KeyQuit],
	}
}

// FullHelp implements help.KeyMap. Columns are navigation, sections and
// actions.
func (KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			GlobalkeyBindings[KeyPrev],
			GlobalkeyBindings[KeyNext],
			GlobalkeyBindings[KeyFirst],
			GlobalkeyBindings[KeyLast],
			GlobalkeyBindings[KeyGoTo],
		},
		{
			GlobalkeyBindings[KeyFocusNext],
			GlobalkeyBindings[KeyFocusPrev],
			GlobalkeyBindings[KeySections],
		},
		{
			GlobalkeyBindings[KeyToggleAuto],
			GlobalkeyBindings[KeyCopy],
			GlobalkeyBindings[KeyReadMore],
			GlobalkeyBindings[KeyOpen],
			GlobalkeyBindings[KeyHelp],
			GlobalkeyBindings[KeyQuit],
		},
	}
}

// Lookup resolves a key string to its name.
func Lookup(s string) (KeyName, bool) {
	name, ok := GlobalKeyStringsMap[s]
	return name, ok
}

// Digit returns the zero-based slide index for a goto key, or false.
func Digit(s string) (int, bool) {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '1'), true
}
