package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

// Every string in the lookup map must be accepted by the binding it names,
// otherwise the menu highlights a key that does nothing.
func TestKeyStringsMatchBindings(t *testing.T) {
	for s, name := range GlobalKeyStringsMap {
		binding, ok := GlobalkeyBindings[name]
		if !assert.True(t, ok, "no binding for %q", s) {
			continue
		}
		assert.Contains(t, binding.Keys(), s, "binding for %q", s)
	}
}

func TestEveryBindingHasHelp(t *testing.T) {
	for name, binding := range GlobalkeyBindings {
		assert.NotEmpty(t, binding.Help().Key, "key name %d", name)
		assert.NotEmpty(t, binding.Help().Desc, "key name %d", name)
	}
}

func TestBindingsMatchKeyMsgs(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want KeyName
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, KeyPrev},
		{tea.KeyMsg{Type: tea.KeyRight}, KeyNext},
		{tea.KeyMsg{Type: tea.KeyTab}, KeyFocusNext},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, KeyFocusPrev},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, KeyQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")}, KeyNext},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("7")}, KeyGoTo},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			assert.True(t, key.Matches(tt.msg, GlobalkeyBindings[tt.want]))
			name, ok := Lookup(tt.msg.String())
			assert.True(t, ok)
			assert.Equal(t, tt.want, name)
		})
	}
}

func TestDigit(t *testing.T) {
	i, ok := Digit("1")
	assert.True(t, ok)
	assert.Equal(t, 0, i)

	i, ok = Digit("9")
	assert.True(t, ok)
	assert.Equal(t, 8, i)

	for _, s := range []string{"0", "a", "10", ""} {
		_, ok := Digit(s)
		assert.False(t, ok, s)
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := KeyMap{}
	assert.Len(t, km.ShortHelp(), 5)
	assert.Len(t, km.FullHelp(), 3)
}
