package ui

import (
	"errors"
	"strings"
	"testing"

	"orthoslide/keys"
	"orthoslide/testing/snapshot"

	"github.com/stretchr/testify/assert"
)

func TestMenuOptionsByState(t *testing.T) {
	m := NewMenu()
	assert.Equal(t, emptyOptions, m.Options())

	m.SetState(StateDefault)
	assert.Len(t, m.Options(), len(navigationOptions)+len(actionOptions)+len(systemOptions))
	assert.Contains(t, m.Options(), keys.KeyToggleAuto)

	m.SetSingleLine(true)
	assert.Equal(t, compactOptions, m.Options())

	m.SetState(StateLoading)
	assert.Equal(t, []keys.KeyName{keys.KeyQuit}, m.Options())

	m.SetState(StateHelp)
	assert.Equal(t, []keys.KeyName{keys.KeyHelp}, m.Options())
}

func TestMenuRendersHelpText(t *testing.T) {
	m := NewMenu()
	m.SetState(StateDefault)
	m.SetSize(120, 1)

	out := m.String()
	snap := snapshot.New(t)
	snap.AssertContains(out, "prev")
	snap.AssertContains(out, "play/pause")
	snap.AssertContains(out, "│")
	snap.AssertFits(out, 120, 1)
}

func TestMenuKeydown(t *testing.T) {
	m := NewMenu()
	m.SetState(StateDefault)
	m.Keydown(keys.KeyNext)
	assert.Equal(t, keys.KeyNext, m.keyDown)
	m.ClearKeydown()
	assert.Equal(t, keys.KeyName(-1), m.keyDown)
}

func TestErrBox(t *testing.T) {
	e := NewErrBox()
	e.SetSize(40, 1)
	assert.Empty(t, strings.TrimSpace(snapshot.StripANSI(e.String())))

	e.SetError(errors.New("content file: line 3\nbad selector"))
	out := e.String()
	snapshot.New(t).AssertContains(out, "content file: line 3//bad selector")
	assert.Error(t, e.Err())

	e.SetError(errors.New("a very long error message that will certainly not fit in forty columns"))
	snapshot.New(t).AssertFits(e.String(), 40, 1)

	e.Clear()
	assert.NoError(t, e.Err())
}

func TestHeader(t *testing.T) {
	h := NewHeader("Summit Orthopedics & Sports Medicine")
	h.SetWidth(80)
	snapshot.New(t).AssertContains(h.String(), "Summit Orthopedics")
	snapshot.New(t).AssertFits(h.String(), 80, 1)
}
