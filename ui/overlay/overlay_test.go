package overlay

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"orthoslide/testing/harness"
	"orthoslide/testing/snapshot"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	harness.UseASCIIProfile()
	os.Exit(m.Run())
}

func TestPlaceOverlay(t *testing.T) {
	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 10)+"\n", 5), "\n")

	t.Run("centered", func(t *testing.T) {
		out := PlaceOverlay(0, 0, "ab\ncd", bg, false, true)
		lines := strings.Split(out, "\n")
		require.Len(t, lines, 5)
		assert.Equal(t, "..........", lines[0])
		assert.Equal(t, "....ab....", lines[1])
		assert.Equal(t, "....cd....", lines[2])
		assert.Equal(t, "..........", lines[4])
	})

	t.Run("positioned", func(t *testing.T) {
		out := PlaceOverlay(1, 0, "xy", bg, false, false)
		lines := strings.Split(out, "\n")
		assert.Equal(t, ".xy.......", lines[0])
		assert.Equal(t, "..........", lines[1])
	})

	t.Run("position is clamped", func(t *testing.T) {
		out := PlaceOverlay(50, 50, "xy", bg, false, false)
		lines := strings.Split(out, "\n")
		assert.Equal(t, "........xy", lines[4])
	})

	t.Run("foreground larger than background", func(t *testing.T) {
		fg := strings.Repeat("#", 20)
		assert.Equal(t, fg, PlaceOverlay(0, 0, fg, "..\n..", false, true))
	})

	t.Run("keeps background size", func(t *testing.T) {
		out := PlaceOverlay(0, 0, "ab\ncd", bg, true, true)
		snapshot.New(t).AssertFits(out, 10, 5)
	})
}

func TestCutLeft(t *testing.T) {
	assert.Equal(t, "cdef", cutLeft("abcdef", 2))
	assert.Equal(t, "", cutLeft("ab", 5))
	assert.Equal(t, "abc", cutLeft("abc", 0))
}

func TestWhitespaceRender(t *testing.T) {
	ws := whitespace{chars: "-="}
	assert.Equal(t, "-=-=-", ws.render(5))
	assert.Equal(t, "   ", whitespace{}.render(3))
}

func TestLoadingOverlay(t *testing.T) {
	s := spinner.New()
	l := NewLoadingOverlay("Orthopedic Associates", &s)
	l.SetWidth(40)
	assert.Equal(t, "Loading…", l.Status())

	out := snapshot.StripANSI(l.Render())
	assert.Contains(t, out, "Orthopedic Associates")
	assert.Contains(t, out, "Loading…")

	l.SetStatus("Mounting 4 carousels")
	assert.Contains(t, snapshot.StripANSI(l.Render()), "Mounting 4 carousels")

	noSpinner := NewLoadingOverlay("Page", nil)
	assert.Contains(t, snapshot.StripANSI(noSpinner.Render()), "Loading…")
}

func TestHelpOverlay(t *testing.T) {
	h := NewHelpOverlay("Keys", "log: /tmp/orthoslide.log")
	h.SetWidth(90)

	out := snapshot.StripANSI(h.Render())
	for _, want := range []string{"Keys", "prev", "next", "play/pause", "copy caption", "log: /tmp/orthoslide.log"} {
		assert.Contains(t, out, want)
	}

	assert.False(t, h.Dismissed)
	assert.True(t, h.HandleKeyPress(harness.Key("x")))
	assert.True(t, h.Dismissed)
}

func pickerOptions() []SectionOption {
	return []SectionOption{
		{Selector: "#hero", Heading: "Hero", Detail: "3 slides, wrap", Mounted: true},
		{Selector: "#missing", Heading: "Missing", Mounted: false},
		{Selector: "#services", Heading: "Services", Detail: "6 slides, clamp", Mounted: true},
	}
}

func TestSectionPicker(t *testing.T) {
	t.Run("cursor starts on current", func(t *testing.T) {
		p := NewSectionPickerOverlay(pickerOptions(), "#services")
		assert.Equal(t, 2, p.Cursor())
	})

	t.Run("cursor falls back to first mounted", func(t *testing.T) {
		p := NewSectionPickerOverlay(pickerOptions(), "#missing")
		assert.Equal(t, 0, p.Cursor())
	})

	t.Run("nothing mounted", func(t *testing.T) {
		p := NewSectionPickerOverlay([]SectionOption{{Selector: "#a"}}, "#a")
		assert.Equal(t, -1, p.Cursor())
		assert.False(t, p.HandleKeyPress(harness.Key("enter")))
		assert.False(t, p.HandleKeyPress(harness.Key("j")))
		assert.Empty(t, p.Selected)
	})

	t.Run("navigation skips unmounted", func(t *testing.T) {
		p := NewSectionPickerOverlay(pickerOptions(), "#hero")
		assert.False(t, p.HandleKeyPress(harness.Key("down")))
		assert.Equal(t, 2, p.Cursor())
		p.HandleKeyPress(harness.Key("j"))
		assert.Equal(t, 0, p.Cursor(), "wraps to the top")
		p.HandleKeyPress(harness.Key("shift+tab"))
		assert.Equal(t, 2, p.Cursor())
	})

	t.Run("enter selects", func(t *testing.T) {
		p := NewSectionPickerOverlay(pickerOptions(), "#hero")
		p.HandleKeyPress(harness.Key("tab"))
		assert.True(t, p.HandleKeyPress(harness.Key("enter")))
		assert.True(t, p.Dismissed)
		assert.Equal(t, "#services", p.Selected)
	})

	t.Run("esc dismisses without selecting", func(t *testing.T) {
		p := NewSectionPickerOverlay(pickerOptions(), "#hero")
		assert.True(t, p.HandleKeyPress(harness.Key("esc")))
		assert.True(t, p.Dismissed)
		assert.Empty(t, p.Selected)
	})

	t.Run("render", func(t *testing.T) {
		p := NewSectionPickerOverlay(pickerOptions(), "#hero")
		p.SetWidth(50)
		out := snapshot.StripANSI(p.Render())
		assert.Contains(t, out, "Jump to Section")
		assert.Contains(t, out, "> Hero")
		assert.Contains(t, out, "Missing (not mounted)")
		assert.Contains(t, out, "#services  6 slides, clamp")
	})
}

func contentTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "home.yaml"), []byte("sections: []\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden.yaml"), []byte(""), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "pages"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pages", "about.yml"), []byte("sections: []\n"), 0o644))
	return dir
}

func entryNames(cb *ContentBrowserOverlay) []string {
	var names []string
	for _, e := range cb.Entries() {
		names = append(names, e.Name)
	}
	return names
}

func TestContentBrowserListing(t *testing.T) {
	dir := contentTree(t)
	cb, err := NewContentBrowserOverlay(dir)
	require.NoError(t, err)
	cb.SetSize(80, 30)

	assert.Equal(t, []string{filepath.Base(dir), "home.yaml", "pages"}, entryNames(cb))
	assert.Equal(t, dir, cb.Selected().Path)

	_, err = NewContentBrowserOverlay(filepath.Join(dir, "nope"))
	assert.Error(t, err)
}

func TestContentBrowserExpandAndSubmit(t *testing.T) {
	dir := contentTree(t)
	cb, err := NewContentBrowserOverlay(dir)
	require.NoError(t, err)
	cb.SetSize(80, 30)

	cb.HandleKeyPress(harness.Key("G"))
	assert.Equal(t, "pages", cb.Selected().Name)

	assert.False(t, cb.HandleKeyPress(harness.Key("enter")), "enter on a directory expands it")
	assert.Contains(t, entryNames(cb), "about.yml")

	cb.HandleKeyPress(harness.Key("j"))
	require.Equal(t, "about.yml", cb.Selected().Name)
	assert.Equal(t, 2, cb.Selected().Depth)

	assert.True(t, cb.HandleKeyPress(harness.Key("enter")))
	assert.True(t, cb.Submitted)
	assert.Equal(t, filepath.Join(dir, "pages", "about.yml"), cb.SelectedPath)
}

func TestContentBrowserCollapse(t *testing.T) {
	dir := contentTree(t)
	cb, err := NewContentBrowserOverlay(dir)
	require.NoError(t, err)
	cb.SetSize(80, 30)

	cb.HandleKeyPress(harness.Key("G"))
	cb.HandleKeyPress(harness.Key("l"))
	require.Len(t, cb.Entries(), 4)

	cb.HandleKeyPress(harness.Key("j"))
	cb.HandleKeyPress(harness.Key("h"))
	assert.Equal(t, "pages", cb.Selected().Name, "h on a file moves to its parent")

	cb.HandleKeyPress(harness.Key("h"))
	assert.Len(t, cb.Entries(), 3, "h on an open directory collapses it")

	cb.HandleKeyPress(harness.Key("g"))
	assert.Equal(t, 0, cb.selectedIdx)
	assert.False(t, cb.HandleKeyPress(harness.Key("enter")), "enter on the root is not a submit")
	assert.False(t, cb.Submitted)
}

func TestContentBrowserGoUpAndCancel(t *testing.T) {
	dir := contentTree(t)
	cb, err := NewContentBrowserOverlay(filepath.Join(dir, "pages"))
	require.NoError(t, err)
	cb.SetSize(80, 30)

	cb.HandleKeyPress(harness.Key("u"))
	assert.Equal(t, dir, cb.Entries()[0].Path)

	assert.True(t, cb.HandleKeyPress(harness.Key("esc")))
	assert.True(t, cb.Canceled)
	assert.False(t, cb.Submitted)
}

func TestContentBrowserRender(t *testing.T) {
	dir := contentTree(t)
	cb, err := NewContentBrowserOverlay(dir)
	require.NoError(t, err)
	cb.SetSize(70, 24)

	out := snapshot.StripANSI(cb.Render())
	assert.Contains(t, out, "Open Page Content")
	assert.Contains(t, out, "[yml] home.yaml")
	assert.Contains(t, out, "[dir] pages")
	assert.NotContains(t, out, "notes.txt")
	assert.NotContains(t, out, ".hidden.yaml")
}

func TestContentBrowserScroll(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), nil, 0o644))
	}
	cb, err := NewContentBrowserOverlay(dir)
	require.NoError(t, err)
	cb.SetSize(60, 15) // four visible rows

	cb.HandleKeyPress(harness.Key("G"))
	assert.Equal(t, 8, cb.selectedIdx)
	assert.Equal(t, 5, cb.scrollOffset)
	assert.Contains(t, snapshot.StripANSI(cb.Render()), "(6-9 of 9)")

	cb.HandleKeyPress(harness.Key("g"))
	assert.Equal(t, 0, cb.scrollOffset)
}
