package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var errStyle = lipgloss.NewStyle().Foreground(StatusError)

// ErrBox is a one-line error message area under the menu.
type ErrBox struct {
	height, width int
	err           error
}

func NewErrBox() *ErrBox {
	return &ErrBox{}
}

func (e *ErrBox) SetError(err error) {
	e.err = err
}

func (e *ErrBox) Clear() {
	e.err = nil
}

// Err returns the error currently displayed, if any.
func (e *ErrBox) Err() error {
	return e.err
}

func (e *ErrBox) SetSize(width, height int) {
	e.width = width
	e.height = height
}

func (e *ErrBox) String() string {
	var msg string
	if e.err != nil {
		msg = strings.Join(strings.Split(e.err.Error(), "\n"), "//")
		if e.width > 3 {
			msg = runewidth.Truncate(msg, e.width-3, "...")
		}
	}
	return lipgloss.Place(e.width, e.height, lipgloss.Center, lipgloss.Center, errStyle.Render(msg))
}

// Header is the page title bar.
type Header struct {
	title string
	width int
}

func NewHeader(title string) *Header {
	return &Header{title: title}
}

func (h *Header) SetWidth(width int) {
	h.width = width
}

func (h *Header) String() string {
	title := runewidth.Truncate(h.title, max(h.width-2, 0), "…")
	return lipgloss.PlaceHorizontal(h.width, lipgloss.Left, mainTitle.Render(title))
}
