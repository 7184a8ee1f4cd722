package ui

import (
	"fmt"
	"strings"

	"orthoslide/carousel"
	"orthoslide/inspect"
	"orthoslide/page"
	"orthoslide/ui/layout"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const ellipsis = "…"

var emptyStyle = lipgloss.NewStyle().
	Foreground(TextMuted).
	Italic(true)

var captionStyle = lipgloss.NewStyle().Foreground(TextSecondary)

var authorStyle = lipgloss.NewStyle().
	Foreground(TextMuted).
	Italic(true)

var offsetStyle = lipgloss.NewStyle().Foreground(TextMuted)

// CarouselView renders one page section from its carousel's latest frame.
// It never talks to the engine; the app pushes frames in.
type CarouselView struct {
	section *page.Section
	frame   carousel.Frame

	// hasAuto is set when the carousel has an auto-advance interval at all.
	hasAuto bool
	running bool

	focused   bool
	collapsed bool
	// expanded shows captions in full instead of the mode's line limit.
	expanded bool

	width, height int
	mode          layout.LayoutMode
	degradation   layout.Degradation
}

// NewCarouselView creates a view for section. Until a frame arrives it shows
// the first slide.
func NewCarouselView(section *page.Section) *CarouselView {
	n := section.SlideCount()
	return &CarouselView{
		section: section,
		frame: carousel.Frame{
			VisibleCount: 1,
			SlideCount:   n,
			WindowEnd:    min(1, n),
			PrevDisabled: true,
			NextDisabled: n <= 1,
		},
		mode: layout.LayoutStandard,
	}
}

// Section returns the page section the view renders.
func (v *CarouselView) Section() *page.Section {
	return v.section
}

// SetFrame records the carousel's latest frame.
func (v *CarouselView) SetFrame(f carousel.Frame) {
	v.frame = f
}

// Frame returns the last frame pushed into the view.
func (v *CarouselView) Frame() carousel.Frame {
	return v.frame
}

// SetAutoAdvance updates the auto-advance badge. hasAuto is false for
// carousels without an interval, which show no badge.
func (v *CarouselView) SetAutoAdvance(hasAuto, running bool) {
	v.hasAuto = hasAuto
	v.running = running
}

func (v *CarouselView) SetFocused(focused bool) {
	v.focused = focused
}

// SetCollapsed folds the view to a single summary line.
func (v *CarouselView) SetCollapsed(collapsed bool) {
	v.collapsed = collapsed
}

// ToggleExpanded switches captions between read-more and read-less and
// returns the new state.
func (v *CarouselView) ToggleExpanded() bool {
	v.expanded = !v.expanded
	return v.expanded
}

func (v *CarouselView) Expanded() bool {
	return v.expanded
}

func (v *CarouselView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// SetLayout applies the current layout mode and degradation flags.
func (v *CarouselView) SetLayout(mode layout.LayoutMode, d layout.Degradation) {
	v.mode = mode
	v.degradation = d
}

// Height returns the number of rows the view occupies.
func (v *CarouselView) Height() int {
	if v.collapsed {
		return layout.CollapsedHeight
	}
	return v.height
}

// CurrentSlide returns the slide at the frame's index.
func (v *CarouselView) CurrentSlide() (page.Slide, bool) {
	return v.section.Slide(v.frame.Index)
}

func (v *CarouselView) String() string {
	if v.width <= 0 {
		return ""
	}
	if v.collapsed {
		return v.renderCollapsed()
	}

	innerWidth := max(v.width-4, 1)
	rows := []string{v.renderHeader(innerWidth)}

	if v.frame.SlideCount == 0 {
		rows = append(rows, lipgloss.PlaceHorizontal(innerWidth, lipgloss.Center, emptyStyle.Render("No slides")))
	} else {
		rows = append(rows, v.renderCards(innerWidth))
	}

	if footer := v.renderFooter(innerWidth); footer != "" {
		rows = append(rows, footer)
	}

	box := BorderStyles.Default
	if v.focused {
		box = BorderStyles.Focus
	}
	return box.
		Padding(0, 1).
		Width(v.width - 2).
		Height(max(v.height-2, 1)).
		MaxHeight(max(v.height, 3)).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (v *CarouselView) positionLabel() string {
	f := v.frame
	if f.SlideCount == 0 {
		return "0/0"
	}
	if f.WindowEnd-f.WindowStart > 1 {
		return fmt.Sprintf("%d-%d/%d", f.WindowStart+1, f.WindowEnd, f.SlideCount)
	}
	return fmt.Sprintf("%d/%d", f.Index+1, f.SlideCount)
}

func (v *CarouselView) renderHeader(width int) string {
	var controls []string
	if v.section.HasPrev {
		controls = append(controls, affordance(IconPrev, v.frame.PrevDisabled))
	}
	controls = append(controls, TextStyles.Secondary.Render(v.positionLabel()))
	if v.section.HasNext {
		controls = append(controls, affordance(IconNext, v.frame.NextDisabled))
	}
	if v.hasAuto {
		if v.running {
			controls = append(controls, StatusBadge(IconPlaying, StatusRunning))
		} else {
			controls = append(controls, StatusBadge(IconPaused, StatusPaused))
		}
	}
	right := strings.Join(controls, " ")

	room := width - lipgloss.Width(right) - 3
	heading := runewidth.Truncate(v.section.Heading, max(room, 0), ellipsis)
	left := TextStyles.Heading.Render(IconExpanded + " " + heading)

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

func affordance(icon string, disabled bool) string {
	if disabled {
		return ControlStyles.Disabled.Render(icon)
	}
	return ControlStyles.Enabled.Render(icon)
}

// captionBudget returns how many caption lines fit in a card, given the
// section height and what else the card must show.
func (v *CarouselView) captionBudget(titleLines, authorLines int) int {
	if !v.degradation.ShouldShowCaption() {
		return 0
	}
	// border, header, card border, title, author, footer
	used := 2 + 1 + 2 + titleLines + authorLines
	if v.hasFooter() {
		used++
	}
	room := v.height - used
	if v.expanded {
		return max(room, 0)
	}
	return max(min(layout.CaptionLines(v.mode), room), 0)
}

func (v *CarouselView) hasTitles() bool {
	for _, s := range v.section.Slides {
		if s.Title != "" {
			return true
		}
	}
	return false
}

func (v *CarouselView) hasAuthors() bool {
	if !v.degradation.ShouldShowAuthor() {
		return false
	}
	for _, s := range v.section.Slides {
		if s.Author != "" {
			return true
		}
	}
	return false
}

func (v *CarouselView) renderCards(width int) string {
	f := v.frame
	visible := max(f.WindowEnd-f.WindowStart, 1)
	cardWidth := layout.CardWidth(width+4, visible)
	contentWidth := max(cardWidth-4, 1)

	titleLines, authorLines := 0, 0
	if v.hasTitles() {
		titleLines = 1
	}
	if v.hasAuthors() {
		authorLines = 1
	}
	captionLines := v.captionBudget(titleLines, authorLines)

	style := CardStyle()
	if v.degradation.SimplifyBorders {
		style = PlainCardStyle()
	}
	style = style.Width(cardWidth - 2).Height(max(titleLines+captionLines+authorLines, 1))

	cards := make([]string, 0, visible*2)
	for i := f.WindowStart; i < f.WindowEnd; i++ {
		slide, ok := v.section.Slide(i)
		if !ok {
			continue
		}
		var lines []string
		if titleLines > 0 {
			lines = append(lines, TextStyles.Primary.Bold(true).Render(
				truncate.StringWithTail(slide.Title, uint(contentWidth), ellipsis)))
		}
		for _, line := range fitCaption(slide.Caption, contentWidth, captionLines) {
			lines = append(lines, captionStyle.Render(line))
		}
		if authorLines > 0 && slide.Author != "" {
			lines = append(lines, authorStyle.Render(
				truncate.StringWithTail("- "+slide.Author, uint(contentWidth), ellipsis)))
		}
		if len(cards) > 0 {
			cards = append(cards, strings.Repeat(" ", layout.GapCells))
		}
		cards = append(cards, style.Render(strings.Join(lines, "\n")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// fitCaption wraps caption to width and keeps at most n lines, marking the
// last kept line when text was dropped.
func fitCaption(caption string, width, n int) []string {
	if n <= 0 || caption == "" {
		return nil
	}
	wrapped := strings.Split(wordwrap.String(caption, width), "\n")
	cut := len(wrapped) > n
	if cut {
		wrapped = wrapped[:n]
	}
	for i, line := range wrapped {
		line = strings.TrimRight(line, " ")
		if cut && i == len(wrapped)-1 && runewidth.StringWidth(line)+1 <= width {
			line += ellipsis
		}
		wrapped[i] = truncate.StringWithTail(line, uint(width), ellipsis)
	}
	return wrapped
}

func (v *CarouselView) hasFooter() bool {
	return v.degradation.ShouldShowIndicator() || !v.degradation.HideOffset
}

func (v *CarouselView) renderFooter(width int) string {
	if !v.hasFooter() || v.frame.SlideCount == 0 {
		return ""
	}

	var dots string
	if v.degradation.ShouldShowIndicator() {
		dots = v.renderDots(width)
	}
	var offset string
	if !v.degradation.HideOffset {
		offset = offsetStyle.Render(fmt.Sprintf("offset %dpx", v.frame.Offset))
	}
	if dots == "" {
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, offset)
	}

	gap := width - lipgloss.Width(dots) - lipgloss.Width(offset)
	if offset == "" || gap < 1 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, dots)
	}
	// Dots centered, offset pinned right.
	leftPad := max((width-lipgloss.Width(dots))/2, 0)
	rightPad := max(width-leftPad-lipgloss.Width(dots)-lipgloss.Width(offset), 1)
	return strings.Repeat(" ", leftPad) + dots + strings.Repeat(" ", rightPad) + offset
}

// renderDots draws one dot per reachable position.
func (v *CarouselView) renderDots(width int) string {
	f := v.frame
	positions := max(f.SlideCount-f.VisibleCount+1, 1)
	if positions*2-1 > width {
		return TextStyles.Muted.Render(v.positionLabel())
	}
	dots := make([]string, positions)
	for i := range dots {
		if i == f.Index {
			dots[i] = ControlStyles.DotActive.Render(IconDotActive)
		} else {
			dots[i] = ControlStyles.Dot.Render(IconDot)
		}
	}
	return strings.Join(dots, " ")
}

func (v *CarouselView) renderCollapsed() string {
	style := TextStyles.Muted
	if v.focused {
		style = ControlStyles.Enabled
	}
	line := fmt.Sprintf(" %s %s  %s", IconCollapsed, v.section.Heading, v.positionLabel())
	line = truncate.StringWithTail(line, uint(max(v.width, 0)), ellipsis)
	return style.Width(v.width).Render(line)
}

// InspectNode implements inspect.Introspectable.
func (v *CarouselView) InspectNode() *inspect.Node {
	f := v.frame
	node := inspect.NewNode("CarouselView").
		WithID(v.section.Selector).
		WithBounds(0, 0, v.width, v.Height()).
		WithWindow(f.WindowStart, f.WindowEnd, f.SlideCount, f.Offset).
		WithState("index", f.Index).
		WithState("visible_count", f.VisibleCount).
		WithState("prev_disabled", f.PrevDisabled).
		WithState("next_disabled", f.NextDisabled).
		WithState("auto_advance", v.hasAuto && v.running).
		WithState("focused", v.focused).
		WithState("collapsed", v.collapsed).
		WithState("expanded", v.expanded).
		WithContent(v.section.Heading)

	if v.degradation.SimplifyBorders {
		node.WithStyles(inspect.ExtractStyleInfo(PlainCardStyle(), "card", "plain"))
	} else {
		node.WithStyles(inspect.ExtractStyleInfo(CardStyle(), "card"))
	}

	for i, slide := range v.section.Slides {
		child := inspect.NewNode("Slide").WithID(slide.ID).WithContent(slide.Title)
		if v.collapsed || !node.Window.Contains(i) {
			child.Hidden()
		}
		node.AddChild(child)
	}
	return node
}
