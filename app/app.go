package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"orthoslide/carousel"
	"orthoslide/config"
	"orthoslide/inspect"
	"orthoslide/keys"
	"orthoslide/log"
	"orthoslide/page"
	"orthoslide/schedule"
	"orthoslide/ui"
	"orthoslide/ui/layout"
	"orthoslide/ui/overlay"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Run is the main entrypoint into the application.
func Run(ctx context.Context, cfg *config.Config, pg *page.Page) error {
	clock := &loopClock{}
	p := tea.NewProgram(
		newHome(ctx, cfg, pg, clock),
		tea.WithAltScreen(),
	)
	clock.attach(p)
	_, err := p.Run()
	return err
}

type state int

const (
	// stateLoading is the state while the page loader is displayed.
	stateLoading state = iota
	stateDefault
	// stateHelp is the state when the help screen is displayed.
	stateHelp
	// statePicker is the state when the section picker is displayed.
	statePicker
	// stateBrowse is the state when the content browser is displayed.
	stateBrowse
)

func (s state) String() string {
	switch s {
	case stateLoading:
		return "loading"
	case stateDefault:
		return "default"
	case stateHelp:
		return "help"
	case statePicker:
		return "picker"
	case stateBrowse:
		return "browse"
	default:
		return "unknown"
	}
}

// mounted pairs a live carousel with the view that renders it.
type mounted struct {
	carousel *carousel.Carousel
	view     *ui.CarouselView
}

type home struct {
	ctx context.Context

	// -- Configuration --

	cfg   *config.Config
	page  *page.Page
	clock schedule.Clock

	// -- State --

	// state is the current discrete state of the application
	state state
	// sections are the mounted carousels in page order
	sections []*mounted
	// focus indexes sections; -1 when nothing is mounted
	focus int
	// ready is set once the first window size has mounted the carousels
	ready bool
	// loaderDone is set once the loader delay has elapsed
	loaderDone bool

	width, height int
	constraints   layout.Constraints
	degradation   layout.Degradation

	// resize feeds viewport widths to the carousels on the trailing edge
	resize *schedule.Debouncer[int]

	// copyToClipboard writes text to the system clipboard
	copyToClipboard func(string) error

	// -- UI Components --

	header *ui.Header
	menu   *ui.Menu
	errBox *ui.ErrBox
	// global spinner instance. we plumb this down to where it's needed
	spinner spinner.Model

	loadingOverlay *overlay.LoadingOverlay
	helpOverlay    *overlay.HelpOverlay
	sectionPicker  *overlay.SectionPickerOverlay
	contentBrowser *overlay.ContentBrowserOverlay
}

func newHome(ctx context.Context, cfg *config.Config, pg *page.Page, clock schedule.Clock) *home {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if pg == nil {
		pg = page.Default()
	}

	h := &home{
		ctx:             ctx,
		cfg:             cfg,
		page:            pg,
		clock:           clock,
		state:           stateLoading,
		focus:           -1,
		spinner:         spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		header:          ui.NewHeader(pg.Title),
		menu:            ui.NewMenu(),
		errBox:          ui.NewErrBox(),
		copyToClipboard: clipboard.WriteAll,
	}
	h.menu.SetState(ui.StateLoading)
	h.loadingOverlay = overlay.NewLoadingOverlay(pg.Title, &h.spinner)
	h.loadingOverlay.SetWidth(50)
	h.resize = schedule.NewDebouncer(clock, cfg.ResizeDebounce(), schedule.Trailing, h.applyViewport)
	return h
}

// viewportPx converts terminal columns to the carousels' pixel viewport.
func (m *home) viewportPx(cols int) int {
	return layout.ViewportWidth(cols, m.cfg.CellWidthPx)
}

// mount creates a carousel for every configured selector the page has.
// Missing sections are skipped and reported in the section picker.
func (m *home) mount() {
	m.page.SetViewportWidth(m.viewportPx(m.width))
	m.sections = m.sections[:0]
	for _, cc := range m.cfg.Carousels {
		section, ok := m.page.Section(cc.Selector)
		if !ok {
			log.WarningLog.Printf("no section %s on page %q", cc.Selector, m.page.Title)
			continue
		}
		s := &mounted{view: ui.NewCarouselView(section)}
		c, ok := carousel.Mount(m.page, cc.Selector, cc.Options(m.clock, s.view.SetFrame))
		if !ok {
			continue
		}
		s.carousel = c
		s.view.SetFrame(c.Frame())
		m.sections = append(m.sections, s)
	}

	m.focus = -1
	if len(m.sections) > 0 {
		m.focus = 0
	}
	if m.cfg.Focus != "" {
		m.focusSelector(m.cfg.Focus)
	}
	log.InfoLog.Printf("mounted %d of %d carousels", len(m.sections), len(m.cfg.Carousels))
}

// unmount stops every auto-advance and drops the carousels.
func (m *home) unmount() {
	m.resize.Cancel()
	for _, s := range m.sections {
		s.carousel.StopAutoAdvance()
	}
	log.Debug("unmounted %d carousels from %q", len(m.sections), m.page.Title)
	m.sections = nil
	m.focus = -1
}

// applyViewport is the resize debouncer's trailing-edge action.
func (m *home) applyViewport(px int) {
	log.LayoutTrace("viewport %dpx", px)
	m.page.SetViewportWidth(px)
	for _, s := range m.sections {
		s.carousel.RecomputeVisibleCount(px)
		m.measureItemWidth(s)
	}
}

// measureItemWidth feeds the carousel the pixel width of one rendered card,
// which changes with both the section width and the visible count.
func (m *home) measureItemWidth(s *mounted) {
	cells := layout.CardWidth(m.constraints.SectionWidth, s.carousel.VisibleCount())
	s.carousel.SetItemWidth(cells * m.cfg.CellWidthPx)
}

func (m *home) focused() *mounted {
	if m.focus < 0 || m.focus >= len(m.sections) {
		return nil
	}
	return m.sections[m.focus]
}

// updateHandleWindowSizeEvent sets the sizes of the components.
// The components will try to render inside their bounds.
func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	m.width, m.height = msg.Width, msg.Height

	if !m.ready {
		m.ready = true
		m.mount()
		m.scheduleLoaderDone()
	} else {
		m.resize.Call(m.viewportPx(msg.Width))
	}

	m.relayout()
}

// relayout recomputes constraints and pushes sizes into the components.
func (m *home) relayout() {
	m.constraints = layout.ComputeConstraints(m.width, m.height, len(m.sections))
	m.degradation = layout.ComputeDegradation(m.constraints)
	c, d := m.constraints, m.degradation
	log.LayoutTrace("%dx%d mode=%s section=%dx%d accordion=%v",
		m.width, m.height, c.Mode, c.SectionWidth, c.SectionHeight, c.UseAccordion)

	m.header.SetWidth(m.width)
	m.errBox.SetSize(m.width, c.ErrBoxHeight)
	m.menu.SetSize(m.width, c.MenuHeight)
	m.menu.SetSingleLine(d.SingleLineMenu || m.width < layout.StandardWidth)

	for i, s := range m.sections {
		s.view.SetLayout(c.Mode, d)
		s.view.SetSize(c.SectionWidth, c.SectionHeight)
		s.view.SetFocused(i == m.focus)
		s.view.SetCollapsed(c.UseAccordion && i != m.focus)
		m.measureItemWidth(s)
	}

	ow, _ := layout.ComputeOverlaySize(m.width, m.height, 70, 20)
	if m.helpOverlay != nil {
		m.helpOverlay.SetWidth(ow)
	}
	if m.sectionPicker != nil {
		m.sectionPicker.SetWidth(ow)
	}
	if m.contentBrowser != nil {
		m.contentBrowser.SetSize(ow, m.height-2*layout.OverlayMargin)
	}
}

// syncAutoAdvance pushes the auto-advance state of every carousel into its view.
func (m *home) syncAutoAdvance() {
	for _, s := range m.sections {
		s.view.SetAutoAdvance(s.carousel.AutoAdvanceInterval() > 0, s.carousel.AutoAdvancing())
	}
}

// syncMenuState picks the menu options for the current state.
func (m *home) syncMenuState() {
	switch {
	case m.state == stateLoading:
		m.menu.SetState(ui.StateLoading)
	case m.state != stateDefault:
		m.menu.SetState(ui.StateHelp)
	case len(m.sections) == 0:
		m.menu.SetState(ui.StateEmpty)
	default:
		m.menu.SetState(ui.StateDefault)
	}
}

// scheduleLoaderDone hides the loader once the configured delay has passed.
func (m *home) scheduleLoaderDone() {
	delay := m.cfg.LoaderDelay()
	if delay <= 0 {
		m.finishLoading()
		return
	}
	m.loadingOverlay.SetStatus(fmt.Sprintf("Mounting %d carousels…", len(m.sections)))
	m.clock.AfterFunc(delay, m.finishLoading)
}

func (m *home) finishLoading() {
	if m.loaderDone {
		return
	}
	m.loaderDone = true
	m.loadingOverlay = nil
	if m.state == stateLoading {
		m.state = stateDefault
	}
	m.syncMenuState()
}

func (m *home) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	defer m.syncAutoAdvance()

	switch msg := msg.(type) {
	case timerMsg:
		msg.fn()
		return m, nil
	case hideErrMsg:
		m.errBox.Clear()
	case keyupMsg:
		m.menu.ClearKeydown()
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.updateHandleWindowSizeEvent(msg)
		return m, nil
	case error:
		return m, m.handleError(msg)
	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleMenuHighlighting returns a command to highlight the pressed key in the menu.
// This is purely visual - it briefly underlines the corresponding menu item.
func (m *home) handleMenuHighlighting(msg tea.KeyMsg) tea.Cmd {
	if m.state != stateDefault {
		return nil
	}
	name, ok := keys.Lookup(msg.String())
	if !ok {
		return nil
	}
	return m.keydownCallback(name)
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	log.InputTrace("key %q in state %s", msg.String(), m.state)

	switch m.state {
	case stateLoading:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m.handleQuit()
		}
		return m, nil
	case stateHelp:
		if m.helpOverlay.HandleKeyPress(msg) {
			m.closeOverlay()
		}
		return m, nil
	case statePicker:
		if m.sectionPicker.HandleKeyPress(msg) {
			if sel := m.sectionPicker.Selected; sel != "" {
				m.focusSelector(sel)
			}
			m.closeOverlay()
		}
		return m, nil
	case stateBrowse:
		if !m.contentBrowser.HandleKeyPress(msg) {
			return m, nil
		}
		path := m.contentBrowser.SelectedPath
		submitted := m.contentBrowser.Submitted
		m.closeOverlay()
		if submitted {
			if err := m.openContent(path); err != nil {
				return m, m.handleError(err)
			}
		}
		return m, nil
	}

	highlightCmd := m.handleMenuHighlighting(msg)

	name, ok := keys.Lookup(msg.String())
	if !ok {
		return m, nil
	}

	switch name {
	case keys.KeyQuit:
		return m.handleQuit()
	case keys.KeyHelp:
		m.helpOverlay = overlay.NewHelpOverlay("Keys", "log: "+log.LogFileName())
		m.state = stateHelp
		m.openOverlay()
		return m, nil
	case keys.KeySections:
		m.sectionPicker = overlay.NewSectionPickerOverlay(m.sectionOptions(), m.focusedSelector())
		m.state = statePicker
		m.openOverlay()
		return m, nil
	case keys.KeyOpen:
		browser, err := overlay.NewContentBrowserOverlay(m.contentDir())
		if err != nil {
			return m, m.handleError(err)
		}
		m.contentBrowser = browser
		m.state = stateBrowse
		m.openOverlay()
		return m, nil
	case keys.KeyFocusNext:
		m.moveFocus(1)
		return m, highlightCmd
	case keys.KeyFocusPrev:
		m.moveFocus(-1)
		return m, highlightCmd
	}

	s := m.focused()
	if s == nil {
		return m, nil
	}

	switch name {
	case keys.KeyPrev:
		s.carousel.Previous()
	case keys.KeyNext:
		s.carousel.Next()
	case keys.KeyFirst:
		s.carousel.GoTo(0)
	case keys.KeyLast:
		s.carousel.GoTo(s.carousel.MaxIndex())
	case keys.KeyGoTo:
		idx, _ := keys.Digit(msg.String())
		s.carousel.GoTo(idx)
	case keys.KeyToggleAuto:
		if s.carousel.AutoAdvanceInterval() == 0 {
			return m, m.handleError(fmt.Errorf("%s has no auto-advance", s.view.Section().Heading))
		}
		if s.carousel.AutoAdvancing() {
			s.carousel.StopAutoAdvance()
		} else {
			s.carousel.StartAutoAdvance()
		}
	case keys.KeyCopy:
		return m, tea.Batch(highlightCmd, m.copyCurrentSlide(s))
	case keys.KeyReadMore:
		if s.view.ToggleExpanded() {
			log.InputTrace("%s captions expanded", s.carousel.Name())
		}
	}
	return m, highlightCmd
}

func (m *home) handleQuit() (tea.Model, tea.Cmd) {
	m.unmount()
	return m, tea.Quit
}

func (m *home) openOverlay() {
	m.syncMenuState()
	m.relayout()
}

func (m *home) closeOverlay() {
	m.helpOverlay = nil
	m.sectionPicker = nil
	m.contentBrowser = nil
	m.state = stateDefault
	m.syncMenuState()
	m.relayout()
}

func (m *home) moveFocus(delta int) {
	n := len(m.sections)
	if n == 0 {
		return
	}
	m.focus = ((m.focus+delta)%n + n) % n
	m.relayout()
}

func (m *home) focusedSelector() string {
	if s := m.focused(); s != nil {
		return s.carousel.Name()
	}
	return ""
}

func (m *home) focusSelector(selector string) {
	for i, s := range m.sections {
		if s.view.Section().Selector == selector {
			m.focus = i
			m.relayout()
			return
		}
	}
}

// sectionOptions lists every configured carousel for the section picker.
func (m *home) sectionOptions() []overlay.SectionOption {
	opts := make([]overlay.SectionOption, 0, len(m.cfg.Carousels))
	for _, cc := range m.cfg.Carousels {
		opt := overlay.SectionOption{Selector: cc.Selector, Heading: cc.Selector}
		if section, ok := m.page.Section(cc.Selector); ok {
			opt.Heading = section.Heading
		}
		for _, s := range m.sections {
			if s.carousel.Name() == cc.Selector {
				opt.Mounted = true
				opt.Detail = fmt.Sprintf("%d slides, %s", s.carousel.SlideCount(), s.carousel.Policy())
				break
			}
		}
		opts = append(opts, opt)
	}
	return opts
}

// contentDir is where the content browser starts.
func (m *home) contentDir() string {
	if m.cfg.ContentPath != "" {
		return filepath.Dir(m.cfg.ContentPath)
	}
	return "."
}

// openContent replaces the page with the content file at path and remounts.
func (m *home) openContent(path string) error {
	pg, err := page.Load(path)
	if err != nil {
		return err
	}
	m.unmount()
	log.GetProfiler().LogStats()
	log.GetProfiler().Reset()
	m.page = pg
	m.cfg.ContentPath = path
	m.header = ui.NewHeader(pg.Title)
	m.mount()
	m.syncMenuState()
	m.relayout()
	log.InfoLog.Printf("opened page content %s", path)
	return nil
}

// copyCurrentSlide copies the focused slide's caption, or its title when it
// has none.
func (m *home) copyCurrentSlide(s *mounted) tea.Cmd {
	slide, ok := s.view.CurrentSlide()
	if !ok {
		return nil
	}
	text := slide.Caption
	if text == "" {
		text = slide.Title
	}
	if slide.Author != "" {
		text += " - " + slide.Author
	}
	if err := m.copyToClipboard(text); err != nil {
		return m.handleError(fmt.Errorf("failed to copy to clipboard: %w", err))
	}
	return m.showMessage(fmt.Sprintf("copied %d characters from %s", len([]rune(text)), s.view.Section().Heading))
}

type keyupMsg struct{}

// keydownCallback clears the menu option highlighting after 500ms.
func (m *home) keydownCallback(name keys.KeyName) tea.Cmd {
	m.menu.Keydown(name)
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(500 * time.Millisecond):
		}

		return keyupMsg{}
	}
}

// hideErrMsg implements tea.Msg and clears the error text from the screen.
type hideErrMsg struct{}

// handleError handles all errors which get bubbled up to the app. sets the error message. We return a callback tea.Cmd that returns a hideErrMsg message
// which clears the error message after 3 seconds.
func (m *home) handleError(err error) tea.Cmd {
	log.ErrorLog.Printf("%v", err)
	m.errBox.SetError(err)
	return m.hideErrAfter(3 * time.Second)
}

// showMessage displays a non-error message in the error box.
func (m *home) showMessage(msg string) tea.Cmd {
	m.errBox.SetError(fmt.Errorf("%s", msg))
	return m.hideErrAfter(3 * time.Second)
}

func (m *home) hideErrAfter(d time.Duration) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(d):
		}

		return hideErrMsg{}
	}
}

func (m *home) renderSections() string {
	c := m.constraints
	if len(m.sections) == 0 {
		msg := "No carousels mounted on this page"
		if !m.ready {
			msg = ""
		}
		return lipgloss.Place(m.width, c.ContentHeight, lipgloss.Center, lipgloss.Center,
			ui.TextStyles.Muted.Render(msg))
	}

	parts := make([]string, 0, len(m.sections)+1)
	if m.degradation.ShowMinWarning {
		parts = append(parts, ui.TextStyles.Muted.Render(
			fmt.Sprintf("terminal below %dx%d", layout.MinWidth, layout.MinHeight)))
	}
	for _, s := range m.sections {
		done := log.GetProfiler().StartRender(s.carousel.Name())
		parts = append(parts, s.view.String())
		done()
	}
	body := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return lipgloss.NewStyle().
		PaddingLeft(layout.SidePadding).
		Height(c.ContentHeight).
		MaxHeight(c.ContentHeight).
		Render(body)
}

func (m *home) View() string {
	start := time.Now()
	defer func() { log.GetProfiler().RecordFrame(time.Since(start)) }()

	mainView := lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.String(),
		m.renderSections(),
		m.menu.String(),
		m.errBox.String(),
	)
	m.writeInspectSnapshot()

	switch m.state {
	case stateLoading:
		if m.loadingOverlay == nil {
			log.ErrorLog.Printf("loading overlay is nil")
			return mainView
		}
		return overlay.PlaceOverlay(0, 0, m.loadingOverlay.Render(), mainView, true, true)
	case stateHelp:
		return overlay.PlaceOverlay(0, 0, m.helpOverlay.Render(), mainView, true, true)
	case statePicker:
		return overlay.PlaceOverlay(0, 0, m.sectionPicker.Render(), mainView, true, true)
	case stateBrowse:
		return overlay.PlaceOverlay(0, 0, m.contentBrowser.Render(), mainView, true, true)
	}

	return mainView
}

func (m *home) overlayType() string {
	switch m.state {
	case stateLoading, stateHelp, statePicker, stateBrowse:
		return m.state.String()
	}
	return ""
}

// snapshot captures the state the inspector writes out.
func (m *home) snapshot() *inspect.Snapshot {
	root := inspect.NewNode("Page").
		WithID(m.page.Title).
		WithBounds(0, 0, m.width, m.height)
	for _, s := range m.sections {
		root.AddChild(s.view.InspectNode())
	}

	var errMsg string
	if err := m.errBox.Err(); err != nil {
		errMsg = err.Error()
	}

	return inspect.NewSnapshot().
		WithTerminal(m.width, m.height, m.page.ViewportWidth()).
		WithAppState(inspect.AppStateInfo{
			State:        m.state.String(),
			HasOverlay:   m.overlayType() != "",
			OverlayType:  m.overlayType(),
			ContentPath:  m.cfg.ContentPath,
			SectionCount: len(m.page.Sections),
			MountedCount: len(m.sections),
			Focused:      m.focusedSelector(),
			ErrorMessage: errMsg,
		}).
		WithLayout(m.constraints, m.degradation).
		WithComponents(root).
		WithRegisteredStyles()
}

func (m *home) writeInspectSnapshot() {
	if !inspect.IsEnabled() {
		return
	}
	if err := inspect.WriteSnapshot(m.snapshot()); err != nil {
		log.WarningLog.Printf("inspect: %v", err)
	}
}
