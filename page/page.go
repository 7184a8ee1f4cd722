// Package page models the host page the carousels live on: named sections
// holding ordered slides, plus the current viewport width.
package page

import (
	"sync"

	"orthoslide/carousel"
)

// Selectors of the sections on the practice's home page.
const (
	HeroSelector         = ".hero-slider"
	ClinicSelector       = ".clinic-carousel"
	TestimonialsSelector = ".testimonials-carousel"
	VerticalSelector     = ".vertical-carousel"
)

// DefaultItemWidth is the slide width used when content does not give one.
const DefaultItemWidth = 360

// Slide is one item in a carousel. The engine only sees its position.
type Slide struct {
	ID      string
	Title   string
	Caption string
	Author  string
	Width   int
}

// Section is a carousel container on the page.
type Section struct {
	Selector string
	Heading  string
	Slides   []Slide
	// HasPrev and HasNext report whether the section renders navigation
	// buttons.
	HasPrev bool
	HasNext bool
}

// SlideCount implements carousel.Container.
func (s *Section) SlideCount() int {
	return len(s.Slides)
}

// ItemWidth implements carousel.Container. Like the browser, it measures
// the first slide.
func (s *Section) ItemWidth() int {
	if len(s.Slides) == 0 || s.Slides[0].Width <= 0 {
		return DefaultItemWidth
	}
	return s.Slides[0].Width
}

// Slide returns the slide at i, or false when out of range.
func (s *Section) Slide(i int) (Slide, bool) {
	if i < 0 || i >= len(s.Slides) {
		return Slide{}, false
	}
	return s.Slides[i], true
}

// Page is an ordered set of sections and a viewport.
type Page struct {
	Title    string
	Sections []*Section

	mu       sync.RWMutex
	viewport int
}

var _ carousel.Page = (*Page)(nil)

// New creates a page with the given sections.
func New(title string, sections ...*Section) *Page {
	return &Page{Title: title, Sections: sections}
}

// Section returns the section registered under selector. A nil page has no
// sections.
func (p *Page) Section(selector string) (*Section, bool) {
	if p == nil {
		return nil, false
	}
	for _, s := range p.Sections {
		if s.Selector == selector {
			return s, true
		}
	}
	return nil, false
}

// Lookup implements carousel.Page.
func (p *Page) Lookup(selector string) (carousel.Container, bool) {
	s, ok := p.Section(selector)
	if !ok {
		return nil, false
	}
	return s, true
}

// ViewportWidth implements carousel.Page.
func (p *Page) ViewportWidth() int {
	if p == nil {
		return 0
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.viewport
}

// SetViewportWidth records a new viewport width in pixels.
func (p *Page) SetViewportWidth(width int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.viewport = width
}
