package page

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type contentFile struct {
	Title     string           `yaml:"title"`
	ItemWidth int              `yaml:"item_width"`
	Sections  []contentSection `yaml:"sections"`
}

type contentSection struct {
	Selector string         `yaml:"selector"`
	Heading  string         `yaml:"heading"`
	Buttons  *bool          `yaml:"buttons"`
	Slides   []contentSlide `yaml:"slides"`
}

type contentSlide struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title"`
	Caption string `yaml:"caption"`
	Author  string `yaml:"author"`
	Width   int    `yaml:"width"`
}

// ErrNoSections is returned for content files that define no sections.
var ErrNoSections = errors.New("page: content defines no sections")

// Load reads a YAML content file.
func Load(path string) (*Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("page: read content %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("page: %s: %w", path, err)
	}
	return p, nil
}

// Parse builds a page from YAML content. Sections default to having
// navigation buttons; slides without an ID get one from their position.
func Parse(data []byte) (*Page, error) {
	var doc contentFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if len(doc.Sections) == 0 {
		return nil, ErrNoSections
	}

	p := New(strings.TrimSpace(doc.Title))
	seen := make(map[string]bool, len(doc.Sections))
	for i, cs := range doc.Sections {
		sel := strings.TrimSpace(cs.Selector)
		if sel == "" {
			return nil, fmt.Errorf("section %d: selector is required", i)
		}
		if seen[sel] {
			return nil, fmt.Errorf("section %d: duplicate selector %q", i, sel)
		}
		seen[sel] = true

		buttons := cs.Buttons == nil || *cs.Buttons
		s := &Section{
			Selector: sel,
			Heading:  strings.TrimSpace(cs.Heading),
			HasPrev:  buttons,
			HasNext:  buttons,
		}
		for j, sl := range cs.Slides {
			id := strings.TrimSpace(sl.ID)
			if id == "" {
				id = fmt.Sprintf("%s-%d", strings.TrimLeft(sel, ".#"), j+1)
			}
			width := sl.Width
			if width <= 0 {
				width = doc.ItemWidth
			}
			s.Slides = append(s.Slides, Slide{
				ID:      id,
				Title:   strings.TrimSpace(sl.Title),
				Caption: strings.TrimSpace(sl.Caption),
				Author:  strings.TrimSpace(sl.Author),
				Width:   width,
			})
		}
		p.Sections = append(p.Sections, s)
	}
	return p, nil
}
