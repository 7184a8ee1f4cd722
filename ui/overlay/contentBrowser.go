package overlay

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// FileEntry represents a file or directory in the content browser
type FileEntry struct {
	Name     string
	Path     string
	IsDir    bool
	Expanded bool
	Depth    int
	Parent   *FileEntry
	Children []*FileEntry
}

// IsContent reports whether the entry is a page content file.
func (e *FileEntry) IsContent() bool {
	return !e.IsDir && isContentFile(e.Name)
}

func isContentFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

// ContentBrowserOverlay browses the filesystem for a YAML page content file.
type ContentBrowserOverlay struct {
	root          *FileEntry
	entries       []*FileEntry // Flattened list for display
	selectedIdx   int
	Submitted     bool
	Canceled      bool
	SelectedPath  string
	width, height int
	scrollOffset  int
	message       string    // Feedback message to display
	messageTime   time.Time // When the message was set
}

// NewContentBrowserOverlay creates a browser rooted at startPath
func NewContentBrowserOverlay(startPath string) (*ContentBrowserOverlay, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(startPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		startPath = filepath.Join(home, startPath[1:])
	}

	cb := &ContentBrowserOverlay{}
	if err := cb.NavigateToPath(startPath); err != nil {
		return nil, err
	}
	return cb, nil
}

// loadChildren loads the directories and content files under entry
func (cb *ContentBrowserOverlay) loadChildren(entry *FileEntry) error {
	if !entry.IsDir {
		return nil
	}

	dirEntries, err := os.ReadDir(entry.Path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", entry.Path, err)
	}

	entry.Children = make([]*FileEntry, 0)
	for _, de := range dirEntries {
		name := de.Name()

		// Skip hidden files
		if strings.HasPrefix(name, ".") {
			continue
		}
		if !de.IsDir() && !isContentFile(name) {
			continue
		}

		entry.Children = append(entry.Children, &FileEntry{
			Name:   name,
			Path:   filepath.Join(entry.Path, name),
			IsDir:  de.IsDir(),
			Depth:  entry.Depth + 1,
			Parent: entry,
		})
	}

	// Content files first, then directories, each alphabetical
	sort.Slice(entry.Children, func(i, j int) bool {
		a, b := entry.Children[i], entry.Children[j]
		if a.IsDir != b.IsDir {
			return !a.IsDir
		}
		return a.Name < b.Name
	})

	return nil
}

// flattenEntries creates a flat list of entries for display
func (cb *ContentBrowserOverlay) flattenEntries() {
	cb.entries = make([]*FileEntry, 0)
	cb.flattenEntry(cb.root)
}

func (cb *ContentBrowserOverlay) flattenEntry(entry *FileEntry) {
	cb.entries = append(cb.entries, entry)
	if entry.Expanded {
		for _, child := range entry.Children {
			cb.flattenEntry(child)
		}
	}
}

// Entries returns the flattened entries currently listed.
func (cb *ContentBrowserOverlay) Entries() []*FileEntry {
	return cb.entries
}

// Selected returns the highlighted entry.
func (cb *ContentBrowserOverlay) Selected() *FileEntry {
	if cb.selectedIdx < 0 || cb.selectedIdx >= len(cb.entries) {
		return nil
	}
	return cb.entries[cb.selectedIdx]
}

// SetSize sets the size of the content browser
func (cb *ContentBrowserOverlay) SetSize(width, height int) {
	cb.width = width
	cb.height = height
}

// setMessage sets a temporary feedback message
func (cb *ContentBrowserOverlay) setMessage(msg string) {
	cb.message = msg
	cb.messageTime = time.Now()
}

// getMessage returns the current message if it's still valid (within 2 seconds)
func (cb *ContentBrowserOverlay) getMessage() string {
	if cb.message != "" && time.Since(cb.messageTime) < 2*time.Second {
		return cb.message
	}
	cb.message = ""
	return ""
}

func (cb *ContentBrowserOverlay) moveSelection(delta int) {
	cb.selectedIdx = clamp(cb.selectedIdx+delta, 0, max(len(cb.entries)-1, 0))
	cb.adjustScroll()
}

func (cb *ContentBrowserOverlay) expand(entry *FileEntry) {
	if !entry.IsDir || entry.Expanded {
		return
	}
	entry.Expanded = true
	if entry.Children == nil {
		if err := cb.loadChildren(entry); err != nil {
			cb.setMessage(err.Error())
		}
	}
	cb.flattenEntries()
}

// collapseOrParent folds an open directory, otherwise moves to the parent.
func (cb *ContentBrowserOverlay) collapseOrParent(entry *FileEntry) {
	if entry.IsDir && entry.Expanded && len(entry.Children) > 0 && entry != cb.root {
		entry.Expanded = false
		cb.flattenEntries()
		return
	}
	for i, e := range cb.entries {
		if e == entry.Parent {
			cb.selectedIdx = i
			cb.adjustScroll()
			return
		}
	}
}

// HandleKeyPress processes a key press and updates the state accordingly
// Returns true if the overlay should be closed
func (cb *ContentBrowserOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	entry := cb.Selected()

	switch msg.String() {
	case "up", "k":
		cb.moveSelection(-1)
	case "down", "j":
		cb.moveSelection(1)
	case "right", "l":
		if entry != nil {
			cb.expand(entry)
		}
	case "left", "h":
		if entry != nil {
			cb.collapseOrParent(entry)
		}
	case "enter":
		if entry == nil {
			return false
		}
		if entry.IsContent() {
			cb.SelectedPath = entry.Path
			cb.Submitted = true
			return true
		}
		if entry.IsDir && entry != cb.root {
			if entry.Expanded {
				entry.Expanded = false
				cb.flattenEntries()
			} else {
				cb.expand(entry)
			}
			return false
		}
		cb.setMessage("Not a content file - pick a .yaml file")
	case "esc", "q":
		cb.Canceled = true
		return true
	case "~":
		if home, err := os.UserHomeDir(); err == nil {
			if err := cb.NavigateToPath(home); err != nil {
				cb.setMessage(err.Error())
			}
		}
	case "u", "-":
		if err := cb.GoUp(); err != nil {
			cb.setMessage(err.Error())
		}
	case "g":
		cb.selectedIdx = 0
		cb.scrollOffset = 0
	case "G":
		cb.selectedIdx = max(len(cb.entries)-1, 0)
		cb.adjustScroll()
	}

	return false
}

// adjustScroll adjusts the scroll offset to keep the selected item visible
func (cb *ContentBrowserOverlay) adjustScroll() {
	visibleRows := cb.getVisibleRows()
	if visibleRows <= 0 {
		return
	}

	if cb.selectedIdx < cb.scrollOffset {
		cb.scrollOffset = cb.selectedIdx
	} else if cb.selectedIdx >= cb.scrollOffset+visibleRows {
		cb.scrollOffset = cb.selectedIdx - visibleRows + 1
	}
}

// getVisibleRows returns the number of visible rows in the browser
func (cb *ContentBrowserOverlay) getVisibleRows() int {
	// Account for title, path, borders, padding, help text, message
	return cb.height - 11
}

// Render renders the content browser overlay
func (cb *ContentBrowserOverlay) Render(opts ...WhitespaceOption) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("37")).
		Padding(1, 2)

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("37")).
		Bold(true)

	pathStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666666"))

	selectedStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("37")).
		Foreground(lipgloss.Color("0")).
		Bold(true)

	contentStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#51bd73")).
		Bold(true)

	dirStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888"))

	helpKeyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Bold(true)

	helpDescStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666666"))

	messageStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#de613e")).
		Italic(true)

	separatorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#444444"))

	rule := separatorStyle.Render(strings.Repeat("─", max(cb.width-6, 0)))
	lineWidth := max(cb.width-8, 0)

	var content strings.Builder
	content.WriteString(titleStyle.Render("Open Page Content") + "\n")
	content.WriteString(pathStyle.Render(runewidth.Truncate(cb.root.Path, lineWidth, "…")) + "\n")
	content.WriteString(rule + "\n")

	visibleRows := cb.getVisibleRows()
	if visibleRows < 1 {
		visibleRows = 10
	}
	startIdx := cb.scrollOffset
	endIdx := min(cb.scrollOffset+visibleRows, len(cb.entries))

	for i := startIdx; i < endIdx; i++ {
		entry := cb.entries[i]

		var prefix string
		switch {
		case !entry.IsDir:
			prefix = "  "
		case entry.Expanded:
			prefix = "v "
		default:
			prefix = "> "
		}
		icon := "[dir] "
		if !entry.IsDir {
			icon = "[yml] "
		}

		line := strings.Repeat("  ", entry.Depth) + prefix + icon + entry.Name
		if lineWidth > 0 {
			line = runewidth.Truncate(line, lineWidth, "...")
		}

		switch {
		case i == cb.selectedIdx:
			// Pad to full width for better selection visibility
			line = selectedStyle.Render(runewidth.FillRight(line, lineWidth))
		case entry.IsContent():
			line = contentStyle.Render(line)
		default:
			line = dirStyle.Render(line)
		}
		content.WriteString(line + "\n")
	}

	// Add scroll indicator if needed
	if len(cb.entries) > visibleRows {
		content.WriteString(pathStyle.Render(
			fmt.Sprintf("  (%d-%d of %d)", cb.scrollOffset+1, endIdx, len(cb.entries))) + "\n")
	} else {
		content.WriteString("\n")
	}

	if msg := cb.getMessage(); msg != "" {
		content.WriteString(messageStyle.Render(msg) + "\n")
	} else {
		content.WriteString("\n")
	}

	content.WriteString(rule + "\n")

	helpLines := []struct{ key, desc string }{
		{"↑/k ↓/j", "navigate"},
		{"←/h →/l", "collapse/expand"},
		{"Enter", "open"},
		{"-/u", "parent dir"},
		{"Esc", "cancel"},
	}
	var helpParts []string
	for _, h := range helpLines {
		helpParts = append(helpParts, helpKeyStyle.Render(h.key)+helpDescStyle.Render(" "+h.desc))
	}
	content.WriteString(strings.Join(helpParts, helpDescStyle.Render(" • ")))

	return style.Render(content.String())
}

// NavigateToPath re-roots the browser at path
func (cb *ContentBrowserOverlay) NavigateToPath(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	root := &FileEntry{
		Name:     filepath.Base(absPath),
		Path:     absPath,
		IsDir:    true,
		Expanded: true,
	}
	if err := cb.loadChildren(root); err != nil {
		return err
	}

	cb.root = root
	cb.flattenEntries()
	cb.selectedIdx = 0
	cb.scrollOffset = 0
	return nil
}

// GoUp navigates to the parent directory
func (cb *ContentBrowserOverlay) GoUp() error {
	parentPath := filepath.Dir(cb.root.Path)
	if parentPath == cb.root.Path {
		// Already at root
		return nil
	}
	return cb.NavigateToPath(parentPath)
}
