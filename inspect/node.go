package inspect

// Node is one component in the rendered tree: the page, a carousel section
// or a slide card.
type Node struct {
	Type string `json:"type"`
	ID   string `json:"id,omitempty"`

	Bounds Bounds `json:"bounds"`

	// Visible is false for slides outside their carousel's window.
	Visible bool `json:"visible"`

	State  map[string]interface{} `json:"state,omitempty"`
	Styles *StyleInfo             `json:"styles,omitempty"`

	// Window is set on carousel nodes.
	Window *WindowInfo `json:"window,omitempty"`

	Content  string  `json:"content,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// Bounds is a component's cell rectangle.
type Bounds struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// StyleInfo is the subset of a lipgloss style worth diffing between runs.
type StyleInfo struct {
	Foreground string `json:"foreground,omitempty"`
	Background string `json:"background,omitempty"`

	Bold      bool `json:"bold,omitempty"`
	Italic    bool `json:"italic,omitempty"`
	Underline bool `json:"underline,omitempty"`

	Border      string `json:"border,omitempty"`
	BorderColor string `json:"border_color,omitempty"`
	Padding     []int  `json:"padding,omitempty"` // top, right, bottom, left

	AppliedStyles []string `json:"applied_styles,omitempty"`
}

// WindowInfo records which slides a carousel shows and where its track sits.
type WindowInfo struct {
	Start  int `json:"start"`
	End    int `json:"end"` // exclusive
	Of     int `json:"of"`
	Offset int `json:"offset_px"`
}

// Contains reports whether slide i is inside the window.
func (w WindowInfo) Contains(i int) bool {
	return i >= w.Start && i < w.End
}

// NewNode returns a visible node of the given type.
func NewNode(nodeType string) *Node {
	return &Node{
		Type:    nodeType,
		Visible: true,
		State:   make(map[string]interface{}),
	}
}

func (n *Node) WithID(id string) *Node {
	n.ID = id
	return n
}

func (n *Node) WithBounds(x, y, width, height int) *Node {
	n.Bounds = Bounds{X: x, Y: y, Width: width, Height: height}
	return n
}

func (n *Node) WithState(key string, value interface{}) *Node {
	if n.State == nil {
		n.State = make(map[string]interface{})
	}
	n.State[key] = value
	return n
}

func (n *Node) WithStyles(styles *StyleInfo) *Node {
	n.Styles = styles
	return n
}

func (n *Node) WithContent(content string) *Node {
	n.Content = content
	return n
}

// WithWindow records a carousel's visible range over of slides.
func (n *Node) WithWindow(start, end, of, offset int) *Node {
	n.Window = &WindowInfo{Start: start, End: end, Of: of, Offset: offset}
	return n
}

// Hidden marks the node as not rendered.
func (n *Node) Hidden() *Node {
	n.Visible = false
	return n
}

// AddChild appends child and returns the parent.
func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

// VisibleChildren returns the children that are rendered.
func (n *Node) VisibleChildren() []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Visible {
			out = append(out, c)
		}
	}
	return out
}
