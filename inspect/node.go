package inspect

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"switcherpanel/panel"
)

// Node is one component in the inspection tree. Panel, Switcher, Tab,
// Content, Menu and ErrBox are the types the app produces.
type Node struct {
	Type string `json:"type"`
	ID   string `json:"id,omitempty"`

	// Bounds are screen cells. A hidden surface keeps the bounds it would
	// have if shown.
	Bounds  Bounds `json:"bounds"`
	Visible bool   `json:"visible"`

	// State holds values such as the slide offset or the selected tab.
	State map[string]any `json:"state,omitempty"`

	Styles   *StyleInfo `json:"styles,omitempty"`
	Children []*Node    `json:"children,omitempty"`

	Content   string          `json:"content,omitempty"`
	Truncated *TruncationInfo `json:"truncated,omitempty"`
}

// Bounds is a cell rectangle with an exclusive right and bottom edge.
type Bounds struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// BoundsOf converts an engine hit-test rectangle, whose edges are inclusive.
func BoundsOf(r panel.Rect) Bounds {
	if r.Empty() {
		return Bounds{X: r.Left, Y: r.Top}
	}
	return Bounds{X: r.Left, Y: r.Top, Width: r.Right - r.Left + 1, Height: r.Bottom - r.Top + 1}
}

// Contains reports whether the cell (x, y) is inside b.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// StyleInfo is the inspectable part of a lipgloss style.
type StyleInfo struct {
	Foreground string `json:"foreground,omitempty"`
	Background string `json:"background,omitempty"`

	Bold      bool `json:"bold,omitempty"`
	Italic    bool `json:"italic,omitempty"`
	Underline bool `json:"underline,omitempty"`

	Border      string `json:"border,omitempty"`
	BorderColor string `json:"border_color,omitempty"`
	Padding     []int  `json:"padding,omitempty"` // [top, right, bottom, left]

	// AppliedStyles names the registered styles in use.
	AppliedStyles []string `json:"applied_styles,omitempty"`
}

// TruncationInfo records text shown shorter than it is. Lengths are cell
// widths.
type TruncationInfo struct {
	OriginalLength int  `json:"original_length"`
	DisplayLength  int  `json:"display_length"`
	Ellipsis       bool `json:"ellipsis"`
}

// NewNode returns a visible node of the given type.
func NewNode(nodeType string) *Node {
	return &Node{
		Type:    nodeType,
		Visible: true,
		State:   make(map[string]any),
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

// WithRect sets the bounds from an engine rectangle shifted right by dx
// columns, the panel's left margin.
func (n *Node) WithRect(r panel.Rect, dx int) *Node {
	b := BoundsOf(r)
	b.X += dx
	n.Bounds = b
	return n
}

func (n *Node) WithVisible(visible bool) *Node {
	n.Visible = visible
	return n
}

func (n *Node) WithState(key string, value any) *Node {
	if n.State == nil {
		n.State = make(map[string]any)
	}
	n.State[key] = value
	return n
}

func (n *Node) WithStyles(styles *StyleInfo) *Node {
	n.Styles = styles
	return n
}

// AddChild appends child and returns the parent.
func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

func (n *Node) WithContent(content string) *Node {
	n.Content = content
	return n
}

// WithShown sets the content to full and records a truncation when shown,
// the text actually drawn, is narrower.
func (n *Node) WithShown(full, shown string) *Node {
	n.Content = full
	n.Truncated = nil
	fw, sw := runewidth.StringWidth(full), runewidth.StringWidth(shown)
	if sw < fw {
		n.Truncated = &TruncationInfo{
			OriginalLength: fw,
			DisplayLength:  sw,
			Ellipsis:       strings.HasSuffix(shown, "…"),
		}
	}
	return n
}

// Walk visits n and its descendants depth first. Returning false from fn
// stops the walk.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) bool {
	if n == nil {
		return true
	}
	if !fn(n, depth) {
		return false
	}
	for _, child := range n.Children {
		if !child.walk(fn, depth+1) {
			return false
		}
	}
	return true
}

// Find returns the first node of the given type, or nil.
func (n *Node) Find(nodeType string) *Node {
	var found *Node
	n.Walk(func(node *Node, _ int) bool {
		if node.Type == nodeType {
			found = node
			return false
		}
		return true
	})
	return found
}

// At returns the deepest visible node covering the cell (x, y), or nil.
// Later siblings are drawn over earlier ones and win.
func (n *Node) At(x, y int) *Node {
	if n == nil || !n.Visible || !n.Bounds.Contains(x, y) {
		return nil
	}
	for i := len(n.Children) - 1; i >= 0; i-- {
		if hit := n.Children[i].At(x, y); hit != nil {
			return hit
		}
	}
	return n
}
