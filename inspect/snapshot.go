package inspect

import (
	"fmt"
	"strings"
	"time"

	"switcherpanel/ui/layout"
)

// Snapshot represents a complete UI state at a point in time.
type Snapshot struct {
	// Timestamp when the snapshot was taken.
	Timestamp time.Time `json:"timestamp"`

	// Version of the snapshot format.
	Version string `json:"version"`

	// Terminal contains terminal dimensions.
	Terminal TerminalInfo `json:"terminal"`

	// AppState contains application state information.
	AppState AppStateInfo `json:"app_state"`

	// Layout contains layout configuration.
	Layout LayoutInfo `json:"layout"`

	// Components is the root of the component tree.
	Components *Node `json:"components"`

	// Breakpoints contains information about responsive breakpoints.
	Breakpoints []BreakpointInfo `json:"breakpoints"`

	// Styles holds every registered style by name.
	Styles map[string]*StyleInfo `json:"styles,omitempty"`
}

// TerminalInfo contains terminal dimensions.
type TerminalInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// AppStateInfo contains application-level state.
type AppStateInfo struct {
	// State is the current app state ("default" or "help").
	State string `json:"state"`

	// HasOverlay indicates if an overlay is currently displayed.
	HasOverlay bool `json:"has_overlay"`

	// PanelStatus is the panel status ("expanded", "collapsed" or "fling").
	PanelStatus string `json:"panel_status"`

	// SelectedTab is the selected switcher tab index.
	SelectedTab int `json:"selected_tab"`

	// LastEvent is the last status callback received.
	LastEvent string `json:"last_event,omitempty"`

	// ErrorMessage is the current error message if any.
	ErrorMessage string `json:"error_message,omitempty"`
}

// LayoutInfo contains layout configuration.
type LayoutInfo struct {
	// Mode is the current layout mode.
	Mode string `json:"mode"`

	PanelLeft      int `json:"panel_left"`
	PanelWidth     int `json:"panel_width"`
	PanelHeight    int `json:"panel_height"`
	SwitcherHeight int `json:"switcher_height"`
	CoverHeight    int `json:"cover_height"`
	MenuHeight     int `json:"menu_height"`

	// Degradation contains active degradation flags.
	Degradation DegradationInfo `json:"degradation"`
}

// DegradationInfo contains active UI degradation flags.
type DegradationInfo struct {
	HideShadow        bool `json:"hide_shadow"`
	HideContentHeader bool `json:"hide_content_header"`
	ShortTabLabels    bool `json:"short_tab_labels"`
	SingleLineMenu    bool `json:"single_line_menu"`
	ShowMinWarning    bool `json:"show_min_warning"`
}

// BreakpointInfo contains information about a responsive breakpoint.
type BreakpointInfo struct {
	// Name is the breakpoint name.
	Name string `json:"name"`

	// Threshold is the dimension threshold.
	Threshold int `json:"threshold"`

	// Active indicates if this breakpoint is currently triggered.
	Active bool `json:"active"`

	// Dimension is "width" or "height".
	Dimension string `json:"dimension"`
}

// NewSnapshot creates a new snapshot with current timestamp.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Timestamp: time.Now(),
		Version:   "1.0.0",
	}
}

// WithTerminal sets terminal info and returns the snapshot for chaining.
func (s *Snapshot) WithTerminal(width, height int) *Snapshot {
	s.Terminal = TerminalInfo{Width: width, Height: height}
	return s
}

// WithAppState sets the application state and returns the snapshot for chaining.
func (s *Snapshot) WithAppState(state AppStateInfo) *Snapshot {
	s.AppState = state
	return s
}

// WithLayout sets layout info from constraints and degradation.
func (s *Snapshot) WithLayout(c layout.Constraints, d layout.Degradation) *Snapshot {
	s.Layout = LayoutInfo{
		Mode:           c.Mode.String(),
		PanelLeft:      c.PanelLeft,
		PanelWidth:     c.PanelWidth,
		PanelHeight:    c.PanelHeight,
		SwitcherHeight: c.SwitcherHeight,
		CoverHeight:    c.CoverHeight,
		MenuHeight:     c.MenuHeight,
		Degradation: DegradationInfo{
			HideShadow:        d.HideShadow,
			HideContentHeader: d.HideContentHeader,
			ShortTabLabels:    d.ShortTabLabels,
			SingleLineMenu:    d.SingleLineMenu,
			ShowMinWarning:    d.ShowMinWarning,
		},
	}

	s.Breakpoints = []BreakpointInfo{
		{Name: "hide_shadow", Threshold: layout.ShadowHideHeight, Active: d.HideShadow, Dimension: "height"},
		{Name: "hide_content_header", Threshold: layout.HeaderHideHeight, Active: d.HideContentHeader, Dimension: "height"},
		{Name: "short_tab_labels", Threshold: layout.ShortTabsWidth, Active: d.ShortTabLabels, Dimension: "width"},
		{Name: "single_line_menu", Threshold: layout.SingleLineMenuHeight, Active: d.SingleLineMenu, Dimension: "height"},
	}

	return s
}

// WithRegisteredStyles records the registered styles.
func (s *Snapshot) WithRegisteredStyles() *Snapshot {
	s.Styles = GetAllStyles()
	return s
}

// WithComponents sets the component tree root.
func (s *Snapshot) WithComponents(root *Node) *Snapshot {
	s.Components = root
	return s
}

// ToText returns a human-readable text representation.
func (s *Snapshot) ToText() string {
	var b strings.Builder

	b.WriteString("=== UI Snapshot ===\n")
	b.WriteString(fmt.Sprintf("Time: %s\n", s.Timestamp.Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf("Terminal: %dx%d\n", s.Terminal.Width, s.Terminal.Height))
	b.WriteString(fmt.Sprintf("State: %s\n", s.AppState.State))
	b.WriteString(fmt.Sprintf("Panel: %s (tab %d)\n", s.AppState.PanelStatus, s.AppState.SelectedTab))
	if s.AppState.ErrorMessage != "" {
		b.WriteString(fmt.Sprintf("Error: %s\n", s.AppState.ErrorMessage))
	}

	b.WriteString("\n--- Layout ---\n")
	b.WriteString(fmt.Sprintf("Mode: %s\n", s.Layout.Mode))
	b.WriteString(fmt.Sprintf("Panel: %dx%d at x=%d\n", s.Layout.PanelWidth, s.Layout.PanelHeight, s.Layout.PanelLeft))
	b.WriteString(fmt.Sprintf("Switcher: %d rows, cover: %d rows\n", s.Layout.SwitcherHeight, s.Layout.CoverHeight))

	b.WriteString("\n--- Active Breakpoints ---\n")
	for _, bp := range s.Breakpoints {
		status := "[ ]"
		if bp.Active {
			status = "[X]"
		}
		b.WriteString(fmt.Sprintf("  %s %s (threshold: %d %s)\n", status, bp.Name, bp.Threshold, bp.Dimension))
	}

	if s.Components != nil {
		b.WriteString("\n--- Components ---\n")
		writeNodeText(&b, s.Components, 0)
	}

	return b.String()
}

func writeNodeText(b *strings.Builder, root *Node, indent int) {
	root.Walk(func(node *Node, depth int) bool {
		b.WriteString(strings.Repeat("  ", indent+depth))
		b.WriteString(node.Type)
		if node.ID != "" {
			fmt.Fprintf(b, " [%s]", node.ID)
		}
		fmt.Fprintf(b, " (%dx%d at %d,%d)", node.Bounds.Width, node.Bounds.Height, node.Bounds.X, node.Bounds.Y)
		if !node.Visible {
			b.WriteString(" hidden")
		}
		if status, ok := node.State["status"]; ok {
			fmt.Fprintf(b, " status=%v", status)
		}
		if t := node.Truncated; t != nil {
			fmt.Fprintf(b, " TRUNCATED(%d->%d)", t.OriginalLength, t.DisplayLength)
		}
		b.WriteString("\n")
		return true
	})
}
