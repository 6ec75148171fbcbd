package ui

import (
	"github.com/charmbracelet/lipgloss"

	"switcherpanel/inspect"
	"switcherpanel/panel"
)

// Status colors, one per panel status. Each also has an icon so the status
// reads without color.
var (
	// StatusExpandedColor: green, icon "▲"
	StatusExpandedColor = lipgloss.AdaptiveColor{Light: "#22C55E", Dark: "#22C55E"}

	// StatusCollapsedColor: gray, icon "▼"
	StatusCollapsedColor = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}

	// StatusFlingColor: blue, icon "↕"
	StatusFlingColor = lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#3B82F6"}

	// StatusError indicates errors/failures
	StatusError = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#EF4444"}

	// StatusWarning marks a locked panel
	StatusWarning = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#F59E0B"}
)

// UI chrome colors - structural elements
var (
	// Primary is the accent/focus color
	Primary = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}

	// Border is the default border color
	Border = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#3C3C3C"}

	// TextPrimary is the main text color
	TextPrimary = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}

	// TextSecondary is for secondary text (descriptions, labels)
	TextSecondary = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}

	// TextMuted is for hints and subtle text
	TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	// BackgroundSwitcher is the switcher strip
	BackgroundSwitcher = lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#26233a"}

	// BackgroundContent is the content surface
	BackgroundContent = lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#2a2a2a"}

	// Shadow is drawn above the content
	Shadow = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#111111"}
)

// Status icons for accessibility (shape + color)
const (
	IconExpanded  = "▲"
	IconCollapsed = "▼"
	IconFling     = "↕"
	IconLocked    = "!"
)

// Shadow glyphs from faint to dense, bottom row is densest.
var shadowGlyphs = []string{"░", "▒", "▓"}

// StatusStyles contains pre-built styles for each panel status
var StatusStyles = struct {
	Expanded  lipgloss.Style
	Collapsed lipgloss.Style
	Fling     lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
}{
	Expanded:  lipgloss.NewStyle().Foreground(StatusExpandedColor),
	Collapsed: lipgloss.NewStyle().Foreground(StatusCollapsedColor),
	Fling:     lipgloss.NewStyle().Foreground(StatusFlingColor),
	Error:     lipgloss.NewStyle().Foreground(StatusError),
	Warning:   lipgloss.NewStyle().Foreground(StatusWarning),
}

// TextStyles contains pre-built styles for text elements
var TextStyles = struct {
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Muted     lipgloss.Style
}{
	Primary:   lipgloss.NewStyle().Foreground(TextPrimary),
	Secondary: lipgloss.NewStyle().Foreground(TextSecondary),
	Muted:     lipgloss.NewStyle().Foreground(TextMuted),
}

// SurfaceStyles contains the panel surface styles
var SurfaceStyles = struct {
	Switcher  lipgloss.Style
	TabActive lipgloss.Style
	Tab       lipgloss.Style
	Content   lipgloss.Style
	Header    lipgloss.Style
	Shadow    lipgloss.Style
}{
	Switcher:  lipgloss.NewStyle().Background(BackgroundSwitcher).Foreground(TextSecondary),
	TabActive: lipgloss.NewStyle().Background(BackgroundSwitcher).Foreground(Primary).Bold(true).Underline(true),
	Tab:       lipgloss.NewStyle().Background(BackgroundSwitcher).Foreground(TextSecondary),
	Content:   lipgloss.NewStyle().Background(BackgroundContent).Foreground(TextPrimary),
	Header:    lipgloss.NewStyle().Background(BackgroundContent).Foreground(Primary).Bold(true),
	Shadow:    lipgloss.NewStyle().Foreground(Shadow),
}

// BadgeStyle creates a styled badge with the given color
func BadgeStyle(color lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(color).
		Padding(0, 1)
}

// StatusBadge returns a formatted badge for a panel status, e.g. "▲ expanded".
func StatusBadge(s panel.Status) string {
	switch s {
	case panel.StatusExpanded:
		return BadgeStyle(StatusExpandedColor).Render(IconExpanded + " " + s.String())
	case panel.StatusCollapsed:
		return BadgeStyle(StatusCollapsedColor).Render(IconCollapsed + " " + s.String())
	default:
		return BadgeStyle(StatusFlingColor).Render(IconFling + " " + s.String())
	}
}

func init() {
	inspect.RegisterStyle("switcher", SurfaceStyles.Switcher)
	inspect.RegisterStyle("tab_active", SurfaceStyles.TabActive)
	inspect.RegisterStyle("content", SurfaceStyles.Content)
	inspect.RegisterStyle("content_header", SurfaceStyles.Header)
	inspect.RegisterStyle("shadow", SurfaceStyles.Shadow)
}
