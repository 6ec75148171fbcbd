package layout

// Degradation holds flags indicating which UI features should be hidden or simplified.
type Degradation struct {
	HideShadow        bool // Shadow rows eat into a short panel (height < 16)
	HideContentHeader bool // Content title line (height < 14)
	ShortTabLabels    bool // Switcher tabs use their first letter (width < 60)
	SingleLineMenu    bool // No status line under the help (height < 24)

	ShowMinWarning bool // Terminal too small warning (below MinWidth/MinHeight)
}

// Threshold constants for degradation
const (
	ShadowHideHeight     = 16
	HeaderHideHeight     = 14
	ShortTabsWidth       = 60
	SingleLineMenuHeight = StandardHeight
)

// ComputeDegradation calculates which UI features should be degraded.
func ComputeDegradation(c Constraints) Degradation {
	return Degradation{
		HideShadow:        c.TerminalHeight < ShadowHideHeight,
		HideContentHeader: c.TerminalHeight < HeaderHideHeight,
		ShortTabLabels:    c.TerminalWidth < ShortTabsWidth,
		SingleLineMenu:    c.TerminalHeight < SingleLineMenuHeight,
		ShowMinWarning:    c.ShowMinWarning,
	}
}

// IsCompactMode returns true if the layout should use compact rendering.
func (d Degradation) IsCompactMode() bool {
	return d.SingleLineMenu || d.ShortTabLabels
}
