// Package layout sizes the panel, menu and error box for the terminal.
package layout

// LayoutMode picks how much chrome surrounds the panel.
type LayoutMode int

const (
	// LayoutFull (>= 120x40) indents the panel from the terminal edges.
	LayoutFull LayoutMode = iota
	// LayoutStandard (>= 80x24).
	LayoutStandard
	// LayoutCompact (>= 40x12) thins the switcher and drops the status line.
	LayoutCompact
	// LayoutMinimal is anything smaller.
	LayoutMinimal
)

var modeNames = [...]string{"full", "standard", "compact", "minimal"}

func (m LayoutMode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// PanelMargin is the number of columns left empty on each side of the panel.
func (m LayoutMode) PanelMargin() int {
	if m == LayoutFull {
		return PanelMarginFull
	}
	return 0
}

// MenuHeight is the number of rows the menu bar takes.
func (m LayoutMode) MenuHeight() int {
	if m <= LayoutStandard {
		return MenuStandardHeight
	}
	return MenuMinHeight
}

// SwitcherHeight limits the configured switcher height for the mode.
func (m LayoutMode) SwitcherHeight(configured int) int {
	switch m {
	case LayoutCompact:
		return min(configured, 2)
	case LayoutMinimal:
		return SwitcherMinHeight
	}
	return configured
}

// DetermineMode picks the mode for a terminal size. The more restrictive
// dimension wins.
func DetermineMode(width, height int) LayoutMode {
	return max(
		modeFor(width, MinWidth, StandardWidth, FullWidth),
		modeFor(height, MinHeight, StandardHeight, FullHeight),
	)
}

func modeFor(size, minimum, standard, full int) LayoutMode {
	switch {
	case size >= full:
		return LayoutFull
	case size >= standard:
		return LayoutStandard
	case size >= minimum:
		return LayoutCompact
	}
	return LayoutMinimal
}
