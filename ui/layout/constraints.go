package layout

import "switcherpanel/panel"

// Constraints holds the computed layout constraints for all components.
type Constraints struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Computed mode
	Mode LayoutMode

	// Panel container, in terminal cells.
	PanelLeft   int
	PanelWidth  int
	PanelHeight int

	// Panel children
	SwitcherHeight int
	CoverHeight    int

	MenuWidth    int
	MenuHeight   int
	ErrBoxWidth  int
	ErrBoxHeight int

	ShowMinWarning bool // Terminal is below minimum size
}

// ComputeConstraints calculates layout constraints for the given terminal
// dimensions. switcherHeight and coverHeight are the configured sizes; they are
// shrunk when the terminal cannot fit them.
func ComputeConstraints(width, height, switcherHeight, coverHeight int) Constraints {
	c := Constraints{
		TerminalWidth:  width,
		TerminalHeight: height,
	}

	c.Mode = DetermineMode(width, height)
	c.ShowMinWarning = width < MinWidth || height < MinHeight

	// Fixed elements first
	c.ErrBoxHeight = ErrBoxHeight
	c.ErrBoxWidth = width
	c.MenuHeight = c.Mode.MenuHeight()
	c.MenuWidth = width

	margin := c.Mode.PanelMargin()
	c.PanelLeft = margin
	c.PanelWidth = max(width-2*margin, 0)
	c.PanelHeight = max(height-c.MenuHeight-c.ErrBoxHeight, 0)

	c.SwitcherHeight = computeSwitcherHeight(c.Mode, switcherHeight, c.PanelHeight)
	c.CoverHeight = clamp(coverHeight, 0, max(c.PanelHeight-c.SwitcherHeight-ContentMinHeight, 0))

	return c
}

// PanelChildren returns the switcher and content sizing for panel.Measure.
// The content sits right under the switcher when expanded.
func (c Constraints) PanelChildren() []panel.Child {
	return []panel.Child{
		{Width: panel.MatchParent, Height: c.SwitcherHeight},
		{Width: panel.MatchParent, Height: panel.MatchParent, MarginTop: c.SwitcherHeight},
	}
}

// PanelSpecs returns the exact width and height specs of the panel container.
func (c Constraints) PanelSpecs() (panel.SizeSpec, panel.SizeSpec) {
	return panel.Exactly(c.PanelWidth), panel.Exactly(c.PanelHeight)
}

func computeSwitcherHeight(mode LayoutMode, configured, panelHeight int) int {
	h := mode.SwitcherHeight(configured)
	// Always leave room for some content.
	return clamp(h, SwitcherMinHeight, max(panelHeight-ContentMinHeight, SwitcherMinHeight))
}

func clamp(value, minVal, maxVal int) int {
	if value < minVal {
		return minVal
	}
	if value > maxVal {
		return maxVal
	}
	return value
}
