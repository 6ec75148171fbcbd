package layout

// Width breakpoints
const (
	// MinWidth is the narrowest terminal the panel is laid out for.
	MinWidth = 40

	// StandardWidth is the threshold for standard layout.
	StandardWidth = 80

	// FullWidth is the threshold for full layout with side margins.
	FullWidth = 120
)

// Height breakpoints
const (
	// MinHeight is the shortest terminal the panel is laid out for.
	MinHeight = 12

	// StandardHeight is the threshold for standard layout (standard terminal).
	StandardHeight = 24

	// FullHeight is the threshold for full layout.
	FullHeight = 40
)

// Menu constraints
const (
	// MenuMinHeight is a single help line.
	MenuMinHeight = 1

	// MenuStandardHeight adds the panel status line.
	MenuStandardHeight = 2
)

// Component constraints
const (
	// ErrBoxHeight is the fixed error box height.
	ErrBoxHeight = 1

	// PanelMarginFull is the horizontal margin around the panel in full mode.
	PanelMarginFull = 2

	// SwitcherMinHeight is the thinnest switcher strip (one row of tabs).
	SwitcherMinHeight = 1

	// ContentMinHeight is the smallest content surface worth dragging.
	ContentMinHeight = 2
)
