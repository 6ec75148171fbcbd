package panel

// Phase is the phase of a pointer sample.
type Phase int

const (
	PointerDown Phase = iota
	PointerMove
	PointerUp
	PointerCancel
)

func (p Phase) String() string {
	switch p {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerEvent is one pointer sample delivered by the host.
type PointerEvent struct {
	Phase Phase
	// X and Y are absolute positions in the panel's coordinate space.
	X, Y int
	// VelocityY is the vertical release velocity in units per second.
	// Negative is upwards. Only read on PointerUp.
	VelocityY float64
}

// Rect is a screen space bounding box. Both edges are inclusive.
type Rect struct {
	Left, Top, Right, Bottom int
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

// Empty reports whether r covers no area.
func (r Rect) Empty() bool {
	return r.Right < r.Left || r.Bottom < r.Top
}

// Surface identifies one of the two panel children.
type Surface int

const (
	SurfaceSwitcher Surface = iota
	SurfaceContent
)

func (s Surface) String() string {
	if s == SurfaceSwitcher {
		return "switcher"
	}
	return "content"
}
