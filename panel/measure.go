package panel

import (
	"errors"
	"fmt"
)

var (
	// ErrChildCount is returned when the panel does not get exactly a switcher
	// and a content child.
	ErrChildCount = errors.New("switcher panel needs exactly two children")
	// ErrMeasureMode is returned when the container size is not exact.
	ErrMeasureMode = errors.New("switcher panel must be measured with exact sizes")
)

// MeasureMode says how a size passed down by the host must be interpreted.
type MeasureMode int

const (
	MeasureExactly MeasureMode = iota
	MeasureAtMost
	MeasureUnspecified
)

func (m MeasureMode) String() string {
	switch m {
	case MeasureExactly:
		return "exactly"
	case MeasureAtMost:
		return "at_most"
	default:
		return "unspecified"
	}
}

// SizeSpec is a size constraint handed to the panel by its host.
type SizeSpec struct {
	Size int
	Mode MeasureMode
}

// Exactly is shorthand for an exact SizeSpec.
func Exactly(size int) SizeSpec {
	return SizeSpec{Size: size, Mode: MeasureExactly}
}

// Layout params for a child dimension.
const (
	MatchParent = -1
	WrapContent = -2
)

// Padding of the panel container.
type Padding struct {
	Left, Top, Right, Bottom int
}

// Child describes how one surface wants to be sized.
type Child struct {
	// Width and Height are MatchParent, WrapContent or a fixed size.
	Width, Height int
	// PreferredWidth and PreferredHeight are the intrinsic size used for WrapContent.
	PreferredWidth, PreferredHeight int

	MarginLeft, MarginRight, MarginTop int
}

// Size is a measured width and height.
type Size struct {
	Width, Height int
}

// Measurement is the result of Measure.
type Measurement struct {
	Geometry Geometry
	Switcher Size
	Content  Size
	// ContentLeft is the x of the content surface's left edge.
	ContentLeft  int
	SwitcherLeft int
}

// Measure sizes the switcher and content children inside a container of the
// given size. children must be ordered switcher, content.
func Measure(width, height SizeSpec, padding Padding, coverHeight int, children []Child) (Measurement, error) {
	if len(children) != 2 {
		return Measurement{}, fmt.Errorf("got %d children: %w", len(children), ErrChildCount)
	}
	if width.Mode != MeasureExactly || height.Mode != MeasureExactly {
		return Measurement{}, fmt.Errorf("width %s, height %s: %w", width.Mode, height.Mode, ErrMeasureMode)
	}

	layoutWidth := width.Size - padding.Left - padding.Right
	layoutHeight := height.Size - padding.Top - padding.Bottom

	switcher, content := children[0], children[1]
	sw := Size{
		Width:  measureDimension(switcher.Width, layoutWidth-switcher.MarginLeft-switcher.MarginRight, switcher.PreferredWidth),
		Height: measureDimension(switcher.Height, layoutHeight, switcher.PreferredHeight),
	}
	cs := Size{
		Width:  measureDimension(content.Width, layoutWidth, content.PreferredWidth),
		Height: measureDimension(content.Height, layoutHeight-content.MarginTop, content.PreferredHeight),
	}

	return Measurement{
		Geometry: Geometry{
			ContainerHeight: height.Size,
			PaddingTop:      padding.Top,
			PaddingBottom:   padding.Bottom,
			CoverHeight:     coverHeight,
			ContentHeight:   cs.Height,
			SwitcherHeight:  sw.Height,
		},
		Switcher:     sw,
		Content:      cs,
		ContentLeft:  padding.Left + content.MarginLeft,
		SwitcherLeft: padding.Left + switcher.MarginLeft,
	}, nil
}

func measureDimension(param, available, preferred int) int {
	if available < 0 {
		available = 0
	}
	switch param {
	case MatchParent:
		return available
	case WrapContent:
		if preferred < available {
			return preferred
		}
		return available
	default:
		return param
	}
}
