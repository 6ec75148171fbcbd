// Package panel implements the drag/settle engine of a vertically sliding
// switcher panel: a switcher strip on top and a content surface that can be
// dragged, flung or tapped between a collapsed and an expanded position.
//
// The engine is host agnostic. Positions are integer units (pixels, terminal
// rows) and all calls are expected on a single event loop.
package panel

import "math"

// Geometry holds the measured sizes the engine works with.
type Geometry struct {
	// ContainerHeight is the measured height of the whole panel.
	ContainerHeight int
	PaddingTop      int
	PaddingBottom   int

	// CoverHeight is the part of the content that stays visible when collapsed.
	CoverHeight int

	// ContentHeight and SwitcherHeight are the measured child heights.
	ContentHeight  int
	SwitcherHeight int
}

// SlideRange returns the distance the content travels between collapsed and
// expanded. It is never negative.
func SlideRange(contentHeight, coverHeight int) int {
	if contentHeight-coverHeight < 0 {
		return 0
	}
	return contentHeight - coverHeight
}

// TopPosition returns the content top for the given slide offset.
// Offset 0 gives the lowest (collapsed) top, offset 1 the highest.
func TopPosition(offset float64, containerHeight, paddingBottom, coverHeight, slideRange int) int {
	slidePixels := int(math.Round(offset * float64(slideRange)))
	return containerHeight - paddingBottom - coverHeight - slidePixels
}

// SlideOffsetFromTop converts a content top back into a slide offset.
// ok is false when there is no slide range; callers pin the offset at 1.
func SlideOffsetFromTop(top, collapsedTop, slideRange int) (offset float64, ok bool) {
	if slideRange <= 0 {
		return 1, false
	}
	return float64(collapsedTop-top) / float64(slideRange), true
}

// SlideRange returns the draggable range for g.
func (g Geometry) SlideRange() int {
	return SlideRange(g.ContentHeight, g.CoverHeight)
}

// TopAt returns the content top for offset.
func (g Geometry) TopAt(offset float64) int {
	return TopPosition(offset, g.ContainerHeight, g.PaddingBottom, g.CoverHeight, g.SlideRange())
}

// CollapsedTop is the content top at offset 0.
func (g Geometry) CollapsedTop() int {
	return g.TopAt(0)
}

// ExpandedTop is the content top at offset 1.
func (g Geometry) ExpandedTop() int {
	return g.TopAt(1)
}

// OffsetAt returns the slide offset for a content top, pinned at 1 when the
// geometry has no slide range.
func (g Geometry) OffsetAt(top int) float64 {
	offset, _ := SlideOffsetFromTop(top, g.CollapsedTop(), g.SlideRange())
	return offset
}

// ClampTop limits top to [ExpandedTop, CollapsedTop].
func (g Geometry) ClampTop(top int) int {
	return clamp(top, g.ExpandedTop(), g.CollapsedTop())
}

// Draggable reports whether the content has any range to travel.
func (g Geometry) Draggable() bool {
	return g.SlideRange() > 0
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

func clampOffset(offset float64) float64 {
	return math.Min(math.Max(offset, 0), 1)
}
