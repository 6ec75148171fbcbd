package panel

import "math"

// Parallax returns the vertical translation of the switcher surface.
// The result is never positive; negative offsets count as 0.
func Parallax(offset float64, parallaxOffset int) float64 {
	if parallaxOffset <= 0 || offset <= 0 {
		return 0
	}
	return -float64(parallaxOffset) * offset
}

// SwitcherHeight returns the switcher layout height for a frame.
// While an elastic over-drag pushes the raw offset below 0 the switcher grows
// to follow the pointer; otherwise it keeps its measured height.
func SwitcherHeight(rawOffset float64, rawTop, paddingBottom, measured int) int {
	if rawOffset >= 0 {
		return measured
	}
	grown := rawTop - paddingBottom
	if grown < measured {
		return measured
	}
	return grown
}

// roundParallax rounds a parallax translation to whole units.
func roundParallax(v float64) int {
	return int(math.Round(v))
}
