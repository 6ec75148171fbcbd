package panel

import "time"

// Options configure an Engine.
type Options struct {
	// CoverHeight is the part of the content that stays visible when collapsed.
	CoverHeight int
	// ParallaxOffset is how far the switcher moves up when fully expanded.
	ParallaxOffset int
	// MinFlingVelocity is the release speed (units/s) at which a release counts
	// as a fling. It does not change the settle target.
	MinFlingVelocity float64
	// ShadowHeight is the height of the shadow drawn above the content.
	ShadowHeight int
	// TouchSlop is how far a captured pointer moves before dragging starts.
	TouchSlop int
	// InitialStatus is StatusExpanded or StatusCollapsed.
	InitialStatus Status
	// TapToExpand makes a pointer down on a collapsed content expand it.
	TapToExpand bool
	// ElasticOverdrag lets a drag that started collapsed pull the switcher
	// past the collapsed bound.
	ElasticOverdrag bool
	// FrameInterval is the expected time between ContinueSettling calls.
	FrameInterval time.Duration
}

// DefaultOptions returns options matching the widget's stock behaviour.
func DefaultOptions() Options {
	return Options{
		CoverHeight:      0,
		ParallaxOffset:   0,
		MinFlingVelocity: 400,
		ShadowHeight:     4,
		TouchSlop:        8,
		InitialStatus:    StatusExpanded,
		TapToExpand:      true,
		ElasticOverdrag:  true,
		FrameInterval:    DefaultFrameInterval,
	}
}
