package panel

import (
	"math"
	"time"
)

const (
	// BaseSettleDuration is the settle time for a non-fling release over the full range.
	BaseSettleDuration = 256 * time.Millisecond
	// MaxSettleDuration caps any settle.
	MaxSettleDuration = 600 * time.Millisecond
	// DefaultFrameInterval is one frame at 60fps.
	DefaultFrameInterval = 16 * time.Millisecond
)

// settleDuration returns how long moving distance units should take.
// A fling derives it from the release velocity, anything else from the
// distance relative to the slide range.
func settleDuration(distance, slideRange int, velocity float64, fling bool) time.Duration {
	if distance == 0 {
		return 0
	}
	d := math.Abs(float64(distance))

	var dur time.Duration
	if fling && velocity != 0 {
		dur = time.Duration(4 * d / math.Abs(velocity) * float64(time.Second))
	} else {
		ratio := 1.0
		if slideRange > 0 {
			ratio += d / float64(slideRange)
		}
		dur = time.Duration(ratio * float64(BaseSettleDuration))
	}
	if dur > MaxSettleDuration {
		dur = MaxSettleDuration
	}
	return dur
}

// settler interpolates linearly from start to target over a fixed number of
// frames.
type settler struct {
	start  int
	target int
	frames int
	frame  int
}

func newSettler(start, target int, duration, frameInterval time.Duration) *settler {
	frames := 1
	if frameInterval > 0 && duration > 0 {
		frames = int(math.Ceil(float64(duration) / float64(frameInterval)))
		if frames < 1 {
			frames = 1
		}
	}
	return &settler{start: start, target: target, frames: frames}
}

// step advances one frame and returns the new top and whether the target was
// reached.
func (s *settler) step() (int, bool) {
	s.frame++
	if s.frame >= s.frames {
		return s.target, true
	}
	t := float64(s.frame) / float64(s.frames)
	top := s.start + int(math.Round(float64(s.target-s.start)*t))
	return top, top == s.target
}
