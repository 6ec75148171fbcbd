package panel

import "time"

// DefaultVelocityWindow is how far back samples count towards the estimate.
const DefaultVelocityWindow = 100 * time.Millisecond

type velocitySample struct {
	at time.Time
	y  int
}

// VelocityTracker estimates vertical pointer velocity from timestamped
// samples, for hosts that do not report one.
type VelocityTracker struct {
	window  time.Duration
	samples []velocitySample
}

// NewVelocityTracker returns a tracker that only considers samples younger than
// window relative to the newest one.
func NewVelocityTracker(window time.Duration) *VelocityTracker {
	if window <= 0 {
		window = DefaultVelocityWindow
	}
	return &VelocityTracker{window: window}
}

// Add records a sample.
func (v *VelocityTracker) Add(at time.Time, y int) {
	v.samples = append(v.samples, velocitySample{at: at, y: y})
	v.prune(at)
}

// Clear drops all samples.
func (v *VelocityTracker) Clear() {
	v.samples = v.samples[:0]
}

// Velocity returns units per second between the oldest sample in the window
// and the newest. Zero when fewer than two samples are available.
func (v *VelocityTracker) Velocity() float64 {
	if len(v.samples) < 2 {
		return 0
	}
	first := v.samples[0]
	last := v.samples[len(v.samples)-1]
	elapsed := last.at.Sub(first.at).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(last.y-first.y) / elapsed
}

func (v *VelocityTracker) prune(now time.Time) {
	cut := 0
	for cut < len(v.samples)-1 && now.Sub(v.samples[cut].at) > v.window {
		cut++
	}
	if cut > 0 {
		v.samples = append(v.samples[:0], v.samples[cut:]...)
	}
}
