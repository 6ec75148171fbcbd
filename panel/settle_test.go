package panel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSettleDuration(t *testing.T) {
	tests := []struct {
		name     string
		distance int
		velocity float64
		fling    bool
		want     time.Duration
	}{
		{name: "no distance", distance: 0, want: 0},
		{name: "full range", distance: 600, want: 512 * time.Millisecond},
		{name: "half range upward", distance: -300, want: 384 * time.Millisecond},
		{name: "fling", distance: 300, velocity: 6000, fling: true, want: 200 * time.Millisecond},
		{name: "slow fling is capped", distance: 600, velocity: 1000, fling: true, want: MaxSettleDuration},
		{name: "fling without velocity uses distance", distance: 600, fling: true, want: 512 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := settleDuration(tt.distance, 600, tt.velocity, tt.fling)
			assert.InDelta(t, float64(tt.want), float64(got), float64(time.Microsecond))
		})
	}
}

func TestSettlerSteps(t *testing.T) {
	s := newSettler(0, 100, 160*time.Millisecond, 16*time.Millisecond)
	assert.Equal(t, 10, s.frames)

	top, done := s.step()
	assert.Equal(t, 10, top)
	assert.False(t, done)

	prev := top
	for i := 2; i < 10; i++ {
		top, done = s.step()
		assert.Greater(t, top, prev)
		assert.False(t, done)
		prev = top
	}

	top, done = s.step()
	assert.Equal(t, 100, top)
	assert.True(t, done)
}

func TestSettlerShortDurationIsOneFrame(t *testing.T) {
	s := newSettler(700, 100, time.Millisecond, 16*time.Millisecond)
	assert.Equal(t, 1, s.frames)

	top, done := s.step()
	assert.Equal(t, 100, top)
	assert.True(t, done)

	assert.Equal(t, 1, newSettler(0, 5, 0, 16*time.Millisecond).frames)
}
