package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// scenarioGeometry is an 800 high container with a 700 high content and a
// 100 cover, giving a 600 slide range.
func scenarioGeometry() Geometry {
	return Geometry{
		ContainerHeight: 800,
		CoverHeight:     100,
		ContentHeight:   700,
		SwitcherHeight:  100,
	}
}

func TestSlideRange(t *testing.T) {
	tests := []struct {
		name    string
		content int
		cover   int
		want    int
	}{
		{name: "normal", content: 700, cover: 100, want: 600},
		{name: "equal", content: 100, cover: 100, want: 0},
		{name: "cover larger than content", content: 50, cover: 100, want: 0},
		{name: "no cover", content: 20, cover: 0, want: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SlideRange(tt.content, tt.cover))
		})
	}
}

func TestTopPositionScenario(t *testing.T) {
	g := scenarioGeometry()

	assert.Equal(t, 600, g.SlideRange())
	assert.Equal(t, 700, g.CollapsedTop())
	assert.Equal(t, 100, g.ExpandedTop())
	assert.Equal(t, 400, g.TopAt(0.5))

	g.PaddingBottom = 20
	assert.Equal(t, 680, g.CollapsedTop(), "bottom padding lifts the collapsed top")
	assert.Equal(t, 80, g.ExpandedTop())
}

func TestTopPositionIsMonotonic(t *testing.T) {
	g := scenarioGeometry()

	prev := g.TopAt(0)
	for i := 1; i <= 1000; i++ {
		top := g.TopAt(float64(i) / 1000)
		assert.LessOrEqual(t, top, prev, "top must not increase with offset (step %d)", i)
		prev = top
	}
}

func TestSlideOffsetRoundTrip(t *testing.T) {
	geometries := []Geometry{
		scenarioGeometry(),
		{ContainerHeight: 24, CoverHeight: 3, ContentHeight: 21, PaddingBottom: 1},
		{ContainerHeight: 1080, CoverHeight: 96, ContentHeight: 977},
	}

	for _, g := range geometries {
		slideRange := g.SlideRange()
		// TopPosition rounds to whole units.
		tolerance := 0.5/float64(slideRange) + 1e-9
		for i := 0; i <= 100; i++ {
			offset := float64(i) / 100
			top := TopPosition(offset, g.ContainerHeight, g.PaddingBottom, g.CoverHeight, slideRange)
			got, ok := SlideOffsetFromTop(top, g.CollapsedTop(), slideRange)
			assert.True(t, ok)
			assert.InDelta(t, offset, got, tolerance, "range %d offset %.2f", slideRange, offset)
		}
	}
}

func TestSlideOffsetFromTopWithoutRange(t *testing.T) {
	offset, ok := SlideOffsetFromTop(50, 50, 0)
	assert.False(t, ok)
	assert.Equal(t, 1.0, offset)

	g := Geometry{ContainerHeight: 100, CoverHeight: 40, ContentHeight: 30}
	assert.False(t, g.Draggable())
	assert.Equal(t, 1.0, g.OffsetAt(60))
}

func TestClampTop(t *testing.T) {
	g := scenarioGeometry()

	assert.Equal(t, 100, g.ClampTop(-20))
	assert.Equal(t, 350, g.ClampTop(350))
	assert.Equal(t, 700, g.ClampTop(760))
}

func TestParallax(t *testing.T) {
	tests := []struct {
		name   string
		offset float64
		px     int
		want   float64
	}{
		{name: "expanded", offset: 1, px: 50, want: -50},
		{name: "half", offset: 0.5, px: 50, want: -25},
		{name: "collapsed", offset: 0, px: 50, want: 0},
		{name: "negative offset", offset: -0.3, px: 50, want: 0},
		{name: "disabled", offset: 1, px: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parallax(tt.offset, tt.px)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, got, 0.0)
		})
	}
}

func TestSwitcherHeight(t *testing.T) {
	assert.Equal(t, 100, SwitcherHeight(0.4, 400, 0, 100), "no excursion keeps the measured height")
	assert.Equal(t, 740, SwitcherHeight(-0.06, 740, 0, 100), "excursion follows the pointer")
	assert.Equal(t, 730, SwitcherHeight(-0.06, 740, 10, 100), "bottom padding is subtracted")
	assert.Equal(t, 100, SwitcherHeight(-0.01, 50, 0, 100), "never shrinks below the measured height")
}

func TestRectContains(t *testing.T) {
	r := Rect{Left: 0, Top: 700, Right: 479, Bottom: 799}

	assert.True(t, r.Contains(0, 700), "top left corner is inclusive")
	assert.True(t, r.Contains(479, 799), "bottom right corner is inclusive")
	assert.True(t, r.Contains(200, 750))
	assert.False(t, r.Contains(480, 750))
	assert.False(t, r.Contains(200, 699))
	assert.False(t, r.Empty())
	assert.True(t, Rect{Left: 0, Right: -1}.Empty())
}
