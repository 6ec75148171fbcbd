package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestPlaceOverlay(t *testing.T) {
	bg := strings.Join([]string{
		"..........",
		"..........",
		"..........",
		"..........",
	}, "\n")

	tests := []struct {
		name   string
		x, y   int
		fg     string
		center bool
		want   []string
	}{
		{
			name: "top left",
			x:    0, y: 0,
			fg: "ab\ncd",
			want: []string{
				"ab........",
				"cd........",
				"..........",
				"..........",
			},
		},
		{
			name: "offset",
			x:    3, y: 1,
			fg: "ab",
			want: []string{
				"..........",
				"...ab.....",
				"..........",
				"..........",
			},
		},
		{
			name:   "centered",
			fg:     "ab\ncd",
			center: true,
			want: []string{
				"..........",
				"....ab....",
				"....cd....",
				"..........",
			},
		},
		{
			name: "clamped to the right edge",
			x:    9, y: 3,
			fg: "abc",
			want: []string{
				"..........",
				"..........",
				"..........",
				".......abc",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlaceOverlay(tt.x, tt.y, tt.fg, bg, tt.center)
			assert.Equal(t, strings.Join(tt.want, "\n"), got)
		})
	}
}

func TestPlaceOverlayLargerThanBackground(t *testing.T) {
	fg := "0123456789ab\n0123456789ab\n0123456789ab\n0123456789ab\n0123456789ab"
	assert.Equal(t, fg, PlaceOverlay(0, 0, fg, "....\n....", true))
}

func TestPlaceOverlayBoxDrawing(t *testing.T) {
	bg := "░░░░░░\n━━━━━━"
	got := PlaceOverlay(2, 1, "xy", bg, false)
	assert.Equal(t, "░░░░░░\n━━xy━━", got)
}

func TestPlaceOverlayKeepsBackgroundStyle(t *testing.T) {
	bg := "\x1b[31m..........\x1b[0m"
	got := PlaceOverlay(4, 0, "ab", bg, false)

	assert.Contains(t, got, "ab")
	assert.True(t, strings.HasPrefix(got, "\x1b[31m...."), "left part keeps its styling: %q", got)
	assert.Contains(t, got, "\x1b[0m")
}

func TestTextOverlayRender(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	o := NewTextOverlay("Keys", "e expand\nc collapse")
	o.SetWidth(30)
	out := o.Render()

	assert.Contains(t, out, "Keys")
	assert.Contains(t, out, "c collapse")
	assert.Contains(t, out, "press any key to close")
	assert.True(t, strings.HasPrefix(out, "╭"), "rounded border")
	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, 32, lipgloss.Width(line), "width plus border: %q", line)
	}

	o.SetContent("replaced")
	assert.Contains(t, o.Render(), "replaced")
}
