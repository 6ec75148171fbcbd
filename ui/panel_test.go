package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"switcherpanel/panel"
	"switcherpanel/testing/snapshot"
	"switcherpanel/ui/layout"
)

func testTabs() []Tab {
	return []Tab{
		{Title: "Inbox", Lines: []string{"first message", "second message", "third message", "fourth message"}},
		{Title: "Today", Lines: []string{"standup"}},
		{Title: "Archive"},
	}
}

func testOptions() panel.Options {
	return panel.Options{
		CoverHeight:      3,
		MinFlingVelocity: 20,
		ShadowHeight:     1,
		InitialStatus:    panel.StatusExpanded,
		TapToExpand:      true,
		ElasticOverdrag:  true,
		FrameInterval:    16 * time.Millisecond,
	}
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// newTestPanel returns a panel measured for a width x height terminal and a
// clock that advances 10ms per mouse event.
func newTestPanel(t *testing.T, opts panel.Options, width, height int) (*Panel, *fakeClock) {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)

	p := NewPanel(opts, testTabs())
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	p.SetClock(func() time.Time {
		clock.Advance(10 * time.Millisecond)
		return clock.Now()
	})

	c := layout.ComputeConstraints(width, height, 3, opts.CoverHeight)
	require.NoError(t, p.SetSize(c, layout.ComputeDegradation(c)))
	return p, clock
}

func mouse(action tea.MouseAction, button tea.MouseButton, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

// drag presses at fromY, moves row by row to toY and releases.
func drag(p *Panel, x, fromY, toY int) tea.Cmd {
	p.HandleMouse(mouse(tea.MouseActionPress, tea.MouseButtonLeft, x, fromY))
	step := 1
	if toY < fromY {
		step = -1
	}
	for y := fromY + step; y != toY+step; y += step {
		p.HandleMouse(mouse(tea.MouseActionMotion, tea.MouseButtonLeft, x, y))
	}
	_, cmd := p.HandleMouse(mouse(tea.MouseActionRelease, tea.MouseButtonNone, x, toY))
	return cmd
}

// runFrames feeds frames until the settle ends and returns how many it took.
func runFrames(t *testing.T, p *Panel) int {
	t.Helper()
	frames := 0
	for p.Engine().State() == panel.StateSettling {
		p.Frame(FrameMsg{})
		frames++
		require.Less(t, frames, 200, "settle did not finish")
	}
	return frames
}

func TestPanelRenderExpanded(t *testing.T) {
	p, _ := newTestPanel(t, testOptions(), 80, 24)
	out := p.String()
	snap := snapshot.New(t)

	assert.Equal(t, 21, snapshot.Lines(out), "one line per panel row")
	assert.Equal(t, 80, snapshot.Width(out))

	snap.AssertRow(out, 0, " Inbox  Today  Archive ")
	snap.AssertRow(out, 1, "Inbox · 4 items")
	snap.AssertRow(out, 2, "▓▓▓▓")
	snap.AssertRow(out, 3, contentHandle)
	snap.AssertRow(out, 4, " Inbox")
	snap.AssertRow(out, 5, "first message")
	snap.AssertRow(out, 8, "fourth message")

	for i := 0; i < 21; i++ {
		row, _ := snapshot.Row(out, i)
		assert.Equal(t, 80, snapshot.Width(row), "row %d", i)
	}
}

func TestPanelCollapseAnimates(t *testing.T) {
	p, _ := newTestPanel(t, testOptions(), 80, 24)

	cmd := p.Collapse()
	require.NotNil(t, cmd, "a settle schedules a frame")
	assert.Equal(t, panel.StatusCollapsed, p.Engine().Status())
	assert.Equal(t, panel.StateSettling, p.Engine().State())

	assert.Nil(t, p.nextFrame(), "only one frame in flight")

	// 32 planned frames of 16ms; rounding lands on the target one frame early.
	assert.Equal(t, 31, runFrames(t, p))
	assert.Equal(t, 18, p.Engine().Top())

	out := p.String()
	assert.Equal(t, 18, snapshot.FindRow(out, contentHandle))
	snapshot.New(t).AssertRow(out, 17, "▓")
	row, _ := snapshot.Row(out, 10)
	assert.Empty(t, strings.TrimSpace(row), "gap between switcher and content is blank")

	assert.Nil(t, p.Frame(FrameMsg{}), "no frames once idle")
}

func TestPanelMouseDragCollapses(t *testing.T) {
	p, _ := newTestPanel(t, testOptions(), 80, 24)

	var events []panel.Status
	p.SetListener(panel.Listener{
		OnExpanded:  func() { events = append(events, panel.StatusExpanded) },
		OnCollapsed: func() { events = append(events, panel.StatusCollapsed) },
		OnFling:     func() { events = append(events, panel.StatusFling) },
	})

	cmd := drag(p, 10, 5, 10)
	require.NotNil(t, cmd)
	assert.Equal(t, panel.StatusFling, p.Engine().Status())

	runFrames(t, p)
	assert.Equal(t, panel.StatusCollapsed, p.Engine().Status())
	assert.Equal(t, 18, p.Engine().Top())
	assert.Equal(t, []panel.Status{panel.StatusFling, panel.StatusCollapsed}, events)
}

func TestPanelMouseDragUpExpands(t *testing.T) {
	opts := testOptions()
	opts.InitialStatus = panel.StatusCollapsed
	opts.TapToExpand = false
	p, _ := newTestPanel(t, opts, 80, 24)
	require.Equal(t, 18, p.Engine().Top())

	drag(p, 10, 19, 12)
	runFrames(t, p)

	assert.Equal(t, panel.StatusExpanded, p.Engine().Status())
	assert.Equal(t, 3, p.Engine().Top())
}

func TestPanelTapExpandsCollapsed(t *testing.T) {
	opts := testOptions()
	opts.InitialStatus = panel.StatusCollapsed
	p, _ := newTestPanel(t, opts, 80, 24)

	consumed, cmd := p.HandleMouse(mouse(tea.MouseActionPress, tea.MouseButtonLeft, 40, 19))
	assert.True(t, consumed)
	assert.NotNil(t, cmd)
	assert.Equal(t, panel.StatusExpanded, p.Engine().Status())

	runFrames(t, p)
	assert.Equal(t, 3, p.Engine().Top())
}

func TestPanelIgnoresOtherButtons(t *testing.T) {
	p, _ := newTestPanel(t, testOptions(), 80, 24)

	consumed, cmd := p.HandleMouse(mouse(tea.MouseActionPress, tea.MouseButtonRight, 10, 5))
	assert.False(t, consumed)
	assert.Nil(t, cmd)

	consumed, _ = p.HandleMouse(mouse(tea.MouseActionPress, tea.MouseButtonWheelDown, 10, 5))
	assert.False(t, consumed)
	assert.Equal(t, panel.StateIdle, p.Engine().State())
}

func TestPanelPressOutsideContent(t *testing.T) {
	p, _ := newTestPanel(t, testOptions(), 80, 24)

	consumed, _ := p.HandleMouse(mouse(tea.MouseActionPress, tea.MouseButtonLeft, 10, 1))
	assert.False(t, consumed, "the switcher is not draggable")
	assert.Equal(t, panel.StateIdle, p.Engine().State())
}

func TestPanelMarginShiftsPointer(t *testing.T) {
	opts := testOptions()
	opts.InitialStatus = panel.StatusCollapsed
	p, _ := newTestPanel(t, opts, 140, 50)
	require.Equal(t, 2, p.constraints.PanelLeft)

	consumed, _ := p.HandleMouse(mouse(tea.MouseActionPress, tea.MouseButtonLeft, 1, 45))
	assert.False(t, consumed, "left margin is outside the content")

	consumed, _ = p.HandleMouse(mouse(tea.MouseActionPress, tea.MouseButtonLeft, 2, 45))
	assert.True(t, consumed)
}

func TestPanelLockedIgnoresInput(t *testing.T) {
	p, _ := newTestPanel(t, testOptions(), 80, 24)
	p.SetEnabled(false)

	assert.False(t, p.Enabled())
	assert.Nil(t, drag(p, 10, 5, 10))
	assert.Nil(t, p.Collapse())
	assert.Equal(t, panel.StatusExpanded, p.Engine().Status())

	p.SetEnabled(true)
	assert.NotNil(t, p.Collapse())
}

func TestPanelToggleContent(t *testing.T) {
	p, _ := newTestPanel(t, testOptions(), 80, 24)

	p.ToggleContent()
	out := p.String()
	assert.Equal(t, -1, snapshot.FindRow(out, contentHandle))
	assert.Equal(t, -1, snapshot.FindRow(out, "▓"), "no shadow without content")
	assert.Equal(t, 21, snapshot.Lines(out))

	p.ToggleContent()
	assert.Equal(t, 3, snapshot.FindRow(p.String(), contentHandle))
}

func TestPanelParallax(t *testing.T) {
	opts := testOptions()
	opts.ParallaxOffset = 1
	p, _ := newTestPanel(t, opts, 80, 24)

	out := p.String()
	snapshot.New(t).AssertRow(out, 0, "Inbox · 4 items")
	assert.Equal(t, -1, snapshot.FindRow(out, " Today "), "tab row slid out of view")

	p.Collapse()
	runFrames(t, p)
	snapshot.New(t).AssertRow(p.String(), 0, " Today ")
}

func TestPanelTabs(t *testing.T) {
	p, _ := newTestPanel(t, testOptions(), 80, 24)

	p.NextTab()
	assert.Equal(t, 1, p.Selected())
	snapshot.New(t).AssertRow(p.String(), 1, "Today · 1 items")

	p.NextTab()
	p.NextTab()
	assert.Equal(t, 0, p.Selected(), "wraps forward")

	p.PrevTab()
	assert.Equal(t, 2, p.Selected(), "wraps backward")

	empty := NewPanel(testOptions(), nil)
	empty.NextTab()
	assert.Equal(t, 0, empty.Selected())
}

func TestPanelDegradation(t *testing.T) {
	p, _ := newTestPanel(t, testOptions(), 50, 13)
	out := p.String()

	assert.Equal(t, -1, snapshot.FindRow(out, "▓"), "shadow hidden")
	assert.Equal(t, 50, snapshot.Width(out))

	tabs, _ := snapshot.Row(out, 0)
	assert.Contains(t, tabs, " I  T  A ")

	handle := snapshot.FindRow(out, contentHandle)
	require.GreaterOrEqual(t, handle, 0)
	row, _ := snapshot.Row(out, handle+1)
	assert.Contains(t, row, "first message", "header row dropped")
}

func TestPanelResizeKeepsOffset(t *testing.T) {
	p, _ := newTestPanel(t, testOptions(), 80, 24)
	p.Collapse()
	runFrames(t, p)

	c := layout.ComputeConstraints(140, 50, 3, 3)
	require.NoError(t, p.SetSize(c, layout.ComputeDegradation(c)))

	assert.Equal(t, panel.StatusCollapsed, p.Engine().Status())
	assert.Equal(t, 0.0, p.Engine().Offset())
	assert.Equal(t, c.PanelHeight-3, p.Engine().Top())
}

func TestPanelSizeShrinksCover(t *testing.T) {
	opts := testOptions()
	opts.CoverHeight = 40
	p, _ := newTestPanel(t, opts, 80, 24)

	assert.Equal(t, 16, p.Engine().Options().CoverHeight, "cover clamped to the panel")
	assert.Equal(t, 2, p.Engine().Geometry().SlideRange())
}

func TestPanelInspectNode(t *testing.T) {
	p, _ := newTestPanel(t, testOptions(), 50, 13)
	node := p.InspectNode()

	assert.Equal(t, "Panel", node.Type)
	assert.Equal(t, "expanded", node.State["status"])
	assert.Equal(t, "idle", node.State["state"])

	switcher := node.Find("Switcher")
	require.NotNil(t, switcher)
	assert.Len(t, switcher.Children, 3)
	assert.Equal(t, "tab-0", switcher.Children[0].ID)
	require.NotNil(t, switcher.Children[2].Truncated)
	assert.Equal(t, 7, switcher.Children[2].Truncated.OriginalLength)

	content := node.Find("Content")
	require.NotNil(t, content)
	assert.Equal(t, "Inbox", content.Content)
	assert.True(t, content.Visible)
	assert.Equal(t, 2, content.Bounds.Y, "expanded top of an 11 row panel")
}

func TestFitWidth(t *testing.T) {
	assert.Equal(t, "abc  ", fitWidth("abc", 5))
	assert.Equal(t, "abcd…", fitWidth("abcdefgh", 5))
	assert.Equal(t, "", fitWidth("abc", 0))
	assert.Equal(t, "  ab  ", center("ab", 6))
}
