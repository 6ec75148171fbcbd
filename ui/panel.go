package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"

	"switcherpanel/inspect"
	"switcherpanel/log"
	"switcherpanel/panel"
	"switcherpanel/ui/layout"
)

// Tab is one page of the switcher. Its lines are shown in the content surface
// while it is selected.
type Tab struct {
	Title string
	Lines []string
}

// FrameMsg advances a running settle animation by one frame.
type FrameMsg struct {
	At time.Time
}

const contentHandle = "━━━━━━"

// Panel hosts a panel.Engine in the terminal. Terminal rows are the engine's
// units and mouse events are its pointer stream.
type Panel struct {
	engine  *panel.Engine
	tracker *panel.VelocityTracker
	now     func() time.Time

	tabs     []Tab
	selected int

	constraints layout.Constraints
	degradation layout.Degradation

	// frameRequested is set by the engine's scheduler hook and consumed by
	// nextFrame.
	frameRequested bool
	// ticking is true while a FrameMsg is in flight.
	ticking      bool
	settleFrames int
}

// NewPanel creates a panel showing tabs.
func NewPanel(opts panel.Options, tabs []Tab) *Panel {
	p := &Panel{
		engine:  panel.NewEngine(opts),
		tracker: panel.NewVelocityTracker(panel.DefaultVelocityWindow),
		now:     time.Now,
		tabs:    tabs,
	}
	p.engine.SetScheduler(panel.FrameSchedulerFunc(func() {
		p.frameRequested = true
	}))
	return p
}

// Engine returns the underlying engine.
func (p *Panel) Engine() *panel.Engine {
	return p.engine
}

// SetListener forwards status changes to l.
func (p *Panel) SetListener(l panel.Listener) {
	p.engine.SetListener(l)
}

// SetClock replaces the clock used for velocity samples.
func (p *Panel) SetClock(now func() time.Time) {
	p.now = now
}

// SetSize measures the panel for the given layout.
func (p *Panel) SetSize(c layout.Constraints, d layout.Degradation) error {
	p.constraints = c
	p.degradation = d

	if c.CoverHeight != p.engine.Options().CoverHeight {
		p.engine.SetCoverHeight(c.CoverHeight)
	}
	w, h := c.PanelSpecs()
	if _, err := p.engine.Measure(w, h, panel.Padding{}, c.PanelChildren()); err != nil {
		return fmt.Errorf("failed to measure panel: %w", err)
	}
	return nil
}

// HandleMouse feeds a mouse event to the engine. It reports whether the
// engine consumed it.
func (p *Panel) HandleMouse(msg tea.MouseMsg) (bool, tea.Cmd) {
	ev, ok := p.pointerEvent(msg)
	if !ok {
		return false, nil
	}
	log.InputTrace("mouse %s at %d,%d v=%.1f", ev.Phase, ev.X, ev.Y, ev.VelocityY)
	consumed := p.engine.HandlePointer(ev)
	return consumed, p.nextFrame()
}

// pointerEvent translates a terminal mouse event into panel coordinates.
func (p *Panel) pointerEvent(msg tea.MouseMsg) (panel.PointerEvent, bool) {
	x := msg.X - p.constraints.PanelLeft
	y := msg.Y
	now := p.now()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return panel.PointerEvent{}, false
		}
		p.tracker.Clear()
		p.tracker.Add(now, y)
		return panel.PointerEvent{Phase: panel.PointerDown, X: x, Y: y}, true
	case tea.MouseActionMotion:
		if msg.Button != tea.MouseButtonLeft {
			return panel.PointerEvent{}, false
		}
		p.tracker.Add(now, y)
		return panel.PointerEvent{Phase: panel.PointerMove, X: x, Y: y}, true
	case tea.MouseActionRelease:
		p.tracker.Add(now, y)
		v := p.tracker.Velocity()
		p.tracker.Clear()
		return panel.PointerEvent{Phase: panel.PointerUp, X: x, Y: y, VelocityY: v}, true
	}
	return panel.PointerEvent{}, false
}

// Frame handles a FrameMsg.
func (p *Panel) Frame(msg FrameMsg) tea.Cmd {
	p.ticking = false
	if p.engine.State() != panel.StateSettling {
		return nil
	}
	start := time.Now()

	more := p.engine.ContinueSettling()
	p.settleFrames++
	log.FrameTrace("frame %d top=%d offset=%.3f status=%s",
		p.settleFrames, p.engine.Top(), p.engine.Offset(), p.engine.Status())
	log.GetProfiler().RecordFrame(time.Since(start))

	if !more {
		log.GetProfiler().RecordSettle(p.settleFrames)
		p.settleFrames = 0
	}
	return p.nextFrame()
}

// nextFrame schedules a FrameMsg when the engine asked for one while settling.
func (p *Panel) nextFrame() tea.Cmd {
	requested := p.frameRequested
	p.frameRequested = false
	if !requested || p.ticking || p.engine.State() != panel.StateSettling {
		return nil
	}
	p.ticking = true
	return tea.Tick(p.engine.Options().FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{At: t}
	})
}

// Expand slides the content up.
func (p *Panel) Expand() tea.Cmd {
	p.engine.Expand()
	return p.nextFrame()
}

// Collapse slides the content down.
func (p *Panel) Collapse() tea.Cmd {
	p.engine.Collapse()
	return p.nextFrame()
}

// Toggle flips between expanded and collapsed.
func (p *Panel) Toggle() tea.Cmd {
	p.engine.Toggle()
	return p.nextFrame()
}

// ToggleContent hides or shows the content surface.
func (p *Panel) ToggleContent() {
	p.engine.SetVisible(panel.SurfaceContent, !p.engine.Visible(panel.SurfaceContent))
}

// SetEnabled locks or unlocks the panel.
func (p *Panel) SetEnabled(enabled bool) {
	p.engine.SetEnabled(enabled)
	if !enabled {
		p.tracker.Clear()
	}
}

// Enabled reports whether the panel accepts input.
func (p *Panel) Enabled() bool {
	return p.engine.Enabled()
}

// SelectTab selects the tab at i, wrapping around.
func (p *Panel) SelectTab(i int) {
	if len(p.tabs) == 0 {
		return
	}
	p.selected = ((i % len(p.tabs)) + len(p.tabs)) % len(p.tabs)
}

// NextTab selects the next tab.
func (p *Panel) NextTab() {
	p.SelectTab(p.selected + 1)
}

// PrevTab selects the previous tab.
func (p *Panel) PrevTab() {
	p.SelectTab(p.selected - 1)
}

// Selected returns the selected tab index.
func (p *Panel) Selected() int {
	return p.selected
}

func (p *Panel) selectedTab() Tab {
	if len(p.tabs) == 0 {
		return Tab{}
	}
	return p.tabs[p.selected]
}

// String renders the panel, one line per container row.
func (p *Panel) String() string {
	done := log.GetProfiler().StartRender("panel")
	defer done()

	width := p.constraints.PanelWidth
	height := p.constraints.PanelHeight
	if width <= 0 || height <= 0 {
		return ""
	}

	e := p.engine
	switcherTop := e.ParallaxUnits()
	switcherBottom := switcherTop + e.SwitcherHeight()
	contentBounds := e.ContentBounds()
	shadow := e.ShadowBounds()
	showShadow := !p.degradation.HideShadow && !shadow.Empty() && e.Visible(panel.SurfaceContent)

	blank := strings.Repeat(" ", width)
	rows := make([]string, height)
	for r := 0; r < height; r++ {
		switch {
		case e.Visible(panel.SurfaceContent) && r >= contentBounds.Top && r <= contentBounds.Bottom:
			rows[r] = p.contentRow(r-contentBounds.Top, width)
		case showShadow && r >= shadow.Top && r <= shadow.Bottom:
			rows[r] = shadowRow(r-shadow.Top, shadow.Bottom-shadow.Top+1, width)
		case e.Visible(panel.SurfaceSwitcher) && r >= switcherTop && r < switcherBottom:
			rows[r] = p.switcherRow(r-switcherTop, width)
		default:
			rows[r] = blank
		}
	}
	return strings.Join(rows, "\n")
}

func (p *Panel) switcherRow(i, width int) string {
	switch i {
	case 0:
		return p.tabsRow(width)
	case 1:
		tab := p.selectedTab()
		hint := fmt.Sprintf("%s · %d items", tab.Title, len(tab.Lines))
		return SurfaceStyles.Switcher.Render(fitWidth(" "+hint, width))
	default:
		return SurfaceStyles.Switcher.Render(strings.Repeat(" ", width))
	}
}

func (p *Panel) tabsRow(width int) string {
	var b strings.Builder
	used := 0
	for i, tab := range p.tabs {
		label := tab.Title
		if p.degradation.ShortTabLabels {
			label = firstRune(label)
		}
		label = " " + label + " "
		w := runewidth.StringWidth(label)
		if used+w > width {
			break
		}
		if i == p.selected {
			b.WriteString(SurfaceStyles.TabActive.Render(label))
		} else {
			b.WriteString(SurfaceStyles.Tab.Render(label))
		}
		used += w
	}
	if used < width {
		b.WriteString(SurfaceStyles.Switcher.Render(strings.Repeat(" ", width-used)))
	}
	return b.String()
}

func (p *Panel) contentRow(j, width int) string {
	if j == 0 {
		return SurfaceStyles.Content.Render(center(contentHandle, width))
	}
	j--

	tab := p.selectedTab()
	if !p.degradation.HideContentHeader {
		if j == 0 {
			return SurfaceStyles.Header.Render(fitWidth(" "+tab.Title, width))
		}
		j--
	}
	line := ""
	if j < len(tab.Lines) {
		line = " " + tab.Lines[j]
	}
	return SurfaceStyles.Content.Render(fitWidth(line, width))
}

// shadowRow returns row i of an n row shadow, densest next to the content.
func shadowRow(i, n, width int) string {
	level := len(shadowGlyphs) - n + i
	if level < 0 {
		level = 0
	}
	return SurfaceStyles.Shadow.Render(strings.Repeat(shadowGlyphs[level], width))
}

// fitWidth truncates or pads s to exactly width cells.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = truncate.StringWithTail(s, uint(width), "…")
	if w := ansi.PrintableRuneWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

func center(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return fitWidth(s, width)
	}
	left := (width - w) / 2
	return fitWidth(strings.Repeat(" ", left)+s, width)
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return s
}

var _ inspect.Introspectable = (*Panel)(nil)

// InspectNode reports the panel geometry and state.
func (p *Panel) InspectNode() *inspect.Node {
	e := p.engine
	g := e.Geometry()
	c := p.constraints
	content := e.ContentBounds()

	tab := p.selectedTab()
	switcher := inspect.NewNode("Switcher").
		WithBounds(c.PanelLeft, e.ParallaxUnits(), c.PanelWidth, e.SwitcherHeight()).
		WithVisible(e.Visible(panel.SurfaceSwitcher)).
		WithState("parallax", e.Parallax()).
		WithState("selected_tab", p.selected).
		WithStyles(inspect.ExtractStyleInfo(SurfaceStyles.Switcher, "switcher"))
	for i, t := range p.tabs {
		shown := t.Title
		if p.degradation.ShortTabLabels {
			shown = firstRune(t.Title)
		}
		switcher.AddChild(inspect.NewNode("Tab").
			WithID(fmt.Sprintf("tab-%d", i)).
			WithShown(t.Title, shown).
			WithState("active", i == p.selected))
	}

	contentNode := inspect.NewNode("Content").
		WithRect(content, c.PanelLeft).
		WithVisible(e.Visible(panel.SurfaceContent)).
		WithContent(tab.Title).
		WithState("lines", len(tab.Lines)).
		WithStyles(inspect.ExtractStyleInfo(SurfaceStyles.Content, "content"))

	return inspect.NewNode("Panel").
		WithBounds(c.PanelLeft, 0, c.PanelWidth, c.PanelHeight).
		WithState("status", e.Status().String()).
		WithState("state", e.State().String()).
		WithState("offset", e.Offset()).
		WithState("raw_offset", e.RawOffset()).
		WithState("top", e.Top()).
		WithState("slide_range", g.SlideRange()).
		WithState("enabled", e.Enabled()).
		AddChild(switcher).
		AddChild(contentNode)
}
