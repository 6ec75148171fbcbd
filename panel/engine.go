package panel

import (
	"math"

	"switcherpanel/log"
)

// dragSession lives from capture until the gesture's settle completes.
type dragSession struct {
	surface Surface
	downX   int
	downY   int
	lastY   int
	// rawTop is the unclamped top; it only leaves the clamp range during an
	// elastic over-drag.
	rawTop   int
	origin   Status
	velocity float64
}

// Engine is the drag/settle state machine of a switcher panel.
// It is not safe for concurrent use; drive it from one event loop.
type Engine struct {
	opts      Options
	listener  Listener
	scheduler FrameScheduler

	geo          Geometry
	measured     bool
	contentLeft  int
	contentWidth int

	enabled bool
	state   State
	status  Status
	// settledStatus is the last non-fling status; a cancelled gesture
	// returns to it.
	settledStatus Status

	top       int
	offset    float64
	rawOffset float64

	session *dragSession
	settle  *settler

	visible [2]bool
}

// NewEngine creates an enabled engine. It has no geometry until Measure or
// SetGeometry is called.
func NewEngine(opts Options) *Engine {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = DefaultFrameInterval
	}
	if opts.InitialStatus == StatusFling {
		opts.InitialStatus = StatusExpanded
	}

	offset := 1.0
	if opts.InitialStatus == StatusCollapsed {
		offset = 0
	}
	return &Engine{
		opts:          opts,
		enabled:       true,
		state:         StateIdle,
		status:        opts.InitialStatus,
		settledStatus: opts.InitialStatus,
		offset:        offset,
		rawOffset:     offset,
		visible:       [2]bool{true, true},
	}
}

// SetListener replaces the status listener.
func (e *Engine) SetListener(l Listener) {
	e.listener = l
}

// SetScheduler sets the hook used to request animation frames.
func (e *Engine) SetScheduler(s FrameScheduler) {
	e.scheduler = s
}

// Measure runs the panel measurement and applies the result.
func (e *Engine) Measure(width, height SizeSpec, padding Padding, children []Child) (Measurement, error) {
	m, err := Measure(width, height, padding, e.opts.CoverHeight, children)
	if err != nil {
		return Measurement{}, err
	}
	e.contentLeft = m.ContentLeft
	e.contentWidth = m.Content.Width
	e.SetGeometry(m.Geometry)
	return m, nil
}

// SetGeometry applies new measured sizes. A drag in progress is dropped, a
// settle jumps to its target, and the content is placed at the current offset.
func (e *Engine) SetGeometry(g Geometry) {
	snap := -1.0
	if e.state == StateSettling && e.settle != nil {
		snap = clampOffset(e.geo.OffsetAt(e.settle.target))
	} else if e.state != StateIdle {
		e.Cancel()
	}

	e.opts.CoverHeight = g.CoverHeight
	e.geo = g
	e.measured = true
	if snap >= 0 {
		e.offset = snap
		e.layout()
		e.finishSettle()
		return
	}
	e.layout()
}

// SetContentBounds sets the horizontal extent of the content surface used for
// hit-testing.
func (e *Engine) SetContentBounds(left, width int) {
	e.contentLeft = left
	e.contentWidth = width
}

func (e *Engine) layout() {
	if !e.geo.Draggable() {
		e.offset = 1
	}
	e.top = e.geo.TopAt(e.offset)
	e.rawOffset = e.offset
	log.LayoutTrace("panel geometry %+v range=%d top=%d offset=%.3f",
		e.geo, e.geo.SlideRange(), e.top, e.offset)
}

// Geometry returns the current geometry.
func (e *Engine) Geometry() Geometry {
	return e.geo
}

// SetCoverHeight changes the collapsed sliver height and re-lays out.
func (e *Engine) SetCoverHeight(h int) {
	if h < 0 {
		h = 0
	}
	if !e.measured {
		e.opts.CoverHeight = h
		return
	}
	g := e.geo
	g.CoverHeight = h
	e.SetGeometry(g)
}

// SetParallaxOffset sets the parallax magnitude. Negative values disable it.
func (e *Engine) SetParallaxOffset(px int) {
	if px < 0 {
		px = 0
	}
	e.opts.ParallaxOffset = px
}

// SetMinFlingVelocity sets the release speed that counts as a fling.
func (e *Engine) SetMinFlingVelocity(v float64) {
	e.opts.MinFlingVelocity = math.Abs(v)
}

// SetShadowHeight sets the shadow height drawn above the content.
func (e *Engine) SetShadowHeight(h int) {
	if h < 0 {
		h = 0
	}
	e.opts.ShadowHeight = h
}

// SetTouchSlop sets the capture-to-drag threshold.
func (e *Engine) SetTouchSlop(slop int) {
	if slop < 0 {
		slop = 0
	}
	e.opts.TouchSlop = slop
}

// SetTapToExpand toggles tap-to-expand.
func (e *Engine) SetTapToExpand(on bool) {
	e.opts.TapToExpand = on
}

// Options returns the current options.
func (e *Engine) Options() Options {
	return e.opts
}

// SetEnabled enables or disables the engine. Disabling aborts any capture,
// drag or settle without status callbacks.
func (e *Engine) SetEnabled(enabled bool) {
	e.enabled = enabled
	if !enabled {
		e.Cancel()
	}
}

// Enabled reports whether the engine accepts input.
func (e *Engine) Enabled() bool {
	return e.enabled
}

// State returns the interaction state.
func (e *Engine) State() State {
	return e.state
}

// Status returns the externally visible status.
func (e *Engine) Status() Status {
	return e.status
}

// Top returns the content top position.
func (e *Engine) Top() int {
	return e.top
}

// Offset returns the slide offset clamped to [0, 1].
func (e *Engine) Offset() float64 {
	return clampOffset(e.offset)
}

// RawOffset returns the offset of the unclamped drag position. It is only
// negative during an elastic over-drag.
func (e *Engine) RawOffset() float64 {
	return e.rawOffset
}

// Parallax returns the switcher translation for the current frame.
func (e *Engine) Parallax() float64 {
	return Parallax(e.offset, e.opts.ParallaxOffset)
}

// ParallaxUnits returns Parallax rounded to whole units.
func (e *Engine) ParallaxUnits() int {
	return roundParallax(e.Parallax())
}

// SwitcherHeight returns the switcher layout height for the current frame.
func (e *Engine) SwitcherHeight() int {
	rawTop := e.top
	if e.session != nil && e.state == StateDragging {
		rawTop = e.session.rawTop
	}
	return SwitcherHeight(e.rawOffset, rawTop, e.geo.PaddingBottom, e.geo.SwitcherHeight)
}

// ContentBounds returns the on-screen box of the content surface.
func (e *Engine) ContentBounds() Rect {
	bottom := e.top + e.geo.ContentHeight - 1
	if limit := e.geo.ContainerHeight - e.geo.PaddingBottom - 1; bottom > limit {
		bottom = limit
	}
	return Rect{
		Left:   e.contentLeft,
		Top:    e.top,
		Right:  e.contentLeft + e.contentWidth - 1,
		Bottom: bottom,
	}
}

// ShadowBounds returns the box of the shadow above the content. It is empty
// when the shadow height is 0.
func (e *Engine) ShadowBounds() Rect {
	return Rect{
		Left:   e.contentLeft,
		Top:    e.top - e.opts.ShadowHeight,
		Right:  e.contentLeft + e.contentWidth - 1,
		Bottom: e.top - 1,
	}
}

// Visible reports whether a surface is currently shown.
func (e *Engine) Visible(s Surface) bool {
	return e.visible[s]
}

// SetVisible shows or hides a surface. Dragging and sliding show both again.
func (e *Engine) SetVisible(s Surface, visible bool) {
	e.visible[s] = visible
}

func (e *Engine) showAll() {
	e.visible[SurfaceSwitcher] = true
	e.visible[SurfaceContent] = true
}

// HandlePointer feeds one pointer sample to the engine and reports whether
// the engine consumed it.
func (e *Engine) HandlePointer(ev PointerEvent) bool {
	if !e.enabled {
		e.Cancel()
		return false
	}

	switch ev.Phase {
	case PointerDown:
		return e.pointerDown(ev)
	case PointerMove:
		return e.pointerMove(ev)
	case PointerUp:
		return e.pointerUp(ev)
	case PointerCancel:
		consumed := e.session != nil
		e.Cancel()
		return consumed
	}
	return false
}

func (e *Engine) pointerDown(ev PointerEvent) bool {
	if !e.measured {
		return false
	}
	inContent := e.ContentBounds().Contains(ev.X, ev.Y)

	if e.opts.TapToExpand && e.status == StatusCollapsed && inContent {
		log.InputTrace("tap to expand at %d,%d", ev.X, ev.Y)
		e.Expand()
		return true
	}

	if !inContent || !e.geo.Draggable() {
		return false
	}

	// A down during a settle catches the content where it is.
	e.settle = nil
	e.session = &dragSession{
		surface: SurfaceContent,
		downX:   ev.X,
		downY:   ev.Y,
		lastY:   ev.Y,
		rawTop:  e.top,
		origin:  e.settledStatus,
	}
	e.state = StateCaptured
	log.InputTrace("captured content at %d,%d top=%d", ev.X, ev.Y, e.top)
	return true
}

func (e *Engine) pointerMove(ev PointerEvent) bool {
	s := e.session
	if s == nil {
		return false
	}

	switch e.state {
	case StateCaptured:
		if abs(ev.Y-s.downY) <= e.opts.TouchSlop {
			return true
		}
		e.startDrag()
		fallthrough
	case StateDragging:
		e.dragBy(ev.Y - s.lastY)
		s.lastY = ev.Y
		return true
	}
	return false
}

func (e *Engine) startDrag() {
	e.state = StateDragging
	e.showAll()
	e.setStatus(StatusFling)
	log.InputTrace("drag started from %s", e.session.origin)
}

func (e *Engine) dragBy(dy int) {
	s := e.session
	collapsedTop := e.geo.CollapsedTop()
	expandedTop := e.geo.ExpandedTop()

	maxRaw := collapsedTop
	if e.opts.ElasticOverdrag && s.origin == StatusCollapsed {
		maxRaw = e.geo.ContainerHeight - e.geo.PaddingBottom
		if maxRaw < collapsedTop {
			maxRaw = collapsedTop
		}
	}
	s.rawTop = clamp(s.rawTop+dy, expandedTop, maxRaw)

	e.top = clamp(s.rawTop, expandedTop, collapsedTop)
	e.offset = e.geo.OffsetAt(e.top)
	e.rawOffset = e.geo.OffsetAt(s.rawTop)
	e.requestFrame()
}

func (e *Engine) pointerUp(ev PointerEvent) bool {
	s := e.session
	if s == nil {
		return false
	}

	if e.state == StateCaptured {
		e.session = nil
		e.state = StateIdle
		// A tap that caught a settle midway still has to land somewhere.
		if e.status == StatusFling || (e.top != e.geo.ExpandedTop() && e.top != e.geo.CollapsedTop()) {
			e.settleTo(ReleaseTarget(ev.VelocityY, e.geo), ev.VelocityY, false)
		}
		return true
	}
	if e.state != StateDragging {
		return false
	}

	s.velocity = ev.VelocityY
	s.rawTop = e.top
	e.rawOffset = e.offset

	target := ReleaseTarget(ev.VelocityY, e.geo)
	fling := math.Abs(ev.VelocityY) >= e.opts.MinFlingVelocity && ev.VelocityY != 0
	log.InputTrace("release v=%.1f fling=%v top=%d target=%d", ev.VelocityY, fling, e.top, target)
	e.settleTo(target, ev.VelocityY, fling)
	return true
}

// ReleaseTarget picks the settle target for a release velocity. Upward
// (negative) velocity expands; downward and zero collapse.
func ReleaseTarget(velocityY float64, g Geometry) int {
	if velocityY < 0 {
		return g.ExpandedTop()
	}
	return g.CollapsedTop()
}

func (e *Engine) settleTo(target int, velocity float64, fling bool) {
	if e.top == target {
		e.finishSettle()
		return
	}
	dur := settleDuration(target-e.top, e.geo.SlideRange(), velocity, fling)
	e.settle = newSettler(e.top, target, dur, e.opts.FrameInterval)
	e.state = StateSettling
	e.requestFrame()
}

// ContinueSettling advances a settle by one frame. It returns true while more
// frames are needed.
func (e *Engine) ContinueSettling() bool {
	if e.state != StateSettling || e.settle == nil {
		return false
	}
	if !e.enabled {
		e.Cancel()
		return false
	}

	top, done := e.settle.step()
	e.top = top
	e.offset = e.geo.OffsetAt(top)
	e.rawOffset = e.offset
	if done {
		e.finishSettle()
		return false
	}
	e.requestFrame()
	return true
}

func (e *Engine) finishSettle() {
	e.state = StateIdle
	e.settle = nil
	e.session = nil
	e.offset = e.geo.OffsetAt(e.top)
	e.rawOffset = e.offset

	switch {
	case e.offset == 1 && e.status != StatusExpanded:
		e.setStatus(StatusExpanded)
	case e.offset == 0 && e.status != StatusCollapsed:
		e.setStatus(StatusCollapsed)
	}
}

// Expand slides the content to the expanded position. The status changes and
// the listener fires right away, even when already expanded. It returns false
// when disabled.
func (e *Engine) Expand() bool {
	return e.slideTo(1, StatusExpanded)
}

// Collapse slides the content to the collapsed position. See Expand. It also
// returns false when the content cannot slide, since the offset stays at 1.
func (e *Engine) Collapse() bool {
	return e.slideTo(0, StatusCollapsed)
}

// Toggle collapses an expanded panel and expands anything else.
func (e *Engine) Toggle() bool {
	if e.status == StatusExpanded {
		return e.Collapse()
	}
	return e.Expand()
}

func (e *Engine) slideTo(offset float64, status Status) bool {
	if !e.enabled {
		return false
	}
	if e.measured && !e.geo.Draggable() && status == StatusCollapsed {
		return false
	}

	e.session = nil
	e.settle = nil
	e.state = StateIdle
	e.showAll()

	if e.measured {
		target := e.geo.TopAt(offset)
		if e.top != target {
			dur := settleDuration(target-e.top, e.geo.SlideRange(), 0, false)
			e.settle = newSettler(e.top, target, dur, e.opts.FrameInterval)
			e.state = StateSettling
			e.requestFrame()
		}
	} else {
		e.offset = offset
		e.rawOffset = offset
	}

	e.setStatus(status)
	return true
}

// Cancel aborts any capture, drag or settle. No status callback fires; a
// gesture's fling status reverts to the status it started from.
func (e *Engine) Cancel() {
	if e.state == StateIdle && e.session == nil && e.settle == nil {
		return
	}
	log.InputTrace("cancel in state %s", e.state)
	if e.status == StatusFling {
		e.status = e.settledStatus
	}
	e.session = nil
	e.settle = nil
	e.state = StateIdle
	e.offset = clampOffset(e.offset)
	e.rawOffset = e.offset
}

func (e *Engine) setStatus(s Status) {
	e.status = s
	if s != StatusFling {
		e.settledStatus = s
	}
	e.listener.dispatch(s)
}

func (e *Engine) requestFrame() {
	if e.scheduler != nil {
		e.scheduler.RequestFrame()
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
