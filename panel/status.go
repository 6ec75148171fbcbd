package panel

// Status is the externally visible panel status.
type Status int

const (
	// StatusExpanded means the content is fully shown.
	StatusExpanded Status = iota
	// StatusCollapsed means only the cover sliver of the content is shown.
	StatusCollapsed
	// StatusFling is held while a drag gesture and its settle are in progress.
	StatusFling
)

func (s Status) String() string {
	switch s {
	case StatusExpanded:
		return "expanded"
	case StatusCollapsed:
		return "collapsed"
	case StatusFling:
		return "fling"
	default:
		return "unknown"
	}
}

// ParseStatus maps a config string to a settled status.
func ParseStatus(s string) (Status, bool) {
	switch s {
	case "expanded":
		return StatusExpanded, true
	case "collapsed":
		return StatusCollapsed, true
	default:
		return StatusExpanded, false
	}
}

// State is the internal interaction state of the engine.
type State int

const (
	StateIdle State = iota
	// StateCaptured is a pointer down on the content that has not moved past the slop.
	StateCaptured
	StateDragging
	// StateSettling animates the content towards a target top.
	StateSettling
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCaptured:
		return "captured"
	case StateDragging:
		return "dragging"
	case StateSettling:
		return "settling"
	default:
		return "unknown"
	}
}

// Listener receives status changes. Nil funcs are skipped.
type Listener struct {
	OnExpanded  func()
	OnCollapsed func()
	OnFling     func()
}

func (l Listener) dispatch(s Status) {
	var fn func()
	switch s {
	case StatusExpanded:
		fn = l.OnExpanded
	case StatusCollapsed:
		fn = l.OnCollapsed
	case StatusFling:
		fn = l.OnFling
	}
	if fn != nil {
		fn()
	}
}

// FrameScheduler is the host hook used to ask for another animation frame.
type FrameScheduler interface {
	RequestFrame()
}

// FrameSchedulerFunc adapts a plain func to FrameScheduler.
type FrameSchedulerFunc func()

// RequestFrame calls f.
func (f FrameSchedulerFunc) RequestFrame() {
	f()
}
