package launcher

// State is the launcher's position in a render pass
type State int

const (
	// Idle means no selection has been confirmed
	Idle State = iota
	// Dispatched means a confirmed selection invoked Run
	Dispatched
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dispatched:
		return "dispatched"
	default:
		return "unknown"
	}
}
