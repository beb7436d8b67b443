package bridge

// State is the lifecycle state of a session bridge.
type State int

const (
	StateIdle State = iota
	StateConnecting
	StateActive
	StateEnding
	StateStopped
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnecting:
		return "connecting"
	case StateActive:
		return "active"
	case StateEnding:
		return "ending"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}
