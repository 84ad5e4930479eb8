package fields

// State is the lifecycle position of a field.
type State int

const (
	StateConstructed State = iota
	StateAttached
	StatePreDispatched
	StateRendered
)

func (s State) String() string {
	switch s {
	case StateConstructed:
		return "constructed"
	case StateAttached:
		return "attached"
	case StatePreDispatched:
		return "pre-dispatched"
	case StateRendered:
		return "rendered"
	default:
		return "unknown"
	}
}
