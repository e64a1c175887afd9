package core

// EventKind identifies the type of an input event.
type EventKind int

const (
	EventNone EventKind = iota
	EventTurn             // Direction change request, Dir field is set
	EventSpeed            // Speed adjustment, Delta field is set (+1 or -1)
	EventRestart          // Restart after the run has ended
	EventQuit             // Terminate the session immediately
)

// Dir is a platform-level direction request, decoupled from the
// simulation's own direction type so that key mapping stays out of
// game logic.
type Dir int

const (
	DirUp Dir = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Event is a single abstract input event produced by the platform.
// Events are buffered between simulation ticks and drained in arrival
// order at the start of each tick.
type Event struct {
	Kind  EventKind
	Dir   Dir // valid when Kind == EventTurn
	Delta int // valid when Kind == EventSpeed
}

// TurnEvent builds a direction change request.
func TurnEvent(d Dir) Event {
	return Event{Kind: EventTurn, Dir: d}
}

// SpeedEvent builds a speed adjustment request.
func SpeedEvent(delta int) Event {
	return Event{Kind: EventSpeed, Delta: delta}
}
