package sketch

import "fmt"

// State is the interaction state of a session.
type State uint8

// Interaction states.
const (
	StateIdle State = iota
	StateFreehand
	StateShapeDrag
	StateTextEdit
)

var stateNames = [...]string{
	StateIdle:      "idle",
	StateFreehand:  "freehand",
	StateShapeDrag: "shape-drag",
	StateTextEdit:  "text-edit",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", s)
}
