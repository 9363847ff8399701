package core

// Action represents a semantic arena action, abstracted from physical key presses.
// The platform decides which physical keys (or mouse steering) produce which action.
type Action int

const (
	ActionNone   Action = iota
	ActionLeft          // Left arrow, A, H - move left
	ActionRight         // Right arrow, D, L - move right
	ActionUp            // Up arrow, W, K - move up
	ActionDown          // Down arrow, S, J - move down
	ActionEscape        // Escape - leave the arena
	ActionClose         // Q, Ctrl+C - the window was closed
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionEscape:
		return "Escape"
	case ActionClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state sampled for a single frame.
// An action present in the frame is "held" for that frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{
		Actions: make(map[Action]bool, len(actions)),
	}
	for _, a := range actions {
		f.Actions[a] = true
	}
	return f
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}
