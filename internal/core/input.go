package core

// Action is a semantic input, abstracted from physical keys.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionPause
	ActionRestart
	ActionBack
	ActionQuit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action requests a heading.
func (a Action) IsMove() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}
