package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
//
// Movement actions are level-triggered: the frontend sets them on every frame
// the key is held. Jump press/release are edge-triggered: each is set on the
// single frame the edge happens.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // A, Left arrow - held
	ActionRight              // D, Right arrow - held
	ActionDrop               // S, Down arrow - held, soft drop while airborne
	ActionJumpPress          // Space, W, Up went down - begin charging
	ActionJumpRelease        // Space, W, Up went up - launch
	ActionPause              // P, Escape - pause/unpause
	ActionRestart            // R - restart after game over
	ActionRevive             // V - spend a revive after game over
	ActionBack               // B - back to menu
	ActionQuit               // Q, Ctrl+C
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
	case ActionDrop:
		return "Drop"
	case ActionJumpPress:
		return "JumpPress"
	case ActionJumpRelease:
		return "JumpRelease"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionRevive:
		return "Revive"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were active this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
