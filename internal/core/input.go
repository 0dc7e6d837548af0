package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // Up arrow, W, K - previous lane / menu entry
	ActionDown              // Down arrow, J - next lane / menu entry
	ActionFireA             // Z - slow projectile
	ActionFireB             // X - fast projectile
	ActionConfirm           // Enter, Space - select in menus, pause in game
	ActionPause             // P - pause/unpause game
	ActionBack              // B - leave a sub-screen
	ActionSave              // S - save while paused
	ActionMenu              // R - abandon the run and return to the main menu
	ActionInvincible        // I - toggle invincibility
	ActionQuit              // Esc, Q, Ctrl+C - exit game/session
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
	case ActionFireA:
		return "FireA"
	case ActionFireB:
		return "FireB"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionSave:
		return "Save"
	case ActionMenu:
		return "Menu"
	case ActionInvincible:
		return "Invincible"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one simulation tick, in the
// order they arrived. Games that care about order (lane moves followed by a
// fire) replay Actions front to back.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to this frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, x := range f.Actions {
		if x == a {
			return true
		}
	}
	return false
}

// Len returns the number of actions in the frame.
func (f InputFrame) Len() int {
	return len(f.Actions)
}

// Clear resets all actions for the next frame, keeping the backing array.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	return InputFrame{Actions: append([]Action(nil), f.Actions...)}
}
