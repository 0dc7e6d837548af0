package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/railroad-bartender/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	bindings map[string]core.Action
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		bindings: map[string]core.Action{
			"up":     core.ActionUp,
			"w":      core.ActionUp,
			"k":      core.ActionUp, // vim-style
			"down":   core.ActionDown,
			"j":      core.ActionDown,
			"z":      core.ActionFireA,
			"x":      core.ActionFireB,
			"enter":  core.ActionConfirm,
			" ":      core.ActionConfirm,
			"p":      core.ActionPause,
			"b":      core.ActionBack,
			"s":      core.ActionSave,
			"r":      core.ActionMenu,
			"i":      core.ActionInvincible,
			"esc":    core.ActionQuit,
			"q":      core.ActionQuit,
			"ctrl+c": core.ActionQuit,
		},
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action, ok := km.bindings[msg.String()]
	if !ok {
		return core.ActionNone, false
	}
	return action, action == core.ActionQuit
}

// MapKeyToFrame appends the key's action to an input frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	frame.Set(action)
	return isQuit
}
