package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/railroad-bartender/internal/core"
)

func TestKeyMapperBindings(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{keyMsg("w"), core.ActionUp, false},
		{keyMsg("k"), core.ActionUp, false},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{keyMsg("j"), core.ActionDown, false},
		{keyMsg("z"), core.ActionFireA, false},
		{keyMsg("x"), core.ActionFireB, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{keyMsg(" "), core.ActionConfirm, false},
		{keyMsg("p"), core.ActionPause, false},
		{keyMsg("b"), core.ActionBack, false},
		{keyMsg("s"), core.ActionSave, false},
		{keyMsg("r"), core.ActionMenu, false},
		{keyMsg("i"), core.ActionInvincible, false},
		{tea.KeyMsg{Type: tea.KeyEscape}, core.ActionQuit, true},
		{keyMsg("q"), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{keyMsg("?"), core.ActionNone, false},
		{tea.KeyMsg{Type: tea.KeyTab}, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("action = %v, want %v", action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("quit = %v, want %v", quit, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrameSkipsUnbound(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(keyMsg("?"), &frame)
	km.MapKeyToFrame(keyMsg("z"), &frame)
	if quit := km.MapKeyToFrame(keyMsg("q"), &frame); !quit {
		t.Error("q should report quit")
	}

	if frame.Len() != 2 {
		t.Fatalf("frame has %d actions, want 2", frame.Len())
	}
	if frame.Actions[0] != core.ActionFireA || frame.Actions[1] != core.ActionQuit {
		t.Errorf("frame = %v, want [fire_a quit]", frame.Actions)
	}
}
