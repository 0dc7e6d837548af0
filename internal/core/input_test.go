package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionDown)
	f.Set(ActionNone)
	f.Set(ActionFireA)
	f.Set(ActionDown)

	want := []Action{ActionDown, ActionFireA, ActionDown}
	if f.Len() != len(want) {
		t.Fatalf("Len() = %d, expected %d", f.Len(), len(want))
	}
	for i, a := range want {
		if f.Actions[i] != a {
			t.Errorf("Actions[%d] = %v, expected %v", i, f.Actions[i], a)
		}
	}
	if !f.Has(ActionFireA) || f.Has(ActionFireB) {
		t.Errorf("Has reported wrong membership")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	c := f.Clone()

	f.Clear()
	if f.Len() != 0 || f.Has(ActionPause) {
		t.Errorf("Clear should empty the frame")
	}
	if !c.Has(ActionPause) {
		t.Errorf("Clone should not share storage with the original")
	}
}

func TestActionString(t *testing.T) {
	if ActionFireB.String() != "FireB" {
		t.Errorf("unexpected name %q", ActionFireB.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should say so")
	}
}
