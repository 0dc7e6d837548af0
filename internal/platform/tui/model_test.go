package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/railroad-bartender/internal/core"
	"github.com/vovakirdan/railroad-bartender/internal/games/bartender"
	"github.com/vovakirdan/railroad-bartender/internal/storage"
)

// scriptedGame replays a fixed sequence of step results and records inputs.
type scriptedGame struct {
	results  []core.StepResult
	inputs   []core.InputFrame
	spawned  int
	focusOut int
	resets   int
}

func (g *scriptedGame) ID() string               { return "scripted" }
func (g *scriptedGame) Title() string            { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *scriptedGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "scripted") }
func (g *scriptedGame) Spawned() int             { return g.spawned }
func (g *scriptedGame) FocusLost()               { g.focusOut++ }
func (g *scriptedGame) State() core.GameState    { return core.GameState{} }
func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	if len(g.results) == 0 {
		return core.StepResult{}
	}
	r := g.results[0]
	if len(g.results) > 1 {
		g.results = g.results[1:]
	}
	return r
}

type recordingSound struct {
	events []core.Event
}

func (s *recordingSound) Play(events ...core.Event) {
	s.events = append(s.events, events...)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestModelQueuesKeysInOrder(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, core.DefaultConfig())
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}

	m, _ = update(t, m, keyMsg("z"))
	m, _ = update(t, m, keyMsg("up"))
	m, _ = update(t, m, keyMsg("?")) // unbound
	m, _ = update(t, m, keyMsg("x"))
	m, _ = update(t, m, TickMsg{})

	if len(g.inputs) != 1 {
		t.Fatalf("steps = %d, want 1", len(g.inputs))
	}
	want := []core.Action{core.ActionFireA, core.ActionUp, core.ActionFireB}
	got := g.inputs[0].Actions
	if len(got) != len(want) {
		t.Fatalf("actions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("action %d = %v, want %v", i, got[i], want[i])
		}
	}

	// Frame is cleared after the tick
	update(t, m, TickMsg{})
	if g.inputs[1].Len() != 0 {
		t.Errorf("second tick saw %d actions, want 0", g.inputs[1].Len())
	}
}

func TestModelBlurCallsFocusLost(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, core.DefaultConfig())
	update(t, m, tea.BlurMsg{})
	if g.focusOut != 1 {
		t.Errorf("FocusLost calls = %d, want 1", g.focusOut)
	}
}

func TestModelPlaysEvents(t *testing.T) {
	g := &scriptedGame{results: []core.StepResult{
		{Events: []core.Event{core.EventFire, core.EventHit}},
		{},
	}}
	sound := &recordingSound{}
	m := NewModel(g, core.DefaultConfig(), WithSound(sound))

	m, _ = update(t, m, TickMsg{})
	update(t, m, TickMsg{})

	if len(sound.events) != 2 || sound.events[0] != core.EventFire || sound.events[1] != core.EventHit {
		t.Errorf("played %v, want [fire hit]", sound.events)
	}
}

func TestModelRecordsScoreOncePerGameOver(t *testing.T) {
	store := openStore(t)
	over := core.StepResult{State: core.GameState{Score: 42, GameOver: true}}
	g := &scriptedGame{
		spawned: 9,
		results: []core.StepResult{over, over, over, {}, over},
	}
	m := NewModel(g, core.DefaultConfig(), WithStore(store), WithPlayer("ada"))

	for i := 0; i < 5; i++ {
		m, _ = update(t, m, TickMsg{})
	}

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	// Three ticks of the first game over count once, the second game over once more
	if len(scores) != 2 {
		t.Fatalf("recorded %d scores, want 2", len(scores))
	}
	if scores[0].Player != "ada" || scores[0].Score != 42 || scores[0].Spawned != 9 {
		t.Errorf("entry = %+v, want ada/42/9", scores[0])
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store := openStore(t)
	g := &scriptedGame{results: []core.StepResult{{State: core.GameState{GameOver: true}}}}
	m := NewModel(g, core.DefaultConfig(), WithStore(store))
	update(t, m, TickMsg{})

	scores, _ := store.TopScores("scripted", 10)
	if len(scores) != 0 {
		t.Errorf("recorded %d scores, want 0", len(scores))
	}
}

func TestModelQuitsWhenGameExits(t *testing.T) {
	g := &scriptedGame{results: []core.StepResult{{State: core.GameState{Exiting: true}}}}
	m := NewModel(g, core.DefaultConfig())

	m, cmd := update(t, m, TickMsg{})
	if !m.IsQuitting() {
		t.Error("model should be quitting")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command is not tea.Quit")
	}
	if m.View() != "" {
		t.Error("View should be empty once quitting")
	}
}

func TestModelResize(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, core.DefaultConfig())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "scripted") {
		t.Error("View should render the game")
	}
}

func TestModelDrivesBartender(t *testing.T) {
	game := bartender.New()
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})

	m, _ = update(t, m, keyMsg("enter"))
	m, _ = update(t, m, TickMsg{})
	if game.Mode() != bartender.ModePlaying {
		t.Fatalf("mode = %v, want playing", game.Mode())
	}

	m, _ = update(t, m, keyMsg("p"))
	m, _ = update(t, m, TickMsg{})
	if game.Mode() != bartender.ModePaused {
		t.Fatalf("mode = %v, want paused", game.Mode())
	}

	m, _ = update(t, m, keyMsg("q"))
	m, cmd := update(t, m, TickMsg{})
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should end the program on the next tick")
	}
}
