package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/railroad-bartender/internal/storage"
)

func TestScoreboardEmpty(t *testing.T) {
	store := openStore(t)
	m := NewScoreboardModel(store, "bartender", "Railroad Bartender", 80, 24)

	view := m.View()
	if !strings.Contains(view, "HIGH SCORES - Railroad Bartender") {
		t.Error("title missing")
	}
	if !strings.Contains(view, "No scores recorded yet") {
		t.Error("empty message missing")
	}
	if !strings.Contains(view, "no runs yet") {
		t.Error("stats line should report no runs")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "bartender", "Railroad Bartender", 80, 24)
	if !strings.Contains(m.View(), "unavailable") {
		t.Error("expected unavailable message")
	}
}

func TestScoreboardRows(t *testing.T) {
	store := openStore(t)
	for _, s := range []struct {
		player string
		score  int
	}{{"ada", 30}, {"bob", 90}, {"cy", 60}} {
		if _, err := store.SaveScore("bartender", s.player, s.score, s.score/10); err != nil {
			t.Fatalf("SaveScore failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, "bartender", "Railroad Bartender", 100, 30)
	if len(m.scores) != 3 {
		t.Fatalf("loaded %d scores, want 3", len(m.scores))
	}

	rows := ScoreRows(m.scores)
	if rows[0][0] != "#1" || rows[0][1] != "bob" || rows[0][2] != "90" || rows[0][3] != "9" {
		t.Errorf("first row = %v, want #1 bob 90 9", rows[0])
	}
	if rows[2][1] != "ada" {
		t.Errorf("last row player = %q, want ada", rows[2][1])
	}

	if line := m.statsLine(); !strings.Contains(line, "3 runs") || !strings.Contains(line, "best 90") {
		t.Errorf("stats line = %q", line)
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "bartender", "Railroad Bartender", 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if sm, ok := next.(ScoreboardModel); !ok || sm.View() != "" {
		t.Error("quitting scoreboard should render nothing")
	}
}

func TestScoreRowsEmpty(t *testing.T) {
	if rows := ScoreRows([]storage.ScoreEntry{}); len(rows) != 0 {
		t.Errorf("rows = %d, want 0", len(rows))
	}
}
