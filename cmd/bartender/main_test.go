package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/railroad-bartender/internal/games/bartender"
	"github.com/vovakirdan/railroad-bartender/internal/storage"
)

func TestPrintScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	var buf bytes.Buffer
	if err := printScores(&buf, store, "Railroad Bartender", 10); err != nil {
		t.Fatalf("printScores failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No scores recorded yet.") {
		t.Errorf("empty output = %q", buf.String())
	}

	for _, s := range []int{120, 450, 300} {
		if _, err := store.SaveScore(bartender.ID, "ada", s, 12); err != nil {
			t.Fatalf("SaveScore failed: %v", err)
		}
	}

	buf.Reset()
	if err := printScores(&buf, store, "Railroad Bartender", 2); err != nil {
		t.Fatalf("printScores failed: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "120") {
		t.Error("limit 2 should hide the lowest score")
	}
	if !strings.Contains(out, "Best: 450") {
		t.Errorf("missing best line in %q", out)
	}
	if strings.Index(out, "450") > strings.Index(out, "300") {
		t.Error("scores not sorted by score")
	}
}

func TestLoadConfigDifficulty(t *testing.T) {
	defer func(c, d string) { flagConfig, flagDifficulty = c, d }(flagConfig, flagDifficulty)

	path := filepath.Join(t.TempDir(), "bar.yaml")
	if err := os.WriteFile(path, []byte("gameplay:\n  lives: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	flagConfig, flagDifficulty = path, ""
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("lives = %d, want 7 from file", cfg.Gameplay.Lives)
	}

	flagDifficulty = "hard"
	cfg, err = loadConfig()
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Gameplay.Lives != 2 || cfg.Gameplay.AdversaryOdds != 3 {
		t.Errorf("hard preset gave lives %d odds %d, want 2 and 3", cfg.Gameplay.Lives, cfg.Gameplay.AdversaryOdds)
	}

	flagDifficulty = "brutal"
	if _, err := loadConfig(); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := expandHome("~/x.log"); got != filepath.Join(home, "x.log") {
		t.Errorf("expandHome = %q", got)
	}
	if got := expandHome("/tmp/x.log"); got != "/tmp/x.log" {
		t.Errorf("absolute path changed to %q", got)
	}
}
