package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// presetValues holds the gameplay values each preset forces.
var presetValues = map[DifficultyPreset]struct {
	lives, odds int
}{
	DifficultyEasy:   {lives: 5, odds: 6},
	DifficultyNormal: {lives: 3, odds: 4},
	DifficultyHard:   {lives: 2, odds: 3},
}

// ParseDifficulty converts a flag or YAML value to a preset.
// The empty string means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return DifficultyNormal, nil
	}
	if _, ok := presetValues[p]; !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
	return p, nil
}

// ApplyBartenderPreset sets lives and adversary odds for the preset and
// records it in cfg.
func ApplyBartenderPreset(cfg *BartenderConfig, preset DifficultyPreset) error {
	p, err := ParseDifficulty(string(preset))
	if err != nil {
		return err
	}
	v := presetValues[p]
	cfg.Difficulty = p
	cfg.Gameplay.Lives = v.lives
	cfg.Gameplay.AdversaryOdds = v.odds
	return nil
}
