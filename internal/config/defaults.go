package config

import (
	_ "embed"
)

//go:embed defaults/bartender.yaml
var defaultBartenderYAML []byte

// DefaultBartenderConfig returns the hardcoded fallback configuration.
// It matches defaults/bartender.yaml.
func DefaultBartenderConfig() BartenderConfig {
	return BartenderConfig{
		Difficulty: DifficultyNormal,
		Gameplay: GameplayConfig{
			Lives:         3,
			AdversaryOdds: 4,
			Invincible:    false,
			AllowCheats:   true,
		},
		Save: SaveConfig{
			Path: "~/.arcade/bartender/savedgame",
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     -1,
			SampleRate: 44100,
		},
	}
}
