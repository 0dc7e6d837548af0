// Package config provides YAML-based game configuration loading and
// difficulty presets for Railroad Bartender.
package config

import (
	"errors"
	"fmt"
)

// BartenderConfig contains all configuration for the game.
type BartenderConfig struct {
	Difficulty DifficultyPreset `yaml:"difficulty"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Save       SaveConfig       `yaml:"save"`
	Audio      AudioConfig      `yaml:"audio"`
}

// GameplayConfig defines run parameters.
type GameplayConfig struct {
	Lives         int  `yaml:"lives"`          // Figures allowed through before game over
	AdversaryOdds int  `yaml:"adversary_odds"` // One in N spawned figures is a bandit
	Invincible    bool `yaml:"invincible"`     // Start runs with invincibility on
	AllowCheats   bool `yaml:"allow_cheats"`   // Allow toggling invincibility in game
}

// SaveConfig defines where the single save slot lives.
type SaveConfig struct {
	Path string `yaml:"path"` // Save file, ~ is expanded
}

// AudioConfig defines sound effect output.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`      // Gain in halvings, 0 = unchanged, -1 = half
	SampleRate int     `yaml:"sample_rate"` // Hz
}

// Limits for validated fields.
const (
	MaxLives         = 9
	MaxAdversaryOdds = 100
	MinVolume        = -8.0
	MaxVolume        = 2.0
)

// Validate checks that every field is in a playable range.
func (c BartenderConfig) Validate() error {
	var errs []error
	if _, err := ParseDifficulty(string(c.Difficulty)); err != nil {
		errs = append(errs, err)
	}
	if c.Gameplay.Lives < 1 || c.Gameplay.Lives > MaxLives {
		errs = append(errs, fmt.Errorf("config: gameplay.lives %d out of range [1, %d]", c.Gameplay.Lives, MaxLives))
	}
	if c.Gameplay.AdversaryOdds < 1 || c.Gameplay.AdversaryOdds > MaxAdversaryOdds {
		errs = append(errs, fmt.Errorf("config: gameplay.adversary_odds %d out of range [1, %d]", c.Gameplay.AdversaryOdds, MaxAdversaryOdds))
	}
	if c.Save.Path == "" {
		errs = append(errs, errors.New("config: save.path is empty"))
	}
	if c.Audio.Volume < MinVolume || c.Audio.Volume > MaxVolume {
		errs = append(errs, fmt.Errorf("config: audio.volume %g out of range [%g, %g]", c.Audio.Volume, MinVolume, MaxVolume))
	}
	if c.Audio.SampleRate < 8000 || c.Audio.SampleRate > 192000 {
		errs = append(errs, fmt.Errorf("config: audio.sample_rate %d out of range [8000, 192000]", c.Audio.SampleRate))
	}
	return errors.Join(errs...)
}
