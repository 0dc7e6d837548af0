package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/railroad-bartender/internal/audio"
	"github.com/vovakirdan/railroad-bartender/internal/core"
	"github.com/vovakirdan/railroad-bartender/internal/games/bartender"
	"github.com/vovakirdan/railroad-bartender/internal/platform/tui"
	"github.com/vovakirdan/railroad-bartender/internal/registry"
	"github.com/vovakirdan/railroad-bartender/internal/storage"
)

var (
	flagSavePath   string
	flagInvincible bool
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start Railroad Bartender in the current terminal.

Controls:
  Up/Down, W/K, J  - Change bar
  Z                - Slide a shot glass (customers)
  X                - Breathe a fireball (bandits)
  P/Space          - Pause and resume
  S                - Save (while paused)
  R                - Main menu (while playing or paused)
  Esc/Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 5 lives, one bandit in six
  normal - 3 lives, one bandit in four
  hard   - 2 lives, one bandit in three

Examples:
  bartender play
  bartender play --difficulty easy
  bartender play --save ./run.sav --mute
  bartender play --config ./my-bar.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSavePath, "save", "", "Save slot file (default from config)")
	playCmd.Flags().BoolVar(&flagInvincible, "invincible", false, "Start with invincibility on")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagSavePath != "" {
		gameCfg.Save.Path = flagSavePath
	}
	if flagInvincible {
		gameCfg.Gameplay.Invincible = true
	}
	if flagMute {
		gameCfg.Audio.Enabled = false
	}

	logger, closeLog, err := openLogger("bartender")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logger = log.New(io.Discard)
	}
	defer closeLog()

	bartender.SetConfig(gameCfg)
	bartender.SetLogger(logger)

	game, err := registry.Create(bartender.ID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	opts := []tui.ModelOption{tui.WithLogger(logger)}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
	} else {
		defer store.Close()
		opts = append(opts, tui.WithStore(store))
	}

	sound := audio.NewSoundManager(gameCfg.Audio)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable", "error", err)
	} else {
		defer sound.Close()
		opts = append(opts, tui.WithSound(sound))
	}

	logger.Info("starting", "difficulty", gameCfg.Difficulty, "lives", gameCfg.Gameplay.Lives,
		"save", gameCfg.Save.Path, "audio", sound.Enabled())

	if err := tui.Run(game, cfg, opts...); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
