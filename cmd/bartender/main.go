// bartender is Railroad Bartender: a dragon tends four bars, serving shot
// glasses to customers and fireballs to bandits, in the terminal.
//
// Usage:
//
//	bartender play           - Play in this terminal
//	bartender serve          - Start SSH server for remote play
//	bartender scores         - Show high scores
//	bartender config         - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--log <path>         - Log file (default: ~/.arcade/bartender.log)
//	--config <path>      - Custom YAML configuration
//	--difficulty <name>  - Difficulty preset: easy, normal, hard
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/railroad-bartender/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogPath    string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bartender",
	Short: "Railroad Bartender - serve the right drink down the right bar",
	Long: `Railroad Bartender puts you behind four bars as a dragon. Customers
walk up wanting a shot glass, bandits walk up wanting trouble and get a
fireball. Serve the right thing to grow your multiplier; let anyone reach
the counter and you lose a life.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  bartender play
  bartender play --difficulty hard --mute
  bartender serve --ssh :2222
  bartender scores --limit 20`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.arcade/bartender.log", "Log file (- for stderr)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies --difficulty.
func loadConfig() (config.BartenderConfig, error) {
	cfg, err := config.LoadBartender(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		if err := config.ApplyBartenderPreset(&cfg, preset); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// openLogger opens the --log destination. The returned close function is
// never nil.
func openLogger(prefix string) (*log.Logger, func(), error) {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	}

	if flagLogPath == "-" {
		return log.NewWithOptions(os.Stderr, opts), func() {}, nil
	}

	path := expandHome(flagLogPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, func() {}, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, func() {}, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, opts)
	logger.SetLevel(log.DebugLevel)
	return logger, func() { f.Close() }, nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
