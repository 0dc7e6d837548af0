package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/railroad-bartender/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagSaveDir     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and tend bar remotely.

Each SSH connection gets its own game. Every SSH user name has its own
save slot under --save-dir; the scoreboard is shared by all users.
Sound is never played on the server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/bartender/host_key

Examples:
  bartender serve                           # Listen on :23234 with auto-generated key
  bartender serve --ssh :2222               # Listen on port 2222
  bartender serve --host-key ./my_host_key  # Use specific host key
  bartender serve --save-dir /var/lib/bar   # Keep saves elsewhere

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagSaveDir, "save-dir", defaults.SaveDir, "Directory holding one save slot per user")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}
	gameCfg.Audio.Enabled = false

	// The server has no alternate screen; log to stderr unless --log was given
	if !cmd.Flags().Changed("log") {
		flagLogPath = "-"
	}
	logger, closeLog, err := openLogger("bartender-ssh")
	if err != nil {
		return err
	}
	defer closeLog()
	logger.SetLevel(log.InfoLevel)

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		SaveDir:     flagSaveDir,
		TickRate:    flagFPS,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Game:        gameCfg,
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Starting bartender SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
