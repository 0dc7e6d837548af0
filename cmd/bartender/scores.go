package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/railroad-bartender/internal/games/bartender"
	"github.com/vovakirdan/railroad-bartender/internal/platform/tui"
	"github.com/vovakirdan/railroad-bartender/internal/registry"
	"github.com/vovakirdan/railroad-bartender/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs recorded on this machine or server.

On a terminal the scores open in a scrollable table; when output is
redirected they are printed as plain text.

Examples:
  bartender scores
  bartender scores --limit 20 > scores.txt
  bartender scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to print in plain text")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(bartender.ID); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	title := registry.Title(bartender.ID)

	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, bartender.ID, title, width, height)
	}

	return printScores(os.Stdout, store, title, flagLimit)
}

// printScores writes a plain text score table.
func printScores(w io.Writer, store *storage.Store, title string, limit int) error {
	scores, err := store.TopScores(bartender.ID, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'bartender play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-16s  %-8s  %-7s  %s\n", "Rank", "Player", "Score", "Served", "Date")
	fmt.Fprintf(w, "  %-4s  %-16s  %-8s  %-7s  %s\n", "----", "------", "-----", "------", "----")
	for i, e := range scores {
		fmt.Fprintf(w, "  %-4d  %-16s  %-8d  %-7d  %s\n",
			i+1, e.Player, e.Score, e.Spawned, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(bartender.ID)
	if err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Best: %d   Runs: %d   Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}
