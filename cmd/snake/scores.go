package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagClear     bool
	flagAllScores bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Without a board, show a summary line for every board.
With a board, display its top 10 scores (or every game with --all) and
statistics.

Examples:
  snake scores
  snake scores small
  snake scores classic --all
  snake scores wide --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the board")
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "List every recorded game instead of the top 10")
}

func runScores(_ *cobra.Command, args []string) error {
	if len(args) == 0 && flagClear {
		return errors.New("--clear needs a board name")
	}

	store, err := storage.Open(cfg.Storage.DB)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		return printOverview(store)
	}

	id := args[0]
	variant, err := registry.Lookup(id)
	if err != nil {
		return fmt.Errorf("%w (run 'snake list' to see boards)", err)
	}

	if flagClear {
		if err := store.ClearScores(id); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", variant.Title)
		return nil
	}

	var scores []storage.ScoreRecord
	if flagAllScores {
		scores, err = store.AllScores(id)
	} else {
		scores, err = store.TopScores(id, 10)
	}
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s (%dx%d)\n", variant.Title, variant.Width, variant.Height)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'snake play %s' to set the first high score!\n", id)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-14s  %s\n", "Rank", "Score", "Length", "End", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-14s  %s\n", "----", "-----", "------", "---", "----")

	for i, r := range scores {
		fmt.Printf("  %-4d  %-6d  %-6d  %-14s  %s\n",
			i+1, r.Score, r.Length, r.EndReason, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(id)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Games: %d  Best: %d  Average: %.1f  Longest snake: %d  Full boards: %d\n",
		stats.GamesCount, stats.HighScore, stats.AvgScore, stats.LongestSnake, stats.Wins)
	return nil
}

// printOverview prints one line per registered board, played or not.
func printOverview(store *storage.Store) error {
	all, err := store.AllStats()
	if err != nil {
		return err
	}

	fmt.Printf("  %-10s  %-7s  %-5s  %-5s  %-7s  %s\n", "Board", "Size", "Games", "Best", "Average", "Last played")
	fmt.Printf("  %-10s  %-7s  %-5s  %-5s  %-7s  %s\n", "-----", "----", "-----", "----", "-------", "-----------")
	for _, v := range registry.List() {
		size := fmt.Sprintf("%dx%d", v.Width, v.Height)
		st, ok := all[v.ID]
		if !ok {
			fmt.Printf("  %-10s  %-7s  %-5d  %-5s  %-7s  %s\n", v.ID, size, 0, "-", "-", "never")
			continue
		}
		fmt.Printf("  %-10s  %-7s  %-5d  %-5d  %-7.1f  %s\n",
			v.ID, size, st.GamesCount, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
