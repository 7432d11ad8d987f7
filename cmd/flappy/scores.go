package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show recorded runs",
	Long: `Display the best runs and the kept high score. Without a variant,
every variant is shown.

Examples:
  flappy scores
  flappy scores arcade --limit 20
  flappy scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the runs and high score instead of showing them")
}

func runScores(_ *cobra.Command, args []string) error {
	variants := config.Variants()
	if len(args) > 0 {
		v, err := resolveVariant(args)
		if err != nil {
			return err
		}
		variants = []config.Variant{v}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	for i, v := range variants {
		if i > 0 {
			fmt.Println()
		}
		if err := printScores(store, gameID(v)); err != nil {
			return err
		}
	}
	return nil
}

func printScores(store *storage.Store, id string) error {
	game, err := registry.Create(id)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	if flagClear {
		if err := store.ClearScores(id); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s\n", game.Title())
		return nil
	}

	scores, err := store.TopScores(id, flagLimit)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}
	best, err := storage.NewHighScoreKeeper(store, id, quietLogger()).LoadHighScore()
	if err != nil {
		return fmt.Errorf("error retrieving high score: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Printf("Best: %d\n", best)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", best)
	if stats, err := store.GetGameStats(id); err == nil && stats.GamesCount > 0 {
		fmt.Printf("Rounds: %d  Average: %.1f\n", stats.GamesCount, stats.AvgScore)
	}
	return nil
}
