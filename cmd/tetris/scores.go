package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Display the top scores with lines and level reached, plus statistics.
Without an argument every difficulty is shown.

Examples:
  tetris scores
  tetris scores classic
  tetris scores hard --limit 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", storage.DefaultLimit, "Number of scores to show")
}

func runScores(_ *cobra.Command, args []string) error {
	modes := make([]string, 0, len(engine.Difficulties))
	if len(args) == 1 {
		mode, err := resolveMode(args[0])
		if err != nil {
			return fmt.Errorf("%w (run 'tetris list' to see the difficulties)", err)
		}
		modes = append(modes, mode)
	} else {
		for _, d := range engine.Difficulties {
			modes = append(modes, string(d))
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	for i, mode := range modes {
		if i > 0 {
			fmt.Println()
		}
		if err := printScores(store, mode); err != nil {
			return err
		}
	}
	return nil
}

func printScores(store *storage.Store, mode string) error {
	d, err := engine.ParseDifficulty(mode)
	if err != nil {
		return err
	}

	scores, err := store.TopScores(mode, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", d.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Printf("Play 'tetris play %s' to set the first high score!\n", mode)
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-10s  %-6s  %-6s  %s\n", "Rank", "Player", "Score", "Lines", "Level", "Date")
	fmt.Printf("  %-4s  %-12s  %-10s  %-6s  %-6s  %s\n", "----", "------", "-----", "-----", "-----", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-12s  %-10d  %-6d  %-6d  %s\n",
			i+1, player, entry.Score, entry.Lines, entry.Level, entry.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(mode)
	if err != nil {
		return fmt.Errorf("error retrieving statistics: %w", err)
	}
	fmt.Println()
	fmt.Printf("Best: %d  |  Games: %d  |  Average: %.0f  |  Total lines: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalLines)
	return nil
}
