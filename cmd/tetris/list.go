package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the difficulties",
	Long:  `Shows every registered difficulty with its gravity and scoring curve.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	modes := registry.List()

	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available difficulties:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		maxIDLen = max(maxIDLen, len(m.ID))
	}

	fmt.Printf("  %-*s  %-18s  %-8s  %-10s  %s\n", maxIDLen, "ID", "Title", "Speed", "Lines/lvl", "Points")
	fmt.Printf("  %-*s  %-18s  %-8s  %-10s  %s\n", maxIDLen, "--", "-----", "-----", "---------", "------")

	for _, m := range modes {
		d, err := engine.ParseDifficulty(m.ID)
		if err != nil {
			fmt.Printf("  %-*s  %s\n", maxIDLen, m.ID, m.Title)
			continue
		}
		curve := engine.CurveFor(d)
		fmt.Printf("  %-*s  %-18s  %-8s  %-10d  x%d\n", maxIDLen, m.ID, m.Title,
			fmt.Sprintf("%dms", curve.BaseDropMs), curve.LinesPerLevel, engine.ScoreMultiplier(d))
	}

	fmt.Println()
	fmt.Println("Run 'tetris play <id>' to play.")
}
