package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [difficulty]",
	Short: "Play a game",
	Long: `Start playing at the given difficulty, or at the configured one.

Controls (configurable in tetris.yaml):
  Left/Right, h/l   - Move
  Down, j           - Soft drop
  Space             - Hard drop
  Up, x, k / z      - Rotate clockwise / counter-clockwise
  C                 - Hold
  P/Esc             - Pause
  R                 - Restart (after game over)
  Q/Ctrl+C          - Quit

Difficulties:
  relaxed (easy)    - Slow gravity, 12 lines per level
  classic (normal)  - 10 lines per level, double points
  expert (hard)     - Fast gravity, 8 lines per level, triple points

Examples:
  tetris play
  tetris play expert
  tetris play easy --seed 42
  tetris play --config ./my-tetris.yaml --sound`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	e, err := setupInteractive()
	if err != nil {
		return err
	}
	defer e.Close()

	name := e.settings.Gameplay.Difficulty
	if len(args) == 1 {
		name = args[0]
	}
	mode, err := resolveMode(name)
	if err != nil {
		return fmt.Errorf("%w (run 'tetris list' to see the difficulties)", err)
	}

	game, err := e.newGame(mode)
	if err != nil {
		return err
	}

	e.logger.Info("starting game", "mode", mode, "seed", flagSeed)
	if err := tui.Run(game, e.runtimeConfig(), e.deps()); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
