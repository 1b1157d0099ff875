package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration. It matches the
// embedded defaults/tetris.yaml and is used if that file cannot be parsed.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Gameplay: GameplayConfig{
			Difficulty: "classic",
			GhostPiece: true,
			Preview:    3,
		},
		Timing: TimingConfig{
			TickRate: 60,
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.5,
		},
		Controls: ControlsConfig{
			Left:      []string{"left", "h"},
			Right:     []string{"right", "l"},
			SoftDrop:  []string{"down", "j"},
			HardDrop:  []string{" "},
			RotateCW:  []string{"up", "x", "k"},
			RotateCCW: []string{"z"},
			Hold:      []string{"c"},
			Pause:     []string{"p", "esc"},
			Restart:   []string{"r"},
		},
	}
}
