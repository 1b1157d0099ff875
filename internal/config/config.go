// Package config provides YAML-based configuration loading and difficulty
// presets for the tetris platform.
package config

// TetrisConfig contains all user-tunable settings.
type TetrisConfig struct {
	Gameplay GameplayConfig `yaml:"gameplay"`
	Timing   TimingConfig   `yaml:"timing"`
	Audio    AudioConfig    `yaml:"audio"`
	Controls ControlsConfig `yaml:"controls"`
}

// GameplayConfig selects the default mode and optional helpers.
type GameplayConfig struct {
	Difficulty string `yaml:"difficulty"`  // relaxed, classic, expert or an easy/normal/hard preset
	GhostPiece bool   `yaml:"ghost_piece"` // Draw the landing projection of the active piece
	Preview    int    `yaml:"preview"`     // Number of queued pieces shown (0..6)
}

// TimingConfig defines the simulation clock.
type TimingConfig struct {
	TickRate int `yaml:"tick_rate"` // Simulation ticks per second
}

// AudioConfig controls synthesized sound cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 (silent) to 1.0
}

// ControlsConfig lists the keys bound to each command, in Bubble Tea key
// notation ("left", "ctrl+c", " ").
type ControlsConfig struct {
	Left      []string `yaml:"left"`
	Right     []string `yaml:"right"`
	SoftDrop  []string `yaml:"soft_drop"`
	HardDrop  []string `yaml:"hard_drop"`
	RotateCW  []string `yaml:"rotate_cw"`
	RotateCCW []string `yaml:"rotate_ccw"`
	Hold      []string `yaml:"hold"`
	Pause     []string `yaml:"pause"`
	Restart   []string `yaml:"restart"`
}

// bindings returns every binding list with its yaml name.
func (c ControlsConfig) bindings() []struct {
	name string
	keys []string
} {
	return []struct {
		name string
		keys []string
	}{
		{"left", c.Left},
		{"right", c.Right},
		{"soft_drop", c.SoftDrop},
		{"hard_drop", c.HardDrop},
		{"rotate_cw", c.RotateCW},
		{"rotate_ccw", c.RotateCCW},
		{"hold", c.Hold},
		{"pause", c.Pause},
		{"restart", c.Restart},
	}
}

// Limits enforced by Validate.
const (
	MaxPreview  = 6
	MinTickRate = 1
	MaxTickRate = 240
)
