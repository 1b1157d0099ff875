package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// ErrUnknownDifficulty is returned for names that are neither an engine
// difficulty nor a preset.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// DifficultyPreset is a generic difficulty name accepted in place of the
// engine's own names.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// DifficultyForPreset returns the engine difficulty a preset stands for.
func DifficultyForPreset(preset DifficultyPreset) (engine.Difficulty, bool) {
	switch preset {
	case DifficultyEasy:
		return engine.Relaxed, true
	case DifficultyNormal:
		return engine.Classic, true
	case DifficultyHard:
		return engine.Expert, true
	default:
		return "", false
	}
}

// ResolveDifficulty accepts an engine difficulty ("relaxed") or a preset
// ("easy"), case-insensitively.
func ResolveDifficulty(name string) (engine.Difficulty, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if d, ok := DifficultyForPreset(DifficultyPreset(normalized)); ok {
		return d, nil
	}
	d, err := engine.ParseDifficulty(normalized)
	if err != nil {
		return "", fmt.Errorf("config: %w %q", ErrUnknownDifficulty, name)
	}
	return d, nil
}

// ApplyTetrisPreset sets the configured difficulty from a preset or engine
// difficulty name.
func ApplyTetrisPreset(cfg *TetrisConfig, name string) error {
	d, err := ResolveDifficulty(name)
	if err != nil {
		return err
	}
	cfg.Gameplay.Difficulty = string(d)
	return nil
}
