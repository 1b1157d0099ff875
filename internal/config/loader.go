package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "tetris.yaml"

// LoadTetris loads the configuration.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default.
// Files only need to name the settings they change; everything else keeps
// its default. The result is validated and its difficulty normalized.
func LoadTetris(customPath string) (TetrisConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TetrisConfig{}, fmt.Errorf("config: failed to read config %s: %w", customPath, err)
		}
		return parseTetris(data, customPath)
	}

	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return TetrisConfig{}, fmt.Errorf("config: failed to read config %s: %w", path, err)
		}
		return parseTetris(data, path)
	}

	// Use embedded default YAML
	cfg, err := parseTetris(defaultTetrisYAML, "embedded defaults")
	if err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseTetris decodes data over the defaults and validates the result.
func parseTetris(data []byte, source string) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TetrisConfig{}, fmt.Errorf("config: failed to parse config %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return TetrisConfig{}, fmt.Errorf("config: invalid config %s: %w", source, err)
	}
	if err := ApplyTetrisPreset(&cfg, cfg.Gameplay.Difficulty); err != nil {
		return TetrisConfig{}, err
	}
	return cfg, nil
}

// Validate checks ranges and bindings.
func (c TetrisConfig) Validate() error {
	if _, err := ResolveDifficulty(c.Gameplay.Difficulty); err != nil {
		return err
	}
	if c.Gameplay.Preview < 0 || c.Gameplay.Preview > MaxPreview {
		return fmt.Errorf("gameplay.preview must be between 0 and %d, got %d", MaxPreview, c.Gameplay.Preview)
	}
	if c.Timing.TickRate < MinTickRate || c.Timing.TickRate > MaxTickRate {
		return fmt.Errorf("timing.tick_rate must be between %d and %d, got %d", MinTickRate, MaxTickRate, c.Timing.TickRate)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be between 0 and 1, got %v", c.Audio.Volume)
	}
	for _, b := range c.Controls.bindings() {
		if len(b.keys) == 0 {
			return fmt.Errorf("controls.%s needs at least one key", b.name)
		}
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}
