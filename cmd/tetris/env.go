package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/audio"
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/logging"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// env holds everything a command needs to run games.
type env struct {
	settings config.TetrisConfig
	logger   *log.Logger
	store    *storage.Store
	player   audio.Player
	closers  []io.Closer
}

// loadSettings reads the config and applies flag overrides.
func loadSettings() (config.TetrisConfig, error) {
	settings, err := config.LoadTetris(flagConfig)
	if err != nil {
		return settings, err
	}
	if flagFPS > 0 {
		settings.Timing.TickRate = flagFPS
	}
	if flagSound {
		settings.Audio.Enabled = true
	}
	return settings, settings.Validate()
}

// newLogger logs to --log-file when given, otherwise to fallback.
func newLogger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	if flagLogFile != "" {
		logger, f, err := logging.OpenFile(flagLogFile, "tetris", flagLogLevel)
		if err != nil {
			return nil, nil, err
		}
		return logger, f, nil
	}
	logger, err := logging.New(fallback, "tetris", flagLogLevel)
	return logger, nil, err
}

// setupInteractive prepares a terminal session. Without --log-file logs are
// dropped because stderr shares the alternate screen.
func setupInteractive() (*env, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}

	logger, closer, err := newLogger(io.Discard)
	if err != nil {
		return nil, err
	}
	e := &env{settings: settings, logger: logger}
	if closer != nil {
		e.closers = append(e.closers, closer)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without score storage", "err", err)
	} else {
		e.store = store
		e.closers = append(e.closers, store)
	}

	e.player = audio.Open(settings.Audio.Enabled, settings.Audio.Volume, logger)

	tetris.SetDefaultOptions(tetris.Options{
		Ghost:   settings.Gameplay.GhostPiece,
		Preview: settings.Gameplay.Preview,
	})
	return e, nil
}

// Close releases audio, storage and log files.
func (e *env) Close() {
	if e.player != nil {
		e.player.Close()
	}
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i].Close()
	}
}

// runtimeConfig sizes the game to the terminal.
func (e *env) runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: e.settings.Timing.TickRate,
		Seed:     flagSeed,
	}
}

// newGame creates the game for a mode and wires the recorder and logger.
func (e *env) newGame(mode string) (*tetris.Game, error) {
	created, err := registry.Create(mode)
	if err != nil {
		return nil, err
	}
	game, ok := created.(*tetris.Game)
	if !ok {
		return nil, fmt.Errorf("mode %q is not a tetris game", mode)
	}
	if e.store != nil {
		game.SetRecorder(e.store)
	}
	game.SetLogger(e.logger)
	return game, nil
}

// deps returns the collaborators of the game model.
func (e *env) deps() tui.Deps {
	deps := tui.Deps{
		Keys:   tui.NewGameKeyMap(e.settings.Controls),
		Player: e.player,
		Logger: e.logger,
	}
	if home, err := os.UserHomeDir(); err == nil {
		deps.ScreenshotDir = filepath.Join(home, ".tetris", "screenshots")
	}
	return deps
}

// resolveMode maps a difficulty or preset argument to a registered mode.
func resolveMode(name string) (string, error) {
	d, err := config.ResolveDifficulty(name)
	if err != nil {
		return "", err
	}
	if !registry.Exists(string(d)) {
		return "", fmt.Errorf("unknown mode %q", d)
	}
	return string(d), nil
}
