// Package tetris adapts the deterministic engine to the platform: a Session
// that owns the game lifecycle and a registry.Game that maps input frames to
// session commands and renders the playfield.
package tetris

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/logging"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Options are display settings shared by every game created by the registry.
type Options struct {
	Ghost   bool // Draw where the active piece would land
	Preview int  // Number of queued pieces shown
}

// DefaultOptions returns the built-in display settings.
func DefaultOptions() Options {
	return Options{Ghost: true, Preview: 3}
}

var (
	optionsMu      sync.RWMutex
	defaultOptions = DefaultOptions()
)

// SetDefaultOptions changes the display settings for games created afterwards.
func SetDefaultOptions(o Options) {
	optionsMu.Lock()
	defer optionsMu.Unlock()
	o.Preview = core.Clamp(o.Preview, 0, maxPreview)
	defaultOptions = o
}

func currentOptions() Options {
	optionsMu.RLock()
	defer optionsMu.RUnlock()
	return defaultOptions
}

// Game implements registry.Game for one difficulty.
type Game struct {
	difficulty engine.Difficulty
	options    Options
	session    *Session
	recorder   core.ScoreRecorder
	logger     *log.Logger
	tickRate   int
	screenW    int
	screenH    int
}

// New creates a game for difficulty d using the current default options.
func New(d engine.Difficulty) *Game {
	return &Game{
		difficulty: d,
		options:    currentOptions(),
		logger:     logging.Discard(),
		tickRate:   core.DefaultConfig().TickRate,
	}
}

func init() {
	for _, d := range engine.Difficulties {
		registry.Register(string(d), func() registry.Game {
			return New(d)
		})
	}
}

var _ registry.Recordable = (*Game)(nil)

// ID returns the mode identifier, which is the difficulty name.
func (g *Game) ID() string {
	return string(g.difficulty)
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris (" + g.difficulty.Title() + ")"
}

// Difficulty returns the difficulty this game plays at.
func (g *Game) Difficulty() engine.Difficulty {
	return g.difficulty
}

// SetRecorder reports finished games to r. It applies to the running
// session as well as later ones.
func (g *Game) SetRecorder(r core.ScoreRecorder) {
	g.recorder = r
	if g.session != nil {
		g.session.recorder = r
	}
}

// SetLogger replaces the logger handed to sessions.
func (g *Game) SetLogger(l *log.Logger) {
	g.logger = l
	if g.session != nil {
		g.session.logger = l
	}
}

// SetOptions overrides the display settings of this game.
func (g *Game) SetOptions(o Options) {
	o.Preview = core.Clamp(o.Preview, 0, maxPreview)
	g.options = o
}

// Reset starts a new game. A zero cfg.Seed seeds from the clock.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tickRate = cfg.TickRate
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	seed := uint32(cfg.Seed)
	if seed == 0 && cfg.Seed != 0 {
		seed = 1
	}

	g.session = NewSession(WithRecorder(g.recorder), WithLogger(g.logger))
	g.session.Start(seed, g.difficulty)
}

// runtimeConfig rebuilds the config of the last Reset with a new seed.
func (g *Game) runtimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  g.screenW,
		ScreenH:  g.screenH,
		TickRate: g.tickRate,
		Seed:     seed,
	}
}

// Session returns the session of the current game, or nil before Reset.
func (g *Game) Session() *Session {
	return g.session
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{Status: StatusIdle, Difficulty: g.difficulty}
	}
	return g.session.Snapshot()
}

// Step applies this frame's actions in arrival order, then advances gravity
// by one tick of game time.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		g.Reset(g.runtimeConfig(0))
	}
	s := g.session

	// Restart after game over keeps the run deterministic by deriving the
	// next seed from the one the finished game started with.
	if in.Has(core.ActionRestart) && s.Status() == StatusGameOver {
		next := engine.NextSeed(s.Seed())
		g.Reset(g.runtimeConfig(int64(next)))
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		s.TogglePause()
	}

	linesBefore := s.Frame().Lines
	for _, a := range in.Ordered() {
		switch a {
		case core.ActionLeft:
			s.MoveLeft()
		case core.ActionRight:
			s.MoveRight()
		case core.ActionDown:
			s.SoftDrop()
		case core.ActionHardDrop:
			s.HardDrop()
		case core.ActionRotateCW:
			s.RotateCW()
		case core.ActionRotateCCW:
			s.RotateCCW()
		case core.ActionHold:
			s.Hold()
		}
	}
	s.Tick(g.runtimeConfig(0).TickMillis())

	return core.StepResult{
		State:   g.State(),
		Cleared: s.Frame().Lines - linesBefore,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Level: 1}
	}
	f := g.session.Frame()
	status := g.session.Status()
	return core.GameState{
		Score:    f.Score,
		Lines:    f.Lines,
		Level:    f.Level,
		GameOver: status == StatusGameOver,
		Paused:   status == StatusPaused,
	}
}
