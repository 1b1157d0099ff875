package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/audio"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/logging"
)

// helpHeight is the number of rows reserved below the playfield.
const helpHeight = 1

// Deps are the collaborators a game model needs beyond the game itself.
type Deps struct {
	Keys   GameKeyMap
	Player audio.Player
	Logger *log.Logger
	// ScreenshotDir receives ctrl+s captures. Empty disables screenshots.
	ScreenshotDir string
}

func (d Deps) withDefaults() Deps {
	if d.Player == nil {
		d.Player = audio.Nop{}
	}
	if d.Logger == nil {
		d.Logger = logging.Discard()
	}
	if len(d.Keys.Left.Keys()) == 0 {
		d.Keys = DefaultGameKeyMap()
	}
	return d
}

// GameModel is the Bubble Tea model that runs one tetris game. Key presses
// are collected into an input frame and applied on the next tick.
type GameModel struct {
	game       *tetris.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	deps       Deps
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	loop       uint64
	quitting   bool
	backToMenu bool
	// canGoBack allows leaving to a menu instead of quitting.
	canGoBack bool
}

// NewGameModel creates a model for game. The game is reset on Init.
func NewGameModel(game *tetris.Game, cfg core.RuntimeConfig, deps Deps) GameModel {
	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 1)),
		config:     cfg,
		deps:       deps.withDefaults(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		loop:       newLoopID(),
	}
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	// The game is a pointer, so resetting here survives the value receiver.
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

// handleKey records gameplay actions for the next tick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.deps.Keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.deps.Keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		if m.canGoBack && (m.gameState.GameOver || m.gameState.Paused) {
			m.backToMenu = true
		}

	case core.ActionNone:

	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick advances the simulation and plays the cues it produced.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	prev := m.game.Snapshot()
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	audio.PlayAll(m.deps.Player, audio.Cues(prev, m.game.Snapshot()))

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.loop)
}

// saveScreenshot writes the current screen as plain text.
func (m *GameModel) saveScreenshot() {
	if m.deps.ScreenshotDir == "" {
		return
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.deps.ScreenshotDir, 0o755); err != nil {
		m.deps.Logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.deps.ScreenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.deps.Logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.deps.Logger.Info("screenshot saved", "path", path)
}

// View renders the playfield and a help line.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.deps.Keys))
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Run plays game in the terminal until the user quits.
func Run(game *tetris.Game, cfg core.RuntimeConfig, deps Deps) error {
	p := tea.NewProgram(
		NewGameModel(game, cfg, deps),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
