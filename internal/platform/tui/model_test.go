package tui

import (
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/audio"
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

type playerSpy struct {
	played []audio.Cue
}

func (p *playerSpy) Play(c audio.Cue) { p.played = append(p.played, c) }
func (p *playerSpy) Close()           {}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, deps Deps) (GameModel, *tetris.Game) {
	t.Helper()
	game := tetris.New(engine.Classic)
	cfg := core.DefaultConfig()
	cfg.Seed = 42

	m := NewGameModel(game, cfg, deps)
	m.Init()
	return m, game
}

// tick delivers one tick of the model's own loop.
func tick(t *testing.T, m GameModel) GameModel {
	t.Helper()
	next, _ := m.Update(TickMsg{Time: time.Now(), Loop: m.loop})
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return gm
}

func press(t *testing.T, m GameModel, msg tea.KeyMsg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(GameModel)
}

func TestGameKeyMapDefaults(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{runes("h"), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionHardDrop},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotateCW},
		{runes("z"), core.ActionRotateCCW},
		{runes("c"), core.ActionHold},
		{runes("p"), core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{runes("r"), core.ActionRestart},
		{runes("b"), core.ActionBack},
		{runes("q"), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runes("y"), core.ActionNone},
	}

	for _, tt := range tests {
		if got := keys.Action(tt.msg); got != tt.want {
			t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestGameKeyMapFromConfig(t *testing.T) {
	controls := config.DefaultTetrisConfig().Controls
	controls.Hold = []string{"shift+tab", "v"}
	keys := NewGameKeyMap(controls)

	if got := keys.Action(runes("v")); got != core.ActionHold {
		t.Errorf("Action(v) = %v, expected hold", got)
	}
	if got := keys.Action(runes("c")); got != core.ActionNone {
		t.Errorf("Action(c) = %v, expected the old binding to be gone", got)
	}
}

func TestMenuActions(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runes("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runes("q"), MenuActionQuit},
		{runes("x"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestGameModelAppliesKeysOnTick(t *testing.T) {
	m, game := newTestModel(t, Deps{})
	x := game.Session().Frame().Active.Pos.X

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := game.Session().Frame().Active.Pos.X; got != x {
		t.Fatalf("key applied before the tick: x = %d", got)
	}

	m = tick(t, m)
	if got := game.Session().Frame().Active.Pos.X; got != x-1 {
		t.Errorf("x = %d after tick, expected %d", got, x-1)
	}
	if !m.inputFrame.Empty() {
		t.Error("input frame should be cleared after a tick")
	}
}

func TestGameModelIgnoresForeignTicks(t *testing.T) {
	m, game := newTestModel(t, Deps{})
	before := game.Session().Frame()

	next, cmd := m.Update(TickMsg{Time: time.Now(), Loop: m.loop + 1000})

	if cmd != nil {
		t.Error("a foreign tick must not schedule another tick")
	}
	if !reflect.DeepEqual(next.(GameModel).game.Session().Frame(), before) {
		t.Error("a foreign tick must not advance the game")
	}
}

func TestGameModelPlaysCues(t *testing.T) {
	spy := &playerSpy{}
	m, _ := newTestModel(t, Deps{Player: spy})

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	tick(t, m)

	if len(spy.played) != 1 || spy.played[0] != audio.CueLock {
		t.Errorf("played = %v, expected [lock]", spy.played)
	}
}

func TestGameModelBackToMenu(t *testing.T) {
	m, _ := newTestModel(t, Deps{})
	m.canGoBack = true

	m = press(t, m, runes("b"))
	if m.BackToMenu() {
		t.Fatal("back must be ignored while playing")
	}

	m = press(t, m, runes("p"))
	m = tick(t, m)
	if !m.State().Paused {
		t.Fatal("game should be paused")
	}

	m = press(t, m, runes("b"))
	if !m.BackToMenu() {
		t.Error("back should leave a paused game")
	}
}

func TestGameModelQuit(t *testing.T) {
	m, _ := newTestModel(t, Deps{})

	next, cmd := m.Update(runes("q"))

	if !next.(GameModel).IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return tea.Quit")
	}
	if next.View() != "" {
		t.Error("a quitting model renders nothing")
	}
}

func TestGameModelView(t *testing.T) {
	m, _ := newTestModel(t, Deps{})

	view := m.View()

	for _, want := range []string{"HOLD", "NEXT", "SCORE"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() does not contain %q", want)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")

	out := RenderScreen(s)

	if !strings.Contains(out, "a") || !strings.Contains(out, "cd") {
		t.Errorf("RenderScreen() = %q", out)
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("RenderScreen() has %d newlines, expected 1", got)
	}
}

func TestRenderScreenUnknownColorUsesDefault(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.SetColored(0, 0, 'x', core.Color(200))

	if out := RenderScreen(s); !strings.Contains(out, "x") {
		t.Errorf("RenderScreen() = %q", out)
	}
}
