package tetris

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/looplab/fsm"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/logging"
)

// GameID is the identifier stored with every recorded score.
const GameID = "tetris"

// Status is the lifecycle state of a Session.
type Status string

const (
	StatusIdle     Status = "idle"
	StatusRunning  Status = "running"
	StatusPaused   Status = "paused"
	StatusGameOver Status = "gameOver"
)

// Session events.
const (
	eventStart  = "start"
	eventPause  = "pause"
	eventResume = "resume"
	eventEnd    = "end"
)

// Session owns one game: the current frame plus its lifecycle. It is not
// safe for concurrent use; hosts drive it from a single loop.
type Session struct {
	machine  *fsm.FSM
	frame    engine.Frame
	seed     uint32 // Seed the current game started from
	player   string
	recorder core.ScoreRecorder
	logger   *log.Logger
	now      func() time.Time
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithRecorder reports every finished game to r.
func WithRecorder(r core.ScoreRecorder) SessionOption {
	return func(s *Session) { s.recorder = r }
}

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) SessionOption {
	return func(s *Session) { s.logger = l }
}

// WithClock replaces time.Now for seeding and score timestamps.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

// WithPlayer tags recorded scores with a player name.
func WithPlayer(name string) SessionOption {
	return func(s *Session) { s.player = name }
}

// NewSession creates an idle session.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		logger: logging.Discard(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.machine = fsm.NewFSM(
		string(StatusIdle),
		fsm.Events{
			{Name: eventStart, Src: []string{string(StatusIdle), string(StatusRunning), string(StatusPaused), string(StatusGameOver)}, Dst: string(StatusRunning)},
			{Name: eventPause, Src: []string{string(StatusRunning)}, Dst: string(StatusPaused)},
			{Name: eventResume, Src: []string{string(StatusPaused)}, Dst: string(StatusRunning)},
			{Name: eventEnd, Src: []string{string(StatusRunning), string(StatusPaused)}, Dst: string(StatusGameOver)},
		},
		fsm.Callbacks{
			"enter_" + string(StatusGameOver): func(_ context.Context, _ *fsm.Event) {
				s.recordScore()
			},
		},
	)
	return s
}

// fire triggers a lifecycle event. Events that are not allowed in the
// current state are ignored.
func (s *Session) fire(event string) bool {
	err := s.machine.Event(context.Background(), event)
	if err == nil {
		return true
	}

	var noTransition fsm.NoTransitionError
	var invalid fsm.InvalidEventError
	if !errors.As(err, &noTransition) && !errors.As(err, &invalid) {
		s.logger.Warn("unexpected session transition error", "event", event, "err", err)
	}
	return false
}

// Start begins a new game, discarding any game in progress. A zero seed is
// derived from the session clock.
func (s *Session) Start(seed uint32, d engine.Difficulty) {
	if seed == 0 {
		seed = engine.CreateSeed(s.now().UnixMilli())
	}

	r := engine.InitializeFrame(seed, d)
	s.seed = seed
	s.frame = r.Frame
	s.fire(eventStart)
	s.logger.Debug("game started", "difficulty", d, "seed", seed)

	if r.LockedOut {
		s.fire(eventEnd)
	}
}

// apply stores the result of a frame command and ends the game on lock-out.
func (s *Session) apply(r engine.Result) {
	s.frame = r.Frame
	if r.LockedOut {
		s.logger.Debug("lock out", "score", r.Frame.Score, "lines", r.Frame.Lines)
		s.fire(eventEnd)
	}
}

// running reports whether piece commands are accepted.
func (s *Session) running() bool {
	return s.machine.Is(string(StatusRunning))
}

// Tick advances gravity by elapsedMs of game time.
func (s *Session) Tick(elapsedMs float64) {
	if s.running() {
		s.apply(s.frame.Tick(elapsedMs))
	}
}

// MoveLeft shifts the active piece one column left.
func (s *Session) MoveLeft() {
	if s.running() {
		s.apply(s.frame.Move(-1, 0))
	}
}

// MoveRight shifts the active piece one column right.
func (s *Session) MoveRight() {
	if s.running() {
		s.apply(s.frame.Move(1, 0))
	}
}

// SoftDrop moves the active piece one row down for a small bonus.
func (s *Session) SoftDrop() {
	if s.running() {
		s.apply(s.frame.SoftDrop())
	}
}

// HardDrop drops and locks the active piece.
func (s *Session) HardDrop() {
	if s.running() {
		s.apply(s.frame.HardDrop())
	}
}

// RotateCW turns the active piece clockwise.
func (s *Session) RotateCW() {
	if s.running() {
		s.apply(s.frame.Rotate(engine.CW))
	}
}

// RotateCCW turns the active piece counter-clockwise.
func (s *Session) RotateCCW() {
	if s.running() {
		s.apply(s.frame.Rotate(engine.CCW))
	}
}

// Hold swaps the active piece with the hold slot.
func (s *Session) Hold() {
	if s.running() {
		s.apply(s.frame.Hold())
	}
}

// Pause suspends a running game.
func (s *Session) Pause() {
	s.fire(eventPause)
}

// Resume continues a paused game.
func (s *Session) Resume() {
	s.fire(eventResume)
}

// TogglePause pauses a running game or resumes a paused one.
func (s *Session) TogglePause() {
	switch s.Status() {
	case StatusRunning:
		s.Pause()
	case StatusPaused:
		s.Resume()
	}
}

// ForceEnd ends a running or paused game as if it had locked out.
func (s *Session) ForceEnd() {
	s.fire(eventEnd)
}

// Status returns the lifecycle state.
func (s *Session) Status() Status {
	return Status(s.machine.Current())
}

// Seed returns the seed the current game started from. Frame().Seed is the
// generator state and advances with every bag refill.
func (s *Session) Seed() uint32 {
	return s.seed
}

// Frame returns the current frame.
func (s *Session) Frame() engine.Frame {
	return s.frame
}

// recordScore reports the finished game. Failures are logged only.
func (s *Session) recordScore() {
	rec := core.ScoreRecord{
		GameID:     GameID,
		Player:     s.player,
		Score:      s.frame.Score,
		Lines:      s.frame.Lines,
		Level:      s.frame.Level,
		Difficulty: string(s.frame.Difficulty),
		CreatedAt:  s.now(),
	}
	s.logger.Info("game over", "difficulty", rec.Difficulty, "score", rec.Score, "lines", rec.Lines, "level", rec.Level)

	if s.recorder == nil {
		return
	}
	if err := s.recorder.RecordScore(rec); err != nil {
		s.logger.Error("cannot record score", "err", err)
	}
}
