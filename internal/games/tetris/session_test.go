package tetris

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// recorderSpy collects every reported score.
type recorderSpy struct {
	records []core.ScoreRecord
	err     error
}

func (r *recorderSpy) RecordScore(rec core.ScoreRecord) error {
	r.records = append(r.records, rec)
	return r.err
}

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// topOut hard-drops until the stack reaches the spawn area. Pieces spawn in
// the middle columns, so no row ever fills and the game must end.
func topOut(t *testing.T, s *Session) {
	t.Helper()
	for i := 0; i < engine.Width*engine.Height && s.Status() == StatusRunning; i++ {
		s.HardDrop()
	}
	require.Equal(t, StatusGameOver, s.Status())
}

func TestNewSessionIsIdle(t *testing.T) {
	s := NewSession()

	assert.Equal(t, StatusIdle, s.Status())
	assert.Nil(t, s.Frame().Active)
}

func TestSessionLifecycle(t *testing.T) {
	s := NewSession()
	s.Start(42, engine.Classic)
	require.Equal(t, StatusRunning, s.Status())

	s.Pause()
	assert.Equal(t, StatusPaused, s.Status())

	s.Pause()
	assert.Equal(t, StatusPaused, s.Status(), "pausing twice is a no-op")

	s.Resume()
	assert.Equal(t, StatusRunning, s.Status())

	s.TogglePause()
	assert.Equal(t, StatusPaused, s.Status())
	s.TogglePause()
	assert.Equal(t, StatusRunning, s.Status())

	s.ForceEnd()
	assert.Equal(t, StatusGameOver, s.Status())

	s.Resume()
	s.TogglePause()
	assert.Equal(t, StatusGameOver, s.Status(), "a finished game stays over")

	s.Start(43, engine.Expert)
	assert.Equal(t, StatusRunning, s.Status())
	assert.Equal(t, engine.Expert, s.Frame().Difficulty)
	assert.Equal(t, uint32(43), s.Seed())
}

func TestIdleSessionIgnoresCommands(t *testing.T) {
	s := NewSession()

	s.Pause()
	s.Resume()
	s.ForceEnd()
	s.Tick(1000)
	s.HardDrop()

	assert.Equal(t, StatusIdle, s.Status())
}

func TestPausedSessionIgnoresPieceCommands(t *testing.T) {
	s := NewSession()
	s.Start(42, engine.Classic)
	s.Pause()
	before := s.Frame()

	s.MoveLeft()
	s.MoveRight()
	s.SoftDrop()
	s.HardDrop()
	s.RotateCW()
	s.RotateCCW()
	s.Hold()
	s.Tick(5000)

	assert.Equal(t, before, s.Frame())
}

func TestSessionCommandsReachTheFrame(t *testing.T) {
	s := NewSession()
	s.Start(42, engine.Classic)
	start := *s.Frame().Active

	s.MoveLeft()
	assert.Equal(t, start.Pos.X-1, s.Frame().Active.Pos.X)
	s.MoveRight()
	assert.Equal(t, start.Pos.X, s.Frame().Active.Pos.X)

	s.SoftDrop()
	assert.Equal(t, start.Pos.Y+1, s.Frame().Active.Pos.Y)
	assert.Equal(t, engine.ScoreMultiplier(engine.Classic), s.Frame().Score)

	s.Hold()
	assert.Equal(t, start.Type, s.Frame().Held)
	assert.False(t, s.Frame().CanHold)

	s.HardDrop()
	assert.Equal(t, 4, s.Frame().Board.Filled())
	assert.True(t, s.Frame().CanHold)
}

func TestSessionTickAppliesGravity(t *testing.T) {
	s := NewSession()
	s.Start(42, engine.Relaxed)
	y := s.Frame().Active.Pos.Y

	s.Tick(float64(s.Frame().DropInterval))

	assert.Equal(t, y+1, s.Frame().Active.Pos.Y)
	assert.Equal(t, uint64(1), s.Frame().Steps)
}

func TestZeroSeedUsesClock(t *testing.T) {
	s := NewSession(WithClock(fixedClock))
	s.Start(0, engine.Classic)

	assert.Equal(t, engine.CreateSeed(fixedNow.UnixMilli()), s.Seed())
}

func TestSessionsWithEqualSeedsMatch(t *testing.T) {
	a := NewSession()
	b := NewSession()
	a.Start(99, engine.Expert)
	b.Start(99, engine.Expert)

	play := func(s *Session) {
		s.MoveLeft()
		s.RotateCW()
		s.HardDrop()
		s.Hold()
		for range 30 {
			s.Tick(50)
		}
		s.RotateCCW()
		s.MoveRight()
		s.HardDrop()
	}
	play(a)
	play(b)

	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestGameOverRecordsScoreOnce(t *testing.T) {
	spy := &recorderSpy{}
	s := NewSession(WithRecorder(spy), WithClock(fixedClock), WithPlayer("alice"))
	s.Start(42, engine.Classic)

	topOut(t, s)
	s.ForceEnd()
	s.HardDrop()

	require.Len(t, spy.records, 1)
	rec := spy.records[0]
	assert.Equal(t, GameID, rec.GameID)
	assert.Equal(t, "alice", rec.Player)
	assert.Equal(t, "classic", rec.Difficulty)
	assert.Equal(t, s.Frame().Score, rec.Score)
	assert.Equal(t, s.Frame().Lines, rec.Lines)
	assert.Equal(t, s.Frame().Level, rec.Level)
	assert.Equal(t, fixedNow, rec.CreatedAt)
}

func TestForceEndRecordsScore(t *testing.T) {
	spy := &recorderSpy{}
	s := NewSession(WithRecorder(spy))
	s.Start(42, engine.Relaxed)
	s.Pause()

	s.ForceEnd()

	assert.Equal(t, StatusGameOver, s.Status())
	require.Len(t, spy.records, 1)
	assert.Equal(t, 0, spy.records[0].Score)
}

func TestRecorderErrorDoesNotStopTheSession(t *testing.T) {
	spy := &recorderSpy{err: errors.New("disk full")}
	s := NewSession(WithRecorder(spy))
	s.Start(42, engine.Classic)

	s.ForceEnd()
	s.Start(43, engine.Classic)

	assert.Equal(t, StatusRunning, s.Status())
	assert.Len(t, spy.records, 1)
}

func TestSnapshot(t *testing.T) {
	s := NewSession()
	s.Start(42, engine.Classic)
	f := s.Frame()

	snap := s.Snapshot()

	assert.Equal(t, StatusRunning, snap.Status)
	assert.Equal(t, engine.Classic, snap.Difficulty)
	assert.Equal(t, uint32(42), snap.GameSeed)
	assert.Equal(t, f.Seed, snap.Seed)
	assert.Equal(t, f.Active.Type, snap.Active)
	assert.Equal(t, f.Active.Pos.X, snap.X)
	assert.Equal(t, f.Active.Pos.Y, snap.Y)
	assert.Equal(t, f.Queue[0], snap.Next)
	assert.Equal(t, len(f.Queue), snap.QueueLen)
	assert.Equal(t, 0, snap.Filled)
	assert.True(t, snap.CanHold)
}

func TestGameSeedSurvivesBagRefills(t *testing.T) {
	s := NewSession()
	s.Start(42, engine.Classic)
	first := s.Snapshot()

	// The first bag is consumed after a couple of locks.
	for range 3 {
		s.HardDrop()
	}
	snap := s.Snapshot()

	assert.NotEqual(t, first.Seed, snap.Seed, "the generator advances on refills")
	assert.Equal(t, uint32(42), snap.GameSeed)
	assert.Equal(t, uint32(42), s.Seed())
}
