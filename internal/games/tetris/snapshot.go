package tetris

import "github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"

// Snapshot captures the observable game state for determinism testing and
// for deriving sound cues between two moments.
type Snapshot struct {
	Status           Status
	Difficulty       engine.Difficulty
	Steps            uint64
	GameSeed         uint32 // Seed the game started from
	Seed             uint32 // Generator state, advances on bag refills
	Score            int
	Lines            int
	Level            int
	DropInterval     int
	LinesToNextLevel int
	Active           engine.PieceType // PieceNone when no piece is falling
	Rotation         engine.Rotation
	X, Y             int
	Held             engine.PieceType
	CanHold          bool
	Next             engine.PieceType
	QueueLen         int
	Filled           int // Locked cells on the board
	Board            engine.Board
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	f := s.frame
	snap := Snapshot{
		Status:           s.Status(),
		Difficulty:       f.Difficulty,
		Steps:            f.Steps,
		GameSeed:         s.seed,
		Seed:             f.Seed,
		Score:            f.Score,
		Lines:            f.Lines,
		Level:            f.Level,
		DropInterval:     f.DropInterval,
		LinesToNextLevel: f.LinesToNextLevel,
		Held:             f.Held,
		CanHold:          f.CanHold,
		QueueLen:         len(f.Queue),
		Filled:           f.Board.Filled(),
		Board:            f.Board,
	}
	if f.Active != nil {
		snap.Active = f.Active.Type
		snap.Rotation = f.Active.Rotation
		snap.X = f.Active.Pos.X
		snap.Y = f.Active.Pos.Y
	}
	if len(f.Queue) > 0 {
		snap.Next = f.Queue[0]
	}
	return snap
}
