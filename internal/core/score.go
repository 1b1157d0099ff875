package core

import "time"

// ScoreRecord is a finished game as persisted in the high score table.
type ScoreRecord struct {
	GameID     string
	Player     string // Empty for local play
	Score      int
	Lines      int
	Level      int
	Difficulty string
	CreatedAt  time.Time
}

// ScoreRecorder persists finished games. Implementations must be safe to
// call from the game loop; failures are reported, never fatal to play.
type ScoreRecorder interface {
	RecordScore(rec ScoreRecord) error
}

// ScoreRecorderFunc adapts a function to ScoreRecorder.
type ScoreRecorderFunc func(rec ScoreRecord) error

// RecordScore calls f(rec).
func (f ScoreRecorderFunc) RecordScore(rec ScoreRecord) error {
	return f(rec)
}
