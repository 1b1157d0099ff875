// Package audio plays short synthesized sound effects for game events.
// Cues are derived from two consecutive session snapshots, so the game
// logic never calls into the audio layer.
package audio

import "github.com/vovakirdan/tui-tetris/internal/games/tetris"

// Cue is a game event that has a sound.
type Cue int

const (
	CueLock Cue = iota
	CueLineClear
	CueTetris
	CueLevelUp
	CueHold
	CueGameOver
	cueCount
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueLock:
		return "lock"
	case CueLineClear:
		return "line_clear"
	case CueTetris:
		return "tetris"
	case CueLevelUp:
		return "level_up"
	case CueHold:
		return "hold"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Cues returns the events that happened between prev and next, in the order
// they should be played. Snapshots of different games yield no cues.
func Cues(prev, next tetris.Snapshot) []Cue {
	if prev.GameSeed != next.GameSeed || prev.Difficulty != next.Difficulty ||
		next.Steps < prev.Steps || next.Lines < prev.Lines {
		return nil
	}
	if prev.Status == tetris.StatusGameOver || prev.Status == tetris.StatusIdle {
		return nil
	}

	var cues []Cue
	if prev.CanHold && !next.CanHold {
		cues = append(cues, CueHold)
	}

	switch cleared := next.Lines - prev.Lines; {
	case cleared >= 4:
		cues = append(cues, CueTetris)
	case cleared > 0:
		cues = append(cues, CueLineClear)
	case next.Filled > prev.Filled:
		cues = append(cues, CueLock)
	}

	if next.Level > prev.Level {
		cues = append(cues, CueLevelUp)
	}
	if next.Status == tetris.StatusGameOver {
		cues = append(cues, CueGameOver)
	}
	return cues
}
