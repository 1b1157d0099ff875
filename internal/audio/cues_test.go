package audio

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

func running() tetris.Snapshot {
	return tetris.Snapshot{
		Status:     tetris.StatusRunning,
		Difficulty: engine.Classic,
		GameSeed:   42,
		Seed:       42,
		Level:      1,
		CanHold:    true,
		Filled:     8,
	}
}

func TestCues(t *testing.T) {
	tests := []struct {
		name string
		next func(s tetris.Snapshot) tetris.Snapshot
		want []Cue
	}{
		{"nothing", func(s tetris.Snapshot) tetris.Snapshot { s.Steps++; return s }, nil},
		{"bag refill", func(s tetris.Snapshot) tetris.Snapshot {
			s.Seed = engine.NextSeed(s.Seed)
			s.Filled += 4
			return s
		}, []Cue{CueLock}},
		{"lock", func(s tetris.Snapshot) tetris.Snapshot { s.Filled += 4; return s }, []Cue{CueLock}},
		{"single", func(s tetris.Snapshot) tetris.Snapshot {
			s.Lines++
			s.Filled -= 6
			return s
		}, []Cue{CueLineClear}},
		{"tetris", func(s tetris.Snapshot) tetris.Snapshot { s.Lines += 4; s.Filled = 0; return s }, []Cue{CueTetris}},
		{"level up", func(s tetris.Snapshot) tetris.Snapshot {
			s.Lines += 2
			s.Level++
			return s
		}, []Cue{CueLineClear, CueLevelUp}},
		{"hold", func(s tetris.Snapshot) tetris.Snapshot { s.CanHold = false; return s }, []Cue{CueHold}},
		{"game over", func(s tetris.Snapshot) tetris.Snapshot {
			s.Status = tetris.StatusGameOver
			s.Filled += 4
			return s
		}, []Cue{CueLock, CueGameOver}},
		{"forced end", func(s tetris.Snapshot) tetris.Snapshot { s.Status = tetris.StatusGameOver; return s }, []Cue{CueGameOver}},
		{"new game", func(s tetris.Snapshot) tetris.Snapshot { s.GameSeed++; s.Filled = 4; return s }, nil},
		{"other difficulty", func(s tetris.Snapshot) tetris.Snapshot {
			s.Difficulty = engine.Expert
			s.Filled += 4
			return s
		}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := running()
			got := Cues(prev, tt.next(prev))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Cues() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestCuesAfterGameOverAreSilent(t *testing.T) {
	prev := running()
	prev.Status = tetris.StatusGameOver
	next := prev
	next.Filled += 4

	if got := Cues(prev, next); got != nil {
		t.Errorf("Cues() = %v, expected none", got)
	}
}

func TestCuesFromSession(t *testing.T) {
	s := tetris.NewSession()
	s.Start(42, engine.Classic)

	prev := s.Snapshot()
	s.HardDrop()
	if got := Cues(prev, s.Snapshot()); !reflect.DeepEqual(got, []Cue{CueLock}) {
		t.Errorf("hard drop cues = %v, expected [lock]", got)
	}

	prev = s.Snapshot()
	s.Hold()
	if got := Cues(prev, s.Snapshot()); !reflect.DeepEqual(got, []Cue{CueHold}) {
		t.Errorf("hold cues = %v, expected [hold]", got)
	}

	prev = s.Snapshot()
	s.ForceEnd()
	if got := Cues(prev, s.Snapshot()); !reflect.DeepEqual(got, []Cue{CueGameOver}) {
		t.Errorf("end cues = %v, expected [game_over]", got)
	}
}

func TestCuesAcrossBagRefills(t *testing.T) {
	s := tetris.NewSession()
	s.Start(42, engine.Classic)

	refills := 0
	for i := 0; i < 14 && s.Status() == tetris.StatusRunning; i++ {
		prev := s.Snapshot()
		s.HardDrop()
		next := s.Snapshot()
		if next.Seed != prev.Seed {
			refills++
		}
		if next.GameSeed != prev.GameSeed {
			t.Fatalf("drop %d: game seed changed %d -> %d", i, prev.GameSeed, next.GameSeed)
		}

		got := Cues(prev, next)
		if len(got) == 0 {
			t.Fatalf("drop %d: no cues (filled %d -> %d, lines %d -> %d)",
				i, prev.Filled, next.Filled, prev.Lines, next.Lines)
		}
	}
	if refills == 0 {
		t.Fatal("expected at least one bag refill in 14 drops")
	}
}

func TestCueString(t *testing.T) {
	for c := CueLock; c < cueCount; c++ {
		if c.String() == "unknown" {
			t.Errorf("cue %d has no name", c)
		}
	}
	if Cue(99).String() != "unknown" {
		t.Error("out of range cue should be unknown")
	}
}
