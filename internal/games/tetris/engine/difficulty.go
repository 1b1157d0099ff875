package engine

import (
	"fmt"
	"math"
	"strings"
)

// Difficulty selects a speed curve and score multiplier.
type Difficulty string

const (
	Relaxed Difficulty = "relaxed"
	Classic Difficulty = "classic"
	Expert  Difficulty = "expert"
)

// Difficulties lists the presets from easiest to hardest.
var Difficulties = [...]Difficulty{Relaxed, Classic, Expert}

// Curve defines how fast a difficulty preset accelerates.
type Curve struct {
	BaseDropMs    int     // Gravity interval at level 1
	MinDropMs     int     // Floor for the gravity interval
	Acceleration  float64 // Per-level multiplier applied to the interval (< 1)
	LinesPerLevel int     // Lines needed to advance one level
	Multiplier    int     // Score multiplier for line clears and soft drops
}

var curves = map[Difficulty]Curve{
	Relaxed: {BaseDropMs: 1000, MinDropMs: 280, Acceleration: 0.94, LinesPerLevel: 12, Multiplier: 1},
	Classic: {BaseDropMs: 750, MinDropMs: 120, Acceleration: 0.90, LinesPerLevel: 10, Multiplier: 2},
	Expert:  {BaseDropMs: 500, MinDropMs: 70, Acceleration: 0.85, LinesPerLevel: 8, Multiplier: 3},
}

// ParseDifficulty resolves a preset name, ignoring case and surrounding space.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := curves[d]; !ok {
		return "", fmt.Errorf("engine: unknown difficulty %q", s)
	}
	return d, nil
}

// Title returns the display name of the preset.
func (d Difficulty) Title() string {
	switch d {
	case Relaxed:
		return "Relaxed"
	case Classic:
		return "Classic"
	case Expert:
		return "Expert"
	default:
		return string(d)
	}
}

// CurveFor returns the curve of d. It panics for values outside the presets.
func CurveFor(d Difficulty) Curve {
	c, ok := curves[d]
	if !ok {
		panic(fmt.Sprintf("engine: unknown difficulty %q", string(d)))
	}
	return c
}

// DropInterval returns the gravity interval in milliseconds at a level.
// It never increases with level and never goes below the curve minimum.
func DropInterval(d Difficulty, level int) int {
	c := CurveFor(d)
	scaled := float64(c.BaseDropMs) * math.Pow(c.Acceleration, float64(max(0, level-1)))
	return max(c.MinDropMs, int(math.Round(scaled)))
}

// LevelForLines returns the 1-indexed level reached after totalLines.
func LevelForLines(d Difficulty, totalLines int) int {
	return totalLines/CurveFor(d).LinesPerLevel + 1
}

// Progress describes how far the player is into the current level.
type Progress struct {
	LinesPerLevel    int
	LinesIntoLevel   int
	LinesToNextLevel int
}

// LevelProgress returns level progress after totalLines.
func LevelProgress(d Difficulty, totalLines int) Progress {
	per := CurveFor(d).LinesPerLevel
	into := totalLines % per
	toNext := per - into
	if into == 0 {
		toNext = per
	}
	return Progress{
		LinesPerLevel:    per,
		LinesIntoLevel:   into,
		LinesToNextLevel: toNext,
	}
}

// ScoreMultiplier returns the difficulty score factor (1, 2 or 3).
func ScoreMultiplier(d Difficulty) int {
	return CurveFor(d).Multiplier
}
