package engine

import "fmt"

// transition is a rotation change between two adjacent states.
type transition struct {
	from, to Rotation
}

// kickTable maps each of the eight adjacent transitions to its candidate
// offsets. Offsets are in board coordinates (y down), so the SRS vertical
// components appear with inverted sign.
type kickTable map[transition][]Point

var standardKicks = kickTable{
	{0, 1}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{1, 0}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{1, 2}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{2, 1}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{2, 3}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{3, 2}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{3, 0}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{0, 3}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
}

var iKicks = kickTable{
	{0, 1}: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{1, 0}: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{1, 2}: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	{2, 1}: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{2, 3}: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{3, 2}: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{3, 0}: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{0, 3}: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
}

var noKick = []Point{{0, 0}}

// WallKickOffsets returns the ordered kick candidates for rotating t from one
// state to an adjacent one. The first candidate is always (0, 0).
// The O piece never kicks. A non-adjacent transition panics.
// The returned slice is shared and must not be modified.
func WallKickOffsets(t PieceType, from, to Rotation) []Point {
	if !t.Valid() {
		panic(fmt.Sprintf("engine: unknown piece type %d", uint8(t)))
	}
	if t == PieceO {
		return noKick
	}

	table := standardKicks
	if t == PieceI {
		table = iKicks
	}
	kicks, ok := table[transition{from: from % 4, to: to % 4}]
	if !ok {
		panic(fmt.Sprintf("engine: no kick data for rotation %d>%d", from, to))
	}
	return kicks
}
