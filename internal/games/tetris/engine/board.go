package engine

import "strings"

// Board dimensions. They are fixed for the lifetime of the program.
const (
	Width  = 10
	Height = 20
)

// Board is the playfield, indexed [y][x]. Row 0 is the top.
// A cell holds the type of the piece that locked there, or PieceNone.
// Board is an array, so assignment copies it.
type Board [Height][Width]PieceType

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

// inBounds reports whether (x, y) lies on the visible grid.
func inBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// Occupied reports whether the cell at (x, y) holds a locked block.
// Coordinates off the grid are reported as empty.
func (b Board) Occupied(x, y int) bool {
	if !inBounds(x, y) {
		return false
	}
	return b[y][x] != PieceNone
}

// Collides reports whether any cell is outside the side walls, at or below
// the floor, or on an occupied cell. Cells above row 0 are allowed as long
// as they are within the walls.
func (b Board) Collides(cells []Point) bool {
	for _, c := range cells {
		if c.X < 0 || c.X >= Width || c.Y >= Height {
			return true
		}
		if c.Y >= 0 && b[c.Y][c.X] != PieceNone {
			return true
		}
	}
	return false
}

// Merge returns a copy of b with the given cells set to t.
// Cells off the grid are dropped.
func (b Board) Merge(cells []Point, t PieceType) Board {
	next := b
	for _, c := range cells {
		if inBounds(c.X, c.Y) {
			next[c.Y][c.X] = t
		}
	}
	return next
}

// rowFull reports whether every cell in row y is occupied.
func (b Board) rowFull(y int) bool {
	for x := range Width {
		if b[y][x] == PieceNone {
			return false
		}
	}
	return true
}

// ClearLines removes every full row and returns the compacted board with the
// number of rows removed. Remaining rows keep their order and empty rows are
// added at the top.
func (b Board) ClearLines() (Board, int) {
	var next Board
	write := Height - 1
	for y := Height - 1; y >= 0; y-- {
		if b.rowFull(y) {
			continue
		}
		next[write] = b[y]
		write--
	}
	return next, write + 1
}

// DropCoordinates moves cells straight down until one more row would collide
// and returns the resting cells. The search is bounded by the board height.
func (b Board) DropCoordinates(cells []Point) []Point {
	if len(cells) == 0 {
		return nil
	}

	// Nothing can fall further than from the highest cell to the floor.
	top := cells[0].Y
	for _, c := range cells[1:] {
		top = min(top, c.Y)
	}
	maxSteps := max(Height-top, 0)

	shifted := make([]Point, len(cells))
	offset := 0
	for step := 1; step <= maxSteps; step++ {
		for i, c := range cells {
			shifted[i] = Point{X: c.X, Y: c.Y + step}
		}
		if b.Collides(shifted) {
			break
		}
		offset = step
	}

	out := make([]Point, len(cells))
	for i, c := range cells {
		out[i] = Point{X: c.X, Y: c.Y + offset}
	}
	return out
}

// Filled returns the number of occupied cells.
func (b Board) Filled() int {
	n := 0
	for y := range Height {
		for x := range Width {
			if b[y][x] != PieceNone {
				n++
			}
		}
	}
	return n
}

// String renders the board one row per line using piece letters and '.'.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow((Width + 1) * Height)
	for y := range Height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range Width {
			sb.WriteString(b[y][x].String())
		}
	}
	return sb.String()
}
