// Package engine implements the deterministic Tetris rules: pieces, rotation
// with wall kicks, the board, difficulty curves, bag randomization and the
// immutable frame state machine.
//
// Everything here is pure. Operations take a value and return a new value;
// nothing reads the clock or a global random source.
package engine

import "fmt"

// PieceType identifies one of the seven tetrominoes.
// PieceNone doubles as the empty board cell.
type PieceType uint8

const (
	PieceNone PieceType = iota
	PieceI
	PieceJ
	PieceL
	PieceO
	PieceS
	PieceT
	PieceZ
)

// PieceTypes is the canonical catalog order, also used to build bags.
var PieceTypes = [...]PieceType{PieceI, PieceJ, PieceL, PieceO, PieceS, PieceT, PieceZ}

// String returns the single-letter name of the piece.
func (t PieceType) String() string {
	switch t {
	case PieceNone:
		return "."
	case PieceI:
		return "I"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	case PieceO:
		return "O"
	case PieceS:
		return "S"
	case PieceT:
		return "T"
	case PieceZ:
		return "Z"
	default:
		return fmt.Sprintf("PieceType(%d)", uint8(t))
	}
}

// Valid reports whether t is one of the seven real pieces.
func (t PieceType) Valid() bool {
	return t >= PieceI && t <= PieceZ
}

// Point is an integer board coordinate. X grows right, Y grows down.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Rotation is one of four orientation states. Incrementing it turns the piece
// a quarter turn clockwise as seen on screen.
type Rotation uint8

// Direction is a rotation step: CW adds one state, CCW removes one.
type Direction int

const (
	CW  Direction = 1
	CCW Direction = -1
)

// Rotate steps r in the given direction, wrapping modulo 4.
func (r Rotation) Rotate(dir Direction) Rotation {
	return Rotation((int(r) + int(dir) + 4) % 4)
}

// shape is the four cell offsets of one piece in one rotation state.
type shape [4]Point

// baseShapes are the rotation-0 footprints around the anchor, in the SRS
// spawn orientation: flat side down, with J, L, S, T and Z reaching one row
// above the anchor.
var baseShapes = map[PieceType]shape{
	PieceI: {{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
	PieceJ: {{-1, 0}, {0, 0}, {1, 0}, {-1, -1}},
	PieceL: {{-1, 0}, {0, 0}, {1, 0}, {1, -1}},
	PieceO: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	PieceS: {{-1, 0}, {0, 0}, {0, -1}, {1, -1}},
	PieceT: {{-1, 0}, {0, 0}, {1, 0}, {0, -1}},
	PieceZ: {{-1, -1}, {0, -1}, {0, 0}, {1, 0}},
}

// spawnAnchors are the fixed rotation-0 spawn positions. Every spawn
// footprint covers the top two rows.
var spawnAnchors = map[PieceType]Point{
	PieceI: {3, 0},
	PieceJ: {3, 1},
	PieceL: {3, 1},
	PieceO: {4, 0},
	PieceS: {3, 1},
	PieceT: {3, 1},
	PieceZ: {3, 1},
}

// shapes is indexed by piece type then rotation.
var shapes [PieceZ + 1][4]shape

func init() {
	for _, t := range PieceTypes {
		s := baseShapes[t]
		shapes[t][0] = s
		for r := 1; r < 4; r++ {
			if t != PieceO {
				s = rotateShape(s)
			}
			shapes[t][r] = s
		}
	}
}

// rotateShape turns every offset a quarter turn clockwise on a y-down grid.
func rotateShape(s shape) shape {
	var out shape
	for i, p := range s {
		out[i] = Point{X: -p.Y, Y: p.X}
	}
	return out
}

// Shape returns the four offsets of t in rotation r.
// It panics for types outside the catalog.
func Shape(t PieceType, r Rotation) [4]Point {
	if !t.Valid() {
		panic(fmt.Sprintf("engine: unknown piece type %d", uint8(t)))
	}
	return shapes[t][r%4]
}

// SpawnPosition returns the anchor where t enters the board.
func SpawnPosition(t PieceType) Point {
	p, ok := spawnAnchors[t]
	if !ok {
		panic(fmt.Sprintf("engine: unknown piece type %d", uint8(t)))
	}
	return p
}

// Piece is the falling piece. It is a value; commands build new pieces.
type Piece struct {
	Type     PieceType
	Rotation Rotation
	Pos      Point
}

// Spawn returns a fresh piece of type t at its spawn anchor in rotation 0.
func Spawn(t PieceType) Piece {
	return Piece{Type: t, Rotation: 0, Pos: SpawnPosition(t)}
}

// Cells maps the piece footprint to absolute board coordinates.
// All collision and merge logic goes through here.
func (p Piece) Cells() [4]Point {
	offsets := Shape(p.Type, p.Rotation)
	var cells [4]Point
	for i, o := range offsets {
		cells[i] = p.Pos.Add(o)
	}
	return cells
}

// Translated returns p moved by (dx, dy).
func (p Piece) Translated(dx, dy int) Piece {
	p.Pos = Point{X: p.Pos.X + dx, Y: p.Pos.Y + dy}
	return p
}

// Rotated returns p turned one step in dir, without any kick applied.
func (p Piece) Rotated(dir Direction) Piece {
	p.Rotation = p.Rotation.Rotate(dir)
	return p
}
