package engine

const (
	// minQueueSize is the number of pending pieces kept before every spawn.
	minQueueSize = 6
	// maxGravitySteps caps catch-up rows per tick after a long stall.
	maxGravitySteps = 10
)

// lineScores is the base award for clearing 0..4 rows at once.
var lineScores = [...]int{0, 100, 300, 500, 800}

// Frame is a complete, immutable snapshot of one game at one instant.
// Every operation returns a new Frame; the receiver is never modified.
// The Queue slice is never written after it is stored in a Frame.
type Frame struct {
	Board            Board
	Active           *Piece // nil while no piece is falling
	Queue            []PieceType
	Held             PieceType // PieceNone when the hold slot is empty
	CanHold          bool
	Score            int
	Lines            int
	Level            int
	Difficulty       Difficulty
	DropInterval     int // Gravity interval in milliseconds
	LinesPerLevel    int
	LinesToNextLevel int
	Gravity          float64 // Milliseconds carried over between ticks
	Steps            uint64  // Number of gravity steps performed
	Seed             uint32  // Generator state, advances on every bag refill
}

// Result is what every frame operation returns: the next frame plus signals
// for the session layer.
type Result struct {
	Frame     Frame
	LockedOut bool // A new piece could not be placed; the game is over
	Cleared   int  // Rows cleared by this operation
}

// ScoreForLines returns the award for clearing lines rows at once.
func ScoreForLines(lines, level int, d Difficulty) int {
	if lines < 0 || lines >= len(lineScores) {
		panic("engine: impossible line clear count")
	}
	return lineScores[lines] * level * ScoreMultiplier(d)
}

// InitializeFrame builds a fresh level-1 frame and spawns the first piece.
func InitializeFrame(seed uint32, d Difficulty) Result {
	progress := LevelProgress(d, 0)
	f := Frame{
		Board:            NewBoard(),
		CanHold:          true,
		Level:            1,
		Difficulty:       d,
		DropInterval:     DropInterval(d, 1),
		LinesPerLevel:    progress.LinesPerLevel,
		LinesToNextLevel: progress.LinesToNextLevel,
		Seed:             seed,
	}
	return f.spawn()
}

// withActive returns a copy of f with the active piece replaced.
func (f Frame) withActive(p *Piece) Frame {
	f.Active = p
	return f
}

// fits reports whether p can sit on the board without colliding.
func (f Frame) fits(p Piece) bool {
	cells := p.Cells()
	return !f.Board.Collides(cells[:])
}

// fillQueue tops the queue up with whole bags until it holds minQueueSize.
func (f Frame) fillQueue() Frame {
	if len(f.Queue) >= minQueueSize {
		return f
	}
	queue := make([]PieceType, len(f.Queue), minQueueSize+len(PieceTypes))
	copy(queue, f.Queue)
	seed := f.Seed
	for len(queue) < minQueueSize {
		var bag []PieceType
		bag, seed = GenerateBag(seed)
		queue = append(queue, bag...)
	}
	f.Queue = queue
	f.Seed = seed
	return f
}

// place puts a fresh piece of type t at its spawn anchor. If the spawn
// collides the frame is left without an active piece and lock-out is set.
func (f Frame) place(t PieceType) Result {
	p := Spawn(t)
	if !f.fits(p) {
		return Result{Frame: f.withActive(nil), LockedOut: true}
	}
	return Result{Frame: f.withActive(&p)}
}

// spawn pops the head of the queue as the next active piece.
func (f Frame) spawn() Result {
	f = f.fillQueue()
	next := f.Queue[0]
	f.Queue = f.Queue[1:]
	return f.place(next)
}

// progress applies a lock's line clears to score, level and speed.
func (f Frame) progress(cleared int) Frame {
	total := f.Lines + cleared
	level := LevelForLines(f.Difficulty, total)
	p := LevelProgress(f.Difficulty, total)

	f.Lines = total
	f.Level = level
	f.DropInterval = DropInterval(f.Difficulty, level)
	f.LinesPerLevel = p.LinesPerLevel
	f.LinesToNextLevel = p.LinesToNextLevel
	f.Score += ScoreForLines(cleared, level, f.Difficulty)
	return f
}

// lock merges the active piece, clears rows, updates progression and spawns
// the next piece.
func (f Frame) lock() Result {
	if f.Active == nil {
		return Result{Frame: f}
	}
	cells := f.Active.Cells()
	board, cleared := f.Board.Merge(cells[:], f.Active.Type).ClearLines()

	f.Board = board
	f.Active = nil
	f.Gravity = 0
	f.CanHold = true
	f = f.progress(cleared)

	r := f.spawn()
	r.Cleared = cleared
	return r
}

// Move translates the active piece by (dx, dy). A colliding move is rejected
// and the frame is returned unchanged.
func (f Frame) Move(dx, dy int) Result {
	return f.move(dx, dy, false)
}

// SoftDrop moves the active piece down one row, awarding the difficulty
// multiplier as a per-row bonus. When the piece cannot descend it locks.
func (f Frame) SoftDrop() Result {
	return f.move(0, 1, true)
}

func (f Frame) move(dx, dy int, soft bool) Result {
	if f.Active == nil {
		return Result{Frame: f}
	}
	moved := f.Active.Translated(dx, dy)
	if !f.fits(moved) {
		if soft && dy > 0 {
			return f.lock()
		}
		return Result{Frame: f}
	}

	next := f.withActive(&moved)
	if soft && dy > 0 {
		next.Score += ScoreMultiplier(f.Difficulty)
	}
	return Result{Frame: next}
}

// Rotate turns the active piece one step in dir, trying each wall-kick
// candidate in table order and accepting the first that fits. If none fit
// the frame is returned unchanged.
func (f Frame) Rotate(dir Direction) Result {
	if f.Active == nil {
		return Result{Frame: f}
	}
	turned := f.Active.Rotated(dir)
	for _, k := range WallKickOffsets(f.Active.Type, f.Active.Rotation, turned.Rotation) {
		candidate := turned.Translated(k.X, k.Y)
		if f.fits(candidate) {
			return Result{Frame: f.withActive(&candidate)}
		}
	}
	return Result{Frame: f}
}

// HardDrop moves the active piece to its lowest valid row and locks it.
// Only the resulting line clear scores.
func (f Frame) HardDrop() Result {
	if f.Active == nil {
		return Result{Frame: f}
	}
	cells := f.Active.Cells()
	dropped := f.Board.DropCoordinates(cells[:])
	landed := f.Active.Translated(0, dropped[0].Y-cells[0].Y)

	f = f.withActive(&landed)
	f.Gravity = 0
	return f.lock()
}

// Hold swaps the active piece into the hold slot. It is allowed once per
// piece: after a hold, CanHold stays false until the next lock.
func (f Frame) Hold() Result {
	if f.Active == nil || !f.CanHold {
		return Result{Frame: f}
	}
	current := f.Active.Type
	held := f.Held

	f.Held = current
	f.CanHold = false
	f.Gravity = 0
	f.Active = nil

	if held == PieceNone {
		return f.spawn()
	}
	return f.place(held)
}

// Tick advances gravity by elapsedMs. Each full drop interval moves the
// active piece down one row or locks it, up to maxGravitySteps per call.
// Leftover time is carried in Gravity.
func (f Frame) Tick(elapsedMs float64) Result {
	working := f
	var cleared int

	if working.Active == nil {
		r := working.spawn()
		if r.LockedOut {
			r.Frame.Gravity = 0
			return r
		}
		working = r.Frame
	}

	acc := f.Gravity + elapsedMs
	steps := 0
	for working.Active != nil && acc >= float64(working.DropInterval) && steps < maxGravitySteps {
		acc -= float64(working.DropInterval)
		steps++

		moved := working.Active.Translated(0, 1)
		if working.fits(moved) {
			working = working.withActive(&moved)
			continue
		}

		r := working.lock()
		working = r.Frame
		cleared += r.Cleared
		if r.LockedOut {
			working.Gravity = 0
			working.Steps += uint64(steps)
			return Result{Frame: working, LockedOut: true, Cleared: cleared}
		}
	}

	working.Gravity = acc
	working.Steps += uint64(steps)
	return Result{Frame: working, Cleared: cleared}
}

// Ghost returns where the active piece would land if hard-dropped now,
// or nil without an active piece.
func (f Frame) Ghost() []Point {
	if f.Active == nil {
		return nil
	}
	cells := f.Active.Cells()
	return f.Board.DropCoordinates(cells[:])
}

// Preview returns up to n upcoming piece types without consuming them.
func (f Frame) Preview(n int) []PieceType {
	n = min(max(n, 0), len(f.Queue))
	out := make([]PieceType, n)
	copy(out, f.Queue[:n])
	return out
}

// Valid reports whether the frame satisfies its structural invariants: a known
// difficulty, a level of at least 1, and only catalog pieces on the board and
// in the queue.
func (f Frame) Valid() bool {
	if _, ok := curves[f.Difficulty]; !ok || f.Level < 1 {
		return false
	}
	for y := range Height {
		for x := range Width {
			if c := f.Board[y][x]; c != PieceNone && !c.Valid() {
				return false
			}
		}
	}
	for _, t := range f.Queue {
		if !t.Valid() {
			return false
		}
	}
	if f.Active != nil && !f.Active.Type.Valid() {
		return false
	}
	return f.Held == PieceNone || f.Held.Valid()
}
