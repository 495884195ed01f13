// Package engine implements the rules of a falling-block puzzle: spawning,
// horizontal movement, rotation, collision, locking, line clearing and
// scoring.
//
// An Engine owns one session. Every exported method is atomic, so a tick
// driver and an input handler may call it from different goroutines. The
// engine never schedules anything itself; callers decide when to Tick.
package engine

import (
	"math/rand/v2"
	"sync"
)

const (
	DefaultRows = 20
	DefaultCols = 10
)

// Outcome classifies the result of a Tick.
type Outcome uint8

const (
	// Idle means there was no active piece; the session is over.
	Idle Outcome = iota
	// Moved means the active piece fell one row.
	Moved
	// Landed means the piece locked, full rows were cleared and a
	// replacement spawn was attempted.
	Landed
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Landed:
		return "landed"
	default:
		return "idle"
	}
}

// TickResult describes what a Tick, SoftDrop or HardDrop did.
type TickResult struct {
	Outcome Outcome
	// Lines is the number of rows cleared by the landing.
	Lines int
	// Points is the score awarded for Lines.
	Points int
	// Spawned is true when a replacement piece entered the board.
	Spawned bool
	// Dropped is the number of rows a hard drop travelled before landing.
	Dropped int
}

// GameOver reports whether this result ended the session: the piece landed
// and its replacement could not spawn.
func (r TickResult) GameOver() bool {
	return r.Outcome == Landed && !r.Spawned
}

// State is a consistent copy of a session taken under one lock. Renderers
// may keep it; it shares no memory with the engine.
type State struct {
	Board *Board
	// Piece is nil once the session is over.
	Piece *Piece
	// Ghost is how many rows Piece can still fall.
	Ghost    int
	Score    int
	Lines    int
	Pieces   int
	GameOver bool
}

// Engine holds the board, the falling piece and the score of one session.
type Engine struct {
	mu     sync.Mutex
	board  *Board
	source Source
	active *Piece
	over   bool
	score  int
	lines  int
	pieces int
}

// Option configures an Engine.
type Option func(*Engine)

// WithSource sets the generator that picks each spawned kind.
func WithSource(src Source) Option {
	return func(e *Engine) {
		e.source = src
	}
}

// WithBoard starts the session from a copy of b instead of an empty board.
// The rows and cols passed to New are ignored.
func WithBoard(b *Board) Option {
	return func(e *Engine) {
		e.board = b.Clone()
	}
}

// New creates a session on an empty rows×cols board and spawns the first
// piece. If that spawn fails the engine starts in the game-over state.
func New(rows, cols int, opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.board == nil {
		e.board = NewBoard(rows, cols)
	}
	if e.source == nil {
		e.source = NewUniformSource(rand.Uint64())
	}

	e.spawn()
	return e
}

// Reset discards the session and starts a new one on an empty board of the
// same size. The piece source carries on from where it was.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.board = NewBoard(e.board.rows, e.board.cols)
	e.active = nil
	e.over = false
	e.score = 0
	e.lines = 0
	e.pieces = 0
	e.spawn()
}

// MoveLeft shifts the active piece one column left if it fits there.
func (e *Engine) MoveLeft() bool {
	return e.shift(-1)
}

// MoveRight shifts the active piece one column right if it fits there.
func (e *Engine) MoveRight() bool {
	return e.shift(1)
}

func (e *Engine) shift(dx int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.active
	if p == nil {
		return false
	}
	if !e.board.Fits(p.Shape, p.X+dx, p.Y) {
		return false
	}

	p.X += dx
	return true
}

// Rotate turns the active piece a quarter turn clockwise around its anchor.
// There are no wall kicks: if the rotated shape does not fit in place the
// piece is left untouched and Rotate returns false.
func (e *Engine) Rotate() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.active
	if p == nil {
		return false
	}

	rotated := RotateMatrix(p.Shape)
	if !e.board.Fits(rotated, p.X, p.Y) {
		return false
	}

	p.Shape = rotated
	return true
}

// Tick advances the active piece one row. When it cannot fall any further
// it is locked, completed rows are cleared and scored, and the next piece
// is spawned, all before Tick returns.
func (e *Engine) Tick() TickResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.step()
}

// SoftDrop is a player-requested Tick.
func (e *Engine) SoftDrop() TickResult {
	return e.Tick()
}

// HardDrop drops the active piece straight to its landing row and lands it.
func (e *Engine) HardDrop() TickResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.active
	if p == nil {
		return TickResult{Outcome: Idle}
	}

	dist := e.board.DropDistance(p.Shape, p.X, p.Y)
	p.Y += dist

	res := e.land()
	res.Dropped = dist
	return res
}

func (e *Engine) step() TickResult {
	p := e.active
	if p == nil {
		return TickResult{Outcome: Idle}
	}

	if e.board.Fits(p.Shape, p.X, p.Y+1) {
		p.Y++
		return TickResult{Outcome: Moved}
	}

	return e.land()
}

func (e *Engine) land() TickResult {
	e.board.Lock(*e.active)
	e.active = nil

	lines := e.board.ClearLines()
	points := ScoreForLines(lines)
	e.score += points
	e.lines += lines

	return TickResult{
		Outcome: Landed,
		Lines:   lines,
		Points:  points,
		Spawned: e.spawn(),
	}
}

func (e *Engine) spawn() bool {
	kind := e.source.Next()
	p := NewPiece(kind, 0, 0)
	p.X = e.board.cols/2 - p.Shape.Width()/2

	if !e.board.Fits(p.Shape, p.X, p.Y) {
		e.active = nil
		e.over = true
		return false
	}

	e.active = &p
	e.over = false
	e.pieces++
	return true
}

// Board returns a copy of the locked cells.
func (e *Engine) Board() *Board {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.board.Clone()
}

// Active returns a copy of the falling piece. The second result is false
// when there is none.
func (e *Engine) Active() (Piece, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active == nil {
		return Piece{}, false
	}
	return e.active.Clone(), true
}

// Score returns the points accumulated this session.
func (e *Engine) Score() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.score
}

// Lines returns the number of rows cleared this session.
func (e *Engine) Lines() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.lines
}

// Pieces returns the number of pieces spawned this session.
func (e *Engine) Pieces() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pieces
}

// GameOver reports whether the last spawn failed.
func (e *Engine) GameOver() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.over
}

// Size returns the board dimensions.
func (e *Engine) Size() (rows, cols int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.board.rows, e.board.cols
}

// State returns a snapshot of the whole session.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := State{
		Board:    e.board.Clone(),
		Score:    e.score,
		Lines:    e.lines,
		Pieces:   e.pieces,
		GameOver: e.over,
	}
	if e.active != nil {
		p := e.active.Clone()
		s.Piece = &p
		s.Ghost = e.board.DropDistance(p.Shape, p.X, p.Y)
	}
	return s
}
