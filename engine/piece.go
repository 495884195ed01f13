package engine

import "iter"

// Piece is a falling tetromino. X is the anchor column and Y the anchor row
// of the shape's top-left corner; Y may be negative while the piece is
// partly above the board.
type Piece struct {
	Kind  Kind
	Shape Shape
	Color Color
	X     int
	Y     int
}

// NewPiece creates a piece of the given kind in its base orientation.
func NewPiece(kind Kind, x, y int) Piece {
	return Piece{
		Kind:  kind,
		Shape: kind.Shape(),
		Color: kind.Color(),
		X:     x,
		Y:     y,
	}
}

// Clone returns a copy that shares no memory with p.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}

// Cells yields the absolute (col, row) board position of every occupied
// cell of the piece.
func (p Piece) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for r, c := range p.Shape.Cells() {
			if !yield(p.X+c, p.Y+r) {
				return
			}
		}
	}
}
