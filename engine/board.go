package engine

import (
	"fmt"
	"strings"
)

// Board is the fixed-size grid of locked cells, indexed [row][col] with
// row 0 at the top. Its dimensions never change after NewBoard.
type Board struct {
	rows  int
	cols  int
	cells [][]Color
}

// NewBoard creates an empty board. It panics if either dimension is not
// positive.
func NewBoard(rows, cols int) *Board {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("engine: invalid board size %dx%d", rows, cols))
	}

	cells := make([][]Color, rows)
	for r := range cells {
		cells[r] = make([]Color, cols)
	}

	return &Board{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}
}

// Rows returns the board height.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the board width.
func (b *Board) Cols() int {
	return b.cols
}

// At returns the color stored at (col, row).
func (b *Board) At(col, row int) Color {
	b.mustContain(col, row)
	return b.cells[row][col]
}

// Set stores c at (col, row).
func (b *Board) Set(col, row int, c Color) {
	b.mustContain(col, row)
	b.cells[row][col] = c
}

// Contains reports whether (col, row) lies on the board.
func (b *Board) Contains(col, row int) bool {
	return col >= 0 && col < b.cols && row >= 0 && row < b.rows
}

// Reads and writes outside the grid can only come from an engine bug.
func (b *Board) mustContain(col, row int) {
	if !b.Contains(col, row) {
		panic(fmt.Sprintf("engine: cell (%d,%d) outside %dx%d board", col, row, b.cols, b.rows))
	}
}

// Fits reports whether shape can occupy the board with its top-left corner
// at (x, y). Cells above row 0 are only checked against the side walls.
func (b *Board) Fits(shape Shape, x, y int) bool {
	for r, c := range shape.Cells() {
		col := x + c
		row := y + r

		if col < 0 || col >= b.cols || row >= b.rows {
			return false
		}

		if row >= 0 && b.cells[row][col].Occupied() {
			return false
		}
	}

	return true
}

// DropDistance returns how many rows shape can fall from (x, y) before it
// would collide. It returns 0 when the shape does not fit at (x, y).
func (b *Board) DropDistance(shape Shape, x, y int) int {
	if !b.Fits(shape, x, y) {
		return 0
	}
	dist := 0
	for b.Fits(shape, x, y+dist+1) {
		dist++
	}
	return dist
}

// Lock writes the piece's color into every cell it covers. Cells that fall
// outside the grid are dropped.
func (b *Board) Lock(p Piece) {
	for col, row := range p.Cells() {
		if b.Contains(col, row) {
			b.cells[row][col] = p.Color
		}
	}
}

// RowFull reports whether every cell in row is occupied.
func (b *Board) RowFull(row int) bool {
	b.mustContain(0, row)
	return rowFull(b.cells[row])
}

func rowFull(row []Color) bool {
	for _, c := range row {
		if !c.Occupied() {
			return false
		}
	}
	return true
}

// ClearLines removes every full row, shifts the rows above it down and
// refills the top with empty rows. It returns the number of rows removed.
func (b *Board) ClearLines() int {
	kept := make([][]Color, 0, b.rows)
	for _, row := range b.cells {
		if !rowFull(row) {
			kept = append(kept, row)
		}
	}

	cleared := b.rows - len(kept)
	if cleared == 0 {
		return 0
	}

	rebuilt := make([][]Color, b.rows)
	for r := range cleared {
		rebuilt[r] = make([]Color, b.cols)
	}
	copy(rebuilt[cleared:], kept)
	b.cells = rebuilt

	return cleared
}

// Filled returns the number of occupied cells.
func (b *Board) Filled() int {
	n := 0
	for _, row := range b.cells {
		for _, c := range row {
			if c.Occupied() {
				n++
			}
		}
	}
	return n
}

// Height returns the number of rows between the highest occupied cell and
// the floor, or 0 on an empty board.
func (b *Board) Height() int {
	for r, row := range b.cells {
		for _, c := range row {
			if c.Occupied() {
				return b.rows - r
			}
		}
	}
	return 0
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([][]Color, b.rows)
	for r := range b.cells {
		cells[r] = make([]Color, b.cols)
		copy(cells[r], b.cells[r])
	}
	return &Board{
		rows:  b.rows,
		cols:  b.cols,
		cells: cells,
	}
}

func (b *Board) String() string {
	var sb strings.Builder
	for r, row := range b.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			if c.Occupied() {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
