package engine

import (
	"iter"
	"strings"
)

// Shape is a rectangular occupancy matrix indexed [row][col].
type Shape [][]bool

// Height returns the number of rows in the shape.
func (s Shape) Height() int {
	return len(s)
}

// Width returns the number of columns in the shape.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Cells yields the (row, col) offset of every occupied cell, top to bottom.
func (s Shape) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for r, row := range s {
			for c, filled := range row {
				if !filled {
					continue
				}
				if !yield(r, c) {
					return
				}
			}
		}
	}
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for r := range s {
		out[r] = make([]bool, len(s[r]))
		copy(out[r], s[r])
	}
	return out
}

// Equal reports whether both shapes have the same dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for r := range s {
		if len(s[r]) != len(other[r]) {
			return false
		}
		for c := range s[r] {
			if s[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

func (s Shape) String() string {
	var sb strings.Builder
	for r, row := range s {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, filled := range row {
			if filled {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// RotateMatrix returns s turned a quarter turn clockwise. An R×C input
// produces a C×R output with out[i][j] = s[R-1-j][i]. The input is not
// modified.
func RotateMatrix(s Shape) Shape {
	rows := s.Height()
	cols := s.Width()

	rotated := make(Shape, cols)
	for i := range rotated {
		rotated[i] = make([]bool, rows)
		for j := range rows {
			rotated[i][j] = s[rows-1-j][i]
		}
	}

	return rotated
}
