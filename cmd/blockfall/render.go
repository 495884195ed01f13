package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/engine"
)

const (
	cellSize   = 28
	margin     = 40
	sideWidth  = 180
	debugWidth = 330
)

var (
	background = color.RGBA{18, 18, 24, 255}
	gridLine   = color.RGBA{40, 40, 52, 255}
	frameColor = color.RGBA{128, 128, 128, 255}
)

var cellColors = map[engine.Color]color.RGBA{
	engine.Cyan:   {0, 230, 240, 255},
	engine.Blue:   {40, 90, 240, 255},
	engine.Orange: {250, 155, 25, 255},
	engine.Yellow: {250, 230, 40, 255},
	engine.Green:  {50, 215, 75, 255},
	engine.Purple: {165, 65, 230, 255},
	engine.Red:    {240, 50, 50, 255},
	engine.Gray:   {140, 140, 140, 255},
}

// layout places the board and the score column in the window.
type layout struct {
	rows, cols int
	boardX     float32
	boardY     float32
	width      int
	height     int
}

func newLayout(rows, cols int, debugUI bool) layout {
	l := layout{
		rows:   rows,
		cols:   cols,
		boardX: margin,
		boardY: margin,
	}
	if debugUI {
		l.boardX += debugWidth
	}
	l.width = int(l.boardX) + cols*cellSize + sideWidth
	l.height = rows*cellSize + 2*margin
	return l
}

func (l layout) cell(col, row int) (x, y float32) {
	return l.boardX + float32(col*cellSize), l.boardY + float32(row*cellSize)
}

func drawSession(screen *ebiten.Image, l layout, st engine.State, paused bool) {
	screen.Fill(background)

	w := float32(l.cols * cellSize)
	h := float32(l.rows * cellSize)
	vector.DrawFilledRect(screen, l.boardX, l.boardY, w, h, color.Black, false)
	vector.StrokeRect(screen, l.boardX-2, l.boardY-2, w+4, h+4, 2, frameColor, false)

	for row := range st.Board.Rows() {
		for col := range st.Board.Cols() {
			x, y := l.cell(col, row)
			if c := st.Board.At(col, row); c.Occupied() {
				drawCell(screen, x, y, cellColors[c])
			} else {
				vector.StrokeRect(screen, x, y, cellSize, cellSize, 1, gridLine, false)
			}
		}
	}

	if p := st.Piece; p != nil {
		ghost := color.RGBA{255, 255, 255, 60}
		for col, row := range p.Cells() {
			if row+st.Ghost >= 0 {
				x, y := l.cell(col, row+st.Ghost)
				vector.DrawFilledRect(screen, x, y, cellSize, cellSize, ghost, false)
			}
		}
		for col, row := range p.Cells() {
			if row >= 0 {
				x, y := l.cell(col, row)
				drawCell(screen, x, y, cellColors[p.Color])
			}
		}
	}

	textX := int(l.boardX+w) + 20
	textY := int(l.boardY)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE\n%d", st.Score), textX, textY)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES\n%d", st.Lines), textX, textY+40)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("PIECES\n%d", st.Pieces), textX, textY+80)
	ebitenutil.DebugPrintAt(screen, "ARROWS move\nUP rotate\nSPACE drop\nP pause  M mute\nR restart  Q quit", textX, textY+140)

	switch {
	case st.GameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER\nPress R to restart", int(l.boardX)+20, int(l.boardY+h/2)-10)
	case paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", int(l.boardX+w/2)-20, int(l.boardY+h/2)-10)
	}
}

func drawCell(screen *ebiten.Image, x, y float32, c color.RGBA) {
	vector.DrawFilledRect(screen, x, y, cellSize, cellSize, c, false)
	vector.StrokeRect(screen, x, y, cellSize, cellSize, 1, color.Black, false)
}
