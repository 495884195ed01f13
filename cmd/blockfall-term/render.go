package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
)

const (
	originX = 2
	originY = 1
)

var cellColors = map[engine.Color]tcell.Color{
	engine.Cyan:   tcell.NewRGBColor(0, 230, 240),
	engine.Blue:   tcell.NewRGBColor(40, 90, 240),
	engine.Orange: tcell.NewRGBColor(250, 155, 25),
	engine.Yellow: tcell.NewRGBColor(250, 230, 40),
	engine.Green:  tcell.NewRGBColor(50, 215, 75),
	engine.Purple: tcell.NewRGBColor(165, 65, 230),
	engine.Red:    tcell.NewRGBColor(240, 50, 50),
	engine.Gray:   tcell.NewRGBColor(140, 140, 140),
}

var (
	frameStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	emptyStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(60, 60, 70))
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	alertStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// renderSystem redraws the whole screen at the end of every frame.
type renderSystem struct {
	screen  tcell.Screen
	gravity *loop.GravitySystem
	sound   *audio.SoundManager
}

func (s *renderSystem) Execute(frame *loop.Frame) {
	draw(s.screen, frame.Engine.State(), s.gravity.Paused, s.sound.Muted())
}

// Each board cell is two terminal columns wide so cells look square.
func screenPos(col, row int) (x, y int) {
	return originX + 1 + col*2, originY + row
}

func draw(screen tcell.Screen, st engine.State, paused, muted bool) {
	screen.Clear()

	rows, cols := st.Board.Rows(), st.Board.Cols()
	right := originX + 1 + cols*2
	bottom := originY + rows

	for row := range rows {
		screen.SetContent(originX, originY+row, '│', nil, frameStyle)
		screen.SetContent(right, originY+row, '│', nil, frameStyle)
	}
	screen.SetContent(originX, bottom, '└', nil, frameStyle)
	screen.SetContent(right, bottom, '┘', nil, frameStyle)
	for x := originX + 1; x < right; x++ {
		screen.SetContent(x, bottom, '─', nil, frameStyle)
	}

	for row := range rows {
		for col := range cols {
			x, y := screenPos(col, row)
			if c := st.Board.At(col, row); c.Occupied() {
				putCell(screen, x, y, '█', tcell.StyleDefault.Foreground(cellColors[c]))
			} else {
				screen.SetContent(x, y, ' ', nil, emptyStyle)
				screen.SetContent(x+1, y, '.', nil, emptyStyle)
			}
		}
	}

	if p := st.Piece; p != nil {
		style := tcell.StyleDefault.Foreground(cellColors[p.Color])
		for col, row := range p.Cells() {
			if row+st.Ghost >= 0 {
				x, y := screenPos(col, row+st.Ghost)
				putCell(screen, x, y, '░', style)
			}
		}
		for col, row := range p.Cells() {
			if row >= 0 {
				x, y := screenPos(col, row)
				putCell(screen, x, y, '█', style)
			}
		}
	}

	textX := right + 3
	lines := []string{
		fmt.Sprintf("SCORE  %d", st.Score),
		fmt.Sprintf("LINES  %d", st.Lines),
		fmt.Sprintf("PIECES %d", st.Pieces),
		"",
		"←/→ h/l  move",
		"↑ k      rotate",
		"↓ j      soft drop",
		"space    hard drop",
		"p pause  m mute",
		"r restart  q quit",
	}
	for i, line := range lines {
		drawText(screen, textX, originY+i, textStyle, line)
	}

	status := originY + len(lines) + 1
	switch {
	case st.GameOver:
		drawText(screen, textX, status, alertStyle, "GAME OVER")
	case paused:
		drawText(screen, textX, status, alertStyle, "PAUSED")
	}
	if muted {
		drawText(screen, textX, status+1, frameStyle, "muted")
	}

	screen.Show()
}

func putCell(screen tcell.Screen, x, y int, r rune, style tcell.Style) {
	screen.SetContent(x, y, r, nil, style)
	screen.SetContent(x+1, y, r, nil, style)
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
