package main

import (
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
)

// Weights for the placement heuristic. Fewer holes and a flat, low stack
// beat an immediate clear unless the clear is large.
const (
	weightHeight    = -0.51
	weightLines     = 0.76
	weightHoles     = -0.36
	weightBumpiness = -0.18
)

type placement struct {
	rotations int
	x         int
	score     float64
}

// plan tries every rotation and column the piece can reach from where it
// is, following the engine's own rules: each quarter turn in place must
// fit, then each one-column shift must fit, then the piece drops.
func plan(b *engine.Board, p engine.Piece) (placement, bool) {
	var best placement
	found := false

	shape := p.Shape
	for r := range 4 {
		if r > 0 {
			shape = engine.RotateMatrix(shape)
			if !b.Fits(shape, p.X, p.Y) {
				break
			}
		}

		for _, x := range reachable(b, shape, p.X, p.Y) {
			sim := b.Clone()
			landed := engine.Piece{Kind: p.Kind, Shape: shape, Color: p.Color, X: x, Y: p.Y}
			landed.Y += sim.DropDistance(shape, x, p.Y)
			sim.Lock(landed)
			lines := sim.ClearLines()

			score := evaluate(sim, lines)
			if !found || score > best.score {
				best = placement{rotations: r, x: x, score: score}
				found = true
			}
		}
	}

	return best, found
}

// reachable lists the columns a shape can slide to from x, left to right.
func reachable(b *engine.Board, shape engine.Shape, x, y int) []int {
	left := x
	for b.Fits(shape, left-1, y) {
		left--
	}
	right := x
	for b.Fits(shape, right+1, y) {
		right++
	}

	cols := make([]int, 0, right-left+1)
	for col := left; col <= right; col++ {
		cols = append(cols, col)
	}
	return cols
}

func evaluate(b *engine.Board, lines int) float64 {
	heights := columnHeights(b)

	aggregate, bumpiness := 0, 0
	for i, h := range heights {
		aggregate += h
		if i > 0 {
			bumpiness += abs(h - heights[i-1])
		}
	}

	return weightHeight*float64(aggregate) +
		weightLines*float64(lines) +
		weightHoles*float64(holes(b, heights)) +
		weightBumpiness*float64(bumpiness)
}

func columnHeights(b *engine.Board) []int {
	heights := make([]int, b.Cols())
	for col := range b.Cols() {
		for row := range b.Rows() {
			if b.At(col, row).Occupied() {
				heights[col] = b.Rows() - row
				break
			}
		}
	}
	return heights
}

// holes counts empty cells below the top of their column.
func holes(b *engine.Board, heights []int) int {
	n := 0
	for col, h := range heights {
		for row := b.Rows() - h; row < b.Rows(); row++ {
			if !b.At(col, row).Occupied() {
				n++
			}
		}
	}
	return n
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// botSystem plays the session through the command buffer. The actions it
// queues are applied by the InputSystem on the next frame.
type botSystem struct {
	commands *loop.Commands
	stats    *sessionStats
}

func (s *botSystem) Execute(frame *loop.Frame) {
	e := frame.Engine

	if e.GameOver() {
		s.stats.finishGame(e.Score(), e.Lines(), e.Pieces())
		s.commands.Push(loop.ActionRestart)
		return
	}

	p, ok := e.Active()
	if !ok {
		return
	}

	best, ok := plan(e.Board(), p)
	if !ok {
		s.commands.Push(loop.ActionHardDrop)
		return
	}

	for range best.rotations {
		s.commands.Push(loop.ActionRotate)
	}

	move := loop.ActionMoveRight
	dx := best.x - p.X
	if dx < 0 {
		move, dx = loop.ActionMoveLeft, -dx
	}
	for range dx {
		s.commands.Push(move)
	}

	s.commands.Push(loop.ActionHardDrop)
}
