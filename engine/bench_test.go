package engine_test

import (
	"testing"

	"github.com/plus3/blockfall/engine"
)

func BenchmarkFits(b *testing.B) {
	board := engine.NewBoard(engine.DefaultRows, engine.DefaultCols)
	for row := 10; row < engine.DefaultRows; row++ {
		for col := range engine.DefaultCols - 1 {
			board.Set(col, row, engine.Gray)
		}
	}
	shape := engine.KindT.Shape()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.Fits(shape, i%8, i%9)
	}
}

func BenchmarkClearLines(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		board := engine.NewBoard(engine.DefaultRows, engine.DefaultCols)
		for _, row := range []int{19, 17, 15, 13} {
			fillRow(board, row, engine.Green)
		}
		b.StartTimer()

		board.ClearLines()
	}
}

func BenchmarkTick(b *testing.B) {
	e := engine.New(engine.DefaultRows, engine.DefaultCols,
		engine.WithSource(engine.NewBagSource(1)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if e.Tick().GameOver() {
			e.Reset()
		}
	}
}
