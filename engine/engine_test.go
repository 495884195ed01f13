package engine_test

import (
	"sync"
	"testing"

	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(kinds ...engine.Kind) *engine.Engine {
	return engine.New(engine.DefaultRows, engine.DefaultCols,
		engine.WithSource(engine.NewSequenceSource(kinds...)))
}

func TestSpawnPosition(t *testing.T) {
	want := map[engine.Kind]int{
		engine.KindI: 3,
		engine.KindJ: 4,
		engine.KindL: 4,
		engine.KindO: 4,
		engine.KindS: 4,
		engine.KindT: 4,
		engine.KindZ: 4,
	}

	for kind, x := range want {
		t.Run(kind.String(), func(t *testing.T) {
			e := newEngine(kind)

			p, ok := e.Active()
			require.True(t, ok)
			assert.Equal(t, kind, p.Kind)
			assert.Equal(t, x, p.X)
			assert.Equal(t, 0, p.Y)
			assert.Equal(t, kind.Color(), p.Color)
			assert.False(t, e.GameOver())
			assert.Equal(t, 1, e.Pieces())
		})
	}
}

func TestOPieceFallsAndLands(t *testing.T) {
	e := newEngine(engine.KindO)

	for i := 1; i <= 18; i++ {
		res := e.Tick()
		require.Equal(t, engine.Moved, res.Outcome, "tick %d", i)

		p, _ := e.Active()
		assert.Equal(t, i, p.Y)
	}

	res := e.Tick()
	assert.Equal(t, engine.Landed, res.Outcome)
	assert.Equal(t, 0, res.Lines)
	assert.Equal(t, 0, res.Points)
	assert.True(t, res.Spawned)
	assert.False(t, res.GameOver())
	assert.Equal(t, 0, e.Score())

	b := e.Board()
	for _, cell := range [][2]int{{4, 18}, {5, 18}, {4, 19}, {5, 19}} {
		assert.Equal(t, engine.Yellow, b.At(cell[0], cell[1]), "cell %v", cell)
	}
	assert.Equal(t, 4, b.Filled())

	p, ok := e.Active()
	require.True(t, ok)
	assert.Equal(t, 0, p.Y)
	assert.Equal(t, 4, p.X)
	assert.Equal(t, 2, e.Pieces())
}

func TestMoveHorizontal(t *testing.T) {
	e := newEngine(engine.KindT)

	assert.True(t, e.MoveLeft())
	p, _ := e.Active()
	assert.Equal(t, 3, p.X)

	for e.MoveLeft() {
	}
	p, _ = e.Active()
	assert.Equal(t, 0, p.X, "stops at the left wall")

	for e.MoveRight() {
	}
	p, _ = e.Active()
	assert.Equal(t, engine.DefaultCols-3, p.X, "stops at the right wall")
	assert.Equal(t, 0, p.Y, "no vertical drift")
}

func TestMoveBlockedByLockedCells(t *testing.T) {
	b := engine.NewBoard(20, 10)
	b.Set(3, 1, engine.Gray)
	e := engine.New(0, 0, engine.WithBoard(b),
		engine.WithSource(engine.NewSequenceSource(engine.KindO)))

	assert.False(t, e.MoveLeft(), "O at x=4 would overlap (3,1)")
	p, _ := e.Active()
	assert.Equal(t, 4, p.X)
}

func TestRotate(t *testing.T) {
	e := newEngine(engine.KindL)
	before, _ := e.Active()

	require.True(t, e.Rotate())

	after, _ := e.Active()
	assert.False(t, before.Shape.Equal(after.Shape))
	assert.Equal(t, before.Shape.Width(), after.Shape.Height())
	assert.Equal(t, before.X, after.X)
	assert.Equal(t, before.Y, after.Y)
}

func TestRotateTwiceMatchesHalfTurn(t *testing.T) {
	e := newEngine(engine.KindT)
	e.Tick()
	e.Tick()
	before, _ := e.Active()

	require.True(t, e.Rotate())
	require.True(t, e.Rotate())

	after, _ := e.Active()
	want := engine.RotateMatrix(engine.RotateMatrix(before.Shape))
	assert.True(t, want.Equal(after.Shape))
}

func TestRotateAgainstWallFails(t *testing.T) {
	e := newEngine(engine.KindI)
	require.True(t, e.Rotate(), "vertical I fits at spawn")
	for e.MoveRight() {
	}

	before, _ := e.Active()
	require.Equal(t, engine.DefaultCols-1, before.X)

	assert.False(t, e.Rotate(), "horizontal I would leave the board")

	after, _ := e.Active()
	assert.True(t, before.Shape.Equal(after.Shape))
	assert.Equal(t, before.X, after.X)
	assert.Equal(t, before.Y, after.Y)
}

func TestSpawnIntoFullTopIsGameOver(t *testing.T) {
	b := engine.NewBoard(20, 10)
	for row := range 4 {
		fillRow(b, row, engine.Gray)
	}

	e := engine.New(0, 0, engine.WithBoard(b))

	assert.True(t, e.GameOver())
	_, ok := e.Active()
	assert.False(t, ok)
	assert.Equal(t, b.String(), e.Board().String(), "board untouched")
	assert.Equal(t, 0, e.Pieces())
}

func TestLandingIntoGameOver(t *testing.T) {
	b := engine.NewBoard(20, 10)
	for col := range 9 {
		b.Set(col, 2, engine.Gray)
	}
	e := engine.New(0, 0, engine.WithBoard(b),
		engine.WithSource(engine.NewSequenceSource(engine.KindO)))
	require.False(t, e.GameOver())

	res := e.Tick()

	assert.Equal(t, engine.Landed, res.Outcome)
	assert.False(t, res.Spawned)
	assert.True(t, res.GameOver())
	assert.True(t, e.GameOver())
	_, ok := e.Active()
	assert.False(t, ok)

	assert.Equal(t, engine.Idle, e.Tick().Outcome)
	assert.False(t, e.MoveLeft())
	assert.False(t, e.MoveRight())
	assert.False(t, e.Rotate())
	assert.Equal(t, engine.Idle, e.HardDrop().Outcome)
}

func TestHardDropMatchesTicks(t *testing.T) {
	dropped := newEngine(engine.KindT, engine.KindO)
	ticked := newEngine(engine.KindT, engine.KindO)
	dropped.MoveLeft()
	ticked.MoveLeft()

	res := dropped.HardDrop()
	var last engine.TickResult
	for last.Outcome != engine.Landed {
		last = ticked.Tick()
	}

	assert.Equal(t, engine.Landed, res.Outcome)
	assert.Equal(t, 18, res.Dropped)
	assert.Equal(t, ticked.Board().String(), dropped.Board().String())
	p, _ := dropped.Active()
	assert.Equal(t, engine.KindO, p.Kind)
}

func TestFourLineClearScoresTetris(t *testing.T) {
	b := engine.NewBoard(20, 10)
	for row := 16; row < 20; row++ {
		fillRow(b, row, engine.Green)
		b.Set(0, row, engine.None)
	}
	e := engine.New(0, 0, engine.WithBoard(b),
		engine.WithSource(engine.NewSequenceSource(engine.KindI)))

	require.True(t, e.Rotate())
	for e.MoveLeft() {
	}
	res := e.HardDrop()

	assert.Equal(t, 4, res.Lines)
	assert.Equal(t, 800, res.Points)
	assert.Equal(t, 800, e.Score())
	assert.Equal(t, 4, e.Lines())
	assert.Equal(t, 0, e.Board().Filled())
}

func TestReset(t *testing.T) {
	e := newEngine(engine.KindO)
	e.HardDrop()
	require.Equal(t, 4, e.Board().Filled())

	e.Reset()

	assert.Equal(t, 0, e.Board().Filled())
	assert.Equal(t, 0, e.Score())
	assert.Equal(t, 1, e.Pieces())
	assert.False(t, e.GameOver())
	_, ok := e.Active()
	assert.True(t, ok)
}

func TestStateSnapshot(t *testing.T) {
	e := newEngine(engine.KindO)
	s := e.State()

	require.NotNil(t, s.Piece)
	assert.Equal(t, 18, s.Ghost)
	assert.False(t, s.GameOver)

	s.Board.Set(0, 0, engine.Red)
	s.Piece.X = 0
	assert.Equal(t, engine.None, e.Board().At(0, 0), "snapshot board is a copy")
	p, _ := e.Active()
	assert.Equal(t, 4, p.X, "snapshot piece is a copy")
}

func TestActiveReturnsCopy(t *testing.T) {
	e := newEngine(engine.KindT)
	p, _ := e.Active()
	p.Shape[0][0] = true

	q, _ := e.Active()
	assert.False(t, q.Shape[0][0])
}

func TestConcurrentCalls(t *testing.T) {
	e := engine.New(engine.DefaultRows, engine.DefaultCols,
		engine.WithSource(engine.NewUniformSource(7)))

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				e.MoveLeft()
				e.Rotate()
				e.MoveRight()
				e.Tick()
				_ = e.State()
			}
		}()
	}
	wg.Wait()

	assert.GreaterOrEqual(t, e.Score(), 0)
}
