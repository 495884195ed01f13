package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(60, 30)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestDrawPieceAndGhost(t *testing.T) {
	screen := newSimScreen(t)
	e := engine.New(engine.DefaultRows, engine.DefaultCols,
		engine.WithSource(engine.NewSequenceSource(engine.KindO)))

	draw(screen, e.State(), false, false)

	x, y := screenPos(4, 0)
	assert.Equal(t, '█', runeAt(screen, x, y))
	assert.Equal(t, '█', runeAt(screen, x+1, y))

	x, y = screenPos(4, 19)
	assert.Equal(t, '░', runeAt(screen, x, y), "ghost on the floor")

	x, y = screenPos(0, 0)
	assert.Equal(t, '.', runeAt(screen, x+1, y), "empty cell marker")
	assert.Equal(t, '│', runeAt(screen, originX, originY))
}

func TestDrawLockedCellsAndGameOver(t *testing.T) {
	screen := newSimScreen(t)
	b := engine.NewBoard(engine.DefaultRows, engine.DefaultCols)
	for col := range engine.DefaultCols {
		b.Set(col, 0, engine.Gray)
	}
	e := engine.New(0, 0, engine.WithBoard(b))
	require.True(t, e.GameOver())

	draw(screen, e.State(), false, false)

	x, y := screenPos(9, 0)
	assert.Equal(t, '█', runeAt(screen, x, y))

	textX := originX + 1 + engine.DefaultCols*2 + 3
	assert.Equal(t, 'G', runeAt(screen, textX, originY+11))
}

func TestKeyAction(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want loop.Action
		ok   bool
	}{
		{tcell.KeyLeft, 0, loop.ActionMoveLeft, true},
		{tcell.KeyRight, 0, loop.ActionMoveRight, true},
		{tcell.KeyUp, 0, loop.ActionRotate, true},
		{tcell.KeyDown, 0, loop.ActionSoftDrop, true},
		{tcell.KeyEscape, 0, loop.ActionQuit, true},
		{tcell.KeyRune, 'h', loop.ActionMoveLeft, true},
		{tcell.KeyRune, ' ', loop.ActionHardDrop, true},
		{tcell.KeyRune, 'r', loop.ActionRestart, true},
		{tcell.KeyRune, 'q', loop.ActionQuit, true},
		{tcell.KeyRune, 'p', 0, false},
		{tcell.KeyTab, 0, 0, false},
	}

	for _, tt := range tests {
		got, ok := keyAction(tt.key, tt.r)
		assert.Equal(t, tt.ok, ok, "key %v rune %q", tt.key, tt.r)
		assert.Equal(t, tt.want, got, "key %v rune %q", tt.key, tt.r)
	}
}

func TestControlsToggleOnOddPresses(t *testing.T) {
	c := &controls{}
	gravity := &loop.GravitySystem{}
	sound := audio.NewSoundManager()

	scheduler := loop.NewScheduler(engine.New(engine.DefaultRows, engine.DefaultCols))
	scheduler.Register(&controlSystem{controls: c, gravity: gravity, sound: sound})

	c.press('p')
	c.press('p')
	c.press('p')
	c.press('m')
	scheduler.Once(0)

	assert.True(t, gravity.Paused)
	assert.True(t, sound.Muted())

	scheduler.Once(0)
	assert.True(t, gravity.Paused, "presses are consumed once")
	assert.True(t, sound.Muted())
}
