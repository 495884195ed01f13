package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPlanFlatOnEmptyBoard(t *testing.T) {
	b := engine.NewBoard(engine.DefaultRows, engine.DefaultCols)
	p := engine.NewPiece(engine.KindO, 4, 0)

	best, ok := plan(b, p)

	require.True(t, ok)
	assert.Equal(t, 0, best.rotations)
	assert.Equal(t, 0, best.x, "against the wall keeps the surface flattest")
}

func TestPlanTakesTheWell(t *testing.T) {
	b := engine.NewBoard(engine.DefaultRows, engine.DefaultCols)
	for col := 1; col < engine.DefaultCols; col++ {
		b.Set(col, 19, engine.Gray)
	}
	p := engine.NewPiece(engine.KindI, 3, 0)

	best, ok := plan(b, p)

	require.True(t, ok)
	assert.Equal(t, 1, best.rotations%2, "vertical")
	assert.Equal(t, 0, best.x)
}

func TestReachable(t *testing.T) {
	b := engine.NewBoard(engine.DefaultRows, engine.DefaultCols)
	o := engine.KindO.Shape()

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, reachable(b, o, 4, 0))

	b.Set(2, 1, engine.Gray)
	assert.Equal(t, []int{3, 4, 5, 6, 7, 8}, reachable(b, o, 4, 0))
}

func TestColumnHeightsAndHoles(t *testing.T) {
	b := engine.NewBoard(6, 4)
	b.Set(0, 5, engine.Gray)
	b.Set(1, 3, engine.Gray)
	b.Set(3, 0, engine.Gray)

	heights := columnHeights(b)
	assert.Equal(t, []int{1, 3, 0, 6}, heights)
	assert.Equal(t, 2+5, holes(b, heights))
}

func TestBotPlaysThroughCommands(t *testing.T) {
	e := engine.New(engine.DefaultRows, engine.DefaultCols,
		engine.WithSource(engine.NewBagSource(11)))
	stats := &sessionStats{}
	commands := loop.NewCommands()

	scheduler := loop.NewScheduler(e)
	scheduler.Register(&loop.InputSystem{Commands: commands})
	scheduler.Register(&botSystem{commands: commands, stats: stats})

	for range 300 {
		scheduler.Once(0)
	}

	assert.Greater(t, e.Pieces(), 250, "one piece per frame")
	assert.Greater(t, e.Lines()+stats.games.Lines, 10)
}

func TestRunSessionStopsOnDeadline(t *testing.T) {
	e := engine.New(engine.DefaultRows, engine.DefaultCols,
		engine.WithSource(engine.NewBagSource(3)))
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	stats := runSession(ctx, e, zap.NewNop())

	assert.Positive(t, stats.frames)
	assert.Positive(t, stats.games.Pieces)
	assert.LessOrEqual(t, stats.updateTime.Min, stats.updateTime.Max)
}

func TestStatsMerge(t *testing.T) {
	var a, b Stats
	a.Observe(2 * time.Millisecond)
	a.Observe(4 * time.Millisecond)
	b.Observe(time.Millisecond)

	var total Stats
	total.Merge(a)
	total.Merge(b)
	total.Merge(Stats{})
	total.Finalize()

	assert.Equal(t, time.Millisecond, total.Min)
	assert.Equal(t, 4*time.Millisecond, total.Max)
	assert.Equal(t, 7*time.Millisecond/3, total.Avg)
}

func TestReportGenerate(t *testing.T) {
	r := &Report{
		Duration:    time.Second,
		Sessions:    2,
		Rows:        20,
		Cols:        10,
		Randomizer:  "bag",
		TotalFrames: 1000,
		TotalTime:   time.Second,
		Games:       GameStats{Finished: 2, Pieces: 100, Lines: 40, BestScore: 900, TotalScore: 1500},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "**Concurrent Sessions:** 2")
	assert.Contains(t, out, "**Throughput:** 1000 frames/s")
	assert.Contains(t, out, "**Lines Cleared:** 40 (0.400 per piece)")
	assert.Contains(t, out, "**Avg Score:** 750.0")
	assert.NotContains(t, out, "GC Pause")
}
