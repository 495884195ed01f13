package loop_test

import (
	"sync"
	"testing"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsDrainInOrder(t *testing.T) {
	c := loop.NewCommands()
	c.Push(loop.ActionRotate)
	c.Push(loop.ActionMoveLeft)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []loop.Action{loop.ActionRotate, loop.ActionMoveLeft}, c.Drain(nil))
	assert.Zero(t, c.Len())
	assert.Empty(t, c.Drain(nil))
}

func TestCommandsConcurrentPush(t *testing.T) {
	c := loop.NewCommands()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				c.Push(loop.ActionSoftDrop)
			}
		}()
	}
	wg.Wait()

	assert.Len(t, c.Drain(nil), 800)
}

func TestInputSystemAppliesActions(t *testing.T) {
	e := newSession(engine.KindT, engine.KindO)
	commands := loop.NewCommands()

	var events []loop.Event
	scheduler := loop.NewScheduler(e)
	scheduler.Register(&loop.InputSystem{Commands: commands})
	scheduler.Register(loop.SystemFunc(func(frame *loop.Frame) {
		events = append(events, frame.Events...)
	}))

	commands.Push(loop.ActionMoveLeft)
	commands.Push(loop.ActionRotate)
	commands.Push(loop.ActionSoftDrop)
	scheduler.Once(0)

	p, ok := e.Active()
	require.True(t, ok)
	assert.Equal(t, 3, p.X)
	assert.Equal(t, 1, p.Y)
	assert.Equal(t, 3, p.Shape.Height(), "rotated")
	assert.Equal(t, []loop.Event{
		{Kind: loop.EventShifted},
		{Kind: loop.EventRotated},
		{Kind: loop.EventFell},
	}, events)

	events = nil
	commands.Push(loop.ActionHardDrop)
	scheduler.Once(0)

	assert.Equal(t, []loop.Event{{Kind: loop.EventLanded}}, events)
	p, _ = e.Active()
	assert.Equal(t, engine.KindO, p.Kind)
}

func TestInputSystemRejectedMovesEmitNothing(t *testing.T) {
	e := newSession(engine.KindO)
	commands := loop.NewCommands()
	for range 10 {
		commands.Push(loop.ActionMoveLeft)
	}

	shifted := 0
	scheduler := loop.NewScheduler(e)
	scheduler.Register(&loop.InputSystem{Commands: commands})
	scheduler.Register(loop.SystemFunc(func(frame *loop.Frame) {
		for _, ev := range frame.Events {
			if ev.Kind == loop.EventShifted {
				shifted++
			}
		}
	}))
	scheduler.Once(0)

	assert.Equal(t, 4, shifted, "O spawns at column 4 and stops at the wall")
}

func TestInputSystemRestartAndQuit(t *testing.T) {
	e := newSession(engine.KindO)
	e.HardDrop()
	require.Equal(t, 4, e.Board().Filled())

	commands := loop.NewCommands()
	scheduler := loop.NewScheduler(e)
	scheduler.Register(&loop.InputSystem{Commands: commands})

	commands.Push(loop.ActionRestart)
	assert.True(t, scheduler.Once(0))
	assert.Zero(t, e.Board().Filled())

	commands.Push(loop.ActionQuit)
	commands.Push(loop.ActionMoveLeft)
	assert.False(t, scheduler.Once(0))
	p, _ := e.Active()
	assert.Equal(t, 4, p.X, "actions after quit are dropped")
	assert.Zero(t, commands.Len())
}
