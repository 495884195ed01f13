package main

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/loop"
)

func keyAction(key tcell.Key, r rune) (loop.Action, bool) {
	switch key {
	case tcell.KeyLeft:
		return loop.ActionMoveLeft, true
	case tcell.KeyRight:
		return loop.ActionMoveRight, true
	case tcell.KeyUp:
		return loop.ActionRotate, true
	case tcell.KeyDown:
		return loop.ActionSoftDrop, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return loop.ActionQuit, true
	case tcell.KeyRune:
	default:
		return 0, false
	}

	switch r {
	case 'h', 'a':
		return loop.ActionMoveLeft, true
	case 'l', 'd':
		return loop.ActionMoveRight, true
	case 'k', 'w', 'z':
		return loop.ActionRotate, true
	case 'j', 's':
		return loop.ActionSoftDrop, true
	case ' ':
		return loop.ActionHardDrop, true
	case 'r':
		return loop.ActionRestart, true
	case 'q':
		return loop.ActionQuit, true
	}
	return 0, false
}

// controls counts presses of the keys that change the front-end rather than
// the session. The poller writes them; controlSystem applies them on the
// frame goroutine.
type controls struct {
	pause atomic.Int32
	mute  atomic.Int32
}

func (c *controls) press(r rune) {
	switch r {
	case 'p':
		c.pause.Add(1)
	case 'm':
		c.mute.Add(1)
	}
}

type controlSystem struct {
	controls *controls
	gravity  *loop.GravitySystem
	sound    *audio.SoundManager
}

func (s *controlSystem) Execute(frame *loop.Frame) {
	if s.controls.pause.Swap(0)%2 == 1 {
		s.gravity.Paused = !s.gravity.Paused
	}
	if s.controls.mute.Swap(0)%2 == 1 {
		s.sound.SetMuted(!s.sound.Muted())
	}
}
