package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/loop"
)

// repeater fires once when a key goes down and then, while it is held,
// once per frame after Delay and every Rate seconds from then on.
type repeater struct {
	Delay float64
	Rate  float64

	held float64
}

func (r *repeater) step(pressed, down bool, dt float64) bool {
	switch {
	case pressed:
		r.held = 0
		return true
	case down:
		r.held += dt
		if r.held > r.Delay {
			r.held -= r.Rate
			return true
		}
		return false
	default:
		r.held = 0
		return false
	}
}

type toggle int

const (
	toggleMute toggle = iota
	togglePause
)

type keyboard struct {
	left  repeater
	right repeater
	down  repeater

	actions []loop.Action
}

func newKeyboard() *keyboard {
	return &keyboard{
		left:  repeater{Delay: 0.17, Rate: 0.05},
		right: repeater{Delay: 0.17, Rate: 0.05},
		down:  repeater{Delay: 0.05, Rate: 0.05},
	}
}

// poll returns the actions for this frame's key state.
func (k *keyboard) poll(dt float64) []loop.Action {
	k.actions = k.actions[:0]

	held := func(r *repeater, keys ...ebiten.Key) bool {
		pressed, down := false, false
		for _, key := range keys {
			pressed = pressed || inpututil.IsKeyJustPressed(key)
			down = down || ebiten.IsKeyPressed(key)
		}
		return r.step(pressed, down, dt)
	}
	once := func(keys ...ebiten.Key) bool {
		for _, key := range keys {
			if inpututil.IsKeyJustPressed(key) {
				return true
			}
		}
		return false
	}

	if once(ebiten.KeyQ, ebiten.KeyEscape) {
		k.actions = append(k.actions, loop.ActionQuit)
	}
	if once(ebiten.KeyR) {
		k.actions = append(k.actions, loop.ActionRestart)
	}
	if held(&k.left, ebiten.KeyArrowLeft, ebiten.KeyA) {
		k.actions = append(k.actions, loop.ActionMoveLeft)
	}
	if held(&k.right, ebiten.KeyArrowRight, ebiten.KeyD) {
		k.actions = append(k.actions, loop.ActionMoveRight)
	}
	if once(ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyZ) {
		k.actions = append(k.actions, loop.ActionRotate)
	}
	if held(&k.down, ebiten.KeyArrowDown, ebiten.KeyS) {
		k.actions = append(k.actions, loop.ActionSoftDrop)
	}
	if once(ebiten.KeySpace) {
		k.actions = append(k.actions, loop.ActionHardDrop)
	}

	return k.actions
}

func (k *keyboard) toggles() []toggle {
	var out []toggle
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		out = append(out, toggleMute)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		out = append(out, togglePause)
	}
	return out
}
