package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/loop"
)

const frameTime = 1.0 / 60.0

// Game implements ebiten.Game for one session.
type Game struct {
	scheduler *loop.Scheduler
	commands  *loop.Commands
	gravity   *loop.GravitySystem
	sound     *audio.SoundManager
	keys      *keyboard
	layout    layout

	// Set only with the debug UI.
	imgui *debugui_ebiten.ImguiBackend
	ui    *debugui.ImguiSystem
}

func (g *Game) Update() error {
	if g.ui == nil || !g.ui.InputState.WantCaptureKeyboard {
		g.pollInput()
	}

	var running bool
	if g.imgui != nil {
		running = g.imgui.Once(g.scheduler, frameTime)
	} else {
		running = g.scheduler.Once(frameTime)
	}

	if !running {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) pollInput() {
	for _, action := range g.keys.poll(frameTime) {
		g.commands.Push(action)
	}

	for _, toggle := range g.keys.toggles() {
		switch toggle {
		case toggleMute:
			g.sound.SetMuted(!g.sound.Muted())
		case togglePause:
			g.gravity.Paused = !g.gravity.Paused
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawSession(screen, g.layout, g.scheduler.Engine().State(), g.gravity.Paused)

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
