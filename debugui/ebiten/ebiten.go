// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and its window. The imgui.ini file is
// disabled so panel layout does not persist between runs.
func NewImguiBackend(title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &ImguiBackend{EbitenBackend: backend}
}

// Once runs one scheduler frame inside an ImGui frame, so panels deferred by
// debugui.ImguiSystem are drawn before the frame ends.
func (b *ImguiBackend) Once(scheduler *loop.Scheduler, dt float64) bool {
	b.BeginFrame()
	defer b.EndFrame()

	return scheduler.Once(dt)
}
