// Package debugui provides Dear ImGui inspector panels for a running session.
// Panels are plain render functions collected by an ImguiSystem, which queues
// them on the frame so they draw after every other system has run.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// InputState tracks whether Dear ImGui wants the mouse or keyboard this
// frame. Front-ends check it before treating a key press as game input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers the render function of every item and refreshes the
// input capture state.
type ImguiSystem struct {
	Items      []*ImguiItem
	InputState InputState
}

// Add registers a render function and returns its item.
func (i *ImguiSystem) Add(render func()) *ImguiItem {
	item := &ImguiItem{Render: render}
	i.Items = append(i.Items, item)
	return item
}

// Execute updates input state and queues all ImGui render functions.
func (i *ImguiSystem) Execute(frame *loop.Frame) {
	io := imgui.CurrentIO()
	i.InputState.WantCaptureMouse = io.WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range i.Items {
		if item.Render != nil {
			frame.Defer(item.Render)
		}
	}
}
