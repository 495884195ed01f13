package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
)

const inspectorCell = 12

// SessionInspector shows the live board, the falling piece and the score,
// and offers controls to pause gravity or step the session by hand. Steps
// are queued on commands so the next frame reports their events.
type SessionInspector struct {
	engine   *engine.Engine
	gravity  *loop.GravitySystem
	commands *loop.Commands
}

func NewSessionInspector(e *engine.Engine, gravity *loop.GravitySystem, commands *loop.Commands) *SessionInspector {
	return &SessionInspector{engine: e, gravity: gravity, commands: commands}
}

func (si *SessionInspector) request(a loop.Action) {
	if si.commands != nil {
		si.commands.Push(a)
	}
}

func (si *SessionInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 520), imgui.CondOnce)
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	st := si.engine.State()

	imgui.Text(fmt.Sprintf("Score: %d", st.Score))
	imgui.Text(fmt.Sprintf("Lines: %d | Pieces: %d", st.Lines, st.Pieces))
	if st.GameOver {
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "GAME OVER")
	} else if st.Piece != nil {
		imgui.Text(fmt.Sprintf("Piece: %s at (%d, %d), ghost %d", st.Piece.Kind, st.Piece.X, st.Piece.Y, st.Ghost))
	}

	imgui.Separator()
	si.renderControls()

	imgui.Separator()
	si.renderBoard(st)

	imgui.End()
}

func (si *SessionInspector) renderControls() {
	if si.gravity != nil {
		if si.gravity.Paused {
			imgui.PushStyleColorVec4(imgui.ColButton, imgui.NewVec4(0.2, 0.7, 0.2, 1.0))
			if imgui.Button("Resume") {
				si.gravity.Paused = false
			}
			imgui.PopStyleColor()
			imgui.SameLine()
			imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "PAUSED")
		} else {
			imgui.PushStyleColorVec4(imgui.ColButton, imgui.NewVec4(0.7, 0.2, 0.2, 1.0))
			if imgui.Button("Pause") {
				si.gravity.Paused = true
			}
			imgui.PopStyleColor()
			imgui.SameLine()
			imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "RUNNING")
		}

		pending := float32(0)
		if si.gravity.Period > 0 {
			pending = float32(si.gravity.Pending().Seconds() / si.gravity.Period.Seconds())
		}
		imgui.ProgressBarV(pending, imgui.NewVec2(-1, 0), "next tick")
	}

	if si.commands == nil {
		return
	}
	if imgui.Button("Tick") {
		si.request(loop.ActionSoftDrop)
	}
	imgui.SameLine()
	if imgui.Button("Hard Drop") {
		si.request(loop.ActionHardDrop)
	}
	imgui.SameLine()
	if imgui.Button("Reset") {
		si.request(loop.ActionRestart)
	}
}

func (si *SessionInspector) renderBoard(st engine.State) {
	rows, cols := st.Board.Rows(), st.Board.Cols()
	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()

	cell := func(col, row int, c imgui.Vec4) {
		x := origin.X + float32(col*inspectorCell)
		y := origin.Y + float32(row*inspectorCell)
		drawList.AddRectFilled(imgui.NewVec2(x, y), imgui.NewVec2(x+inspectorCell-1, y+inspectorCell-1), imgui.ColorU32Vec4(c))
	}

	for row := range rows {
		for col := range cols {
			cell(col, row, CellColor(st.Board.At(col, row), 1))
		}
	}

	if p := st.Piece; p != nil {
		for col, row := range p.Cells() {
			if row+st.Ghost >= 0 {
				cell(col, row+st.Ghost, CellColor(p.Color, 0.3))
			}
		}
		for col, row := range p.Cells() {
			if row >= 0 {
				cell(col, row, CellColor(p.Color, 1))
			}
		}
	}

	imgui.Dummy(imgui.NewVec2(float32(cols*inspectorCell), float32(rows*inspectorCell)))
}
