package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/engine"
)

var palette = map[engine.Color][3]float32{
	engine.None:   {0.08, 0.08, 0.10},
	engine.Cyan:   {0.00, 0.90, 0.95},
	engine.Blue:   {0.15, 0.35, 0.95},
	engine.Orange: {0.98, 0.60, 0.10},
	engine.Yellow: {0.98, 0.90, 0.15},
	engine.Green:  {0.20, 0.85, 0.30},
	engine.Purple: {0.65, 0.25, 0.90},
	engine.Red:    {0.95, 0.20, 0.20},
	engine.Gray:   {0.55, 0.55, 0.55},
}

// CellColor maps a cell color to an ImGui color with the given alpha.
func CellColor(c engine.Color, alpha float32) imgui.Vec4 {
	rgb, ok := palette[c]
	if !ok {
		rgb = palette[engine.Gray]
	}
	return imgui.NewVec4(rgb[0], rgb[1], rgb[2], alpha)
}
