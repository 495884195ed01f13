package debugui

import (
	"github.com/plus3/blockfall/loop"
)

// Install adds the standard panels for a session to system. Inspector
// buttons push onto commands, which an InputSystem must drain.
func Install(system *ImguiSystem, scheduler *loop.Scheduler, gravity *loop.GravitySystem, commands *loop.Commands) {
	system.Add(NewSessionInspector(scheduler.Engine(), gravity, commands).Render)
	system.Add(NewPerformanceStats(scheduler, 120).Render)
}
