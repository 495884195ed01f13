package debugui

import (
	"fmt"
	"slices"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
)

// PerformanceStats shows frame timing and per-system scheduler statistics.
type PerformanceStats struct {
	scheduler *loop.Scheduler
	history   *frameHistory
	timer     *FrameTimer
}

func NewPerformanceStats(scheduler *loop.Scheduler, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		scheduler: scheduler,
		history:   newFrameHistory(historyFrames),
		timer:     NewFrameTimer(),
	}
}

func (ps *PerformanceStats) Render() {
	ps.history.push(ps.timer.GetDeltaTime() * 1000.0)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := ps.scheduler.GetStats()

	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Systems: %d", stats.SystemCount))
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", ps.history.average(), ps.history.fps()))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.history.samples[0], int32(len(ps.history.samples)))

	if imgui.TreeNodeStr("System Timings") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Event Counts") {
		for _, line := range eventLines(stats) {
			imgui.BulletText(line)
		}
		imgui.TreePop()
	}

	imgui.End()
}

// eventLines formats the event counters in event kind order.
func eventLines(stats *loop.SchedulerStats) []string {
	kinds := make([]loop.EventKind, 0, len(stats.Events))
	for kind := range stats.Events {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)

	lines := make([]string, len(kinds))
	for i, kind := range kinds {
		lines[i] = fmt.Sprintf("%s: %d", kind, stats.Events[kind])
	}
	return lines
}

// FrameTimer measures wall time between renders.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
