package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pentomino/puzzle"
)

// SchedulerPanel shows frame timing and per-job statistics for the
// real-time scheduler driving the engine.
type SchedulerPanel struct {
	scheduler *puzzle.Scheduler
	frames    *history
	timer     *FrameTimer
}

func NewSchedulerPanel(scheduler *puzzle.Scheduler, historyFrames int) *SchedulerPanel {
	return &SchedulerPanel{
		scheduler: scheduler,
		frames:    newHistory(historyFrames),
		timer:     NewFrameTimer(),
	}
}

func (sp *SchedulerPanel) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(360, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 300), imgui.CondOnce)

	sp.frames.push(sp.timer.GetDeltaTime() * 1000.0)

	if !imgui.BeginV("Scheduler", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := sp.scheduler.GetStats()

	imgui.Text(fmt.Sprintf("Jobs: %d (%d active)", stats.JobCount, stats.ActiveJobs))
	imgui.Text(fmt.Sprintf("Executions: %d", stats.TotalExecutions))

	avg := sp.frames.average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	samples := sp.frames.oldestFirst()
	if len(samples) > 0 {
		imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))
	}

	if imgui.TreeNodeStr("Job Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("JobStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Job")
			imgui.TableSetupColumn("Interval")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, job := range stats.Jobs {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				if job.Active {
					imgui.Text(job.Name)
				} else {
					imgui.TextColored(imgui.NewVec4(0.5, 0.5, 0.5, 1.0), job.Name)
				}
				imgui.TableNextColumn()
				imgui.Text(job.Interval.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", job.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(job.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(job.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.Button("Prune Stopped") {
		sp.scheduler.Prune()
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

// GetDeltaTime returns the seconds since the previous call.
func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
