package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Duration   time.Duration
	Sessions   int
	Rows       int
	Cols       int
	Randomizer string
	Seed       uint64

	// Results
	TotalFrames    int64
	TotalTime      time.Duration
	UpdateTime     Stats
	Games          GameStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Stats aggregates frame durations without keeping every sample.
type Stats struct {
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
	count int64
	total time.Duration
}

func (s *Stats) Observe(d time.Duration) {
	if s.count == 0 || d < s.Min {
		s.Min = d
	}
	if d > s.Max {
		s.Max = d
	}
	s.count++
	s.total += d
}

func (s *Stats) Merge(o Stats) {
	if o.count == 0 {
		return
	}
	if s.count == 0 || o.Min < s.Min {
		s.Min = o.Min
	}
	if o.Max > s.Max {
		s.Max = o.Max
	}
	s.count += o.count
	s.total += o.total
}

func (s *Stats) Finalize() {
	if s.count == 0 {
		return
	}
	s.Avg = s.total / time.Duration(s.count)
}

// GameStats sums the play of every session.
type GameStats struct {
	Finished   int
	Pieces     int
	Lines      int
	BestScore  int
	TotalScore int
}

func (g GameStats) AvgScore() float64 {
	if g.Finished == 0 {
		return 0
	}
	return float64(g.TotalScore) / float64(g.Finished)
}

func (g GameStats) LinesPerPiece() float64 {
	if g.Pieces == 0 {
		return 0
	}
	return float64(g.Lines) / float64(g.Pieces)
}

func (r *Report) FramesPerSecond() float64 {
	if r.TotalTime <= 0 {
		return 0
	}
	return float64(r.TotalFrames) / r.TotalTime.Seconds()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Concurrent Sessions:** {{.Sessions}}
- **Board:** {{.Rows}}×{{.Cols}}
- **Randomizer:** {{.Randomizer}} (seed {{.Seed}})

## Performance Results
- **Total Frames:** {{.TotalFrames}}
- **Total Test Time:** {{.TotalTime}}
- **Throughput:** {{printf "%.0f" .FramesPerSecond}} frames/s
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Gameplay
- **Games Finished:** {{.Games.Finished}}
- **Pieces Placed:** {{.Games.Pieces}}
- **Lines Cleared:** {{.Games.Lines}} ({{printf "%.3f" .Games.LinesPerPiece}} per piece)
- **Best Score:** {{.Games.BestScore}}
- **Avg Score:** {{printf "%.1f" .Games.AvgScore}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report: %w", err)
	}

	return tmpl.Execute(w, r)
}
