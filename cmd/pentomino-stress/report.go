package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/pentomino/puzzle"
)

type Report struct {
	// Configuration
	Games           int
	Seed            uint64
	Countdown       int
	RefreshInterval time.Duration
	PoolSize        int
	Think           time.Duration
	Strategy        string
	Scenario        string

	// Results
	Wins           int
	Losses         int
	Endings        map[string]int
	Placements     IntStats
	GameLength     Stats
	MoveTime       Stats
	Fastest        GameResult
	TotalTime      time.Duration
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

func NewReport(cfg puzzle.Config, games int, seed uint64, think time.Duration) *Report {
	return &Report{
		Games:           games,
		Seed:            seed,
		Countdown:       cfg.Countdown,
		RefreshInterval: cfg.RefreshInterval,
		PoolSize:        cfg.PoolSize,
		Think:           think,
		Endings:         make(map[string]int),
	}
}

// Add folds one game into the totals.
func (r *Report) Add(result GameResult) {
	if result.Outcome.Won {
		r.Wins++
		if r.Fastest.GameID == "" || result.VirtualTime < r.Fastest.VirtualTime {
			r.Fastest = result
		}
	} else {
		r.Losses++
	}
	r.Endings[result.Outcome.Message]++
	r.Placements.Samples = append(r.Placements.Samples, result.Placements)
	r.GameLength.Samples = append(r.GameLength.Samples, result.VirtualTime)
	r.MoveTime.Samples = append(r.MoveTime.Samples, result.MoveTimes...)
}

func (r *Report) Finalize() {
	r.Placements.Finalize()
	r.GameLength.Finalize()
	r.MoveTime.Finalize()
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

type IntStats struct {
	Min     int
	Max     int
	Avg     float64
	Samples []int
}

func (s *IntStats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	total := 0
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = float64(total) / float64(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Pentomino Self-Play Report

## Configuration
- **Games:** {{.Games}} (seeds {{.Seed}}..{{lastSeed .Seed .Games}})
- **Countdown:** {{.Countdown}} ticks
- **Refresh Interval:** {{.RefreshInterval}}
- **Pool Size:** {{.PoolSize}}
- **Think Time:** {{.Think}}
- **Strategy:** {{.Strategy}}{{if .Scenario}}
- **Scenario:** {{.Scenario}}{{end}}

## Outcomes
- **Won:** {{.Wins}} ({{pct .Wins .Games}})
- **Lost:** {{.Losses}} ({{pct .Losses .Games}})
{{range $message, $count := .Endings}}  - {{$message}} {{$count}}
{{end}}{{if .Fastest.GameID}}- **Fastest Win:** {{.Fastest.GameID}} in {{.Fastest.VirtualTime}}
{{end}}
## Play
- **Placements per Game:** avg {{printf "%.1f" .Placements.Avg}}, min {{.Placements.Min}}, max {{.Placements.Max}}
- **Virtual Game Length:** avg {{.GameLength.Avg}}, min {{.GameLength.Min}}, max {{.GameLength.Max}}
- **Move Time (wall):**
  - **Avg:** {{.MoveTime.Avg}}
  - **Min:** {{.MoveTime.Min}}
  - **Max:** {{.MoveTime.Max}}
- **Total Run Time:** {{.TotalTime}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

	fm := template.FuncMap{
		"lastSeed": func(first uint64, games int) uint64 {
			return first + uint64(games) - 1
		},
		"pct": func(part, whole int) string {
			if whole == 0 {
				return "n/a"
			}
			return fmt.Sprintf("%.1f%%", 100*float64(part)/float64(whole))
		},
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
		return err
	}

	return tmpl.Execute(w, r)
}
