package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Pieces   int
	Duration time.Duration
	Seed     uint64
	Shapes   string
	Colors   string

	// Results
	TotalPieces   uint64
	TotalTime     time.Duration
	AdvanceTime   Stats
	Shape         Fairness
	Color         Fairness
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

// Fairness summarizes one attribute's bag.
type Fairness struct {
	CatalogueSize int
	Cycles        int
	Refills       float64
	ChiSquare     []float64
	MaxChiSquare  float64
	MaxGap        int
	GapBound      int
	Repeats       bool
}

func (f *Fairness) Finalize() {
	f.GapBound = 2*f.CatalogueSize - 1
	f.MaxChiSquare = 0
	for _, v := range f.ChiSquare {
		if v > f.MaxChiSquare {
			f.MaxChiSquare = v
		}
	}
}

// Fair reports whether the bag guarantees held during the run.
func (f Fairness) Fair() bool {
	return !f.Repeats && f.MaxGap <= f.GapBound
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
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Bag Stress Report

## Configuration
- **Pieces:** {{if .Pieces}}{{.Pieces}}{{else}}until {{.Duration}}{{end}}
- **Seed:** {{.Seed}}
- **Shapes:** {{.Shapes}}
- **Colors:** {{.Colors}}

## Throughput
- **Pieces Spawned:** {{.TotalPieces}}
- **Total Time:** {{.TotalTime}}
- **Advance Time:**
  - **Avg:** {{.AdvanceTime.Avg}}
  - **Min:** {{.AdvanceTime.Min}}
  - **Max:** {{.AdvanceTime.Max}}
{{with .Shape}}
## Shape Bag
- Catalogue size: {{.CatalogueSize}}
- Full cycles observed: {{.Cycles}}
- Refills: {{.Refills}}
- Repeats within a cycle: {{.Repeats}}
- Max gap between repeats: {{.MaxGap}} (bound {{.GapBound}})
- Position chi-square (df {{dec .CatalogueSize}}): {{floats .ChiSquare}}
- Max chi-square: {{printf "%.2f" .MaxChiSquare}}
- Fair: {{.Fair}}
{{end}}{{with .Color}}
## Color Bag
- Catalogue size: {{.CatalogueSize}}
- Full cycles observed: {{.Cycles}}
- Refills: {{.Refills}}
- Repeats within a cycle: {{.Repeats}}
- Max gap between repeats: {{.MaxGap}} (bound {{.GapBound}})
- Position chi-square (df {{dec .CatalogueSize}}): {{floats .ChiSquare}}
- Max chi-square: {{printf "%.2f" .MaxChiSquare}}
- Fair: {{.Fair}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"dec": func(n int) int {
			return n - 1
		},
		"floats": func(vs []float64) string {
			parts := make([]string, len(vs))
			for i, v := range vs {
				parts[i] = fmt.Sprintf("%.2f", v)
			}
			return strings.Join(parts, " ")
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
