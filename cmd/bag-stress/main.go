package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/plus3/piecebag/bag"
	"github.com/plus3/piecebag/internal/config"
	"github.com/plus3/piecebag/internal/observability"
	"github.com/plus3/piecebag/metrics"
	"github.com/plus3/piecebag/stats"
)

func main() {
	configPath := flag.String("config", os.Getenv("PIECEBAG_CONFIG"), "Optional YAML config file.")
	pieces := flag.Int("pieces", 0, "Number of pieces to spawn (overrides config).")
	duration := flag.Duration("duration", 0, "Run for this long instead of a fixed piece count (overrides config).")
	seed := flag.Uint64("seed", 0, "Randomizer seed (overrides config); 0 picks one.")
	logLevel := flag.String("log-level", "", "debug, info, warn or error (overrides config).")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if *pieces > 0 {
		cfg.Pieces = *pieces
		cfg.Duration = 0
	}
	if *duration > 0 {
		cfg.Duration = *duration
		cfg.Pieces = 0
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	level, err := observability.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := observability.NewLogger(os.Stderr, "bag-stress", level)

	if err := run(context.Background(), cfg, logger, os.Stdout); err != nil {
		logger.Error("stress test failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger, out io.Writer) error {
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	randomizer, err := bag.NewRandomizer(cfg.Shapes, cfg.Colors,
		bag.WithSeed(cfg.Seed),
		bag.WithObserver(collector),
	)
	if err != nil {
		return fmt.Errorf("build randomizer: %w", err)
	}

	report := &Report{
		Pieces:   cfg.Pieces,
		Duration: cfg.Duration,
		Seed:     cfg.Seed,
		Shapes:   joinValues(cfg.Shapes),
		Colors:   joinValues(cfg.Colors),
	}

	if cfg.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Duration)
		defer cancel()
	}

	shapeIdx := stats.NewIndexer(cfg.Shapes)
	colorIdx := stats.NewIndexer(cfg.Colors)
	shapeTable := stats.NewPositionTable(len(cfg.Shapes))
	colorTable := stats.NewPositionTable(len(cfg.Colors))
	var shapeSeq, colorSeq []int
	if cfg.Pieces > 0 {
		shapeSeq = make([]int, 0, cfg.Pieces)
		colorSeq = make([]int, 0, cfg.Pieces)
		report.AdvanceTime.Samples = make([]time.Duration, 0, cfg.Pieces)
	}

	logger.Info("starting bag stress test",
		"pieces", cfg.Pieces,
		"duration", cfg.Duration,
		"seed", cfg.Seed,
		"shapes", len(cfg.Shapes),
		"colors", len(cfg.Colors),
	)

	runtime.ReadMemStats(&report.MemStatsStart)
	startTime := time.Now()

Loop:
	for cfg.Pieces == 0 || len(shapeSeq) < cfg.Pieces {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}

		advanceStart := time.Now()
		p := randomizer.Advance()
		report.AdvanceTime.Samples = append(report.AdvanceTime.Samples, time.Since(advanceStart))

		shapeSeq = append(shapeSeq, shapeIdx.Index(p.Shape))
		colorSeq = append(colorSeq, colorIdx.Index(p.Color))

		if err := recordCycle(shapeTable, shapeSeq); err != nil {
			return fmt.Errorf("record shape cycle: %w", err)
		}
		if err := recordCycle(colorTable, colorSeq); err != nil {
			return fmt.Errorf("record color cycle: %w", err)
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalPieces = randomizer.Draws()
	report.AdvanceTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	refills, err := gatherRefills(registry)
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	report.Shape = fairness(shapeTable, shapeSeq, refills[string(bag.AttributeShape)])
	report.Color = fairness(colorTable, colorSeq, refills[string(bag.AttributeColor)])

	logger.Info("bag stress test finished",
		"pieces", report.TotalPieces,
		"elapsed", report.TotalTime,
		"shape_fair", report.Shape.Fair(),
		"color_fair", report.Color.Fair(),
	)

	return report.Generate(out)
}

// recordCycle adds the trailing cycle of seq once it is complete. The first
// Advance always opens a fresh cycle, so cycles align on multiples of the size.
func recordCycle(table *stats.PositionTable, seq []int) error {
	n := table.Size()
	if len(seq)%n != 0 {
		return nil
	}
	return table.Record(seq[len(seq)-n:])
}

func fairness(table *stats.PositionTable, seq []int, refills float64) Fairness {
	f := Fairness{
		CatalogueSize: table.Size(),
		Cycles:        table.Cycles(),
		Refills:       refills,
		ChiSquare:     table.ChiSquare(),
		MaxGap:        stats.MaxGap(seq),
		Repeats:       stats.RepeatsInCycle(seq, table.Size()),
	}
	f.Finalize()
	return f
}

func gatherRefills(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64)
	for _, mf := range families {
		if mf.GetName() != "piecebag_refills_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, label := range m.GetLabel() {
				if label.GetName() == "attribute" {
					out[label.GetValue()] += m.GetCounter().GetValue()
				}
			}
		}
	}
	return out, nil
}

func joinValues[T fmt.Stringer](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ")
}
