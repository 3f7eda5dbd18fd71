package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/pentomino/internal/logging"
	"github.com/plus3/pentomino/puzzle"
	"go.uber.org/zap"
)

func main() {
	games := flag.Int("games", 100, "The number of games to play.")
	seed := flag.Uint64("seed", 1, "Seed for the first game; game i uses seed+i.")
	countdown := flag.Int("countdown", puzzle.DefaultCountdown, "Countdown ticks per game.")
	refresh := flag.Duration("refresh", puzzle.DefaultRefreshInterval, "Pool replenishment interval.")
	poolSize := flag.Int("pool", puzzle.DefaultPoolSize, "Pool target size.")
	think := flag.Duration("think", time.Second, "Virtual time the player spends per move.")
	random := flag.Bool("random", false, "Pick a random anchor instead of the first.")
	rotate := flag.Bool("rotate", true, "Try every orientation before giving up on a piece.")
	scenarioName := flag.String("scenario", "", "Scripted opening: \"\" or \"sticks\".")
	debug := flag.Bool("debug", false, "Enable debug logging.")
	logFile := flag.String("log-file", "", "Write logs to this file instead of stderr.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg := puzzle.Config{
		Countdown:       *countdown,
		TickInterval:    puzzle.DefaultTickInterval,
		RefreshInterval: *refresh,
		PoolSize:        *poolSize,
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Bad flags: %v", err)
	}
	scenario, ok := scenarios[*scenarioName]
	if !ok {
		log.Fatalf("Unknown scenario %q", *scenarioName)
	}
	if *think <= 0 {
		log.Fatalf("Think time must be positive, got %s", *think)
	}

	logger, err := logging.New(*debug, *logFile)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	log.Printf("Playing %d games...\n", *games)

	report := NewReport(cfg, *games, *seed, *think)
	report.Strategy = strategyName(*random, *rotate)
	report.Scenario = *scenarioName
	report.GCPauseMetrics = *gcPauseMetrics

	runtime.ReadMemStats(&report.MemStatsStart)
	startTime := time.Now()

	for i := 0; i < *games; i++ {
		result, err := PlayGame(GameOptions{
			Config:   cfg,
			Seed:     *seed + uint64(i),
			Think:    *think,
			Random:   *random,
			Rotate:   *rotate,
			Scenario: scenario,
			Logger:   logger,
		})
		if err != nil {
			log.Fatalf("Game %d failed: %v", i, err)
		}
		logger.Debug("game finished",
			zap.String("game_id", result.GameID),
			zap.Bool("won", result.Outcome.Won),
			zap.Int("placements", result.Placements),
		)
		report.Add(result)
	}

	report.TotalTime = time.Since(startTime)
	report.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Games finished.")

	fmt.Println("\n\n--- Self-Play Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

func strategyName(random, rotate bool) string {
	name := "first-fit"
	if random {
		name = "random-fit"
	}
	if rotate {
		name += "+rotate"
	}
	return name
}
