package main

import (
	"context"
	"flag"
	"log"
	"math/rand/v2"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/pentomino/internal/logging"
	"github.com/plus3/pentomino/puzzle"
	"go.uber.org/zap"
)

func main() {
	countdown := flag.Int("countdown", puzzle.DefaultCountdown, "Seconds on the clock.")
	refresh := flag.Duration("refresh", puzzle.DefaultRefreshInterval, "Pool replenishment interval.")
	poolSize := flag.Int("pool", puzzle.DefaultPoolSize, "Number of pieces offered.")
	seed := flag.Uint64("seed", 0, "Random seed; 0 picks one.")
	mute := flag.Bool("mute", false, "Disable audio cues.")
	debug := flag.Bool("debug", false, "Enable debug logging.")
	logFile := flag.String("log-file", "pentomino-tui.log", "Log file.")
	flag.Parse()

	logger, err := logging.New(*debug, *logFile)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	cfg := puzzle.Config{
		Countdown:       *countdown,
		TickInterval:    puzzle.DefaultTickInterval,
		RefreshInterval: *refresh,
		PoolSize:        *poolSize,
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Bad flags: %v", err)
	}
	if *seed == 0 {
		*seed = rand.Uint64()
	}

	cues, err := NewCues(*mute)
	if err != nil {
		// the game runs without sound
		logger.Warn("audio initialization failed", zap.Error(err))
	}
	defer cues.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	engine, err := puzzle.NewEngine(cfg,
		puzzle.WithClock(puzzle.NewScheduler(ctx)),
		puzzle.WithRand(rand.New(rand.NewPCG(*seed, *seed>>1))),
		puzzle.WithListener(NewListener(screen, cues)),
		puzzle.WithLogger(logger),
	)
	if err != nil {
		screen.Fini()
		log.Fatalf("Bad config: %v", err)
	}
	defer engine.Stop()

	logger.Info("starting", zap.Uint64("seed", *seed))
	NewApp(screen, engine, cues, logger).Run()
}
