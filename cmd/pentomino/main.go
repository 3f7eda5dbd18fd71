package main

import (
	"context"
	"flag"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/pentomino/internal/logging"
	"github.com/plus3/pentomino/puzzle"
	"github.com/plus3/pentomino/puzzle/debugui"
	debugui_ebiten "github.com/plus3/pentomino/puzzle/debugui/ebiten"
	"go.uber.org/zap"
)

func main() {
	countdown := flag.Int("countdown", puzzle.DefaultCountdown, "Seconds on the clock.")
	refresh := flag.Duration("refresh", puzzle.DefaultRefreshInterval, "Pool replenishment interval.")
	poolSize := flag.Int("pool", puzzle.DefaultPoolSize, "Number of pieces offered.")
	seed := flag.Uint64("seed", 0, "Random seed; 0 picks one.")
	debug := flag.Bool("debug", false, "Enable debug logging.")
	logFile := flag.String("log-file", "pentomino.log", "Log file.")
	withDebugUI := flag.Bool("debugui", false, "Enable the Dear ImGui inspector (toggle with F1).")
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

	if *seed == 0 {
		*seed = rand.Uint64()
	}
	logger.Info("starting", zap.Uint64("seed", *seed))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	scheduler := puzzle.NewScheduler(ctx)

	events := &uiEvents{}
	engine, err := puzzle.NewEngine(cfg,
		puzzle.WithClock(scheduler),
		puzzle.WithRand(rand.New(rand.NewPCG(*seed, *seed>>1))),
		puzzle.WithListener(events),
		puzzle.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("Bad flags: %v", err)
	}
	defer engine.Stop()

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Pentomino Puzzle Game")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	game := &Game{
		engine: engine,
		events: events,
		logger: logger,
	}

	if *withDebugUI {
		game.backend = debugui_ebiten.NewImguiBackend("Pentomino Puzzle Game", ScreenWidth, ScreenHeight)
		game.overlay = debugui.NewOverlay(
			debugui.NewEnginePanel(engine, cfg.Countdown),
			debugui.NewSchedulerPanel(scheduler, 120),
		)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game exited: %v", err)
	}
}
