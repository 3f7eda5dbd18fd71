package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/plus3/pentomino/puzzle"
	"go.uber.org/zap"
)

// Player makes moves for a self-play game.
type Player struct {
	engine *puzzle.Engine
	rng    *rand.Rand
	random bool
	rotate bool
}

// Move places the first offered piece that fits anywhere, trying each
// orientation in turn when rotation is enabled. It reports whether a
// piece was placed.
func (p *Player) Move() bool {
	for _, view := range p.engine.Pool() {
		for turn := 0; turn < 4; turn++ {
			anchors := p.engine.Placements(view.ID)
			if len(anchors) > 0 {
				anchor := anchors[0]
				if p.random {
					anchor = anchors[p.rng.IntN(len(anchors))]
				}
				return p.engine.AttemptPlace(view.ID, anchor.Row, anchor.Col)
			}
			if !p.rotate {
				break
			}
			p.engine.RotatePiece(view.ID, true)
		}
	}
	return false
}

// Scenario prepares a freshly started game before the player takes over.
type Scenario func(engine *puzzle.Engine) error

var scenarios = map[string]Scenario{
	"":       nil,
	"sticks": sticksScenario,
}

// sticksScenario fills the board with twenty I pieces, two per row. All
// sticks are offered up front so the pool always holds one that fits.
func sticksScenario(engine *puzzle.Engine) error {
	ids := make([]int, 0, 2*puzzle.BoardSize)
	for range 2 * puzzle.BoardSize {
		id, ok := engine.OfferPiece(puzzle.KindI)
		if !ok {
			return fmt.Errorf("offer rejected in state %s", engine.State())
		}
		ids = append(ids, id)
	}

	for i, id := range ids {
		r, c := i/2, (i%2)*5
		if !engine.AttemptPlace(id, r, c) {
			return fmt.Errorf("stick %d rejected at (%d,%d)", id, r, c)
		}
	}
	return nil
}

// GameOptions controls one self-play game.
type GameOptions struct {
	Config   puzzle.Config
	Seed     uint64
	Think    time.Duration
	Random   bool
	Rotate   bool
	Scenario Scenario
	Logger   *zap.Logger
}

// GameResult summarizes a finished game.
type GameResult struct {
	GameID      string
	Outcome     puzzle.Outcome
	Placements  int
	Remaining   int
	VirtualTime time.Duration
	PoolChanges int
	MoveTimes   []time.Duration
}

// PlayGame runs one game to completion on a virtual clock.
func PlayGame(opts GameOptions) (GameResult, error) {
	clock := puzzle.NewManualClock()
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed*31+7))

	var result GameResult
	endings := 0
	listener := puzzle.ListenerFuncs{
		PoolChanged: func() { result.PoolChanges++ },
		GameEnded: func(won bool, message string) {
			endings++
			result.Outcome = puzzle.Outcome{Won: won, Message: message}
		},
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	engine, err := puzzle.NewEngine(opts.Config,
		puzzle.WithClock(clock),
		puzzle.WithRand(rng),
		puzzle.WithListener(listener),
		puzzle.WithLogger(logger),
	)
	if err != nil {
		return GameResult{}, err
	}
	engine.StartGame()
	defer engine.Stop()
	result.GameID = engine.GameID()

	if opts.Scenario != nil {
		if err := opts.Scenario(engine); err != nil {
			return GameResult{}, fmt.Errorf("scenario: %w", err)
		}
	}

	player := &Player{engine: engine, rng: rng, random: opts.Random, rotate: opts.Rotate}
	for engine.State() == puzzle.StateRunning {
		start := time.Now()
		if player.Move() {
			result.MoveTimes = append(result.MoveTimes, time.Since(start))
		}
		if engine.State() == puzzle.StateRunning {
			clock.Advance(opts.Think)
		}
	}

	if endings != 1 {
		return GameResult{}, fmt.Errorf("game %s ended %d times", result.GameID, endings)
	}

	snap := engine.Snapshot()
	result.Placements = snap.Placements
	result.Remaining = snap.Remaining
	result.VirtualTime = clock.Now()
	return result, nil
}
