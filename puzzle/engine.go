package puzzle

import (
	"context"
	"fmt"
	"image/color"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// State is the engine lifecycle stage.
type State int

const (
	StateNotStarted State = iota
	StateRunning
	StateWon
	StateLost
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateRunning:
		return "running"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether the game has ended.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}

// Messages reported with OnGameEnded.
const (
	MessageGridComplete = "Grid Complete!"
	MessageNoMoreMoves  = "No More Moves!"
	MessageTimeExpired  = "Time Expired!"
)

// Outcome describes how a game ended. It is the zero value while running.
type Outcome struct {
	Won     bool
	Message string
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the clock that drives the countdown and replenishment.
func WithClock(clock Clock) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithRand sets the random source for piece kinds and colors.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithListener sets the receiver of engine notifications.
func WithListener(l Listener) Option {
	return func(e *Engine) { e.listener = l }
}

// WithLogger sets the engine logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// Engine owns one board and one pool and runs the game state machine:
// NotStarted → Running → Won | Lost, with restart back to Running.
// Placement, ticks and replenishment are serialized by a single mutex.
type Engine struct {
	mu       sync.Mutex
	cfg      Config
	clock    Clock
	rng      *rand.Rand
	listener Listener
	logger   *zap.Logger

	board *Board
	pool  *Pool

	state      State
	outcome    Outcome
	remaining  int
	placements int
	gameID     uuid.UUID

	// generation invalidates callbacks from a previous game that were
	// already in flight when their job was stopped
	generation uint64
	countdown  Job
}

// NewEngine creates an engine in StateNotStarted. Without WithClock the
// engine runs on a real-time Scheduler.
func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:   cfg,
		board: NewBoard(),
		state: StateNotStarted,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.clock == nil {
		e.clock = NewScheduler(context.Background())
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if e.listener == nil {
		e.listener = NopListener{}
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	e.pool = NewPool(e.rng)

	return e, nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// StartGame resets the board and pool, seeds the pool, restarts both
// clocks and the countdown. Valid from any state.
func (e *Engine) StartGame() {
	cmds := newCommands()

	e.mu.Lock()
	e.startLocked(cmds)
	e.mu.Unlock()

	cmds.Flush()
}

// RestartGame is StartGame.
func (e *Engine) RestartGame() {
	e.StartGame()
}

func (e *Engine) startLocked(cmds *Commands) {
	e.stopClocksLocked()
	if scheduler, ok := e.clock.(*Scheduler); ok {
		scheduler.Prune()
	}
	e.generation++
	gen := e.generation

	e.board.Reset()
	e.pool.Reset()
	e.state = StateRunning
	e.outcome = Outcome{}
	e.remaining = e.cfg.Countdown
	e.placements = 0
	e.gameID = uuid.New()

	// seed now rather than waiting a full refresh interval
	e.pool.Refresh(e.cfg.PoolSize)

	e.pool.StartRefresh(e.clock, e.cfg.RefreshInterval, func() { e.refreshTick(gen) })
	e.countdown = e.clock.Every("countdown", e.cfg.TickInterval, func() { e.tick(gen) })

	e.logger.Info("game started",
		zap.String("game_id", e.gameID.String()),
		zap.Int("countdown", e.cfg.Countdown),
		zap.Duration("refresh_interval", e.cfg.RefreshInterval),
		zap.Int("pool_size", e.cfg.PoolSize),
	)

	remaining := e.remaining
	cmds.Defer(e.listener.OnGameRestarted)
	cmds.Defer(e.listener.OnBoardChanged)
	cmds.Defer(e.listener.OnPoolChanged)
	cmds.Defer(func() { e.listener.OnTimeUpdated(remaining) })
}

// AttemptPlace places the offered piece with the given id so that its
// shape's top-left corner lands on (row, col). It returns false, changing
// nothing, when the game is not running, the piece is not offered, or the
// placement is out of bounds or overlapping.
func (e *Engine) AttemptPlace(pieceID, row, col int) bool {
	cmds := newCommands()

	e.mu.Lock()
	ok := e.placeLocked(cmds, pieceID, row, col)
	e.mu.Unlock()

	cmds.Flush()
	return ok
}

func (e *Engine) placeLocked(cmds *Commands, pieceID, row, col int) bool {
	if e.state != StateRunning {
		return false
	}

	piece, ok := e.pool.Find(pieceID)
	if !ok {
		e.logger.Debug("placement rejected: piece not offered",
			zap.String("game_id", e.gameID.String()),
			zap.Int("piece_id", pieceID),
		)
		return false
	}

	if !e.board.IsPlacementValid(piece, row, col) {
		e.logger.Debug("placement rejected",
			zap.String("game_id", e.gameID.String()),
			zap.Int("piece_id", pieceID),
			zap.Stringer("kind", piece.Kind()),
			zap.Int("row", row),
			zap.Int("col", col),
		)
		return false
	}

	e.board.Place(piece, row, col)
	e.pool.RemovePiece(piece)
	e.pool.GenerateRandomPiece()
	e.placements++

	e.logger.Debug("piece placed",
		zap.String("game_id", e.gameID.String()),
		zap.Int("piece_id", pieceID),
		zap.Stringer("kind", piece.Kind()),
		zap.Int("row", row),
		zap.Int("col", col),
	)

	cmds.Defer(e.listener.OnBoardChanged)
	cmds.Defer(e.listener.OnPoolChanged)

	if e.board.IsFull() {
		e.endLocked(cmds, true, MessageGridComplete)
	} else if !e.board.HasValidMove(e.pool.Pieces()) {
		e.endLocked(cmds, false, MessageNoMoreMoves)
	}
	return true
}

// RotatePiece turns an offered piece a quarter turn. It returns false when
// the game is not running or the piece is not offered.
func (e *Engine) RotatePiece(pieceID int, clockwise bool) bool {
	cmds := newCommands()

	e.mu.Lock()
	ok := e.rotateLocked(cmds, pieceID, clockwise)
	e.mu.Unlock()

	cmds.Flush()
	return ok
}

func (e *Engine) rotateLocked(cmds *Commands, pieceID int, clockwise bool) bool {
	if e.state != StateRunning {
		return false
	}
	piece, ok := e.pool.Find(pieceID)
	if !ok {
		return false
	}
	if clockwise {
		piece.RotateClockwise()
	} else {
		piece.RotateCounterClockwise()
	}
	cmds.Defer(e.listener.OnPoolChanged)
	return true
}

// OfferPiece appends a piece of a chosen kind to the running game's pool
// and returns its id. The pool stays above its target size until the next
// refresh. Used for scripted scenarios.
func (e *Engine) OfferPiece(kind Kind) (int, bool) {
	if !kind.Valid() {
		return 0, false
	}
	cmds := newCommands()

	e.mu.Lock()
	if e.state != StateRunning {
		e.mu.Unlock()
		return 0, false
	}
	piece := e.pool.GenerateSpecificPiece(kind)
	cmds.Defer(e.listener.OnPoolChanged)
	e.mu.Unlock()

	cmds.Flush()
	return piece.ID(), true
}

func (e *Engine) tick(gen uint64) {
	cmds := newCommands()

	e.mu.Lock()
	e.tickLocked(cmds, gen)
	e.mu.Unlock()

	cmds.Flush()
}

func (e *Engine) tickLocked(cmds *Commands, gen uint64) {
	if gen != e.generation {
		return
	}
	if e.state != StateRunning {
		e.stopCountdownLocked()
		return
	}

	e.remaining--
	remaining := e.remaining
	cmds.Defer(func() { e.listener.OnTimeUpdated(remaining) })

	// time expiry is checked first and wins a same-tick tie
	if e.remaining <= 0 {
		e.endLocked(cmds, false, MessageTimeExpired)
		return
	}
	if !e.board.IsFull() && !e.board.HasValidMove(e.pool.Pieces()) {
		e.endLocked(cmds, false, MessageNoMoreMoves)
	}
}

func (e *Engine) refreshTick(gen uint64) {
	cmds := newCommands()

	e.mu.Lock()
	if gen == e.generation && e.state == StateRunning {
		e.pool.Refresh(e.cfg.PoolSize)
		cmds.Defer(e.listener.OnPoolChanged)
	}
	e.mu.Unlock()

	cmds.Flush()
}

func (e *Engine) endLocked(cmds *Commands, won bool, message string) {
	if won {
		e.state = StateWon
	} else {
		e.state = StateLost
	}
	e.outcome = Outcome{Won: won, Message: message}
	e.stopCountdownLocked()
	e.pool.Reset()

	e.logger.Info("game ended",
		zap.String("game_id", e.gameID.String()),
		zap.Bool("won", won),
		zap.String("message", message),
		zap.Int("remaining", e.remaining),
		zap.Int("placements", e.placements),
	)

	cmds.Defer(e.listener.OnPoolChanged)
	cmds.Defer(func() { e.listener.OnGameEnded(won, message) })
}

func (e *Engine) stopCountdownLocked() {
	if e.countdown != nil {
		e.countdown.Stop()
		e.countdown = nil
	}
}

func (e *Engine) stopClocksLocked() {
	e.stopCountdownLocked()
	e.pool.StopRefresh()
}

// Stop halts both clocks without ending the game, for shutdown. Callbacks
// already in flight become no-ops.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopClocksLocked()
	if scheduler, ok := e.clock.(*Scheduler); ok {
		scheduler.Prune()
	}
	e.generation++
}

// ClocksRunning reports whether the countdown and the replenishment jobs
// are registered.
func (e *Engine) ClocksRunning() (countdown, refresh bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.countdown != nil, e.pool.Refreshing()
}

// Grid returns a copy of the board occupancy.
func (e *Engine) Grid() Grid {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.board.Grid()
}

// ColorForPiece returns the color of a placed piece, or UnknownColor.
func (e *Engine) ColorForPiece(id int) color.RGBA {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.board.ColorForPiece(id)
}

// Pool returns the offered pieces in display order.
func (e *Engine) Pool() []PieceView {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pool.views()
}

// Placements lists every anchor where the offered piece currently fits.
func (e *Engine) Placements(pieceID int) []Cell {
	e.mu.Lock()
	defer e.mu.Unlock()

	piece, ok := e.pool.Find(pieceID)
	if !ok {
		return nil
	}
	return e.board.Placements(piece)
}

// TimeRemaining returns the countdown value.
func (e *Engine) TimeRemaining() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.remaining
}

// State returns the lifecycle stage.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Outcome returns how the last game ended.
func (e *Engine) Outcome() Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.outcome
}

// GameID identifies the current game; empty before the first start.
func (e *Engine) GameID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gameID == uuid.Nil {
		return ""
	}
	return e.gameID.String()
}

// Snapshot is a consistent copy of everything a frontend draws.
type Snapshot struct {
	GameID     string
	State      State
	Outcome    Outcome
	Remaining  int
	Placements int
	Grid       Grid
	Colors     map[int]color.RGBA
	Pool       []PieceView
}

// Snapshot captures the whole engine state under one lock.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	grid := e.board.Grid()
	colors := make(map[int]color.RGBA)
	for _, row := range grid {
		for _, id := range row {
			if id != 0 {
				if _, seen := colors[id]; !seen {
					colors[id] = e.board.ColorForPiece(id)
				}
			}
		}
	}

	var gameID string
	if e.gameID != uuid.Nil {
		gameID = e.gameID.String()
	}

	return Snapshot{
		GameID:     gameID,
		State:      e.state,
		Outcome:    e.outcome,
		Remaining:  e.remaining,
		Placements: e.placements,
		Grid:       grid,
		Colors:     colors,
		Pool:       e.pool.views(),
	}
}
