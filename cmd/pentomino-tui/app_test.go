package main

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/pentomino/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type harness struct {
	screen tcell.SimulationScreen
	clock  *puzzle.ManualClock
	engine *puzzle.Engine
	app    *App
}

func newHarness(t *testing.T, cfg puzzle.Config) *harness {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 30)

	cues := &Cues{}
	clock := puzzle.NewManualClock()
	engine, err := puzzle.NewEngine(cfg,
		puzzle.WithClock(clock),
		puzzle.WithListener(NewListener(screen, cues)),
	)
	require.NoError(t, err)

	return &harness{
		screen: screen,
		clock:  clock,
		engine: engine,
		app:    NewApp(screen, engine, cues, zap.NewNop()),
	}
}

func (h *harness) key(k tcell.Key) bool {
	return h.app.handleEvent(tcell.NewEventKey(k, 0, tcell.ModNone))
}

func (h *harness) typeRune(r rune) bool {
	return h.app.handleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

// text renders the screen and returns its contents one line per row.
func (h *harness) text() string {
	h.app.draw()
	cells, w, height := h.screen.GetContents()

	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < w; x++ {
			cell := cells[y*w+x]
			if len(cell.Runes) > 0 {
				b.WriteRune(cell.Runes[0])
			} else {
				b.WriteRune(' ')
			}
		}
		b.WriteRune('\n')
	}
	return b.String()
}

func TestTitleScreen(t *testing.T) {
	h := newHarness(t, puzzle.DefaultConfig())

	assert.Contains(t, h.text(), "PENTOMINO PUZZLE GAME")
	assert.Equal(t, puzzle.StateNotStarted, h.engine.State())

	require.True(t, h.key(tcell.KeyEnter))

	assert.Equal(t, puzzle.StateRunning, h.engine.State())
	screen := h.text()
	assert.Contains(t, screen, "Time: 300s")
	assert.Contains(t, screen, "> 1) ")
}

func TestPlaceSelectedPiece(t *testing.T) {
	h := newHarness(t, puzzle.DefaultConfig())
	h.key(tcell.KeyEnter)

	first := h.engine.Pool()[0]
	h.key(tcell.KeyEnter)

	assert.Equal(t, 1, h.engine.Snapshot().Placements)
	for _, cell := range first.Shape.Cells() {
		assert.Equal(t, first.ID, h.engine.Grid()[cell.Row][cell.Col])
	}

	// no pentomino fits with its corner on the last cell
	for range puzzle.BoardSize {
		h.key(tcell.KeyDown)
		h.key(tcell.KeyRight)
	}
	h.typeRune(' ')
	assert.Equal(t, 1, h.engine.Snapshot().Placements)
}

func TestCursorStaysOnBoard(t *testing.T) {
	h := newHarness(t, puzzle.DefaultConfig())
	h.key(tcell.KeyEnter)

	for range 20 {
		h.key(tcell.KeyDown)
		h.typeRune('l')
	}
	assert.Equal(t, puzzle.BoardSize-1, h.app.row)
	assert.Equal(t, puzzle.BoardSize-1, h.app.col)

	h.key(tcell.KeyUp)
	h.typeRune('h')
	assert.Equal(t, puzzle.BoardSize-2, h.app.row)
	assert.Equal(t, puzzle.BoardSize-2, h.app.col)
}

func TestSelectionCyclesAndRotates(t *testing.T) {
	h := newHarness(t, puzzle.DefaultConfig())
	h.key(tcell.KeyEnter)
	pool := h.engine.Pool()
	require.Len(t, pool, 3)

	h.key(tcell.KeyTab)
	assert.Equal(t, pool[1].ID, h.app.selected().ID)
	h.key(tcell.KeyBacktab)
	h.key(tcell.KeyBacktab)
	assert.Equal(t, pool[2].ID, h.app.selected().ID)
	h.typeRune('1')
	assert.Equal(t, pool[0].ID, h.app.selected().ID)

	h.typeRune('x')
	rotated := h.engine.Pool()[0].Shape
	assert.Equal(t, pool[0].Shape.Rows(), rotated.Cols())
	h.typeRune('z')
	assert.True(t, pool[0].Shape.Equal(h.engine.Pool()[0].Shape))
}

func TestGameOverAndRestart(t *testing.T) {
	cfg := puzzle.DefaultConfig()
	cfg.Countdown = 1
	h := newHarness(t, cfg)
	h.key(tcell.KeyEnter)

	h.clock.Advance(time.Second)

	screen := h.text()
	assert.Contains(t, screen, "GAME OVER!")
	assert.Contains(t, screen, puzzle.MessageTimeExpired)

	h.key(tcell.KeyEnter)
	assert.Equal(t, puzzle.StateRunning, h.engine.State())
	assert.NotContains(t, h.text(), "GAME OVER!")
}

func TestQuit(t *testing.T) {
	h := newHarness(t, puzzle.DefaultConfig())

	assert.False(t, h.typeRune('q'))
	assert.False(t, h.key(tcell.KeyEscape))
}
