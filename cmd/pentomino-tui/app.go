package main

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/pentomino/puzzle"
	"go.uber.org/zap"
)

const (
	boardX    = 2
	boardY    = 2
	cellWidth = 2
	poolX     = boardX + puzzle.BoardSize*cellWidth + 4
)

var (
	emptyStyle   = tcell.StyleDefault.Background(tcell.NewRGBColor(40, 40, 40))
	textStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	validStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	invalidStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	winStyle     = tcell.StyleDefault.Foreground(tcell.ColorLimeGreen).Bold(true)
	loseStyle    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// App is the terminal frontend: a keyboard cursor over the board and a
// selected pool piece.
type App struct {
	screen tcell.Screen
	engine *puzzle.Engine
	cues   *Cues
	logger *zap.Logger

	started    bool
	selectedID int
	row, col   int
}

func NewApp(screen tcell.Screen, engine *puzzle.Engine, cues *Cues, logger *zap.Logger) *App {
	return &App{screen: screen, engine: engine, cues: cues, logger: logger}
}

// NewListener wakes the event loop on every engine notification and plays
// the end-of-game cue.
func NewListener(screen tcell.Screen, cues *Cues) puzzle.Listener {
	wake := func() { _ = screen.PostEvent(tcell.NewEventInterrupt(nil)) }
	return puzzle.ListenerFuncs{
		BoardChanged:  wake,
		PoolChanged:   wake,
		TimeUpdated:   func(int) { wake() },
		GameRestarted: wake,
		GameEnded: func(won bool, _ string) {
			if won {
				cues.Play(winCue)
			} else {
				cues.Play(loseCue)
			}
			wake()
		},
	}
}

// Run processes terminal events until the player quits.
func (a *App) Run() {
	a.draw()
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		if !a.handleEvent(ev) {
			return
		}
		a.draw()
	}
}

func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
		return false
	}

	if !a.started {
		if ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' ') {
			a.started = true
			a.engine.StartGame()
		}
		return true
	}

	if ev.Key() == tcell.KeyCtrlR || (ev.Key() == tcell.KeyRune && ev.Rune() == 'R') {
		a.engine.RestartGame()
		return true
	}
	if a.engine.State().Terminal() {
		if ev.Key() == tcell.KeyEnter {
			a.engine.RestartGame()
		}
		return true
	}

	switch ev.Key() {
	case tcell.KeyUp:
		a.move(-1, 0)
	case tcell.KeyDown:
		a.move(1, 0)
	case tcell.KeyLeft:
		a.move(0, -1)
	case tcell.KeyRight:
		a.move(0, 1)
	case tcell.KeyTab:
		a.cycle(1)
	case tcell.KeyBacktab:
		a.cycle(-1)
	case tcell.KeyEnter:
		a.place()
	case tcell.KeyRune:
		a.handleRune(ev.Rune())
	}
	return true
}

func (a *App) handleRune(r rune) {
	switch {
	case r == 'k':
		a.move(-1, 0)
	case r == 'j':
		a.move(1, 0)
	case r == 'h':
		a.move(0, -1)
	case r == 'l':
		a.move(0, 1)
	case r == 'x':
		a.engine.RotatePiece(a.selected().ID, true)
	case r == 'z':
		a.engine.RotatePiece(a.selected().ID, false)
	case r == ' ':
		a.place()
	case r >= '1' && r <= '9':
		pool := a.engine.Pool()
		if i := int(r - '1'); i < len(pool) {
			a.selectedID = pool[i].ID
		}
	}
}

func (a *App) move(dr, dc int) {
	a.row = min(max(a.row+dr, 0), puzzle.BoardSize-1)
	a.col = min(max(a.col+dc, 0), puzzle.BoardSize-1)
}

// cycle moves the selection through the pool, wrapping at either end.
func (a *App) cycle(step int) {
	pool := a.engine.Pool()
	if len(pool) == 0 {
		return
	}
	i := a.selectedIndex(pool)
	i = ((i+step)%len(pool) + len(pool)) % len(pool)
	a.selectedID = pool[i].ID
}

func (a *App) selectedIndex(pool []puzzle.PieceView) int {
	for i, view := range pool {
		if view.ID == a.selectedID {
			return i
		}
	}
	return 0
}

// selected returns the selected piece, falling back to the first offered
// piece when the selection was placed or replaced.
func (a *App) selected() puzzle.PieceView {
	pool := a.engine.Pool()
	if len(pool) == 0 {
		return puzzle.PieceView{}
	}
	view := pool[a.selectedIndex(pool)]
	a.selectedID = view.ID
	return view
}

func (a *App) place() {
	view := a.selected()
	if view.ID == 0 {
		return
	}
	if a.engine.AttemptPlace(view.ID, a.row, a.col) {
		a.cues.Play(placeCue)
		a.logger.Debug("placed", zap.Int("piece_id", view.ID), zap.Int("row", a.row), zap.Int("col", a.col))
	} else {
		a.cues.Play(rejectCue)
	}
}

func (a *App) draw() {
	a.screen.Clear()
	if !a.started {
		a.drawTitle()
	} else {
		a.drawGame()
	}
	a.screen.Show()
}

func (a *App) drawTitle() {
	w, h := a.screen.Size()
	lines := []string{
		"PENTOMINO PUZZLE GAME",
		"",
		"press Enter to start",
		"",
		"arrows/hjkl move  tab select  z/x rotate  enter place  q quit",
	}
	for i, line := range lines {
		drawText(a.screen, (w-len(line))/2, h/2-len(lines)/2+i, textStyle, line)
	}
}

func (a *App) drawGame() {
	snap := a.engine.Snapshot()
	sel := a.selected()

	drawText(a.screen, boardX, 0, textStyle, fmt.Sprintf("Time: %ds", snap.Remaining))
	drawText(a.screen, poolX, 0, dimStyle, "R restart  q quit")

	for r := 0; r < puzzle.BoardSize; r++ {
		for c := 0; c < puzzle.BoardSize; c++ {
			style := emptyStyle
			if id := snap.Grid[r][c]; id != 0 {
				style = tcell.StyleDefault.Background(rgb(snap.Colors[id]))
			}
			x := boardX + c*cellWidth
			a.screen.SetContent(x, boardY+r, ' ', nil, style)
			a.screen.SetContent(x+1, boardY+r, ' ', nil, style)
		}
	}

	if sel.ID != 0 && !snap.State.Terminal() {
		a.drawGhost(sel, snap)
	}
	a.drawPool(snap.Pool, sel.ID)

	if snap.State.Terminal() {
		a.drawGameOver(snap.Outcome)
	}
}

func (a *App) drawGhost(sel puzzle.PieceView, snap puzzle.Snapshot) {
	style := invalidStyle
	for _, anchor := range a.engine.Placements(sel.ID) {
		if anchor.Row == a.row && anchor.Col == a.col {
			style = validStyle
			break
		}
	}
	for _, cell := range sel.Shape.Cells() {
		r, c := a.row+cell.Row, a.col+cell.Col
		if r >= puzzle.BoardSize || c >= puzzle.BoardSize {
			continue
		}
		bg := emptyStyle
		if id := snap.Grid[r][c]; id != 0 {
			bg = tcell.StyleDefault.Background(rgb(snap.Colors[id]))
		}
		fg, _, _ := style.Decompose()
		x := boardX + c*cellWidth
		a.screen.SetContent(x, boardY+r, '[', nil, bg.Foreground(fg).Bold(true))
		a.screen.SetContent(x+1, boardY+r, ']', nil, bg.Foreground(fg).Bold(true))
	}
}

func (a *App) drawPool(pool []puzzle.PieceView, selectedID int) {
	_, h := a.screen.Size()
	y := boardY
	for i, view := range pool {
		if y >= h {
			return
		}
		marker := "  "
		if view.ID == selectedID {
			marker = "> "
		}
		drawText(a.screen, poolX, y, textStyle, fmt.Sprintf("%s%d) %s", marker, i+1, view.Kind))
		y++

		style := tcell.StyleDefault.Foreground(rgb(view.Color))
		for r := 0; r < view.Shape.Rows(); r++ {
			for c := 0; c < view.Shape.Cols(); c++ {
				if view.Shape.At(r, c) {
					a.screen.SetContent(poolX+2+c*cellWidth, y, '█', nil, style)
					a.screen.SetContent(poolX+3+c*cellWidth, y, '█', nil, style)
				}
			}
			y++
		}
		y++
	}
}

func (a *App) drawGameOver(outcome puzzle.Outcome) {
	headline, style := "GAME OVER!", loseStyle
	if outcome.Won {
		headline, style = "WINNER!", winStyle
	}

	const width = puzzle.BoardSize * cellWidth
	x := boardX
	y := boardY + puzzle.BoardSize/2 - 2
	box := tcell.StyleDefault.Background(tcell.NewRGBColor(51, 51, 51))
	for dy := 0; dy < 5; dy++ {
		for dx := 0; dx < width; dx++ {
			a.screen.SetContent(x+dx, y+dy, ' ', nil, box)
		}
	}

	center := func(row int, s tcell.Style, text string) {
		drawText(a.screen, x+(width-len(text))/2, y+row, s, text)
	}
	fg, _, _ := style.Decompose()
	center(1, box.Foreground(fg).Bold(true), headline)
	center(2, box.Foreground(tcell.ColorWhite), outcome.Message)
	center(3, box.Foreground(tcell.ColorGray), "Enter to restart")
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
