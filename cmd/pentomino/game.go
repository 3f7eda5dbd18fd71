package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/pentomino/puzzle"
	"github.com/plus3/pentomino/puzzle/debugui"
	debugui_ebiten "github.com/plus3/pentomino/puzzle/debugui/ebiten"
	"go.uber.org/zap"
)

var (
	backgroundColor = color.RGBA{0, 0, 0, 255}
	poolColor       = color.RGBA{0x2e, 0x2e, 0x2e, 255}
	controlColor    = color.RGBA{0xf4, 0xf4, 0xf4, 255}
	cellColor       = color.RGBA{255, 255, 255, 255}
	gridLineColor   = color.RGBA{211, 211, 211, 255}
	placedLineColor = color.RGBA{169, 169, 169, 255}
	pieceLineColor  = color.RGBA{0, 0, 0, 255}
	buttonColor     = color.RGBA{70, 70, 70, 255}
	dimColor        = color.RGBA{0, 0, 0, 178}
	modalColor      = color.RGBA{0x33, 0x33, 0x33, 255}
	ghostValid      = color.RGBA{50, 205, 50, 255}
	ghostInvalid    = color.RGBA{255, 0, 0, 255}
)

type screenKind int

const (
	screenTitle screenKind = iota
	screenPlaying
)

type drag struct {
	pieceID    int
	offX, offY float64
}

// Game implements ebiten.Game on top of a puzzle engine.
type Game struct {
	engine  *puzzle.Engine
	events  *uiEvents
	logger  *zap.Logger
	backend *debugui_ebiten.ImguiBackend
	overlay *debugui.Overlay

	screen   screenKind
	snap     puzzle.Snapshot
	seconds  int
	gameOver *puzzle.Outcome
	dragging *drag
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.backend != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
			g.overlay.Toggle()
		}
		g.backend.Frame(g.overlay.Render)
	}

	switch g.screen {
	case screenTitle:
		g.updateTitle()
	case screenPlaying:
		g.updatePlaying()
	}
	return nil
}

func (g *Game) updateTitle() {
	start := inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		start = start || startButton.contains(float64(mx), float64(my))
	}
	if start {
		g.screen = screenPlaying
		g.engine.StartGame()
		g.refresh()
	}
}

func (g *Game) updatePlaying() {
	g.refresh()

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.restart()
		return
	}

	if g.dragging != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
			g.engine.RotatePiece(g.dragging.pieceID, true)
		} else if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
			g.engine.RotatePiece(g.dragging.pieceID, false)
		}
		g.refresh()
		if _, ok := g.dragged(); !ok {
			// replenishment took the piece away mid-drag
			g.dragging = nil
		}
	}

	if g.overlay != nil && g.overlay.Input().WantCaptureMouse {
		return
	}

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.gameOver != nil {
			if modalRestartButton.contains(x, y) {
				g.restart()
			}
			return
		}
		if restartButton.contains(x, y) {
			g.restart()
			return
		}
		if i, offX, offY, ok := pickPiece(g.snap.Pool, x, y); ok {
			g.dragging = &drag{pieceID: g.snap.Pool[i].ID, offX: offX, offY: offY}
		}
	}

	if g.dragging != nil && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		id := g.dragging.pieceID
		row, col, ok := dropCell(x-g.dragging.offX, y-g.dragging.offY)
		g.dragging = nil
		if ok {
			placed := g.engine.AttemptPlace(id, row, col)
			g.logger.Debug("drop", zap.Int("piece_id", id), zap.Int("row", row), zap.Int("col", col), zap.Bool("placed", placed))
		}
		g.refresh()
	}
}

func (g *Game) restart() {
	g.dragging = nil
	g.engine.RestartGame()
	g.refresh()
}

// refresh applies queued engine notifications to the cached snapshot.
func (g *Game) refresh() {
	update, changed := g.events.drain()
	g.seconds = update.Seconds
	if !changed {
		return
	}
	if update.Restarted {
		g.gameOver = nil
	}
	if update.Ended != nil {
		g.gameOver = update.Ended
		g.dragging = nil
	}
	g.snap = g.engine.Snapshot()
}

func (g *Game) dragged() (puzzle.PieceView, bool) {
	if g.dragging == nil {
		return puzzle.PieceView{}, false
	}
	for _, view := range g.snap.Pool {
		if view.ID == g.dragging.pieceID {
			return view, true
		}
	}
	return puzzle.PieceView{}, false
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	switch g.screen {
	case screenTitle:
		drawTitle(screen)
	case screenPlaying:
		g.drawPlaying(screen)
	}

	if g.backend != nil && g.overlay.Visible() {
		g.backend.Draw(screen)
	}
}

func drawTitle(screen *ebiten.Image) {
	const title = "PENTOMINO PUZZLE GAME"
	ebitenutil.DebugPrintAt(screen, title, (ScreenWidth-len(title)*6)/2, ScreenHeight/2-60)
	drawButton(screen, startButton, "START GAME")
	ebitenutil.DebugPrintAt(screen, "drag pieces onto the board, arrows rotate while dragging", 24, ScreenHeight-40)
}

func (g *Game) drawPlaying(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, ScreenWidth, controlHeight, controlColor, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Time: %ds", g.seconds), margin, 18)
	drawButton(screen, restartButton, "Restart")

	vector.DrawFilledRect(screen, 0, poolTop, ScreenWidth, poolHeight, poolColor, false)
	g.drawBoard(screen)
	g.drawPool(screen)
	g.drawDragged(screen)

	if g.gameOver != nil {
		drawGameOver(screen, *g.gameOver)
	}
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	for r := 0; r < puzzle.BoardSize; r++ {
		for c := 0; c < puzzle.BoardSize; c++ {
			x := float32(boardLeft + c*squareSize)
			y := float32(boardTop + r*squareSize)
			fill, line := color.Color(cellColor), color.Color(gridLineColor)
			if id := g.snap.Grid[r][c]; id != 0 {
				fill, line = g.snap.Colors[id], placedLineColor
			}
			vector.DrawFilledRect(screen, x, y, squareSize, squareSize, fill, false)
			vector.StrokeRect(screen, x, y, squareSize, squareSize, 1, line, false)
		}
	}
}

func (g *Game) drawPool(screen *ebiten.Image) {
	rects, cell := poolLayout(g.snap.Pool)
	for i, view := range g.snap.Pool {
		if g.dragging != nil && view.ID == g.dragging.pieceID {
			continue
		}
		drawShape(screen, view, rects[i].X, rects[i].Y, cell, 255)
	}
}

func (g *Game) drawDragged(screen *ebiten.Image) {
	view, ok := g.dragged()
	if !ok {
		return
	}
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx)-g.dragging.offX, float64(my)-g.dragging.offY

	if row, col, ok := dropCell(x, y); ok {
		ghost := ghostInvalid
		for _, anchor := range g.engine.Placements(view.ID) {
			if anchor.Row == row && anchor.Col == col {
				ghost = ghostValid
				break
			}
		}
		for _, cell := range view.Shape.Cells() {
			gx := float32(boardLeft + (col+cell.Col)*squareSize)
			gy := float32(boardTop + (row+cell.Row)*squareSize)
			vector.StrokeRect(screen, gx+2, gy+2, squareSize-4, squareSize-4, 2, ghost, false)
		}
	}

	drawShape(screen, view, x, y, squareSize, 220)
}

func drawShape(screen *ebiten.Image, view puzzle.PieceView, x, y, cell float64, alpha uint8) {
	fill := view.Color
	fill.A = alpha
	for _, c := range view.Shape.Cells() {
		cx := float32(x + float64(c.Col)*cell)
		cy := float32(y + float64(c.Row)*cell)
		vector.DrawFilledRect(screen, cx, cy, float32(cell), float32(cell), fill, false)
		vector.StrokeRect(screen, cx, cy, float32(cell), float32(cell), 1, pieceLineColor, false)
	}
}

func drawGameOver(screen *ebiten.Image, outcome puzzle.Outcome) {
	vector.DrawFilledRect(screen, 0, 0, ScreenWidth, ScreenHeight, dimColor, false)
	vector.DrawFilledRect(screen, float32(modalBox.X), float32(modalBox.Y), float32(modalBox.W), float32(modalBox.H), modalColor, false)

	headline := "GAME OVER!"
	if outcome.Won {
		headline = "WINNER!"
	}
	ebitenutil.DebugPrintAt(screen, headline, int(modalBox.X+modalBox.W/2)-len(headline)*3, int(modalBox.Y)+30)
	ebitenutil.DebugPrintAt(screen, outcome.Message, int(modalBox.X+modalBox.W/2)-len(outcome.Message)*3, int(modalBox.Y)+60)
	drawButton(screen, modalRestartButton, "Restart Game")
}

func drawButton(screen *ebiten.Image, r rect, label string) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), buttonColor, false)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, color.White, false)
	ebitenutil.DebugPrintAt(screen, label, int(r.X+r.W/2)-len(label)*3, int(r.Y+r.H/2)-8)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Layout(ScreenWidth, ScreenHeight)
	}
	return ScreenWidth, ScreenHeight
}
