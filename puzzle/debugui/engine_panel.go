package debugui

import (
	"fmt"
	"image/color"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pentomino/puzzle"
)

const boardCellPixels = 14

// EnginePanel shows the live game: state, countdown, the offered pieces
// and a miniature board. It can restart the game and offer pieces of a
// chosen kind.
type EnginePanel struct {
	engine    *puzzle.Engine
	remaining *history
	selected  int
}

func NewEnginePanel(engine *puzzle.Engine, historySize int) *EnginePanel {
	return &EnginePanel{
		engine:    engine,
		remaining: newHistory(historySize),
	}
}

func (p *EnginePanel) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(340, 520), imgui.CondOnce)

	if !imgui.BeginV("Game", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	snap := p.engine.Snapshot()
	cfg := p.engine.Config()
	p.remaining.push(float32(snap.Remaining))

	imgui.Text(fmt.Sprintf("Game: %s", snap.GameID))
	switch snap.State {
	case puzzle.StateRunning:
		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "RUNNING")
	case puzzle.StateWon:
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "WON: "+snap.Outcome.Message)
	case puzzle.StateLost:
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "LOST: "+snap.Outcome.Message)
	default:
		imgui.Text(snap.State.String())
	}

	fraction := float32(snap.Remaining) / float32(cfg.Countdown)
	imgui.ProgressBarV(fraction, imgui.NewVec2(-1, 0), fmt.Sprintf("%d/%ds", snap.Remaining, cfg.Countdown))

	filled := 0
	for _, row := range snap.Grid {
		for _, id := range row {
			if id != 0 {
				filled++
			}
		}
	}
	imgui.Text(fmt.Sprintf("Placements: %d", snap.Placements))
	imgui.Text(fmt.Sprintf("Filled: %d/%d", filled, puzzle.BoardSize*puzzle.BoardSize))

	if imgui.Button("Restart") {
		p.engine.RestartGame()
	}

	imgui.Separator()
	p.renderPool(snap.Pool)

	if imgui.TreeNodeStr("Offer Piece") {
		for i, kind := range puzzle.Kinds() {
			if i > 0 && i%6 != 0 {
				imgui.SameLine()
			}
			if imgui.Button(kind.String()) {
				p.engine.OfferPiece(kind)
			}
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Board") {
		p.renderBoard(snap)
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Countdown") {
		samples := p.remaining.oldestFirst()
		if len(samples) > 0 {
			imgui.PlotLinesFloatPtr("##remaining", &samples[0], int32(len(samples)))
		}
		imgui.TreePop()
	}

	imgui.End()
}

func (p *EnginePanel) renderPool(pool []puzzle.PieceView) {
	imgui.Text(fmt.Sprintf("Pool: %d", len(pool)))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("PoolTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("ID")
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Size")
		imgui.TableSetupColumn("Fits")
		imgui.TableHeadersRow()

		for _, view := range pool {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			if imgui.SelectableBoolV(fmt.Sprintf("%d", view.ID), p.selected == view.ID, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				p.selected = view.ID
			}
			imgui.TableNextColumn()
			imgui.PushStyleColorVec4(imgui.ColText, rgbaVec4(view.Color))
			imgui.Text(view.Kind.String())
			imgui.PopStyleColor()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%dx%d", view.Shape.Rows(), view.Shape.Cols()))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", len(p.engine.Placements(view.ID))))
		}

		imgui.EndTable()
	}
}

func (p *EnginePanel) renderBoard(snap puzzle.Snapshot) {
	hints := make(map[puzzle.Cell]bool)
	for _, anchor := range p.engine.Placements(p.selected) {
		hints[anchor] = true
	}

	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	empty := imgui.ColorU32Vec4(imgui.NewVec4(0.15, 0.15, 0.15, 1.0))
	hint := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))

	for r := 0; r < puzzle.BoardSize; r++ {
		for c := 0; c < puzzle.BoardSize; c++ {
			fill := empty
			if id := snap.Grid[r][c]; id != 0 {
				fill = imgui.ColorU32Vec4(rgbaVec4(snap.Colors[id]))
			} else if hints[puzzle.Cell{Row: r, Col: c}] {
				fill = hint
			}
			x := origin.X + float32(c*boardCellPixels)
			y := origin.Y + float32(r*boardCellPixels)
			drawList.AddRectFilled(imgui.NewVec2(x, y), imgui.NewVec2(x+boardCellPixels-1, y+boardCellPixels-1), fill)
		}
	}

	side := float32(puzzle.BoardSize * boardCellPixels)
	imgui.Dummy(imgui.NewVec2(side, side))
	if p.selected != 0 {
		imgui.Text(fmt.Sprintf("Anchors for piece %d: %d", p.selected, len(hints)))
	}
}

func rgbaVec4(c color.RGBA) imgui.Vec4 {
	return imgui.NewVec4(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
}
