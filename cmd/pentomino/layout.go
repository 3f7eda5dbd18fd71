package main

import (
	"math"

	"github.com/plus3/pentomino/puzzle"
)

const (
	squareSize    = 40
	boardPixels   = puzzle.BoardSize * squareSize
	margin        = 20
	controlHeight = 50
	poolHeight    = 200

	ScreenWidth  = boardPixels + 2*margin
	ScreenHeight = controlHeight + poolHeight + boardPixels + 10

	boardLeft = margin
	boardTop  = controlHeight + poolHeight
	poolTop   = controlHeight

	maxPoolSquare = 20
	minPoolSquare = 4
)

type rect struct {
	X, Y, W, H float64
}

func (r rect) contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

var (
	startButton        = rect{X: (ScreenWidth - 200) / 2, Y: ScreenHeight/2 + 20, W: 200, H: 60}
	restartButton      = rect{X: ScreenWidth - margin - 100, Y: 10, W: 100, H: 30}
	modalBox           = rect{X: (ScreenWidth - 300) / 2, Y: (ScreenHeight - 170) / 2, W: 300, H: 170}
	modalRestartButton = rect{X: (ScreenWidth - 160) / 2, Y: modalBox.Y + modalBox.H - 56, W: 160, H: 36}
)

// poolSquare is the cell size used to draw n pool pieces side by side.
func poolSquare(n int) float64 {
	if n <= 0 {
		return maxPoolSquare
	}
	slot := float64(ScreenWidth) / float64(n)
	return math.Max(minPoolSquare, math.Min(maxPoolSquare, math.Floor((slot-8)/puzzle.PentominoCells)))
}

// poolLayout returns the bounding rectangle of each offered piece, centered
// in equal-width slots across the pool strip.
func poolLayout(pool []puzzle.PieceView) ([]rect, float64) {
	cell := poolSquare(len(pool))
	rects := make([]rect, len(pool))
	if len(pool) == 0 {
		return rects, cell
	}

	slot := float64(ScreenWidth) / float64(len(pool))
	for i, view := range pool {
		w := float64(view.Shape.Cols()) * cell
		h := float64(view.Shape.Rows()) * cell
		rects[i] = rect{
			X: float64(i)*slot + (slot-w)/2,
			Y: poolTop + (poolHeight-h)/2,
			W: w,
			H: h,
		}
	}
	return rects, cell
}

// pickPiece finds the pool piece under the cursor. The returned offset is
// the cursor position within the piece, in full-size board pixels.
func pickPiece(pool []puzzle.PieceView, x, y float64) (index int, offX, offY float64, ok bool) {
	rects, cell := poolLayout(pool)
	for i, r := range rects {
		if r.contains(x, y) {
			scale := squareSize / cell
			return i, (x - r.X) * scale, (y - r.Y) * scale, true
		}
	}
	return 0, 0, 0, false
}

// dropCell snaps the top-left corner of a dragged piece to the nearest board
// cell. A corner that would round to a column left of the board or a row
// above it is never a drop.
func dropCell(x, y float64) (row, col int, ok bool) {
	if x <= boardLeft-squareSize/2 || y <= boardTop-squareSize/2 {
		return 0, 0, false
	}
	col = int(math.Round((x - boardLeft) / squareSize))
	row = int(math.Round((y - boardTop) / squareSize))
	return row, col, true
}
