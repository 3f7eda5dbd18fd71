package main

import (
	"image/color"
	"testing"

	"github.com/plus3/pentomino/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func views(kinds ...puzzle.Kind) []puzzle.PieceView {
	out := make([]puzzle.PieceView, len(kinds))
	for i, kind := range kinds {
		out[i] = puzzle.PieceView{ID: i + 1, Kind: kind, Color: color.RGBA{A: 255}, Shape: puzzle.BaseShape(kind)}
	}
	return out
}

func TestDropCell(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		row, col int
		ok       bool
	}{
		{"board origin", boardLeft, boardTop, 0, 0, true},
		{"rounds down", boardLeft + 19, boardTop + 19, 0, 0, true},
		{"rounds up", boardLeft + 21, boardTop + 61, 2, 1, true},
		{"last cell", boardLeft + 9*squareSize, boardTop + 9*squareSize, 9, 9, true},
		{"just left of board snaps to column 0", boardLeft - 1, boardTop + 100, 3, 0, true},
		{"just above board snaps to row 0", boardLeft + 100, boardTop - 19, 0, 3, true},
		{"half a cell left of board", boardLeft - squareSize/2, boardTop + 100, 0, 0, false},
		{"half a cell above board", boardLeft + 100, boardTop - squareSize/2, 0, 0, false},
		{"far left of board", boardLeft - 100, boardTop, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, ok := dropCell(tt.x, tt.y)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.row, row)
				assert.Equal(t, tt.col, col)
			}
		})
	}
}

func TestPoolLayout(t *testing.T) {
	pool := views(puzzle.KindI, puzzle.KindL, puzzle.KindX)

	rects, cell := poolLayout(pool)

	require.Len(t, rects, 3)
	assert.Equal(t, float64(maxPoolSquare), cell)
	for i, r := range rects {
		assert.GreaterOrEqual(t, r.X, 0.0)
		assert.LessOrEqual(t, r.X+r.W, float64(ScreenWidth))
		assert.GreaterOrEqual(t, r.Y, float64(poolTop))
		assert.LessOrEqual(t, r.Y+r.H, float64(poolTop+poolHeight))
		if i > 0 {
			assert.Greater(t, r.X, rects[i-1].X+rects[i-1].W, "slots do not overlap")
		}
	}
	assert.Equal(t, 5*cell, rects[0].W)
	assert.Equal(t, cell, rects[0].H)
}

func TestPoolLayoutShrinksForLargePools(t *testing.T) {
	kinds := make([]puzzle.Kind, 12)
	for i := range kinds {
		kinds[i] = puzzle.KindI
	}

	rects, cell := poolLayout(views(kinds...))

	assert.Less(t, cell, float64(maxPoolSquare))
	assert.GreaterOrEqual(t, cell, float64(minPoolSquare))
	last := rects[len(rects)-1]
	assert.LessOrEqual(t, last.X+last.W, float64(ScreenWidth))
}

func TestPickPiece(t *testing.T) {
	pool := views(puzzle.KindI, puzzle.KindX)
	rects, cell := poolLayout(pool)

	index, offX, offY, ok := pickPiece(pool, rects[1].X+cell+1, rects[1].Y+2*cell+2)
	require.True(t, ok)
	assert.Equal(t, 1, index)
	assert.InDelta(t, squareSize+squareSize/cell, offX, 1e-9)
	assert.InDelta(t, 2*squareSize+2*squareSize/cell, offY, 1e-9)

	_, _, _, ok = pickPiece(pool, 1, 1)
	assert.False(t, ok)
}
