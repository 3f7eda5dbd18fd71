package puzzle_test

import (
	"image/color"
	"testing"

	"github.com/plus3/pentomino/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogShapesArePentominoes(t *testing.T) {
	kinds := puzzle.Kinds()
	require.Len(t, kinds, 12)

	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			shape := puzzle.BaseShape(kind)
			assert.Equal(t, puzzle.PentominoCells, shape.CellCount())
			assert.Len(t, shape.Cells(), puzzle.PentominoCells)
		})
	}
}

func TestCatalogKindsAreDistinct(t *testing.T) {
	orientations := func(s puzzle.Shape) []puzzle.Shape {
		out := []puzzle.Shape{s}
		for range 3 {
			s = s.RotateClockwise()
			out = append(out, s)
		}
		return out
	}

	kinds := puzzle.Kinds()
	for a := 0; a < len(kinds); a++ {
		for b := a + 1; b < len(kinds); b++ {
			base := puzzle.BaseShape(kinds[b])
			for _, o := range orientations(puzzle.BaseShape(kinds[a])) {
				assert.False(t, o.Equal(base), "%s and %s share an orientation", kinds[a], kinds[b])
			}
		}
	}
}

func TestRotateClockwise(t *testing.T) {
	shape := puzzle.NewShape([][]int{
		{1, 0, 0},
		{1, 1, 1},
	})

	rotated := shape.RotateClockwise()

	assert.Equal(t, 3, rotated.Rows())
	assert.Equal(t, 2, rotated.Cols())
	assert.Equal(t, [][]int{
		{1, 1},
		{1, 0},
		{1, 0},
	}, rotated.Matrix())

	// the receiver is unchanged
	assert.Equal(t, [][]int{{1, 0, 0}, {1, 1, 1}}, shape.Matrix())
}

func TestRotationHasOrderFour(t *testing.T) {
	for _, kind := range puzzle.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			piece := puzzle.NewPiece(1, kind, color.RGBA{A: 255})
			original := piece.Shape()

			for range 4 {
				piece.RotateClockwise()
			}
			assert.True(t, original.Equal(piece.Shape()), "clockwise:\n%s\nvs\n%s", original, piece.Shape())

			for range 4 {
				piece.RotateCounterClockwise()
			}
			assert.True(t, original.Equal(piece.Shape()), "counter-clockwise")
		})
	}
}

func TestRotateCounterClockwiseInvertsClockwise(t *testing.T) {
	for _, kind := range puzzle.Kinds() {
		piece := puzzle.NewPiece(1, kind, color.RGBA{A: 255})
		original := piece.Shape()

		piece.RotateClockwise()
		piece.RotateCounterClockwise()
		assert.True(t, original.Equal(piece.Shape()), kind.String())

		piece.RotateCounterClockwise()
		assert.Equal(t, original.Cols(), piece.Shape().Rows(), kind.String())
		assert.Equal(t, original.Rows(), piece.Shape().Cols(), kind.String())
		assert.Equal(t, puzzle.PentominoCells, piece.Shape().CellCount(), kind.String())
	}
}

func TestPiecesDoNotShareTemplates(t *testing.T) {
	a := puzzle.NewPiece(1, puzzle.KindL, color.RGBA{A: 255})
	b := puzzle.NewPiece(2, puzzle.KindL, color.RGBA{A: 255})

	a.RotateClockwise()

	assert.False(t, a.Shape().Equal(b.Shape()))
	assert.True(t, b.Shape().Equal(puzzle.BaseShape(puzzle.KindL)))
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, ".#.\n###\n.#.", puzzle.BaseShape(puzzle.KindX).String())
	assert.Equal(t, "#####", puzzle.BaseShape(puzzle.KindI).String())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "I", puzzle.KindI.String())
	assert.Equal(t, "Z", puzzle.KindZ.String())
	assert.Equal(t, "?", puzzle.Kind(42).String())
	assert.False(t, puzzle.Kind(-1).Valid())
}

func TestNewPiecePanicsOnZeroID(t *testing.T) {
	assert.Panics(t, func() {
		puzzle.NewPiece(0, puzzle.KindI, color.RGBA{})
	})
}
