package puzzle

import (
	"image/color"

	"github.com/kamstrup/intmap"
)

// BoardSize is the width and height of the square board.
const BoardSize = 10

// UnknownColor is returned for piece ids the board never recorded.
var UnknownColor = color.RGBA{128, 128, 128, 255}

// Grid is a snapshot of board occupancy: 0 is empty, anything else is the
// id of the piece covering the cell.
type Grid [BoardSize][BoardSize]int

// Board is the 10×10 occupancy grid. Cells are never cleared once set,
// except by Reset.
type Board struct {
	cells  Grid
	colors *intmap.Map[int, color.RGBA]
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{
		colors: intmap.New[int, color.RGBA](32),
	}
}

// Reset clears every cell and forgets all piece colors.
func (b *Board) Reset() {
	b.cells = Grid{}
	b.colors.Clear()
}

// IsPlacementValid reports whether every occupied cell of the piece,
// anchored with its top-left matrix corner at (row, col), is on the board
// and empty.
func (b *Board) IsPlacementValid(piece *Piece, row, col int) bool {
	return b.fits(piece.Shape(), row, col)
}

func (b *Board) fits(shape Shape, row, col int) bool {
	for i := 0; i < shape.Rows(); i++ {
		for j := 0; j < shape.Cols(); j++ {
			if !shape.At(i, j) {
				continue
			}

			r := row + i
			c := col + j

			if r < 0 || r >= BoardSize || c < 0 || c >= BoardSize {
				return false
			}
			if b.cells[r][c] != 0 {
				return false
			}
		}
	}
	return true
}

// Place writes the piece id into every covered cell and records its color.
// The caller must have checked IsPlacementValid; Place does no validation.
func (b *Board) Place(piece *Piece, row, col int) {
	shape := piece.Shape()
	b.colors.Put(piece.ID(), piece.Color())

	for i := 0; i < shape.Rows(); i++ {
		for j := 0; j < shape.Cols(); j++ {
			if shape.At(i, j) {
				b.cells[row+i][col+j] = piece.ID()
			}
		}
	}
}

// HasValidMove reports whether any piece fits somewhere in its current
// orientation. An empty list never has a move.
func (b *Board) HasValidMove(pieces []*Piece) bool {
	if len(pieces) == 0 {
		return false
	}

	for _, piece := range pieces {
		shape := piece.Shape()
		for r := 0; r < BoardSize; r++ {
			for c := 0; c < BoardSize; c++ {
				if b.fits(shape, r, c) {
					return true
				}
			}
		}
	}
	return false
}

// Placements lists every anchor at which the piece currently fits, in
// row-major order.
func (b *Board) Placements(piece *Piece) []Cell {
	shape := piece.Shape()
	var out []Cell
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if b.fits(shape, r, c) {
				out = append(out, Cell{Row: r, Col: c})
			}
		}
	}
	return out
}

// IsFull reports whether no cell is empty.
func (b *Board) IsFull() bool {
	return b.EmptyCells() == 0
}

// EmptyCells counts the cells still at 0.
func (b *Board) EmptyCells() int {
	n := 0
	for _, row := range b.cells {
		for _, cell := range row {
			if cell == 0 {
				n++
			}
		}
	}
	return n
}

// Cell returns the id at (row, col), or 0 when empty or off the board.
func (b *Board) Cell(row, col int) int {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return 0
	}
	return b.cells[row][col]
}

// Grid returns a copy of the occupancy matrix.
func (b *Board) Grid() Grid {
	return b.cells
}

// ColorForPiece returns the color recorded when the piece was placed, or
// UnknownColor if the id was never placed.
func (b *Board) ColorForPiece(id int) color.RGBA {
	if c, ok := b.colors.Get(id); ok {
		return c
	}
	return UnknownColor
}
