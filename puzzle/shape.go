package puzzle

import "strings"

// Kind identifies one of the twelve free pentominoes.
type Kind int

const (
	KindI Kind = iota
	KindL
	KindP
	KindN
	KindF
	KindT
	KindU
	KindV
	KindW
	KindX
	KindY
	KindZ

	kindCount
)

// PentominoCells is the number of occupied cells in every shape.
const PentominoCells = 5

var kindNames = [kindCount]string{"I", "L", "P", "N", "F", "T", "U", "V", "W", "X", "Y", "Z"}

// Kinds returns all twelve kinds in catalog order.
func Kinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Valid reports whether k names a catalog entry.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

func (k Kind) String() string {
	if !k.Valid() {
		return "?"
	}
	return kindNames[k]
}

// Shape is an immutable occupancy matrix. Rotations produce new shapes,
// so a Shape can be shared freely between readers.
type Shape struct {
	rows, cols int
	cells      []bool
}

// NewShape builds a shape from a row-major matrix of 0/1 values.
// Rows must all have the same length.
func NewShape(matrix [][]int) Shape {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return Shape{}
	}
	rows, cols := len(matrix), len(matrix[0])
	cells := make([]bool, rows*cols)
	for i, row := range matrix {
		if len(row) != cols {
			panic("shape rows must have equal length")
		}
		for j, v := range row {
			cells[i*cols+j] = v != 0
		}
	}
	return Shape{rows: rows, cols: cols, cells: cells}
}

var catalog = [kindCount]Shape{
	KindI: NewShape([][]int{
		{1, 1, 1, 1, 1},
	}),
	KindL: NewShape([][]int{
		{1, 0},
		{1, 0},
		{1, 0},
		{1, 1},
	}),
	KindP: NewShape([][]int{
		{1, 1},
		{1, 1},
		{1, 0},
	}),
	KindN: NewShape([][]int{
		{0, 1},
		{1, 1},
		{1, 0},
		{1, 0},
	}),
	KindF: NewShape([][]int{
		{0, 1, 1},
		{1, 1, 0},
		{0, 1, 0},
	}),
	KindT: NewShape([][]int{
		{1, 1, 1},
		{0, 1, 0},
		{0, 1, 0},
	}),
	KindU: NewShape([][]int{
		{1, 0, 1},
		{1, 1, 1},
	}),
	KindV: NewShape([][]int{
		{1, 0, 0},
		{1, 0, 0},
		{1, 1, 1},
	}),
	KindW: NewShape([][]int{
		{1, 0, 0},
		{1, 1, 0},
		{0, 1, 1},
	}),
	KindX: NewShape([][]int{
		{0, 1, 0},
		{1, 1, 1},
		{0, 1, 0},
	}),
	KindY: NewShape([][]int{
		{0, 1, 0, 0},
		{1, 1, 1, 1},
	}),
	KindZ: NewShape([][]int{
		{1, 1, 0},
		{0, 1, 0},
		{0, 1, 1},
	}),
}

func init() {
	for k, s := range catalog {
		if s.CellCount() != PentominoCells {
			panic("pentomino " + Kind(k).String() + " must have exactly five cells")
		}
	}
}

// BaseShape returns a fresh copy of the template for kind in its initial orientation.
func BaseShape(kind Kind) Shape {
	if !kind.Valid() {
		panic("unknown pentomino kind")
	}
	return catalog[kind].clone()
}

func (s Shape) clone() Shape {
	cells := make([]bool, len(s.cells))
	copy(cells, s.cells)
	return Shape{rows: s.rows, cols: s.cols, cells: cells}
}

// Rows returns the number of matrix rows.
func (s Shape) Rows() int { return s.rows }

// Cols returns the number of matrix columns.
func (s Shape) Cols() int { return s.cols }

// At reports whether cell (i, j) is occupied. Out of range cells are empty.
func (s Shape) At(i, j int) bool {
	if i < 0 || i >= s.rows || j < 0 || j >= s.cols {
		return false
	}
	return s.cells[i*s.cols+j]
}

// CellCount returns the number of occupied cells.
func (s Shape) CellCount() int {
	n := 0
	for _, c := range s.cells {
		if c {
			n++
		}
	}
	return n
}

// Cells returns the occupied offsets in row-major order.
func (s Shape) Cells() []Cell {
	out := make([]Cell, 0, PentominoCells)
	for i := 0; i < s.rows; i++ {
		for j := 0; j < s.cols; j++ {
			if s.cells[i*s.cols+j] {
				out = append(out, Cell{Row: i, Col: j})
			}
		}
	}
	return out
}

// Matrix returns a copy of the shape as a row-major 0/1 matrix.
func (s Shape) Matrix() [][]int {
	m := make([][]int, s.rows)
	for i := range m {
		m[i] = make([]int, s.cols)
		for j := range m[i] {
			if s.cells[i*s.cols+j] {
				m[i][j] = 1
			}
		}
	}
	return m
}

// RotateClockwise returns the shape turned 90° clockwise. An R×C shape
// becomes C×R and the old cell (i, j) lands at (j, R-1-i).
func (s Shape) RotateClockwise() Shape {
	rotated := Shape{rows: s.cols, cols: s.rows, cells: make([]bool, len(s.cells))}
	for i := 0; i < s.rows; i++ {
		for j := 0; j < s.cols; j++ {
			rotated.cells[j*rotated.cols+(s.rows-1-i)] = s.cells[i*s.cols+j]
		}
	}
	return rotated
}

// Equal reports whether both shapes have the same dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if s.rows != other.rows || s.cols != other.cols {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the shape with '#' for occupied and '.' for empty cells.
func (s Shape) String() string {
	var b strings.Builder
	for i := 0; i < s.rows; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j := 0; j < s.cols; j++ {
			if s.cells[i*s.cols+j] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// Cell is a (row, col) coordinate, either on the board or inside a shape.
type Cell struct {
	Row, Col int
}
