package puzzle

import "image/color"

// Piece is one offered instance of a pentomino. Its orientation changes
// through rotation; id, kind and color are fixed at creation.
type Piece struct {
	id    int
	kind  Kind
	color color.RGBA
	shape Shape
}

// NewPiece creates a piece of the given kind in its base orientation.
// Ids must be positive; the pool hands them out from its own counter.
func NewPiece(id int, kind Kind, c color.RGBA) *Piece {
	if id <= 0 {
		panic("piece id must be positive")
	}
	return &Piece{
		id:    id,
		kind:  kind,
		color: c,
		shape: BaseShape(kind),
	}
}

func (p *Piece) ID() int           { return p.id }
func (p *Piece) Kind() Kind        { return p.kind }
func (p *Piece) Color() color.RGBA { return p.color }

// Shape returns the current orientation.
func (p *Piece) Shape() Shape { return p.shape }

// RotateClockwise turns the piece 90° clockwise.
func (p *Piece) RotateClockwise() {
	p.shape = p.shape.RotateClockwise()
}

// RotateCounterClockwise is defined as three clockwise turns so that both
// directions always land on bit-identical matrices.
func (p *Piece) RotateCounterClockwise() {
	p.RotateClockwise()
	p.RotateClockwise()
	p.RotateClockwise()
}

// PieceView is a read-only copy of a piece handed to presentation code.
type PieceView struct {
	ID    int
	Kind  Kind
	Color color.RGBA
	Shape Shape
}

func (p *Piece) view() PieceView {
	return PieceView{ID: p.id, Kind: p.kind, Color: p.color, Shape: p.shape}
}
