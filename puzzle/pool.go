package puzzle

import (
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/kamstrup/intmap"
)

// Pool holds the pieces currently offered to the player, in display order.
// It does not cap its size; the engine keeps it at its configured target.
type Pool struct {
	rng     *rand.Rand
	nextID  int
	pieces  []*Piece
	byID    *intmap.Map[int, *Piece]
	refresh Job
}

// NewPool creates an empty pool drawing kinds and colors from rng.
func NewPool(rng *rand.Rand) *Pool {
	return &Pool{
		rng:    rng,
		nextID: 1,
		byID:   intmap.New[int, *Piece](8),
	}
}

// Reset empties the pool and stops periodic replenishment. Ids keep
// increasing across resets and are never reused.
func (p *Pool) Reset() {
	p.StopRefresh()
	p.clear()
}

func (p *Pool) clear() {
	for i := range p.pieces {
		p.pieces[i] = nil
	}
	p.pieces = p.pieces[:0]
	p.byID.Clear()
}

// GenerateRandomPiece appends a piece of a uniformly chosen kind.
func (p *Pool) GenerateRandomPiece() *Piece {
	kind := Kind(p.rng.IntN(int(kindCount)))
	return p.GenerateSpecificPiece(kind)
}

// GenerateSpecificPiece appends a piece of the given kind with a random color.
func (p *Pool) GenerateSpecificPiece(kind Kind) *Piece {
	c := color.RGBA{
		R: uint8(p.rng.IntN(256)),
		G: uint8(p.rng.IntN(256)),
		B: uint8(p.rng.IntN(256)),
		A: 255,
	}
	piece := NewPiece(p.nextID, kind, c)
	p.nextID++

	p.pieces = append(p.pieces, piece)
	p.byID.Put(piece.ID(), piece)
	return piece
}

// RemovePiece drops the given instance. Another piece with the same shape
// is unaffected. Removing a piece that is not offered is a no-op.
func (p *Pool) RemovePiece(piece *Piece) {
	for i, candidate := range p.pieces {
		if candidate == piece {
			p.pieces = append(p.pieces[:i], p.pieces[i+1:]...)
			p.byID.Del(piece.ID())
			return
		}
	}
}

// Refresh replaces the whole pool with n random pieces.
func (p *Pool) Refresh(n int) {
	if n < 0 {
		panic("refresh count must not be negative")
	}
	p.clear()
	for range n {
		p.GenerateRandomPiece()
	}
}

// Find returns the offered piece with the given id.
func (p *Pool) Find(id int) (*Piece, bool) {
	return p.byID.Get(id)
}

// Pieces returns the offered pieces in display order. The slice is a copy;
// the pieces are not.
func (p *Pool) Pieces() []*Piece {
	out := make([]*Piece, len(p.pieces))
	copy(out, p.pieces)
	return out
}

// Len returns the number of offered pieces.
func (p *Pool) Len() int {
	return len(p.pieces)
}

// StartRefresh registers fn with clock to run every interval, replacing any
// previous replenishment job. fn is expected to call Refresh under whatever
// lock guards the pool.
func (p *Pool) StartRefresh(clock Clock, interval time.Duration, fn func()) {
	p.StopRefresh()
	p.refresh = clock.Every("pool-refresh", interval, fn)
}

// StopRefresh halts periodic replenishment if it is running.
func (p *Pool) StopRefresh() {
	if p.refresh != nil {
		p.refresh.Stop()
		p.refresh = nil
	}
}

// Refreshing reports whether a replenishment job is registered.
func (p *Pool) Refreshing() bool {
	return p.refresh != nil
}

func (p *Pool) views() []PieceView {
	out := make([]PieceView, len(p.pieces))
	for i, piece := range p.pieces {
		out[i] = piece.view()
	}
	return out
}
