package main

import (
	"sync"

	"github.com/plus3/pentomino/puzzle"
)

// uiUpdate is everything the engine reported since the last frame.
type uiUpdate struct {
	Seconds   int
	Restarted bool
	Ended     *puzzle.Outcome
}

// uiEvents collects engine notifications from any goroutine until the game
// loop drains them in Update.
type uiEvents struct {
	mu      sync.Mutex
	dirty   bool
	pending uiUpdate
}

var _ puzzle.Listener = (*uiEvents)(nil)

func (u *uiEvents) mark(fn func(*uiUpdate)) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.dirty = true
	if fn != nil {
		fn(&u.pending)
	}
}

func (u *uiEvents) OnBoardChanged() { u.mark(nil) }
func (u *uiEvents) OnPoolChanged()  { u.mark(nil) }

func (u *uiEvents) OnTimeUpdated(seconds int) {
	u.mark(func(p *uiUpdate) { p.Seconds = seconds })
}

func (u *uiEvents) OnGameEnded(didWin bool, message string) {
	u.mark(func(p *uiUpdate) { p.Ended = &puzzle.Outcome{Won: didWin, Message: message} })
}

func (u *uiEvents) OnGameRestarted() {
	u.mark(func(p *uiUpdate) {
		p.Restarted = true
		p.Ended = nil
	})
}

// drain returns the pending update and whether anything changed. Seconds
// carries over so a frame without a tick keeps the last value.
func (u *uiEvents) drain() (uiUpdate, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.dirty {
		return uiUpdate{Seconds: u.pending.Seconds}, false
	}
	update := u.pending
	u.pending = uiUpdate{Seconds: update.Seconds}
	u.dirty = false
	return update, true
}
