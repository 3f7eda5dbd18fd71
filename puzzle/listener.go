package puzzle

// Listener receives engine notifications. Calls happen after the engine
// has released its lock, on whichever goroutine caused the change: the
// caller of StartGame or AttemptPlace, or a clock goroutine for ticks.
// Implementations should return quickly and re-read state through the
// engine accessors.
type Listener interface {
	OnBoardChanged()
	OnPoolChanged()
	OnTimeUpdated(secondsRemaining int)
	OnGameEnded(didWin bool, message string)
	OnGameRestarted()
}

// NopListener ignores every notification.
type NopListener struct{}

func (NopListener) OnBoardChanged()          {}
func (NopListener) OnPoolChanged()           {}
func (NopListener) OnTimeUpdated(int)        {}
func (NopListener) OnGameEnded(bool, string) {}
func (NopListener) OnGameRestarted()         {}

// ListenerFuncs adapts plain functions to a Listener. Nil fields are skipped.
type ListenerFuncs struct {
	BoardChanged  func()
	PoolChanged   func()
	TimeUpdated   func(secondsRemaining int)
	GameEnded     func(didWin bool, message string)
	GameRestarted func()
}

func (l ListenerFuncs) OnBoardChanged() {
	if l.BoardChanged != nil {
		l.BoardChanged()
	}
}

func (l ListenerFuncs) OnPoolChanged() {
	if l.PoolChanged != nil {
		l.PoolChanged()
	}
}

func (l ListenerFuncs) OnTimeUpdated(secondsRemaining int) {
	if l.TimeUpdated != nil {
		l.TimeUpdated(secondsRemaining)
	}
}

func (l ListenerFuncs) OnGameEnded(didWin bool, message string) {
	if l.GameEnded != nil {
		l.GameEnded(didWin, message)
	}
}

func (l ListenerFuncs) OnGameRestarted() {
	if l.GameRestarted != nil {
		l.GameRestarted()
	}
}
