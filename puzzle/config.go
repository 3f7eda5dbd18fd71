package puzzle

import (
	"errors"
	"fmt"
	"time"
)

const (
	DefaultCountdown       = 300
	DefaultTickInterval    = time.Second
	DefaultRefreshInterval = 10 * time.Second
	DefaultPoolSize        = 3
)

// ErrInvalidConfig is wrapped by every Config validation error.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the tunable game constants. The board is always BoardSize.
type Config struct {
	// Countdown is the number of ticks before the game is lost on time.
	Countdown int
	// TickInterval is the period of the countdown clock.
	TickInterval time.Duration
	// RefreshInterval is the period of pool replenishment.
	RefreshInterval time.Duration
	// PoolSize is the number of pieces offered after each settling event.
	PoolSize int
}

// DefaultConfig returns the standard game: 300 one-second ticks, a pool of
// three refreshed every ten seconds.
func DefaultConfig() Config {
	return Config{
		Countdown:       DefaultCountdown,
		TickInterval:    DefaultTickInterval,
		RefreshInterval: DefaultRefreshInterval,
		PoolSize:        DefaultPoolSize,
	}
}

// Validate checks that every field is usable.
func (c Config) Validate() error {
	if c.Countdown <= 0 {
		return fmt.Errorf("%w: countdown must be positive, got %d", ErrInvalidConfig, c.Countdown)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval must be positive, got %s", ErrInvalidConfig, c.TickInterval)
	}
	if c.RefreshInterval <= 0 {
		return fmt.Errorf("%w: refresh interval must be positive, got %s", ErrInvalidConfig, c.RefreshInterval)
	}
	if c.PoolSize <= 0 {
		return fmt.Errorf("%w: pool size must be positive, got %d", ErrInvalidConfig, c.PoolSize)
	}
	return nil
}
