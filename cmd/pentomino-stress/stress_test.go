package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/pentomino/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayGameFinishes(t *testing.T) {
	for _, random := range []bool{false, true} {
		result, err := PlayGame(GameOptions{
			Config: puzzle.DefaultConfig(),
			Seed:   42,
			Think:  time.Second,
			Random: random,
			Rotate: true,
		})
		require.NoError(t, err)

		assert.NotEmpty(t, result.GameID)
		assert.NotEmpty(t, result.Outcome.Message)
		assert.Greater(t, result.Placements, 0)
		assert.Len(t, result.MoveTimes, result.Placements)
		assert.LessOrEqual(t, result.VirtualTime, time.Duration(puzzle.DefaultCountdown)*time.Second)
	}
}

func TestPlayGameIsReproducible(t *testing.T) {
	opts := GameOptions{
		Config: puzzle.DefaultConfig(),
		Seed:   7,
		Think:  time.Second,
		Random: true,
	}

	a, err := PlayGame(opts)
	require.NoError(t, err)
	b, err := PlayGame(opts)
	require.NoError(t, err)

	assert.Equal(t, a.Outcome, b.Outcome)
	assert.Equal(t, a.Placements, b.Placements)
	assert.Equal(t, a.VirtualTime, b.VirtualTime)
	assert.NotEqual(t, a.GameID, b.GameID)
}

func TestSticksScenarioWins(t *testing.T) {
	result, err := PlayGame(GameOptions{
		Config:   puzzle.DefaultConfig(),
		Seed:     1,
		Think:    time.Second,
		Scenario: scenarios["sticks"],
	})
	require.NoError(t, err)

	assert.Equal(t, puzzle.Outcome{Won: true, Message: puzzle.MessageGridComplete}, result.Outcome)
	assert.Equal(t, 20, result.Placements)
	assert.Equal(t, time.Duration(0), result.VirtualTime)
}

func TestShortCountdownExpires(t *testing.T) {
	cfg := puzzle.DefaultConfig()
	cfg.Countdown = 2

	result, err := PlayGame(GameOptions{Config: cfg, Seed: 3, Think: time.Second})
	require.NoError(t, err)

	assert.Equal(t, puzzle.Outcome{Won: false, Message: puzzle.MessageTimeExpired}, result.Outcome)
	assert.Equal(t, 0, result.Remaining)
	assert.Equal(t, 2*time.Second, result.VirtualTime)
}

func TestReportGenerate(t *testing.T) {
	report := NewReport(puzzle.DefaultConfig(), 2, 10, time.Second)
	report.Strategy = strategyName(false, true)
	report.Add(GameResult{
		GameID:      "winner",
		Outcome:     puzzle.Outcome{Won: true, Message: puzzle.MessageGridComplete},
		Placements:  20,
		VirtualTime: 40 * time.Second,
		MoveTimes:   []time.Duration{time.Microsecond, 3 * time.Microsecond},
	})
	report.Add(GameResult{
		GameID:      "loser",
		Outcome:     puzzle.Outcome{Message: puzzle.MessageNoMoreMoves},
		Placements:  10,
		VirtualTime: 20 * time.Second,
	})
	report.Finalize()

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	out := buf.String()

	assert.Contains(t, out, "- **Games:** 2 (seeds 10..11)")
	assert.Contains(t, out, "- **Strategy:** first-fit+rotate")
	assert.Contains(t, out, "- **Won:** 1 (50.0%)")
	assert.Contains(t, out, "  - Grid Complete! 1\n")
	assert.Contains(t, out, "  - No More Moves! 1\n")
	assert.Contains(t, out, "- **Fastest Win:** winner in 40s")
	assert.Contains(t, out, "avg 15.0, min 10, max 20")
	assert.Contains(t, out, "- **Avg:** 2µs")
	assert.NotContains(t, out, "Scenario")
}

func TestIntStatsFinalizeEmpty(t *testing.T) {
	var s IntStats
	s.Finalize()
	assert.Equal(t, IntStats{}, s)
}
