package puzzle_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/plus3/pentomino/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualClock(t *testing.T) {
	t.Run("fires in deadline then registration order", func(t *testing.T) {
		clock := puzzle.NewManualClock()
		var order []string

		clock.Every("slow", 2*time.Second, func() { order = append(order, "slow") })
		clock.Every("fast", time.Second, func() { order = append(order, "fast") })

		clock.Advance(4 * time.Second)

		assert.Equal(t, []string{"fast", "slow", "fast", "fast", "slow", "fast"}, order)
		assert.Equal(t, 4*time.Second, clock.Now())
	})

	t.Run("partial advances accumulate", func(t *testing.T) {
		clock := puzzle.NewManualClock()
		fired := 0
		clock.Every("tick", time.Second, func() { fired++ })

		for range 4 {
			clock.Advance(250 * time.Millisecond)
		}
		assert.Equal(t, 1, fired)
	})

	t.Run("job can stop itself", func(t *testing.T) {
		clock := puzzle.NewManualClock()
		fired := 0
		var job puzzle.Job
		job = clock.Every("once", time.Second, func() {
			fired++
			job.Stop()
		})

		clock.Advance(5 * time.Second)

		assert.Equal(t, 1, fired)
		assert.Empty(t, clock.Pending())
	})

	t.Run("stop from another job takes effect immediately", func(t *testing.T) {
		clock := puzzle.NewManualClock()
		var victim puzzle.Job
		victimFired := 0

		clock.Every("killer", time.Second, func() { victim.Stop() })
		victim = clock.Every("victim", time.Second, func() { victimFired++ })

		clock.Advance(3 * time.Second)

		assert.Equal(t, 0, victimFired)
		assert.Equal(t, []string{"killer"}, clock.Pending())
	})

	t.Run("jobs registered in a callback start from the current time", func(t *testing.T) {
		clock := puzzle.NewManualClock()
		childFired := 0
		var parent puzzle.Job
		parent = clock.Every("parent", 5*time.Second, func() {
			parent.Stop()
			clock.Every("child", time.Second, func() { childFired++ })
		})

		clock.Advance(7 * time.Second)

		assert.Equal(t, 2, childFired)
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		clock := puzzle.NewManualClock()
		job := clock.Every("tick", time.Second, func() {})
		job.Stop()
		job.Stop()
		assert.Empty(t, clock.Pending())
	})
}

func TestScheduler(t *testing.T) {
	t.Run("runs jobs and records stats", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		scheduler := puzzle.NewScheduler(ctx)
		job := scheduler.Every("tick", time.Millisecond, func() {})

		require.Eventually(t, func() bool {
			return scheduler.GetStats().TotalExecutions >= 3
		}, time.Second, time.Millisecond)
		job.Stop()

		stats := scheduler.GetStats()
		require.Equal(t, 1, stats.JobCount)
		assert.Equal(t, 0, stats.ActiveJobs)
		assert.Equal(t, "tick", stats.Jobs[0].Name)
		assert.Equal(t, time.Millisecond, stats.Jobs[0].Interval)
		assert.GreaterOrEqual(t, stats.Jobs[0].ExecutionCount, int64(3))
		assert.Equal(t, stats.Jobs[0].ExecutionCount, stats.TotalExecutions)
		assert.LessOrEqual(t, stats.Jobs[0].MinDuration, stats.Jobs[0].MaxDuration)
	})

	t.Run("stopped job does not fire again", func(t *testing.T) {
		scheduler := puzzle.NewScheduler(context.Background())
		var fired atomic.Int64
		job := scheduler.Every("tick", time.Millisecond, func() { fired.Add(1) })

		require.Eventually(t, func() bool { return fired.Load() >= 1 }, time.Second, time.Millisecond)
		job.Stop()
		job.Stop()

		// allow an in-flight callback to finish
		time.Sleep(5 * time.Millisecond)
		settled := fired.Load()
		time.Sleep(20 * time.Millisecond)
		assert.Equal(t, settled, fired.Load())
	})

	t.Run("context cancellation stops all jobs", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		scheduler := puzzle.NewScheduler(ctx)
		scheduler.Every("a", time.Millisecond, func() {})
		scheduler.Every("b", time.Millisecond, func() {})

		cancel()

		require.Eventually(t, func() bool {
			return scheduler.GetStats().ActiveJobs == 0
		}, time.Second, time.Millisecond)
	})

	t.Run("prune forgets stopped jobs", func(t *testing.T) {
		scheduler := puzzle.NewScheduler(context.Background())
		stopped := scheduler.Every("old", time.Hour, func() {})
		live := scheduler.Every("live", time.Hour, func() {})
		defer live.Stop()
		stopped.Stop()

		scheduler.Prune()

		stats := scheduler.GetStats()
		require.Equal(t, 1, stats.JobCount)
		assert.Equal(t, "live", stats.Jobs[0].Name)
		assert.Equal(t, time.Duration(0), stats.Jobs[0].MinDuration)
	})
}
