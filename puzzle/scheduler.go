package puzzle

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	JobCount        int
	ActiveJobs      int
	TotalExecutions int64
	Jobs            []JobStats
}

// JobStats provides execution statistics for a single job.
type JobStats struct {
	Name           string
	Interval       time.Duration
	Active         bool
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type jobStatsInternal struct {
	name           string
	interval       time.Duration
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler is a real-time Clock. Every job runs on its own goroutine
// driven by a ticker until it is stopped or the context is cancelled.
type Scheduler struct {
	ctx  context.Context
	mu   sync.Mutex
	jobs []*tickerJob
}

type tickerJob struct {
	scheduler *Scheduler
	fn        func()
	stopped   atomic.Bool
	stopChan  chan struct{}
	stopOnce  sync.Once
	stats     *jobStatsInternal
}

// NewScheduler creates a scheduler whose jobs end when ctx is done.
func NewScheduler(ctx context.Context) *Scheduler {
	return &Scheduler{
		ctx:  ctx,
		jobs: make([]*tickerJob, 0),
	}
}

// Every starts a job that calls fn once per interval.
func (s *Scheduler) Every(name string, interval time.Duration, fn func()) Job {
	if interval <= 0 {
		panic("clock interval must be positive")
	}
	j := &tickerJob{
		scheduler: s,
		fn:        fn,
		stopChan:  make(chan struct{}),
		stats: &jobStatsInternal{
			name:        name,
			interval:    interval,
			minDuration: time.Duration(1<<63 - 1),
		},
	}

	s.mu.Lock()
	s.jobs = append(s.jobs, j)
	s.mu.Unlock()

	go j.run(s.ctx, interval)
	return j
}

func (j *tickerJob) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.stopped.Store(true)
			return
		case <-j.stopChan:
			return
		case <-ticker.C:
			// select picks randomly among ready cases, so a tick that races
			// Stop must be dropped here
			if j.stopped.Load() {
				return
			}
			start := time.Now()
			j.fn()
			j.record(time.Since(start))
		}
	}
}

func (j *tickerJob) record(duration time.Duration) {
	j.scheduler.mu.Lock()
	defer j.scheduler.mu.Unlock()

	stats := j.stats
	stats.executionCount++
	stats.lastDuration = duration
	stats.totalDuration += duration

	if duration < stats.minDuration {
		stats.minDuration = duration
	}
	if duration > stats.maxDuration {
		stats.maxDuration = duration
	}
}

// Stop halts the job. Safe to call more than once and from inside fn.
func (j *tickerJob) Stop() {
	j.stopOnce.Do(func() {
		j.stopped.Store(true)
		close(j.stopChan)
	})
}

// GetStats returns statistics about job execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := &SchedulerStats{
		JobCount: len(s.jobs),
		Jobs:     make([]JobStats, len(s.jobs)),
	}

	var totalExecs int64
	for i, j := range s.jobs {
		internal := j.stats
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}
		active := !j.stopped.Load()
		if active {
			stats.ActiveJobs++
		}

		stats.Jobs[i] = JobStats{
			Name:           internal.name,
			Interval:       internal.interval,
			Active:         active,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}

// Prune forgets stopped jobs so long sessions do not accumulate history.
func (s *Scheduler) Prune() {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := s.jobs[:0]
	for _, j := range s.jobs {
		if !j.stopped.Load() {
			active = append(active, j)
		}
	}
	for i := len(active); i < len(s.jobs); i++ {
		s.jobs[i] = nil
	}
	s.jobs = active
}
