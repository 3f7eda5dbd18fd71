package puzzle

import (
	"sync"
	"time"
)

// Job is a periodic callback registered with a Clock.
type Job interface {
	// Stop prevents any future firing. It does not wait for a callback
	// that is already running, so a job may stop itself.
	Stop()
}

// Clock schedules periodic callbacks. The engine owns all of its timers
// through a Clock so tests can swap in virtual time.
type Clock interface {
	Every(name string, interval time.Duration, fn func()) Job
}

// ManualClock is a Clock driven by Advance. Nothing fires on its own.
type ManualClock struct {
	mu   sync.Mutex
	now  time.Duration
	seq  int
	jobs []*manualJob
}

type manualJob struct {
	clock    *ManualClock
	name     string
	seq      int
	interval time.Duration
	next     time.Duration
	fn       func()
	stopped  bool
}

// NewManualClock creates a clock at virtual time zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Every registers fn to run each interval of virtual time, first at Now()+interval.
func (c *ManualClock) Every(name string, interval time.Duration, fn func()) Job {
	if interval <= 0 {
		panic("clock interval must be positive")
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	j := &manualJob{
		clock:    c,
		name:     name,
		seq:      c.seq,
		interval: interval,
		next:     c.now + interval,
		fn:       fn,
	}
	c.jobs = append(c.jobs, j)
	return j
}

// Stop removes the job from the clock.
func (j *manualJob) Stop() {
	j.clock.mu.Lock()
	defer j.clock.mu.Unlock()

	if j.stopped {
		return
	}
	j.stopped = true
	for i, other := range j.clock.jobs {
		if other == j {
			j.clock.jobs = append(j.clock.jobs[:i], j.clock.jobs[i+1:]...)
			break
		}
	}
}

// Advance moves virtual time forward by d, firing every due job in
// deadline order. Jobs sharing a deadline fire in registration order.
// Callbacks run without the clock lock held.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	for {
		j := c.nextDueLocked(target)
		if j == nil {
			break
		}
		c.now = j.next
		j.next += j.interval
		fn := j.fn

		c.mu.Unlock()
		fn()
		c.mu.Lock()
	}
	c.now = target
	c.mu.Unlock()
}

func (c *ManualClock) nextDueLocked(target time.Duration) *manualJob {
	var due *manualJob
	for _, j := range c.jobs {
		if j.next > target {
			continue
		}
		if due == nil || j.next < due.next || (j.next == due.next && j.seq < due.seq) {
			due = j
		}
	}
	return due
}

// Now returns the elapsed virtual time.
func (c *ManualClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Pending returns the names of active jobs in registration order.
func (c *ManualClock) Pending() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := make([]string, len(c.jobs))
	for i, j := range c.jobs {
		names[i] = j.name
	}
	return names
}
