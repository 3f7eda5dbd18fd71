package puzzle

// Commands buffers listener notifications raised while the engine lock is
// held. They are flushed in order once the lock is released, so a listener
// can call back into the engine.
type Commands struct {
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues a listener notification.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of notifications waiting for Flush.
func (c *Commands) Len() int {
	return len(c.defers)
}

// Flush delivers queued notifications in the order they were deferred.
// Notifications deferred during Flush wait for the next call.
func (c *Commands) Flush() {
	defers := c.defers
	c.defers = nil
	for _, fn := range defers {
		fn()
	}
}
