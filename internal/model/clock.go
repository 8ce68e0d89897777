package model

import (
	"sync"
	"time"
)

// Clock accumulates elapsed think time for one side. There are no flag
// falls in this variant; the clock is informational.
type Clock struct {
	mu          sync.Mutex
	elapsed     time.Duration
	lastStarted time.Time
	isRunning   bool
}

func NewClock() *Clock {
	return &Clock{}
}

func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isRunning {
		c.lastStarted = time.Now()
		c.isRunning = true
	}
}

func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isRunning {
		c.elapsed += time.Since(c.lastStarted)
		c.isRunning = false
	}
}

func (c *Clock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isRunning {
		return c.elapsed + time.Since(c.lastStarted)
	}
	return c.elapsed
}
