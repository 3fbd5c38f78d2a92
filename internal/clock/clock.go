// Package clock implements the per-side countdown timer. A single background
// goroutine decrements the active color's remaining seconds once per tick;
// the counters and active color are guarded by one mutex shared with the
// turn-processing path.
package clock

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/MVS-Jaithra/chess-game/internal/shared"
)

// Clock tracks the remaining seconds for both colors. The zero value is not
// usable; construct with New.
type Clock struct {
	mu        sync.Mutex
	remaining [2]int
	active    shared.Color

	initial  int
	interval time.Duration

	running atomic.Bool
	quit    chan struct{}
	done    chan struct{}
}

// New returns a stopped clock with seconds on each side and white active.
func New(seconds int) *Clock {
	return &Clock{
		remaining: [2]int{seconds, seconds},
		active:    shared.White,
		initial:   seconds,
		interval:  time.Second,
	}
}

// Start launches the decrement goroutine. Starting a running clock is a
// no-op.
func (c *Clock) Start() {
	if !c.running.CompareAndSwap(false, true) {
		return
	}
	c.quit = make(chan struct{})
	c.done = make(chan struct{})
	go c.run(c.quit, c.done)
}

// Stop halts the decrement goroutine and waits for it to exit: after Stop
// returns no further decrement can fire. Stop is idempotent.
func (c *Clock) Stop() {
	if !c.running.CompareAndSwap(true, false) {
		return
	}
	close(c.quit)
	<-c.done
}

func (c *Clock) run(quit <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
			c.tick()
		}
	}
}

// tick decrements the active side, clamped at zero.
func (c *Clock) tick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if idx := c.active.Index(); c.remaining[idx] > 0 {
		c.remaining[idx]--
	}
}

// SwitchPlayer changes which color is being decremented without stopping the
// ticker.
func (c *Clock) SwitchPlayer() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = c.active.Opposite()
}

// Active reports the color currently being decremented.
func (c *Clock) Active() shared.Color {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Remaining reports color's remaining seconds.
func (c *Clock) Remaining(color shared.Color) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining[color.Index()]
}

// FlagFallen reports whether color has run out of time. Flag-fall is
// advisory: it never rejects a move by itself.
func (c *Clock) FlagFallen(color shared.Color) bool {
	return c.Remaining(color) == 0
}

// Reset restores both counters to the configured initial seconds and makes
// white active again. The ticker, if running, keeps running.
func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remaining[shared.White.Index()] = c.initial
	c.remaining[shared.Black.Index()] = c.initial
	c.active = shared.White
}
