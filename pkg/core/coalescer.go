package core

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultQuietPeriod is how long the coalescer waits after the last
// mutation before persisting.
const DefaultQuietPeriod = 300 * time.Millisecond

// Coalescer batches bursts of in-memory mutations into a single durable
// write. Schedule cancels-then-rearms the timer with the latest
// snapshot, so only the most recent snapshot is ever persisted;
// intermediate snapshots are discarded.
//
// The pending timer is an explicitly owned handle: the coalescer is
// either idle (timer == nil) or pending (timer armed). Stop cancels the
// handle unconditionally so no write can fire after teardown.
type Coalescer struct {
	mu      sync.Mutex
	quiet   time.Duration
	gateway Gateway
	logger  *slog.Logger
	timer   *time.Timer
	stopped bool
}

// NewCoalescer creates a Coalescer flushing to the given gateway.
// A non-positive quiet period falls back to DefaultQuietPeriod.
func NewCoalescer(gateway Gateway, quiet time.Duration, logger *slog.Logger) *Coalescer {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	return &Coalescer{
		quiet:   quiet,
		gateway: gateway,
		logger:  logger,
	}
}

// Schedule arms the quiet-period timer with the given snapshot,
// cancelling any previously armed timer. The snapshot must not be
// mutated by the caller afterwards.
func (c *Coalescer) Schedule(notes []Note) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(c.quiet, func() {
		c.mu.Lock()
		// A callback from an already-fired, superseded timer must not
		// clear the handle of the one armed after it.
		if c.timer == t {
			c.timer = nil
		}
		stopped := c.stopped
		c.mu.Unlock()
		if stopped {
			return
		}
		if c.logger != nil {
			c.logger.Debug("quiet period elapsed, persisting snapshot", "notes", len(notes))
		}
		c.gateway.Save(context.Background(), notes)
	})
	c.timer = t
}

// Flush bypasses the timer and persists the snapshot immediately,
// cancelling any pending write. Used by the explicit save path and by
// Store teardown.
func (c *Coalescer) Flush(ctx context.Context, notes []Note) {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()

	c.gateway.Save(ctx, notes)
}

// Pending reports whether a write is currently scheduled.
func (c *Coalescer) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timer != nil
}

// Stop cancels any pending timer and rejects further scheduling.
// It does not flush; callers that need durability flush first.
func (c *Coalescer) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopped = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
