package fs

import (
	"sync"
	"time"

	"github.com/jotkit/jot/pkg/core"
)

// debouncer collapses bursts of events into the most recent one.
// add cancels-then-rearms the delay timer; only the latest event
// reaches the emit callback once the burst goes quiet.
type debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay}
}

// add schedules emit(e) after the delay, replacing any event still
// waiting. Calls after stopAndWait are dropped.
func (d *debouncer) add(e core.Event, emit func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		if d.timer.Stop() {
			// Cancelled before firing; its callback will never run.
			d.wg.Done()
		}
	}

	d.wg.Add(1)
	var t *time.Timer
	t = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()
		d.mu.Lock()
		if d.timer == t {
			d.timer = nil
		}
		stopped := d.stopped
		d.mu.Unlock()
		if stopped {
			return
		}
		emit(e)
	})
	d.timer = t
}

// stopAndWait stops accepting events, cancels any pending timer, and
// waits for in-flight callbacks to complete, up to the given timeout.
// Called on worker shutdown so nothing fires into a closing channel.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	if d.timer != nil {
		if d.timer.Stop() {
			d.wg.Done()
		}
		d.timer = nil
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
	}
}
