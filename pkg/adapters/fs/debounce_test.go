package fs

import (
	"sync"
	"testing"
	"time"

	"github.com/jotkit/jot/pkg/core"
)

type eventRecorder struct {
	mu     sync.Mutex
	events []core.Event
}

func (r *eventRecorder) record(e core.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *eventRecorder) all() []core.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]core.Event(nil), r.events...)
}

func TestDebouncer(t *testing.T) {
	t.Run("Burst Collapses To Latest", func(t *testing.T) {
		d := newDebouncer(30 * time.Millisecond)
		rec := &eventRecorder{}

		for i := 0; i < 5; i++ {
			d.add(core.Event{Type: core.EventSlotChanged, Timestamp: int64(i)}, rec.record)
		}

		time.Sleep(100 * time.Millisecond)

		got := rec.all()
		if len(got) != 1 {
			t.Fatalf("expected 1 event, got %d", len(got))
		}
		if got[0].Timestamp != 4 {
			t.Errorf("expected latest event, got timestamp %d", got[0].Timestamp)
		}
	})

	t.Run("Separate Bursts Emit Separately", func(t *testing.T) {
		d := newDebouncer(20 * time.Millisecond)
		rec := &eventRecorder{}

		d.add(core.Event{Timestamp: 1}, rec.record)
		time.Sleep(60 * time.Millisecond)
		d.add(core.Event{Timestamp: 2}, rec.record)
		time.Sleep(60 * time.Millisecond)

		if got := rec.all(); len(got) != 2 {
			t.Errorf("expected 2 events, got %d", len(got))
		}
	})

	t.Run("StopAndWait Drops Pending", func(t *testing.T) {
		d := newDebouncer(50 * time.Millisecond)
		rec := &eventRecorder{}

		d.add(core.Event{Timestamp: 1}, rec.record)
		d.stopAndWait(time.Second)

		time.Sleep(80 * time.Millisecond)
		if got := rec.all(); len(got) != 0 {
			t.Errorf("pending event fired after stop: %v", got)
		}

		// Adds after stop are rejected.
		d.add(core.Event{Timestamp: 2}, rec.record)
		time.Sleep(80 * time.Millisecond)
		if got := rec.all(); len(got) != 0 {
			t.Errorf("event accepted after stop: %v", got)
		}
	})
}
