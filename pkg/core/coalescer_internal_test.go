package core

import (
	"context"
	"testing"
	"time"
)

type nopGateway struct{}

func (nopGateway) Load(context.Context) []Note  { return nil }
func (nopGateway) Save(context.Context, []Note) {}

// A timer that already fired when Schedule re-arms must not clear the
// new handle when its callback finally runs; Pending would otherwise
// report idle while a write is still scheduled.
func TestScheduleKeepsRearmedTimerHandle(t *testing.T) {
	c := NewCoalescer(nopGateway{}, 10*time.Millisecond, nil)
	defer c.Stop()

	c.Schedule([]Note{{ID: "n"}})

	// Hold the lock so the fired callback parks before touching
	// c.timer, then swap in a new handle as a concurrent Schedule
	// would.
	c.mu.Lock()
	time.Sleep(30 * time.Millisecond)
	rearmed := time.AfterFunc(time.Hour, func() {})
	defer rearmed.Stop()
	c.timer = rearmed
	c.mu.Unlock()

	time.Sleep(30 * time.Millisecond)
	if !c.Pending() {
		t.Fatal("stale timer callback cleared the rearmed handle")
	}
}
