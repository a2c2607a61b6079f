package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// SlotState exposes internal state for observability.
type SlotState struct {
	Path          string     `json:"path"`
	WatcherActive bool       `json:"watcher_active"`
	LastSaved     *time.Time `json:"last_saved,omitempty"`
	LastError     string     `json:"last_error,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Slot) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := SlotState{
		Path:          s.Path,
		WatcherActive: s.watcherActive,
		LastSaved:     s.lastSaved,
	}
	if s.lastErr != nil {
		state.LastError = s.lastErr.Error()
	}
	return state
}

// ComponentType implements introspection.Component.
func (s *Slot) ComponentType() string {
	return "slot"
}

var _ introspection.Introspectable = (*Slot)(nil)
var _ introspection.Component = (*Slot)(nil)
