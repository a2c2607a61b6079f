package core

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	NoteCount   int    `json:"note_count"`
	ActiveID    string `json:"active_id,omitempty"`
	SearchQuery string `json:"search_query,omitempty"`
	Dirty       bool   `json:"dirty"`
	PendingSave bool   `json:"pending_save"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return StoreState{
		NoteCount:   len(s.notes),
		ActiveID:    s.activeID,
		SearchQuery: s.searchQuery,
		Dirty:       s.dirty,
		PendingSave: s.coalescer.Pending(),
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
