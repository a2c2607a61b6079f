package core

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"
)

// StoreConfig configures a Store.
type StoreConfig struct {
	// QuietPeriod is the coalescer delay; zero means DefaultQuietPeriod.
	QuietPeriod time.Duration
	Logger      *slog.Logger
}

// Store owns the in-memory note collection for the process lifetime and
// is the only entity that mutates it. Every mutation replaces the
// affected Note with an updated copy, stamps UpdatedAt, and hands a
// snapshot to the write coalescer.
type Store struct {
	mu        sync.RWMutex
	gateway   Gateway
	coalescer *Coalescer
	logger    *slog.Logger

	notes       []Note // insertion order, unique by ID
	activeID    string // empty means no active note
	searchQuery string // trimmed, case-folded
	dirty       bool

	now func() time.Time
}

// NewStore creates a Store seeded from the gateway. If the loaded
// collection is non-empty, the first note becomes active.
func NewStore(ctx context.Context, gateway Gateway, cfg StoreConfig) *Store {
	s := &Store{
		gateway:   gateway,
		coalescer: NewCoalescer(gateway, cfg.QuietPeriod, cfg.Logger),
		logger:    cfg.Logger,
		notes:     gateway.Load(ctx),
		now:       time.Now,
	}
	if len(s.notes) > 0 {
		s.activeID = s.notes[0].ID
	}
	return s
}

// CreateNote allocates an empty note, prepends it to the collection,
// makes it active, and schedules a write. Never fails.
func (s *Store) CreateNote() Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := Note{
		ID:        NewID(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.notes = append([]Note{n}, s.notes...)
	s.activeID = n.ID

	if s.logger != nil {
		s.logger.Debug("note created", "id", n.ID)
	}
	s.scheduleLocked()
	return n
}

// UpdateNote merges the patch into the note with the given id and
// refreshes UpdatedAt. Unknown ids are a no-op. Identity (ID,
// CreatedAt) is never overwritten; Patch cannot express it.
func (s *Store) UpdateNote(id string, p Patch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfLocked(id)
	if i < 0 {
		return
	}
	updated := p.apply(s.notes[i])
	updated.UpdatedAt = s.now()
	s.notes[i] = updated

	s.scheduleLocked()
}

// DeleteNote removes the note with the given id. Unknown ids are a
// no-op. If the deleted note was active, the remaining note with the
// most recent UpdatedAt becomes active (first in collection order on
// ties), or none if the collection is now empty.
func (s *Store) DeleteNote(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfLocked(id)
	if i < 0 {
		return
	}
	s.notes = append(s.notes[:i:i], s.notes[i+1:]...)

	if s.activeID == id {
		s.activeID = ""
		best := -1
		for j, n := range s.notes {
			if best < 0 || n.UpdatedAt.After(s.notes[best].UpdatedAt) {
				best = j
			}
		}
		if best >= 0 {
			s.activeID = s.notes[best].ID
		}
	}

	if s.logger != nil {
		s.logger.Debug("note deleted", "id", id, "active", s.activeID)
	}
	s.scheduleLocked()
}

// TogglePin flips the pinned flag of the note with the given id.
func (s *Store) TogglePin(id string) {
	s.mu.Lock()
	var pinned bool
	if i := s.indexOfLocked(id); i >= 0 {
		pinned = !s.notes[i].Pinned
	}
	s.mu.Unlock()

	s.UpdateNote(id, Patch{Pinned: &pinned})
}

// SelectNote makes the note with the given id active. Unknown ids leave
// the pointer unchanged.
func (s *Store) SelectNote(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOfLocked(id) >= 0 {
		s.activeID = id
	}
}

// SetSearchQuery stores the trimmed, case-folded query. The collection
// itself is untouched.
func (s *Store) SetSearchQuery(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = strings.ToLower(strings.TrimSpace(text))
}

// SearchQuery returns the normalized query currently applied.
func (s *Store) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchQuery
}

// VisibleNotes derives the display list: pinned notes first, each
// partition ordered by UpdatedAt descending with collection order
// breaking ties, then filtered by the search query. Filtering happens
// after the sort so relative order among matches is preserved.
func (s *Store) VisibleNotes() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var pinned, unpinned []Note
	for _, n := range s.notes {
		if n.Pinned {
			pinned = append(pinned, n)
		} else {
			unpinned = append(unpinned, n)
		}
	}
	// Stability is a correctness requirement here: ties must keep
	// collection order.
	byRecency := func(notes []Note) {
		sort.SliceStable(notes, func(i, j int) bool {
			return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
		})
	}
	byRecency(pinned)
	byRecency(unpinned)

	ordered := append(pinned, unpinned...)
	if s.searchQuery == "" {
		return ordered
	}

	var visible []Note
	for _, n := range ordered {
		if n.Matches(s.searchQuery) {
			visible = append(visible, n)
		}
	}
	return visible
}

// Notes returns a snapshot of the collection in insertion order.
func (s *Store) Notes() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// ActiveNote returns the currently focused note, if any.
func (s *Store) ActiveNote() (Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.activeID == "" {
		return Note{}, false
	}
	if i := s.indexOfLocked(s.activeID); i >= 0 {
		return s.notes[i], true
	}
	return Note{}, false
}

// Get returns the note with the given id, if present.
func (s *Store) Get(id string) (Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOfLocked(id); i >= 0 {
		return s.notes[i], true
	}
	return Note{}, false
}

// Len returns the collection size.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

// ManualSave bypasses the coalescer and persists the current snapshot
// immediately. Used by the explicit save shortcut.
func (s *Store) ManualSave(ctx context.Context) {
	s.mu.Lock()
	snapshot := s.snapshotLocked()
	s.dirty = false
	s.mu.Unlock()

	s.coalescer.Flush(ctx, snapshot)
}

// Reload re-seeds the collection from the gateway, e.g. after the slot
// changed externally. The active pointer survives when its note does;
// otherwise it falls back to the first loaded note.
func (s *Store) Reload(ctx context.Context) {
	notes := s.gateway.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = notes
	s.dirty = false
	if s.indexOfLocked(s.activeID) < 0 {
		s.activeID = ""
		if len(s.notes) > 0 {
			s.activeID = s.notes[0].ID
		}
	}
	if s.logger != nil {
		s.logger.Debug("collection reloaded", "notes", len(s.notes))
	}
}

// Watch observes external changes of the durable slot, when the gateway
// supports it.
func (s *Store) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.gateway.(Watchable)
	if !ok {
		return nil, errors.New("gateway does not support watching")
	}
	return w.Watch(ctx)
}

// Close tears the store down: the pending timer is cancelled
// unconditionally, then one final snapshot is flushed if any mutation
// is still unpersisted.
func (s *Store) Close(ctx context.Context) {
	s.mu.Lock()
	dirty := s.dirty
	snapshot := s.snapshotLocked()
	s.dirty = false
	s.mu.Unlock()

	pending := s.coalescer.Pending()
	s.coalescer.Stop()
	if dirty || pending {
		s.gateway.Save(ctx, snapshot)
	}
}

// scheduleLocked hands a fresh snapshot to the coalescer.
// Callers must hold s.mu.
func (s *Store) scheduleLocked() {
	s.dirty = true
	s.coalescer.Schedule(s.snapshotLocked())
}

// snapshotLocked copies the collection so the coalescer's timer
// goroutine never aliases live state. Callers must hold s.mu.
func (s *Store) snapshotLocked() []Note {
	snapshot := make([]Note, len(s.notes))
	copy(snapshot, s.notes)
	return snapshot
}

func (s *Store) indexOfLocked(id string) int {
	if id == "" {
		return -1
	}
	for i, n := range s.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}
