// Package fs implements the persistence gateway over a single JSON file,
// the durable slot holding the whole note collection.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jotkit/jot/pkg/core"
)

// DefaultSlotFile is the filename of the durable slot inside the data
// directory.
const DefaultSlotFile = "notes.json"

// selfWriteWindow is how long after one of our own saves filesystem
// events on the slot are attributed to us and suppressed.
const selfWriteWindow = 200 * time.Millisecond

// Config configures a Slot.
type Config struct {
	// Path is the full path of the slot file.
	Path string
	// AutoInit creates the parent directory on Initialize.
	AutoInit bool
	Logger   *slog.Logger
	// ErrorHandler receives watch-loop errors. Optional.
	ErrorHandler func(error)
}

// Slot reads and writes the entire note collection to one durable
// key-value entry on disk. It tolerates corrupt or missing data: a slot
// that cannot be decoded degrades to an empty collection, never an
// error. Write failures are swallowed, logged, and recorded on the slot
// state; the in-memory collection remains the source of truth and the
// next save retries the full snapshot.
type Slot struct {
	Path   string
	config Config

	mu            sync.RWMutex
	lastSaved     *time.Time
	lastErr       error
	lastSelfWrite time.Time
	watcherActive bool
}

// NewSlot creates a Slot from the given config.
func NewSlot(cfg Config) *Slot {
	return &Slot{Path: cfg.Path, config: cfg}
}

// Initialize ensures the underlying storage is ready. With AutoInit it
// creates the parent directory; otherwise the directory must exist.
func (s *Slot) Initialize(ctx context.Context) error {
	dir := filepath.Dir(s.Path)
	if s.config.AutoInit {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
		return nil
	}
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return fmt.Errorf("data directory does not exist: %s", dir)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("data path is not a directory: %s", dir)
	}
	return nil
}

// Load reads the durable slot. A missing, unreadable, or undecodable
// slot yields an empty collection. The decode failure stays observable
// through State() and the log even though the contract swallows it.
func (s *Slot) Load(ctx context.Context) []core.Note {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return nil // Start fresh
	}
	if err != nil {
		s.recordError(fmt.Errorf("failed to read slot: %w", err))
		return nil
	}

	notes, err := decodeNotes(data)
	if err != nil {
		// Corrupt state degrades to "no notes", it must not crash
		// the app. Self-heal on the next save.
		s.recordError(err)
		if s.config.Logger != nil {
			s.config.Logger.Warn("slot is corrupt, starting with empty collection", "path", s.Path, "error", err)
		}
		return nil
	}
	return notes
}

// decodeNotes is the typed decode behind Load: it either produces a
// note sequence or a reason the slot is unusable.
func decodeNotes(data []byte) ([]core.Note, error) {
	var notes []core.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("slot does not decode to a note sequence: %w", err)
	}
	return notes, nil
}

// Save serializes and writes the full collection, replacing prior
// content. Always a whole-snapshot overwrite. Failures are dropped
// after recording; the caller retries implicitly with its next save.
func (s *Slot) Save(ctx context.Context, notes []core.Note) {
	if notes == nil {
		notes = []core.Note{}
	}
	data, err := json.MarshalIndent(notes, "", "  ")
	if err != nil {
		s.recordError(fmt.Errorf("failed to encode collection: %w", err))
		return
	}

	s.markSelfWrite()
	if err := writeFileAtomic(s.Path, data, 0644); err != nil {
		s.recordError(err)
		if s.config.Logger != nil {
			s.config.Logger.Warn("slot write failed, keeping in-memory state", "path", s.Path, "error", err)
		}
		return
	}

	now := time.Now()
	s.mu.Lock()
	s.lastSaved = &now
	s.lastErr = nil
	s.mu.Unlock()

	if s.config.Logger != nil {
		s.config.Logger.Debug("slot written", "path", s.Path, "notes", len(notes))
	}
}

// Watch emits events when the slot changes outside this process.
// Events caused by our own saves are suppressed.
func (s *Slot) Watch(ctx context.Context) (<-chan core.Event, error) {
	events := make(chan core.Event)
	w := newWatchWorker(s, events)
	if err := w.Start(ctx); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *Slot) recordError(err error) {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
}

// LastError returns the most recent absorbed failure, if any.
func (s *Slot) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *Slot) markSelfWrite() {
	s.mu.Lock()
	s.lastSelfWrite = time.Now()
	s.mu.Unlock()
}

func (s *Slot) recentSelfWrite() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.lastSelfWrite) < selfWriteWindow
}

func (s *Slot) setWatcherActive(active bool) {
	s.mu.Lock()
	s.watcherActive = active
	s.mu.Unlock()
}
