package core

import "context"

// Gateway defines the contract for the durable slot holding the note
// collection. Adhering to this interface keeps the Store independent of
// the underlying medium (filesystem, in-memory, etc).
//
// The gateway absorbs its own failures: Load degrades to an empty
// collection when the slot is missing or corrupt, and Save drops the
// write when the medium rejects it. The in-memory collection stays the
// source of truth either way; a later Save retries the full snapshot.
type Gateway interface {
	// Load reads the whole collection from the durable slot.
	Load(ctx context.Context) []Note

	// Save replaces the durable slot with the given snapshot.
	// Always a whole-collection overwrite, never incremental.
	Save(ctx context.Context, notes []Note)
}

// EventType represents the kind of change observed on the durable slot.
type EventType string

const (
	// EventSlotChanged signals that the slot was rewritten by someone
	// other than this process (an external editor, another tool).
	EventSlotChanged EventType = "CHANGED"

	// EventSlotRemoved signals that the slot file disappeared.
	EventSlotRemoved EventType = "REMOVED"
)

// Event represents an observed change of the durable slot.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer for log and lifecycle event bridging.
func (e Event) String() string {
	return string(e.Type) + " " + e.Path
}

// Watchable is implemented by gateways that can observe external
// changes to their slot. The Store asserts this capability at runtime,
// mirroring how optional storage features are surfaced elsewhere.
type Watchable interface {
	// Watch emits an Event whenever the slot changes outside this
	// process. The channel closes when ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
}
