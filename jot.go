package jot

import (
	"log/slog"
	"time"

	"github.com/jotkit/jot/internal/platform"
	"github.com/jotkit/jot/pkg/core"
	"github.com/jotkit/jot/pkg/markup"
)

// --- Types ---

// Note is a public alias for the domain entity.
type Note = core.Note

// Patch is a public alias for the partial-update payload.
type Patch = core.Patch

// Store is a public alias for the note store.
type Store = core.Store

// Event is a public alias for slot change events.
type Event = core.Event

// --- Configuration ---

// Option defines a functional option for configuring jot.
type Option = platform.Option

// WithLogger sets the logger for the store and gateway.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithGateway allows injecting a custom persistence gateway.
func WithGateway(gw core.Gateway) Option {
	return platform.WithGateway(gw)
}

// WithSlotFile overrides the slot filename inside the data directory.
func WithSlotFile(name string) Option {
	return platform.WithSlotFile(name)
}

// WithQuietPeriod overrides the write-coalescing quiet period.
func WithQuietPeriod(d time.Duration) Option {
	return platform.WithQuietPeriod(d)
}

// WithAutoInit controls whether the data directory is created when missing.
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// --- Factory ---

// New creates a note store over the data directory at path.
func New(path string, opts ...Option) (*core.Store, error) {
	return platform.New(path, opts...)
}

// Init prepares the persistence gateway explicitly.
func Init(path string, opts ...Option) (core.Gateway, error) {
	return platform.Init(path, opts...)
}

// --- Queries ---

// Render transforms raw note source to safe preview markup.
func Render(source string) string {
	return markup.Render(source)
}
