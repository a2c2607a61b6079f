package platform

import (
	"context"
	"path/filepath"

	"github.com/jotkit/jot/pkg/adapters/fs"
	"github.com/jotkit/jot/pkg/core"
)

// Init prepares the persistence gateway for the data directory at the
// given path. If a custom gateway is injected via options, it is used
// as-is.
func Init(path string, opts ...Option) (core.Gateway, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.gateway != nil {
		return o.gateway, nil
	}

	slotFile := o.slotFile
	if slotFile == "" {
		slotFile = fs.DefaultSlotFile
	}

	slot := fs.NewSlot(fs.Config{
		Path:     filepath.Join(path, slotFile),
		AutoInit: o.autoInit,
		Logger:   o.logger,
	})
	if err := slot.Initialize(context.Background()); err != nil {
		return nil, err
	}
	return slot, nil
}

// New wires a ready-to-use note store over the data directory at the
// given path: gateway first, then the store seeded from it.
func New(path string, opts ...Option) (*core.Store, error) {
	gateway, err := Init(path, opts...)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	store := core.NewStore(context.Background(), gateway, core.StoreConfig{
		QuietPeriod: o.quiet,
		Logger:      o.logger,
	})
	return store, nil
}
