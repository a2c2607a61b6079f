package platform

import (
	"log/slog"
	"time"

	"github.com/jotkit/jot/pkg/core"
)

// options holds the internal configuration for the jot service.
type options struct {
	gateway  core.Gateway
	logger   *slog.Logger
	slotFile string
	quiet    time.Duration
	autoInit bool
}

// Option defines a functional option for configuring jot.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		slotFile: "",
		quiet:    0, // core.DefaultQuietPeriod
		autoInit: true,
	}
}

// WithLogger sets the logger for the store and gateway.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithGateway allows injecting a custom persistence gateway (e.g. mock,
// alternate medium). If provided, the default filesystem slot is skipped.
func WithGateway(gw core.Gateway) Option {
	return func(o *options) {
		o.gateway = gw
	}
}

// WithSlotFile overrides the slot filename inside the data directory.
func WithSlotFile(name string) Option {
	return func(o *options) {
		o.slotFile = name
	}
}

// WithQuietPeriod overrides the write-coalescing quiet period.
// Zero keeps the default.
func WithQuietPeriod(d time.Duration) Option {
	return func(o *options) {
		o.quiet = d
	}
}

// WithAutoInit controls whether the data directory is created when
// missing. Enabled by default.
func WithAutoInit(auto bool) Option {
	return func(o *options) {
		o.autoInit = auto
	}
}
