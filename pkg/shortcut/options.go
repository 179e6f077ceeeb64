package shortcut

import (
	"io"
	"log/slog"
	"runtime"
)

// Option configures Scan and Discover.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	workers int
}

func newOptions(opts []Option) *options {
	o := &options{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger routes per-file diagnostics to l. By default they are discarded.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithConcurrency bounds how many files are parsed at once. Values below one
// parse sequentially.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.workers = max(n, 1)
	}
}
