package core

import (
	"log/slog"

	"github.com/google/uuid"
)

// options holds the construction settings for a Document.
type options struct {
	id       string
	writable bool
	readOnly bool
	logger   *slog.Logger
}

// Option defines a functional option for configuring a Document.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		id:       uuid.NewString(),
		writable: false,
		readOnly: false,
		logger:   slog.Default(),
	}
}

// WithWritable sets the flag that allows the title to change.
func WithWritable(writable bool) Option {
	return func(o *options) {
		o.writable = writable
	}
}

// WithReadOnly sets the read-only flag.
func WithReadOnly(readOnly bool) Option {
	return func(o *options) {
		o.readOnly = readOnly
	}
}

// WithLogger sets the logger used for debug output.
// A nil logger keeps slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithID overrides the generated identity. Empty values are ignored.
func WithID(id string) Option {
	return func(o *options) {
		if id != "" {
			o.id = id
		}
	}
}
