package mcpserver

import (
	"io"
	"log/slog"

	"github.com/wagiedev/mcp-server-go/internal/config"
)

// Options configures a Server.
type Options = config.Options

// Option configures Options using the functional options pattern.
type Option func(*Options)

// applyOptions applies functional options to an Options struct.
func applyOptions(opts []Option) *Options {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithLogger sets the logger for server output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// NopLogger returns a logger that discards all output, the same logger a
// server uses when WithLogger is not given.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// WithVersion sets the version reported in serverInfo. Defaults to "1.0.0".
func WithVersion(version string) Option {
	return func(o *Options) {
		o.Version = version
	}
}

// WithInstructions sets the usage instructions returned from initialize.
func WithInstructions(instructions string) Option {
	return func(o *Options) {
		o.Instructions = instructions
	}
}

// WithValidationMode controls what happens to tool calls whose arguments
// fail validation. Defaults to ValidationAdvisory.
func WithValidationMode(mode ValidationMode) Option {
	return func(o *Options) {
		o.Validation = mode
	}
}
