package config

import "log/slog"

// DefaultVersion is reported in serverInfo when no version is configured.
const DefaultVersion = "1.0.0"

// Options configures the behavior of an MCP server.
type Options struct {
	// Logger is the slog logger for debug output.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// Version is reported in the initialize response.
	// Defaults to DefaultVersion.
	Version string

	// Instructions is optional guidance returned to clients on initialize.
	Instructions string

	// Validation controls whether argument validation gates tool invocation.
	// Defaults to ValidationAdvisory.
	Validation ValidationMode
}
