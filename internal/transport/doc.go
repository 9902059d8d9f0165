// Package transport serves a message handler over a byte stream using the
// MCP stdio framing: one JSON-RPC message per line in each direction.
package transport
