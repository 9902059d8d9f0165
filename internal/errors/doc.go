// Package errors defines error types for the MCP server runtime.
//
// Protocol-level failures (malformed JSON, requests without a method) are
// reported as ParseError and ProtocolError, both of which carry the JSON-RPC
// error code they map to. Tool-call failures never surface as errors past the
// dispatcher; ValidationError aggregates argument problems for callers that
// want them as an error value. All error types support unwrapping and can be
// checked using errors.Is, errors.As, and errors.AsType.
package errors
