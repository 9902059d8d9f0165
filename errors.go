package mcpserver

import "github.com/wagiedev/mcp-server-go/internal/errors"

// Re-export error types from internal package

// MCPError is implemented by errors that map to a JSON-RPC error code.
type MCPError = errors.MCPError

// ParseError indicates message text that is not well-formed JSON.
type ParseError = errors.ParseError

// ProtocolError indicates well-formed JSON that is not a usable request.
type ProtocolError = errors.ProtocolError

// ValidationError aggregates every problem found with a tool call's arguments.
type ValidationError = errors.ValidationError

// HandlerPanicError wraps a value recovered from a panicking tool handler.
type HandlerPanicError = errors.HandlerPanicError

// JSON-RPC 2.0 error codes.
const (
	CodeParseError     = errors.CodeParseError
	CodeInvalidRequest = errors.CodeInvalidRequest
	CodeMethodNotFound = errors.CodeMethodNotFound
	CodeInvalidParams  = errors.CodeInvalidParams
	CodeInternalError  = errors.CodeInternalError
)

// Re-export sentinel errors from internal package.
var (
	// ErrMissingMethod indicates a request without a "method" member.
	ErrMissingMethod = errors.ErrMissingMethod

	// ErrInvalidMethod indicates a "method" member that is not a string.
	ErrInvalidMethod = errors.ErrInvalidMethod

	// ErrNotAnObject indicates a message that is valid JSON but not an object.
	ErrNotAnObject = errors.ErrNotAnObject

	// ErrUnknownTool indicates no tool is registered under the requested name.
	ErrUnknownTool = errors.ErrUnknownTool

	// ErrResourceNotFound indicates no resource is registered under the requested URI.
	ErrResourceNotFound = errors.ErrResourceNotFound
)
