package mcpserver

import (
	"context"
	"io"

	"github.com/wagiedev/mcp-server-go/internal/mcp"
	"github.com/wagiedev/mcp-server-go/internal/protocol"
	"github.com/wagiedev/mcp-server-go/internal/registry"
	"github.com/wagiedev/mcp-server-go/internal/transport"
	"github.com/wagiedev/mcp-server-go/internal/validation"
)

// New creates a server with an empty registry.
//
//	server := mcpserver.New("weather",
//	    mcpserver.WithVersion("0.2.0"),
//	    mcpserver.WithValidationMode(mcpserver.ValidationStrict),
//	)
func New(name string, opts ...Option) *Server {
	return mcp.NewServer(name, applyOptions(opts))
}

// Param declares a required parameter.
func Param(name string, typ ToolParamType, description string) ToolParam {
	return registry.Param(name, typ, description)
}

// OptionalParam declares a parameter that may be omitted.
func OptionalParam(name string, typ ToolParamType, description string) ToolParam {
	return registry.OptionalParam(name, typ, description)
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return registry.New()
}

// NewValidator creates a Validator.
func NewValidator() *Validator {
	return validation.New()
}

// Bind adapts a handler taking a typed argument struct to Handler.
// Fields whose json tag lacks omitempty are required, and argument keys that
// match no field are rejected.
func Bind[T any](fn func(ctx context.Context, in T) (any, error)) Handler {
	return mcp.Bind(fn)
}

// BindArguments decodes a tool's argument map into dst, a non-nil pointer.
func BindArguments(args map[string]any, dst any) error {
	return mcp.BindArguments(args, dst)
}

// Stringify renders a handler result the way tools/call reports it.
func Stringify(v any) string {
	return mcp.Stringify(v)
}

// MessageHandler answers one raw message, returning false when no reply is due.
type MessageHandler = transport.MessageHandler

// Serve answers newline-delimited JSON-RPC messages read from r, writing
// replies to w, until r is exhausted or ctx is cancelled.
func Serve(ctx context.Context, server *Server, r io.Reader, w io.Writer) error {
	return transport.Serve(ctx, server.Logger(), r, w, server)
}

// ===== Codec =====

// Request is a decoded JSON-RPC request.
type Request = protocol.Request

// ParseRequest decodes raw request text. Invalid JSON yields a *ParseError and
// a request without a string method yields a *ProtocolError.
func ParseRequest(raw string) (*Request, error) {
	return protocol.ParseRequest(raw)
}

// BuildResponse encodes a JSON-RPC success response.
func BuildResponse(id any, result any) (string, error) {
	return protocol.BuildResponse(id, result)
}

// BuildError encodes a JSON-RPC error response.
func BuildError(id any, code int, message string) (string, error) {
	return protocol.BuildError(id, code, message)
}
