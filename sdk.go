package mcpserver

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wagiedev/mcp-server-go/internal/mcp"
)

// CallToolRequest is the official SDK's tools/call request.
type CallToolRequest = sdkmcp.CallToolRequest

// CallToolResult is the official SDK's tools/call result.
type CallToolResult = sdkmcp.CallToolResult

// ServeSDK runs the server's tools and resources through the official MCP SDK
// over stdin/stdout.
func ServeSDK(ctx context.Context, server *Server) error {
	return ServeSDKTransport(ctx, server, &sdkmcp.StdioTransport{})
}

// ServeSDKTransport runs the server through the official MCP SDK over t.
func ServeSDKTransport(ctx context.Context, server *Server, t sdkmcp.Transport) error {
	return server.SDKServer().Run(ctx, t)
}

// TextResult creates a CallToolResult with text content.
func TextResult(text string) *CallToolResult {
	return mcp.TextResult(text)
}

// ErrorResult creates a CallToolResult indicating an error.
func ErrorResult(message string) *CallToolResult {
	return mcp.ErrorResult(message)
}

// ParseArguments decodes CallToolRequest arguments into a map.
func ParseArguments(req *CallToolRequest) (map[string]any, error) {
	return mcp.ParseArguments(req)
}
