// Package mcp implements the server side of the Model Context Protocol.
//
// Server owns a tool and resource registry and answers the protocol-facing
// operations: listing tools, calling a tool, listing and reading resources.
// A tool call never fails past the server: unknown tools, rejected arguments,
// handler errors and handler panics all come back as a ToolCallResponse with
// IsError set.
//
// HandleMessage is the text-in/text-out entry point used by transports. It
// decodes a JSON-RPC request, routes it by method and encodes the reply.
// SDKServer exposes the same registry through the official MCP Go SDK.
package mcp
