// Package mcpserver provides a small runtime for Model Context Protocol (MCP)
// servers.
//
// A server owns a registry of tools and resources. Tools are named handlers
// with a declared parameter list; the server derives each tool's JSON input
// schema from that list, checks incoming arguments against it and turns the
// handler's result into text. Resources are static documents addressed by URI.
//
// # Basic Usage
//
// Register tools and serve them over stdin/stdout:
//
//	server := mcpserver.New("calculator",
//	    mcpserver.WithVersion("1.0.0"),
//	    mcpserver.WithLogger(logger),
//	)
//
//	server.AddTool("add", "Add two numbers", []mcpserver.ToolParam{
//	    mcpserver.Param("a", mcpserver.ParamTypeNumber, "First operand"),
//	    mcpserver.Param("b", mcpserver.ParamTypeNumber, "Second operand"),
//	}, mcpserver.Bind(func(ctx context.Context, in struct {
//	    A float64 `json:"a"`
//	    B float64 `json:"b"`
//	}) (any, error) {
//	    return in.A + in.B, nil
//	}))
//
//	if err := mcpserver.Serve(ctx, server, os.Stdin, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// # Messages
//
// Serve speaks newline-delimited JSON-RPC 2.0. The methods initialize, ping,
// tools/list, tools/call, resources/list and resources/read are answered;
// notifications are accepted and never answered. Server.HandleMessage answers
// a single raw message for callers that bring their own transport.
//
// # Tool Errors
//
// Unknown tools, handler errors and handler panics are reported inside a
// tools/call result with isError set, never as JSON-RPC errors. Malformed
// messages produce JSON-RPC parse (-32700) or invalid request (-32600) errors.
//
// # Argument Validation
//
// Arguments are checked for missing required parameters, undeclared
// parameters and type mismatches. By default problems are logged and the
// handler still runs; WithValidationMode(ValidationStrict) rejects such calls
// and ValidationOff skips the check.
//
// # Official SDK
//
// Server.SDKServer exposes the same registry through the official
// github.com/modelcontextprotocol/go-sdk server, and ServeSDK runs it over
// stdio.
package mcpserver
