package cli

import (
	"context"
	"strings"

	mcpserver "github.com/wagiedev/mcp-server-go"
)

type addArgs struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

type greetArgs struct {
	Name     string `json:"name"`
	Greeting string `json:"greeting,omitempty"`
}

// registerBuiltinTools adds the tools every mcp-starter server exposes.
func registerBuiltinTools(server *mcpserver.Server) {
	server.AddTool("echo", "Echo a message back unchanged", []mcpserver.ToolParam{
		mcpserver.Param("message", mcpserver.ParamTypeString, "Message to echo"),
	}, func(_ context.Context, args map[string]any) (any, error) {
		return args["message"], nil
	})

	server.AddTool("add", "Add two numbers", []mcpserver.ToolParam{
		mcpserver.Param("a", mcpserver.ParamTypeNumber, "First number"),
		mcpserver.Param("b", mcpserver.ParamTypeNumber, "Second number"),
	}, mcpserver.Bind(func(_ context.Context, in addArgs) (any, error) {
		return in.A + in.B, nil
	}))

	server.AddTool("greet", "Greet someone by name", []mcpserver.ToolParam{
		mcpserver.Param("name", mcpserver.ParamTypeString, "Name to greet"),
		mcpserver.OptionalParam("greeting", mcpserver.ParamTypeString, "Greeting word, default Hello"),
	}, mcpserver.Bind(func(_ context.Context, in greetArgs) (any, error) {
		greeting := strings.TrimSpace(in.Greeting)
		if greeting == "" {
			greeting = "Hello"
		}

		return greeting + ", " + in.Name + "!", nil
	}))
}
