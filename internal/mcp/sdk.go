package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wagiedev/mcp-server-go/internal/registry"
)

// SDKServer builds an official MCP SDK server exposing the tools and resources
// registered so far. Tool calls are routed through HandleCallTool, so the
// validation mode and error handling are the same on both paths.
//
// Tools or resources registered after this call are not visible to the
// returned server.
func (s *Server) SDKServer() *sdkmcp.Server {
	srv := sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: s.name, Version: s.version},
		&sdkmcp.ServerOptions{Instructions: s.instructions},
	)

	tools := s.registry.ListTools()
	for _, tool := range tools {
		srv.AddTool(ToSDKTool(tool), s.sdkToolHandler(tool.Name))
	}

	resources := s.registry.ListResources()
	for _, res := range resources {
		srv.AddResource(ToSDKResource(res), s.sdkResourceHandler(res.URI))
	}

	s.log.Debug("Built SDK server", "tools", len(tools), "resources", len(resources))

	return srv
}

// sdkToolHandler adapts HandleCallTool to the SDK tool handler signature.
func (s *Server) sdkToolHandler(name string) sdkmcp.ToolHandler {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest) (*sdkmcp.CallToolResult, error) {
		args, err := ParseArguments(req)
		if err != nil {
			return ErrorResult("Error: " + err.Error()), nil
		}

		return ToSDKResult(s.HandleCallTool(ctx, ToolCallRequest{
			ToolName:  name,
			Arguments: args,
		})), nil
	}
}

// sdkResourceHandler adapts HandleReadResource to the SDK resource handler signature.
func (s *Server) sdkResourceHandler(uri string) sdkmcp.ResourceHandler {
	return func(_ context.Context, _ *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
		result, err := s.HandleReadResource(uri)
		if err != nil {
			return nil, err
		}

		contents := make([]*sdkmcp.ResourceContents, 0, len(result.Contents))
		for _, c := range result.Contents {
			contents = append(contents, &sdkmcp.ResourceContents{
				URI:      c.URI,
				MIMEType: c.MIMEType,
				Text:     c.Text,
			})
		}

		return &sdkmcp.ReadResourceResult{Contents: contents}, nil
	}
}

// ToSDKTool converts a tool definition to an SDK tool.
func ToSDKTool(def registry.ToolDefinition) *sdkmcp.Tool {
	return &sdkmcp.Tool{
		Name:        def.Name,
		Description: def.Description,
		InputSchema: def.JSONSchema(),
	}
}

// ToSDKResource converts a resource to an SDK resource.
func ToSDKResource(res registry.Resource) *sdkmcp.Resource {
	return &sdkmcp.Resource{
		URI:         res.URI,
		Name:        res.Name,
		Description: res.Description,
		MIMEType:    res.MIMEType,
	}
}

// ToSDKResult converts a tool call response to an SDK result.
func ToSDKResult(resp ToolCallResponse) *sdkmcp.CallToolResult {
	if resp.IsError {
		return ErrorResult(resp.Content)
	}

	return TextResult(resp.Content)
}

// TextResult creates a CallToolResult with text content.
func TextResult(text string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: text},
		},
	}
}

// ErrorResult creates a CallToolResult indicating an error.
func ErrorResult(message string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: message},
		},
		IsError: true,
	}
}

// ParseArguments decodes CallToolRequest arguments into a map.
// Numbers are kept as json.Number so integer parameters validate exactly.
func ParseArguments(req *sdkmcp.CallToolRequest) (map[string]any, error) {
	if req == nil || req.Params == nil || len(req.Params.Arguments) == 0 {
		return make(map[string]any), nil
	}

	dec := json.NewDecoder(bytes.NewReader(req.Params.Arguments))
	dec.UseNumber()

	var args map[string]any
	if err := dec.Decode(&args); err != nil {
		return nil, fmt.Errorf("failed to unmarshal arguments: %w", err)
	}

	if args == nil {
		args = make(map[string]any)
	}

	return args, nil
}
