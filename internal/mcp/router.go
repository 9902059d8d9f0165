package mcp

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/wagiedev/mcp-server-go/internal/errors"
	"github.com/wagiedev/mcp-server-go/internal/protocol"
)

// ProtocolVersion is the MCP revision reported on initialize.
const ProtocolVersion = "2024-11-05"

// CallToolResult is the tools/call result payload.
type CallToolResult struct {
	Content []TextContent `json:"content"`
	IsError bool          `json:"isError"`
}

// TextContent is a text content block.
type TextContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type callToolParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

type readResourceParams struct {
	URI string `json:"uri"`
}

// HandleMessage answers one raw JSON-RPC message.
//
// It returns the reply text and true, or false when no reply must be sent
// because the message is a notification. Malformed messages are answered with
// a parse or invalid-request error and never reach the registry.
func (s *Server) HandleMessage(ctx context.Context, raw string) (string, bool) {
	req, err := protocol.ParseRequest(raw)
	if err != nil {
		s.log.Warn("Rejecting malformed message", "error", err)

		code := errors.CodeInternalError
		if mcpErr, ok := stderrors.AsType[errors.MCPError](err); ok {
			code = mcpErr.Code()
		}

		return s.errorReply(nil, protocol.NewError(code, err.Error())), true
	}

	s.log.Debug("Handling message", "method", req.Method, "notification", req.IsNotification())

	result, rpcErr := s.route(ctx, req)

	if req.IsNotification() {
		return "", false
	}

	if rpcErr != nil {
		s.log.Debug("Method returned error", "method", req.Method, "code", rpcErr.Code, "message", rpcErr.Message)

		return s.errorReply(req.ID, rpcErr), true
	}

	out, err := protocol.BuildResponse(req.ID, result)
	if err != nil {
		s.log.Error("Failed to encode response", "method", req.Method, "error", err)

		return s.errorReply(req.ID, protocol.NewError(errors.CodeInternalError, err.Error())), true
	}

	return out, true
}

// route dispatches a request by method.
func (s *Server) route(ctx context.Context, req *protocol.Request) (any, *protocol.Error) {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(), nil

	case "ping":
		return map[string]any{}, nil

	case "tools/list":
		return map[string]any{"tools": s.HandleListTools()}, nil

	case "tools/call":
		return s.handleToolsCall(ctx, req)

	case "resources/list":
		return map[string]any{"resources": s.HandleListResources()}, nil

	case "resources/read":
		return s.handleResourcesRead(req)

	default:
		if strings.HasPrefix(req.Method, "notifications/") {
			return nil, nil
		}

		return nil, protocol.NewError(errors.CodeMethodNotFound, "Method not found: "+req.Method)
	}
}

// handleInitialize builds the initialize result.
func (s *Server) handleInitialize() map[string]any {
	result := map[string]any{
		"protocolVersion": ProtocolVersion,
		"capabilities": map[string]any{
			"tools":     map[string]any{},
			"resources": map[string]any{},
		},
		"serverInfo": map[string]any{
			"name":    s.name,
			"version": s.version,
		},
	}

	if s.instructions != "" {
		result["instructions"] = s.instructions
	}

	return result
}

// handleToolsCall handles the tools/call method.
func (s *Server) handleToolsCall(ctx context.Context, req *protocol.Request) (any, *protocol.Error) {
	if !req.HasParams() {
		return nil, protocol.NewError(errors.CodeInvalidParams, "Missing params for tools/call")
	}

	var params callToolParams
	if err := req.DecodeParams(&params); err != nil {
		return nil, protocol.NewError(errors.CodeInvalidParams, fmt.Sprintf("Invalid params: %v", err))
	}

	if params.Name == "" {
		return nil, protocol.NewError(errors.CodeInvalidParams, "Missing tool name in params")
	}

	resp := s.HandleCallTool(ctx, ToolCallRequest{
		ToolName:  params.Name,
		Arguments: params.Arguments,
	})

	return CallToolResult{
		Content: []TextContent{{Type: "text", Text: resp.Content}},
		IsError: resp.IsError,
	}, nil
}

// handleResourcesRead handles the resources/read method.
func (s *Server) handleResourcesRead(req *protocol.Request) (any, *protocol.Error) {
	var params readResourceParams
	if err := req.DecodeParams(&params); err != nil {
		return nil, protocol.NewError(errors.CodeInvalidParams, fmt.Sprintf("Invalid params: %v", err))
	}

	if params.URI == "" {
		return nil, protocol.NewError(errors.CodeInvalidParams, "Missing uri in params")
	}

	result, err := s.HandleReadResource(params.URI)
	if err != nil {
		return nil, protocol.NewError(errors.CodeInvalidParams, "Resource not found: "+params.URI)
	}

	return result, nil
}

// errorReply encodes an error response, falling back to a fixed internal
// error if encoding fails.
func (s *Server) errorReply(id any, rpcErr *protocol.Error) string {
	out, err := protocol.BuildError(id, rpcErr.Code, rpcErr.Message)
	if err != nil {
		s.log.Error("Failed to encode error response", "error", err)

		return `{"jsonrpc":"2.0","id":null,"error":{"code":-32603,"message":"internal error"}}`
	}

	return out
}
