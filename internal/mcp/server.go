package mcp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/wagiedev/mcp-server-go/internal/config"
	"github.com/wagiedev/mcp-server-go/internal/errors"
	"github.com/wagiedev/mcp-server-go/internal/registry"
	"github.com/wagiedev/mcp-server-go/internal/validation"
)

// ToolCallRequest asks the server to invoke one tool.
type ToolCallRequest struct {
	ToolName  string
	Arguments map[string]any
}

// ToolCallResponse is the outcome of a tool call.
// Content is always text, even when the handler returned another type.
type ToolCallResponse struct {
	Content string
	IsError bool
}

// ResourceContents is one entry of a resources/read result.
type ResourceContents struct {
	URI      string `json:"uri"`
	MIMEType string `json:"mimeType"`
	Text     string `json:"text"`
}

// ReadResourceResult is the resources/read result.
type ReadResourceResult struct {
	Contents []ResourceContents `json:"contents"`
}

// Server dispatches protocol operations against its registry.
type Server struct {
	name         string
	version      string
	instructions string
	mode         config.ValidationMode

	log       *slog.Logger
	registry  *registry.Registry
	validator *validation.Validator
}

// NewServer creates a server with an empty registry.
// A nil opts uses the defaults.
func NewServer(name string, opts *config.Options) *Server {
	if opts == nil {
		opts = &config.Options{}
	}

	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	version := opts.Version
	if version == "" {
		version = config.DefaultVersion
	}

	mode := opts.Validation
	if mode == "" {
		mode = config.ValidationAdvisory
	}

	return &Server{
		name:         name,
		version:      version,
		instructions: opts.Instructions,
		mode:         mode,
		log:          log.With("component", "mcp_server", "server", name),
		registry:     registry.New(),
		validator:    validation.New(),
	}
}

// Name returns the server name.
func (s *Server) Name() string {
	return s.name
}

// Version returns the server version.
func (s *Server) Version() string {
	return s.version
}

// Logger returns the server's logger.
func (s *Server) Logger() *slog.Logger {
	return s.log
}

// Registry returns the server's registry.
func (s *Server) Registry() *registry.Registry {
	return s.registry
}

// AddTool binds a handler to a name, description and parameter list and
// registers the resulting definition, replacing any tool of the same name.
func (s *Server) AddTool(name, description string, params []registry.ToolParam, handler registry.Handler) {
	s.log.Debug("Registering tool", "tool", name, "params", len(params))

	s.registry.RegisterTool(registry.ToolDefinition{
		Name:        name,
		Description: description,
		Parameters:  params,
		Handler:     handler,
	})
}

// AddResource registers a resource, replacing any resource with the same URI.
func (s *Server) AddResource(res registry.Resource) {
	s.log.Debug("Registering resource", "uri", res.URI)

	s.registry.RegisterResource(res)
}

// HandleListTools returns the tools/list descriptor of every tool.
func (s *Server) HandleListTools() []registry.ToolSchema {
	return s.registry.ToToolSchemas()
}

// HandleCallTool invokes the requested tool.
//
// Unknown tools, arguments rejected in strict validation mode, handler errors
// and handler panics all produce a response with IsError set; nothing
// propagates to the caller.
func (s *Server) HandleCallTool(ctx context.Context, req ToolCallRequest) ToolCallResponse {
	log := s.log.With("call_id", ulid.Make().String(), "tool", req.ToolName)

	tool, ok := s.registry.GetTool(req.ToolName)
	if !ok {
		log.Warn("Call for unknown tool", "error", errors.ErrUnknownTool)

		return ToolCallResponse{Content: "Unknown tool: " + req.ToolName, IsError: true}
	}

	args := maps.Clone(req.Arguments)
	if args == nil {
		args = make(map[string]any)
	}

	if s.mode != config.ValidationOff {
		if problems := s.validator.ValidateCall(tool, args); len(problems) > 0 {
			if s.mode == config.ValidationStrict {
				log.Warn("Rejecting tool call with invalid arguments", "problems", problems)

				return ToolCallResponse{
					Content: "Invalid arguments: " + strings.Join(problems, "; "),
					IsError: true,
				}
			}

			log.Warn("Tool call arguments failed validation", "problems", problems)
		}
	}

	log.Debug("Invoking tool handler", "args", len(args))

	text, err := invoke(ctx, tool, args)
	if err != nil {
		log.Warn("Tool execution failed", "error", err)

		return ToolCallResponse{Content: "Error: " + err.Error(), IsError: true}
	}

	log.Debug("Tool call completed")

	return ToolCallResponse{Content: text}
}

// invoke runs the tool handler and renders its result, converting a panic
// in either step into an error.
func invoke(ctx context.Context, tool registry.ToolDefinition, args map[string]any) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &errors.HandlerPanicError{Tool: tool.Name, Value: r}
		}
	}()

	if tool.Handler == nil {
		return "", fmt.Errorf("tool %q has no handler", tool.Name)
	}

	result, err := tool.Handler(ctx, args)
	if err != nil {
		return "", err
	}

	return Stringify(result), nil
}

// HandleListResources returns the resources/list entry of every resource.
func (s *Server) HandleListResources() []map[string]any {
	resources := s.registry.ListResources()

	result := make([]map[string]any, 0, len(resources))
	for _, r := range resources {
		result = append(result, map[string]any{
			"uri":         r.URI,
			"name":        r.Name,
			"description": r.Description,
			"mimeType":    r.MIMEType,
		})
	}

	return result
}

// HandleReadResource returns the contents of the resource registered under uri.
// It returns an error wrapping errors.ErrResourceNotFound for unknown URIs.
func (s *Server) HandleReadResource(uri string) (ReadResourceResult, error) {
	res, ok := s.registry.GetResource(uri)
	if !ok {
		return ReadResourceResult{}, fmt.Errorf("%w: %s", errors.ErrResourceNotFound, uri)
	}

	return ReadResourceResult{
		Contents: []ResourceContents{
			{
				URI:      res.URI,
				MIMEType: res.MIMEType,
				Text:     res.Text,
			},
		},
	}, nil
}
