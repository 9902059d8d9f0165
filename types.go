package mcpserver

import (
	"github.com/wagiedev/mcp-server-go/internal/config"
	"github.com/wagiedev/mcp-server-go/internal/mcp"
	"github.com/wagiedev/mcp-server-go/internal/registry"
	"github.com/wagiedev/mcp-server-go/internal/validation"
)

// Re-export types from internal packages

// ===== Server =====

// Server dispatches MCP operations against its tool and resource registry.
type Server = mcp.Server

// Registry stores tool definitions and resources.
type Registry = registry.Registry

// ToolCallRequest asks the server to invoke one tool.
type ToolCallRequest = mcp.ToolCallRequest

// ToolCallResponse is the outcome of a tool call. Content is always text.
type ToolCallResponse = mcp.ToolCallResponse

// ReadResourceResult is the resources/read result.
type ReadResourceResult = mcp.ReadResourceResult

// ResourceContents is one entry of a resources/read result.
type ResourceContents = mcp.ResourceContents

// ===== Tools =====

// ToolParamType is the declared type of a tool parameter.
type ToolParamType = registry.ToolParamType

const (
	// ParamTypeString accepts JSON strings.
	ParamTypeString = registry.ParamTypeString
	// ParamTypeInteger accepts JSON numbers without a fractional part.
	ParamTypeInteger = registry.ParamTypeInteger
	// ParamTypeBoolean accepts true and false.
	ParamTypeBoolean = registry.ParamTypeBoolean
	// ParamTypeNumber accepts any JSON number.
	ParamTypeNumber = registry.ParamTypeNumber
)

// ToolParam declares one tool parameter.
type ToolParam = registry.ToolParam

// ToolDefinition is a registered tool.
type ToolDefinition = registry.ToolDefinition

// Handler is the function bound to a tool.
type Handler = registry.Handler

// ToolSchema is the tools/list descriptor of one tool.
type ToolSchema = registry.ToolSchema

// ===== Resources =====

// Resource is a static document addressed by URI.
type Resource = registry.Resource

// DefaultMIMEType is assigned to resources registered without a MIME type.
const DefaultMIMEType = registry.DefaultMIMEType

// ===== Validation =====

// Validator checks call arguments against a tool definition.
type Validator = validation.Validator

// ValidationMode selects what the server does with invalid tool arguments.
type ValidationMode = config.ValidationMode

const (
	// ValidationAdvisory logs problems and invokes the handler anyway.
	ValidationAdvisory = config.ValidationAdvisory
	// ValidationStrict rejects the call with an error result.
	ValidationStrict = config.ValidationStrict
	// ValidationOff skips validation.
	ValidationOff = config.ValidationOff
)

// ParseValidationMode parses a mode name. An empty name is advisory.
func ParseValidationMode(s string) (ValidationMode, error) {
	return config.ParseValidationMode(s)
}

// DefaultVersion is the server version used when none is configured.
const DefaultVersion = config.DefaultVersion

// ProtocolVersion is the MCP revision reported on initialize.
const ProtocolVersion = mcp.ProtocolVersion
