package registry

import "context"

// ToolParamType is the declared type of a tool parameter.
type ToolParamType string

const (
	// ParamTypeString accepts string values.
	ParamTypeString ToolParamType = "string"
	// ParamTypeInteger accepts whole numbers. Booleans never qualify.
	ParamTypeInteger ToolParamType = "integer"
	// ParamTypeBoolean accepts true and false.
	ParamTypeBoolean ToolParamType = "boolean"
	// ParamTypeNumber accepts whole and fractional numbers. Booleans never qualify.
	ParamTypeNumber ToolParamType = "number"
)

// Valid reports whether t is one of the declared parameter types.
func (t ToolParamType) Valid() bool {
	switch t {
	case ParamTypeString, ParamTypeInteger, ParamTypeBoolean, ParamTypeNumber:
		return true
	default:
		return false
	}
}

// String returns the wire name of the type.
func (t ToolParamType) String() string {
	return string(t)
}

// ToolParam describes one named parameter of a tool.
type ToolParam struct {
	Name        string
	Type        ToolParamType
	Description string
	Required    bool
}

// Param returns a required parameter.
func Param(name string, typ ToolParamType, description string) ToolParam {
	return ToolParam{
		Name:        name,
		Type:        typ,
		Description: description,
		Required:    true,
	}
}

// OptionalParam returns a parameter that may be omitted.
func OptionalParam(name string, typ ToolParamType, description string) ToolParam {
	return ToolParam{
		Name:        name,
		Type:        typ,
		Description: description,
	}
}

// Handler is the function bound to a tool.
//
// It receives the call arguments as a single string-keyed bundle and returns
// a result or an error. The dispatcher stringifies the result.
type Handler func(ctx context.Context, args map[string]any) (any, error)

// ToolDefinition is a named, schema-described invocable capability.
type ToolDefinition struct {
	Name        string
	Description string
	Parameters  []ToolParam
	Handler     Handler
}

// HasParam reports whether the tool declares a parameter called name.
func (d ToolDefinition) HasParam(name string) bool {
	for _, p := range d.Parameters {
		if p.Name == name {
			return true
		}
	}

	return false
}

// DefaultMIMEType is applied to resources registered without a MIME type.
const DefaultMIMEType = "text/plain"

// Resource is a named, URI-addressed piece of content.
type Resource struct {
	URI         string
	Name        string
	Description string
	MIMEType    string

	// Text is the body returned by resources/read. It is optional.
	Text string
}
