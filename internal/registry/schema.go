package registry

import "github.com/google/jsonschema-go/jsonschema"

// ToolSchema is the tools/list descriptor of one tool.
type ToolSchema struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema InputSchema `json:"inputSchema"`
}

// InputSchema describes the arguments object a tool accepts.
// Required is always encoded, as an empty array when nothing is required.
type InputSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]PropertySchema `json:"properties"`
	Required   []string                  `json:"required"`
}

// PropertySchema describes one parameter.
type PropertySchema struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// ToToolSchemas derives the tools/list descriptor of every registered tool.
func (r *Registry) ToToolSchemas() []ToolSchema {
	tools := r.ListTools()

	schemas := make([]ToolSchema, 0, len(tools))
	for _, tool := range tools {
		schemas = append(schemas, tool.Schema())
	}

	return schemas
}

// Schema derives the tools/list descriptor of the tool. Properties cover every
// parameter; Required lists the required ones in declaration order.
func (d ToolDefinition) Schema() ToolSchema {
	properties := make(map[string]PropertySchema, len(d.Parameters))
	required := make([]string, 0, len(d.Parameters))

	for _, p := range d.Parameters {
		properties[p.Name] = PropertySchema{
			Type:        p.Type.String(),
			Description: p.Description,
		}

		if p.Required {
			required = append(required, p.Name)
		}
	}

	return ToolSchema{
		Name:        d.Name,
		Description: d.Description,
		InputSchema: InputSchema{
			Type:       "object",
			Properties: properties,
			Required:   required,
		},
	}
}

// JSONSchema returns the tool's input schema as a jsonschema.Schema, the form
// expected by the official MCP SDK.
func (d ToolDefinition) JSONSchema() *jsonschema.Schema {
	properties := make(map[string]*jsonschema.Schema, len(d.Parameters))

	var required []string

	for _, p := range d.Parameters {
		properties[p.Name] = &jsonschema.Schema{
			Type:        p.Type.String(),
			Description: p.Description,
		}

		if p.Required {
			required = append(required, p.Name)
		}
	}

	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}
