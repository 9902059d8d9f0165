package registry

import (
	"slices"
	"sync"
)

// Registry stores tool and resource definitions.
//
// It is safe for concurrent use: writers are serialized and readers always
// observe a consistent snapshot. Listings follow first-registration order.
type Registry struct {
	mu sync.RWMutex

	tools     map[string]ToolDefinition
	toolOrder []string

	resources     map[string]Resource
	resourceOrder []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		tools:     make(map[string]ToolDefinition, 8),
		resources: make(map[string]Resource, 8),
	}
}

// RegisterTool inserts def, replacing any tool with the same name.
func (r *Registry) RegisterTool(def ToolDefinition) {
	def.Parameters = slices.Clone(def.Parameters)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[def.Name]; !exists {
		r.toolOrder = append(r.toolOrder, def.Name)
	}

	r.tools[def.Name] = def
}

// RegisterResource inserts res, replacing any resource with the same URI.
// An empty MIME type is replaced with DefaultMIMEType.
func (r *Registry) RegisterResource(res Resource) {
	if res.MIMEType == "" {
		res.MIMEType = DefaultMIMEType
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.resources[res.URI]; !exists {
		r.resourceOrder = append(r.resourceOrder, res.URI)
	}

	r.resources[res.URI] = res
}

// GetTool returns the tool registered under name.
func (r *Registry) GetTool(name string) (ToolDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.tools[name]

	return def, ok
}

// GetResource returns the resource registered under uri.
func (r *Registry) GetResource(uri string) (Resource, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.resources[uri]

	return res, ok
}

// ToolExists reports whether a tool is registered under name.
func (r *Registry) ToolExists(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.tools[name]

	return ok
}

// ListTools returns every registered tool exactly once.
func (r *Registry) ListTools() []ToolDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]ToolDefinition, 0, len(r.toolOrder))
	for _, name := range r.toolOrder {
		result = append(result, r.tools[name])
	}

	return result
}

// ListResources returns every registered resource exactly once.
func (r *Registry) ListResources() []Resource {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Resource, 0, len(r.resourceOrder))
	for _, uri := range r.resourceOrder {
		result = append(result, r.resources[uri])
	}

	return result
}

// Len returns the number of registered tools and resources.
func (r *Registry) Len() (tools, resources int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.tools), len(r.resources)
}
