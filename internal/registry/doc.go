// Package registry is the in-memory store of tools and resources for one
// server instance.
//
// Tools are keyed by name and resources by URI. Registering under an existing
// key replaces the previous entry. The registry performs no validation of its
// own; it only stores definitions and derives the JSON-Schema-like descriptors
// advertised by tools/list.
package registry
