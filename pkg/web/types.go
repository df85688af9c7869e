// Package web provides HTTP request and response types for the node API.
package web

import "github.com/orchahq/nodekit/pkg/schema"

// ResolveRequest represents the request body for resolving node parameters.
type ResolveRequest struct {
	Parameters map[string]any `json:"parameters" validate:"required"`
}

// ResolveResponse carries a fully resolved parameter tree.
type ResolveResponse struct {
	Node       string         `json:"node"`
	Version    int            `json:"version"`
	Parameters map[string]any `json:"parameters"`
}

// CompileRequest represents the request body for compiling a request
// descriptor from raw node parameters.
type CompileRequest struct {
	Parameters map[string]any `json:"parameters" validate:"required"`
}

// CompileResponse carries the compiled request descriptor alongside the
// resolved parameters it was built from.
type CompileResponse struct {
	Node       string          `json:"node"`
	Version    int             `json:"version"`
	Parameters map[string]any  `json:"parameters"`
	Request    compiledRequest `json:"request"`
}

type compiledRequest struct {
	Method  string            `json:"method"`
	URL     string            `json:"url"`
	Query   map[string]string `json:"query,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
	Body    map[string]any    `json:"body,omitempty"`
}

// NodeSummary is the list-endpoint projection of a node description.
type NodeSummary struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Version     int    `json:"version"`
	Description string `json:"description,omitempty"`
}

// FieldErrorResponse is one entry of the errors array returned when
// parameter validation fails.
type FieldErrorResponse struct {
	Path    string `json:"path"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func toSummary(desc *schema.NodeDescription) NodeSummary {
	return NodeSummary{
		Name:        desc.Name,
		DisplayName: desc.DisplayName,
		Version:     desc.Version,
		Description: desc.Description,
	}
}
