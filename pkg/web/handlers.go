// Package web provides the HTTP handlers of the node API.
package web

import (
	"log/slog"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/orchahq/nodekit/pkg/registry"
	"github.com/orchahq/nodekit/pkg/resolve"
	"github.com/orchahq/nodekit/pkg/routing"
)

type APIHandlers struct {
	logger    *slog.Logger
	registry  *registry.Registry
	engine    *resolve.Engine
	validator *validator.Validate
}

func NewAPIHandlers(
	logger *slog.Logger,
	registry *registry.Registry,
	engine *resolve.Engine,
	validator *validator.Validate,
) *APIHandlers {
	return &APIHandlers{
		logger:    logger,
		registry:  registry,
		engine:    engine,
		validator: validator,
	}
}

// ListNodes returns a summary of the latest version of every registered
// node description.
func (h *APIHandlers) ListNodes(c fiber.Ctx) error {
	descriptions := h.registry.List()

	summaries := make([]NodeSummary, len(descriptions))
	for i, desc := range descriptions {
		summaries[i] = toSummary(desc)
	}

	return c.JSON(fiber.Map{
		"nodes":       summaries,
		"total_count": len(summaries),
	})
}

// GetNode returns the full description of one node. The optional version
// query parameter selects a specific version; by default the latest wins.
func (h *APIHandlers) GetNode(c fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		return badRequest(c, "Node name is required")
	}

	version, err := h.parseVersion(c)
	if err != nil {
		return badRequest(c, "Invalid version: "+err.Error())
	}

	desc, err := h.registry.Get(name, version)
	if err != nil {
		return notFound(c, "Node not found")
	}

	return c.JSON(desc)
}

// ResolveNode validates raw parameters against a node description and
// returns the resolved parameter tree.
func (h *APIHandlers) ResolveNode(c fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		return badRequest(c, "Node name is required")
	}

	version, err := h.parseVersion(c)
	if err != nil {
		return badRequest(c, "Invalid version: "+err.Error())
	}

	var req ResolveRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	desc, err := h.registry.Get(name, version)
	if err != nil {
		return notFound(c, "Node not found")
	}

	requestID := uuid.NewString()
	h.logger.Info("Resolving node parameters", "request_id", requestID, "node", desc.Name, "version", desc.Version)

	resolved, err := h.engine.Resolve(c.Context(), desc, req.Parameters)
	if err != nil {
		h.logger.Warn("Parameter resolution failed", "request_id", requestID, "node", desc.Name, "error", err)

		return handleResolveError(c, err)
	}

	return c.JSON(ResolveResponse{
		Node:       desc.Name,
		Version:    desc.Version,
		Parameters: resolved,
	})
}

// CompileNode resolves raw parameters and compiles the node's routing
// template into a concrete request descriptor.
func (h *APIHandlers) CompileNode(c fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		return badRequest(c, "Node name is required")
	}

	version, err := h.parseVersion(c)
	if err != nil {
		return badRequest(c, "Invalid version: "+err.Error())
	}

	var req CompileRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	desc, err := h.registry.Get(name, version)
	if err != nil {
		return notFound(c, "Node not found")
	}

	requestID := uuid.NewString()
	h.logger.Info("Compiling node request", "request_id", requestID, "node", desc.Name, "version", desc.Version)

	resolved, err := h.engine.Resolve(c.Context(), desc, req.Parameters)
	if err != nil {
		h.logger.Warn("Parameter resolution failed", "request_id", requestID, "node", desc.Name, "error", err)

		return handleResolveError(c, err)
	}

	descriptor, err := routing.Compile(desc, resolved)
	if err != nil {
		h.logger.Warn("Request compilation failed", "request_id", requestID, "node", desc.Name, "error", err)

		return handleResolveError(c, err)
	}

	return c.JSON(CompileResponse{
		Node:       desc.Name,
		Version:    desc.Version,
		Parameters: resolved,
		Request: compiledRequest{
			Method:  descriptor.Method,
			URL:     descriptor.URL,
			Query:   descriptor.Query,
			Headers: descriptor.Headers,
			Body:    descriptor.Body,
		},
	})
}

func (h *APIHandlers) parseVersion(c fiber.Ctx) (int, error) {
	versionStr := c.Query("version")
	if versionStr == "" {
		return 0, nil
	}

	return strconv.Atoi(versionStr)
}
