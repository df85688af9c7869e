// Package registry holds the loaded node descriptions, keyed by internal
// name and version. Descriptions are validated on the way in and read-only
// afterwards.
package registry

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/orchahq/nodekit/pkg/schema"
)

type Registry struct {
	logger *slog.Logger
	nodes  map[string]map[int]*schema.NodeDescription
}

func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		logger: logger,
		nodes:  make(map[string]map[int]*schema.NodeDescription),
	}
}

// Register validates and stores a node description. Registering the same
// name and version twice is an error.
func (r *Registry) Register(desc *schema.NodeDescription) error {
	if err := desc.Validate(); err != nil {
		return fmt.Errorf("node '%s' failed schema validation: %w", desc.Name, err)
	}

	versions, ok := r.nodes[desc.Name]
	if !ok {
		versions = make(map[int]*schema.NodeDescription)
		r.nodes[desc.Name] = versions
	}

	if _, exists := versions[desc.Version]; exists {
		return fmt.Errorf("node '%s' version %d already registered", desc.Name, desc.Version)
	}

	versions[desc.Version] = desc
	r.logger.Debug("Registered node description", "node", desc.Name, "version", desc.Version)

	return nil
}

// Get returns one node description. Version 0 selects the latest registered
// version.
func (r *Registry) Get(name string, version int) (*schema.NodeDescription, error) {
	versions, ok := r.nodes[name]
	if !ok {
		return nil, fmt.Errorf("node '%s' not registered", name)
	}

	if version == 0 {
		latest := 0
		for v := range versions {
			if v > latest {
				latest = v
			}
		}

		version = latest
	}

	desc, ok := versions[version]
	if !ok {
		return nil, fmt.Errorf("node '%s' version %d not registered", name, version)
	}

	return desc, nil
}

// List returns the latest version of every registered node, sorted by name.
func (r *Registry) List() []*schema.NodeDescription {
	out := make([]*schema.NodeDescription, 0, len(r.nodes))

	for name := range r.nodes {
		desc, err := r.Get(name, 0)
		if err != nil {
			continue
		}

		out = append(out, desc)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})

	return out
}

// LoadDirectory registers every *.json, *.yaml and *.yml node description
// document found directly under path. Any invalid document aborts the load;
// a malformed schema must never become resolvable.
func (r *Registry) LoadDirectory(path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("failed to read schema directory %s: %w", path, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".json", ".yaml", ".yml":
		default:
			continue
		}

		file := filepath.Join(path, entry.Name())

		desc, err := schema.LoadFile(file)
		if err != nil {
			return fmt.Errorf("failed to load schema %s: %w", file, err)
		}

		if err := r.Register(desc); err != nil {
			return err
		}

		r.logger.Info("Loaded node description", "file", file, "node", desc.Name, "version", desc.Version)
	}

	return nil
}
