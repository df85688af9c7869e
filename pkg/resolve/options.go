package resolve

import (
	"context"

	"github.com/orchahq/nodekit/pkg/schema"
)

// OptionsProvider materializes option lists for properties that declare a
// load_options_method. It is an external collaborator invoked ahead of
// resolution; the engine never blocks on it mid-pass. Implementations may
// perform I/O and should honor the context for cancellation.
type OptionsProvider interface {
	LoadOptions(ctx context.Context, method string, params map[string]any) ([]schema.OptionItem, error)
}

// OptionsProviderFunc adapts a function to the OptionsProvider interface.
type OptionsProviderFunc func(ctx context.Context, method string, params map[string]any) ([]schema.OptionItem, error)

func (f OptionsProviderFunc) LoadOptions(ctx context.Context, method string, params map[string]any) ([]schema.OptionItem, error) {
	return f(ctx, method, params)
}

// loadDynamicOptions walks the property tree and asks the provider for every
// declared load_options_method before resolution begins. A failed load
// degrades that property's option list to empty rather than failing the
// pass. The provider receives the raw values of the declared dependency
// properties.
func (e *Engine) loadDynamicOptions(ctx context.Context, props []schema.PropertyField, raw map[string]any, prefix string, loaded map[string][]schema.OptionItem) {
	if e.provider == nil {
		return
	}

	for i := range props {
		p := &props[i]
		path := joinPath(prefix, p.Name)

		if method := p.LoadOptionsMethod(); method != "" {
			params := make(map[string]any)

			for _, dep := range p.LoadOptionsDependsOn() {
				if value, ok := raw[dep]; ok {
					params[dep] = value
				}
			}

			options, err := e.provider.LoadOptions(ctx, method, params)
			if err != nil {
				e.logger.Warn("dynamic option load failed, treating option list as empty",
					"property", path, "method", method, "error", err)

				options = nil
			}

			loaded[path] = options
		}

		for gi := range p.Groups {
			group := &p.Groups[gi]
			// Instance indexes do not partake in option loading; the loaded
			// list applies to every instance of the group.
			e.loadDynamicOptions(ctx, group.Values, rawChild(raw, p.Name, group.Name), joinPath(path, group.Name), loaded)
		}

		if len(p.Values) > 0 {
			e.loadDynamicOptions(ctx, p.Values, rawChild(raw, p.Name, ""), path, loaded)
		}
	}
}

// rawChild digs the raw sub-map feeding a nested property list, tolerating
// absent or oddly-shaped input (dependencies simply come back empty).
func rawChild(raw map[string]any, property, group string) map[string]any {
	child, ok := raw[property].(map[string]any)
	if !ok {
		return nil
	}

	if group == "" {
		return child
	}

	switch v := child[group].(type) {
	case map[string]any:
		return v
	case []any:
		if len(v) > 0 {
			if first, ok := v[0].(map[string]any); ok {
				return first
			}
		}
	}

	return nil
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + "." + name
}
