// Package resolve turns a node schema plus a raw parameter map into a fully
// validated parameter tree: it computes the active property set, normalizes
// every active value against its declared type, and batches all failures of
// a pass into a single error.
package resolve

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/orchahq/nodekit/pkg/schema"
)

// Engine orchestrates visibility resolution and type validation. It holds no
// per-invocation state; concurrent Resolve calls are independent.
type Engine struct {
	logger   *slog.Logger
	provider OptionsProvider
}

// NewEngine creates a resolution engine. provider may be nil when no node in
// play declares dynamic options.
func NewEngine(logger *slog.Logger, provider OptionsProvider) *Engine {
	return &Engine{logger: logger, provider: provider}
}

// Resolve validates raw against the description and returns the resolved
// parameter tree. On any validation failure it returns a batched FieldErrors
// covering every failing property; partial trees are never returned. The
// description must have passed schema load validation.
func (e *Engine) Resolve(ctx context.Context, desc *schema.NodeDescription, raw map[string]any) (map[string]any, error) {
	loaded := make(map[string][]schema.OptionItem)
	e.loadDynamicOptions(ctx, desc.Properties, raw, "", loaded)

	out, errs := e.resolveList(desc.Properties, raw, "", "", loaded)
	if len(errs) > 0 {
		return nil, errs
	}

	return out, nil
}

// resolveList performs one declaration-order pass over a property list.
// pathPrefix addresses values (and includes instance indexes); schemaPrefix
// addresses schema positions (and does not), which is what dynamically
// loaded option lists are keyed by. Each call owns a fresh value context, so
// sibling references never cross group instances.
func (e *Engine) resolveList(props []schema.PropertyField, raw map[string]any, pathPrefix, schemaPrefix string, loaded map[string][]schema.OptionItem) (map[string]any, FieldErrors) {
	out := make(map[string]any)
	vctx := make(map[string]any)

	var errs FieldErrors

	for i := range props {
		p := &props[i]

		if !isActive(p.DisplayOptions, vctx) {
			// Inactive: the value, if any, is discarded for this pass.
			continue
		}

		if !p.Type.DataBearing() {
			continue
		}

		path := joinPath(pathPrefix, p.Name)
		schemaPath := joinPath(schemaPrefix, p.Name)

		rawValue, present := raw[p.Name]

		var (
			value     any
			valueErrs FieldErrors
		)

		switch {
		case !present && p.HasDefault():
			// Declared defaults resolve unchanged; they are schema-author
			// input, not user input.
			value = p.Default
		case !present && p.Required:
			errs = append(errs, fieldErr(path, KindMissingRequired, "required parameter has no value"))

			continue
		case !present:
			continue
		case p.Type == schema.TypeFixedCollection:
			value, valueErrs = e.resolveFixedCollection(p, path, schemaPath, rawValue, loaded)
		case p.Type == schema.TypeCollection:
			value, valueErrs = e.resolveCollection(p, path, schemaPath, rawValue, loaded)
		default:
			value, valueErrs = validateValue(p, path, rawValue, e.optionSet(p, schemaPath, vctx, loaded))
		}

		if len(valueErrs) > 0 {
			errs = append(errs, valueErrs...)

			continue
		}

		out[p.Name] = value
		vctx[p.Name] = value
	}

	return out, errs
}

// resolveFixedCollection validates a fixedCollection value: each group
// instance is resolved recursively against the group's own field list with
// an isolated value context, and instance counts honor the declared bounds.
func (e *Engine) resolveFixedCollection(p *schema.PropertyField, path, schemaPath string, raw any, loaded map[string][]schema.OptionItem) (any, FieldErrors) {
	value, ok := raw.(map[string]any)
	if !ok {
		return nil, FieldErrors{fieldErr(path, KindTypeMismatch, "expected group instances, got %T", raw)}
	}

	opts, _ := p.TypeOptions.(*schema.FixedCollectionOptions)
	multiple := opts != nil && opts.MultipleValues

	out := make(map[string]any, len(p.Groups))

	var errs FieldErrors

	for gi := range p.Groups {
		group := &p.Groups[gi]
		gpath := joinPath(path, group.Name)
		gschema := joinPath(schemaPath, group.Name)

		if !multiple {
			instance, present := value[group.Name]
			if !present {
				continue
			}

			m, ok := instance.(map[string]any)
			if !ok {
				errs = append(errs, fieldErr(gpath, KindTypeMismatch, "expected a group instance, got %T", instance))

				continue
			}

			resolved, instErrs := e.resolveList(group.Values, m, gpath, gschema, loaded)
			if len(instErrs) > 0 {
				errs = append(errs, instErrs...)

				continue
			}

			out[group.Name] = resolved

			continue
		}

		var instances []any

		switch v := value[group.Name].(type) {
		case nil:
		case []any:
			instances = v
		default:
			errs = append(errs, fieldErr(gpath, KindTypeMismatch, "expected a sequence of group instances, got %T", v))

			continue
		}

		if boundsErr := checkBounds(opts, gpath, len(instances)); boundsErr != nil {
			errs = append(errs, boundsErr)

			continue
		}

		resolved := make([]any, 0, len(instances))

		for idx, instance := range instances {
			ipath := fmt.Sprintf("%s.%d", gpath, idx)

			m, ok := instance.(map[string]any)
			if !ok {
				errs = append(errs, fieldErr(ipath, KindTypeMismatch, "expected a group instance, got %T", instance))

				continue
			}

			value, instErrs := e.resolveList(group.Values, m, ipath, gschema, loaded)
			if len(instErrs) > 0 {
				errs = append(errs, instErrs...)

				continue
			}

			resolved = append(resolved, value)
		}

		out[group.Name] = resolved
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return out, nil
}

// resolveCollection validates a collection value: a free-form bag of the
// declared optional sub-fields. Unknown keys are dropped.
func (e *Engine) resolveCollection(p *schema.PropertyField, path, schemaPath string, raw any, loaded map[string][]schema.OptionItem) (any, FieldErrors) {
	if p.MultipleValues() {
		seq, ok := raw.([]any)
		if !ok {
			return nil, FieldErrors{fieldErr(path, KindTypeMismatch, "expected a sequence of collection values, got %T", raw)}
		}

		var errs FieldErrors

		out := make([]any, 0, len(seq))

		for idx, instance := range seq {
			m, ok := instance.(map[string]any)
			if !ok {
				errs = append(errs, fieldErr(fmt.Sprintf("%s.%d", path, idx), KindTypeMismatch, "expected a collection value, got %T", instance))

				continue
			}

			resolved, instErrs := e.resolveList(p.Values, m, fmt.Sprintf("%s.%d", path, idx), schemaPath, loaded)
			if len(instErrs) > 0 {
				errs = append(errs, instErrs...)

				continue
			}

			out = append(out, resolved)
		}

		if len(errs) > 0 {
			return nil, errs
		}

		return out, nil
	}

	m, ok := raw.(map[string]any)
	if !ok {
		return nil, FieldErrors{fieldErr(path, KindTypeMismatch, "expected a collection value, got %T", raw)}
	}

	resolved, errs := e.resolveList(p.Values, m, path, schemaPath, loaded)
	if len(errs) > 0 {
		return nil, errs
	}

	return resolved, nil
}

func checkBounds(opts *schema.FixedCollectionOptions, path string, count int) *FieldError {
	if opts == nil {
		return nil
	}

	if opts.MinRequiredFields != nil && count < *opts.MinRequiredFields {
		return fieldErr(path, KindCollectionBounds, "%d instances, at least %d required", count, *opts.MinRequiredFields)
	}

	if opts.MaxAllowedFields != nil && count > *opts.MaxAllowedFields {
		return fieldErr(path, KindCollectionBounds, "%d instances, at most %d allowed", count, *opts.MaxAllowedFields)
	}

	return nil
}

// optionSet returns the option list an options/multiOptions value is checked
// against: the dynamically loaded list when a load method is declared
// (possibly empty after a failed load), otherwise the static options
// filtered by per-option visibility.
func (e *Engine) optionSet(p *schema.PropertyField, schemaPath string, vctx map[string]any, loaded map[string][]schema.OptionItem) []*schema.OptionItem {
	if p.LoadOptionsMethod() != "" && e.provider != nil {
		options := loaded[schemaPath]

		set := make([]*schema.OptionItem, len(options))
		for i := range options {
			set[i] = &options[i]
		}

		return set
	}

	return visibleOptions(p.Options, vctx)
}
