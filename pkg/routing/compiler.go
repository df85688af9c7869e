// Package routing compiles the declarative request template of a resolved
// node into a concrete request descriptor, evaluating every embedded
// expression against the resolved parameter tree.
package routing

import (
	"github.com/orchahq/nodekit/pkg/expression"
	"github.com/orchahq/nodekit/pkg/schema"
)

// Compile selects the routing specs carried by active properties and
// selected options, merges them (option-level over property-level,
// later-declared over earlier, request defaults filling what remains), and
// evaluates every string field. A property counts as active when it
// contributed an entry to the resolved tree.
func Compile(desc *schema.NodeDescription, resolved map[string]any) (*RequestDescriptor, error) {
	selected := selectSpecs(desc, resolved)
	if len(selected) == 0 {
		return nil, &RoutingError{Err: ErrNoRouting}
	}

	// Request defaults sit at the bottom of the stack; every selected spec
	// overlays it in increasing specificity.
	merged := desc.RequestDefaults.Merge(nil)
	for _, spec := range selected {
		merged = merged.Merge(spec)
	}

	if merged.Method == "" || merged.URL == "" {
		return nil, &RoutingError{Err: ErrIncompleteSpec}
	}

	return evaluate(merged, resolved)
}

// selectSpecs gathers routing specs in precedence order: property-level
// specs in declaration order first, then option-level specs of selected
// options, so later merges win.
func selectSpecs(desc *schema.NodeDescription, resolved map[string]any) []*schema.RoutingSpec {
	var property, option []*schema.RoutingSpec

	for i := range desc.Properties {
		p := &desc.Properties[i]

		value, active := resolved[p.Name]
		if !active {
			continue
		}

		if p.Routing != nil {
			property = append(property, p.Routing)
		}

		if p.Type != schema.TypeOptions {
			continue
		}

		for oi := range p.Options {
			opt := &p.Options[oi]
			if opt.Routing != nil && optionSelected(opt.Value, value) {
				option = append(option, opt.Routing)
			}
		}
	}

	return append(property, option...)
}

// optionSelected compares an option value against the resolved parameter,
// treating numeric values as equal by magnitude.
func optionSelected(optionValue, resolved any) bool {
	if af, aok := toFloat(optionValue); aok {
		bf, bok := toFloat(resolved)

		return bok && af == bf
	}

	return optionValue == resolved
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// evaluate renders every string field of the merged spec through the
// expression evaluator. Any malformed template or unresolved reference is
// fatal to the compilation.
func evaluate(spec *schema.RoutingSpec, resolved map[string]any) (*RequestDescriptor, error) {
	ctx := expression.NewContext(resolved)

	url, err := expression.Evaluate(spec.URL, ctx)
	if err != nil {
		return nil, &RoutingError{Field: "url", Err: err}
	}

	descriptor := &RequestDescriptor{
		Method: spec.Method,
		URL:    url,
	}

	if len(spec.Query) > 0 {
		descriptor.Query = make(map[string]string, len(spec.Query))

		for key, raw := range spec.Query {
			value, err := expression.Evaluate(raw, ctx)
			if err != nil {
				return nil, &RoutingError{Field: "query." + key, Err: err}
			}

			descriptor.Query[key] = value
		}
	}

	if len(spec.Headers) > 0 {
		descriptor.Headers = make(map[string]string, len(spec.Headers))

		for key, raw := range spec.Headers {
			value, err := expression.Evaluate(raw, ctx)
			if err != nil {
				return nil, &RoutingError{Field: "headers." + key, Err: err}
			}

			descriptor.Headers[key] = value
		}
	}

	if len(spec.Body) > 0 {
		body, err := evaluateTree("body", spec.Body, ctx)
		if err != nil {
			return nil, err
		}

		descriptor.Body = body.(map[string]any)
	}

	return descriptor, nil
}

// evaluateTree walks an arbitrarily nested body template, replacing every
// string leaf by its evaluated value. Single-expression leaves keep the
// referenced value's type.
func evaluateTree(field string, node any, ctx *expression.Context) (any, error) {
	switch v := node.(type) {
	case string:
		value, err := expression.Resolve(v, ctx)
		if err != nil {
			return nil, &RoutingError{Field: field, Err: err}
		}

		return value, nil
	case map[string]any:
		out := make(map[string]any, len(v))

		for key, child := range v {
			evaluated, err := evaluateTree(field+"."+key, child, ctx)
			if err != nil {
				return nil, err
			}

			out[key] = evaluated
		}

		return out, nil
	case []any:
		out := make([]any, len(v))

		for i, child := range v {
			evaluated, err := evaluateTree(field, child, ctx)
			if err != nil {
				return nil, err
			}

			out[i] = evaluated
		}

		return out, nil
	default:
		return v, nil
	}
}
