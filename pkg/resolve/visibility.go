package resolve

import (
	"github.com/orchahq/nodekit/pkg/schema"
)

// isActive evaluates a visibility predicate against the running value
// context. Every show clause must match (a referenced sibling that is absent
// from the context fails the clause) and no hide clause may match.
func isActive(opts *schema.DisplayOptions, values map[string]any) bool {
	if opts == nil {
		return true
	}

	for key, allowed := range opts.Show {
		current, ok := values[key]
		if !ok || !containsValue(allowed, current) {
			return false
		}
	}

	for key, forbidden := range opts.Hide {
		current, ok := values[key]
		if ok && containsValue(forbidden, current) {
			return false
		}
	}

	return true
}

// Active returns the properties of one list that are visible given the
// resolved sibling values, in declaration order. Sibling references resolve
// within this list only; callers recurse per group instance with a fresh
// value context.
func Active(props []schema.PropertyField, values map[string]any) []*schema.PropertyField {
	active := make([]*schema.PropertyField, 0, len(props))

	for i := range props {
		if isActive(props[i].DisplayOptions, values) {
			active = append(active, &props[i])
		}
	}

	return active
}

// visibleOptions filters an option list by per-option display conditions.
func visibleOptions(options []schema.OptionItem, values map[string]any) []*schema.OptionItem {
	visible := make([]*schema.OptionItem, 0, len(options))

	for i := range options {
		if isActive(options[i].DisplayOptions, values) {
			visible = append(visible, &options[i])
		}
	}

	return visible
}

// containsValue reports set membership with numeric values compared by
// magnitude, so schema literals match however the raw document encoded them.
func containsValue(set []any, value any) bool {
	for _, member := range set {
		if valueEqual(member, value) {
			return true
		}
	}

	return false
}

func valueEqual(a, b any) bool {
	if af, aok := toFloat(a); aok {
		bf, bok := toFloat(b)

		return bok && af == bf
	}

	return a == b
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
