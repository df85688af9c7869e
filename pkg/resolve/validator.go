package resolve

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/orchahq/nodekit/pkg/schema"
)

var colorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

var colorAlphaPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// validateValue normalizes one raw value against its property definition.
// optionSet is the materialized option list for options/multiOptions
// properties (static options filtered by visibility, or dynamically loaded
// ones). Collection-shaped types are resolved by the engine, never here.
func validateValue(p *schema.PropertyField, path string, raw any, optionSet []*schema.OptionItem) (any, FieldErrors) {
	if p.MultipleValues() && p.Type != schema.TypeMultiOptions {
		seq, ok := raw.([]any)
		if !ok {
			return nil, FieldErrors{fieldErr(path, KindTypeMismatch, "expected a sequence of %s values, got %T", p.Type, raw)}
		}

		var errs FieldErrors

		// Sortable only promises order preservation; elements are validated
		// in place without reordering.
		out := make([]any, 0, len(seq))

		for i, element := range seq {
			value, elementErrs := validateSingle(p, fmt.Sprintf("%s.%d", path, i), element, optionSet)
			if len(elementErrs) > 0 {
				errs = append(errs, elementErrs...)

				continue
			}

			out = append(out, value)
		}

		if len(errs) > 0 {
			return nil, errs
		}

		return out, nil
	}

	return validateSingle(p, path, raw, optionSet)
}

func validateSingle(p *schema.PropertyField, path string, raw any, optionSet []*schema.OptionItem) (any, FieldErrors) {
	switch p.Type {
	case schema.TypeBoolean:
		return validateBoolean(path, raw)
	case schema.TypeString:
		return validateString(path, raw)
	case schema.TypeNumber:
		return validateNumber(p, path, raw)
	case schema.TypeOptions:
		return validateOption(p, path, raw, optionSet)
	case schema.TypeMultiOptions:
		return validateMultiOption(p, path, raw, optionSet)
	case schema.TypeJSON:
		return validateJSON(path, raw)
	case schema.TypeDateTime:
		return validateDateTime(path, raw)
	case schema.TypeColor:
		return validateColor(p, path, raw)
	case schema.TypeHidden:
		// Hidden properties carry data but are never user-validated.
		return raw, nil
	case schema.TypeResourceLocator:
		return requireKeys(path, raw, "resourceLocator", "mode", "value")
	case schema.TypeResourceMapper:
		return requireKeys(path, raw, "resourceMapper", "mappingMode", "value")
	case schema.TypeFilter:
		return validateFilter(path, raw)
	case schema.TypeAssignmentCollection:
		return requireKeys(path, raw, "assignmentCollection", "assignments")
	case schema.TypeCredentialsSelect:
		return validateCredentialsSelect(p, path, raw)
	case schema.TypeCredentials:
		return validateCredentials(path, raw)
	case schema.TypeWorkflowSelector:
		return validateWorkflowSelector(path, raw)
	default:
		return nil, FieldErrors{fieldErr(path, KindTypeMismatch, "type %s does not accept direct values", p.Type)}
	}
}

func validateBoolean(path string, raw any) (any, FieldErrors) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b, nil
		}
	case float64:
		if v == 0 || v == 1 {
			return v == 1, nil
		}
	case int:
		if v == 0 || v == 1 {
			return v == 1, nil
		}
	}

	return nil, FieldErrors{fieldErr(path, KindTypeMismatch, "cannot interpret %v as boolean", raw)}
}

func validateString(path string, raw any) (any, FieldErrors) {
	// rows/editor/password are presentation-only and constrain nothing.
	switch v := raw.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(v), nil
	default:
		return nil, FieldErrors{fieldErr(path, KindTypeMismatch, "cannot interpret %T as string", raw)}
	}
}

func validateNumber(p *schema.PropertyField, path string, raw any) (any, FieldErrors) {
	value, ok := toFloat(raw)
	if !ok {
		if s, isStr := raw.(string); isStr {
			parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, FieldErrors{fieldErr(path, KindTypeMismatch, "cannot interpret %q as number", s)}
			}

			value = parsed
		} else {
			return nil, FieldErrors{fieldErr(path, KindTypeMismatch, "cannot interpret %T as number", raw)}
		}
	}

	opts, _ := p.TypeOptions.(*schema.NumberOptions)
	if opts != nil {
		if opts.NumberPrecision != nil {
			factor := math.Pow10(*opts.NumberPrecision)
			value = math.Round(value*factor) / factor
		}

		if opts.MinValue != nil && value < *opts.MinValue {
			return nil, FieldErrors{fieldErr(path, KindRange, "%v is below minimum %v", value, *opts.MinValue)}
		}

		if opts.MaxValue != nil && value > *opts.MaxValue {
			return nil, FieldErrors{fieldErr(path, KindRange, "%v is above maximum %v", value, *opts.MaxValue)}
		}
	}

	return value, nil
}

func validateOption(p *schema.PropertyField, path string, raw any, optionSet []*schema.OptionItem) (any, FieldErrors) {
	if allowArbitraryValues(p) {
		return raw, nil
	}

	for _, opt := range optionSet {
		if valueEqual(opt.Value, raw) {
			return opt.Value, nil
		}
	}

	return nil, FieldErrors{fieldErr(path, KindUnknownOption, "%v is not an allowed option", raw)}
}

func validateMultiOption(p *schema.PropertyField, path string, raw any, optionSet []*schema.OptionItem) (any, FieldErrors) {
	seq, ok := raw.([]any)
	if !ok {
		return nil, FieldErrors{fieldErr(path, KindTypeMismatch, "expected a sequence of option values, got %T", raw)}
	}

	var errs FieldErrors

	out := make([]any, 0, len(seq))

	for i, element := range seq {
		epath := fmt.Sprintf("%s.%d", path, i)

		value, elementErrs := validateOption(p, epath, element, optionSet)
		if len(elementErrs) > 0 {
			errs = append(errs, elementErrs...)

			continue
		}

		duplicate := false

		for _, existing := range out {
			if valueEqual(existing, value) {
				errs = append(errs, fieldErr(epath, KindDuplicateOption, "%v selected more than once", value))
				duplicate = true

				break
			}
		}

		if !duplicate {
			out = append(out, value)
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return out, nil
}

func validateJSON(path string, raw any) (any, FieldErrors) {
	switch v := raw.(type) {
	case string:
		var parsed any
		if err := json.Unmarshal([]byte(v), &parsed); err != nil {
			return nil, FieldErrors{fieldErr(path, KindTypeMismatch, "not well-formed JSON: %v", err)}
		}

		return parsed, nil
	case map[string]any, []any, float64, bool, nil:
		return v, nil
	case int:
		return float64(v), nil
	default:
		return nil, FieldErrors{fieldErr(path, KindTypeMismatch, "cannot interpret %T as structured data", raw)}
	}
}

func validateDateTime(path string, raw any) (any, FieldErrors) {
	s, ok := raw.(string)
	if !ok {
		return nil, FieldErrors{fieldErr(path, KindTypeMismatch, "cannot interpret %T as dateTime", raw)}
	}

	for _, layout := range dateTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed.Format(time.RFC3339), nil
		}
	}

	return nil, FieldErrors{fieldErr(path, KindTypeMismatch, "cannot parse %q as dateTime", s)}
}

func validateColor(p *schema.PropertyField, path string, raw any) (any, FieldErrors) {
	s, ok := raw.(string)
	if !ok {
		return nil, FieldErrors{fieldErr(path, KindTypeMismatch, "cannot interpret %T as color", raw)}
	}

	pattern := colorPattern
	if opts, isColor := p.TypeOptions.(*schema.ColorOptions); isColor && opts.ShowAlpha {
		pattern = colorAlphaPattern
	}

	if !pattern.MatchString(s) {
		return nil, FieldErrors{fieldErr(path, KindTypeMismatch, "%q is not a hex color", s)}
	}

	return strings.ToLower(s), nil
}

func validateFilter(path string, raw any) (any, FieldErrors) {
	value, errs := requireKeys(path, raw, "filter", "conditions", "combinator")
	if len(errs) > 0 {
		return nil, errs
	}

	m := value.(map[string]any)
	if _, ok := m["conditions"].([]any); !ok {
		return nil, FieldErrors{fieldErr(path, KindTypeMismatch, "filter conditions must be a sequence")}
	}

	return m, nil
}

func validateCredentialsSelect(p *schema.PropertyField, path string, raw any) (any, FieldErrors) {
	s, ok := raw.(string)
	if !ok {
		return nil, FieldErrors{fieldErr(path, KindTypeMismatch, "cannot interpret %T as credential type", raw)}
	}

	if len(p.CredentialTypes) > 0 {
		for _, allowed := range p.CredentialTypes {
			if s == allowed {
				return s, nil
			}
		}

		return nil, FieldErrors{fieldErr(path, KindUnknownOption, "%q is not an allowed credential type", s)}
	}

	return s, nil
}

func validateCredentials(path string, raw any) (any, FieldErrors) {
	switch raw.(type) {
	case string, map[string]any:
		return raw, nil
	default:
		return nil, FieldErrors{fieldErr(path, KindTypeMismatch, "cannot interpret %T as credentials reference", raw)}
	}
}

func validateWorkflowSelector(path string, raw any) (any, FieldErrors) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case map[string]any:
		if _, ok := v["value"]; !ok {
			return nil, FieldErrors{fieldErr(path, KindTypeMismatch, "workflow selector needs a value key")}
		}

		return v, nil
	default:
		return nil, FieldErrors{fieldErr(path, KindTypeMismatch, "cannot interpret %T as workflow selector", raw)}
	}
}

// requireKeys performs the structural check shared by the composite value
// types: the value must be a mapping carrying the named sub-keys. Deep
// semantic validation belongs to external collaborators.
func requireKeys(path string, raw any, typeName string, keys ...string) (any, FieldErrors) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, FieldErrors{fieldErr(path, KindTypeMismatch, "cannot interpret %T as %s value", raw, typeName)}
	}

	for _, key := range keys {
		if _, present := m[key]; !present {
			return nil, FieldErrors{fieldErr(path, KindTypeMismatch, "%s value is missing %q", typeName, key)}
		}
	}

	return m, nil
}

func allowArbitraryValues(p *schema.PropertyField) bool {
	switch opts := p.TypeOptions.(type) {
	case *schema.OptionsOptions:
		return opts.AllowArbitraryValues
	case *schema.MultiOptionsOptions:
		return opts.AllowArbitraryValues
	default:
		return false
	}
}
