package schema

import (
	"errors"
	"fmt"
)

// Validate enforces the load-time invariants of the description: type tags
// are known, sibling names are unique, type options match their type tag,
// visibility references point strictly backwards within the same property
// list, and defaults have a type-appropriate shape. All violations are
// collected and returned together; any violation makes the description
// unusable.
func (d *NodeDescription) Validate() error {
	var errs []error

	if d.Name == "" {
		errs = append(errs, schemaErr("", fmt.Errorf("%w: missing node name", ErrMalformedDocument)))
	}

	if d.RequestDefaults != nil && !ValidMethod(d.RequestDefaults.Method) {
		errs = append(errs, schemaErrf("request_defaults", ErrInvalidRouting, "unknown method %q", d.RequestDefaults.Method))
	}

	errs = append(errs, validateList(d.Properties, d.Name)...)

	return errors.Join(errs...)
}

// validateList checks one property list. Visibility references are legal only
// when they name a sibling declared strictly earlier in the same list;
// references never cross fixedCollection group boundaries.
func validateList(props []PropertyField, path string) []error {
	var errs []error

	// First declaration index of every sibling name, so forward references
	// can be told apart from unknown ones.
	index := make(map[string]int, len(props))

	for i := range props {
		if props[i].Name == "" {
			continue
		}

		if _, seen := index[props[i].Name]; seen {
			errs = append(errs, schemaErr(path+"."+props[i].Name, ErrDuplicateName))

			continue
		}

		index[props[i].Name] = i
	}

	for i := range props {
		p := &props[i]
		ppath := path + "." + p.Name

		if p.Name == "" {
			errs = append(errs, schemaErr(path, fmt.Errorf("%w: property %d has no name", ErrMalformedDocument, i)))

			continue
		}

		errs = append(errs, validateProperty(p, ppath)...)
		errs = append(errs, validateVisibilityRefs(p.DisplayOptions, i, index, ppath)...)

		for oi := range p.Options {
			opt := &p.Options[oi]
			if opt.DisplayOptions != nil {
				opath := fmt.Sprintf("%s.options.%d", ppath, oi)
				errs = append(errs, validateVisibilityRefs(opt.DisplayOptions, i, index, opath)...)
			}

			if opt.Routing != nil {
				// Option routing picks the request template for the one
				// selected option; a multi-valued selection has no single
				// winner, so the spec attaches nowhere.
				if p.Type == TypeMultiOptions {
					errs = append(errs, schemaErrf(ppath, ErrInvalidRouting, "option %q carries routing on a multiOptions property", opt.Name))
				} else if !ValidMethod(opt.Routing.Method) {
					errs = append(errs, schemaErrf(ppath, ErrInvalidRouting, "option %q declares unknown method %q", opt.Name, opt.Routing.Method))
				}
			}
		}

		for gi := range p.Groups {
			group := &p.Groups[gi]
			errs = append(errs, validateList(group.Values, ppath+"."+group.Name)...)
		}

		if len(p.Values) > 0 {
			errs = append(errs, validateList(p.Values, ppath)...)
		}
	}

	return errs
}

// validateVisibilityRefs verifies every show/hide key resolves to an index
// strictly before the referencing property's index. A self or forward
// reference can never be satisfied in a single declaration-order pass and is
// reported as a cycle; a name absent from the list entirely is an invalid
// reference.
func validateVisibilityRefs(opts *DisplayOptions, at int, index map[string]int, path string) []error {
	if opts == nil {
		return nil
	}

	var errs []error

	check := func(clause map[string][]any) {
		for key := range clause {
			ref, ok := index[key]
			if !ok {
				errs = append(errs, schemaErrf(path, ErrInvalidReference, "references %q", key))

				continue
			}

			if ref >= at {
				errs = append(errs, schemaErrf(path, ErrCyclicVisibility, "references %q", key))
			}
		}
	}

	check(opts.Show)
	check(opts.Hide)

	return errs
}

func validateProperty(p *PropertyField, path string) []error {
	var errs []error

	if !p.Type.IsValid() {
		errs = append(errs, schemaErrf(path, ErrUnknownType, "%q", p.Type))

		return errs
	}

	errs = append(errs, validateTypeOptions(p, path)...)
	errs = append(errs, validateShape(p, path)...)
	errs = append(errs, validateDefault(p, path)...)

	if p.Routing != nil && !ValidMethod(p.Routing.Method) {
		errs = append(errs, schemaErrf(path, ErrInvalidRouting, "unknown method %q", p.Routing.Method))
	}

	return errs
}

func validateTypeOptions(p *PropertyField, path string) []error {
	var errs []error

	if p.TypeOptions != nil {
		if p.TypeOptions.Variant() != p.Type {
			errs = append(errs, schemaErrf(path, ErrTypeOptionsMismatch, "%s options on %s property", p.TypeOptions.Variant(), p.Type))
		}
	} else if p.TypeOptionsRaw != nil && typeOptionsFor(p.Type) == nil {
		errs = append(errs, schemaErrf(path, ErrTypeOptionsMismatch, "%s properties carry no type options", p.Type))
	}

	if p.Type == TypeResourceMapper {
		opts, ok := p.TypeOptions.(*ResourceMapperOptions)
		if !ok {
			errs = append(errs, schemaErr(path, ErrResourceMapperMethod))
		} else if (opts.ResourceMapperMethod == "") == (opts.LocalResourceMapperMethod == "") {
			errs = append(errs, schemaErr(path, ErrResourceMapperMethod))
		}
	}

	return errs
}

// validateShape checks that the child collections a property carries fit its
// type: option lists belong to options/multiOptions, groups to
// fixedCollection, sub-values to collection.
func validateShape(p *PropertyField, path string) []error {
	var errs []error

	switch p.Type {
	case TypeOptions, TypeMultiOptions:
		if len(p.Options) == 0 && loadOptionsMethod(p) == "" {
			errs = append(errs, schemaErr(path, fmt.Errorf("%w: %s property needs options or a load_options_method", ErrMalformedDocument, p.Type)))
		}
	case TypeFixedCollection:
		if len(p.Groups) == 0 {
			errs = append(errs, schemaErr(path, fmt.Errorf("%w: fixedCollection needs at least one group", ErrMalformedDocument)))
		}
	default:
	}

	if len(p.Options) > 0 && p.Type != TypeOptions && p.Type != TypeMultiOptions {
		errs = append(errs, schemaErr(path, fmt.Errorf("%w: options list on %s property", ErrMalformedDocument, p.Type)))
	}

	if len(p.Groups) > 0 && p.Type != TypeFixedCollection {
		errs = append(errs, schemaErr(path, fmt.Errorf("%w: groups on %s property", ErrMalformedDocument, p.Type)))
	}

	if len(p.Values) > 0 && p.Type != TypeCollection {
		errs = append(errs, schemaErr(path, fmt.Errorf("%w: values on %s property", ErrMalformedDocument, p.Type)))
	}

	return errs
}

func validateDefault(p *PropertyField, path string) []error {
	if p.Default == nil {
		return nil
	}

	ok := true

	switch p.Type {
	case TypeMultiOptions:
		_, ok = p.Default.([]any)
	case TypeFixedCollection:
		_, ok = p.Default.(map[string]any)
	case TypeCollection:
		_, ok = p.Default.(map[string]any)
	case TypeBoolean:
		if !p.MultipleValues() {
			_, ok = p.Default.(bool)
		}
	case TypeNumber:
		if !p.MultipleValues() {
			switch p.Default.(type) {
			case int, int64, float64:
			default:
				ok = false
			}
		}
	default:
	}

	if !ok {
		return []error{schemaErrf(path, ErrInvalidDefault, "%T default on %s property", p.Default, p.Type)}
	}

	return nil
}

// loadOptionsMethod returns the dynamic option loader name declared by an
// options/multiOptions property, if any.
func loadOptionsMethod(p *PropertyField) string {
	switch opts := p.TypeOptions.(type) {
	case *OptionsOptions:
		return opts.LoadOptionsMethod
	case *MultiOptionsOptions:
		return opts.LoadOptionsMethod
	default:
		return ""
	}
}

// LoadOptionsMethod exposes the dynamic option loader name for callers that
// materialize option lists ahead of resolution.
func (p *PropertyField) LoadOptionsMethod() string {
	return loadOptionsMethod(p)
}

// LoadOptionsDependsOn lists the sibling properties whose raw values the
// dynamic option provider receives.
func (p *PropertyField) LoadOptionsDependsOn() []string {
	switch opts := p.TypeOptions.(type) {
	case *OptionsOptions:
		return opts.LoadOptionsDependsOn
	case *MultiOptionsOptions:
		return opts.LoadOptionsDependsOn
	default:
		return nil
	}
}
