// Package testutil provides test data builders and utilities for testing.
package testutil

import (
	"github.com/google/uuid"

	"github.com/orchahq/nodekit/pkg/schema"
)

// CreateTestDescription creates a minimal valid node description that can
// be customized through overrides.
func CreateTestDescription(overrides ...func(*schema.NodeDescription)) *schema.NodeDescription {
	desc := &schema.NodeDescription{
		DisplayName: "Test Node",
		Name:        "testNode_" + uuid.NewString()[:8],
		Version:     1,
		Description: "A node for testing",
		Inputs:      []string{"main"},
		Outputs:     []string{"main"},
		Properties:  []schema.PropertyField{},
	}

	for _, override := range overrides {
		override(desc)
	}

	return desc
}

// WithName sets the node's internal name.
func WithName(name string) func(*schema.NodeDescription) {
	return func(d *schema.NodeDescription) {
		d.Name = name
	}
}

// WithVersion sets the node version.
func WithVersion(version int) func(*schema.NodeDescription) {
	return func(d *schema.NodeDescription) {
		d.Version = version
	}
}

// WithProperties sets the node's property list.
func WithProperties(props ...schema.PropertyField) func(*schema.NodeDescription) {
	return func(d *schema.NodeDescription) {
		d.Properties = props
	}
}

// WithRequestDefaults sets the node's request defaults.
func WithRequestDefaults(spec *schema.RoutingSpec) func(*schema.NodeDescription) {
	return func(d *schema.NodeDescription) {
		d.RequestDefaults = spec
	}
}

// StringProperty creates a string property with the given name.
func StringProperty(name string, overrides ...func(*schema.PropertyField)) schema.PropertyField {
	return property(name, schema.TypeString, overrides)
}

// NumberProperty creates a number property with the given name.
func NumberProperty(name string, overrides ...func(*schema.PropertyField)) schema.PropertyField {
	return property(name, schema.TypeNumber, overrides)
}

// BooleanProperty creates a boolean property with the given name.
func BooleanProperty(name string, overrides ...func(*schema.PropertyField)) schema.PropertyField {
	return property(name, schema.TypeBoolean, overrides)
}

// OptionsProperty creates an options property from plain string choices.
func OptionsProperty(name string, choices []string, overrides ...func(*schema.PropertyField)) schema.PropertyField {
	options := make([]schema.OptionItem, len(choices))
	for i, choice := range choices {
		options[i] = schema.OptionItem{Name: choice, Value: choice}
	}

	p := property(name, schema.TypeOptions, nil)
	p.Options = options

	for _, override := range overrides {
		override(&p)
	}

	return p
}

func property(name string, typ schema.PropertyType, overrides []func(*schema.PropertyField)) schema.PropertyField {
	p := schema.PropertyField{
		DisplayName: name,
		Name:        name,
		Type:        typ,
	}

	for _, override := range overrides {
		override(&p)
	}

	return p
}

// Required marks a property as required.
func Required() func(*schema.PropertyField) {
	return func(p *schema.PropertyField) {
		p.Required = true
	}
}

// WithDefault sets the property default.
func WithDefault(value any) func(*schema.PropertyField) {
	return func(p *schema.PropertyField) {
		p.Default = value
	}
}

// ShownWhen adds a show condition on a sibling property.
func ShownWhen(sibling string, values ...any) func(*schema.PropertyField) {
	return func(p *schema.PropertyField) {
		if p.DisplayOptions == nil {
			p.DisplayOptions = &schema.DisplayOptions{}
		}

		if p.DisplayOptions.Show == nil {
			p.DisplayOptions.Show = map[string][]any{}
		}

		p.DisplayOptions.Show[sibling] = values
	}
}

// HiddenWhen adds a hide condition on a sibling property.
func HiddenWhen(sibling string, values ...any) func(*schema.PropertyField) {
	return func(p *schema.PropertyField) {
		if p.DisplayOptions == nil {
			p.DisplayOptions = &schema.DisplayOptions{}
		}

		if p.DisplayOptions.Hide == nil {
			p.DisplayOptions.Hide = map[string][]any{}
		}

		p.DisplayOptions.Hide[sibling] = values
	}
}

// WithTypeOptions sets the property's type options.
func WithTypeOptions(opts schema.TypeOption) func(*schema.PropertyField) {
	return func(p *schema.PropertyField) {
		p.TypeOptions = opts
	}
}

// WithRouting sets the property's routing spec.
func WithRouting(spec *schema.RoutingSpec) func(*schema.PropertyField) {
	return func(p *schema.PropertyField) {
		p.Routing = spec
	}
}
