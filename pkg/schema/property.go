// Package schema defines the immutable in-memory model of a node description:
// a tree of property definitions with type-specific options, conditional
// visibility rules, and declarative request routing.
package schema

// PropertyType is the closed enumeration of property type tags.
type PropertyType string

const (
	TypeBoolean              PropertyType = "boolean"
	TypeCollection           PropertyType = "collection"
	TypeColor                PropertyType = "color"
	TypeDateTime             PropertyType = "dateTime"
	TypeHidden               PropertyType = "hidden"
	TypeJSON                 PropertyType = "json"
	TypeNotice               PropertyType = "notice"
	TypeMultiOptions         PropertyType = "multiOptions"
	TypeNumber               PropertyType = "number"
	TypeOptions              PropertyType = "options"
	TypeString               PropertyType = "string"
	TypeFilter               PropertyType = "filter"
	TypeButton               PropertyType = "button"
	TypeCallout              PropertyType = "callout"
	TypeCredentialsSelect    PropertyType = "credentialsSelect"
	TypeResourceLocator      PropertyType = "resourceLocator"
	TypeResourceMapper       PropertyType = "resourceMapper"
	TypeAssignmentCollection PropertyType = "assignmentCollection"
	TypeCredentials          PropertyType = "credentials"
	TypeWorkflowSelector     PropertyType = "workflowSelector"
	TypeCurlImport           PropertyType = "curlImport"
	TypeFixedCollection      PropertyType = "fixedCollection"
)

// PropertyTypes lists every valid type tag.
var PropertyTypes = []PropertyType{
	TypeBoolean, TypeCollection, TypeColor, TypeDateTime, TypeHidden,
	TypeJSON, TypeNotice, TypeMultiOptions, TypeNumber, TypeOptions,
	TypeString, TypeFilter, TypeButton, TypeCallout, TypeCredentialsSelect,
	TypeResourceLocator, TypeResourceMapper, TypeAssignmentCollection,
	TypeCredentials, TypeWorkflowSelector, TypeCurlImport, TypeFixedCollection,
}

// IsValid reports whether t is a member of the closed enumeration.
func (t PropertyType) IsValid() bool {
	for _, known := range PropertyTypes {
		if t == known {
			return true
		}
	}

	return false
}

// DataBearing reports whether values of this type contribute an entry to the
// resolved parameter tree. Notice, button, callout and curlImport properties
// are purely informational.
func (t PropertyType) DataBearing() bool {
	switch t {
	case TypeNotice, TypeButton, TypeCallout, TypeCurlImport:
		return false
	default:
		return true
	}
}

// DisplayOptions is the conditional-visibility predicate of a property or
// option. A property is active when every show clause matches and no hide
// clause matches. Keys reference earlier siblings in the same property list.
type DisplayOptions struct {
	Show map[string][]any `json:"show,omitempty" mapstructure:"show"`
	Hide map[string][]any `json:"hide,omitempty" mapstructure:"hide"`
}

// OptionItem is one selectable entry of an options/multiOptions property.
// Routing may attach to an option; it takes precedence over property-level
// routing when the option is selected.
type OptionItem struct {
	Name           string          `json:"name"                      mapstructure:"name"            validate:"required"`
	Value          any             `json:"value"                     mapstructure:"value"`
	Description    string          `json:"description,omitempty"     mapstructure:"description"`
	Action         string          `json:"action,omitempty"          mapstructure:"action"`
	DisplayOptions *DisplayOptions `json:"display_options,omitempty" mapstructure:"display_options"`
	Routing        *RoutingSpec    `json:"routing,omitempty"         mapstructure:"routing"`
}

// CollectionGroup is one repeatable group of sub-fields of a fixedCollection
// property. The property value holds zero or more instances of the group.
type CollectionGroup struct {
	DisplayName string          `json:"display_name" mapstructure:"display_name"`
	Name        string          `json:"name"         mapstructure:"name"          validate:"required"`
	Values      []PropertyField `json:"values"       mapstructure:"values"        validate:"dive"`
}

// PropertyField is a single property definition. Internal names are unique
// among direct siblings; declaration order is both UI order and visibility
// dependency order.
type PropertyField struct {
	DisplayName string       `json:"display_name"       mapstructure:"display_name"`
	Name        string       `json:"name"               mapstructure:"name"         validate:"required"`
	Type        PropertyType `json:"type"               mapstructure:"type"         validate:"required"`
	Default     any          `json:"default,omitempty"  mapstructure:"default"`
	Description string       `json:"description,omitempty" mapstructure:"description"`
	Hint        string       `json:"hint,omitempty"        mapstructure:"hint"`
	Placeholder string       `json:"placeholder,omitempty" mapstructure:"placeholder"`
	Required    bool         `json:"required,omitempty"    mapstructure:"required"`

	DisplayOptions *DisplayOptions `json:"display_options,omitempty" mapstructure:"display_options"`

	// TypeOptions is the type-specific option variant; its tag must match Type.
	// The loader materializes it from TypeOptionsRaw.
	TypeOptions    TypeOption     `json:"-" mapstructure:"-"`
	TypeOptionsRaw map[string]any `json:"type_options,omitempty" mapstructure:"type_options"`

	// Options holds the selectable entries of options/multiOptions properties.
	Options []OptionItem `json:"options,omitempty" mapstructure:"options" validate:"dive"`

	// Groups holds the repeatable sub-field groups of fixedCollection
	// properties.
	Groups []CollectionGroup `json:"groups,omitempty" mapstructure:"groups" validate:"dive"`

	// Values holds the optional sub-fields of collection properties.
	Values []PropertyField `json:"values,omitempty" mapstructure:"values" validate:"dive"`

	// CredentialTypes restricts credentialsSelect/credentials properties.
	CredentialTypes []string `json:"credential_types,omitempty" mapstructure:"credential_types"`

	Routing *RoutingSpec `json:"routing,omitempty" mapstructure:"routing"`
}

// HasDefault reports whether the property declares a default value.
func (p *PropertyField) HasDefault() bool {
	return p.Default != nil
}

// MultipleValues reports whether the property accepts a sequence of values.
func (p *PropertyField) MultipleValues() bool {
	if p.TypeOptions == nil {
		return false
	}

	return p.TypeOptions.AllowsMultipleValues()
}
