package schema

// TypeOption is the closed tagged union of type-specific option sets. Each
// variant reports the property type it belongs to so the loader can verify
// the tag matches the declaring property's type.
type TypeOption interface {
	Variant() PropertyType
	AllowsMultipleValues() bool
}

// MultipleValuesOptions is the shared option set of types that can hold a
// sequence of values. Sortable is an ordering-preservation contract for the
// UI, not a validation rule.
type MultipleValuesOptions struct {
	MultipleValues          bool   `json:"multiple_values,omitempty"            mapstructure:"multiple_values"`
	MultipleValueButtonText string `json:"multiple_value_button_text,omitempty" mapstructure:"multiple_value_button_text"`
	Sortable                bool   `json:"sortable,omitempty"                   mapstructure:"sortable"`
}

// AllowsMultipleValues implements part of TypeOption for embedding variants.
func (o MultipleValuesOptions) AllowsMultipleValues() bool { return o.MultipleValues }

// StringOptions carries presentation-only settings; none of them constrain
// the value.
type StringOptions struct {
	MultipleValuesOptions `mapstructure:",squash"`

	Password         bool   `json:"password,omitempty"            mapstructure:"password"`
	Rows             int    `json:"rows,omitempty"                mapstructure:"rows"`
	Editor           string `json:"editor,omitempty"              mapstructure:"editor"`
	EditorIsReadOnly bool   `json:"editor_is_read_only,omitempty" mapstructure:"editor_is_read_only"`
	CodeAutocomplete string `json:"code_autocomplete,omitempty"   mapstructure:"code_autocomplete"`
	SQLDialect       string `json:"sql_dialect,omitempty"         mapstructure:"sql_dialect"`
}

func (o *StringOptions) Variant() PropertyType { return TypeString }

// NumberOptions bounds and rounds numeric values. Bounds are inclusive.
type NumberOptions struct {
	MultipleValuesOptions `mapstructure:",squash"`

	MinValue        *float64 `json:"min_value,omitempty"        mapstructure:"min_value"`
	MaxValue        *float64 `json:"max_value,omitempty"        mapstructure:"max_value"`
	NumberPrecision *int     `json:"number_precision,omitempty" mapstructure:"number_precision"`
}

func (o *NumberOptions) Variant() PropertyType { return TypeNumber }

type BooleanOptions struct {
	MultipleValuesOptions `mapstructure:",squash"`
}

func (o *BooleanOptions) Variant() PropertyType { return TypeBoolean }

// OptionsOptions configures an options property, including dynamic option
// loading through an external provider.
type OptionsOptions struct {
	MultipleValuesOptions `mapstructure:",squash"`

	LoadOptionsMethod    string   `json:"load_options_method,omitempty"     mapstructure:"load_options_method"`
	LoadOptionsDependsOn []string `json:"load_options_depends_on,omitempty" mapstructure:"load_options_depends_on"`
	AllowArbitraryValues bool     `json:"allow_arbitrary_values,omitempty"  mapstructure:"allow_arbitrary_values"`
}

func (o *OptionsOptions) Variant() PropertyType { return TypeOptions }

// MultiOptionsOptions mirrors OptionsOptions for multiOptions properties.
type MultiOptionsOptions struct {
	MultipleValuesOptions `mapstructure:",squash"`

	LoadOptionsMethod    string   `json:"load_options_method,omitempty"     mapstructure:"load_options_method"`
	LoadOptionsDependsOn []string `json:"load_options_depends_on,omitempty" mapstructure:"load_options_depends_on"`
	AllowArbitraryValues bool     `json:"allow_arbitrary_values,omitempty"  mapstructure:"allow_arbitrary_values"`
}

func (o *MultiOptionsOptions) Variant() PropertyType { return TypeMultiOptions }

// FixedCollectionOptions bounds the number of group instances when
// MultipleValues is set.
type FixedCollectionOptions struct {
	MultipleValues    bool `json:"multiple_values,omitempty"     mapstructure:"multiple_values"`
	Sortable          bool `json:"sortable,omitempty"            mapstructure:"sortable"`
	MinRequiredFields *int `json:"min_required_fields,omitempty" mapstructure:"min_required_fields"`
	MaxAllowedFields  *int `json:"max_allowed_fields,omitempty"  mapstructure:"max_allowed_fields"`
}

func (o *FixedCollectionOptions) Variant() PropertyType      { return TypeFixedCollection }
func (o *FixedCollectionOptions) AllowsMultipleValues() bool { return o.MultipleValues }

type CollectionOptions struct {
	MultipleValuesOptions `mapstructure:",squash"`
}

func (o *CollectionOptions) Variant() PropertyType { return TypeCollection }

type JSONOptions struct {
	MultipleValuesOptions `mapstructure:",squash"`

	AlwaysOpenEditWindow bool `json:"always_open_edit_window,omitempty" mapstructure:"always_open_edit_window"`
}

func (o *JSONOptions) Variant() PropertyType { return TypeJSON }

type ColorOptions struct {
	MultipleValuesOptions `mapstructure:",squash"`

	ShowAlpha bool `json:"show_alpha,omitempty" mapstructure:"show_alpha"`
}

func (o *ColorOptions) Variant() PropertyType { return TypeColor }

type HiddenOptions struct {
	Expirable bool `json:"expirable,omitempty" mapstructure:"expirable"`
}

func (o *HiddenOptions) Variant() PropertyType      { return TypeHidden }
func (o *HiddenOptions) AllowsMultipleValues() bool { return false }

type NoticeOptions struct {
	ContainerClass string `json:"container_class,omitempty" mapstructure:"container_class"`
}

func (o *NoticeOptions) Variant() PropertyType      { return TypeNotice }
func (o *NoticeOptions) AllowsMultipleValues() bool { return false }

// ButtonConfig describes what a button property does when pressed.
type ButtonConfig struct {
	Action              string `json:"action"                          mapstructure:"action"`
	Label               string `json:"label,omitempty"                 mapstructure:"label"`
	HasInputField       bool   `json:"has_input_field,omitempty"       mapstructure:"has_input_field"`
	InputFieldMaxLength int    `json:"input_field_max_length,omitempty" mapstructure:"input_field_max_length"`
}

type ButtonOptions struct {
	ButtonConfig *ButtonConfig `json:"button_config,omitempty" mapstructure:"button_config"`
}

func (o *ButtonOptions) Variant() PropertyType      { return TypeButton }
func (o *ButtonOptions) AllowsMultipleValues() bool { return false }

// CalloutAction describes the optional action button of a callout.
type CalloutAction struct {
	Type  string `json:"type"            mapstructure:"type"`
	Label string `json:"label"           mapstructure:"label"`
	Icon  string `json:"icon,omitempty"  mapstructure:"icon"`
}

type CalloutOptions struct {
	CalloutAction *CalloutAction `json:"callout_action,omitempty" mapstructure:"callout_action"`
}

func (o *CalloutOptions) Variant() PropertyType      { return TypeCallout }
func (o *CalloutOptions) AllowsMultipleValues() bool { return false }

// ResourceMapperOptions configures field discovery for resourceMapper
// properties. Exactly one of ResourceMapperMethod and
// LocalResourceMapperMethod must be set.
type ResourceMapperOptions struct {
	ResourceMapperMethod      string `json:"resource_mapper_method,omitempty"       mapstructure:"resource_mapper_method"`
	LocalResourceMapperMethod string `json:"local_resource_mapper_method,omitempty" mapstructure:"local_resource_mapper_method"`
	Mode                      string `json:"mode,omitempty"                         mapstructure:"mode"`
}

func (o *ResourceMapperOptions) Variant() PropertyType      { return TypeResourceMapper }
func (o *ResourceMapperOptions) AllowsMultipleValues() bool { return false }

type FilterOptions struct {
	Version        int    `json:"version,omitempty"         mapstructure:"version"`
	TypeValidation string `json:"type_validation,omitempty" mapstructure:"type_validation"`
}

func (o *FilterOptions) Variant() PropertyType      { return TypeFilter }
func (o *FilterOptions) AllowsMultipleValues() bool { return false }

type AssignmentOptions struct {
	TypeValidation string `json:"type_validation,omitempty" mapstructure:"type_validation"`
}

func (o *AssignmentOptions) Variant() PropertyType      { return TypeAssignmentCollection }
func (o *AssignmentOptions) AllowsMultipleValues() bool { return false }

// typeOptionsFor returns a fresh variant for the given type tag, or nil when
// the type carries no type-specific options.
func typeOptionsFor(t PropertyType) TypeOption {
	switch t {
	case TypeString:
		return &StringOptions{}
	case TypeNumber:
		return &NumberOptions{}
	case TypeBoolean:
		return &BooleanOptions{}
	case TypeOptions:
		return &OptionsOptions{}
	case TypeMultiOptions:
		return &MultiOptionsOptions{}
	case TypeFixedCollection:
		return &FixedCollectionOptions{}
	case TypeCollection:
		return &CollectionOptions{}
	case TypeJSON:
		return &JSONOptions{}
	case TypeColor:
		return &ColorOptions{}
	case TypeHidden:
		return &HiddenOptions{}
	case TypeNotice:
		return &NoticeOptions{}
	case TypeButton:
		return &ButtonOptions{}
	case TypeCallout:
		return &CalloutOptions{}
	case TypeResourceMapper:
		return &ResourceMapperOptions{}
	case TypeFilter:
		return &FilterOptions{}
	case TypeAssignmentCollection:
		return &AssignmentOptions{}
	default:
		// dateTime, credentialsSelect, resourceLocator, credentials,
		// workflowSelector, curlImport carry no type options.
		return nil
	}
}
