package schema

// CredentialRef is an opaque reference to a credential requirement of a
// node. Credential storage and resolution live outside this module.
type CredentialRef struct {
	Name     string `json:"name"               mapstructure:"name"     validate:"required"`
	Required bool   `json:"required,omitempty" mapstructure:"required"`
}

// NodeDescription is the static schema of one node version: identity,
// request defaults, and the ordered property tree. It is constructed once
// per node version and read-only thereafter.
type NodeDescription struct {
	DisplayName string   `json:"display_name"          mapstructure:"display_name" validate:"required"`
	Name        string   `json:"name"                  mapstructure:"name"         validate:"required"`
	Icon        string   `json:"icon,omitempty"        mapstructure:"icon"`
	Group       []string `json:"group,omitempty"       mapstructure:"group"`
	Version     int      `json:"version"               mapstructure:"version"      validate:"min=1"`
	Subtitle    string   `json:"subtitle,omitempty"    mapstructure:"subtitle"`
	Description string   `json:"description,omitempty" mapstructure:"description"`

	Inputs  []string `json:"inputs,omitempty"  mapstructure:"inputs"`
	Outputs []string `json:"outputs,omitempty" mapstructure:"outputs"`

	Credentials []CredentialRef `json:"credentials,omitempty" mapstructure:"credentials" validate:"dive"`

	// RequestDefaults is a partial routing spec supplying values absent from
	// the merged per-operation routing.
	RequestDefaults *RoutingSpec `json:"request_defaults,omitempty" mapstructure:"request_defaults"`

	Properties []PropertyField `json:"properties" mapstructure:"properties" validate:"dive"`
}

// Property returns the top-level property with the given internal name.
func (d *NodeDescription) Property(name string) (*PropertyField, bool) {
	for i := range d.Properties {
		if d.Properties[i].Name == name {
			return &d.Properties[i], true
		}
	}

	return nil, false
}
