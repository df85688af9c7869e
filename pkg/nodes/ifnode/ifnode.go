// Package ifnode defines the If node description: route items to a true or
// false branch based on a filter condition.
package ifnode

import (
	"github.com/orchahq/nodekit/pkg/schema"
)

// Description returns the If node schema.
func Description() *schema.NodeDescription {
	return &schema.NodeDescription{
		DisplayName: "If",
		Name:        "if",
		Icon:        "fa:code-branch",
		Group:       []string{"flow"},
		Version:     1,
		Subtitle:    "Route items conditionally",
		Description: "Route items to different branches (true/false).",
		Inputs:      []string{"main"},
		Outputs:     []string{"true", "false"},
		Properties: []schema.PropertyField{
			{
				DisplayName: "Conditions",
				Name:        "conditions",
				Type:        schema.TypeFilter,
				Required:    true,
				Description: "The conditions to compare items against",
				TypeOptions: &schema.FilterOptions{
					Version:        2,
					TypeValidation: "strict",
				},
			},
			{
				DisplayName: "Convert Types Where Required",
				Name:        "looseTypeValidation",
				Type:        schema.TypeBoolean,
				Default:     false,
				Description: "Whether to compare values of different types by converting them",
			},
			{
				DisplayName: "Ignore Case",
				Name:        "ignoreCase",
				Type:        schema.TypeBoolean,
				Default:     true,
				DisplayOptions: &schema.DisplayOptions{
					Show: map[string][]any{
						"looseTypeValidation": {true},
					},
				},
			},
		},
	}
}
