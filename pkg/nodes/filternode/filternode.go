// Package filternode defines the Filter node description: drop items that
// do not match a filter condition.
package filternode

import (
	"github.com/orchahq/nodekit/pkg/schema"
)

// Description returns the Filter node schema.
func Description() *schema.NodeDescription {
	return &schema.NodeDescription{
		DisplayName: "Filter",
		Name:        "filter",
		Icon:        "fa:filter",
		Group:       []string{"flow"},
		Version:     1,
		Subtitle:    "Remove items by condition",
		Description: "Remove items matching a condition.",
		Inputs:      []string{"main"},
		Outputs:     []string{"main"},
		Properties: []schema.PropertyField{
			{
				DisplayName: "Conditions",
				Name:        "conditions",
				Type:        schema.TypeFilter,
				Required:    true,
				Description: "The conditions an item must meet to be kept",
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
			},
		},
	}
}
