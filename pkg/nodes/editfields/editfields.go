// Package editfields defines the Edit Fields node description: set, rename
// or remove item fields, either field by field or from a JSON template.
package editfields

import (
	"github.com/orchahq/nodekit/pkg/schema"
)

// Description returns the Edit Fields node schema.
func Description() *schema.NodeDescription {
	return &schema.NodeDescription{
		DisplayName: "Edit Fields",
		Name:        "editFields",
		Icon:        "fa:edit",
		Group:       []string{"data_transformation"},
		Version:     1,
		Subtitle:    "Modify item fields",
		Description: "Modify, add, or remove item fields.",
		Inputs:      []string{"main"},
		Outputs:     []string{"main"},
		Properties: []schema.PropertyField{
			{
				DisplayName: "Mode",
				Name:        "mode",
				Type:        schema.TypeOptions,
				Default:     "manual",
				Options: []schema.OptionItem{
					{Name: "Manual Mapping", Value: "manual", Description: "Edit fields one by one"},
					{Name: "JSON", Value: "json", Description: "Provide the output as JSON"},
				},
			},
			{
				DisplayName: "Fields to Set",
				Name:        "fields",
				Type:        schema.TypeFixedCollection,
				Placeholder: "Add Field",
				TypeOptions: &schema.FixedCollectionOptions{
					MultipleValues: true,
					Sortable:       true,
				},
				DisplayOptions: &schema.DisplayOptions{
					Show: map[string][]any{
						"mode": {"manual"},
					},
				},
				Groups: []schema.CollectionGroup{
					{
						DisplayName: "Field",
						Name:        "values",
						Values: []schema.PropertyField{
							{
								DisplayName: "Name",
								Name:        "name",
								Type:        schema.TypeString,
								Required:    true,
								Placeholder: "e.g. fieldName",
							},
							{
								DisplayName: "Type",
								Name:        "type",
								Type:        schema.TypeOptions,
								Default:     "string",
								Options: []schema.OptionItem{
									{Name: "String", Value: "string"},
									{Name: "Number", Value: "number"},
									{Name: "Boolean", Value: "boolean"},
								},
							},
							{
								DisplayName: "Value",
								Name:        "value",
								Type:        schema.TypeString,
								Default:     "",
							},
						},
					},
				},
			},
			{
				DisplayName: "JSON Output",
				Name:        "jsonOutput",
				Type:        schema.TypeJSON,
				Default:     map[string]any{},
				DisplayOptions: &schema.DisplayOptions{
					Show: map[string][]any{
						"mode": {"json"},
					},
				},
			},
			{
				DisplayName: "Include Other Input Fields",
				Name:        "includeOtherFields",
				Type:        schema.TypeBoolean,
				Default:     false,
			},
		},
	}
}
