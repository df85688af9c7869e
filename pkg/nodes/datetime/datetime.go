// Package datetime defines the DateTime node description: format a date or
// shift it by a duration.
package datetime

import (
	"github.com/orchahq/nodekit/pkg/schema"
)

// Description returns the DateTime node schema.
func Description() *schema.NodeDescription {
	return &schema.NodeDescription{
		DisplayName: "Date & Time",
		Name:        "dateTime",
		Icon:        "fa:clock",
		Group:       []string{"data_transformation"},
		Version:     1,
		Subtitle:    "Work with dates",
		Description: "Manipulate date and time values.",
		Inputs:      []string{"main"},
		Outputs:     []string{"main"},
		Properties: []schema.PropertyField{
			{
				DisplayName: "Action",
				Name:        "action",
				Type:        schema.TypeOptions,
				Default:     "format",
				Options: []schema.OptionItem{
					{Name: "Format a Date", Value: "format", Description: "Convert a date to a different format"},
					{Name: "Add to a Date", Value: "add", Description: "Shift a date forwards"},
					{Name: "Subtract From a Date", Value: "subtract", Description: "Shift a date backwards"},
				},
			},
			{
				DisplayName: "Date",
				Name:        "date",
				Type:        schema.TypeDateTime,
				Required:    true,
				Description: "The date to operate on",
			},
			{
				DisplayName: "Format",
				Name:        "format",
				Type:        schema.TypeOptions,
				Default:     "2006-01-02",
				TypeOptions: &schema.OptionsOptions{
					AllowArbitraryValues: true,
				},
				DisplayOptions: &schema.DisplayOptions{
					Show: map[string][]any{
						"action": {"format"},
					},
				},
				Options: []schema.OptionItem{
					{Name: "ISO Date", Value: "2006-01-02"},
					{Name: "ISO Date and Time", Value: "2006-01-02T15:04:05Z07:00"},
					{Name: "Unix Timestamp", Value: "unix"},
				},
			},
			{
				DisplayName: "Duration",
				Name:        "duration",
				Type:        schema.TypeNumber,
				Default:     1,
				DisplayOptions: &schema.DisplayOptions{
					Hide: map[string][]any{
						"action": {"format"},
					},
				},
			},
			{
				DisplayName: "Time Unit",
				Name:        "timeUnit",
				Type:        schema.TypeOptions,
				Default:     "days",
				DisplayOptions: &schema.DisplayOptions{
					Hide: map[string][]any{
						"action": {"format"},
					},
				},
				Options: []schema.OptionItem{
					{Name: "Minutes", Value: "minutes"},
					{Name: "Hours", Value: "hours"},
					{Name: "Days", Value: "days"},
					{Name: "Months", Value: "months"},
				},
			},
		},
	}
}
