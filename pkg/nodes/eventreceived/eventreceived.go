// Package eventreceived defines the Event Received trigger node
// description. Its event type options come from a dynamic option provider.
package eventreceived

import (
	"github.com/orchahq/nodekit/pkg/schema"
)

// LoadEventTypesMethod is the dynamic option method the node declares; an
// options provider resolves it to the event types of the selected source.
const LoadEventTypesMethod = "listEventTypes"

// Description returns the Event Received node schema.
func Description() *schema.NodeDescription {
	return &schema.NodeDescription{
		DisplayName: "Event Received",
		Name:        "eventReceived",
		Icon:        "fa:bolt",
		Group:       []string{"trigger"},
		Version:     1,
		Subtitle:    "Start on an event",
		Description: "Starts the workflow when an event is received.",
		Outputs:     []string{"main"},
		Properties: []schema.PropertyField{
			{
				DisplayName: "Source",
				Name:        "source",
				Type:        schema.TypeString,
				Required:    true,
				Description: "The event source to listen on",
			},
			{
				DisplayName: "Event Type",
				Name:        "eventType",
				Type:        schema.TypeOptions,
				Required:    true,
				Description: "The event type that triggers the workflow",
				TypeOptions: &schema.OptionsOptions{
					LoadOptionsMethod:    LoadEventTypesMethod,
					LoadOptionsDependsOn: []string{"source"},
				},
			},
			{
				DisplayName: "Include Payload",
				Name:        "includePayload",
				Type:        schema.TypeBoolean,
				Default:     true,
			},
		},
	}
}
