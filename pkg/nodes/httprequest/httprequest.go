// Package httprequest defines the HttpRequest node description: a generic
// HTTP call whose routing is assembled from the user's method, url, query,
// header and body parameters.
package httprequest

import (
	"github.com/orchahq/nodekit/pkg/schema"
)

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

// Description returns the HttpRequest node schema.
func Description() *schema.NodeDescription {
	return &schema.NodeDescription{
		DisplayName: "HttpRequest",
		Name:        "httpRequest",
		Icon:        "fa:globe",
		Group:       []string{"core"},
		Version:     1,
		Subtitle:    "Make an HTTP request",
		Description: "Makes an http request and returns the response data.",
		Inputs:      []string{"main"},
		Outputs:     []string{"main"},
		RequestDefaults: &schema.RoutingSpec{
			Headers: map[string]string{
				"Accept": "application/json",
			},
		},
		Properties: []schema.PropertyField{
			{
				DisplayName: "Method",
				Name:        "method",
				Type:        schema.TypeOptions,
				Default:     "GET",
				Description: "The request method to use",
				Options: []schema.OptionItem{
					{Name: "DELETE", Value: "DELETE", Routing: &schema.RoutingSpec{Method: "DELETE"}},
					{Name: "GET", Value: "GET", Routing: &schema.RoutingSpec{Method: "GET"}},
					{Name: "PATCH", Value: "PATCH", Routing: &schema.RoutingSpec{Method: "PATCH"}},
					{Name: "POST", Value: "POST", Routing: &schema.RoutingSpec{Method: "POST"}},
					{Name: "PUT", Value: "PUT", Routing: &schema.RoutingSpec{Method: "PUT"}},
				},
			},
			{
				DisplayName: "URL",
				Name:        "url",
				Type:        schema.TypeString,
				Required:    true,
				Placeholder: "https://example.com/resource",
				Description: "The URL to request",
				Routing: &schema.RoutingSpec{
					URL: "={{ $parameter.url }}",
				},
			},
			{
				DisplayName: "Authentication",
				Name:        "authentication",
				Type:        schema.TypeOptions,
				Default:     "none",
				Options: []schema.OptionItem{
					{Name: "None", Value: "none"},
					{Name: "Basic Auth", Value: "basicAuth"},
					{Name: "Header Auth", Value: "headerAuth"},
				},
			},
			{
				DisplayName: "Credential Type",
				Name:        "credentialType",
				Type:        schema.TypeCredentialsSelect,
				CredentialTypes: []string{
					"httpBasicAuth",
					"httpHeaderAuth",
				},
				DisplayOptions: &schema.DisplayOptions{
					Hide: map[string][]any{
						"authentication": {"none"},
					},
				},
			},
			{
				DisplayName: "Send Query Parameters",
				Name:        "sendQuery",
				Type:        schema.TypeBoolean,
				Default:     false,
				Description: "Whether the request has query parameters",
			},
			{
				DisplayName: "Query Parameters",
				Name:        "queryParameters",
				Type:        schema.TypeFixedCollection,
				Placeholder: "Add Parameter",
				TypeOptions: &schema.FixedCollectionOptions{
					MultipleValues:    true,
					MinRequiredFields: intPtr(1),
				},
				DisplayOptions: &schema.DisplayOptions{
					Show: map[string][]any{
						"sendQuery": {true},
					},
				},
				Groups: []schema.CollectionGroup{
					{
						DisplayName: "Parameter",
						Name:        "parameters",
						Values: []schema.PropertyField{
							{DisplayName: "Name", Name: "name", Type: schema.TypeString, Required: true},
							{DisplayName: "Value", Name: "value", Type: schema.TypeString, Default: ""},
						},
					},
				},
			},
			{
				DisplayName: "Send Headers",
				Name:        "sendHeaders",
				Type:        schema.TypeBoolean,
				Default:     false,
				Description: "Whether the request has custom headers",
			},
			{
				DisplayName: "Header Parameters",
				Name:        "headerParameters",
				Type:        schema.TypeFixedCollection,
				Placeholder: "Add Header",
				TypeOptions: &schema.FixedCollectionOptions{
					MultipleValues:    true,
					MinRequiredFields: intPtr(1),
				},
				DisplayOptions: &schema.DisplayOptions{
					Show: map[string][]any{
						"sendHeaders": {true},
					},
				},
				Groups: []schema.CollectionGroup{
					{
						DisplayName: "Header",
						Name:        "parameters",
						Values: []schema.PropertyField{
							{DisplayName: "Name", Name: "name", Type: schema.TypeString, Required: true},
							{DisplayName: "Value", Name: "value", Type: schema.TypeString, Default: ""},
						},
					},
				},
			},
			{
				DisplayName: "Send Body",
				Name:        "sendBody",
				Type:        schema.TypeBoolean,
				Default:     false,
				Description: "Whether the request has a body",
			},
			{
				DisplayName: "Body",
				Name:        "body",
				Type:        schema.TypeJSON,
				Default:     map[string]any{},
				DisplayOptions: &schema.DisplayOptions{
					Show: map[string][]any{
						"sendBody": {true},
					},
				},
			},
			{
				DisplayName: "Options",
				Name:        "options",
				Type:        schema.TypeCollection,
				Placeholder: "Add Option",
				Values: []schema.PropertyField{
					{
						DisplayName: "Timeout",
						Name:        "timeout",
						Type:        schema.TypeNumber,
						Default:     30,
						Description: "Request timeout in seconds",
						TypeOptions: &schema.NumberOptions{
							MinValue:        floatPtr(1),
							MaxValue:        floatPtr(300),
							NumberPrecision: intPtr(0),
						},
					},
					{
						DisplayName: "Ignore SSL Issues",
						Name:        "allowUnauthorizedCerts",
						Type:        schema.TypeBoolean,
						Default:     false,
					},
					{
						DisplayName: "Follow Redirects",
						Name:        "followRedirects",
						Type:        schema.TypeBoolean,
						Default:     true,
					},
				},
			},
		},
	}
}
