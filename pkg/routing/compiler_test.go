package routing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orchahq/nodekit/pkg/expression"
	"github.com/orchahq/nodekit/pkg/routing"
	"github.com/orchahq/nodekit/pkg/schema"
	"github.com/orchahq/nodekit/pkg/testutil"
)

func userAPIDescription() *schema.NodeDescription {
	return testutil.CreateTestDescription(
		testutil.WithRequestDefaults(&schema.RoutingSpec{
			Headers: map[string]string{"Accept": "application/json"},
		}),
		testutil.WithProperties(
			schema.PropertyField{
				DisplayName: "Operation",
				Name:        "operation",
				Type:        schema.TypeOptions,
				Options: []schema.OptionItem{
					{
						Name:  "Get",
						Value: "get",
						Routing: &schema.RoutingSpec{
							Method: "GET",
							URL:    "=/users/{{ $parameter.userId }}",
						},
					},
					{
						Name:  "Create",
						Value: "create",
						Routing: &schema.RoutingSpec{
							Method: "POST",
							URL:    "/users",
							Body:   map[string]any{"name": "={{ $parameter.userName }}"},
						},
					},
				},
			},
			testutil.StringProperty("userId", testutil.ShownWhen("operation", "get")),
			testutil.StringProperty("userName", testutil.ShownWhen("operation", "create")),
		),
	)
}

func TestCompile_OptionRouting(t *testing.T) {
	t.Parallel()

	desc := userAPIDescription()

	descriptor, err := routing.Compile(desc, map[string]any{
		"operation": "get",
		"userId":    "42",
	})
	require.NoError(t, err)

	assert.Equal(t, "GET", descriptor.Method)
	assert.Equal(t, "/users/42", descriptor.URL)
	assert.Equal(t, map[string]string{"Accept": "application/json"}, descriptor.Headers)
	assert.Nil(t, descriptor.Body)
}

func TestCompile_BodyKeepsReferencedTypes(t *testing.T) {
	t.Parallel()

	desc := userAPIDescription()

	descriptor, err := routing.Compile(desc, map[string]any{
		"operation": "create",
		"userName":  "ada",
	})
	require.NoError(t, err)

	assert.Equal(t, "POST", descriptor.Method)
	assert.Equal(t, "/users", descriptor.URL)
	assert.Equal(t, map[string]any{"name": "ada"}, descriptor.Body)
}

func TestCompile_PropertyAndOptionPrecedence(t *testing.T) {
	t.Parallel()

	desc := testutil.CreateTestDescription(
		testutil.WithRequestDefaults(&schema.RoutingSpec{
			Method: "GET",
			URL:    "/default",
			Query:  map[string]string{"page": "1"},
		}),
		testutil.WithProperties(
			testutil.StringProperty("path", testutil.WithRouting(&schema.RoutingSpec{
				URL: "=/items/{{ $parameter.path }}",
			})),
			schema.PropertyField{
				DisplayName: "Mode",
				Name:        "mode",
				Type:        schema.TypeOptions,
				Options: []schema.OptionItem{
					{Name: "Archive", Value: "archive", Routing: &schema.RoutingSpec{Method: "POST"}},
					{Name: "Read", Value: "read"},
				},
			},
		),
	)

	// Option-level routing overrides property-level, which overrides the
	// request defaults; untouched fields survive from below.
	descriptor, err := routing.Compile(desc, map[string]any{
		"path": "abc",
		"mode": "archive",
	})
	require.NoError(t, err)

	assert.Equal(t, "POST", descriptor.Method)
	assert.Equal(t, "/items/abc", descriptor.URL)
	assert.Equal(t, map[string]string{"page": "1"}, descriptor.Query)

	descriptor, err = routing.Compile(desc, map[string]any{
		"path": "abc",
		"mode": "read",
	})
	require.NoError(t, err)
	assert.Equal(t, "GET", descriptor.Method)
	assert.Equal(t, "/items/abc", descriptor.URL)
}

func TestCompile_InactivePropertiesContributeNothing(t *testing.T) {
	t.Parallel()

	desc := userAPIDescription()

	// userName was not resolved, so the create option's spec must not be
	// selected even though the option list carries it.
	descriptor, err := routing.Compile(desc, map[string]any{
		"operation": "get",
		"userId":    "1",
	})
	require.NoError(t, err)
	assert.Equal(t, "GET", descriptor.Method)
}

func TestCompile_IncompleteSpec(t *testing.T) {
	t.Parallel()

	desc := testutil.CreateTestDescription(testutil.WithProperties(
		testutil.StringProperty("path", testutil.WithRouting(&schema.RoutingSpec{
			URL: "/items",
		})),
	))

	_, err := routing.Compile(desc, map[string]any{"path": "x"})
	require.Error(t, err)
	assert.True(t, routing.IsRoutingError(err))
	assert.ErrorIs(t, err, routing.ErrIncompleteSpec)
}

func TestCompile_NoRoutingAtAll(t *testing.T) {
	t.Parallel()

	desc := testutil.CreateTestDescription(
		testutil.WithRequestDefaults(&schema.RoutingSpec{Method: "GET", URL: "/x"}),
		testutil.WithProperties(testutil.StringProperty("name")),
	)

	_, err := routing.Compile(desc, map[string]any{"name": "a"})
	require.Error(t, err)
	assert.ErrorIs(t, err, routing.ErrNoRouting)
}

func TestCompile_UnresolvedReferenceFails(t *testing.T) {
	t.Parallel()

	desc := testutil.CreateTestDescription(testutil.WithProperties(
		testutil.StringProperty("path", testutil.WithRouting(&schema.RoutingSpec{
			Method: "GET",
			URL:    "=/items/{{ $parameter.absent }}",
		})),
	))

	_, err := routing.Compile(desc, map[string]any{"path": "x"})
	require.Error(t, err)
	assert.True(t, routing.IsRoutingError(err))
	assert.True(t, expression.IsUnresolved(err))
}

func TestCompile_QueryAndHeaderTemplates(t *testing.T) {
	t.Parallel()

	desc := testutil.CreateTestDescription(testutil.WithProperties(
		testutil.StringProperty("token", testutil.WithRouting(&schema.RoutingSpec{
			Method:  "GET",
			URL:     "/search",
			Query:   map[string]string{"q": "={{ $parameter.term }}", "static": "yes"},
			Headers: map[string]string{"Authorization": "=Bearer {{ $parameter.token }}"},
		})),
		testutil.StringProperty("term"),
	))

	descriptor, err := routing.Compile(desc, map[string]any{
		"token": "t0k",
		"term":  "widgets",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"q": "widgets", "static": "yes"}, descriptor.Query)
	assert.Equal(t, map[string]string{"Authorization": "Bearer t0k"}, descriptor.Headers)
}

func TestCompile_NumericOptionSelection(t *testing.T) {
	t.Parallel()

	desc := testutil.CreateTestDescription(testutil.WithProperties(
		schema.PropertyField{
			DisplayName: "Version",
			Name:        "apiVersion",
			Type:        schema.TypeOptions,
			Options: []schema.OptionItem{
				{Name: "V1", Value: 1, Routing: &schema.RoutingSpec{Method: "GET", URL: "/v1"}},
				{Name: "V2", Value: 2, Routing: &schema.RoutingSpec{Method: "GET", URL: "/v2"}},
			},
		},
	))

	// Resolution normalizes numbers to float64; option selection still has
	// to match the schema's integer literal.
	descriptor, err := routing.Compile(desc, map[string]any{"apiVersion": float64(2)})
	require.NoError(t, err)
	assert.Equal(t, "/v2", descriptor.URL)
}
