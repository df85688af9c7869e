package schema_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orchahq/nodekit/pkg/schema"
)

func validDescription() *schema.NodeDescription {
	return &schema.NodeDescription{
		DisplayName: "Sample",
		Name:        "sample",
		Version:     1,
		Properties: []schema.PropertyField{
			{
				DisplayName: "Resource",
				Name:        "resource",
				Type:        schema.TypeOptions,
				Default:     "user",
				Options: []schema.OptionItem{
					{Name: "User", Value: "user"},
					{Name: "Post", Value: "post"},
				},
			},
			{
				DisplayName: "User ID",
				Name:        "userId",
				Type:        schema.TypeString,
				Required:    true,
				DisplayOptions: &schema.DisplayOptions{
					Show: map[string][]any{"resource": {"user"}},
				},
			},
		},
	}
}

func TestValidate_ValidDescription(t *testing.T) {
	t.Parallel()

	require.NoError(t, validDescription().Validate())
}

func TestValidate_DuplicateSiblingNames(t *testing.T) {
	t.Parallel()

	desc := validDescription()
	desc.Properties = append(desc.Properties, schema.PropertyField{
		DisplayName: "User ID Again",
		Name:        "userId",
		Type:        schema.TypeString,
	})

	err := desc.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrDuplicateName)
}

func TestValidate_VisibilityReferences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     *schema.DisplayOptions
		expected error
	}{
		{
			name: "forward reference is a cycle",
			opts: &schema.DisplayOptions{
				Show: map[string][]any{"later": {true}},
			},
			expected: schema.ErrCyclicVisibility,
		},
		{
			name: "self reference is a cycle",
			opts: &schema.DisplayOptions{
				Hide: map[string][]any{"first": {true}},
			},
			expected: schema.ErrCyclicVisibility,
		},
		{
			name: "unknown sibling",
			opts: &schema.DisplayOptions{
				Show: map[string][]any{"nowhere": {true}},
			},
			expected: schema.ErrInvalidReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			desc := &schema.NodeDescription{
				DisplayName: "Sample",
				Name:        "sample",
				Version:     1,
				Properties: []schema.PropertyField{
					{
						DisplayName:    "First",
						Name:           "first",
						Type:           schema.TypeBoolean,
						DisplayOptions: tt.opts,
					},
					{
						DisplayName: "Later",
						Name:        "later",
						Type:        schema.TypeBoolean,
					},
				},
			}

			err := desc.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestValidate_BackwardReferenceInsideGroupIsLocal(t *testing.T) {
	t.Parallel()

	// Group fields reference group siblings only; a name that exists at the
	// top level but not inside the group is invalid within the group.
	desc := &schema.NodeDescription{
		DisplayName: "Sample",
		Name:        "sample",
		Version:     1,
		Properties: []schema.PropertyField{
			{
				DisplayName: "Toggle",
				Name:        "toggle",
				Type:        schema.TypeBoolean,
			},
			{
				DisplayName: "Entries",
				Name:        "entries",
				Type:        schema.TypeFixedCollection,
				Groups: []schema.CollectionGroup{
					{
						DisplayName: "Entry",
						Name:        "entry",
						Values: []schema.PropertyField{
							{
								DisplayName: "Value",
								Name:        "value",
								Type:        schema.TypeString,
								DisplayOptions: &schema.DisplayOptions{
									Show: map[string][]any{"toggle": {true}},
								},
							},
						},
					},
				},
			},
		},
	}

	err := desc.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrInvalidReference)
}

func TestValidate_TypeOptionsMismatch(t *testing.T) {
	t.Parallel()

	desc := validDescription()
	desc.Properties[1].TypeOptions = &schema.NumberOptions{}

	err := desc.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrTypeOptionsMismatch)
}

func TestValidate_RawTypeOptionsOnOptionlessType(t *testing.T) {
	t.Parallel()

	desc := validDescription()
	desc.Properties = append(desc.Properties, schema.PropertyField{
		DisplayName:    "When",
		Name:           "when",
		Type:           schema.TypeDateTime,
		TypeOptionsRaw: map[string]any{"min_value": 1},
	})

	err := desc.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrTypeOptionsMismatch)
}

func TestValidate_ResourceMapperMethods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		opts  *schema.ResourceMapperOptions
		valid bool
	}{
		{name: "no options at all", opts: nil, valid: false},
		{name: "neither method", opts: &schema.ResourceMapperOptions{}, valid: false},
		{
			name: "both methods",
			opts: &schema.ResourceMapperOptions{
				ResourceMapperMethod:      "getFields",
				LocalResourceMapperMethod: "getLocalFields",
			},
			valid: false,
		},
		{
			name:  "remote method only",
			opts:  &schema.ResourceMapperOptions{ResourceMapperMethod: "getFields"},
			valid: true,
		},
		{
			name:  "local method only",
			opts:  &schema.ResourceMapperOptions{LocalResourceMapperMethod: "getLocalFields"},
			valid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			desc := &schema.NodeDescription{
				DisplayName: "Sample",
				Name:        "sample",
				Version:     1,
				Properties: []schema.PropertyField{
					{
						DisplayName: "Mapping",
						Name:        "mapping",
						Type:        schema.TypeResourceMapper,
					},
				},
			}
			if tt.opts != nil {
				desc.Properties[0].TypeOptions = tt.opts
			}

			err := desc.Validate()
			if tt.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.ErrorIs(t, err, schema.ErrResourceMapperMethod)
			}
		})
	}
}

func TestValidate_UnknownType(t *testing.T) {
	t.Parallel()

	desc := validDescription()
	desc.Properties = append(desc.Properties, schema.PropertyField{
		DisplayName: "Weird",
		Name:        "weird",
		Type:        schema.PropertyType("weird"),
	})

	err := desc.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrUnknownType)
}

func TestValidate_ShapeMismatches(t *testing.T) {
	t.Parallel()

	t.Run("options list on string property", func(t *testing.T) {
		t.Parallel()

		desc := validDescription()
		desc.Properties[1].Options = []schema.OptionItem{{Name: "A", Value: "a"}}

		require.Error(t, desc.Validate())
	})

	t.Run("options property without choices", func(t *testing.T) {
		t.Parallel()

		desc := validDescription()
		desc.Properties[0].Options = nil

		require.Error(t, desc.Validate())
	})

	t.Run("fixedCollection without groups", func(t *testing.T) {
		t.Parallel()

		desc := validDescription()
		desc.Properties = append(desc.Properties, schema.PropertyField{
			DisplayName: "Entries",
			Name:        "entries",
			Type:        schema.TypeFixedCollection,
		})

		require.Error(t, desc.Validate())
	})
}

func TestValidate_InvalidRoutingMethod(t *testing.T) {
	t.Parallel()

	desc := validDescription()
	desc.Properties[1].Routing = &schema.RoutingSpec{Method: "FETCH"}

	err := desc.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrInvalidRouting)
}

func TestValidate_RejectsOptionRoutingOnMultiOptions(t *testing.T) {
	t.Parallel()

	desc := validDescription()
	desc.Properties = append(desc.Properties, schema.PropertyField{
		DisplayName: "Scopes",
		Name:        "scopes",
		Type:        schema.TypeMultiOptions,
		Options: []schema.OptionItem{
			{Name: "Read", Value: "read"},
			{Name: "Write", Value: "write", Routing: &schema.RoutingSpec{Method: "POST"}},
		},
	})

	err := desc.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrInvalidRouting)

	var schemaErr *schema.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, schemaErr.Path, "scopes")
}

func TestValidate_InvalidDefaultShape(t *testing.T) {
	t.Parallel()

	desc := validDescription()
	desc.Properties = append(desc.Properties, schema.PropertyField{
		DisplayName: "Count",
		Name:        "count",
		Type:        schema.TypeNumber,
		Default:     "not a number",
	})

	err := desc.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrInvalidDefault)
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	t.Parallel()

	desc := validDescription()
	desc.Properties = append(desc.Properties,
		schema.PropertyField{
			DisplayName: "Dup",
			Name:        "resource",
			Type:        schema.TypeString,
		},
		schema.PropertyField{
			DisplayName: "Weird",
			Name:        "weird",
			Type:        schema.PropertyType("weird"),
		},
	)

	err := desc.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrDuplicateName)
	assert.ErrorIs(t, err, schema.ErrUnknownType)
}

func TestSchemaError_CarriesPath(t *testing.T) {
	t.Parallel()

	desc := validDescription()
	desc.Properties[1].DisplayOptions.Show = map[string][]any{"nowhere": {true}}

	err := desc.Validate()
	require.Error(t, err)

	var schemaErr *schema.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Contains(t, schemaErr.Path, "userId")
}
