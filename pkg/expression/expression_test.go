package expression_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orchahq/nodekit/pkg/expression"
)

func TestResolve_LiteralPassthrough(t *testing.T) {
	t.Parallel()

	ctx := expression.NewContext(map[string]any{})

	value, err := expression.Resolve("/users/literal", ctx)
	require.NoError(t, err)
	assert.Equal(t, "/users/literal", value)
}

func TestResolve_DelimitersRequireSigil(t *testing.T) {
	t.Parallel()

	ctx := expression.NewContext(map[string]any{"userId": "42"})

	// Delimiters without the leading sigil fail loudly instead of passing
	// through as literal text.
	_, err := expression.Resolve("{{ not a template }}", ctx)
	require.Error(t, err)
	assert.True(t, expression.IsMalformed(err))

	// A sigil attached mid-string does not start a template either.
	_, err = expression.Resolve("/users/={{$parameter.userId}}", ctx)
	require.Error(t, err)
	assert.True(t, expression.IsMalformed(err))

	_, err = expression.Resolve("tail }} only", ctx)
	require.Error(t, err)
	assert.True(t, expression.IsMalformed(err))
}

func TestEvaluate_Interpolation(t *testing.T) {
	t.Parallel()

	ctx := expression.NewContext(map[string]any{
		"userId": "42",
		"limit":  float64(10),
	})

	tests := []struct {
		name     string
		template string
		expected string
	}{
		{
			name:     "single reference",
			template: "=/users/{{ $parameter.userId }}",
			expected: "/users/42",
		},
		{
			name:     "reference between literals",
			template: "=/users/{{ $parameter.userId }}/posts?limit={{ $parameter.limit }}",
			expected: "/users/42/posts?limit=10",
		},
		{
			name:     "no expression segments",
			template: "=/users/all",
			expected: "/users/all",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := expression.Evaluate(tt.template, ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestResolve_SingleExpressionKeepsType(t *testing.T) {
	t.Parallel()

	ctx := expression.NewContext(map[string]any{
		"limit":   float64(25),
		"enabled": true,
		"tags":    []any{"a", "b"},
	})

	value, err := expression.Resolve("={{ $parameter.limit }}", ctx)
	require.NoError(t, err)
	assert.Equal(t, float64(25), value)

	value, err = expression.Resolve("={{ $parameter.enabled }}", ctx)
	require.NoError(t, err)
	assert.Equal(t, true, value)

	value, err = expression.Resolve("={{ $parameter.tags }}", ctx)
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, value)
}

func TestResolve_NestedAndIndexedPaths(t *testing.T) {
	t.Parallel()

	ctx := expression.NewContext(map[string]any{
		"options": map[string]any{"timeout": float64(30)},
		"queryParameters": map[string]any{
			"parameters": []any{
				map[string]any{"name": "page", "value": "1"},
				map[string]any{"name": "size", "value": "50"},
			},
		},
	})

	value, err := expression.Resolve("={{ $parameter.options.timeout }}", ctx)
	require.NoError(t, err)
	assert.Equal(t, float64(30), value)

	result, err := expression.Evaluate("=?{{ $parameter.queryParameters.parameters.1.name }}", ctx)
	require.NoError(t, err)
	assert.Equal(t, "?size", result)
}

func TestResolve_Malformed(t *testing.T) {
	t.Parallel()

	ctx := expression.NewContext(map[string]any{"userId": "42"})

	tests := []struct {
		name     string
		template string
	}{
		{name: "unclosed delimiter", template: "=/users/{{ $parameter.userId"},
		{name: "stray closing delimiter", template: "=/users/}} oops"},
		{name: "close before open", template: "=}} {{ $parameter.userId }}"},
		{name: "unknown root", template: "={{ $json.userId }}"},
		{name: "no root at all", template: "={{ userId }}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := expression.Resolve(tt.template, ctx)
			require.Error(t, err)
			assert.True(t, expression.IsMalformed(err))
		})
	}
}

func TestResolve_UnresolvedReference(t *testing.T) {
	t.Parallel()

	ctx := expression.NewContext(map[string]any{"userId": "42"})

	_, err := expression.Resolve("={{ $parameter.missing }}", ctx)
	require.Error(t, err)
	assert.True(t, expression.IsUnresolved(err))
	assert.False(t, expression.IsMalformed(err))

	_, err = expression.Resolve("={{ $parameter.userId.deeper }}", ctx)
	require.Error(t, err)
	assert.True(t, expression.IsUnresolved(err))
}

func TestStringify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", expression.Stringify(nil))
	assert.Equal(t, "plain", expression.Stringify("plain"))
	assert.Equal(t, "true", expression.Stringify(true))
	assert.Equal(t, "42", expression.Stringify(float64(42)))
	assert.Equal(t, "2.5", expression.Stringify(2.5))
	assert.Equal(t, `{"a":1}`, expression.Stringify(map[string]any{"a": 1}))
}

func TestIsExpression(t *testing.T) {
	t.Parallel()

	assert.True(t, expression.IsExpression("={{ $parameter.x }}"))
	assert.True(t, expression.IsExpression("=literal"))
	assert.False(t, expression.IsExpression("literal"))
	assert.False(t, expression.IsExpression(""))
}
