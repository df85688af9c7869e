package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orchahq/nodekit/pkg/schema"
)

func TestRoutingSpec_Merge(t *testing.T) {
	t.Parallel()

	base := &schema.RoutingSpec{
		Method:  "GET",
		URL:     "/base",
		Headers: map[string]string{"Accept": "application/json"},
	}

	merged := base.Merge(&schema.RoutingSpec{
		Method: "POST",
		Query:  map[string]string{"page": "1"},
	})

	assert.Equal(t, "POST", merged.Method)
	assert.Equal(t, "/base", merged.URL, "unset fields keep the base value")
	assert.Equal(t, map[string]string{"Accept": "application/json"}, merged.Headers)
	assert.Equal(t, map[string]string{"page": "1"}, merged.Query)

	// Neither input is mutated.
	assert.Equal(t, "GET", base.Method)
	assert.Nil(t, base.Query)
}

func TestRoutingSpec_MergeNilReceivers(t *testing.T) {
	t.Parallel()

	var base *schema.RoutingSpec

	merged := base.Merge(&schema.RoutingSpec{Method: "GET"})
	assert.Equal(t, "GET", merged.Method)

	merged = base.Merge(nil)
	assert.NotNil(t, merged)
	assert.Empty(t, merged.Method)
}

func TestValidMethod(t *testing.T) {
	t.Parallel()

	assert.True(t, schema.ValidMethod(""))
	assert.True(t, schema.ValidMethod("GET"))
	assert.True(t, schema.ValidMethod("DELETE"))
	assert.False(t, schema.ValidMethod("get"))
	assert.False(t, schema.ValidMethod("FETCH"))
}

func TestPropertyType_DataBearing(t *testing.T) {
	t.Parallel()

	for _, typ := range []schema.PropertyType{
		schema.TypeString, schema.TypeNumber, schema.TypeBoolean,
		schema.TypeOptions, schema.TypeFixedCollection, schema.TypeHidden,
	} {
		assert.True(t, typ.DataBearing(), "%s should bear data", typ)
	}

	for _, typ := range []schema.PropertyType{
		schema.TypeNotice, schema.TypeButton, schema.TypeCallout, schema.TypeCurlImport,
	} {
		assert.False(t, typ.DataBearing(), "%s should not bear data", typ)
	}
}
