package registry_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orchahq/nodekit/pkg/registry"
	"github.com/orchahq/nodekit/pkg/schema"
	"github.com/orchahq/nodekit/pkg/testutil"
)

func newTestRegistry() *registry.Registry {
	return registry.NewRegistry(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry()

	v1 := testutil.CreateTestDescription(testutil.WithName("sample"), testutil.WithVersion(1))
	v2 := testutil.CreateTestDescription(testutil.WithName("sample"), testutil.WithVersion(2))

	require.NoError(t, reg.Register(v1))
	require.NoError(t, reg.Register(v2))

	desc, err := reg.Get("sample", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, desc.Version)

	// Version 0 selects the latest.
	desc, err = reg.Get("sample", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, desc.Version)

	_, err = reg.Get("sample", 3)
	require.Error(t, err)

	_, err = reg.Get("absent", 0)
	require.Error(t, err)
}

func TestRegistry_RejectsDuplicatesAndInvalid(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry()
	desc := testutil.CreateTestDescription(testutil.WithName("sample"))

	require.NoError(t, reg.Register(desc))
	require.Error(t, reg.Register(desc), "same name and version twice")

	invalid := testutil.CreateTestDescription(
		testutil.WithName("broken"),
		testutil.WithProperties(
			testutil.StringProperty("a"),
			testutil.StringProperty("a"),
		),
	)
	require.Error(t, reg.Register(invalid))

	_, err := reg.Get("broken", 0)
	require.Error(t, err, "invalid descriptions are never registered")
}

func TestRegistry_ListSortedByName(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry()

	require.NoError(t, reg.Register(testutil.CreateTestDescription(testutil.WithName("zeta"))))
	require.NoError(t, reg.Register(testutil.CreateTestDescription(testutil.WithName("alpha"))))
	require.NoError(t, reg.Register(testutil.CreateTestDescription(testutil.WithName("alpha"), testutil.WithVersion(3))))

	list := reg.List()
	require.Len(t, list, 2)
	assert.Equal(t, "alpha", list[0].Name)
	assert.Equal(t, 3, list[0].Version)
	assert.Equal(t, "zeta", list[1].Name)
}

func TestRegistry_RegisterBuiltins(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry()
	require.NoError(t, reg.RegisterBuiltins())

	list := reg.List()
	assert.Len(t, list, 6)

	for _, name := range []string{"httpRequest", "if", "filter", "editFields", "dateTime", "eventReceived"} {
		desc, err := reg.Get(name, 0)
		require.NoError(t, err, "builtin %s", name)
		require.NoError(t, desc.Validate())
	}
}

func TestRegistry_LoadDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	doc := `{
      "display_name": "Loaded",
      "name": "loaded",
      "version": 1,
      "properties": [
        {"display_name": "Name", "name": "name", "type": "string", "required": true}
      ]
    }`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "loaded.json"), []byte(doc), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600))

	reg := newTestRegistry()
	require.NoError(t, reg.LoadDirectory(dir))

	desc, err := reg.Get("loaded", 0)
	require.NoError(t, err)
	assert.Equal(t, "Loaded", desc.DisplayName)
}

func TestRegistry_LoadDirectoryAbortsOnInvalidDocument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte(`{"name": "x"}`), 0o600))

	reg := newTestRegistry()

	err := reg.LoadDirectory(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrMalformedDocument)
}

func TestRegistry_LoadExampleSchemas(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry()
	require.NoError(t, reg.LoadDirectory(filepath.Join("..", "..", "examples", "schemas")))

	for _, name := range []string{"blogApi", "weather"} {
		_, err := reg.Get(name, 0)
		require.NoError(t, err, "example schema %s", name)
	}
}
