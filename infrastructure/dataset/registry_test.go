package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	pkgerrors "cosylinks-backend/pkg/errors"
)

func writeRegistry(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "datasets.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewRegistry(t *testing.T) {
	t.Run("creates a starter file when missing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "datasets.json")

		registry, err := NewRegistry(path, zap.NewNop())
		require.NoError(t, err)

		assert.FileExists(t, path)
		definitions := registry.List()
		require.Len(t, definitions, 2)
		assert.Equal(t, "set_a", definitions[0].ID)
		assert.Equal(t, "set_b", definitions[1].ID)
	})

	t.Run("legacy flat fields become a default version", func(t *testing.T) {
		dir := t.TempDir()
		path := writeRegistry(t, dir, `{
			"datasets": [
				{"id": "legacy", "tree_txt": "tree.txt", "tagged_database_csv": "db.csv"}
			]
		}`)

		registry, err := NewRegistry(path, zap.NewNop())
		require.NoError(t, err)

		def, ver, err := registry.ResolveVersion("legacy", "")
		require.NoError(t, err)
		assert.Equal(t, "legacy", def.ID)
		assert.Equal(t, "default", ver.ID)
		assert.Equal(t, filepath.Join(dir, "tree.txt"), ver.TreeTxt)
		assert.Equal(t, filepath.Join(dir, "db.csv"), ver.TaggedDatabaseCSV)
	})

	t.Run("relative paths resolve against the registry directory", func(t *testing.T) {
		dir := t.TempDir()
		path := writeRegistry(t, dir, `{
			"datasets": [
				{"id": "a", "versions": [
					{"id": "v1", "tree_txt": "sub/tree.txt", "tagged_database_csv": "/abs/db.csv"}
				]}
			]
		}`)

		registry, err := NewRegistry(path, zap.NewNop())
		require.NoError(t, err)

		_, ver, err := registry.ResolveVersion("a", "v1")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "sub", "tree.txt"), ver.TreeTxt)
		assert.Equal(t, "/abs/db.csv", ver.TaggedDatabaseCSV)
	})

	t.Run("rejects a registry without datasets", func(t *testing.T) {
		path := writeRegistry(t, t.TempDir(), `{"datasets": []}`)
		_, err := NewRegistry(path, zap.NewNop())
		assert.Error(t, err)
	})
}

func TestRegistryResolve(t *testing.T) {
	path := writeRegistry(t, t.TempDir(), `{
		"datasets": [
			{"id": "first", "versions": [
				{"id": "v1", "tree_txt": "t1.txt"},
				{"id": "v2", "tree_txt": "t2.txt"}
			]},
			{"id": "second", "versions": [{"id": "v1"}]}
		]
	}`)

	registry, err := NewRegistry(path, zap.NewNop())
	require.NoError(t, err)

	t.Run("empty dataset id resolves to the first dataset", func(t *testing.T) {
		def, err := registry.Resolve("")
		require.NoError(t, err)
		assert.Equal(t, "first", def.ID)
	})

	t.Run("empty version id resolves to the first version", func(t *testing.T) {
		_, ver, err := registry.ResolveVersion("first", "")
		require.NoError(t, err)
		assert.Equal(t, "v1", ver.ID)
	})

	t.Run("named version resolves", func(t *testing.T) {
		_, ver, err := registry.ResolveVersion("first", "v2")
		require.NoError(t, err)
		assert.Equal(t, "v2", ver.ID)
	})

	t.Run("unknown dataset is not found", func(t *testing.T) {
		_, err := registry.Resolve("nope")
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("unknown version is not found", func(t *testing.T) {
		_, _, err := registry.ResolveVersion("first", "nope")
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("version label falls back to id", func(t *testing.T) {
		_, ver, err := registry.ResolveVersion("second", "v1")
		require.NoError(t, err)
		assert.Equal(t, "v1", ver.Label)
	})
}

func TestRegistryReloadKeepsPreviousOnFailure(t *testing.T) {
	path := writeRegistry(t, t.TempDir(), `{
		"datasets": [{"id": "a", "versions": [{"id": "v1"}]}]
	}`)

	registry, err := NewRegistry(path, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))
	assert.Error(t, registry.Reload())

	def, err := registry.Resolve("a")
	require.NoError(t, err)
	assert.Equal(t, "a", def.ID)
}
