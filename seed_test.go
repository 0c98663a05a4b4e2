package extstore

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assetFS() fstest.MapFS {
	return fstest.MapFS{
		"assets/file1.txt":             {Data: []byte("This is file1 content\n")},
		"assets/root.txt":              {Data: []byte("Root level file\n")},
		"assets/subdir/file2.txt":      {Data: []byte("This is file2 content in subdir\n")},
		"assets/nested/deep/file3.txt": {Data: []byte("This is file3 deeply nested\n"), Mode: 0o444},
	}
}

func readExternal(t *testing.T, s *Store, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(s.ExternalStoragePath(), filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func TestStore_Seed(t *testing.T) {
	t.Run("root copy", func(t *testing.T) {
		s := newTestStore(t)
		require.NoError(t, s.Seed(assetFS(), "assets", "/external/"))

		assert.Equal(t, "This is file1 content\n", readExternal(t, s, "file1.txt"))
		assert.Equal(t, "Root level file\n", readExternal(t, s, "root.txt"))
		assert.Equal(t, "This is file2 content in subdir\n", readExternal(t, s, "subdir/file2.txt"))
		assert.Equal(t, "This is file3 deeply nested\n", readExternal(t, s, "nested/deep/file3.txt"))

		names, err := s.ListDir("/external/")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"file1.txt", "root.txt", "subdir", "nested"}, names)
	})

	t.Run("subdir copy into subdir", func(t *testing.T) {
		s := newTestStore(t)
		require.NoError(t, s.Seed(assetFS(), "assets/subdir", "/external/data"))

		assert.Equal(t, "This is file2 content in subdir\n", readExternal(t, s, "data/file2.txt"))
		_, err := os.Stat(filepath.Join(s.ExternalStoragePath(), "data", "file1.txt"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("dot root", func(t *testing.T) {
		s := newTestStore(t)
		src := fstest.MapFS{"only.txt": {Data: []byte("dot")}}
		require.NoError(t, s.Seed(src, ".", "/external/"))
		assert.Equal(t, "dot", readExternal(t, s, "only.txt"))
	})

	t.Run("overwrites existing", func(t *testing.T) {
		s := newTestStore(t)
		writeExternal(t, s, "/external/file1.txt", "old content")

		require.NoError(t, s.Seed(assetFS(), "assets", "/external/"))
		assert.Equal(t, "This is file1 content\n", readExternal(t, s, "file1.txt"))
	})

	t.Run("read-only source files stay rewritable", func(t *testing.T) {
		s := newTestStore(t)
		require.NoError(t, s.Seed(assetFS(), "assets", "/external/"))
		require.NoError(t, s.Seed(assetFS(), "assets", "/external/"))
	})

	t.Run("missing source", func(t *testing.T) {
		s := newTestStore(t)
		assert.Error(t, s.Seed(assetFS(), "assets/nonexistent", "/external/"))
	})

	t.Run("host destination", func(t *testing.T) {
		s := newTestStore(t)
		dest := t.TempDir()
		require.NoError(t, s.Seed(assetFS(), "assets/subdir", dest))

		data, err := os.ReadFile(filepath.Join(dest, "file2.txt"))
		require.NoError(t, err)
		assert.Equal(t, "This is file2 content in subdir\n", string(data))
	})
}

func TestRelTo(t *testing.T) {
	assert.Equal(t, "a/b", relTo(".", "a/b"))
	assert.Equal(t, "", relTo("assets", "assets"))
	assert.Equal(t, "x.txt", relTo("assets", "assets/x.txt"))
}
