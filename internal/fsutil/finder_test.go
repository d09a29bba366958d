package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	for _, name := range []string{"a.hcl", "b.txt", "nested/c.hcl", "nested/d.yml"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	hcl, err := FindFilesByExtension(dir, ".hcl")
	require.NoError(t, err)
	assert.Len(t, hcl, 2)

	markup, err := FindFilesByExtension(dir, ".yaml", ".yml")
	require.NoError(t, err)
	require.Len(t, markup, 1)
	assert.Equal(t, filepath.Join(dir, "nested", "d.yml"), markup[0])
}

func TestFindFilesByExtension_PanicsWithoutExtension(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = FindFilesByExtension(t.TempDir())
	})
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	for _, name := range []string{"a.hcl", "sub/b.hcl", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	t.Run("mix of file and directory paths", func(t *testing.T) {
		files, err := CollectFiles([]string{dir, filepath.Join(dir, "a.hcl")}, ".hcl")
		require.NoError(t, err)
		assert.Len(t, files, 2, "the explicit file path is de-duplicated against the walk")
	})

	t.Run("missing paths are skipped", func(t *testing.T) {
		files, err := CollectFiles([]string{filepath.Join(dir, "absent")}, ".hcl")
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("explicit file with wrong extension is ignored", func(t *testing.T) {
		files, err := CollectFiles([]string{filepath.Join(dir, "c.txt")}, ".hcl")
		require.NoError(t, err)
		assert.Empty(t, files)
	})
}
