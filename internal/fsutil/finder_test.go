package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func TestFindFilesByExtension(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b.hcl"))
	touch(t, filepath.Join(root, "nested", "a.yaml"))
	touch(t, filepath.Join(root, "notes.txt"))

	files, err := FindFilesByExtension(root, ".hcl", ".yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "b.hcl"),
		filepath.Join(root, "nested", "a.yaml"),
	}, files)
}

func TestCollectFiles(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "host.hcl")
	touch(t, file)
	touch(t, filepath.Join(root, "readme.md"))

	files, err := CollectFiles([]string{file, root, filepath.Join(root, "readme.md")}, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{file}, files, "duplicates and foreign files are dropped")

	_, err = CollectFiles([]string{filepath.Join(root, "missing")}, ".hcl")
	assert.ErrorContains(t, err, "error accessing path")
}
