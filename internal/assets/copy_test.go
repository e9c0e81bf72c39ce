package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyTreeMirrors(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out")

	files := map[string]string{
		"style.css":          "body { margin: 0 }",
		"css/deep/extra.css": "a { color: blue }",
		"icons/icon.svg":     "<svg/>",
	}
	for name, body := range files {
		path := filepath.Join(src, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}

	require.NoError(t, CopyTree(src, dst))

	for name, body := range files {
		got, err := os.ReadFile(filepath.Join(dst, name))
		require.NoError(t, err, name)
		assert.Equal(t, body, string(got), name)
	}
}

func TestCopyTreeOverwrites(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(src, "a.txt"), []byte("new"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dst, "a.txt"), []byte("stale"), 0o644))

	require.NoError(t, CopyTree(src, dst))

	got, err := os.ReadFile(filepath.Join(dst, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestCopyTreeSkipsSymlinks(t *testing.T) {
	outside := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outside, "secret.txt"), []byte("x"), 0o644))

	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "kept.txt"), []byte("y"), 0o644))
	if err := os.Symlink(outside, filepath.Join(src, "escape")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	dst := filepath.Join(t.TempDir(), "out")
	require.NoError(t, CopyTree(src, dst))

	_, err := os.Stat(filepath.Join(dst, "kept.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dst, "escape"))
	assert.True(t, os.IsNotExist(err), "symlink must not be copied or followed")
}

func TestCopyTreeMissingSource(t *testing.T) {
	err := CopyTree(filepath.Join(t.TempDir(), "nope"), t.TempDir())
	require.Error(t, err)

	var ce *CopyError
	assert.ErrorAs(t, err, &ce)
}
