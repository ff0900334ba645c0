package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveAndOpen(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	rel, n, err := store.Save("Life", "a.mp4", strings.NewReader("video-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "Life/a.mp4", rel)
	assert.Equal(t, int64(len("video-bytes")), n)

	f, err := store.Open(rel)
	require.NoError(t, err)
	defer f.Close()

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Equal(t, "video-bytes", string(data))
	assert.True(t, store.Exists(rel))
}

func TestStore_SaveOverwritesSameName(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, _, err = store.Save("Life", "a.mp4", strings.NewReader("first"))
	require.NoError(t, err)
	rel, _, err := store.Save("Life", "a.mp4", strings.NewReader("second"))
	require.NoError(t, err)

	abs, err := store.Resolve(rel)
	require.NoError(t, err)
	data, err := os.ReadFile(abs)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestStore_DirectoryCreationIdempotent(t *testing.T) {
	root := t.TempDir()
	store, err := NewStore(root)
	require.NoError(t, err)

	_, _, err = store.Save("War", "one.mp4", strings.NewReader("1"))
	require.NoError(t, err)
	_, _, err = store.Save("War", "two.mp4", strings.NewReader("2"))
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(root, "War"))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestStore_ResolveRejectsTraversal(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	for _, rel := range []string{
		"../outside.txt",
		"Life/../../outside.txt",
		"/etc/passwd",
		"..",
	} {
		_, err := store.Resolve(rel)
		assert.ErrorIs(t, err, ErrInvalidPath, "path %q", rel)
	}

	// Dot segments that stay inside the root are fine.
	_, err = store.Resolve("Life/../War/a.mp4")
	assert.NoError(t, err)
}

func TestStore_RemoveMissingIsNoop(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Remove("Life/gone.mp4"))
}

func TestThumbnailName(t *testing.T) {
	assert.Equal(t, "a.mp4_thumb.jpg", ThumbnailName("a.mp4"))
}
