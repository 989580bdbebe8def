package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestScan_ListsImagesSortedByName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "zebra.png"), []byte("z"))
	writeFile(t, filepath.Join(dir, "apple.JPG"), []byte("a"))
	writeFile(t, filepath.Join(dir, "notes.txt"), []byte("n"))
	writeFile(t, filepath.Join(dir, "mid.webp"), []byte("m"))

	lib, err := New(dir, false)
	require.NoError(t, err)

	items, err := lib.Scan()
	require.NoError(t, err)

	var names []string
	for _, it := range items {
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{"apple.JPG", "mid.webp", "zebra.png"}, names)
	assert.Equal(t, int64(1), items[0].Size)
}

func TestScan_NonRecursiveSkipsSubdirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "top.png"), []byte("t"))
	writeFile(t, filepath.Join(dir, "trip", "beach.png"), []byte("b"))

	lib, err := New(dir, false)
	require.NoError(t, err)
	items, err := lib.Scan()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "top.png", items[0].Name)
}

func TestScan_RecursiveIncludesSubdirsButNotHidden(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "top.png"), []byte("t"))
	writeFile(t, filepath.Join(dir, "trip", "beach.png"), []byte("b"))
	writeFile(t, filepath.Join(dir, ".cache", "thumb.png"), []byte("c"))

	lib, err := New(dir, true)
	require.NoError(t, err)
	items, err := lib.Scan()
	require.NoError(t, err)

	var names []string
	for _, it := range items {
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{"top.png", "trip/beach.png"}, names)
}

func TestScan_MissingRoot(t *testing.T) {
	lib, err := New(filepath.Join(t.TempDir(), "nope"), false)
	require.NoError(t, err)
	_, err = lib.Scan()
	assert.Error(t, err)
}

func TestScan_RootIsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.png")
	writeFile(t, path, []byte("x"))
	lib, err := New(path, false)
	require.NoError(t, err)
	_, err = lib.Scan()
	assert.ErrorIs(t, err, ErrNotDirectory)
}

func TestItemID_StableAcrossScans(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.png"), []byte("a"))
	writeFile(t, filepath.Join(dir, "b.png"), []byte("b"))

	lib, err := New(dir, false)
	require.NoError(t, err)
	first, err := lib.Scan()
	require.NoError(t, err)
	second, err := lib.Scan()
	require.NoError(t, err)

	require.Len(t, first, 2)
	assert.Equal(t, first[0].Selection(), second[0].Selection())
	assert.NotEqual(t, first[0].ID, first[1].ID)
	assert.Len(t, first[0].ID, 64)
}

func TestItemID_CleansPath(t *testing.T) {
	assert.Equal(t, ItemID("/photos/a.png"), ItemID("/photos/./trip/../a.png"))
}

func TestIsImageName(t *testing.T) {
	assert.True(t, IsImageName("x.TIFF"))
	assert.True(t, IsImageName("x.jpeg"))
	assert.False(t, IsImageName("x.heic"))
	assert.False(t, IsImageName("png"))
}
