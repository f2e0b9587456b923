package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/radiogaga"
	"github.com/fwojciec/radiogaga/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *radiogaga.Catalog {
	c := radiogaga.NewCatalog()
	c.Add("France Inter", "http://direct.franceinter.fr/live/franceinter-midfi.mp3")
	c.Add("France Inter 2", "http://direct.franceinter.fr/live/franceinter-lofi.mp3")
	c.Add("Chérie FM", "http://cherie.ice.infomaniak.ch/cherie.mp3?a=1&b=2")
	return c
}

func TestEncodeCatalog(t *testing.T) {
	t.Parallel()

	data, err := fs.EncodeCatalog(testCatalog())

	require.NoError(t, err)
	want := `{
    "France Inter": "http://direct.franceinter.fr/live/franceinter-midfi.mp3",
    "France Inter 2": "http://direct.franceinter.fr/live/franceinter-lofi.mp3",
    "Chérie FM": "http://cherie.ice.infomaniak.ch/cherie.mp3?a=1&b=2"
}
`
	assert.Equal(t, want, string(data))
}

func TestCatalogStore(t *testing.T) {
	t.Parallel()

	t.Run("round-trips stations and order", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "radio_stations.json")
		store := fs.NewCatalogStore(path)
		ctx := context.Background()

		require.NoError(t, store.Save(ctx, testCatalog()))
		got, err := store.Load(ctx)

		require.NoError(t, err)
		assert.Equal(t, testCatalog().Stations(), got.Stations())
	})

	t.Run("returns ENOTFOUND for missing file", func(t *testing.T) {
		t.Parallel()

		store := fs.NewCatalogStore(filepath.Join(t.TempDir(), "missing.json"))

		_, err := store.Load(context.Background())

		require.Error(t, err)
		assert.Equal(t, radiogaga.ENOTFOUND, radiogaga.ErrorCode(err))
	})

	t.Run("returns error for malformed file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"FIP": `), 0644))
		store := fs.NewCatalogStore(path)

		_, err := store.Load(context.Background())

		require.Error(t, err)
		assert.NotEqual(t, radiogaga.ENOTFOUND, radiogaga.ErrorCode(err))
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a", "b", "stations.json")
		store := fs.NewCatalogStore(path)

		require.NoError(t, store.Save(context.Background(), testCatalog()))

		_, err := os.Stat(path)
		require.NoError(t, err)
	})

	t.Run("replaces existing catalog wholesale", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "stations.json")
		store := fs.NewCatalogStore(path)
		ctx := context.Background()
		require.NoError(t, store.Save(ctx, testCatalog()))

		replacement := radiogaga.NewCatalog()
		replacement.Add("FIP", "http://fip")
		require.NoError(t, store.Save(ctx, replacement))

		got, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"FIP"}, got.Names())
	})

	t.Run("leaves no temporary files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewCatalogStore(filepath.Join(dir, "stations.json"))

		require.NoError(t, store.Save(context.Background(), testCatalog()))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "stations.json", entries[0].Name())
	})

	t.Run("path is absolute", func(t *testing.T) {
		t.Parallel()

		store := fs.NewCatalogStore("radio_stations.json")

		assert.True(t, filepath.IsAbs(store.Path()))
	})
}
