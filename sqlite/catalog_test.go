package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/radiogaga"
	"github.com/fwojciec/radiogaga/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogStore_Load(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND before first save", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewCatalogStore(setupTestDB(t))

		_, err := store.Load(context.Background())

		require.Error(t, err)
		assert.Equal(t, radiogaga.ENOTFOUND, radiogaga.ErrorCode(err))
	})

	t.Run("loads an empty catalog once saved", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewCatalogStore(setupTestDB(t))
		ctx := context.Background()
		require.NoError(t, store.Save(ctx, radiogaga.NewCatalog()))

		c, err := store.Load(ctx)

		require.NoError(t, err)
		assert.Equal(t, 0, c.Len())
	})
}

func TestCatalogStore_SavedAt(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND before first save", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewCatalogStore(setupTestDB(t))

		_, err := store.SavedAt(context.Background())

		assert.Equal(t, radiogaga.ENOTFOUND, radiogaga.ErrorCode(err))
	})

	t.Run("records save time", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewCatalogStore(setupTestDB(t))
		ctx := context.Background()
		before := time.Now().UTC().Truncate(time.Second)
		require.NoError(t, store.Save(ctx, radiogaga.NewCatalog()))

		savedAt, err := store.SavedAt(ctx)

		require.NoError(t, err)
		assert.False(t, savedAt.Before(before))
		assert.WithinDuration(t, time.Now(), savedAt, time.Minute)
	})
}

func TestCatalogStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("round-trips stations in order", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewCatalogStore(setupTestDB(t))
		ctx := context.Background()

		c := radiogaga.NewCatalog()
		c.Add("Radio Nova", "http://nova")
		c.Add("FIP", "http://fip")
		c.Add("Chérie FM", "http://cherie")
		require.NoError(t, store.Save(ctx, c))

		got, err := store.Load(ctx)

		require.NoError(t, err)
		assert.Equal(t, c.Stations(), got.Stations())
	})

	t.Run("replaces previous catalog", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewCatalogStore(setupTestDB(t))
		ctx := context.Background()

		first := radiogaga.NewCatalog()
		first.Add("Old", "http://old")
		require.NoError(t, store.Save(ctx, first))

		second := radiogaga.NewCatalog()
		second.Add("New", "http://new")
		require.NoError(t, store.Save(ctx, second))

		got, err := store.Load(ctx)

		require.NoError(t, err)
		assert.Equal(t, []string{"New"}, got.Names())
	})

	t.Run("keeps previous catalog when save is canceled", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewCatalogStore(setupTestDB(t))
		first := radiogaga.NewCatalog()
		first.Add("Kept", "http://kept")
		require.NoError(t, store.Save(context.Background(), first))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		second := radiogaga.NewCatalog()
		second.Add("Lost", "http://lost")
		require.Error(t, store.Save(ctx, second))

		got, err := store.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"Kept"}, got.Names())
	})
}
