package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/faideww/koga-fishing/internal/fish"
	"github.com/faideww/koga-fishing/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *store.SQLiteStore {
	t.Helper()
	st, err := store.OpenSQLite(filepath.Join(t.TempDir(), "nested", "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestSQLiteStore_TopByPrice(t *testing.T) {
	st := openTemp(t)
	ctx := context.Background()
	sid := uuid.New()
	cat := fish.DefaultCatalog()

	for _, id := range []fish.FishId{1, 32, 14, 32, 18} {
		f, err := cat.Fish(id)
		require.NoError(t, err)
		require.NoError(t, st.Add(ctx, fish.NewCatch(sid, "kogakisaki", f, 3)))
	}

	rows, err := st.TopByPrice(ctx, 3)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Whale", rows[0].Fish)
	assert.Equal(t, "Whale", rows[1].Fish)
	assert.Equal(t, "Marlin", rows[2].Fish)
	assert.Greater(t, rows[0].Id, rows[1].Id, "ties break on newest first")

	first := rows[0]
	assert.Equal(t, sid, first.SessionId)
	assert.Equal(t, "kogakisaki", first.Player)
	assert.Equal(t, fish.FishId(32), first.FishId)
	assert.Equal(t, 4, first.Rarity)
	assert.Equal(t, 500, first.Price)
	assert.Equal(t, fish.EnvironmentId(3), first.EnvironmentId)
	assert.WithinDuration(t, time.Now(), first.CaughtAt, time.Minute)
}

func TestSQLiteStore_TopByPriceFishAndCount(t *testing.T) {
	st := openTemp(t)
	ctx := context.Background()
	mine, theirs := uuid.New(), uuid.New()

	bass := fish.Fish{Id: 1, Name: "Small Bass", Rarity: 1, Price: 20}
	trout := fish.Fish{Id: 4, Name: "Small Trout", Rarity: 1, Price: 25}
	require.NoError(t, st.Add(ctx, fish.NewCatch(mine, "a", bass, 1)))
	require.NoError(t, st.Add(ctx, fish.NewCatch(mine, "a", trout, 1)))
	require.NoError(t, st.Add(ctx, fish.NewCatch(theirs, "b", bass, 4)))

	rows, err := st.TopByPriceFish(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, fish.FishId(1), r.FishId)
	}

	n, err := st.CountBySession(ctx, mine)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = st.CountBySession(ctx, uuid.New())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSQLiteStore_ReopenKeepsRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	ctx := context.Background()

	st, err := store.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, st.Add(ctx, fish.Catch{SessionId: uuid.New(), Player: "p", FishId: 2, Fish: "Medium Bass", Rarity: 2, Price: 40, EnvironmentId: 1}))
	require.NoError(t, st.Close())

	st, err = store.OpenSQLite(path)
	require.NoError(t, err)
	defer st.Close()

	rows, err := st.TopByPrice(ctx, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Medium Bass", rows[0].Fish)
	assert.False(t, rows[0].CaughtAt.IsZero())
}
