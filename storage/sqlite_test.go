package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "records.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "records.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created")
}

func TestStoreReopenKeepsRecords(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "records.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	_, err = store.SaveRecord("mining", "cave", true, 300)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	recent, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "mining", recent[0].Kind)
	assert.Equal(t, "cave", recent[0].Stage)
}

func TestBestTimesOnlyCountsWins(t *testing.T) {
	store := openTestStore(t)

	attempts := []struct {
		kind  string
		won   bool
		ticks int
	}{
		{"simon_says", true, 900},
		{"simon_says", false, 100},
		{"simon_says", true, 450},
		{"simon_says", true, 600},
		{"connect_wires", true, 50},
	}
	for _, a := range attempts {
		_, err := store.SaveRecord(a.kind, "hub", a.won, a.ticks)
		require.NoError(t, err)
	}

	best, err := store.BestTimes("simon_says", 2)
	require.NoError(t, err)
	require.Len(t, best, 2)
	assert.Equal(t, 450, best[0].Ticks)
	assert.Equal(t, 600, best[1].Ticks)
	for _, r := range best {
		assert.True(t, r.Won)
		assert.Equal(t, "simon_says", r.Kind)
	}
}

func TestRecentNewestFirst(t *testing.T) {
	store := openTestStore(t)

	for i, kind := range []string{"simon_says", "connect_wires", "mining"} {
		_, err := store.SaveRecord(kind, "", i%2 == 0, 10*(i+1))
		require.NoError(t, err)
	}

	recent, err := store.Recent(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "mining", recent[0].Kind)
	assert.Equal(t, "connect_wires", recent[1].Kind)
	assert.False(t, recent[1].Won)
	assert.False(t, recent[0].CreatedAt.IsZero())
}

func TestSummaries(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveRecord("mining", "cave", false, 80)
	require.NoError(t, err)
	_, err = store.SaveRecord("mining", "cave", true, 400)
	require.NoError(t, err)
	_, err = store.SaveRecord("mining", "cave", true, 250)
	require.NoError(t, err)
	_, err = store.SaveRecord("simon_says", "hub", false, 30)
	require.NoError(t, err)

	sums, err := store.Summaries()
	require.NoError(t, err)
	require.Len(t, sums, 2)

	assert.Equal(t, Summary{Kind: "mining", Wins: 2, Losses: 1, BestTicks: 250}, sums[0])
	assert.Equal(t, Summary{Kind: "simon_says", Wins: 0, Losses: 1, BestTicks: 0}, sums[1])
}

func TestEmptyStore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestTimes("mining", 0)
	require.NoError(t, err)
	assert.Empty(t, best)

	sums, err := store.Summaries()
	require.NoError(t, err)
	assert.Empty(t, sums)
}
