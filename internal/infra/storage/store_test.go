package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/inference-gateway/drawbot/config"
	domain "github.com/inference-gateway/drawbot/internal/domain"
)

func testStores(t *testing.T, historyLimit int) map[string]StateStore {
	t.Helper()

	sqlite, err := NewSQLiteStore(config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "drawbot.db")}, historyLimit)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })

	return map[string]StateStore{
		"memory": NewMemoryStore(historyLimit),
		"sqlite": sqlite,
	}
}

func TestStateStore_State(t *testing.T) {
	for name, store := range testStores(t, 0) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			state, err := store.LoadState(ctx, "s1")
			require.NoError(t, err)
			assert.Equal(t, "s1", state.ID)
			assert.Nil(t, state.LastHouse)

			house := domain.Box{X: 350, Y: 420, Width: 340, Height: 220}
			state.LastHouse = &house
			require.NoError(t, store.SaveState(ctx, state))

			loaded, err := store.LoadState(ctx, "s1")
			require.NoError(t, err)
			require.NotNil(t, loaded.LastHouse)
			assert.Equal(t, house, *loaded.LastHouse)
			assert.False(t, loaded.UpdatedAt.IsZero())

			other, err := store.LoadState(ctx, "s2")
			require.NoError(t, err)
			assert.Nil(t, other.LastHouse, "sessions must not share state")

			loaded.LastHouse = nil
			require.NoError(t, store.SaveState(ctx, loaded))
			cleared, err := store.LoadState(ctx, "s1")
			require.NoError(t, err)
			assert.Nil(t, cleared.LastHouse)

			cleared.LastHouse = &house
			require.NoError(t, store.SaveState(ctx, cleared))
			require.NoError(t, store.ResetState(ctx, "s1"))
			reset, err := store.LoadState(ctx, "s1")
			require.NoError(t, err)
			assert.Nil(t, reset.LastHouse)
		})
	}
}

func TestStateStore_History(t *testing.T) {
	for name, store := range testStores(t, 0) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

			prompts := []string{"house", "tree", "sun"}
			for i, p := range prompts {
				require.NoError(t, store.AppendHistory(ctx, domain.HistoryEntry{
					SessionID: "s1",
					Prompt:    p,
					Kind:      p,
					Status:    "OK",
					Success:   true,
					CreatedAt: base.Add(time.Duration(i) * time.Second),
				}))
			}
			require.NoError(t, store.AppendHistory(ctx, domain.HistoryEntry{SessionID: "s2", Prompt: "dance", Kind: "unknown"}))

			all, err := store.ListHistory(ctx, "s1", 0)
			require.NoError(t, err)
			require.Len(t, all, 3)
			assert.Equal(t, "sun", all[0].Prompt)
			assert.Equal(t, "house", all[2].Prompt)
			assert.True(t, all[0].Success)
			assert.True(t, all[0].CreatedAt.Equal(base.Add(2*time.Second)))

			limited, err := store.ListHistory(ctx, "s1", 2)
			require.NoError(t, err)
			require.Len(t, limited, 2)
			assert.Equal(t, "tree", limited[1].Prompt)

			other, err := store.ListHistory(ctx, "s2", 10)
			require.NoError(t, err)
			require.Len(t, other, 1)
			assert.False(t, other[0].Success)
			assert.False(t, other[0].CreatedAt.IsZero())

			none, err := store.ListHistory(ctx, "nobody", 10)
			require.NoError(t, err)
			assert.Empty(t, none)
		})
	}
}

func TestStateStore_HistoryLimit(t *testing.T) {
	for name, store := range testStores(t, 3) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

			for i, p := range []string{"house", "tree", "car", "person", "sun"} {
				require.NoError(t, store.AppendHistory(ctx, domain.HistoryEntry{
					SessionID: "s1",
					Prompt:    p,
					Kind:      p,
					CreatedAt: base.Add(time.Duration(i) * time.Second),
				}))
			}
			require.NoError(t, store.AppendHistory(ctx, domain.HistoryEntry{SessionID: "s2", Prompt: "grass", Kind: "grass", CreatedAt: base}))

			all, err := store.ListHistory(ctx, "s1", 0)
			require.NoError(t, err)
			require.Len(t, all, 3)
			assert.Equal(t, "sun", all[0].Prompt)
			assert.Equal(t, "person", all[1].Prompt)
			assert.Equal(t, "car", all[2].Prompt)

			other, err := store.ListHistory(ctx, "s2", 0)
			require.NoError(t, err)
			assert.Len(t, other, 1, "trimming one session must not touch another")
		})
	}
}

func TestStateStore_Health(t *testing.T) {
	for name, store := range testStores(t, 0) {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, store.Health(context.Background()))
		})
	}
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)

	house := domain.Box{X: 1, Y: 2, Width: 3, Height: 4}
	state := &domain.SessionState{ID: "s1", LastHouse: &house}
	require.NoError(t, store.SaveState(ctx, state))

	house.X = 99
	loaded, err := store.LoadState(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.LastHouse.X)

	loaded.LastHouse.X = 50
	again, err := store.LoadState(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, again.LastHouse.X)
}

func TestSQLiteStore_Persists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "drawbot.db")

	store, err := NewSQLiteStore(config.SQLiteConfig{Path: path}, 20)
	require.NoError(t, err)
	house := domain.Box{X: 10, Y: 20, Width: 30, Height: 40}
	require.NoError(t, store.SaveState(ctx, &domain.SessionState{ID: "s1", LastHouse: &house}))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(config.SQLiteConfig{Path: path}, 20)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	state, err := reopened.LoadState(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, state.LastHouse)
	assert.Equal(t, house, *state.LastHouse)
}

func TestNewStateStore(t *testing.T) {
	store, err := NewStateStore(config.StorageConfig{Type: "memory"}, 20)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	store, err = NewStateStore(config.StorageConfig{
		Type:   "sqlite",
		SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "f.db")},
	}, 20)
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, store)
	require.NoError(t, store.Close())

	_, err = NewStateStore(config.StorageConfig{Type: "mongo"}, 20)
	assert.ErrorContains(t, err, "unsupported storage type")
}
