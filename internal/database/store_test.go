package database

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/lanes/internal/config"
)

// ============================================================================
// STORE SETUP HELPERS
// ============================================================================

func setupSQLiteStore(t *testing.T) Store {
	t.Helper()
	store, err := OpenSQLiteStore(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func setupRedisStore(t *testing.T) (Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(client, "lanes:")
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func allStores(t *testing.T) map[string]Store {
	t.Helper()
	redisStore, _ := setupRedisStore(t)
	return map[string]Store{
		"sqlite": setupSQLiteStore(t),
		"redis":  redisStore,
		"memory": NewMemoryStore(),
	}
}

// ============================================================================
// CONTRACT TESTS
// ============================================================================

func TestStore_GetMissing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	for name, store := range allStores(t) {
		t.Run(name, func(t *testing.T) {
			value, ok, err := store.Get(ctx, "kanban-state")
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Empty(t, value)
		})
	}
}

func TestStore_SetGetOverwrite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	for name, store := range allStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set(ctx, "kanban-state", `{"tasks":{}}`))

			value, ok, err := store.Get(ctx, "kanban-state")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `{"tasks":{}}`, value)

			require.NoError(t, store.Set(ctx, "kanban-state", "second"))
			value, _, err = store.Get(ctx, "kanban-state")
			require.NoError(t, err)
			assert.Equal(t, "second", value)
		})
	}
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	for name, store := range allStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set(ctx, "k", "v"))
			require.NoError(t, store.Delete(ctx, "k"))

			_, ok, err := store.Get(ctx, "k")
			require.NoError(t, err)
			assert.False(t, ok)

			// Deleting again is fine
			require.NoError(t, store.Delete(ctx, "k"))
		})
	}
}

func TestStore_EmptyKey(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	for name, store := range allStores(t) {
		t.Run(name, func(t *testing.T) {
			_, _, err := store.Get(ctx, "")
			assert.ErrorIs(t, err, ErrEmptyKey)
			assert.ErrorIs(t, store.Set(ctx, "", "v"), ErrEmptyKey)
			assert.ErrorIs(t, store.Delete(ctx, ""), ErrEmptyKey)
		})
	}
}

func TestStore_ConcurrentWrites(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	for name, store := range allStores(t) {
		t.Run(name, func(t *testing.T) {
			var wg sync.WaitGroup
			for i := range 20 {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					assert.NoError(t, store.Set(ctx, "k", string(rune('a'+i))))
				}(i)
			}
			wg.Wait()

			value, ok, err := store.Get(ctx, "k")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Len(t, value, 1)
		})
	}
}

// ============================================================================
// BACKEND-SPECIFIC TESTS
// ============================================================================

func TestRedisStore_UsesPrefix(t *testing.T) {
	t.Parallel()

	store, mr := setupRedisStore(t)
	require.NoError(t, store.Set(context.Background(), "kanban-state", "doc"))

	got, err := mr.Get("lanes:kanban-state")
	require.NoError(t, err)
	assert.Equal(t, "doc", got)
	assert.False(t, mr.Exists("kanban-state"))
}

func TestRedisStore_ServerDown(t *testing.T) {
	t.Parallel()

	store, mr := setupRedisStore(t)
	mr.Close()

	_, _, err := store.Get(context.Background(), "k")
	assert.Error(t, err)
}

func TestSQLiteStore_PersistsAcrossRestarts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "lanes.db")

	store, err := OpenSQLiteStore(ctx, path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "kanban-state", "persisted"))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLiteStore(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get(ctx, "kanban-state")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "persisted", value)
}

func TestInitDB_Pragmas(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db, err := InitDB(ctx, filepath.Join(t.TempDir(), "lanes.db"))
	require.NoError(t, err)
	defer db.Close()

	var journalMode string
	require.NoError(t, db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&journalMode))
	assert.Equal(t, "wal", journalMode)

	var foreignKeys int
	require.NoError(t, db.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&foreignKeys))
	assert.Equal(t, 0, foreignKeys)
}

func TestOpen_SelectsBackend(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mr := miniredis.RunT(t)

	tests := []struct {
		name    string
		cfg     config.StorageConfig
		want    any
		wantErr bool
	}{
		{"memory", config.StorageConfig{Backend: config.StoreMemory}, &MemoryStore{}, false},
		{"sqlite", config.StorageConfig{Backend: config.StoreSQLite, Path: filepath.Join(t.TempDir(), "a.db")}, &SQLiteStore{}, false},
		{"redis", config.StorageConfig{Backend: config.StoreRedis, RedisAddr: mr.Addr()}, &RedisStore{}, false},
		{"unknown", config.StorageConfig{Backend: "etcd"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := Open(ctx, tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer store.Close()
			assert.IsType(t, tt.want, store)
		})
	}
}
