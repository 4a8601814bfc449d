package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/lanes/internal/config"
)

// Open creates the store selected by the storage configuration
func Open(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	switch cfg.Backend {
	case config.StoreSQLite, "":
		slog.Debug("opening sqlite store", "path", cfg.Path)
		return OpenSQLiteStore(ctx, cfg.Path)
	case config.StoreRedis:
		slog.Debug("opening redis store", "addr", cfg.RedisAddr, "db", cfg.RedisDB)
		return OpenRedisStore(ctx, cfg.RedisAddr, cfg.RedisDB, cfg.RedisPrefix)
	case config.StoreMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
