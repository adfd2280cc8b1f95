package storage

import (
	"fmt"

	config "github.com/inference-gateway/drawbot/config"
)

// NewStateStore creates the backend named by cfg.Type. Each session keeps
// at most historyLimit history entries; zero keeps all.
func NewStateStore(cfg config.StorageConfig, historyLimit int) (StateStore, error) {
	switch cfg.Type {
	case "", "memory":
		return NewMemoryStore(historyLimit), nil
	case "sqlite":
		return NewSQLiteStore(cfg.SQLite, historyLimit)
	case "postgres":
		return NewPostgresStore(cfg.Postgres, historyLimit)
	case "redis":
		return NewRedisStore(cfg.Redis, historyLimit)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
