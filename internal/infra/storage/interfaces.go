package storage

import (
	"context"

	domain "github.com/inference-gateway/drawbot/internal/domain"
)

//go:generate go tool counterfeiter -generate

// StateStore persists per-session drawing state and the command history
//
//counterfeiter:generate -o ../../../tests/mocks/storage/fake_state_store.go . StateStore
type StateStore interface {
	// LoadState returns the session's state, or a fresh empty state when
	// nothing was saved yet
	LoadState(ctx context.Context, sessionID string) (*domain.SessionState, error)

	// SaveState creates or overwrites the session's state
	SaveState(ctx context.Context, state *domain.SessionState) error

	// ResetState forgets the session's state
	ResetState(ctx context.Context, sessionID string) error

	// AppendHistory records one interpreted command
	AppendHistory(ctx context.Context, entry domain.HistoryEntry) error

	// ListHistory returns up to limit entries for the session, newest first.
	// A limit <= 0 returns everything.
	ListHistory(ctx context.Context, sessionID string, limit int) ([]domain.HistoryEntry, error)

	// Health checks if the storage is reachable
	Health(ctx context.Context) error

	// Close releases the connection
	Close() error
}
