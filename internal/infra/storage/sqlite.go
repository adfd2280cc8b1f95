package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	config "github.com/inference-gateway/drawbot/config"
	domain "github.com/inference-gateway/drawbot/internal/domain"
	migrations "github.com/inference-gateway/drawbot/internal/infra/storage/migrations"
	_ "modernc.org/sqlite"
)

// SQLiteStore persists state in a local SQLite file
type SQLiteStore struct {
	db           *sql.DB
	path         string
	historyLimit int
}

var _ StateStore = (*SQLiteStore)(nil)

// NewSQLiteStore opens (creating if needed) the database and applies the schema.
// Each session keeps at most historyLimit history rows; zero keeps all.
func NewSQLiteStore(cfg config.SQLiteConfig, historyLimit int) (*SQLiteStore, error) {
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", cfg.Path+"?_pragma=busy_timeout(30000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := migrations.NewRunner(db, "sqlite").Apply(ctx, migrations.SQLite()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate SQLite database: %w", err)
	}

	return &SQLiteStore{db: db, path: cfg.Path, historyLimit: historyLimit}, nil
}

func encodeBox(b *domain.Box) (any, error) {
	if b == nil {
		return nil, nil
	}
	data, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal house box: %w", err)
	}
	return string(data), nil
}

func decodeBox(raw sql.NullString) (*domain.Box, error) {
	if !raw.Valid || raw.String == "" {
		return nil, nil
	}
	var b domain.Box
	if err := json.Unmarshal([]byte(raw.String), &b); err != nil {
		return nil, fmt.Errorf("failed to unmarshal house box: %w", err)
	}
	return &b, nil
}

// LoadState reads the session row
func (s *SQLiteStore) LoadState(ctx context.Context, sessionID string) (*domain.SessionState, error) {
	var house sql.NullString
	var updated int64

	err := s.db.QueryRowContext(ctx,
		"SELECT last_house, updated_at FROM session_state WHERE id = ?", sessionID,
	).Scan(&house, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewSessionState(sessionID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}

	box, err := decodeBox(house)
	if err != nil {
		return nil, err
	}
	return &domain.SessionState{ID: sessionID, LastHouse: box, UpdatedAt: time.UnixMilli(updated)}, nil
}

// SaveState upserts the session row
func (s *SQLiteStore) SaveState(ctx context.Context, state *domain.SessionState) error {
	house, err := encodeBox(state.LastHouse)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO session_state (id, last_house, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			last_house = excluded.last_house,
			updated_at = excluded.updated_at
	`, state.ID, house, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", state.ID, err)
	}
	return nil
}

// ResetState deletes the session row
func (s *SQLiteStore) ResetState(ctx context.Context, sessionID string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM session_state WHERE id = ?", sessionID); err != nil {
		return fmt.Errorf("failed to reset session %s: %w", sessionID, err)
	}
	return nil
}

// AppendHistory inserts a history row and drops rows beyond the history limit
func (s *SQLiteStore) AppendHistory(ctx context.Context, entry domain.HistoryEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO command_history (session_id, prompt, kind, status, success, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, entry.SessionID, entry.Prompt, entry.Kind, entry.Status, entry.Success, entry.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to append history: %w", err)
	}

	if s.historyLimit <= 0 {
		return nil
	}
	_, err = s.db.ExecContext(ctx, `
		DELETE FROM command_history
		WHERE session_id = ? AND id NOT IN (
			SELECT id FROM command_history
			WHERE session_id = ?
			ORDER BY created_at DESC, id DESC
			LIMIT ?
		)
	`, entry.SessionID, entry.SessionID, s.historyLimit)
	if err != nil {
		return fmt.Errorf("failed to trim history: %w", err)
	}
	return nil
}

// ListHistory returns the newest entries first
func (s *SQLiteStore) ListHistory(ctx context.Context, sessionID string, limit int) ([]domain.HistoryEntry, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT session_id, prompt, kind, status, success, created_at
		FROM command_history
		WHERE session_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var e domain.HistoryEntry
		var created int64
		if err := rows.Scan(&e.SessionID, &e.Prompt, &e.Kind, &e.Status, &e.Success, &created); err != nil {
			return nil, fmt.Errorf("failed to scan history: %w", err)
		}
		e.CreatedAt = time.UnixMilli(created)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Health pings the database
func (s *SQLiteStore) Health(ctx context.Context) error {
	var result int
	if err := s.db.QueryRowContext(ctx, "SELECT 1").Scan(&result); err != nil {
		return fmt.Errorf("sqlite health check failed: %w", err)
	}
	return nil
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
