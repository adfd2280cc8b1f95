package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	config "github.com/inference-gateway/drawbot/config"
	domain "github.com/inference-gateway/drawbot/internal/domain"
	migrations "github.com/inference-gateway/drawbot/internal/infra/storage/migrations"
)

// PostgresStore persists state in PostgreSQL
type PostgresStore struct {
	db           *sql.DB
	historyLimit int
}

var _ StateStore = (*PostgresStore)(nil)

// NewPostgresStore connects and applies the schema
func NewPostgresStore(cfg config.PostgresConfig, historyLimit int) (*PostgresStore, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.Database, cfg.SSLMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open PostgreSQL connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to PostgreSQL at %s:%d: %w", cfg.Host, cfg.Port, err)
	}

	if _, err := migrations.NewRunner(db, "postgres").Apply(ctx, migrations.Postgres()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate PostgreSQL database: %w", err)
	}

	return &PostgresStore{db: db, historyLimit: historyLimit}, nil
}

// LoadState reads the session row
func (s *PostgresStore) LoadState(ctx context.Context, sessionID string) (*domain.SessionState, error) {
	var house sql.NullString
	state := domain.NewSessionState(sessionID)

	err := s.db.QueryRowContext(ctx,
		"SELECT last_house, updated_at FROM session_state WHERE id = $1", sessionID,
	).Scan(&house, &state.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return state, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}

	if state.LastHouse, err = decodeBox(house); err != nil {
		return nil, err
	}
	return state, nil
}

// SaveState upserts the session row
func (s *PostgresStore) SaveState(ctx context.Context, state *domain.SessionState) error {
	house, err := encodeBox(state.LastHouse)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO session_state (id, last_house, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			last_house = EXCLUDED.last_house,
			updated_at = EXCLUDED.updated_at
	`, state.ID, house, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", state.ID, err)
	}
	return nil
}

// ResetState deletes the session row
func (s *PostgresStore) ResetState(ctx context.Context, sessionID string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM session_state WHERE id = $1", sessionID); err != nil {
		return fmt.Errorf("failed to reset session %s: %w", sessionID, err)
	}
	return nil
}

// AppendHistory inserts a history row and drops rows beyond the history limit
func (s *PostgresStore) AppendHistory(ctx context.Context, entry domain.HistoryEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO command_history (session_id, prompt, kind, status, success, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, entry.SessionID, entry.Prompt, entry.Kind, entry.Status, entry.Success, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append history: %w", err)
	}

	if s.historyLimit <= 0 {
		return nil
	}
	_, err = s.db.ExecContext(ctx, `
		DELETE FROM command_history
		WHERE session_id = $1 AND id NOT IN (
			SELECT id FROM command_history
			WHERE session_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2
		)
	`, entry.SessionID, s.historyLimit)
	if err != nil {
		return fmt.Errorf("failed to trim history: %w", err)
	}
	return nil
}

// ListHistory returns the newest entries first
func (s *PostgresStore) ListHistory(ctx context.Context, sessionID string, limit int) ([]domain.HistoryEntry, error) {
	query := `
		SELECT session_id, prompt, kind, status, success, created_at
		FROM command_history
		WHERE session_id = $1
		ORDER BY created_at DESC, id DESC
	`
	args := []any{sessionID}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var e domain.HistoryEntry
		if err := rows.Scan(&e.SessionID, &e.Prompt, &e.Kind, &e.Status, &e.Success, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Health pings the database
func (s *PostgresStore) Health(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("postgres health check failed: %w", err)
	}
	return nil
}

// Close closes the connection pool
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
