package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"
)

// Migration is one versioned schema change
type Migration struct {
	Version     string
	Description string
	UpSQL       string
}

// Runner applies migrations and records them in schema_migrations
type Runner struct {
	db      *sql.DB
	dialect string // "sqlite" or "postgres"
}

// NewRunner creates a migration runner for the dialect
func NewRunner(db *sql.DB, dialect string) *Runner {
	return &Runner{db: db, dialect: dialect}
}

func (r *Runner) ensureTable(ctx context.Context) error {
	var stmt string
	switch r.dialect {
	case "sqlite":
		stmt = `CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			description TEXT NOT NULL,
			applied_at INTEGER NOT NULL
		)`
	case "postgres":
		stmt = `CREATE TABLE IF NOT EXISTS schema_migrations (
			version VARCHAR(64) PRIMARY KEY,
			description TEXT NOT NULL,
			applied_at TIMESTAMP WITH TIME ZONE NOT NULL
		)`
	default:
		return fmt.Errorf("unsupported dialect: %s", r.dialect)
	}

	if _, err := r.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("failed to create migration table: %w", err)
	}
	return nil
}

// Applied returns the set of applied versions
func (r *Runner) Applied(ctx context.Context) (map[string]bool, error) {
	if err := r.ensureTable(ctx); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, "SELECT version FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to query applied migrations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	applied := make(map[string]bool)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[v] = true
	}
	return applied, rows.Err()
}

func (r *Runner) apply(ctx context.Context, m Migration) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, m.UpSQL); err != nil {
		return fmt.Errorf("failed to execute migration %s: %w", m.Version, err)
	}

	var record string
	var appliedAt any
	switch r.dialect {
	case "postgres":
		record = "INSERT INTO schema_migrations (version, description, applied_at) VALUES ($1, $2, $3)"
		appliedAt = time.Now()
	default:
		record = "INSERT INTO schema_migrations (version, description, applied_at) VALUES (?, ?, ?)"
		appliedAt = time.Now().UnixMilli()
	}

	if _, err := tx.ExecContext(ctx, record, m.Version, m.Description, appliedAt); err != nil {
		return fmt.Errorf("failed to record migration %s: %w", m.Version, err)
	}

	return tx.Commit()
}

// Apply runs every pending migration in version order and returns how many
// were applied
func (r *Runner) Apply(ctx context.Context, migrations []Migration) (int, error) {
	applied, err := r.Applied(ctx)
	if err != nil {
		return 0, err
	}

	pending := make([]Migration, len(migrations))
	copy(pending, migrations)
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].Version < pending[j].Version
	})

	count := 0
	for _, m := range pending {
		if applied[m.Version] {
			continue
		}
		if err := r.apply(ctx, m); err != nil {
			return count, fmt.Errorf("migration %s failed: %w", m.Version, err)
		}
		count++
	}
	return count, nil
}
