package migrations

// SQLite returns the SQLite schema. Timestamps are unix milliseconds.
func SQLite() []Migration {
	return []Migration{
		{
			Version:     "001",
			Description: "Session state",
			UpSQL: `
				CREATE TABLE IF NOT EXISTS session_state (
					id TEXT PRIMARY KEY,
					last_house TEXT,
					updated_at INTEGER NOT NULL
				);
			`,
		},
		{
			Version:     "002",
			Description: "Command history",
			UpSQL: `
				CREATE TABLE IF NOT EXISTS command_history (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					session_id TEXT NOT NULL,
					prompt TEXT NOT NULL,
					kind TEXT NOT NULL,
					status TEXT NOT NULL,
					success BOOLEAN NOT NULL DEFAULT FALSE,
					created_at INTEGER NOT NULL
				);
				CREATE INDEX IF NOT EXISTS idx_command_history_session ON command_history(session_id, created_at DESC);
			`,
		},
	}
}

// Postgres returns the PostgreSQL schema
func Postgres() []Migration {
	return []Migration{
		{
			Version:     "001",
			Description: "Session state",
			UpSQL: `
				CREATE TABLE IF NOT EXISTS session_state (
					id VARCHAR(64) PRIMARY KEY,
					last_house JSONB,
					updated_at TIMESTAMP WITH TIME ZONE NOT NULL
				);
			`,
		},
		{
			Version:     "002",
			Description: "Command history",
			UpSQL: `
				CREATE TABLE IF NOT EXISTS command_history (
					id BIGSERIAL PRIMARY KEY,
					session_id VARCHAR(64) NOT NULL,
					prompt TEXT NOT NULL,
					kind VARCHAR(32) NOT NULL,
					status TEXT NOT NULL,
					success BOOLEAN NOT NULL DEFAULT FALSE,
					created_at TIMESTAMP WITH TIME ZONE NOT NULL
				);
				CREATE INDEX IF NOT EXISTS idx_command_history_session ON command_history(session_id, created_at DESC);
			`,
		},
	}
}
