// Package sqlite provides the SQLite-backed repository implementations.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps the sql.DB handle so migrations and repositories share one place.
type DB struct {
	*sql.DB
}

// New opens a SQLite database at the given DSN and enables foreign keys.
func New(dsn string) (*DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	return &DB{DB: db}, nil
}

// RunMigrations creates the schema if it does not exist.
func (db *DB) RunMigrations() error {
	schema := `
	CREATE TABLE IF NOT EXISTS roadmaps (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		daily_limit INTEGER NOT NULL DEFAULT 60,
		start_date TEXT,
		source_url TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_roadmaps_user ON roadmaps(user_id);

	CREATE TABLE IF NOT EXISTS roadmap_days (
		id TEXT PRIMARY KEY,
		roadmap_id TEXT NOT NULL,
		day_number INTEGER NOT NULL,
		is_completed BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (roadmap_id) REFERENCES roadmaps(id) ON DELETE CASCADE,
		UNIQUE(roadmap_id, day_number)
	);

	CREATE INDEX IF NOT EXISTS idx_days_roadmap ON roadmap_days(roadmap_id);

	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		day_id TEXT NOT NULL,
		title TEXT NOT NULL,
		duration INTEGER NOT NULL,
		source_video_id TEXT,
		order_index INTEGER NOT NULL DEFAULT 0,
		is_completed BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (day_id) REFERENCES roadmap_days(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_day ON sessions(day_id);

	CREATE TABLE IF NOT EXISTS api_keys (
		key_hash TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		last_used DATETIME,
		description TEXT
	);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}
