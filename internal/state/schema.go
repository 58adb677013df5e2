package state

import (
	"context"
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS recent_items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			path TEXT NOT NULL UNIQUE,
			kind TEXT NOT NULL CHECK (kind IN ('track', 'playlist')),
			title TEXT,
			artist TEXT,
			track_count INTEGER,
			loaded_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_recent_loaded_at ON recent_items(loaded_at DESC);
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
