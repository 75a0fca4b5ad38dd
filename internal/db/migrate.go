package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS prompts (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		content     TEXT NOT NULL,
		category    TEXT NOT NULL DEFAULT '',
		use_count   INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_prompts_category ON prompts(category)`,

	`CREATE TABLE IF NOT EXISTS prompt_tags (
		prompt_id TEXT NOT NULL REFERENCES prompts(id) ON DELETE CASCADE,
		tag       TEXT NOT NULL,
		PRIMARY KEY (prompt_id, tag)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_prompt_tags_tag ON prompt_tags(tag)`,

	`CREATE TABLE IF NOT EXISTS sessions (
		id         TEXT PRIMARY KEY,
		data       TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}
