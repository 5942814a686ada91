// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	seq := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if dbType == TypePostgres {
		seq = "BIGSERIAL PRIMARY KEY"
	}

	_, err := db.Exec(strings.ReplaceAll(schema, "{{seq}}", seq))
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Command journal, replayed in seq order on startup
CREATE TABLE IF NOT EXISTS journal (
    seq {{seq}},
    command TEXT NOT NULL,
    caller TEXT NOT NULL,
    voter TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    proposal_id INTEGER NOT NULL DEFAULT 0,
    recorded_at TIMESTAMP NOT NULL
);

-- Notification audit log
CREATE TABLE IF NOT EXISTS notification (
    seq {{seq}},
    id TEXT NOT NULL UNIQUE,
    kind TEXT NOT NULL,
    payload TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_notification_kind ON notification(kind);
`
