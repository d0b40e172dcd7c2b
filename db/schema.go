// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// CapacityChannel is the Postgres NOTIFY channel fired by the
// problem_capacity trigger on every committed change.
const CapacityChannel = "capacity_change"

// Open opens a database handle for the configured backend.
// dbType must be "postgres" or "sqlite".
func Open(dbType, url string) (*sql.DB, error) {
	switch dbType {
	case "postgres":
		return sql.Open("postgres", url)
	case "sqlite":
		conn, err := sql.Open("sqlite", url)
		if err != nil {
			return nil, err
		}
		// sqlite allows one writer; a second connection would turn lock
		// waits into immediate SQLITE_BUSY errors.
		conn.SetMaxOpenConns(1)
		return conn, nil
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if dbType == "postgres" {
		if _, err := db.Exec(capacityNotifyTrigger); err != nil {
			return fmt.Errorf("failed to create capacity notify trigger: %w", err)
		}
	}

	return nil
}

// schema is portable across postgres and sqlite: timestamps are supplied
// by the application, not by backend-specific defaults.
const schema = `
-- Registered teams (team directory)
CREATE TABLE IF NOT EXISTS team (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    contact_email TEXT NOT NULL UNIQUE,
    team_token TEXT NOT NULL UNIQUE,
    join_code TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_team_token ON team(team_token);
CREATE INDEX IF NOT EXISTS idx_team_join_code ON team(join_code);

-- Per-problem slot counters, written only by the allocator
CREATE TABLE IF NOT EXISTS problem_capacity (
    problem_id TEXT PRIMARY KEY,
    capacity_limit INTEGER NOT NULL,
    claimed_count INTEGER NOT NULL DEFAULT 0,
    last_updated_at TIMESTAMP NOT NULL
);

-- One claim per team; the primary key enforces single assignment
CREATE TABLE IF NOT EXISTS team_claim (
    team_id TEXT PRIMARY KEY,
    problem_id TEXT NOT NULL,
    claimed_by TEXT NOT NULL,
    claimed_at TIMESTAMP NOT NULL,
    ip_hash TEXT
);

CREATE INDEX IF NOT EXISTS idx_team_claim_problem ON team_claim(problem_id);
`

// capacityNotifyTrigger wires the postgres change feed: every committed
// insert/update on problem_capacity fires a NOTIFY that the status feed
// listens for.
const capacityNotifyTrigger = `
CREATE OR REPLACE FUNCTION notify_capacity_change() RETURNS trigger AS $$
BEGIN
    PERFORM pg_notify('capacity_change', NEW.problem_id);
    RETURN NEW;
END;
$$ LANGUAGE plpgsql;

DROP TRIGGER IF EXISTS problem_capacity_notify ON problem_capacity;
CREATE TRIGGER problem_capacity_notify
    AFTER INSERT OR UPDATE ON problem_capacity
    FOR EACH ROW EXECUTE FUNCTION notify_capacity_change();
`
