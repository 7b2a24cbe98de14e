package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id             INTEGER PRIMARY KEY,
    email          TEXT NOT NULL,
    password_hash  TEXT NOT NULL,
    terms_accepted INTEGER NOT NULL DEFAULT 0,
    branch_id      INTEGER REFERENCES branches(id),
    created_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    deleted_at     DATETIME
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_active
    ON users(email) WHERE deleted_at IS NULL;

CREATE TABLE IF NOT EXISTS branches (
    id      INTEGER PRIMARY KEY,
    name    TEXT NOT NULL,
    address TEXT NOT NULL,
    city    TEXT NOT NULL,
    state   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS cars (
    id          TEXT PRIMARY KEY,
    make        TEXT NOT NULL,
    model       TEXT NOT NULL,
    year        INTEGER NOT NULL,
    color       TEXT NOT NULL DEFAULT '',
    license_num TEXT NOT NULL DEFAULT '',
    vin         TEXT NOT NULL DEFAULT '',
    vec_type    TEXT NOT NULL DEFAULT '',
    mileage     TEXT NOT NULL DEFAULT '0',
    in_service  INTEGER NOT NULL DEFAULT 1,
    photo       BLOB,
    photo_mime  TEXT,
    created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    deleted_at  DATETIME
);

CREATE TABLE IF NOT EXISTS reservations (
    id          TEXT PRIMARY KEY,
    car_id      TEXT NOT NULL REFERENCES cars(id),
    pickup_time DATETIME NOT NULL,
    status      TEXT NOT NULL DEFAULT 'scheduled',
    created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_reservations_pickup_time
    ON reservations(pickup_time);

CREATE TABLE IF NOT EXISTS revoked_tokens (
    jti        TEXT PRIMARY KEY,
    expires_at DATETIME NOT NULL
);
`

// migrations is a list of SQL statements applied in order after schema
// creation. Each migration must be idempotent. Append new migrations at
// the end.
var migrations = []string{
	// Migration 1: pickup_time lookups are always day-ranged, make sure
	// the index exists on databases created before it was in the schema.
	`CREATE INDEX IF NOT EXISTS idx_reservations_pickup_time
	     ON reservations(pickup_time)`,
}

// Migrate runs the database schema migrations.
func Migrate(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}
