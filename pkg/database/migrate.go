package database

import (
	"context"
	"fmt"
)

// Migrate creates the schema when it does not exist yet. Statements are
// idempotent so the server can run them on every boot.
func Migrate(ctx context.Context, db PgxIface) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            UUID PRIMARY KEY,
			name          TEXT NOT NULL,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS movies (
			id         UUID PRIMARY KEY,
			title      TEXT NOT NULL,
			language   TEXT,
			genres     TEXT NOT NULL DEFAULT '[]',
			rating     TEXT,
			poster_url TEXT,
			duration   TEXT,
			price      INTEGER NOT NULL,
			showtimes  TEXT NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id          UUID PRIMARY KEY,
			user_id     UUID REFERENCES users(id),
			movie_id    UUID NOT NULL REFERENCES movies(id),
			movie_title TEXT NOT NULL,
			showtime    TEXT NOT NULL,
			seats       TEXT NOT NULL,
			price       INTEGER NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("run migration: %w", err)
		}
	}

	return nil
}
