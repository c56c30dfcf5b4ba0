package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Three relations: attendees and sessions are the entities, registrations is
// the relationship table linking them. Both foreign keys cascade on delete so
// removing an attendee or a session atomically removes its registrations.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS attendees (
		id         UUID PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL UNIQUE,
		phone      TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id          UUID PRIMARY KEY,
		title       TEXT NOT NULL,
		speaker     TEXT NOT NULL,
		start_time  TEXT NOT NULL,
		location    TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		capacity    INT NOT NULL DEFAULT 50 CHECK (capacity >= 0),
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS registrations (
		id          UUID PRIMARY KEY,
		attendee_id UUID NOT NULL REFERENCES attendees(id) ON DELETE CASCADE,
		session_id  UUID NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (attendee_id, session_id)
	)`,
}

// InitSchema creates the tables if they do not exist yet.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}
