package database

import (
	"context"
	"database/sql"
)

// Schema statements are idempotent; there are no migrations beyond creating
// each service's single table on first start.

const movieSchema = `
CREATE TABLE IF NOT EXISTS movies (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    title       TEXT    NOT NULL UNIQUE,
    year        INTEGER NOT NULL DEFAULT 0,
    description TEXT    NOT NULL DEFAULT '',
    rating      TEXT    NOT NULL DEFAULT '',
    ranking     TEXT    NOT NULL DEFAULT '',
    review      TEXT    NOT NULL DEFAULT '',
    img_url     TEXT    NOT NULL DEFAULT ''
);`

const cafeSchema = `
CREATE TABLE IF NOT EXISTS cafes (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    name           TEXT    NOT NULL UNIQUE,
    map_url        TEXT    NOT NULL,
    img_url        TEXT    NOT NULL,
    location       TEXT    NOT NULL,
    seats          TEXT    NOT NULL,
    has_toilet     INTEGER NOT NULL DEFAULT 0,
    has_wifi       INTEGER NOT NULL DEFAULT 0,
    has_sockets    INTEGER NOT NULL DEFAULT 0,
    can_take_calls INTEGER NOT NULL DEFAULT 0,
    coffee_price   TEXT    NOT NULL DEFAULT ''
);`

// EnsureMovieSchema creates the movies table if it does not exist yet.
func EnsureMovieSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, movieSchema)
	return err
}

// EnsureCafeSchema creates the cafes table if it does not exist yet.
func EnsureCafeSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, cafeSchema)
	return err
}
