package database

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens the sqlite database file at path, creating it if absent,
// and verifies the connection.
func Open(path string) (*sql.DB, error) {
	// _busy_timeout lets a second connection wait out a writer instead of
	// failing immediately with SQLITE_BUSY.
	dsn := path + "?_busy_timeout=5000&_foreign_keys=on"

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	// sqlite allows a single writer per database file; a small pool is enough.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}
