package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

const sqliteDriverName = "sqlite"

// Options tunes the connection pool. Zero values fall back to SQLite-friendly defaults.
type Options struct {
	MaxOpenConns  int
	BusyTimeoutMs int
}

const (
	defaultMaxOpenConns  = 1 // SQLite is not great with many writers
	defaultBusyTimeoutMs = 5000
)

// dsn builds a modernc.org/sqlite DSN with per-connection pragmas, so every pooled
// connection gets them rather than only the first one.
func dsn(path string, busyTimeoutMs int) string {
	sep := "?"
	if strings.ContainsRune(path, '?') {
		sep = "&"
	}
	return fmt.Sprintf(
		"file:%s%s_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)&_pragma=foreign_keys(ON)",
		path, sep, busyTimeoutMs,
	)
}

// Open opens/creates a SQLite DB file without touching the schema.
func Open(ctx context.Context, path string, opts Options) (*sql.DB, error) {
	if opts.MaxOpenConns <= 0 {
		opts.MaxOpenConns = defaultMaxOpenConns
	}
	if opts.BusyTimeoutMs <= 0 {
		opts.BusyTimeoutMs = defaultBusyTimeoutMs
	}

	db, err := sql.Open(sqliteDriverName, dsn(path, opts.BusyTimeoutMs))
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}
	db.SetMaxOpenConns(opts.MaxOpenConns)
	db.SetMaxIdleConns(opts.MaxOpenConns)

	// Fail fast if the DB cannot be reached
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

// InitDB opens the database and applies pending migrations.
func InitDB(ctx context.Context, path string, opts Options) (*sql.DB, error) {
	db, err := Open(ctx, path, opts)
	if err != nil {
		return nil, err
	}
	if err := RunMigrations(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
