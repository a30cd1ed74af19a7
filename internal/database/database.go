package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func New(connStr string) (*sql.DB, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// EnsureDatabase creates the named database if it does not exist yet.
// Tenant databases come into being on a user's first request, so this runs
// against the admin connection before the tenant connection is opened.
func EnsureDatabase(ctx context.Context, admin *sql.DB, name string) error {
	var exists bool

	err := admin.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", name,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking database %q: %w", name, err)
	}

	if exists {
		return nil
	}

	// CREATE DATABASE cannot be parameterized; the name is derived from a
	// sanitized identifier (see tenant.DBName) so quoting it is enough.
	if _, err := admin.ExecContext(ctx, fmt.Sprintf(`CREATE DATABASE %q`, name)); err != nil {
		return fmt.Errorf("creating database %q: %w", name, err)
	}

	return nil
}
