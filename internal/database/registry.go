package database

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/khata-app/khata/internal/tenant"
)

// Opener opens (and prepares) the database with the given name.
type Opener func(ctx context.Context, dbName string) (*sql.DB, error)

// Registry hands out per-tenant database handles. A tenant's database is
// opened on its first request and cached for the life of the process;
// Close releases every open handle on shutdown.
type Registry struct {
	env    string
	opener Opener

	mu   sync.Mutex
	open map[string]*sql.DB
}

func NewRegistry(env string, opener Opener) *Registry {
	return &Registry{
		env:    env,
		opener: opener,
		open:   make(map[string]*sql.DB),
	}
}

// For resolves the database for the tenant carried in ctx.
func (r *Registry) For(ctx context.Context) (*sql.DB, error) {
	id, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	name, err := tenant.DBName(id.Identifier(), r.env)
	if err != nil {
		return nil, fmt.Errorf("deriving database name: %w", err)
	}

	return r.Get(ctx, name)
}

// Get returns the cached handle for dbName, opening it if needed.
func (r *Registry) Get(ctx context.Context, dbName string) (*sql.DB, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if db, ok := r.open[dbName]; ok {
		return db, nil
	}

	db, err := r.opener(ctx, dbName)
	if err != nil {
		return nil, fmt.Errorf("opening tenant database %q: %w", dbName, err)
	}

	r.open[dbName] = db

	return db, nil
}

// Close closes every tenant database opened so far. The first error is
// returned but all handles are closed regardless.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var firstErr error

	for name, db := range r.open {
		if err := db.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing tenant database %q: %w", name, err)
		}

		delete(r.open, name)
	}

	return firstErr
}
