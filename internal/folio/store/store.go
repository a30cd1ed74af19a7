package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/khata-app/khata/internal/database"
	"github.com/khata-app/khata/internal/folio"
)

type Store struct {
	tenants *database.Registry
}

func New(tenants *database.Registry) *Store {
	return &Store{tenants: tenants}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, name, email, phone, kind, created_at, updated_at
func scanFolio(s scanner) (*folio.Folio, error) {
	var f folio.Folio

	var kindStr string

	if err := s.Scan(&f.ID, &f.Name, &f.Email, &f.Phone, &kindStr, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}

	f.Kind = folio.Kind(kindStr)

	return &f, nil
}

const selectFolioColumns = `id, name, email, phone, kind, created_at, updated_at`

func (s *Store) CreateFolio(ctx context.Context, f *folio.Folio) error {
	db, err := s.tenants.For(ctx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO folios (name, email, phone, kind, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = db.QueryRowContext(ctx, query,
		f.Name,
		f.Email,
		f.Phone,
		f.Kind,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating folio: %w", err)
	}

	return nil
}

func (s *Store) GetFolio(ctx context.Context, id uuid.UUID) (*folio.Folio, error) {
	db, err := s.tenants.For(ctx)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + selectFolioColumns + ` FROM folios WHERE id = $1`

	f, err := scanFolio(db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, folio.ErrNotFound
		}

		return nil, fmt.Errorf("getting folio: %w", err)
	}

	return f, nil
}

func (s *Store) ListFolios(ctx context.Context) ([]*folio.Folio, error) {
	db, err := s.tenants.For(ctx)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + selectFolioColumns + ` FROM folios ORDER BY created_at DESC`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing folios: %w", err)
	}
	defer rows.Close()

	var folios []*folio.Folio

	for rows.Next() {
		f, err := scanFolio(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning folio: %w", err)
		}

		folios = append(folios, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating folio rows: %w", err)
	}

	return folios, nil
}

func (s *Store) UpdateFolio(ctx context.Context, f *folio.Folio) error {
	db, err := s.tenants.For(ctx)
	if err != nil {
		return err
	}

	query := `
		UPDATE folios
		SET name = $1, email = $2, phone = $3, kind = $4, updated_at = NOW()
		WHERE id = $5
	`

	res, err := db.ExecContext(ctx, query,
		f.Name,
		f.Email,
		f.Phone,
		f.Kind,
		f.ID,
	)
	if err != nil {
		return fmt.Errorf("updating folio: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating folio: %w", err)
	}

	if affected == 0 {
		return folio.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteFolio(ctx context.Context, id uuid.UUID) error {
	db, err := s.tenants.For(ctx)
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, `DELETE FROM folios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting folio: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting folio: %w", err)
	}

	if affected == 0 {
		return folio.ErrNotFound
	}

	return nil
}
