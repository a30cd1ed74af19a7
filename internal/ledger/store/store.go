package store

import (
	"context"
	"fmt"

	"github.com/khata-app/khata/internal/database"
	"github.com/khata-app/khata/internal/ledger"
)

type Store struct {
	tenants *database.Registry
}

func New(tenants *database.Registry) *Store {
	return &Store{tenants: tenants}
}

type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, type, date, amount, folio_type, investor,
// worker, action_type, link_id, created_at
func scanEntry(s scanner) (*ledger.Entry, error) {
	var e ledger.Entry

	if err := s.Scan(
		&e.ID, &e.Type, &e.Date, &e.Amount, &e.FolioType,
		&e.Investor, &e.Worker, &e.ActionType, &e.LinkID, &e.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &e, nil
}

const selectEntryColumns = `id, type, date, amount, folio_type, investor, worker, action_type, link_id, created_at`

// CreateEntry inserts the row under the next free integer id. Ids restart
// per tenant since every tenant has its own database.
func (s *Store) CreateEntry(ctx context.Context, e *ledger.Entry) error {
	db, err := s.tenants.For(ctx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO ledger_entries (id, type, date, amount, folio_type, investor, worker, action_type, link_id)
		VALUES ((SELECT COALESCE(MAX(id), 0) + 1 FROM ledger_entries), $1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err = db.QueryRowContext(ctx, query,
		e.Type,
		e.Date,
		e.Amount,
		e.FolioType,
		e.Investor,
		e.Worker,
		e.ActionType,
		e.LinkID,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating ledger entry: %w", err)
	}

	return nil
}

func buildFilter(filter ledger.ListFilter) (string, []any) {
	clause := " WHERE 1=1"

	var args []any

	argIdx := 1

	add := func(cond string, val any) {
		clause += fmt.Sprintf(" AND "+cond, argIdx)

		args = append(args, val)
		argIdx++
	}

	if filter.ID != nil {
		add("id = $%d", *filter.ID)
	}

	if filter.Type != nil {
		add("type ILIKE '%%' || $%d || '%%'", *filter.Type)
	}

	if filter.Date != nil {
		add("date ILIKE '%%' || $%d || '%%'", *filter.Date)
	}

	if filter.Amount != nil {
		add("amount = $%d", *filter.Amount)
	}

	if filter.FolioType != nil {
		add("folio_type ILIKE '%%' || $%d || '%%'", *filter.FolioType)
	}

	if filter.Investor != nil {
		add("investor ILIKE '%%' || $%d || '%%'", *filter.Investor)
	}

	if filter.Worker != nil {
		add("worker ILIKE '%%' || $%d || '%%'", *filter.Worker)
	}

	if filter.ActionType != nil {
		add("action_type ILIKE '%%' || $%d || '%%'", *filter.ActionType)
	}

	if filter.LinkID != nil {
		add("link_id = $%d", *filter.LinkID)
	}

	return clause, args
}

func (s *Store) ListEntries(ctx context.Context, filter ledger.ListFilter) ([]*ledger.Entry, error) {
	db, err := s.tenants.For(ctx)
	if err != nil {
		return nil, err
	}

	clause, args := buildFilter(filter)

	query := `SELECT ` + selectEntryColumns + ` FROM ledger_entries` + clause +
		` ORDER BY created_at DESC, id DESC`

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", filter.Limit, filter.Offset)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []*ledger.Entry

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning ledger entry: %w", err)
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ledger rows: %w", err)
	}

	return entries, nil
}

func (s *Store) CountEntries(ctx context.Context, filter ledger.ListFilter) (int, error) {
	db, err := s.tenants.For(ctx)
	if err != nil {
		return 0, err
	}

	clause, args := buildFilter(filter)

	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ledger_entries`+clause, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting ledger entries: %w", err)
	}

	return count, nil
}

func (s *Store) DeleteEntry(ctx context.Context, id int64) error {
	db, err := s.tenants.For(ctx)
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, `DELETE FROM ledger_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting ledger entry: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting ledger entry: %w", err)
	}

	if affected == 0 {
		return ledger.ErrNotFound
	}

	return nil
}
