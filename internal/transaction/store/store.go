package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/khata-app/khata/internal/database"
	"github.com/khata-app/khata/internal/folio"
	"github.com/khata-app/khata/internal/transaction"
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

// Expected column order: id, amount, description, transaction_type,
// investor_id, folio_type_from, folio_id_from, folio_type_to, folio_id_to,
// date, created_at, updated_at
func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var typeStr string

	var kindFrom, kindTo sql.NullString

	if err := s.Scan(
		&tx.ID, &tx.Amount, &tx.Description, &typeStr,
		&tx.InvestorID,
		&kindFrom, &tx.FolioIDFrom, &kindTo, &tx.FolioIDTo,
		&tx.Date, &tx.CreatedAt, &tx.UpdatedAt,
	); err != nil {
		return nil, err
	}

	tx.Type = transaction.Type(typeStr)

	if kindFrom.Valid {
		k := folio.Kind(kindFrom.String)
		tx.FolioTypeFrom = &k
	}

	if kindTo.Valid {
		k := folio.Kind(kindTo.String)
		tx.FolioTypeTo = &k
	}

	return &tx, nil
}

const selectTransactionColumns = `
	id, amount, description, transaction_type,
	investor_id, folio_type_from, folio_id_from, folio_type_to, folio_id_to,
	date, created_at, updated_at
`

func (s *Store) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	db, err := s.tenants.For(ctx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO transactions
			(amount, description, transaction_type, investor_id,
			 folio_type_from, folio_id_from, folio_type_to, folio_id_to,
			 date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = db.QueryRowContext(ctx, query,
		tx.Amount,
		tx.Description,
		tx.Type,
		tx.InvestorID,
		kindOrNil(tx.FolioTypeFrom),
		tx.FolioIDFrom,
		kindOrNil(tx.FolioTypeTo),
		tx.FolioIDTo,
		tx.Date,
	).Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) GetTransaction(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	db, err := s.tenants.For(ctx)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + selectTransactionColumns + ` FROM transactions WHERE id = $1`

	tx, err := scanTransaction(db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

// buildFilter renders the WHERE clause for a filter, starting positional
// args at $1.
func buildFilter(filter transaction.ListFilter) (string, []any) {
	clause := " WHERE 1=1"

	var args []any

	argIdx := 1

	add := func(cond string, val any) {
		clause += fmt.Sprintf(" AND "+cond, argIdx)

		args = append(args, val)
		argIdx++
	}

	if filter.FolioTypeFrom != nil {
		add("folio_type_from = $%d", *filter.FolioTypeFrom)
	}

	if filter.FolioTypeTo != nil {
		add("folio_type_to = $%d", *filter.FolioTypeTo)
	}

	if filter.FolioIDFrom != nil {
		add("folio_id_from = $%d", *filter.FolioIDFrom)
	}

	if filter.FolioIDTo != nil {
		add("folio_id_to = $%d", *filter.FolioIDTo)
	}

	if filter.Type != nil {
		add("transaction_type = $%d", *filter.Type)
	}

	if filter.DateFrom != nil {
		add("date >= $%d", *filter.DateFrom)
	}

	if filter.DateTo != nil {
		add("date <= $%d", *filter.DateTo)
	}

	return clause, args
}

func (s *Store) ListTransactions(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	db, err := s.tenants.For(ctx)
	if err != nil {
		return nil, err
	}

	clause, args := buildFilter(filter)

	query := `SELECT ` + selectTransactionColumns + ` FROM transactions` + clause +
		` ORDER BY date DESC, created_at DESC`

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", filter.Limit, filter.Offset)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}

func (s *Store) CountTransactions(ctx context.Context, filter transaction.ListFilter) (int, error) {
	db, err := s.tenants.For(ctx)
	if err != nil {
		return 0, err
	}

	clause, args := buildFilter(filter)

	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`+clause, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting transactions: %w", err)
	}

	return count, nil
}

func (s *Store) UpdateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	db, err := s.tenants.For(ctx)
	if err != nil {
		return err
	}

	query := `
		UPDATE transactions
		SET amount = $1, description = $2, transaction_type = $3, investor_id = $4,
			folio_type_from = $5, folio_id_from = $6, folio_type_to = $7, folio_id_to = $8,
			date = $9, updated_at = NOW()
		WHERE id = $10
	`

	res, err := db.ExecContext(ctx, query,
		tx.Amount,
		tx.Description,
		tx.Type,
		tx.InvestorID,
		kindOrNil(tx.FolioTypeFrom),
		tx.FolioIDFrom,
		kindOrNil(tx.FolioTypeTo),
		tx.FolioIDTo,
		tx.Date,
		tx.ID,
	)
	if err != nil {
		return fmt.Errorf("updating transaction: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating transaction: %w", err)
	}

	if affected == 0 {
		return transaction.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	db, err := s.tenants.For(ctx)
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	if affected == 0 {
		return transaction.ErrNotFound
	}

	return nil
}

// kindOrNil unwraps an optional kind for the driver; a typed nil pointer
// would otherwise be written as an empty string.
func kindOrNil(k *folio.Kind) any {
	if k == nil {
		return nil
	}

	return string(*k)
}
