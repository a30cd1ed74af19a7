package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khata-app/khata/internal/folio"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)
	CountTransactions(ctx context.Context, filter ListFilter) (int, error)
	UpdateTransaction(ctx context.Context, tx *Transaction) error
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Amount      decimal.Decimal
	Description string
	Type        Type

	InvestorID    *uuid.UUID
	FolioTypeFrom *folio.Kind
	FolioIDFrom   *uuid.UUID
	FolioTypeTo   *folio.Kind
	FolioIDTo     *uuid.UUID

	Date time.Time
}

// UpdateParams carries a partial update; nil fields are left untouched.
// There is no way to clear a party field: a patch that strands a stale
// field is rejected by re-validation instead of silently coerced.
type UpdateParams struct {
	Amount      *decimal.Decimal
	Description *string
	Type        *Type

	InvestorID    *uuid.UUID
	FolioTypeFrom *folio.Kind
	FolioIDFrom   *uuid.UUID
	FolioTypeTo   *folio.Kind
	FolioIDTo     *uuid.UUID

	Date *time.Time
}

func (p UpdateParams) Empty() bool {
	return p.Amount == nil && p.Description == nil && p.Type == nil &&
		p.InvestorID == nil &&
		p.FolioTypeFrom == nil && p.FolioIDFrom == nil &&
		p.FolioTypeTo == nil && p.FolioIDTo == nil &&
		p.Date == nil
}

// ListFilter narrows ListTransactions. Zero Limit means no paging.
type ListFilter struct {
	FolioTypeFrom *folio.Kind
	FolioTypeTo   *folio.Kind
	FolioIDFrom   *uuid.UUID
	FolioIDTo     *uuid.UUID
	Type          *Type
	DateFrom      *time.Time
	DateTo        *time.Time

	Limit  int
	Offset int
}

// Pagination describes the page window of a paginated listing.
type Pagination struct {
	CurrentPage  int
	TotalPages   int
	TotalItems   int
	ItemsPerPage int
}

// Create validates the candidate before anything is written; a rule
// violation fails the whole operation.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	tx := &Transaction{
		Amount:        params.Amount,
		Description:   params.Description,
		Type:          params.Type,
		InvestorID:    params.InvestorID,
		FolioTypeFrom: params.FolioTypeFrom,
		FolioIDFrom:   params.FolioIDFrom,
		FolioTypeTo:   params.FolioTypeTo,
		FolioIDTo:     params.FolioIDTo,
		Date:          params.Date,
	}

	if err := Validate(tx); err != nil {
		return nil, err
	}

	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

// List returns matching transactions sorted by date descending, then
// creation order descending. Listing never fails validation.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, filter)
}

// ListPage returns one page of matching transactions plus the pagination
// envelope. Page numbers start at 1.
func (s *Service) ListPage(ctx context.Context, filter ListFilter, page, limit int) ([]*Transaction, Pagination, error) {
	if page < 1 {
		page = 1
	}

	if limit < 1 {
		limit = 20
	}

	total, err := s.repo.CountTransactions(ctx, filter)
	if err != nil {
		return nil, Pagination{}, err
	}

	filter.Limit = limit
	filter.Offset = (page - 1) * limit

	txs, err := s.repo.ListTransactions(ctx, filter)
	if err != nil {
		return nil, Pagination{}, err
	}

	return txs, Pagination{
		CurrentPage:  page,
		TotalPages:   (total + limit - 1) / limit,
		TotalItems:   total,
		ItemsPerPage: limit,
	}, nil
}

// Update merges the patch onto the stored record and re-runs the full
// ruleset before committing. A merge that produces an invalid field
// combination is an error worth surfacing, not a field to drop.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Transaction, error) {
	tx, err := s.repo.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Amount != nil {
		tx.Amount = *params.Amount
	}

	if params.Description != nil {
		tx.Description = *params.Description
	}

	if params.Type != nil {
		tx.Type = *params.Type
	}

	if params.InvestorID != nil {
		tx.InvestorID = params.InvestorID
	}

	if params.FolioTypeFrom != nil {
		tx.FolioTypeFrom = params.FolioTypeFrom
	}

	if params.FolioIDFrom != nil {
		tx.FolioIDFrom = params.FolioIDFrom
	}

	if params.FolioTypeTo != nil {
		tx.FolioTypeTo = params.FolioTypeTo
	}

	if params.FolioIDTo != nil {
		tx.FolioIDTo = params.FolioIDTo
	}

	if params.Date != nil {
		tx.Date = *params.Date
	}

	if err := Validate(tx); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteTransaction(ctx, id)
}
