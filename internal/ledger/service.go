package ledger

import (
	"context"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	CreateEntry(ctx context.Context, e *Entry) error
	ListEntries(ctx context.Context, filter ListFilter) ([]*Entry, error)
	CountEntries(ctx context.Context, filter ListFilter) (int, error)
	DeleteEntry(ctx context.Context, id int64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// AppendParams mirrors the ledger sheet row; everything is optional.
type AppendParams struct {
	Type       *EntryType
	Date       *string
	Amount     *decimal.Decimal
	FolioType  *FolioClass
	Investor   *string
	Worker     *string
	ActionType *string
	LinkID     *int64
}

// ListFilter narrows ListEntries. String fields match case-insensitive
// substrings, the way the ledger screen filters columns.
type ListFilter struct {
	ID         *int64
	Type       *EntryType
	Date       *string
	Amount     *decimal.Decimal
	FolioType  *FolioClass
	Investor   *string
	Worker     *string
	ActionType *string
	LinkID     *int64

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

// Append adds a row to the ledger. The store assigns the next integer id.
func (s *Service) Append(ctx context.Context, params AppendParams) (*Entry, error) {
	e := &Entry{
		Type:       params.Type,
		Date:       params.Date,
		Amount:     params.Amount,
		FolioType:  params.FolioType,
		Investor:   params.Investor,
		Worker:     params.Worker,
		ActionType: params.ActionType,
		LinkID:     params.LinkID,
	}
	if err := s.repo.CreateEntry(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

// AppendBatch appends rows in order. Writes are sequential and
// independent; a failure stops the batch and reports how many rows made
// it in.
func (s *Service) AppendBatch(ctx context.Context, params []AppendParams) ([]*Entry, error) {
	entries := make([]*Entry, 0, len(params))

	for _, p := range params {
		e, err := s.Append(ctx, p)
		if err != nil {
			return entries, err
		}

		entries = append(entries, e)
	}

	return entries, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Entry, error) {
	return s.repo.ListEntries(ctx, filter)
}

// ListPage returns one page of entries, newest first, plus the pagination
// envelope. Page numbers start at 1 and the page size defaults to 20.
func (s *Service) ListPage(ctx context.Context, filter ListFilter, page, limit int) ([]*Entry, Pagination, error) {
	if page < 1 {
		page = 1
	}

	if limit < 1 {
		limit = 20
	}

	total, err := s.repo.CountEntries(ctx, filter)
	if err != nil {
		return nil, Pagination{}, err
	}

	filter.Limit = limit
	filter.Offset = (page - 1) * limit

	entries, err := s.repo.ListEntries(ctx, filter)
	if err != nil {
		return nil, Pagination{}, err
	}

	return entries, Pagination{
		CurrentPage:  page,
		TotalPages:   (total + limit - 1) / limit,
		TotalItems:   total,
		ItemsPerPage: limit,
	}, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteEntry(ctx, id)
}

// Summarize recomputes the dashboard summary from the full ledger. It only
// fails when the ledger cannot be read at all.
func (s *Service) Summarize(ctx context.Context) (Summary, error) {
	entries, err := s.repo.ListEntries(ctx, ListFilter{})
	if err != nil {
		return Summary{}, err
	}

	return Aggregate(entries), nil
}
