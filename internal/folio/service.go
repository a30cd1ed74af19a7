package folio

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=folio
type Repository interface {
	CreateFolio(ctx context.Context, f *Folio) error
	GetFolio(ctx context.Context, id uuid.UUID) (*Folio, error)
	ListFolios(ctx context.Context) ([]*Folio, error)
	UpdateFolio(ctx context.Context, f *Folio) error
	DeleteFolio(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name  string
	Email string
	Phone string
	Kind  Kind
}

// UpdateParams carries a partial update; nil fields are left untouched.
type UpdateParams struct {
	Name  *string
	Email *string
	Phone *string
	Kind  *Kind
}

func (p UpdateParams) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil && p.Kind == nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Folio, error) {
	f := &Folio{
		Name:  params.Name,
		Email: params.Email,
		Phone: params.Phone,
		Kind:  params.Kind,
	}
	if err := s.repo.CreateFolio(ctx, f); err != nil {
		return nil, err
	}

	return f, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Folio, error) {
	return s.repo.GetFolio(ctx, id)
}

// List returns all folios, newest first.
func (s *Service) List(ctx context.Context) ([]*Folio, error) {
	return s.repo.ListFolios(ctx)
}

// Update merges the given fields onto the stored record. A missing id is a
// normal outcome reported as ErrNotFound, never a panic or a silent no-op.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Folio, error) {
	f, err := s.repo.GetFolio(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		f.Name = *params.Name
	}

	if params.Email != nil {
		f.Email = *params.Email
	}

	if params.Phone != nil {
		f.Phone = *params.Phone
	}

	if params.Kind != nil {
		f.Kind = *params.Kind
	}

	if err := s.repo.UpdateFolio(ctx, f); err != nil {
		return nil, err
	}

	return f, nil
}

// Delete removes the folio. There is deliberately no referential-integrity
// check against transactions that mention it.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteFolio(ctx, id)
}
