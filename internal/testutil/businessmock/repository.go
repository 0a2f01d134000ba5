package businessmock

import (
	"context"

	domain "credit-backoffice/internal/domain/business"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	ListFn    func(ctx context.Context) ([]domain.Business, error)
	GetByIDFn func(ctx context.Context, businessID string) (*domain.Business, error)
	CreateFn  func(ctx context.Context, b *domain.Business) error
	ProbeFn   func(ctx context.Context) error
}

func (m *Repo) List(ctx context.Context) ([]domain.Business, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []domain.Business{}, nil
}

func (m *Repo) GetByID(ctx context.Context, businessID string) (*domain.Business, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, businessID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Create(ctx context.Context, b *domain.Business) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}

func (m *Repo) Probe(ctx context.Context) error {
	if m.ProbeFn != nil {
		return m.ProbeFn(ctx)
	}
	return nil
}
