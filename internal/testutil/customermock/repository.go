package customermock

import (
	"context"
	"time"

	domain "credit-backoffice/internal/domain/customer"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset lookups report ErrNotFound; unset writes succeed.
type Repo struct {
	ListByBusinessFn   func(ctx context.Context, businessID string) ([]domain.Customer, error)
	GetByIDFn          func(ctx context.Context, businessID, customerID string) (*domain.Customer, error)
	GetByIDForUpdateFn func(ctx context.Context, businessID, customerID string) (*domain.Customer, error)
	CreateFn           func(ctx context.Context, c *domain.Customer) error
	ListOverdueFn      func(ctx context.Context, businessID string, asOf time.Time, days int) ([]domain.Overdue, error)
}

func (m *Repo) ListByBusiness(ctx context.Context, businessID string) ([]domain.Customer, error) {
	if m.ListByBusinessFn != nil {
		return m.ListByBusinessFn(ctx, businessID)
	}
	return []domain.Customer{}, nil
}

func (m *Repo) GetByID(ctx context.Context, businessID, customerID string) (*domain.Customer, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, businessID, customerID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, businessID, customerID string) (*domain.Customer, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, businessID, customerID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Create(ctx context.Context, c *domain.Customer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) ListOverdue(ctx context.Context, businessID string, asOf time.Time, days int) ([]domain.Overdue, error) {
	if m.ListOverdueFn != nil {
		return m.ListOverdueFn(ctx, businessID, asOf, days)
	}
	return []domain.Overdue{}, nil
}
