package balancemock

import (
	"context"

	domain "credit-backoffice/internal/domain/balance"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	InitFn   func(ctx context.Context, businessID, customerID string) (*domain.CustomerBalance, error)
	GetFn    func(ctx context.Context, businessID, customerID string) (*domain.CustomerBalance, error)
	AdjustFn func(ctx context.Context, businessID, customerID string, amount float64) (*domain.CustomerBalance, error)
	ChargeFn func(ctx context.Context, businessID, customerID string, amount, limit float64) (*domain.CustomerBalance, error)
}

func (m *Repo) Init(ctx context.Context, businessID, customerID string) (*domain.CustomerBalance, error) {
	if m.InitFn != nil {
		return m.InitFn(ctx, businessID, customerID)
	}
	return &domain.CustomerBalance{BusinessID: businessID, CustomerID: customerID}, nil
}

func (m *Repo) Get(ctx context.Context, businessID, customerID string) (*domain.CustomerBalance, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, businessID, customerID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Adjust(ctx context.Context, businessID, customerID string, amount float64) (*domain.CustomerBalance, error) {
	if m.AdjustFn != nil {
		return m.AdjustFn(ctx, businessID, customerID, amount)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Charge(ctx context.Context, businessID, customerID string, amount, limit float64) (*domain.CustomerBalance, error) {
	if m.ChargeFn != nil {
		return m.ChargeFn(ctx, businessID, customerID, amount, limit)
	}
	return nil, domain.ErrNotFound
}
