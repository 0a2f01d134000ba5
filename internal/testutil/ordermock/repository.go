package ordermock

import (
	"context"

	domain "credit-backoffice/internal/domain/order"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn  func(ctx context.Context, o *domain.Order) error
	GetByIDFn func(ctx context.Context, businessID, orderID string) (*domain.Order, error)
	ListFn    func(ctx context.Context, businessID string) ([]domain.Order, error)
}

func (m *Repo) Create(ctx context.Context, o *domain.Order) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, o)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, businessID, orderID string) (*domain.Order, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, businessID, orderID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) List(ctx context.Context, businessID string) ([]domain.Order, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, businessID)
	}
	return []domain.Order{}, nil
}

// Processor is a function-backed domain.Processor. Calls counts invocations
// so tests can assert the store was never reached.
type Processor struct {
	ProcessPurchaseFn func(ctx context.Context, businessID, customerID string, items []domain.LineItem) (*domain.PurchaseOutcome, error)
	Calls             int
}

func (m *Processor) ProcessPurchase(ctx context.Context, businessID, customerID string, items []domain.LineItem) (*domain.PurchaseOutcome, error) {
	m.Calls++
	if m.ProcessPurchaseFn != nil {
		return m.ProcessPurchaseFn(ctx, businessID, customerID, items)
	}
	return &domain.PurchaseOutcome{Success: false, Error: "not implemented"}, nil
}
