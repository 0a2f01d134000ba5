package productmock

import (
	"context"

	domain "credit-backoffice/internal/domain/product"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	ListFn           func(ctx context.Context, businessID, productID string) ([]domain.Product, error)
	CreateFn         func(ctx context.Context, p *domain.Product) error
	DecrementStockFn func(ctx context.Context, businessID, productID string, qty int) error
}

func (m *Repo) List(ctx context.Context, businessID, productID string) ([]domain.Product, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, businessID, productID)
	}
	return []domain.Product{}, nil
}

func (m *Repo) Create(ctx context.Context, p *domain.Product) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) DecrementStock(ctx context.Context, businessID, productID string, qty int) error {
	if m.DecrementStockFn != nil {
		return m.DecrementStockFn(ctx, businessID, productID, qty)
	}
	return nil
}
