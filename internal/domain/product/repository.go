package product

import "context"

type Repository interface {
	// List returns the tenant's products; a non-empty productID narrows it to
	// that one product (still a list, possibly empty).
	List(ctx context.Context, businessID, productID string) ([]Product, error)
	Create(ctx context.Context, p *Product) error

	// DecrementStock takes qty units out of stock in a single conditional
	// update. Returns ErrNotFound or ErrInsufficientStock without touching the row.
	DecrementStock(ctx context.Context, businessID, productID string, qty int) error
}
