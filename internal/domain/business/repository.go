package business

import "context"

type Repository interface {
	List(ctx context.Context) ([]Business, error)
	// GetByID returns ErrNotFound when no row matches.
	GetByID(ctx context.Context, businessID string) (*Business, error)
	Create(ctx context.Context, b *Business) error

	// Probe runs the cheapest possible read; used by the health check.
	Probe(ctx context.Context) error
}
