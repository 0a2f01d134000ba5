package customer

import (
	"context"
	"time"
)

type Repository interface {
	ListByBusiness(ctx context.Context, businessID string) ([]Customer, error)
	GetByID(ctx context.Context, businessID, customerID string) (*Customer, error)
	// GetByIDForUpdate locks the customer row until the surrounding tx ends.
	GetByIDForUpdate(ctx context.Context, businessID, customerID string) (*Customer, error)
	Create(ctx context.Context, c *Customer) error

	// ListOverdue reports customers with a positive balance and at least one
	// order placed `days` or more days before asOf.
	ListOverdue(ctx context.Context, businessID string, asOf time.Time, days int) ([]Overdue, error)
}
