package order

import "context"

type Repository interface {
	// Create inserts the order and all of o.Items.
	Create(ctx context.Context, o *Order) error
	// GetByID returns the order with its items preloaded.
	GetByID(ctx context.Context, businessID, orderID string) (*Order, error)
	// List returns the tenant's orders, newest first, without items.
	List(ctx context.Context, businessID string) ([]Order, error)
}

// Processor is the store-side purchase procedure. One call runs exactly one
// transaction: either every effect of the purchase is committed or none is.
// Business rule failures come back as an outcome with Success=false; a non-nil
// error means the store itself failed.
type Processor interface {
	ProcessPurchase(ctx context.Context, businessID, customerID string, items []LineItem) (*PurchaseOutcome, error)
}
