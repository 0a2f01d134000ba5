package uow

import (
	"context"

	"credit-backoffice/internal/domain/balance"
	"credit-backoffice/internal/domain/business"
	"credit-backoffice/internal/domain/customer"
	"credit-backoffice/internal/domain/order"
	"credit-backoffice/internal/domain/product"
)

// Repos are bound to a single transaction.
type Repos struct {
	Businesses business.Repository
	Customers  customer.Repository
	Balances   balance.Repository
	Products   product.Repository
	Orders     order.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the customer row first, then pass it in
	WithinCustomerTx(ctx context.Context, businessID, customerID string, fn func(r Repos, c *customer.Customer) error) error
}
