package uowmock

import (
	"context"
	"errors"

	"credit-backoffice/internal/domain/customer"
	"credit-backoffice/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn         func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinCustomerTxFn func(ctx context.Context, businessID, customerID string, fn func(r uow.Repos, c *customer.Customer) error) error
}

// Passthrough runs every transaction body directly against repos. The
// customer-locking variant loads the customer through repos.Customers.
func Passthrough(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(repos)
		},
		WithinCustomerTxFn: func(ctx context.Context, businessID, customerID string, fn func(r uow.Repos, c *customer.Customer) error) error {
			c, err := repos.Customers.GetByIDForUpdate(ctx, businessID, customerID)
			if err != nil {
				return err
			}
			return fn(repos, c)
		},
	}
}

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinCustomerTx(ctx context.Context, businessID, customerID string, fn func(r uow.Repos, c *customer.Customer) error) error {
	if m.WithinCustomerTxFn != nil {
		return m.WithinCustomerTxFn(ctx, businessID, customerID, fn)
	}
	return errUnimplemented
}
