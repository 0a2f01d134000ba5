package gormrepo

import (
	"context"
	"errors"
	"slices"
	"strings"

	"credit-backoffice/internal/domain/balance"
	"credit-backoffice/internal/domain/customer"
	"credit-backoffice/internal/domain/order"
	"credit-backoffice/internal/domain/product"
	"credit-backoffice/internal/domain/uow"
)

// Procedures are the multi-statement operations that must commit as one
// unit. Each exported method runs exactly one transaction.
type Procedures struct{ uow uow.UnitOfWork }

func NewProcedures(u uow.UnitOfWork) *Procedures { return &Procedures{uow: u} }

// ProcessPurchase locks the customer, takes every line out of stock, charges
// the total against the credit limit, then writes the order and its items.
func (p *Procedures) ProcessPurchase(ctx context.Context, businessID, customerID string, items []order.LineItem) (*order.PurchaseOutcome, error) {
	var out *order.PurchaseOutcome

	err := p.uow.WithinCustomerTx(ctx, businessID, customerID, func(r uow.Repos, c *customer.Customer) error {
		for _, it := range lockOrder(items) {
			if err := r.Products.DecrementStock(ctx, businessID, it.ProductID, it.Quantity); err != nil {
				return err
			}
		}

		total := order.Total(items)
		bal, err := r.Balances.Charge(ctx, businessID, c.ID, total, c.CreditLimit)
		if err != nil {
			return err
		}

		o := &order.Order{
			BusinessID:  businessID,
			CustomerID:  c.ID,
			TotalAmount: total,
			Items:       make([]order.OrderItem, 0, len(items)),
		}
		for _, it := range items {
			o.Items = append(o.Items, order.OrderItem{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
			})
		}
		if err := r.Orders.Create(ctx, o); err != nil {
			return err
		}

		newBalance := bal.Balance
		out = &order.PurchaseOutcome{
			Success:         true,
			OrderID:         o.ID,
			TotalAmount:     &total,
			CustomerBalance: &newBalance,
		}
		return nil
	})
	if err != nil {
		if reason, ok := rejection(err); ok {
			return &order.PurchaseOutcome{Success: false, Error: reason}, nil
		}
		return nil, err
	}
	return out, nil
}

// lockOrder returns a copy of items sorted by product id. Concurrent carts
// then take product row locks in the same order.
func lockOrder(items []order.LineItem) []order.LineItem {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b order.LineItem) int {
		return strings.Compare(a.ProductID, b.ProductID)
	})
	return sorted
}

var businessRules = []error{
	customer.ErrNotFound,
	product.ErrNotFound,
	product.ErrInsufficientStock,
	balance.ErrNotFound,
	balance.ErrCreditLimitExceeded,
}

func rejection(err error) (string, bool) {
	for _, rule := range businessRules {
		if errors.Is(err, rule) {
			return err.Error(), true
		}
	}
	return "", false
}
