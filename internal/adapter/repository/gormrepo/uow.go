package gormrepo

import (
	"context"

	"credit-backoffice/internal/domain/customer"
	"credit-backoffice/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func bind(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Businesses: &BusinessRepository{db: tx},
		Customers:  &CustomerRepository{db: tx},
		Balances:   &BalanceRepository{db: tx},
		Products:   &ProductRepository{db: tx},
		Orders:     &OrderRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(bind(tx))
	})
}

func (u *GormUoW) WithinCustomerTx(ctx context.Context, businessID, customerID string, fn func(r uow.Repos, c *customer.Customer) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := bind(tx)
		// lock the customer row up-front so concurrent purchases queue here
		c, err := r.Customers.GetByIDForUpdate(ctx, businessID, customerID)
		if err != nil {
			return err
		}
		return fn(r, c)
	})
}
