package gormrepo

import (
	"context"
	"time"

	"credit-backoffice/internal/domain/balance"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BalanceRepository struct{ db *gorm.DB }

func NewBalanceRepository(db *gorm.DB) *BalanceRepository { return &BalanceRepository{db: db} }

func (r *BalanceRepository) Init(ctx context.Context, businessID, customerID string) (*balance.CustomerBalance, error) {
	b := &balance.CustomerBalance{CustomerID: customerID, BusinessID: businessID, Balance: 0}
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return nil, translate(err, nil)
	}
	return b, nil
}

func (r *BalanceRepository) Get(ctx context.Context, businessID, customerID string) (*balance.CustomerBalance, error) {
	var out balance.CustomerBalance
	err := r.db.WithContext(ctx).
		Where("business_id = ? AND customer_id = ?", businessID, customerID).
		First(&out).Error
	if err != nil {
		return nil, translate(err, balance.ErrNotFound)
	}
	return &out, nil
}

// Adjust increments inside the UPDATE statement itself, so concurrent
// adjustments of the same row serialize on the row lock instead of
// overwriting each other.
func (r *BalanceRepository) Adjust(ctx context.Context, businessID, customerID string, amount float64) (*balance.CustomerBalance, error) {
	var out *balance.CustomerBalance
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&balance.CustomerBalance{}).
			Where("business_id = ? AND customer_id = ?", businessID, customerID).
			Updates(increment(amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return balance.ErrNotFound
		}
		b, err := (&BalanceRepository{db: tx}).Get(ctx, businessID, customerID)
		out = b
		return err
	})
	if err != nil {
		return nil, translate(err, nil)
	}
	return out, nil
}

func (r *BalanceRepository) Charge(ctx context.Context, businessID, customerID string, amount, limit float64) (*balance.CustomerBalance, error) {
	var out *balance.CustomerBalance
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&balance.CustomerBalance{}).
			Where("business_id = ? AND customer_id = ? AND ROUND(balance + CAST(? AS DECIMAL(18,2)), 2) <= CAST(? AS DECIMAL(18,2))",
				businessID, customerID, cents(amount), cents(limit)).
			Updates(increment(amount))
		if res.Error != nil {
			return res.Error
		}
		repo := &BalanceRepository{db: tx}
		if res.RowsAffected == 0 {
			// either no row at all or the limit would be crossed
			if _, err := repo.Get(ctx, businessID, customerID); err != nil {
				return err
			}
			return balance.ErrCreditLimitExceeded
		}
		b, err := repo.Get(ctx, businessID, customerID)
		out = b
		return err
	})
	if err != nil {
		return nil, translate(err, nil)
	}
	return out, nil
}

// increment adds amount to balance and keeps the stored value on whole cents.
func increment(amount float64) map[string]any {
	return map[string]any{
		"balance":    gorm.Expr("ROUND(balance + CAST(? AS DECIMAL(18,2)), 2)", cents(amount)),
		"updated_at": time.Now().UTC(),
	}
}

// cents binds a money value as an exact two-place decimal.
func cents(v float64) decimal.Decimal { return decimal.NewFromFloat(v).Round(2) }
