package gormrepo

import (
	"context"
	"sort"
	"time"

	"credit-backoffice/internal/domain/customer"
	"credit-backoffice/internal/domain/order"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerRepository struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) *CustomerRepository { return &CustomerRepository{db: db} }

func (r *CustomerRepository) ListByBusiness(ctx context.Context, businessID string) ([]customer.Customer, error) {
	out := []customer.Customer{}
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at ASC").
		Find(&out).Error
	return out, translate(err, nil)
}

func (r *CustomerRepository) GetByID(ctx context.Context, businessID, customerID string) (*customer.Customer, error) {
	return r.get(r.db.WithContext(ctx), businessID, customerID)
}

func (r *CustomerRepository) GetByIDForUpdate(ctx context.Context, businessID, customerID string) (*customer.Customer, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), businessID, customerID)
}

func (r *CustomerRepository) get(q *gorm.DB, businessID, customerID string) (*customer.Customer, error) {
	var out customer.Customer
	if err := q.Where("business_id = ? AND id = ?", businessID, customerID).First(&out).Error; err != nil {
		return nil, translate(err, customer.ErrNotFound)
	}
	return &out, nil
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	return translate(r.db.WithContext(ctx).Create(c).Error, nil)
}

type owingCustomer struct {
	CustomerID   string
	CustomerName string
	Balance      float64
}

// ListOverdue is done in two reads so the date arithmetic stays in Go and the
// SQL works unchanged on every supported dialect.
func (r *CustomerRepository) ListOverdue(ctx context.Context, businessID string, asOf time.Time, days int) ([]customer.Overdue, error) {
	var owing []owingCustomer
	err := r.db.WithContext(ctx).
		Table("customers AS c").
		Select("c.id AS customer_id, c.name AS customer_name, b.balance AS balance").
		Joins("JOIN customer_balances b ON b.customer_id = c.id AND b.business_id = c.business_id").
		Where("c.business_id = ? AND b.balance > 0", businessID).
		Scan(&owing).Error
	if err != nil {
		return nil, translate(err, nil)
	}

	out := []customer.Overdue{}
	if len(owing) == 0 {
		return out, nil
	}

	ids := make([]string, 0, len(owing))
	for _, o := range owing {
		ids = append(ids, o.CustomerID)
	}
	cutoff := asOf.Add(-time.Duration(days) * 24 * time.Hour)

	var orders []order.Order
	err = r.db.WithContext(ctx).
		Select("customer_id", "created_at").
		Where("business_id = ? AND customer_id IN ? AND created_at <= ?", businessID, ids, cutoff).
		Order("created_at ASC").
		Find(&orders).Error
	if err != nil {
		return nil, translate(err, nil)
	}

	// ascending, so the first hit per customer is the oldest
	oldest := make(map[string]time.Time, len(orders))
	for _, o := range orders {
		if _, seen := oldest[o.CustomerID]; !seen {
			oldest[o.CustomerID] = o.CreatedAt
		}
	}

	for _, c := range owing {
		first, ok := oldest[c.CustomerID]
		if !ok {
			continue
		}
		out = append(out, customer.Overdue{
			CustomerID:      c.CustomerID,
			CustomerName:    c.CustomerName,
			Balance:         c.Balance,
			OldestOrderDate: first.UTC(),
			DaysSinceOrder:  int(asOf.Sub(first).Hours() / 24),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DaysSinceOrder != out[j].DaysSinceOrder {
			return out[i].DaysSinceOrder > out[j].DaysSinceOrder
		}
		return out[i].CustomerName < out[j].CustomerName
	})
	return out, nil
}
