package gormrepo

import (
	"context"

	"credit-backoffice/internal/domain/order"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{db: db} }

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(o).Error; err != nil {
			return err
		}
		if len(o.Items) == 0 {
			return nil
		}
		for i := range o.Items {
			o.Items[i].OrderID = o.ID
		}
		return tx.Create(&o.Items).Error
	})
	return translate(err, nil)
}

func (r *OrderRepository) GetByID(ctx context.Context, businessID, orderID string) (*order.Order, error) {
	var out order.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("business_id = ? AND id = ?", businessID, orderID).
		First(&out).Error
	if err != nil {
		return nil, translate(err, order.ErrNotFound)
	}
	return &out, nil
}

func (r *OrderRepository) List(ctx context.Context, businessID string) ([]order.Order, error) {
	out := []order.Order{}
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Find(&out).Error
	return out, translate(err, nil)
}
