package gormrepo

import (
	"context"
	"fmt"

	"credit-backoffice/internal/domain/product"

	"gorm.io/gorm"
)

type ProductRepository struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository { return &ProductRepository{db: db} }

func (r *ProductRepository) List(ctx context.Context, businessID, productID string) ([]product.Product, error) {
	q := r.db.WithContext(ctx).Where("business_id = ?", businessID)
	if productID != "" {
		q = q.Where("id = ?", productID)
	}
	out := []product.Product{}
	err := q.Order("created_at ASC").Find(&out).Error
	return out, translate(err, nil)
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	return translate(r.db.WithContext(ctx).Create(p).Error, nil)
}

func (r *ProductRepository) DecrementStock(ctx context.Context, businessID, productID string, qty int) error {
	res := r.db.WithContext(ctx).Model(&product.Product{}).
		Where("id = ? AND business_id = ? AND stock >= ?", productID, businessID, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return translate(res.Error, nil)
	}
	if res.RowsAffected == 1 {
		return nil
	}

	var n int64
	err := r.db.WithContext(ctx).Model(&product.Product{}).
		Where("id = ? AND business_id = ?", productID, businessID).
		Count(&n).Error
	if err != nil {
		return translate(err, nil)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", product.ErrNotFound, productID)
	}
	return fmt.Errorf("%w for product %s", product.ErrInsufficientStock, productID)
}
