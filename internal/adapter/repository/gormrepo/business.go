package gormrepo

import (
	"context"

	"credit-backoffice/internal/domain/business"

	"gorm.io/gorm"
)

type BusinessRepository struct{ db *gorm.DB }

func NewBusinessRepository(db *gorm.DB) *BusinessRepository { return &BusinessRepository{db: db} }

func (r *BusinessRepository) List(ctx context.Context) ([]business.Business, error) {
	out := []business.Business{}
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&out).Error
	return out, translate(err, nil)
}

func (r *BusinessRepository) GetByID(ctx context.Context, businessID string) (*business.Business, error) {
	var out business.Business
	if err := r.db.WithContext(ctx).Where("id = ?", businessID).First(&out).Error; err != nil {
		return nil, translate(err, business.ErrNotFound)
	}
	return &out, nil
}

func (r *BusinessRepository) Create(ctx context.Context, b *business.Business) error {
	return translate(r.db.WithContext(ctx).Create(b).Error, nil)
}

// Probe is SELECT id FROM businesses LIMIT 1.
func (r *BusinessRepository) Probe(ctx context.Context) error {
	var ids []string
	return r.db.WithContext(ctx).Model(&business.Business{}).Limit(1).Pluck("id", &ids).Error
}
