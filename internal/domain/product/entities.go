package product

import (
	"errors"
	"time"

	"credit-backoffice/pkg/id"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Table: products
type Product struct {
	ID         string    `gorm:"column:id;size:36;primaryKey" json:"id"`
	BusinessID string    `gorm:"column:business_id;size:36;not null;index:idx_products_business" json:"business_id"`
	Name       string    `gorm:"column:name;type:text;not null" json:"name"`
	Stock      int       `gorm:"column:stock;not null;default:0" json:"stock"`
	Price      float64   `gorm:"column:price;type:decimal(18,2);not null;default:0" json:"price"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Product) TableName() string { return "products" }

func (p *Product) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = id.New()
	}
	return nil
}
