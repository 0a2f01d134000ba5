package business

import (
	"errors"
	"time"

	"credit-backoffice/pkg/id"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("business not found")

// Table: businesses. Root tenant scope.
type Business struct {
	ID        string    `gorm:"column:id;size:36;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;type:text;not null" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Business) TableName() string { return "businesses" }

func (b *Business) BeforeCreate(*gorm.DB) error {
	if b.ID == "" {
		b.ID = id.New()
	}
	return nil
}
