package customer

import (
	"errors"
	"time"

	"credit-backoffice/pkg/id"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("customer not found")

// Table: customers
type Customer struct {
	ID          string    `gorm:"column:id;size:36;primaryKey" json:"id"`
	BusinessID  string    `gorm:"column:business_id;size:36;not null;index:idx_customers_business" json:"business_id"`
	Name        string    `gorm:"column:name;type:text;not null" json:"name"`
	CreditLimit float64   `gorm:"column:credit_limit;type:decimal(18,2);not null;default:0" json:"credit_limit"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Customer) TableName() string { return "customers" }

func (c *Customer) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = id.New()
	}
	return nil
}

// Overdue is one row of the overdue-customers report: a customer with a
// positive balance whose oldest order is older than the requested threshold.
type Overdue struct {
	CustomerID      string    `json:"customer_id"`
	CustomerName    string    `json:"customer_name"`
	Balance         float64   `json:"balance"`
	OldestOrderDate time.Time `json:"oldest_order_date"`
	DaysSinceOrder  int       `json:"days_since_order"`
}
