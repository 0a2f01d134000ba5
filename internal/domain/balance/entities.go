package balance

import (
	"errors"
	"time"
)

var (
	ErrNotFound            = errors.New("customer balance not found")
	ErrCreditLimitExceeded = errors.New("credit limit exceeded")
)

// Table: customer_balances. One row per customer, created together with it.
// Balance is what the customer owes; it only ever moves through atomic
// increments in the store.
type CustomerBalance struct {
	CustomerID string    `gorm:"column:customer_id;size:36;primaryKey" json:"customer_id"`
	BusinessID string    `gorm:"column:business_id;size:36;not null;index:idx_balances_business" json:"business_id"`
	Balance    float64   `gorm:"column:balance;type:decimal(18,2);not null;default:0" json:"balance"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CustomerBalance) TableName() string { return "customer_balances" }
