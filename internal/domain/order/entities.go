package order

import (
	"errors"
	"time"

	"credit-backoffice/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("order not found")

// Table: orders. Written only by a successful purchase.
type Order struct {
	ID          string      `gorm:"column:id;size:36;primaryKey" json:"id"`
	BusinessID  string      `gorm:"column:business_id;size:36;not null;index:idx_orders_business_created" json:"business_id"`
	CustomerID  string      `gorm:"column:customer_id;size:36;not null;index:idx_orders_customer" json:"customer_id"`
	TotalAmount float64     `gorm:"column:total_amount;type:decimal(18,2);not null" json:"total_amount"`
	CreatedAt   time.Time   `gorm:"column:created_at;autoCreateTime;index:idx_orders_business_created" json:"created_at"`
	Items       []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

func (Order) TableName() string { return "orders" }

func (o *Order) BeforeCreate(*gorm.DB) error {
	if o.ID == "" {
		o.ID = id.New()
	}
	return nil
}

// Table: order_items
type OrderItem struct {
	ID        string    `gorm:"column:id;size:36;primaryKey" json:"id"`
	OrderID   string    `gorm:"column:order_id;size:36;not null;index" json:"order_id"`
	ProductID string    `gorm:"column:product_id;size:36;not null" json:"product_id"`
	Quantity  int       `gorm:"column:quantity;not null" json:"quantity"`
	UnitPrice float64   `gorm:"column:unit_price;type:decimal(18,2);not null" json:"unit_price"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (OrderItem) TableName() string { return "order_items" }

func (i *OrderItem) BeforeCreate(*gorm.DB) error {
	if i.ID == "" {
		i.ID = id.New()
	}
	return nil
}

// LineItem is one validated cart entry handed to the purchase procedure.
type LineItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Total sums quantity*unit_price over items, exact to the cent.
func Total(items []LineItem) float64 {
	sum := decimal.Zero
	for _, it := range items {
		line := decimal.NewFromFloat(it.UnitPrice).Mul(decimal.NewFromInt(int64(it.Quantity)))
		sum = sum.Add(line)
	}
	return sum.Round(2).InexactFloat64()
}

// PurchaseOutcome mirrors the result of the store's purchase procedure.
// On Success=false nothing was committed and Error carries the reason.
type PurchaseOutcome struct {
	Success         bool     `json:"success"`
	OrderID         string   `json:"order_id,omitempty"`
	TotalAmount     *float64 `json:"total_amount,omitempty"`
	CustomerBalance *float64 `json:"customer_balance,omitempty"`
	Error           string   `json:"error,omitempty"`
}
