package purchase

// ItemInput is one cart line as received. Pointer fields distinguish a
// missing value from zero.
type ItemInput struct {
	ProductID string   `json:"product_id"`
	Quantity  *int     `json:"quantity"`
	UnitPrice *float64 `json:"unit_price"`
}

type Input struct {
	BusinessID string      `json:"-"`
	CustomerID string      `json:"customer_id"`
	Items      []ItemInput `json:"items"`
}

// RejectedError is a business rule failure reported by the purchase
// procedure (stock, credit limit, unknown customer or product). Nothing was
// committed.
type RejectedError struct{ Reason string }

func (e *RejectedError) Error() string { return e.Reason }
