package balance

type AdjustInput struct {
	BusinessID string   `json:"-"`
	CustomerID string   `json:"customer_id"`
	Amount     *float64 `json:"amount"` // signed: positive charges, negative pays down
}
