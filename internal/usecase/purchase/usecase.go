package purchase

import (
	"context"
	"fmt"
	"log"

	"credit-backoffice/internal/domain/apperr"
	"credit-backoffice/internal/domain/order"

	"github.com/shopspring/decimal"
)

type Usecase struct{ proc order.Processor }

func NewUsecase(p order.Processor) *Usecase { return &Usecase{proc: p} }

// Validate checks the request shape. It runs before the store is touched
// and reports the first rule that fails.
func Validate(in Input) ([]order.LineItem, error) {
	if in.BusinessID == "" {
		return nil, apperr.ErrMissingTenant
	}
	if in.CustomerID == "" {
		return nil, apperr.Invalid("customer_id is required")
	}
	if len(in.Items) == 0 {
		return nil, apperr.Invalid("items array is required and must not be empty")
	}

	items := make([]order.LineItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.ProductID == "" || it.Quantity == nil || it.UnitPrice == nil {
			return nil, apperr.Invalid("Each item must have product_id, quantity, and unit_price")
		}
		if *it.Quantity <= 0 {
			return nil, apperr.Invalid("Quantity must be greater than 0")
		}
		if *it.UnitPrice < 0 {
			return nil, apperr.Invalid("unit_price cannot be negative")
		}
		if p := decimal.NewFromFloat(*it.UnitPrice); !p.Equal(p.Round(2)) {
			return nil, apperr.Invalid("unit_price must have at most 2 decimal places")
		}
		items = append(items, order.LineItem{
			ProductID: it.ProductID,
			Quantity:  *it.Quantity,
			UnitPrice: *it.UnitPrice,
		})
	}
	return items, nil
}

// Process validates the cart and hands it to the store in one call. The
// store either commits the whole purchase or nothing, so there is nothing
// to undo here on failure, and nothing is retried.
func (u *Usecase) Process(ctx context.Context, in Input) (*order.PurchaseOutcome, error) {
	items, err := Validate(in)
	if err != nil {
		return nil, err
	}

	out, err := u.proc.ProcessPurchase(ctx, in.BusinessID, in.CustomerID, items)
	if err != nil {
		log.Printf("purchase: business=%s customer=%s: %v", in.BusinessID, in.CustomerID, err)
		return nil, fmt.Errorf("process purchase: %w", err)
	}
	if !out.Success {
		reason := out.Error
		if reason == "" {
			reason = "Purchase failed"
		}
		return nil, &RejectedError{Reason: reason}
	}
	return out, nil
}
