package balance

import (
	"context"
	"errors"
	"fmt"
	"log"

	"credit-backoffice/internal/domain/apperr"
	domain "credit-backoffice/internal/domain/balance"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

// Get returns (nil, nil) when the customer has no balance row.
func (u *Usecase) Get(ctx context.Context, businessID, customerID string) (*domain.CustomerBalance, error) {
	if businessID == "" {
		return nil, apperr.ErrMissingTenant
	}
	if customerID == "" {
		return nil, apperr.Invalid("Missing customer_id")
	}
	b, err := u.repo.Get(ctx, businessID, customerID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil, nil
	case err != nil:
		log.Printf("balance: get business=%s customer=%s: %v", businessID, customerID, err)
		return nil, fmt.Errorf("fetch customer balance: %w", err)
	}
	return b, nil
}

// Adjust applies a signed amount in one atomic store operation. The credit
// limit is not checked.
func (u *Usecase) Adjust(ctx context.Context, in AdjustInput) (*domain.CustomerBalance, error) {
	if in.BusinessID == "" {
		return nil, apperr.ErrMissingTenant
	}
	if in.CustomerID == "" || in.Amount == nil {
		return nil, apperr.Invalid("Missing customer_id or amount")
	}

	b, err := u.repo.Adjust(ctx, in.BusinessID, in.CustomerID, *in.Amount)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Printf("balance: adjust business=%s customer=%s amount=%v: %v", in.BusinessID, in.CustomerID, *in.Amount, err)
		}
		return nil, fmt.Errorf("adjust customer balance: %w", err)
	}
	return b, nil
}
