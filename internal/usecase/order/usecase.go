package order

import (
	"context"
	"errors"
	"fmt"
	"log"

	"credit-backoffice/internal/domain/apperr"
	domain "credit-backoffice/internal/domain/order"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

// List returns the tenant's orders, newest first.
func (u *Usecase) List(ctx context.Context, businessID string) ([]domain.Order, error) {
	if businessID == "" {
		return nil, apperr.ErrMissingTenant
	}
	out, err := u.repo.List(ctx, businessID)
	if err != nil {
		log.Printf("order: list business=%s: %v", businessID, err)
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return out, nil
}

// Get returns the order with its items, or (nil, nil) when unknown.
func (u *Usecase) Get(ctx context.Context, businessID, orderID string) (*domain.Order, error) {
	if businessID == "" {
		return nil, apperr.ErrMissingTenant
	}
	o, err := u.repo.GetByID(ctx, businessID, orderID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil, nil
	case err != nil:
		log.Printf("order: get business=%s id=%s: %v", businessID, orderID, err)
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}
