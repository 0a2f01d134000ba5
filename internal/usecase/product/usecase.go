package product

import (
	"context"
	"fmt"
	"log"
	"strings"

	"credit-backoffice/internal/domain/apperr"
	domain "credit-backoffice/internal/domain/product"
)

type CreateInput struct {
	BusinessID string
	Name       string
	Stock      *int
	Price      *float64
}

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

// List returns every product of the tenant, or only productID when it is set.
func (u *Usecase) List(ctx context.Context, businessID, productID string) ([]domain.Product, error) {
	if businessID == "" {
		return nil, apperr.ErrMissingTenant
	}
	out, err := u.repo.List(ctx, businessID, productID)
	if err != nil {
		log.Printf("product: list business=%s id=%s: %v", businessID, productID, err)
		return nil, fmt.Errorf("list products: %w", err)
	}
	return out, nil
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*domain.Product, error) {
	if in.BusinessID == "" {
		return nil, apperr.ErrMissingTenant
	}
	if strings.TrimSpace(in.Name) == "" || in.Stock == nil || in.Price == nil {
		return nil, apperr.Invalid("Missing product fields")
	}
	if *in.Stock < 0 {
		return nil, apperr.Invalid("stock cannot be negative")
	}
	if *in.Price < 0 {
		return nil, apperr.Invalid("price cannot be negative")
	}

	p := &domain.Product{BusinessID: in.BusinessID, Name: in.Name, Stock: *in.Stock, Price: *in.Price}
	if err := u.repo.Create(ctx, p); err != nil {
		log.Printf("product: create business=%s: %v", in.BusinessID, err)
		return nil, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}
