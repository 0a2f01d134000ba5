package business

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"credit-backoffice/internal/domain/apperr"
	domain "credit-backoffice/internal/domain/business"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

// List is not narrowed to the caller's tenant; a tenant is still required to call it.
func (u *Usecase) List(ctx context.Context, tenantID string) ([]domain.Business, error) {
	if tenantID == "" {
		return nil, apperr.ErrMissingTenant
	}
	out, err := u.repo.List(ctx)
	if err != nil {
		log.Printf("business: list: %v", err)
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	return out, nil
}

// Get returns (nil, nil) for an unknown id.
func (u *Usecase) Get(ctx context.Context, tenantID, businessID string) (*domain.Business, error) {
	if tenantID == "" {
		return nil, apperr.ErrMissingTenant
	}
	b, err := u.repo.GetByID(ctx, businessID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil, nil
	case err != nil:
		log.Printf("business: get id=%s: %v", businessID, err)
		return nil, fmt.Errorf("get business: %w", err)
	}
	return b, nil
}

func (u *Usecase) Create(ctx context.Context, name string) (*domain.Business, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperr.Invalid("Missing business name")
	}
	b := &domain.Business{Name: name}
	if err := u.repo.Create(ctx, b); err != nil {
		log.Printf("business: create name=%q: %v", name, err)
		return nil, fmt.Errorf("create business: %w", err)
	}
	return b, nil
}
