package customer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"credit-backoffice/internal/domain/apperr"
	domain "credit-backoffice/internal/domain/customer"
	"credit-backoffice/internal/domain/uow"
)

// DefaultOverdueDays applies when the caller does not pass a threshold.
const DefaultOverdueDays = 30

type CreateInput struct {
	BusinessID  string
	Name        string
	CreditLimit *float64
}

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
	now  func() time.Time
}

func NewUsecase(r domain.Repository, u uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: u, now: time.Now}
}

func (u *Usecase) List(ctx context.Context, businessID string) ([]domain.Customer, error) {
	if businessID == "" {
		return nil, apperr.ErrMissingTenant
	}
	out, err := u.repo.ListByBusiness(ctx, businessID)
	if err != nil {
		log.Printf("customer: list business=%s: %v", businessID, err)
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return out, nil
}

// Get returns (nil, nil) when the customer does not exist within the tenant.
func (u *Usecase) Get(ctx context.Context, businessID, customerID string) (*domain.Customer, error) {
	if businessID == "" {
		return nil, apperr.ErrMissingTenant
	}
	c, err := u.repo.GetByID(ctx, businessID, customerID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil, nil
	case err != nil:
		log.Printf("customer: get business=%s id=%s: %v", businessID, customerID, err)
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// Create inserts the customer and its zero balance in one transaction.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*domain.Customer, error) {
	if in.BusinessID == "" {
		return nil, apperr.ErrMissingTenant
	}
	if strings.TrimSpace(in.Name) == "" || in.CreditLimit == nil {
		return nil, apperr.Invalid("Missing name or credit_limit")
	}
	if *in.CreditLimit < 0 {
		return nil, apperr.Invalid("credit_limit cannot be negative")
	}

	c := &domain.Customer{BusinessID: in.BusinessID, Name: in.Name, CreditLimit: *in.CreditLimit}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Customers.Create(ctx, c); err != nil {
			return err
		}
		_, err := r.Balances.Init(ctx, c.BusinessID, c.ID)
		return err
	})
	if err != nil {
		log.Printf("customer: create business=%s: %v", in.BusinessID, err)
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return c, nil
}

// Overdue lists customers owing money whose oldest order is at least days old.
func (u *Usecase) Overdue(ctx context.Context, businessID string, days int) ([]domain.Overdue, error) {
	if businessID == "" {
		return nil, apperr.ErrMissingTenant
	}
	if days < 0 {
		return nil, apperr.Invalid("days must be a non-negative integer")
	}
	out, err := u.repo.ListOverdue(ctx, businessID, u.now().UTC(), days)
	if err != nil {
		log.Printf("customer: overdue business=%s days=%d: %v", businessID, days, err)
		return nil, fmt.Errorf("list overdue customers: %w", err)
	}
	return out, nil
}
