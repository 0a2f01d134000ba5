package business

import (
	"context"
	"errors"
	"testing"

	"credit-backoffice/internal/domain/apperr"
	domain "credit-backoffice/internal/domain/business"
	"credit-backoffice/internal/testutil/businessmock"
)

func TestList_RequiresTenant(t *testing.T) {
	called := false
	uc := NewUsecase(&businessmock.Repo{
		ListFn: func(context.Context) ([]domain.Business, error) {
			called = true
			return nil, nil
		},
	})
	if _, err := uc.List(context.Background(), ""); !errors.Is(err, apperr.ErrMissingTenant) {
		t.Fatalf("want ErrMissingTenant, got %v", err)
	}
	if called {
		t.Fatalf("store must not be called without a tenant")
	}
}

func TestList_Empty(t *testing.T) {
	uc := NewUsecase(&businessmock.Repo{})
	out, err := uc.List(context.Background(), "biz")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", out)
	}
}

func TestList_StoreError(t *testing.T) {
	boom := errors.New("conn refused")
	uc := NewUsecase(&businessmock.Repo{
		ListFn: func(context.Context) ([]domain.Business, error) { return nil, boom },
	})
	if _, err := uc.List(context.Background(), "biz"); !errors.Is(err, boom) {
		t.Fatalf("want wrapped store error, got %v", err)
	}
}

func TestGet(t *testing.T) {
	uc := NewUsecase(&businessmock.Repo{
		GetByIDFn: func(_ context.Context, id string) (*domain.Business, error) {
			if id == "b1" {
				return &domain.Business{ID: "b1", Name: "Acme"}, nil
			}
			return nil, domain.ErrNotFound
		},
	})

	b, err := uc.Get(context.Background(), "tenant", "b1")
	if err != nil || b == nil || b.Name != "Acme" {
		t.Fatalf("want Acme, got %#v err=%v", b, err)
	}

	b, err = uc.Get(context.Background(), "tenant", "missing")
	if err != nil || b != nil {
		t.Fatalf("unknown id should be (nil, nil), got %#v err=%v", b, err)
	}
}

func TestCreate(t *testing.T) {
	var saved *domain.Business
	uc := NewUsecase(&businessmock.Repo{
		CreateFn: func(_ context.Context, b *domain.Business) error {
			b.ID = "new-id"
			saved = b
			return nil
		},
	})

	if _, err := uc.Create(context.Background(), "  "); !errors.Is(err, apperr.ErrInvalidRequest) {
		t.Fatalf("blank name should be invalid, got %v", err)
	}
	if saved != nil {
		t.Fatalf("store must not be called for a blank name")
	}

	b, err := uc.Create(context.Background(), "Acme")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if b.ID != "new-id" || saved.Name != "Acme" {
		t.Fatalf("unexpected business %#v", b)
	}
}
