package uowmock

import (
	"context"
	"errors"
	"testing"

	"credit-backoffice/internal/domain/customer"
	"credit-backoffice/internal/domain/uow"
	"credit-backoffice/internal/testutil/balancemock"
	"credit-backoffice/internal/testutil/customermock"
)

func TestUoW_WithinTx_Happy(t *testing.T) {
	ctx := context.Background()

	custs := &customermock.Repo{}
	bals := &balancemock.Repo{}
	repos := uow.Repos{Customers: custs, Balances: bals}

	innerCalled := false
	m := &UoW{
		WithinTxFn: func(gotCtx context.Context, fn func(r uow.Repos) error) error {
			if gotCtx != ctx {
				t.Fatalf("WithinTx: ctx mismatch")
			}
			return fn(repos)
		},
	}

	err := m.WithinTx(ctx, func(r uow.Repos) error {
		innerCalled = true
		if r.Customers != custs || r.Balances != bals {
			t.Fatalf("WithinTx: repos not forwarded correctly")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithinTx: unexpected err: %v", err)
	}
	if !innerCalled {
		t.Fatalf("WithinTx: inner fn not called")
	}
}

func TestUoW_Default_Unimplemented(t *testing.T) {
	ctx := context.Background()
	m := &UoW{}
	if err := m.WithinTx(ctx, func(uow.Repos) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinTx default: want errUnimplemented, got %v", err)
	}
	if err := m.WithinCustomerTx(ctx, "b", "c", func(uow.Repos, *customer.Customer) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinCustomerTx default: want errUnimplemented, got %v", err)
	}
}

func TestPassthrough_WithinCustomerTx_LoadsCustomer(t *testing.T) {
	ctx := context.Background()
	want := &customer.Customer{ID: "c-1", BusinessID: "b-1", CreditLimit: 100}
	repos := uow.Repos{Customers: &customermock.Repo{
		GetByIDForUpdateFn: func(_ context.Context, businessID, customerID string) (*customer.Customer, error) {
			if businessID != "b-1" || customerID != "c-1" {
				t.Fatalf("unexpected ids %s/%s", businessID, customerID)
			}
			return want, nil
		},
	}}

	var got *customer.Customer
	err := Passthrough(repos).WithinCustomerTx(ctx, "b-1", "c-1", func(_ uow.Repos, c *customer.Customer) error {
		got = c
		return nil
	})
	if err != nil {
		t.Fatalf("WithinCustomerTx: %v", err)
	}
	if got != want {
		t.Fatalf("customer not forwarded: %+v", got)
	}
}

func TestPassthrough_WithinCustomerTx_UnknownCustomer(t *testing.T) {
	repos := uow.Repos{Customers: &customermock.Repo{}}
	called := false
	err := Passthrough(repos).WithinCustomerTx(context.Background(), "b", "missing", func(uow.Repos, *customer.Customer) error {
		called = true
		return nil
	})
	if !errors.Is(err, customer.ErrNotFound) {
		t.Fatalf("want customer.ErrNotFound, got %v", err)
	}
	if called {
		t.Fatal("body must not run when the customer is missing")
	}
}

func TestUoW_Reset(t *testing.T) {
	m := Passthrough(uow.Repos{})
	m.Reset()
	if m.WithinTxFn != nil || m.WithinCustomerTxFn != nil {
		t.Fatalf("Reset should clear function fields")
	}
}
