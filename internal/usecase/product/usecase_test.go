package product

import (
	"context"
	"errors"
	"testing"

	"credit-backoffice/internal/domain/apperr"
	domain "credit-backoffice/internal/domain/product"
	"credit-backoffice/internal/testutil/productmock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }
func floatp(v float64) *float64 { return &v }

func TestList_FilterPassedThrough(t *testing.T) {
	var gotBiz, gotID string
	uc := NewUsecase(&productmock.Repo{
		ListFn: func(_ context.Context, businessID, productID string) ([]domain.Product, error) {
			gotBiz, gotID = businessID, productID
			return []domain.Product{{ID: "p1", BusinessID: businessID}}, nil
		},
	})
	out, err := uc.List(context.Background(), "biz", "p1")
	require.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, "biz", gotBiz)
	assert.Equal(t, "p1", gotID)
}

func TestList_MissingTenant(t *testing.T) {
	uc := NewUsecase(&productmock.Repo{})
	_, err := uc.List(context.Background(), "", "")
	assert.ErrorIs(t, err, apperr.ErrMissingTenant)
}

func TestCreate_Validation(t *testing.T) {
	cases := []struct {
		name string
		in   CreateInput
		msg  string
	}{
		{"no name", CreateInput{BusinessID: "b", Stock: intp(1), Price: floatp(1)}, "Missing product fields"},
		{"no stock", CreateInput{BusinessID: "b", Name: "x", Price: floatp(1)}, "Missing product fields"},
		{"no price", CreateInput{BusinessID: "b", Name: "x", Stock: intp(1)}, "Missing product fields"},
		{"negative stock", CreateInput{BusinessID: "b", Name: "x", Stock: intp(-1), Price: floatp(1)}, "stock cannot be negative"},
		{"negative price", CreateInput{BusinessID: "b", Name: "x", Stock: intp(1), Price: floatp(-0.01)}, "price cannot be negative"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			uc := NewUsecase(&productmock.Repo{
				CreateFn: func(context.Context, *domain.Product) error { called = true; return nil },
			})
			_, err := uc.Create(context.Background(), tc.in)
			require.ErrorIs(t, err, apperr.ErrInvalidRequest)
			assert.Equal(t, tc.msg, err.Error())
			assert.False(t, called)
		})
	}
}

func TestCreate_ZeroStockAndPriceAllowed(t *testing.T) {
	uc := NewUsecase(&productmock.Repo{})
	p, err := uc.Create(context.Background(), CreateInput{BusinessID: "b", Name: "free sample", Stock: intp(0), Price: floatp(0)})
	require.NoError(t, err)
	assert.Equal(t, "b", p.BusinessID)
	assert.Zero(t, p.Stock)
}

func TestCreate_StoreError(t *testing.T) {
	uc := NewUsecase(&productmock.Repo{
		CreateFn: func(context.Context, *domain.Product) error { return apperr.ErrInvalidReference },
	})
	_, err := uc.Create(context.Background(), CreateInput{BusinessID: "ghost", Name: "x", Stock: intp(1), Price: floatp(1)})
	assert.True(t, errors.Is(err, apperr.ErrInvalidReference))
}
