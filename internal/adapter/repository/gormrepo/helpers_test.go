package gormrepo

import (
	"context"
	"testing"

	"credit-backoffice/internal/domain/business"
	"credit-backoffice/internal/domain/customer"
	"credit-backoffice/internal/domain/product"
	"credit-backoffice/internal/domain/uow"
	"credit-backoffice/internal/infrastructure/db"

	"gorm.io/gorm"
)

// newTestDB opens a private in-memory sqlite database with every table migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.OpenGorm(db.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

func seedBusiness(t *testing.T, gdb *gorm.DB, name string) *business.Business {
	t.Helper()
	b := &business.Business{Name: name}
	if err := NewBusinessRepository(gdb).Create(context.Background(), b); err != nil {
		t.Fatalf("seed business: %v", err)
	}
	return b
}

// seedCustomer creates the customer and its zero balance the same way the
// customer usecase does.
func seedCustomer(t *testing.T, gdb *gorm.DB, businessID, name string, limit float64) *customer.Customer {
	t.Helper()
	c := &customer.Customer{BusinessID: businessID, Name: name, CreditLimit: limit}
	err := NewGormUoW(gdb).WithinTx(context.Background(), func(r uow.Repos) error {
		if err := r.Customers.Create(context.Background(), c); err != nil {
			return err
		}
		_, err := r.Balances.Init(context.Background(), businessID, c.ID)
		return err
	})
	if err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return c
}

func seedProduct(t *testing.T, gdb *gorm.DB, businessID, name string, stock int, price float64) *product.Product {
	t.Helper()
	p := &product.Product{BusinessID: businessID, Name: name, Stock: stock, Price: price}
	if err := NewProductRepository(gdb).Create(context.Background(), p); err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}

func stockOf(t *testing.T, gdb *gorm.DB, businessID, productID string) int {
	t.Helper()
	ps, err := NewProductRepository(gdb).List(context.Background(), businessID, productID)
	if err != nil || len(ps) != 1 {
		t.Fatalf("load product %s: %v (rows=%d)", productID, err, len(ps))
	}
	return ps[0].Stock
}

func balanceOf(t *testing.T, gdb *gorm.DB, businessID, customerID string) float64 {
	t.Helper()
	b, err := NewBalanceRepository(gdb).Get(context.Background(), businessID, customerID)
	if err != nil {
		t.Fatalf("load balance %s: %v", customerID, err)
	}
	return b.Balance
}

func countRows(t *testing.T, gdb *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	if err := gdb.Table(table).Count(&n).Error; err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}
