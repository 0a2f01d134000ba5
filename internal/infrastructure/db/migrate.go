package db

import (
	"credit-backoffice/internal/domain/balance"
	"credit-backoffice/internal/domain/business"
	"credit-backoffice/internal/domain/customer"
	"credit-backoffice/internal/domain/order"
	"credit-backoffice/internal/domain/product"

	"gorm.io/gorm"
)

// Models lists every table the service reads or writes.
func Models() []any {
	return []any{
		&business.Business{},
		&customer.Customer{},
		&balance.CustomerBalance{},
		&product.Product{},
		&order.Order{},
		&order.OrderItem{},
	}
}

// Migrate creates or updates the tables. Meant for local and test databases;
// production schemas are managed outside the service.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
