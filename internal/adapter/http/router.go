package http

import (
	"time"

	"credit-backoffice/internal/adapter/middleware"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

type Handlers struct {
	Health     *Handler
	Businesses *BusinessHandler
	Customers  *CustomerHandler
	Balances   *BalanceHandler
	Products   *ProductHandler
	Purchases  *PurchaseHandler
	Orders     *OrderHandler
}

type RouteOptions struct {
	DefaultBusinessID string
	// Redis nil disables Idempotency-Key handling.
	Redis          *redis.Client
	IdempotencyTTL time.Duration
}

func Register(e *echo.Echo, h Handlers, opt RouteOptions) {
	idemp := middleware.Idempotency(opt.Redis, opt.IdempotencyTTL)
	tenant := []echo.MiddlewareFunc{middleware.Tenant(opt.DefaultBusinessID), idemp}

	e.GET("/health", h.Health.Health)

	e.GET("/businesses", h.Businesses.List, tenant...)
	e.POST("/businesses", h.Businesses.Create, idemp)

	e.GET("/customers", h.Customers.List, tenant...)
	e.POST("/customers", h.Customers.Create, tenant...)
	e.GET("/customers/overdue", h.Customers.Overdue, tenant...)

	e.GET("/customer-balances", h.Balances.Get, tenant...)
	e.POST("/customer-balances", h.Balances.Adjust, tenant...)

	e.GET("/products", h.Products.List, tenant...)
	e.POST("/products", h.Products.Create, tenant...)

	e.POST("/purchase", h.Purchases.Purchase, tenant...)

	e.GET("/orders", h.Orders.List, tenant...)
}
