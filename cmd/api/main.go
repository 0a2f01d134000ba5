package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "credit-backoffice/internal/adapter/http"
	"credit-backoffice/internal/adapter/repository/gormrepo"
	"credit-backoffice/internal/config"
	"credit-backoffice/internal/infrastructure/cache"
	"credit-backoffice/internal/infrastructure/db"
	"credit-backoffice/internal/usecase/balance"
	"credit-backoffice/internal/usecase/business"
	"credit-backoffice/internal/usecase/customer"
	"credit-backoffice/internal/usecase/order"
	"credit-backoffice/internal/usecase/product"
	"credit-backoffice/internal/usecase/purchase"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.Handle(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	if cfg.DBAutoMigrate {
		if err := db.Migrate(gdb); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		log.Println("db: schema migrated")
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	if rdb == nil {
		log.Println("redis: REDIS_ADDR not set, Idempotency-Key disabled")
	}

	// repositories
	businesses := gormrepo.NewBusinessRepository(gdb)
	customers := gormrepo.NewCustomerRepository(gdb)
	balances := gormrepo.NewBalanceRepository(gdb)
	products := gormrepo.NewProductRepository(gdb)
	orders := gormrepo.NewOrderRepository(gdb)
	uow := gormrepo.NewGormUoW(gdb)

	h := httpadp.Handlers{
		Health:     httpadp.NewHandler(businesses),
		Businesses: httpadp.NewBusinessHandler(business.NewUsecase(businesses)),
		Customers:  httpadp.NewCustomerHandler(customer.NewUsecase(customers, uow)),
		Balances:   httpadp.NewBalanceHandler(balance.NewUsecase(balances)),
		Products:   httpadp.NewProductHandler(product.NewUsecase(products)),
		Purchases:  httpadp.NewPurchaseHandler(purchase.NewUsecase(gormrepo.NewProcedures(uow))),
		Orders:     httpadp.NewOrderHandler(order.NewUsecase(orders)),
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	httpadp.Register(e, h, httpadp.RouteOptions{
		DefaultBusinessID: cfg.DefaultBusinessID,
		Redis:             rdb,
		IdempotencyTTL:    time.Duration(cfg.IdempTTLSecs) * time.Second,
	})

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s (db=%s)", addr, cfg.DBDriver)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
