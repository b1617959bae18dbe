package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/11930018-user/Backend/internal/config"
	"github.com/11930018-user/Backend/internal/database"
	"github.com/11930018-user/Backend/internal/handler"
	"github.com/11930018-user/Backend/internal/queue"
	"github.com/11930018-user/Backend/internal/repository"
	"github.com/11930018-user/Backend/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("schema bootstrap failed: %v", err)
	}
	cancel()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, cache and rate limiting disabled")
	}

	menuItems := repository.NewMenuItemRepo(db)
	employees := repository.NewEmployeeRepo(db)
	tables := repository.NewTableRepo(db)
	orders := repository.NewOrderRepo(db)
	onlineOrders := repository.NewOnlineOrderRepo(db)

	e := echo.New()
	e.HideBanner = true

	router.Register(e, router.Handlers{
		Auth:        handler.NewAuthHandler(cfg, employees),
		MenuItems:   handler.NewMenuItemHandler(menuItems),
		Employees:   handler.NewEmployeeHandler(cfg, employees),
		Tables:      handler.NewTableHandler(tables),
		Orders:      handler.NewOrderHandler(orders, tables),
		OnlineOrder: handler.NewOnlineOrderHandler(onlineOrders),
	}, rdb)

	// Background consumer writes placed orders to logs/orders.log. It runs
	// its own reconnect loop and never stops the server.
	go func() {
		if err := queue.StartOrderConsumer(); err != nil {
			log.Printf("order consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
