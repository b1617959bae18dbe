// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/11930018-user/Backend/internal/config"
	"github.com/11930018-user/Backend/internal/handler"
	"github.com/11930018-user/Backend/internal/middleware"
)

// Handlers bundles every handler the API mounts. All fields are required.
type Handlers struct {
	Auth        *handler.AuthHandler
	MenuItems   *handler.MenuItemHandler
	Employees   *handler.EmployeeHandler
	Tables      *handler.TableHandler
	Orders      *handler.OrderHandler
	OnlineOrder *handler.OnlineOrderHandler
}

// Register mounts the full route table. Every API route lives under /api
// and passes through the Redis token bucket; the menu listing is
// additionally fronted by the response cache. Both middlewares become
// no-ops when rdb is nil.
func Register(e *echo.Echo, h Handlers, rdb *redis.Client) {
	e.GET("/", handler.Root)
	e.GET("/healthz", handler.Health)

	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	api := e.Group("/api", limiter)

	api.POST("/auth/login", h.Auth.Login)

	// ---- Menu ----
	api.GET("/menu_items", h.MenuItems.List, cache)
	api.POST("/menu_items", h.MenuItems.Create)
	api.PUT("/menu_items/:id", h.MenuItems.Update)
	api.DELETE("/menu_items/:id", h.MenuItems.Delete)

	// ---- Employees ----
	api.GET("/employees", h.Employees.List)
	api.POST("/employees", h.Employees.Create)

	// ---- Tables ----
	api.GET("/restaurant_tables", h.Tables.List)
	api.POST("/restaurant_tables", h.Tables.Create)
	api.PUT("/restaurant_tables/:id", h.Tables.Update)
	api.DELETE("/restaurant_tables/:id", h.Tables.Delete)

	// ---- Dine-in orders ----
	api.GET("/orders", h.Orders.List)
	api.POST("/orders", h.Orders.Create)
	api.GET("/orders/:id/items", h.Orders.Items)
	api.PUT("/orders/:id", h.Orders.UpdateStatus)
	api.DELETE("/orders/:id", h.Orders.Delete)

	// ---- Online orders ----
	api.GET("/online_orders", h.OnlineOrder.List)
	api.POST("/online_orders", h.OnlineOrder.Create)
	api.GET("/online_orders/:id/items", h.OnlineOrder.Items)
	api.PUT("/online_orders/:id/items", h.OnlineOrder.ReplaceItems)
	api.PUT("/online_orders/:id", h.OnlineOrder.UpdateStatus)
	api.DELETE("/online_orders/:id", h.OnlineOrder.Delete)
	api.GET("/online_order_items", h.OnlineOrder.ListItems)
}
