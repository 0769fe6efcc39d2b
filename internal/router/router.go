// Package router wires the storefront routes to their handlers and
// middleware.
package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/vibecommerce/storefront/internal/config"
	"github.com/vibecommerce/storefront/internal/handler"
	"github.com/vibecommerce/storefront/internal/middleware"
	"github.com/vibecommerce/storefront/internal/model"
)

// Handlers collects every handler the router mounts.
type Handlers struct {
	Auth     *handler.AuthHandler
	Products *handler.ProductHandler
	Admin    *handler.AdminProductHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
	Chat     *handler.ChatHandler
}

// Register mounts all routes. The shopper surface is unauthenticated (owner
// identity travels in the request, matching the UI contract); product
// administration requires a JWT with the ADMIN role. Redis, when reachable,
// adds a response cache on the catalog listing and a rate limit on chat.
func Register(e *echo.Echo, cfg config.Config, h Handlers, rdb *redis.Client) {
	e.Use(echomw.CORS())

	e.GET("/healthz", handler.Health)

	e.POST("/auth/register", h.Auth.Register)
	e.POST("/auth/login", h.Auth.Login)

	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	e.GET("/products", h.Products.List, cache)

	e.POST("/cart", h.Cart.Add)
	e.DELETE("/cart/:id", h.Cart.Remove)
	e.GET("/cart/:ownerId", h.Cart.View)

	e.POST("/checkout", h.Checkout.Settle)
	e.GET("/orders/:ownerId", h.Checkout.Orders)

	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	e.POST("/chat", h.Chat.Chat, limiter)

	admin := e.Group("/admin")
	admin.Use(middleware.JWTAuth(cfg.JWTSecret))
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	admin.POST("/products", h.Admin.Create)
	admin.PUT("/products/:id", h.Admin.Update)
	admin.DELETE("/products/:id", h.Admin.Delete)
}
