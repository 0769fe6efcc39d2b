package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vibecommerce/storefront/internal/assistant"
	"github.com/vibecommerce/storefront/internal/config"
	"github.com/vibecommerce/storefront/internal/database"
	"github.com/vibecommerce/storefront/internal/handler"
	"github.com/vibecommerce/storefront/internal/queue"
	"github.com/vibecommerce/storefront/internal/repository"
	"github.com/vibecommerce/storefront/internal/router"
	"github.com/vibecommerce/storefront/internal/service"
	"github.com/vibecommerce/storefront/internal/store"
)

func main() {
	cfg := config.Load()

	var (
		catalog service.Catalog
		carts   service.CartStore
		orders  service.OrderStore
		users   service.UserStore
	)
	if cfg.DBHost != "" {
		db, err := database.Open(database.Config{
			User: cfg.DBUser,
			Pass: cfg.DBPass,
			Host: cfg.DBHost,
			Port: cfg.DBPort,
			Name: cfg.DBName,
		})
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := database.EnsureSchema(ctx, db); err != nil {
			cancel()
			log.Fatalf("database schema: %v", err)
		}
		cancel()
		catalog = repository.NewProductRepo(db)
		carts = repository.NewCartRepo(db)
		orders = repository.NewOrderRepo(db)
		users = repository.NewUserRepo(db)
		log.Printf("using mysql stores at %s:%s/%s", cfg.DBHost, cfg.DBPort, cfg.DBName)
	} else {
		memCatalog := store.NewMemoryCatalog()
		memCatalog.SeedDefaults()
		catalog = memCatalog
		carts = store.NewMemoryCartStore()
		orders = store.NewMemoryOrderStore()
		users = store.NewMemoryUserStore()
		log.Printf("DB_HOST not set; using in-memory stores with the demo catalog")
	}

	cartSvc := service.NewCartService(carts, catalog)
	checkoutSvc := service.NewCheckoutService(carts, orders, cfg.TaxRate)
	checkoutSvc.Publish = queue.PublishOrderConfirmed

	oracle := assistant.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	sam := assistant.New(oracle, catalog, cfg.ChatTimeout)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unreachable; response cache and rate limiting disabled")
	}

	e := echo.New()
	router.Register(e, cfg, router.Handlers{
		Auth:     handler.NewAuthHandler(cfg, users),
		Products: handler.NewProductHandler(catalog),
		Admin:    handler.NewAdminProductHandler(catalog),
		Cart:     handler.NewCartHandler(cartSvc),
		Checkout: handler.NewCheckoutHandler(checkoutSvc),
		Chat:     handler.NewChatHandler(sam),
	}, rdb)

	// Background consumer that appends confirmed orders to logs/orders.log.
	go queue.StartOrderConsumer()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
