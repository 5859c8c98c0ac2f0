package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	httpadapter "github.com/amassarte/pizzeria-backend/internal/adapters/http"
	"github.com/amassarte/pizzeria-backend/internal/adapters/jsonstore"
	redisadapter "github.com/amassarte/pizzeria-backend/internal/adapters/redis"
	"github.com/amassarte/pizzeria-backend/internal/adapters/sheets"
	"github.com/amassarte/pizzeria-backend/internal/config"
	"github.com/amassarte/pizzeria-backend/internal/core"
	"github.com/amassarte/pizzeria-backend/internal/events"
	"github.com/amassarte/pizzeria-backend/internal/middleware"
	"github.com/amassarte/pizzeria-backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to Redis
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	if cfg.RedisPassword != "" {
		redisOpts.Password = cfg.RedisPassword
	}

	rdb := redis.NewClient(redisOpts)
	defer rdb.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("✓ Redis connection established")

	// Configuration document store
	store := jsonstore.NewStore(cfg.DataFile)

	// Order ledger: Google Sheets when configured, in-memory otherwise
	var ledger core.OrderLedger
	if cfg.GoogleSheetsID != "" {
		sheetLedger, err := sheets.NewLedger(ctx, []byte(cfg.GoogleCredentials), cfg.GoogleSheetsID)
		if err != nil {
			log.Fatalf("Failed to initialize sheets ledger: %v", err)
		}
		ledger = sheetLedger
		log.Println("✓ Google Sheets ledger initialized")
	} else {
		ledger = sheets.NewMemoryLedger()
	}

	// Event bus for the admin live feed
	eventBus := events.NewEventBus()

	// Services
	sessionStore := redisadapter.NewRepository(rdb)
	authService := service.NewAuthService(sessionStore, cfg.JWTSecret, cfg.AdminPassword, cfg.AdminPasswordHash)

	orderService, err := service.NewOrderService(
		ledger,
		store,
		eventBus,
		cfg.Timezone,
		time.Duration(cfg.UpstreamTimeoutSeconds)*time.Second,
	)
	if err != nil {
		log.Fatalf("Failed to initialize order service: %v", err)
	}

	// HTTP handlers
	storefront := httpadapter.NewHandler(store, orderService)
	admin := httpadapter.NewAdminHandler(store, orderService, authService, eventBus)

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Pizzeria API",
		ServerHeader: "Fiber",
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())

	// Health check route
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"project": "pizzeria-backend",
		})
	})

	// Public storefront routes
	app.Get("/api/config", storefront.GetConfig)
	app.Post("/api/quote", storefront.Quote)
	app.Post("/api/order", storefront.SubmitOrder)
	app.Get("/api/orders/:id/track", storefront.TrackOrder)

	// Admin auth routes
	app.Post("/api/login", admin.Login)
	app.Post("/api/logout", admin.Logout)

	// Admin routes (session required)
	requireAdmin := middleware.RequireAdmin(authService)
	app.Get("/api/check-auth", requireAdmin, admin.CheckAuth)
	app.Post("/api/config", requireAdmin, admin.UpdateConfig)
	app.Get("/api/orders", requireAdmin, admin.ListOrders)
	app.Post("/api/orders/:id/status", requireAdmin, admin.UpdateOrderStatus)
	app.Get("/api/orders/:id/receipt", requireAdmin, admin.Receipt)
	app.Get("/api/admin/events", requireAdmin, admin.SSEEvents)

	log.Println("✓ Routes registered:")
	log.Println("  GET  /api/config - store configuration")
	log.Println("  POST /api/quote - cart evaluation")
	log.Println("  POST /api/order - order submission")
	log.Println("  GET  /api/orders/:id/track - public order tracking")
	log.Println("  POST /api/login - admin login")
	log.Println("  GET  /api/admin/events - admin event stream")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.AppPort)
	log.Printf("🚀 Server starting on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
