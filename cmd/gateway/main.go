package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/indiabills/console/internal/cache"
	"github.com/indiabills/console/internal/config"
	"github.com/indiabills/console/internal/handler"
	"github.com/indiabills/console/internal/localstore"
	"github.com/indiabills/console/internal/middleware"
	"github.com/indiabills/console/internal/realtime"
	"github.com/indiabills/console/internal/service"
	"github.com/indiabills/console/internal/sse"
	"github.com/indiabills/console/internal/store"
	"github.com/indiabills/console/internal/utils"
	"github.com/indiabills/console/internal/validate"
	"github.com/indiabills/console/internal/worker"
	"github.com/indiabills/console/pkg/indiabills"
)

// main is the application entrypoint for the IndiaBills console gateway.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting indiabills console gateway")

	utils.SetJWTSecret(cfg.JWTSecret)

	// 3. Open local store (runs migrations)
	local, err := localstore.Open(cfg.LocalStore.Path)
	if err != nil {
		log.Error().Err(err).Msg("local store open failed")
		fmt.Fprintf(os.Stderr, "local store open failed: %v\n", err)
		os.Exit(1)
	}
	defer local.Close()
	log.Info().Str("path", cfg.LocalStore.Path).Msg("local store ready")

	// 3a. Connect to Redis. The catalog cache is best-effort, so a
	// missing Redis degrades to direct upstream reads instead of
	// aborting startup.
	var catalogCache *cache.CatalogCache
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("redis connection failed - catalog cache disabled")
	} else {
		defer redisClient.Close()
		catalogCache = cache.NewCatalogCache(redisClient, cfg.Redis.TTL)
		log.Info().Msg("redis connected successfully")
	}

	// 4. Session service doubles as the API client's token provider.
	sessions := service.NewSessionService(local, cfg.ConsolePassHash)
	api := indiabills.NewClient(indiabills.Config{
		BaseURL: cfg.Upstream.BaseURL,
		Timeout: cfg.Upstream.Timeout,
		Tokens:  sessions,
	})
	sessions.SetAPI(api)

	// 5. State store, event bus, SSE hub
	state := store.New()
	bus := realtime.NewBus()
	hub := sse.NewHub()
	channel := realtime.NewChannel(cfg.Realtime, bus)

	// 6. Initialize services
	validator := validate.New()
	catalogSvc := service.NewCatalogService(api, catalogCache, local)
	cartSvc := service.NewCartService(api, state)
	checkoutSvc := service.NewCheckoutService(api, state, local, cfg.Checkout)
	customerSvc := service.NewCustomerService(api, state, validator)
	notificationSvc := service.NewNotificationService(bus, sessions, state, hub)

	// 7. Initialize handlers
	handlers := &Handlers{
		Health:       handler.NewHealthHandler(hub),
		Auth:         handler.NewAuthHandler(sessions),
		Catalog:      handler.NewCatalogHandler(catalogSvc),
		Cart:         handler.NewCartHandler(cartSvc),
		Checkout:     handler.NewCheckoutHandler(checkoutSvc),
		Customer:     handler.NewCustomerHandler(customerSvc),
		Order:        handler.NewOrderHandler(api),
		Notification: handler.NewNotificationHandler(notificationSvc),
		SSE:          handler.NewSSEHandler(hub),
		Prefs:        handler.NewPrefsHandler(local),
	}

	// 8. Initialize middleware
	jwtMw := middleware.NewJWTMiddleware()

	// 9. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, jwtMw)

	// 10. Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 11. Start realtime channel and workers
	go channel.Run(ctx)
	go notificationSvc.Run(ctx)
	go worker.NewPaymentRetryWorker(checkoutSvc, local, cfg.Worker.PaymentRetryInterval).Start(ctx)
	go worker.NewCatalogRefreshWorker(catalogSvc, cfg.Worker.CatalogRefreshInterval).Start(ctx)

	// 12. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 13. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 14. Cancel context to stop channel and workers
	cancel()

	// 15. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health       *handler.HealthHandler
	Auth         *handler.AuthHandler
	Catalog      *handler.CatalogHandler
	Cart         *handler.CartHandler
	Checkout     *handler.CheckoutHandler
	Customer     *handler.CustomerHandler
	Order        *handler.OrderHandler
	Notification *handler.NotificationHandler
	SSE          *handler.SSEHandler
	Prefs        *handler.PrefsHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, jwtMiddleware *middleware.JWTMiddleware) {
	router.GET("/v1/health", handlers.Health.GetHealth)
	router.POST("/v1/auth/login", handlers.Auth.Login)

	// EventSource cannot set headers; the stream validates its token
	// from the query string itself.
	router.GET("/v1/notifications/stream", handlers.SSE.Stream)

	v1 := router.Group("/v1")
	v1.Use(jwtMiddleware.Handle())
	{
		v1.POST("/auth/logout", handlers.Auth.Logout)
		v1.GET("/session", handlers.Auth.Session)

		// Catalog
		v1.GET("/products", handlers.Catalog.GetProducts)
		v1.GET("/products/:id", handlers.Catalog.GetProduct)
		v1.GET("/products/:id/batches", handlers.Catalog.GetBatches)
		v1.GET("/categories", handlers.Catalog.GetCategories)
		v1.GET("/offers", handlers.Catalog.GetOffers)
		v1.GET("/suppliers", handlers.Catalog.GetSuppliers)
		v1.GET("/warehouses", handlers.Catalog.GetWarehouses)

		// Selections / cart
		v1.GET("/selections", handlers.Cart.GetSelections)
		v1.POST("/selections", handlers.Cart.Select)
		v1.POST("/selections/:id/increment", handlers.Cart.Increment)
		v1.POST("/selections/:id/decrement", handlers.Cart.Decrement)
		v1.DELETE("/selections/:id", handlers.Cart.Remove)
		v1.POST("/cart/submit", handlers.Cart.Submit)

		// Checkout
		v1.POST("/checkout/begin", handlers.Checkout.Begin)
		v1.POST("/checkout/addresses", handlers.Checkout.SelectAddresses)
		v1.POST("/checkout/back", handlers.Checkout.Back)
		v1.POST("/checkout/place-order", handlers.Checkout.PlaceOrder)

		// Orders
		v1.GET("/orders", handlers.Order.List)
		v1.GET("/orders/:id", handlers.Order.Get)

		// Customers
		v1.POST("/customers", handlers.Customer.Create)
		v1.GET("/customers", handlers.Customer.List)
		v1.GET("/customers/:id", handlers.Customer.Get)
		v1.GET("/customers/:id/addresses", handlers.Customer.Addresses)
		v1.POST("/customers/:id/addresses", handlers.Customer.CreateAddress)
		v1.GET("/customers/:id/subscriptions", handlers.Customer.Subscriptions)

		// Notifications
		v1.GET("/notifications", handlers.Notification.List)
		v1.DELETE("/notifications/:id", handlers.Notification.Dismiss)

		// Preferences
		v1.GET("/prefs/:key", handlers.Prefs.Get)
		v1.PUT("/prefs/:key", handlers.Prefs.Put)
	}
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
