package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/api"
	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/cache"
	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/aaravmahajanofficial/storefront/internal/health"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/tracing"
	"github.com/aaravmahajanofficial/storefront/pkg/payment"
	"github.com/aaravmahajanofficial/storefront/pkg/sendgrid"
	stripeClient "github.com/aaravmahajanofficial/storefront/pkg/stripe"
)

// @title						Storefront API
// @version					1.0
// @description				Catalog, cart, checkout, orders and admin console of a clothing storefront.
// @BasePath					/api/v1
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	shutdownTracing, err := tracing.Setup(context.Background(), cfg.Tracing, cfg.Env)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
	err = repository.Migrate(migrateCtx, repos.DB)
	cancelMigrate()
	if err != nil {
		slog.Error("❌ Error applying the schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	productCache := cache.NewRedisCache(redisClient, &cfg.Cache)
	defer productCache.Close()

	rateLimitRepo := repository.NewRateLimitRepo(redisClient, cfg)
	sessionRepo := repository.NewSessionRepo(redisClient)

	// Payment link generator
	endpoints := &health.Endpoints{}

	var links payment.LinkGenerator
	switch cfg.Payment.Gateway {
	case payment.GatewayStripe:
		client := stripeClient.NewStripeClient(cfg.Payment.StripeAPIKey)
		endpoints.StripeClient = client
		links = payment.NewStripeGenerator(client, cfg.Payment.Currency, cfg.Payment.SuccessURL, cfg.Payment.CancelURL)
	case payment.GatewayRedirect:
		links = payment.NewRedirectGenerator(cfg.Payment.BaseURL, cfg.Payment.RefPrefix)
	default:
		slog.Error("❌ Unknown payment gateway", slog.String("gateway", cfg.Payment.Gateway))
		os.Exit(1)
	}

	var notifier service.OrderNotifier
	if cfg.SendGrid.APIKey != "" {
		notifier = service.NewOrderNotifier(sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName))
	} else {
		slog.Warn("SendGrid API key not set, order confirmations are disabled")
	}

	jwtKey := []byte(cfg.Security.JWTKey)

	healthHandler, err := health.NewHealthHandler(cfg, endpoints)
	if err != nil {
		slog.Error("❌ Error setting up health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	router := api.NewRouter(api.Deps{
		Services: api.Services{
			Users:    service.NewUserService(repos.User, rateLimitRepo, sessionRepo, jwtKey, cfg.Security.TokenTTL),
			Products: service.NewProductService(repos.Product, productCache, cfg.Cache.DefaultTTL),
			Carts:    service.NewCartService(repos.Cart, repos.Product, repos.Order, repos.User, links, notifier),
			Orders:   service.NewOrderService(repos.Order),
			Admin:    service.NewAdminService(repos.Product, repos.User, repos.Order, productCache),
		},
		Auth:   middleware.NewAuthMiddleware(jwtKey, sessionRepo),
		Admins: repos.User,
		Health: healthHandler.Handler(),
	})

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("gateway", cfg.Payment.Gateway))

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
	}
}
