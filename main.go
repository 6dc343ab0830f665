package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"bistro-api/internal/config"
	"bistro-api/internal/container"
	"bistro-api/internal/handler"
	"bistro-api/internal/metrics"
	"bistro-api/internal/middleware"
	"bistro-api/pkg/database"
	"bistro-api/pkg/logger"
	"bistro-api/pkg/redis"
)

// Resources holds all resources that need cleanup
type Resources struct {
	db          *database.PostgresDB
	redisClient *redis.Client
	rateLimiter *middleware.RateLimiter
	server      *http.Server
	log         *logger.Logger
	mu          sync.Mutex
	closed      bool
}

// Cleanup gracefully closes all resources
func (r *Resources) Cleanup(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true

	var errs []error

	r.log.Info("Starting graceful shutdown...")

	// Shutdown HTTP server first to stop accepting new requests
	if r.server != nil {
		if err := r.server.Shutdown(ctx); err != nil {
			r.log.WithError(err).Error("Failed to shutdown HTTP server")
			errs = append(errs, fmt.Errorf("HTTP server shutdown: %w", err))
		} else {
			r.log.Info("HTTP server shutdown complete")
		}
	}

	if r.rateLimiter != nil {
		r.rateLimiter.Stop()
	}

	if r.redisClient != nil {
		if err := r.redisClient.Close(); err != nil {
			r.log.WithError(err).Error("Failed to close Redis connection")
			errs = append(errs, fmt.Errorf("redis close: %w", err))
		} else {
			r.log.Info("Redis connection closed")
		}
	}

	if r.db != nil {
		r.db.Close()
		r.log.Info("Database connection pool closed")
	}

	if len(errs) > 0 {
		return fmt.Errorf("cleanup completed with %d errors: %v", len(errs), errs)
	}

	r.log.Info("Graceful shutdown completed successfully")
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log.WithFields(map[string]interface{}{
		"port":        cfg.Port,
		"log_level":   cfg.LogLevel,
		"environment": cfg.Environment,
	}).Info("Starting bistro-api server")

	ctx := context.Background()

	deps, err := container.New(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize dependencies")
	}

	rateLimiter := middleware.NewRateLimiter(middleware.DefaultRateLimiterConfig(), log)

	router := setupRouter(deps, rateLimiter)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   60 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	resources := &Resources{
		db:          deps.DB,
		redisClient: deps.RedisClient,
		rateLimiter: rateLimiter,
		server:      server,
		log:         log,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	defer func() {
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := resources.Cleanup(cleanupCtx); err != nil {
			log.WithError(err).Error("Cleanup completed with errors")
		}
	}()

	serverErrChan := make(chan error, 1)
	go func() {
		log.Info("Server starting on port " + cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Server error occurred")
			serverErrChan <- err
		}
	}()

	select {
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("Received shutdown signal")
	case err := <-serverErrChan:
		log.WithError(err).Error("Server failed, initiating shutdown")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
	defer cancel()

	if err := resources.Cleanup(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown completed with errors")
		os.Exit(1)
	}

	log.Info("Application shutdown complete")
}

// setupRouter configures and returns the HTTP router
func setupRouter(deps *container.Container, rateLimiter *middleware.RateLimiter) *chi.Mux {
	cfg := deps.Config
	log := deps.Logger

	r := chi.NewRouter()

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowedOrigins = cfg.AllowedOrigins

	r.Use(middleware.CORS(corsConfig, log))
	r.Use(middleware.RequestID(log))
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Compress(5))
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(deps.Collector.Instrument)

	healthHandler := handler.NewHealthHandler(deps.DB, deps.RedisClient, log)
	authHandler := handler.NewAuthHandler(deps.Tokens, deps.Collector, log)
	userHandler := handler.NewUserHandler(deps.Users, log)
	menuHandler := handler.NewMenuHandler(deps.Menu, log)
	reviewHandler := handler.NewReviewHandler(deps.Reviews, log)
	cartHandler := handler.NewCartHandler(deps.Carts, log)
	paymentHandler := handler.NewPaymentHandler(deps.Provider, deps.Checkout, deps.Payments, deps.Collector, log)
	statsHandler := handler.NewStatsHandler(deps.Stats, log)

	// Operational endpoints (no auth required)
	r.Get("/health", healthHandler.Check)
	r.Method(http.MethodGet, "/metrics", metrics.Handler(deps.Registry))

	// Public API routes. Token issuance is unauthenticated, so it carries a
	// per-client rate limit.
	r.With(rateLimiter.Middleware()).Post("/jwt", authHandler.IssueToken)
	r.Post("/users", userHandler.Register)
	r.Get("/menu", menuHandler.List)
	r.Get("/reviews", reviewHandler.List)

	// Cart writes are unauthenticated; only the cart read is identity-gated,
	// since listing exposes another user's data while add/remove do not.
	r.Post("/carts", cartHandler.Add)
	r.Delete("/carts/{id}", cartHandler.Remove)

	// Protected routes (require a valid token)
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(deps.Tokens, log))

		r.Get("/users/admin/{email}", userHandler.CheckAdmin)

		r.Get("/carts", cartHandler.List)

		r.Post("/create-payment-intent", paymentHandler.CreateIntent)
		r.Post("/payments", paymentHandler.Checkout)
		r.Get("/payments", paymentHandler.List)

		// Admin-only routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(deps.Users, log))

			r.Get("/users", userHandler.List)
			r.Patch("/users/admin/{id}", userHandler.Promote)

			r.Post("/menu", menuHandler.Create)
			r.Delete("/menu/{id}", menuHandler.Delete)

			r.Get("/admin-stats", statsHandler.Summary)
			r.Get("/order-stats", statsHandler.OrderRollup)
		})
	})

	// 404 handler
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"type":"not_found","message":"Endpoint not found"}}`))
	})

	log.Info("Router configured successfully")
	return r
}
