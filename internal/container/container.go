package container

import (
	"context"

	"bistro-api/internal/config"
	"bistro-api/internal/metrics"
	"bistro-api/internal/repository"
	"bistro-api/internal/service"
	"bistro-api/pkg/database"
	"bistro-api/pkg/logger"
	"bistro-api/pkg/payment"
	"bistro-api/pkg/redis"
	"github.com/prometheus/client_golang/prometheus"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          *database.PostgresDB
	RedisClient *redis.Client
	Registry    *prometheus.Registry
	Collector   *metrics.Collector

	Users    service.UserService
	Menu     service.MenuService
	Carts    service.CartService
	Checkout service.CheckoutService
	Payments service.PaymentQueryService
	Stats    service.StatsService
	Tokens   service.TokenService
	Provider service.PaymentProvider

	Reviews repository.ReviewRepository
}

// New creates a new dependency injection container. The database is
// mandatory: a broken store aborts startup. Redis is optional and its
// absence only disables caching.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Container, error) {
	db, err := database.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		client, err := redis.NewClient(cfg.RedisURL, log.Logger)
		if err != nil {
			log.WithError(err).Warn("Failed to initialize Redis client, proceeding without caching")
		} else {
			redisClient = client
			log.Info("Redis client initialized successfully")
		}
	} else {
		log.Info("Redis URL not configured, proceeding without caching")
	}

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	var cache *service.CacheService
	if redisClient != nil {
		cache = service.NewCacheService(redisClient, collector, log.Logger)
	}

	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	cartRepo := repository.NewCartRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	return &Container{
		Config:      cfg,
		Logger:      log,
		DB:          db,
		RedisClient: redisClient,
		Registry:    registry,
		Collector:   collector,

		Users:    service.NewUserService(userRepo, log),
		Menu:     service.NewMenuService(menuRepo, cache, log),
		Carts:    service.NewCartService(cartRepo, log),
		Checkout: service.NewCheckoutService(paymentRepo, cartRepo, cache, log),
		Payments: service.NewPaymentQueryService(paymentRepo),
		Stats:    service.NewStatsService(userRepo, menuRepo, paymentRepo, cache, log),
		Tokens:   service.NewTokenService(cfg.AccessTokenSecret, cfg.TokenTTL),
		Provider: payment.NewClient(cfg.PaymentSecretKey, cfg.PaymentAPIBase, log),

		Reviews: reviewRepo,
	}, nil
}
