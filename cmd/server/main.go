package main

import (
	"context"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/netserve/catalog/internal/api/cron"
	v1 "github.com/netserve/catalog/internal/api/v1"
	"github.com/netserve/catalog/internal/cache"
	"github.com/netserve/catalog/internal/config"
	"github.com/netserve/catalog/internal/domain/category"
	"github.com/netserve/catalog/internal/domain/price"
	"github.com/netserve/catalog/internal/domain/product"
	"github.com/netserve/catalog/internal/domain/subscription"
	"github.com/netserve/catalog/internal/logger"
	"github.com/netserve/catalog/internal/postgres"
	redisClient "github.com/netserve/catalog/internal/redis"
	"github.com/netserve/catalog/internal/repository"
	"github.com/netserve/catalog/internal/rest"
	"github.com/netserve/catalog/internal/service"
	"github.com/netserve/catalog/internal/webhook"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.Provide(
			config.NewConfig,
			logger.NewLogger,
			newDB,
			newRedis,
			newCache,
			webhook.NewPublisher,
			repository.NewProductRepository,
			repository.NewPriceRepository,
			repository.NewSubscriptionRepository,
			repository.NewCategoryRepository,
			newServiceParams,
			newHandlers,
			rest.NewRouter,
		),
		fx.Invoke(
			initSentry,
			startServer,
		),
	).Run()
}

func newDB(cfg *config.Configuration, log *logger.Logger) (*sqlx.DB, error) {
	db, err := postgres.Connect(cfg.Postgres, log)
	if err != nil {
		return nil, err
	}
	if cfg.Postgres.AutoMigrate {
		if err := postgres.Migrate(cfg.Postgres, log); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// newRedis connects when a redis-backed cache is configured; otherwise the
// service runs without it.
func newRedis(cfg *config.Configuration, log *logger.Logger) *redisClient.Client {
	if !cfg.Cache.Enabled || cfg.Cache.Type != "redis" {
		return nil
	}
	client, err := redisClient.NewClient(cfg.Redis, log)
	if err != nil {
		log.Errorw("failed to connect to redis, falling back to in-memory cache", "error", err)
		return nil
	}
	return client
}

func newCache(cfg *config.Configuration, log *logger.Logger, rdb *redisClient.Client) cache.Cache {
	return cache.Initialize(cfg, log, rdb)
}

func newServiceParams(
	cfg *config.Configuration,
	log *logger.Logger,
	db *sqlx.DB,
	c cache.Cache,
	publisher webhook.Publisher,
	productRepo product.Repository,
	priceRepo price.Repository,
	subRepo subscription.Repository,
	categoryRepo category.Repository,
) service.ServiceParams {
	return service.ServiceParams{
		Logger:           log,
		Config:           cfg,
		DB:               db,
		Cache:            c,
		ProductRepo:      productRepo,
		PriceRepo:        priceRepo,
		SubRepo:          subRepo,
		CategoryRepo:     categoryRepo,
		WebhookPublisher: publisher,
	}
}

func newHandlers(params service.ServiceParams, log *logger.Logger) rest.Handlers {
	categoryService := service.NewCategoryService(params)
	productService := service.NewProductService(params)
	priceService := service.NewPriceService(params)
	subscriptionService := service.NewSubscriptionService(params)
	catalogService := service.NewCatalogService(params)
	dashboardService := service.NewDashboardService(params)

	return rest.Handlers{
		Category:         v1.NewCategoryHandler(categoryService, log),
		Product:          v1.NewProductHandler(productService, catalogService, log),
		Price:            v1.NewPriceHandler(priceService, log),
		Subscription:     v1.NewSubscriptionHandler(subscriptionService, catalogService, log),
		Dashboard:        v1.NewDashboardHandler(dashboardService, log),
		SubscriptionCron: cron.NewSubscriptionCronHandler(subscriptionService, log),
	}
}

func initSentry(cfg *config.Configuration, log *logger.Logger) {
	if !cfg.Sentry.Enabled {
		return
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.Sentry.DSN,
		Environment:      cfg.Sentry.Environment,
		TracesSampleRate: cfg.Sentry.SampleRate,
	})
	if err != nil {
		log.Errorw("failed to initialize sentry", "error", err)
	}
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	router *gin.Engine,
	log *logger.Logger,
) {
	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting server", "address", cfg.Server.Address)
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("server failed: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			sentry.Flush(2 * time.Second)
			return srv.Shutdown(shutdownCtx)
		},
	})
}
