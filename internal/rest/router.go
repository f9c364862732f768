package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/netserve/catalog/internal/api/cron"
	v1 "github.com/netserve/catalog/internal/api/v1"
	"github.com/netserve/catalog/internal/config"
	"github.com/netserve/catalog/internal/logger"
	"github.com/netserve/catalog/internal/rest/middleware"
)

// Handlers aggregates every HTTP handler wired into the router.
type Handlers struct {
	Category     *v1.CategoryHandler
	Product      *v1.ProductHandler
	Price        *v1.PriceHandler
	Subscription *v1.SubscriptionHandler
	Dashboard    *v1.DashboardHandler

	SubscriptionCron *cron.SubscriptionCronHandler
}

// NewRouter builds the gin engine with the full middleware chain and routes.
func NewRouter(handlers Handlers, cfg *config.Configuration, log *logger.Logger) *gin.Engine {
	gin.DefaultWriter = log.GetGinLogger()

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.SentryMiddleware(cfg),
		middleware.RequestIDMiddleware,
		middleware.ErrorHandlerMiddleware(log),
		middleware.LoggingMiddleware(log),
		middleware.AuthenticateMiddleware(cfg, log),
		middleware.SentryUserContextMiddleware,
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiV1 := router.Group("/v1")
	{
		categories := apiV1.Group("/categories")
		{
			categories.POST("", handlers.Category.CreateCategory)
			categories.GET("", handlers.Category.ListCategories)
			categories.GET("/:id", handlers.Category.GetCategory)
			categories.PUT("/:id", handlers.Category.UpdateCategory)
			categories.DELETE("/:id", handlers.Category.DeleteCategory)
		}

		products := apiV1.Group("/products")
		{
			products.POST("", handlers.Product.CreateProduct)
			products.GET("", handlers.Product.ListProducts)
			products.GET("/catalog", handlers.Product.ListProductCatalog)
			products.GET("/:id", handlers.Product.GetProduct)
			products.PUT("/:id", handlers.Product.UpdateProduct)
			products.DELETE("/:id", handlers.Product.DeleteProduct)
			products.GET("/:id/prices", handlers.Price.ListPricesByProduct)
		}

		prices := apiV1.Group("/prices")
		{
			prices.POST("", handlers.Price.CreatePrice)
			prices.GET("/:id", handlers.Price.GetPrice)
			prices.PUT("/:id", handlers.Price.UpdatePrice)
			prices.DELETE("/:id", handlers.Price.DeletePrice)
		}

		subscriptions := apiV1.Group("/subscriptions")
		{
			subscriptions.POST("", handlers.Subscription.CreateSubscription)
			subscriptions.GET("", handlers.Subscription.ListSubscriptions)
			subscriptions.GET("/catalog", handlers.Subscription.ListSubscriptionCatalog)
			subscriptions.GET("/:id", handlers.Subscription.GetSubscription)
			subscriptions.POST("/:id/approve", handlers.Subscription.ApproveSubscription)
			subscriptions.POST("/:id/reject", handlers.Subscription.RejectSubscription)
			subscriptions.POST("/:id/cancel", handlers.Subscription.CancelSubscription)
		}

		apiV1.GET("/dashboard", handlers.Dashboard.GetDashboard)
	}

	// Cron endpoints are triggered by an external scheduler.
	cronGroup := router.Group("/cron")
	{
		cronGroup.POST("/subscriptions/expire", handlers.SubscriptionCron.ExpireSubscriptions)
	}

	return router
}
